package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geofield/borelog/internal/client/models"
	"github.com/geofield/borelog/internal/client/repositories/localstore"
	"github.com/geofield/borelog/internal/common"
	"github.com/geofield/borelog/internal/logging"
)

func newQAService(api *fakeQAAPI, store *memStore) *QAService {
	svc := NewQAService(api, store, logging.NewDiscardLogger())
	svc.now = func() time.Time { return time.UnixMilli(1756000000000) }
	svc.newID = func() string { return "fixed-id" }
	return svc
}

func TestAsk_AppendsAndPersistsEntry(t *testing.T) {
	store := newMemStore()
	api := &fakeQAAPI{answer: models.AIAnswer{Answer: "Average N60 is 14.", Context: "BoreholeID,Avg_SPT_N60\nBH-1,14"}}
	svc := newQAService(api, store)

	entry, err := svc.Ask(context.Background(), "  What is the average N60?  ", "")
	require.NoError(t, err)

	assert.Equal(t, "fixed-id", entry.ID)
	assert.Equal(t, "What is the average N60?", entry.Question)
	assert.Equal(t, "Average N60 is 14.", entry.Answer)
	assert.Equal(t, int64(1756000000000), entry.AskedAt)

	var stored []models.QAEntry
	require.NoError(t, json.Unmarshal(store.m[localstore.KeyQAHistory], &stored))
	require.Len(t, stored, 1)
	assert.Equal(t, entry, stored[0])
}

func TestAsk_SendsPriorHistoryAsTurns(t *testing.T) {
	store := newMemStore()
	prior := []models.QAEntry{
		{Question: "q1", Answer: "a1", AskedAt: 1},
		{Question: "q2", Answer: "", AskedAt: 2},
	}
	data, _ := json.Marshal(prior)
	store.m[localstore.KeyQAHistory] = data

	api := &fakeQAAPI{answer: models.AIAnswer{Answer: "a3"}}
	svc := newQAService(api, store)

	_, err := svc.Ask(context.Background(), "q3", "extra context")
	require.NoError(t, err)

	assert.Equal(t, "extra context", api.gotContext)
	require.Equal(t, []models.ChatTurn{
		{Role: "user", Content: "q1"},
		{Role: "assistant", Content: "a1"},
		{Role: "user", Content: "q2"},
	}, api.gotHistory, "unanswered entries contribute only the question turn")

	var stored []models.QAEntry
	require.NoError(t, json.Unmarshal(store.m[localstore.KeyQAHistory], &stored))
	assert.Len(t, stored, 3)
}

func TestAsk_EmptyQuestionRejected(t *testing.T) {
	svc := newQAService(&fakeQAAPI{}, newMemStore())

	_, err := svc.Ask(context.Background(), "   ", "")
	require.ErrorIs(t, err, common.ErrEmptyQuestion)
}

func TestAsk_APIFailureLeavesHistoryUntouched(t *testing.T) {
	store := newMemStore()
	api := &fakeQAAPI{err: assert.AnError}
	svc := newQAService(api, store)

	_, err := svc.Ask(context.Background(), "q", "")
	require.Error(t, err)
	_, has := store.m[localstore.KeyQAHistory]
	assert.False(t, has)
}

func TestHistory_CorruptSnapshotReadsAsEmpty(t *testing.T) {
	store := newMemStore()
	store.m[localstore.KeyQAHistory] = []byte("not json")
	svc := newQAService(&fakeQAAPI{}, store)

	entries, err := svc.History(context.Background())
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestClear(t *testing.T) {
	store := newMemStore()
	store.m[localstore.KeyQAHistory] = []byte("[]")
	svc := newQAService(&fakeQAAPI{}, store)

	require.NoError(t, svc.Clear(context.Background()))
	_, has := store.m[localstore.KeyQAHistory]
	assert.False(t, has)
}
