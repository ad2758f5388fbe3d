package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/geofield/borelog/internal/client/models"
	"github.com/geofield/borelog/internal/client/repositories/localstore"
	"github.com/geofield/borelog/internal/common"
	"github.com/geofield/borelog/internal/logging"
)

type qaAPI interface {
	AskAI(ctx context.Context, question, contextText string, history []models.ChatTurn) (models.AIAnswer, error)
}

// QAService runs the question/answer conversation against the analysis
// endpoint and keeps the full history in the local store, chronologically.
type QAService struct {
	api    qaAPI
	repo   localstore.Repository
	logger logging.Logger
	now    func() time.Time
	newID  func() string
}

func NewQAService(api qaAPI, repo localstore.Repository, logger logging.Logger) *QAService {
	return &QAService{
		api:    api,
		repo:   repo,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// History returns stored entries oldest first. Missing or corrupt history
// reads as empty.
func (s *QAService) History(ctx context.Context) ([]models.QAEntry, error) {
	data, err := s.repo.Get(ctx, localstore.KeyQAHistory)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var entries []models.QAEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.logger.Warn(ctx, "discarding unreadable question history")
		return nil, nil
	}
	return entries, nil
}

// Ask submits a question together with the stored conversation so the server
// can resolve follow-ups, then appends the new pair to the history. Entries
// whose answer is empty contribute only their question turn.
func (s *QAService) Ask(ctx context.Context, question, contextText string) (models.QAEntry, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return models.QAEntry{}, common.ErrEmptyQuestion
	}

	entries, err := s.History(ctx)
	if err != nil {
		return models.QAEntry{}, err
	}

	answer, err := s.api.AskAI(ctx, question, contextText, Turns(entries))
	if err != nil {
		return models.QAEntry{}, err
	}

	entry := models.QAEntry{
		ID:       s.newID(),
		Question: question,
		Answer:   answer.Answer,
		Evidence: answer.Context,
		AskedAt:  s.now().UnixMilli(),
	}
	entries = append(entries, entry)

	data, err := json.Marshal(entries)
	if err != nil {
		return models.QAEntry{}, err
	}
	if err := s.repo.Set(ctx, localstore.KeyQAHistory, data); err != nil {
		return models.QAEntry{}, err
	}

	s.logger.Debug(ctx, "question answered", "turns", len(entries))
	return entry, nil
}

func (s *QAService) Clear(ctx context.Context) error {
	return s.repo.Delete(ctx, localstore.KeyQAHistory)
}

// Turns flattens stored entries into the alternating user/assistant turns
// the analysis endpoint expects.
func Turns(entries []models.QAEntry) []models.ChatTurn {
	var turns []models.ChatTurn
	for _, e := range entries {
		turns = append(turns, models.ChatTurn{Role: "user", Content: e.Question})
		if e.Answer != "" {
			turns = append(turns, models.ChatTurn{Role: "assistant", Content: e.Answer})
		}
	}
	return turns
}
