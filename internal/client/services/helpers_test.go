package services

import (
	"context"

	"github.com/geofield/borelog/internal/client/models"
)

// memStore is an in-memory localstore.Repository for tests.
type memStore struct {
	m       map[string][]byte
	setErr  error
	getErr  error
	setKeys []string
}

func newMemStore() *memStore {
	return &memStore{m: map[string][]byte{}}
}

func (s *memStore) Get(_ context.Context, key string) ([]byte, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	v, ok := s.m[key]
	if !ok {
		return nil, nil
	}
	return v, nil
}

func (s *memStore) Set(_ context.Context, key string, value []byte) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.m[key] = value
	s.setKeys = append(s.setKeys, key)
	return nil
}

func (s *memStore) Delete(_ context.Context, key string) error {
	delete(s.m, key)
	return nil
}

func (s *memStore) Clear(_ context.Context) error {
	s.m = map[string][]byte{}
	return nil
}

func (s *memStore) Replace(_ context.Context, entries map[string][]byte) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.m = map[string][]byte{}
	for k, v := range entries {
		s.m[k] = v
	}
	return nil
}

type fakeAuthAPI struct {
	resp  models.LoginResponse
	err   error
	calls int
}

func (f *fakeAuthAPI) Login(_ context.Context, _, _ string) (models.LoginResponse, error) {
	f.calls++
	return f.resp, f.err
}

type fakeReportsAPI struct {
	records    []models.Record
	err        error
	posted     []models.Report
	updatedID  string
	updated    map[string]string
	deletedIDs []string
}

func (f *fakeReportsAPI) ListReports(_ context.Context) ([]models.Record, error) {
	return f.records, f.err
}

func (f *fakeReportsAPI) PostReport(_ context.Context, r models.Report) error {
	f.posted = append(f.posted, r)
	return f.err
}

func (f *fakeReportsAPI) UpdateReport(_ context.Context, id string, fields map[string]string) error {
	f.updatedID = id
	f.updated = fields
	return f.err
}

func (f *fakeReportsAPI) DeleteReport(_ context.Context, id string) error {
	f.deletedIDs = append(f.deletedIDs, id)
	return f.err
}

type fakeQAAPI struct {
	answer      models.AIAnswer
	err         error
	gotQuestion string
	gotContext  string
	gotHistory  []models.ChatTurn
}

func (f *fakeQAAPI) AskAI(_ context.Context, question, contextText string, history []models.ChatTurn) (models.AIAnswer, error) {
	f.gotQuestion = question
	f.gotContext = contextText
	f.gotHistory = history
	return f.answer, f.err
}

type fakeInsightsAPI struct {
	summary    models.SummaryResponse
	dashboard  models.DashboardResponse
	err        error
	gotPeriod  string
	gotFilters map[string]string
}

func (f *fakeInsightsAPI) GetSummary(_ context.Context, period string, filters map[string]string) (models.SummaryResponse, error) {
	f.gotPeriod = period
	f.gotFilters = filters
	return f.summary, f.err
}

func (f *fakeInsightsAPI) GetDashboard(_ context.Context) (models.DashboardResponse, error) {
	return f.dashboard, f.err
}

type fakeUsersAPI struct {
	users   []models.User
	err     error
	created []string
	deleted []string
}

func (f *fakeUsersAPI) ListUsers(_ context.Context) ([]models.User, error) {
	return f.users, f.err
}

func (f *fakeUsersAPI) CreateUser(_ context.Context, email, _ string, role models.Role) (models.User, error) {
	if f.err != nil {
		return models.User{}, f.err
	}
	f.created = append(f.created, email)
	return models.User{Email: email, Role: role}, nil
}

func (f *fakeUsersAPI) DeleteUser(_ context.Context, email string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, email)
	return nil
}
