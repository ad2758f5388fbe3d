package services

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/geofield/borelog/internal/client/models"
	"github.com/geofield/borelog/internal/client/repositories/localstore"
	"github.com/geofield/borelog/internal/common"
	"github.com/geofield/borelog/internal/logging"
)

type authAPI interface {
	Login(ctx context.Context, email, password string) (models.LoginResponse, error)
}

// AuthService owns the session: logging in, restoring the persisted snapshot
// on startup, exposing the token to the transport and tearing everything down
// on logout or expiry.
type AuthService struct {
	api    authAPI
	repo   localstore.Repository
	logger logging.Logger
	now    func() time.Time

	mu      sync.Mutex
	session models.Session
}

func NewAuthService(api authAPI, repo localstore.Repository, logger logging.Logger) *AuthService {
	return &AuthService{api: api, repo: repo, logger: logger, now: time.Now}
}

// Login authenticates and persists the resulting session snapshot. The
// previous session, if any, is replaced. Signing in as a different account
// also wipes the other snapshots (form draft, question history) atomically,
// so nothing entered by one operator surfaces under another's session.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.Session, error) {
	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		return models.Session{}, err
	}

	session := models.SessionFromLogin(resp, s.now())
	data, err := json.Marshal(session)
	if err != nil {
		return models.Session{}, err
	}

	prev := s.Current()
	if prev.Valid() && !strings.EqualFold(prev.Email, session.Email) {
		s.logger.Info(ctx, "account changed, clearing local snapshots", "previous", prev.Email)
		err = s.repo.Replace(ctx, map[string][]byte{localstore.KeySession: data})
	} else {
		err = s.repo.Set(ctx, localstore.KeySession, data)
	}
	if err != nil {
		return models.Session{}, err
	}

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()

	s.logger.Info(ctx, "logged in", "email", session.Email, "role", session.Role)
	return session, nil
}

// Restore loads the persisted session snapshot. A missing, corrupt or
// incomplete snapshot counts as no session; corruption is not an error the
// caller needs to act on.
func (s *AuthService) Restore(ctx context.Context) (models.Session, bool, error) {
	data, err := s.repo.Get(ctx, localstore.KeySession)
	if err != nil {
		return models.Session{}, false, err
	}
	if data == nil {
		return models.Session{}, false, nil
	}

	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil || !session.Valid() {
		s.logger.Warn(ctx, "discarding unreadable session snapshot")
		return models.Session{}, false, nil
	}
	session.Role = models.NormalizeRole(string(session.Role))

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()
	return session, true, nil
}

// Current returns the in-memory session; the zero value when logged out.
func (s *AuthService) Current() models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// Token supplies the bearer token for outgoing requests; empty when there is
// no session. Suitable as the transport's token source.
func (s *AuthService) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Token
}

// LoggedIn reports whether a usable session is held.
func (s *AuthService) LoggedIn() bool {
	return s.Current().Valid()
}

// Teardown forgets the session in memory and on disk. Idempotent: tearing
// down an absent session succeeds.
func (s *AuthService) Teardown(ctx context.Context) error {
	s.mu.Lock()
	had := s.session.Valid()
	s.session = models.Session{}
	s.mu.Unlock()

	if err := s.repo.Delete(ctx, localstore.KeySession); err != nil {
		return err
	}
	if had {
		s.logger.Info(ctx, "session cleared")
	}
	return nil
}

// RequireSession returns the current session or ErrNoSession.
func (s *AuthService) RequireSession() (models.Session, error) {
	session := s.Current()
	if !session.Valid() {
		return models.Session{}, common.ErrNoSession
	}
	return session, nil
}
