// Package models defines client-side representations of server-owned records:
// the authenticated session, borehole reports (both the typed submission form
// and the loosely-shaped listing rows), users, aggregate views and the Q&A
// conversation history.
package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleGeneral Role = "general"
)

// NormalizeRole maps the wire role onto a known value. Anything other than
// "general" collapses to admin, matching how a restored session is interpreted.
func NormalizeRole(s string) Role {
	if s == string(RoleGeneral) {
		return RoleGeneral
	}
	return RoleAdmin
}

// LoginResponse is the body of a successful POST /api/auth/login.
type LoginResponse struct {
	Token     string `json:"token"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	ExpiresIn int64  `json:"expires_in"`
}

// Session is the client's view of an authenticated user. It is persisted as a
// JSON snapshot and restored on startup.
type Session struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}

// Valid reports whether the snapshot denotes a usable session. Token and email
// are jointly required.
func (s Session) Valid() bool {
	return s.Token != "" && s.Email != ""
}

func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// SessionFromLogin builds a Session from a login response. Expiry comes from
// expires_in; when the server omits it, the unverified exp claim of the token
// is used as a best-effort fallback. The token is never verified client-side.
func SessionFromLogin(resp LoginResponse, now time.Time) Session {
	s := Session{
		Token: resp.Token,
		Email: resp.Email,
		Role:  NormalizeRole(resp.Role),
	}
	if resp.ExpiresIn > 0 {
		s.ExpiresAt = now.Add(time.Duration(resp.ExpiresIn) * time.Second)
	} else if exp, ok := tokenExpiry(resp.Token); ok {
		s.ExpiresAt = exp
	}
	return s
}

func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
