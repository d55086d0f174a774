// Package session holds per-operator state of the admin interface: the cached
// dashboard list, the draft of the record being edited, action tokens, flash
// messages and pagination.
package session

import (
	"crypto/subtle"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"publicdashboard/internal/pagination"
	"publicdashboard/internal/service"
	"publicdashboard/internal/storage"
)

// ErrInvalidToken is returned when a submitted action token does not match the one issued.
var ErrInvalidToken = errors.New("invalid security token")

// Session is the state of one admin session.
//
// The exported fields are only touched while the session is locked, which the
// middleware does for the duration of each request.
type Session struct {
	id string

	mu       sync.Mutex
	lastSeen time.Time

	// Dashboards is the ordered id snapshot used by the manage view.
	Dashboards service.ListCache
	// Draft is the record of the last create or modify form submission.
	Draft *storage.Dashboard
	// Page is the remembered pagination of the manage view.
	Page pagination.State

	tokens map[string]string
	infos  []string
	errs   []string
}

func newSession(now time.Time) *Session {
	return &Session{
		id:       uuid.NewString(),
		lastSeen: now,
		tokens:   make(map[string]string),
	}
}

// ID returns the session id carried by the cookie.
func (s *Session) ID() string { return s.id }

// Lock acquires the session for one request.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the session.
func (s *Session) Unlock() { s.mu.Unlock() }

// IssueToken creates a fresh token for action, replacing any earlier one.
func (s *Session) IssueToken(action string) string {
	token := uuid.NewString()
	s.tokens[action] = token
	return token
}

// ValidateToken checks token against the one issued for action and consumes it.
func (s *Session) ValidateToken(action, token string) error {
	expected, ok := s.tokens[action]
	if !ok || token == "" {
		return ErrInvalidToken
	}
	delete(s.tokens, action)
	if subtle.ConstantTimeCompare([]byte(expected), []byte(token)) != 1 {
		return ErrInvalidToken
	}
	return nil
}

// AddInfo queues an info message for the next page view.
func (s *Session) AddInfo(msg string) { s.infos = append(s.infos, msg) }

// AddError queues an error message for the next page view.
func (s *Session) AddError(msg string) { s.errs = append(s.errs, msg) }

// PopInfos returns and clears the queued info messages.
func (s *Session) PopInfos() []string {
	infos := s.infos
	s.infos = nil
	return infos
}

// PopErrors returns and clears the queued error messages.
func (s *Session) PopErrors() []string {
	errs := s.errs
	s.errs = nil
	return errs
}

func (s *Session) expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.lastSeen) > ttl
}
