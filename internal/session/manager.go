package session

import (
	"context"
	"net/http"
	"sync"
	"time"

	"publicdashboard/internal/contextutil"
)

type contextKey string

const sessionKey contextKey = "session"

// Manager keeps sessions in memory, keyed by the id stored in a cookie.
type Manager struct {
	cookieName string
	ttl        time.Duration
	now        func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager creates a Manager. Sessions idle longer than ttl are dropped.
func NewManager(cookieName string, ttl time.Duration) *Manager {
	return &Manager{
		cookieName: cookieName,
		ttl:        ttl,
		now:        time.Now,
		sessions:   make(map[string]*Session),
	}
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Load returns the session for id, creating a new one when id is unknown or expired.
// The second result reports whether a new session was created.
func (m *Manager) Load(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if s, ok := m.sessions[id]; ok {
		if !s.expired(now, m.ttl) {
			s.lastSeen = now
			return s, false
		}
		delete(m.sessions, id)
	}

	s := newSession(now)
	m.sessions[s.id] = s
	return s, true
}

// Sweep removes expired sessions and returns how many were removed.
func (m *Manager) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	removed := 0
	for id, s := range m.sessions {
		if s.expired(now, m.ttl) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// RunSweeper calls Sweep every interval until ctx is done.
func (m *Manager) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger := contextutil.LoggerFromContext(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Sweep(); n > 0 {
				logger.DebugContext(ctx, "expired sessions removed", "count", n)
			}
		}
	}
}

// Middleware attaches the caller's session to the request context and holds
// the session lock until the request completes.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id string
		if cookie, err := r.Cookie(m.cookieName); err == nil {
			id = cookie.Value
		}

		s, created := m.Load(id)
		if created {
			contextutil.LoggerFromContext(r.Context()).DebugContext(r.Context(), "session started")
			http.SetCookie(w, &http.Cookie{
				Name:     m.cookieName,
				Value:    s.ID(),
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		s.Lock()
		defer s.Unlock()

		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), s)))
	})
}

// WithSession returns a copy of ctx carrying s.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// FromContext returns the session stored in ctx.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey).(*Session)
	return s, ok && s != nil
}
