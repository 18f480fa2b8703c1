package auth

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

const sessionCookie = "sopmaster_session"

// Sessions maps session cookies to signed-in user IDs. Sessions live in
// memory only; restarting the server signs everyone out, but the user
// records themselves persist.
type Sessions struct {
	mu     sync.RWMutex
	byID   map[string]string // session id -> user id
	secure bool
}

// NewSessions creates an empty session table. secure marks the cookie
// Secure for HTTPS deployments.
func NewSessions(secure bool) *Sessions {
	return &Sessions{byID: make(map[string]string), secure: secure}
}

// Issue starts a session for the user and sets the session cookie.
func (s *Sessions) Issue(w http.ResponseWriter, userID string) {
	id := uuid.NewString()

	s.mu.Lock()
	s.byID[id] = userID
	s.mu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   s.secure,
		Expires:  time.Now().Add(30 * 24 * time.Hour),
	})
}

// Clear ends the request's session and expires the cookie. The stored
// user record is untouched.
func (s *Sessions) Clear(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(sessionCookie); err == nil {
		s.mu.Lock()
		delete(s.byID, c.Value)
		s.mu.Unlock()
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   s.secure,
		MaxAge:   -1,
	})
}

// UserID returns the signed-in user ID for the request, if any.
func (s *Sessions) UserID(r *http.Request) (string, bool) {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		return "", false
	}

	s.mu.RLock()
	uid, ok := s.byID[c.Value]
	s.mu.RUnlock()
	return uid, ok
}

// SessionID returns the request's session cookie value, if present.
// The builder wizard keys its transient state on it.
func SessionID(r *http.Request) (string, bool) {
	c, err := r.Cookie(sessionCookie)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}
