package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func requestWithCookies(t *testing.T, w *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	req := httptest.NewRequest("GET", "/", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestSessionIssueAndLookup(t *testing.T) {
	s := NewSessions(false)

	w := httptest.NewRecorder()
	s.Issue(w, "user-1")

	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != sessionCookie {
		t.Fatalf("cookies = %+v", cookies)
	}
	if !cookies[0].HttpOnly {
		t.Error("session cookie should be HttpOnly")
	}

	req := requestWithCookies(t, w)
	uid, ok := s.UserID(req)
	if !ok || uid != "user-1" {
		t.Errorf("UserID = %q, %v", uid, ok)
	}

	sid, ok := SessionID(req)
	if !ok || sid != cookies[0].Value {
		t.Errorf("SessionID = %q, %v", sid, ok)
	}
}

func TestSessionClear(t *testing.T) {
	s := NewSessions(false)

	issued := httptest.NewRecorder()
	s.Issue(issued, "user-1")
	req := requestWithCookies(t, issued)

	cleared := httptest.NewRecorder()
	s.Clear(cleared, req)

	if _, ok := s.UserID(req); ok {
		t.Error("session should be gone after Clear")
	}

	cookies := cleared.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge != -1 {
		t.Errorf("expected an expiring cookie, got %+v", cookies)
	}
}

func TestUserIDWithoutCookie(t *testing.T) {
	s := NewSessions(false)
	req := httptest.NewRequest("GET", "/", nil)
	if _, ok := s.UserID(req); ok {
		t.Error("request without a cookie should not resolve a user")
	}
}
