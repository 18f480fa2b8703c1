package web

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/sopmaster25-create/sopmaster/internal/auth"
)

// returnPath extracts the page the sign-in modal was opened from.
func returnPath(r *http.Request) string {
	p := r.FormValue("return")
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") {
		return "/"
	}
	return p
}

// completeLogin opens the session and lands the user on the dashboard.
func (h *Handler) completeLogin(w http.ResponseWriter, r *http.Request, email string) {
	u, err := h.auth.CompleteLogin(r.Context(), email)
	if err != nil {
		log.Printf("web: completing login: %v", err)
		redirectLogin(w, r, returnPath(r), "1", "", "Sign-in failed. Please try again.", false)
		return
	}
	h.sessions.Issue(w, u.ID)
	redirectNotice(w, r, "/app/dashboard", "Signed in.")
}

func (h *Handler) handleGoogleLogin(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	if !auth.ValidEmail(email) {
		redirectLogin(w, r, returnPath(r), "1", "", "Please enter a valid email.", false)
		return
	}
	h.completeLogin(w, r, email)
}

func (h *Handler) handleCodeRequest(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	ret := returnPath(r)

	_, delivered, err := h.auth.RequestCode(r.Context(), email)
	if errors.Is(err, auth.ErrInvalidEmail) {
		redirectLogin(w, r, ret, "1", "", "Enter a valid email.", false)
		return
	}
	if err != nil {
		log.Printf("web: requesting code: %v", err)
		redirectLogin(w, r, ret, "1", email, "Could not generate a code. Please try again.", false)
		return
	}

	notice := "Code generated."
	if delivered {
		notice = "Verification code sent."
	}
	redirectLogin(w, r, ret, "code", email, notice, delivered)
}

func (h *Handler) handleCodeVerify(w http.ResponseWriter, r *http.Request) {
	code := strings.TrimSpace(r.FormValue("code"))
	ret := returnPath(r)

	email, err := h.auth.VerifyCode(r.Context(), code)
	switch {
	case errors.Is(err, auth.ErrNoChallenge):
		redirectLogin(w, r, ret, "1", "", "Please send a code first.", false)
		return
	case errors.Is(err, auth.ErrCodeMismatch):
		redirectLogin(w, r, ret, "code", "", "Incorrect code.", false)
		return
	case err != nil:
		log.Printf("web: verifying code: %v", err)
		redirectLogin(w, r, ret, "code", "", "Verification failed. Please try again.", false)
		return
	}

	h.completeLogin(w, r, email)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if sid, ok := auth.SessionID(r); ok {
		h.wizards.Drop(sid)
	}
	h.sessions.Clear(w, r)
	redirectNotice(w, r, "/", "Logged out.")
}
