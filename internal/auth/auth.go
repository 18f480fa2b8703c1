// Package auth implements the placeholder sign-in flows: a simulated
// Google login that only asks for an email, and an email verification
// code flow. Neither performs real authentication.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"regexp"
	"time"

	"github.com/sopmaster25-create/sopmaster/internal/mail"
	"github.com/sopmaster25-create/sopmaster/internal/stats"
	"github.com/sopmaster25-create/sopmaster/internal/store"
)

var (
	// ErrInvalidEmail signals a malformed email address.
	ErrInvalidEmail = errors.New("invalid email address")
	// ErrNoChallenge signals verification before any code was requested.
	ErrNoChallenge = errors.New("no verification code requested")
	// ErrCodeMismatch signals a wrong verification code. The stored
	// challenge is kept, so the user may retry.
	ErrCodeMismatch = errors.New("incorrect verification code")
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool { return emailPattern.MatchString(s) }

// Store is the persistence surface the auth flow needs.
type Store interface {
	UserByEmail(ctx context.Context, email string) (*store.User, error)
	CreateUser(ctx context.Context, email string, now time.Time) (*store.User, error)
	Challenge(ctx context.Context) (*store.AuthChallenge, error)
	SetChallenge(ctx context.Context, c store.AuthChallenge) error
	Stats(ctx context.Context) (store.MonthlyStats, error)
	SetStats(ctx context.Context, ms store.MonthlyStats) error
}

// Service drives both login paths. The clock and random source are
// injectable so codes are reproducible in tests.
type Service struct {
	store  Store
	sender mail.Sender // nil when code delivery is not configured

	Now  func() time.Time
	Rand *rand.Rand
}

// New returns a Service. sender may be nil; codes are then surfaced
// on-screen only.
func New(st Store, sender mail.Sender) *Service {
	return &Service{
		store:  st,
		sender: sender,
		Now:    time.Now,
		Rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CompleteLogin creates the user record on first login (or finds the
// existing one) and seeds the stats record if none exists yet.
func (s *Service) CompleteLogin(ctx context.Context, email string) (*store.User, error) {
	if !ValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	u, err := s.store.UserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if u == nil {
		u, err = s.store.CreateUser(ctx, email, s.Now())
		if err != nil {
			return nil, fmt.Errorf("creating user: %w", err)
		}
	}

	ms, err := s.store.Stats(ctx)
	if err == nil && ms.MonthKey == "" {
		seed := store.MonthlyStats{MonthKey: stats.MonthKey(s.Now())}
		if err := s.store.SetStats(ctx, seed); err != nil {
			log.Printf("auth: seeding stats: %v", err)
		}
	}

	return u, nil
}

// RequestCode generates a uniformly random 6-digit code, overwrites the
// stored challenge, and attempts delivery through the configured sender.
// The returned delivered flag is false when no sender is configured or
// sending failed; the caller then shows the code on-screen instead.
func (s *Service) RequestCode(ctx context.Context, email string) (code string, delivered bool, err error) {
	if !ValidEmail(email) {
		return "", false, ErrInvalidEmail
	}

	code = fmt.Sprintf("%06d", s.Rand.Intn(900000)+100000)
	ch := store.AuthChallenge{Email: email, Code: code, CreatedAt: s.Now()}
	if err := s.store.SetChallenge(ctx, ch); err != nil {
		return "", false, fmt.Errorf("storing challenge: %w", err)
	}

	if s.sender == nil {
		return code, false, nil
	}
	if err := s.sender.Send(ctx, email, code); err != nil {
		// Delivery is best-effort; fall back to on-screen display.
		log.Printf("auth: code delivery to %s failed: %v", email, err)
		return code, false, nil
	}
	return code, true, nil
}

// VerifyCode checks the submitted code against the most recently issued
// challenge by exact string match. On success it returns the challenge
// email; the challenge is not consumed, so retries are unlimited and no
// expiry is enforced.
func (s *Service) VerifyCode(ctx context.Context, submitted string) (email string, err error) {
	ch, err := s.store.Challenge(ctx)
	if err != nil {
		return "", fmt.Errorf("loading challenge: %w", err)
	}
	if ch == nil {
		return "", ErrNoChallenge
	}
	if submitted != ch.Code {
		return "", ErrCodeMismatch
	}
	return ch.Email, nil
}
