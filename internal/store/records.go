package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// User is an account created on first successful login. Rows are never
// deleted; logging out only clears the session reference.
type User struct {
	ID        string
	Email     string
	CreatedAt time.Time
}

// MonthlyStats holds the counters for a single calendar month.
type MonthlyStats struct {
	MonthKey   string
	SOPs       int
	HoursSaved int
}

// AuthChallenge is the most recently issued verification code. There is
// exactly one at a time; requesting a new code overwrites it.
type AuthChallenge struct {
	Email     string
	Code      string
	CreatedAt time.Time
}

// SOP is a saved generated document.
type SOP struct {
	ID        string
	Title     string
	Category  string
	Depth     int
	Content   string
	CreatedAt time.Time
}

// UserByEmail returns the user with the given email, or nil if absent.
func (s *Store) UserByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := s.QueryRowContext(ctx,
		`SELECT id, email, created_at FROM users WHERE email = ?`, email).
		Scan(&u.ID, &u.Email, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying user: %w", err)
	}
	return &u, nil
}

// UserByID returns the user with the given id, or nil if absent.
func (s *Store) UserByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := s.QueryRowContext(ctx,
		`SELECT id, email, created_at FROM users WHERE id = ?`, id).
		Scan(&u.ID, &u.Email, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying user: %w", err)
	}
	return &u, nil
}

// CreateUser inserts a new user record and returns it.
func (s *Store) CreateUser(ctx context.Context, email string, now time.Time) (*User, error) {
	u := &User{
		ID:        uuid.NewString(),
		Email:     email,
		CreatedAt: now.UTC(),
	}
	_, err := s.ExecContext(ctx,
		`INSERT INTO users (id, email, created_at) VALUES (?, ?, ?)`,
		u.ID, u.Email, u.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting user: %w", err)
	}
	return u, nil
}

// Stats returns the stored monthly counters. A missing or unreadable row
// is reported as the zero record, not an error.
func (s *Store) Stats(ctx context.Context) (MonthlyStats, error) {
	var ms MonthlyStats
	err := s.QueryRowContext(ctx,
		`SELECT month_key, sops, hours_saved FROM monthly_stats WHERE id = 1`).
		Scan(&ms.MonthKey, &ms.SOPs, &ms.HoursSaved)
	if errors.Is(err, sql.ErrNoRows) {
		return MonthlyStats{}, nil
	}
	if err != nil {
		return MonthlyStats{}, fmt.Errorf("querying stats: %w", err)
	}
	return ms, nil
}

// SetStats replaces the monthly counters.
func (s *Store) SetStats(ctx context.Context, ms MonthlyStats) error {
	_, err := s.ExecContext(ctx, `
		INSERT INTO monthly_stats (id, month_key, sops, hours_saved)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			month_key = excluded.month_key,
			sops = excluded.sops,
			hours_saved = excluded.hours_saved`,
		ms.MonthKey, ms.SOPs, ms.HoursSaved)
	if err != nil {
		return fmt.Errorf("writing stats: %w", err)
	}
	return nil
}

// Challenge returns the current auth challenge, or nil if none was issued.
func (s *Store) Challenge(ctx context.Context) (*AuthChallenge, error) {
	var c AuthChallenge
	err := s.QueryRowContext(ctx,
		`SELECT email, code, created_at FROM auth_challenge WHERE id = 1`).
		Scan(&c.Email, &c.Code, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying challenge: %w", err)
	}
	return &c, nil
}

// SetChallenge overwrites the auth challenge with a new one.
func (s *Store) SetChallenge(ctx context.Context, c AuthChallenge) error {
	_, err := s.ExecContext(ctx, `
		INSERT INTO auth_challenge (id, email, code, created_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			email = excluded.email,
			code = excluded.code,
			created_at = excluded.created_at`,
		c.Email, c.Code, c.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("writing challenge: %w", err)
	}
	return nil
}

// AppendSOP adds a saved document to the list. The list is unbounded.
func (s *Store) AppendSOP(ctx context.Context, sop SOP) error {
	if sop.ID == "" {
		sop.ID = uuid.NewString()
	}
	_, err := s.ExecContext(ctx, `
		INSERT INTO sops (id, title, category, depth, content, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		sop.ID, sop.Title, sop.Category, sop.Depth, sop.Content, sop.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("inserting sop: %w", err)
	}
	return nil
}

// RecentSOPs returns up to limit saved documents, newest first.
func (s *Store) RecentSOPs(ctx context.Context, limit int) ([]SOP, error) {
	rows, err := s.QueryContext(ctx, `
		SELECT id, title, category, depth, content, created_at
		FROM sops ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying sops: %w", err)
	}
	defer rows.Close()

	var sops []SOP
	for rows.Next() {
		var sop SOP
		if err := rows.Scan(&sop.ID, &sop.Title, &sop.Category, &sop.Depth, &sop.Content, &sop.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning sop: %w", err)
		}
		sops = append(sops, sop)
	}
	return sops, rows.Err()
}

// CountSOPs returns the total number of saved documents.
func (s *Store) CountSOPs(ctx context.Context) (int, error) {
	var n int
	if err := s.QueryRowContext(ctx, `SELECT COUNT(*) FROM sops`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting sops: %w", err)
	}
	return n, nil
}
