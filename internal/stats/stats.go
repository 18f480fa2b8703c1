// Package stats maintains the monthly throughput counters shown on the
// dashboard: documents generated this month and hours saved.
package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/sopmaster25-create/sopmaster/internal/sop"
	"github.com/sopmaster25-create/sopmaster/internal/store"
)

// hoursPerSOP is a conservative fixed estimate per document depth.
var hoursPerSOP = map[sop.Depth]int{
	sop.Depth13: 2,
	sop.Depth26: 5,
}

// HoursSaved returns the hours credited for saving one document of the
// given depth.
func HoursSaved(d sop.Depth) int { return hoursPerSOP[d] }

// Store is the persistence surface the aggregator needs.
type Store interface {
	Stats(ctx context.Context) (store.MonthlyStats, error)
	SetStats(ctx context.Context, ms store.MonthlyStats) error
}

// Aggregator reads and updates the monthly counters. The clock is
// injectable so month boundaries can be simulated in tests.
type Aggregator struct {
	store Store
	now   func() time.Time
}

// New returns an Aggregator over the given store using the wall clock.
func New(st Store) *Aggregator {
	return &Aggregator{store: st, now: time.Now}
}

// NewWithClock returns an Aggregator with a custom clock.
func NewWithClock(st Store, now func() time.Time) *Aggregator {
	return &Aggregator{store: st, now: now}
}

// MonthKey formats t as a year-month key, e.g. "2026-09".
func MonthKey(t time.Time) string { return t.Format("2006-01") }

// Read returns the current month's counters. A stored record from a
// previous month is discarded: both counters reset to zero under the
// current month key, and the reset is persisted before returning.
func (a *Aggregator) Read(ctx context.Context) (store.MonthlyStats, error) {
	key := MonthKey(a.now())

	ms, err := a.store.Stats(ctx)
	if err != nil {
		return store.MonthlyStats{}, fmt.Errorf("reading stats: %w", err)
	}

	if ms.MonthKey != key {
		ms = store.MonthlyStats{MonthKey: key}
		if err := a.store.SetStats(ctx, ms); err != nil {
			return store.MonthlyStats{}, fmt.Errorf("resetting stale stats: %w", err)
		}
	}
	return ms, nil
}

// RecordSave credits one saved document of the given depth: +1 document,
// plus the fixed hours-saved estimate. Called on explicit save only.
func (a *Aggregator) RecordSave(ctx context.Context, d sop.Depth) (store.MonthlyStats, error) {
	ms, err := a.Read(ctx)
	if err != nil {
		return store.MonthlyStats{}, err
	}

	ms.SOPs++
	ms.HoursSaved += HoursSaved(d)
	if err := a.store.SetStats(ctx, ms); err != nil {
		return store.MonthlyStats{}, fmt.Errorf("recording save: %w", err)
	}
	return ms, nil
}

// ResetMonth force-zeroes both counters for the current month key.
func (a *Aggregator) ResetMonth(ctx context.Context) (store.MonthlyStats, error) {
	ms := store.MonthlyStats{MonthKey: MonthKey(a.now())}
	if err := a.store.SetStats(ctx, ms); err != nil {
		return store.MonthlyStats{}, fmt.Errorf("resetting month: %w", err)
	}
	return ms, nil
}
