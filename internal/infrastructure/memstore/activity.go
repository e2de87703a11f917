package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/riderapp/admin-console/internal/core/domain"
)

// ActivityRepository is an append-only in-memory audit log.
type ActivityRepository struct {
	mu      sync.RWMutex
	entries []domain.ActivityEntry
}

// NewActivityRepository builds a log pre-populated with initial entries,
// oldest first (pass nil for an empty log).
func NewActivityRepository(initial []domain.ActivityEntry) *ActivityRepository {
	entries := make([]domain.ActivityEntry, len(initial))
	copy(entries, initial)
	return &ActivityRepository{entries: entries}
}

func (r *ActivityRepository) Append(_ context.Context, entry domain.ActivityEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return nil
}

// List returns entries newest first.
func (r *ActivityRepository) List(_ context.Context) ([]domain.ActivityEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.ActivityEntry, len(r.entries))
	for i, entry := range r.entries {
		out[len(r.entries)-1-i] = entry
	}
	return out, nil
}

// SeedActivity returns the demo audit trail the in-memory profile starts with.
func SeedActivity() []domain.ActivityEntry {
	return []domain.ActivityEntry{
		{Actor: "Payroll Staff", Action: "Applied deduction for traffic fine (EMP001)", Timestamp: time.Date(2024, 10, 1, 9, 22, 0, 0, time.UTC)},
		{Actor: "Admin User", Action: "Uploaded weekly data for Week 40", Timestamp: time.Date(2024, 10, 2, 16, 45, 0, 0, time.UTC)},
		{Actor: "HR Manager", Action: "Added new employee: Ali Rahman (EMP005)", Timestamp: time.Date(2024, 10, 3, 11, 15, 0, 0, time.UTC)},
		{Actor: "Admin User", Action: "Generated salary report for September 2024", Timestamp: time.Date(2024, 10, 3, 14, 32, 0, 0, time.UTC)},
	}
}
