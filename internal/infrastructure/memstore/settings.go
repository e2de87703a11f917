package memstore

import (
	"context"
	"sync"

	"github.com/riderapp/admin-console/internal/core/domain"
)

// SettingsRepository holds the singleton system settings record.
type SettingsRepository struct {
	mu       sync.RWMutex
	settings domain.SystemSettings
}

// NewSettingsRepository builds a repository starting from the given record.
func NewSettingsRepository(initial domain.SystemSettings) *SettingsRepository {
	return &SettingsRepository{settings: initial}
}

func (r *SettingsRepository) Get(_ context.Context) (domain.SystemSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.settings, nil
}

func (r *SettingsRepository) Put(_ context.Context, settings domain.SystemSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = settings
	return nil
}
