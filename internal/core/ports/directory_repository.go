package ports

import (
	"context"

	"github.com/riderapp/admin-console/internal/core/domain"
)

// DirectoryRepository defines persistence operations for user accounts.
// Implementations must preserve insertion order on List.
type DirectoryRepository interface {
	Insert(ctx context.Context, account *domain.UserAccount) error
	// Delete removes the account with the given id. A missing id is not an
	// error: it reports false with no mutation.
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]domain.UserAccount, error)
}

// SettingsRepository owns the singleton system settings record.
type SettingsRepository interface {
	Get(ctx context.Context) (domain.SystemSettings, error)
	Put(ctx context.Context, settings domain.SystemSettings) error
}

// ActivityRepository owns the append-only audit log.
type ActivityRepository interface {
	Append(ctx context.Context, entry domain.ActivityEntry) error
	// List returns entries newest first.
	List(ctx context.Context) ([]domain.ActivityEntry, error)
}
