package ports

import (
	"context"

	"github.com/riderapp/admin-console/internal/core/domain"
)

// AddUserInput carries the account-creation form. Actor is the display name
// of the administrator performing the action, used for the audit log.
type AddUserInput struct {
	Name  string
	Email string
	Role  domain.AccountRole
	Actor string
}

// UpdateSettingsInput is a partial settings update. Nil fields are left
// unchanged; non-nil fields overwrite.
type UpdateSettingsInput struct {
	CompanyName         *string
	TrainingFee         *string
	CutoffDate          *int
	EmailNotifications  *bool
	AutoGenerateReports *bool
	Actor               string
}

// DirectoryService defines use-case operations over user accounts, system
// settings, and the activity log. All operations are synchronous; mutations
// are immediately visible to subsequent reads.
type DirectoryService interface {
	// AddUser validates that name, email, and role are non-empty, assigns a
	// fresh "U"-prefixed id, sets status active, and appends the account.
	AddUser(ctx context.Context, input AddUserInput) (*domain.UserAccount, error)

	// DeleteUser removes the account with the given id. Deleting an absent
	// id is a no-op reported as false, never an error.
	DeleteUser(ctx context.Context, id, actor string) (bool, error)

	ListUsers(ctx context.Context) ([]domain.UserAccount, error)

	GetSettings(ctx context.Context) (domain.SystemSettings, error)

	// UpdateSettings merges the non-nil fields of input into the singleton
	// record and returns the full result.
	UpdateSettings(ctx context.Context, input UpdateSettingsInput) (domain.SystemSettings, error)

	ListActivity(ctx context.Context) ([]domain.ActivityEntry, error)
}
