package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/riderapp/admin-console/internal/core/domain"
	"github.com/riderapp/admin-console/internal/core/ports"
)

// DirectoryService implements user account management, system settings, and
// the activity log on top of the repository ports.
type DirectoryService struct {
	accounts ports.DirectoryRepository
	settings ports.SettingsRepository
	activity ports.ActivityRepository
	logger   zerolog.Logger
}

func NewDirectoryService(
	accounts ports.DirectoryRepository,
	settings ports.SettingsRepository,
	activity ports.ActivityRepository,
	logger zerolog.Logger,
) *DirectoryService {
	return &DirectoryService{
		accounts: accounts,
		settings: settings,
		activity: activity,
		logger:   logger,
	}
}

// AddUser creates a new account. Name, email, and role are all required;
// any missing field fails with ErrMissingField and performs no mutation.
// New accounts are always active and appended at the end of the directory.
func (s *DirectoryService) AddUser(ctx context.Context, input ports.AddUserInput) (*domain.UserAccount, error) {
	if input.Name == "" || input.Email == "" || input.Role == "" {
		return nil, domain.ErrMissingField
	}

	account := &domain.UserAccount{
		ID:     generateAccountID(),
		Name:   input.Name,
		Email:  input.Email,
		Role:   input.Role,
		Status: domain.AccountActive,
	}

	if err := s.accounts.Insert(ctx, account); err != nil {
		s.logger.Error().Err(err).Str("email", input.Email).Msg("failed to insert account")
		return nil, err
	}

	s.logger.Info().Str("account_id", account.ID).Str("role", string(account.Role)).Msg("account created")
	s.record(ctx, input.Actor, fmt.Sprintf("Added new user: %s (%s)", account.Name, account.ID))

	return account, nil
}

// DeleteUser removes exactly the account with the given id, preserving the
// relative order of the remainder. An absent id reports false with no
// mutation and no error.
func (s *DirectoryService) DeleteUser(ctx context.Context, id, actor string) (bool, error) {
	removed, err := s.accounts.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("account_id", id).Msg("failed to delete account")
		return false, err
	}
	if !removed {
		return false, nil
	}

	s.logger.Info().Str("account_id", id).Msg("account deleted")
	s.record(ctx, actor, fmt.Sprintf("Deleted user: %s", id))

	return true, nil
}

// ListUsers returns the directory snapshot in insertion order.
func (s *DirectoryService) ListUsers(ctx context.Context) ([]domain.UserAccount, error) {
	return s.accounts.List(ctx)
}

// GetSettings returns the current full settings record.
func (s *DirectoryService) GetSettings(ctx context.Context) (domain.SystemSettings, error) {
	return s.settings.Get(ctx)
}

// UpdateSettings merges the non-nil fields of input into the singleton
// record and returns the full result. A provided cutoff date outside 1..31
// is rejected before any write; this range check is an addition over the
// original contract, which accepted any value.
func (s *DirectoryService) UpdateSettings(ctx context.Context, input ports.UpdateSettingsInput) (domain.SystemSettings, error) {
	if input.CutoffDate != nil && (*input.CutoffDate < 1 || *input.CutoffDate > 31) {
		return domain.SystemSettings{}, domain.ErrInvalidCutoffDate
	}

	current, err := s.settings.Get(ctx)
	if err != nil {
		return domain.SystemSettings{}, err
	}

	if input.CompanyName != nil {
		current.CompanyName = *input.CompanyName
	}
	if input.TrainingFee != nil {
		current.TrainingFee = *input.TrainingFee
	}
	if input.CutoffDate != nil {
		current.CutoffDate = *input.CutoffDate
	}
	if input.EmailNotifications != nil {
		current.EmailNotifications = *input.EmailNotifications
	}
	if input.AutoGenerateReports != nil {
		current.AutoGenerateReports = *input.AutoGenerateReports
	}

	if err := s.settings.Put(ctx, current); err != nil {
		s.logger.Error().Err(err).Msg("failed to store settings")
		return domain.SystemSettings{}, err
	}

	s.logger.Info().Str("company", current.CompanyName).Int("cutoff_date", current.CutoffDate).Msg("settings updated")
	s.record(ctx, input.Actor, "Updated system settings")

	return current, nil
}

// ListActivity returns audit entries, newest first.
func (s *DirectoryService) ListActivity(ctx context.Context) ([]domain.ActivityEntry, error) {
	return s.activity.List(ctx)
}

// record appends an audit entry. Failures are logged and swallowed: the
// audit trail never blocks the mutation it describes.
func (s *DirectoryService) record(ctx context.Context, actor, action string) {
	if actor == "" {
		actor = "System"
	}
	entry := domain.ActivityEntry{
		Actor:     actor,
		Action:    action,
		Timestamp: time.Now().UTC(),
	}
	if err := s.activity.Append(ctx, entry); err != nil {
		s.logger.Warn().Err(err).Str("action", action).Msg("failed to append activity entry")
	}
}

// generateAccountID returns a unique directory id in the format U-XXXXXXXX.
func generateAccountID() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("U-%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("U-%08X", b)
}
