package memstore

import (
	"context"
	"sync"

	"github.com/riderapp/admin-console/internal/core/domain"
)

// DirectoryRepository keeps user accounts in an ordered slice so List always
// reflects insertion order.
type DirectoryRepository struct {
	mu       sync.RWMutex
	accounts []domain.UserAccount
}

// NewDirectoryRepository builds a repository pre-populated with initial
// accounts (pass nil for an empty directory).
func NewDirectoryRepository(initial []domain.UserAccount) *DirectoryRepository {
	accounts := make([]domain.UserAccount, len(initial))
	copy(accounts, initial)
	return &DirectoryRepository{accounts: accounts}
}

// Insert appends the account at the end of the directory.
func (r *DirectoryRepository) Insert(_ context.Context, account *domain.UserAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.accounts {
		if existing.ID == account.ID {
			return domain.ErrDuplicateAccount
		}
	}

	r.accounts = append(r.accounts, *account)
	return nil
}

// Delete removes exactly the account with the given id, keeping the relative
// order of the remainder. A missing id reports false with no mutation.
func (r *DirectoryRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, account := range r.accounts {
		if account.ID == id {
			r.accounts = append(r.accounts[:i], r.accounts[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// List returns a copy of the directory in insertion order.
func (r *DirectoryRepository) List(_ context.Context) ([]domain.UserAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.UserAccount, len(r.accounts))
	copy(out, r.accounts)
	return out, nil
}

// SeedAccounts returns the demo directory the in-memory profile starts with.
func SeedAccounts() []domain.UserAccount {
	return []domain.UserAccount{
		{ID: "U-1001", Name: "Admin User", Email: "admin@riderapp.com", Role: domain.AccountRoleAdministrator, Status: domain.AccountActive},
		{ID: "U-1002", Name: "HR Manager", Email: "hr@riderapp.com", Role: domain.AccountRoleManager, Status: domain.AccountActive},
		{ID: "U-1003", Name: "Ahmed Hassan", Email: "ahmed@riderapp.com", Role: domain.AccountRoleStaff, Status: domain.AccountActive},
		{ID: "U-1004", Name: "Payroll Staff", Email: "payroll@riderapp.com", Role: domain.AccountRoleStaff, Status: domain.AccountInactive},
	}
}
