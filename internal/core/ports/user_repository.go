package ports

import (
	"context"

	"github.com/ankitSharma645/store-rating-api/internal/core/domain"
)

// ListUsersFilter carries the query parameters for listing users.
// Name, Email and Address are case-insensitive substring matches; Role is
// an exact match. SortField is whitelisted by the repository; SortDesc
// defaults to newest-first when SortField is empty.
type ListUsersFilter struct {
	Name      string
	Email     string
	Address   string
	Role      string
	SortField string
	SortDesc  bool
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// Create inserts a user. A duplicate email surfaces as domain.ErrEmailTaken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByEmail returns the user with the stored password hash populated.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByIDs returns the users for the given ids, keyed by id.
	FindByIDs(ctx context.Context, ids []string) (map[string]*domain.User, error)
	List(ctx context.Context, filter ListUsersFilter) ([]*domain.User, error)
	// ListByRole returns all users holding the given role, newest first.
	ListByRole(ctx context.Context, role string) ([]*domain.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	Count(ctx context.Context) (int64, error)
}
