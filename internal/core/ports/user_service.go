package ports

import (
	"context"

	"github.com/ankitSharma645/store-rating-api/internal/core/domain"
)

// StoreSummary is the owned-store projection attached to store_owner users.
type StoreSummary struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	AverageRating string `json:"rating"`
}

// UserDetail is a single user plus, for store owners, their store summary.
type UserDetail struct {
	User  domain.User
	Store *StoreSummary
}

type CreateUserInput struct {
	Name     string
	Email    string
	Address  string
	Password string
	Role     string
}

// DashboardStats are plain collection counts, no time windowing.
type DashboardStats struct {
	TotalUsers   int64 `json:"totalUsers"`
	TotalStores  int64 `json:"totalStores"`
	TotalRatings int64 `json:"totalRatings"`
}

type UserService interface {
	ListUsers(ctx context.Context, filter ListUsersFilter) ([]*domain.User, error)
	GetUser(ctx context.Context, id string) (*UserDetail, error)
	// CreateUser is the admin path: it bypasses the self-registration
	// payload policy but still enforces uniqueness and hashing. An empty
	// role defaults to "user".
	CreateUser(ctx context.Context, in CreateUserInput) (*domain.User, error)
	Stats(ctx context.Context) (*DashboardStats, error)
	StoreOwners(ctx context.Context) ([]OwnerSummary, error)
}
