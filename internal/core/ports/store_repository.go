package ports

import (
	"context"

	"github.com/ankitSharma645/store-rating-api/internal/core/domain"
)

// ListStoresFilter carries the query parameters for listing stores.
// Name and Address are case-insensitive substring matches.
type ListStoresFilter struct {
	Name      string
	Address   string
	SortField string
	SortDesc  bool
}

// StoreRepository defines persistence operations for stores.
type StoreRepository interface {
	// Create inserts a store. A duplicate email surfaces as domain.ErrStoreEmailTaken.
	Create(ctx context.Context, store *domain.Store) (*domain.Store, error)
	FindByID(ctx context.Context, id string) (*domain.Store, error)
	// FindByIDAndOwner applies the ownership gate at the query level:
	// both the store id and the owner reference must match.
	FindByIDAndOwner(ctx context.Context, id, ownerID string) (*domain.Store, error)
	FindByOwner(ctx context.Context, ownerID string) (*domain.Store, error)
	List(ctx context.Context, filter ListStoresFilter) ([]*domain.Store, error)
	Count(ctx context.Context) (int64, error)
}
