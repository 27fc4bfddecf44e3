package ports

import (
	"context"

	"github.com/ankitSharma645/store-rating-api/internal/core/domain"
)

// RatingRepository defines persistence operations for ratings. The unique
// (store, user) index is the only concurrency-safety mechanism: a losing
// concurrent insert surfaces as domain.ErrRatingConflict.
type RatingRepository interface {
	// Upsert creates the rating for (storeID, userID) or overwrites its
	// value in place, returning the stored document.
	Upsert(ctx context.Context, storeID, userID string, value int) (*domain.Rating, error)
	// FindByStoreAndUser returns (nil, nil) when the user has not rated the store.
	FindByStoreAndUser(ctx context.Context, storeID, userID string) (*domain.Rating, error)
	// ListByStore returns a store's ratings, newest first.
	ListByStore(ctx context.Context, storeID string) ([]domain.Rating, error)
	// ListByStoreIDs returns ratings grouped by store id for average computation.
	ListByStoreIDs(ctx context.Context, storeIDs []string) (map[string][]domain.Rating, error)
	// ListByUser returns a user's ratings across stores, newest first.
	ListByUser(ctx context.Context, userID string) ([]domain.Rating, error)
	Count(ctx context.Context) (int64, error)
}
