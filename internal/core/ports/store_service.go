package ports

import (
	"context"

	"github.com/ankitSharma645/store-rating-api/internal/core/domain"
)

// OwnerSummary is the projection of a user attached to store reads.
type OwnerSummary struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// StoreWithRating is a store annotated with its owner and the average
// computed from its ledger entries at read time.
type StoreWithRating struct {
	Store         domain.Store
	Owner         *OwnerSummary
	AverageRating float64
	RatingsCount  int
}

// RatingWithUser attaches the submitting user's identity to a rating.
type RatingWithUser struct {
	Rating domain.Rating
	User   *OwnerSummary
}

// RatingWithStore attaches the target store's summary to a rating.
type RatingWithStore struct {
	Rating       domain.Rating
	StoreName    string
	StoreAddress string
}

// StoreRatingsResult is the owner-facing view of a store's ledger.
type StoreRatingsResult struct {
	Store         domain.Store
	Ratings       []RatingWithUser
	AverageRating float64
	TotalRatings  int
}

type CreateStoreInput struct {
	Name    string
	Email   string
	Address string
	OwnerID string
}

type StoreService interface {
	ListStores(ctx context.Context, filter ListStoresFilter) ([]StoreWithRating, error)
	GetStore(ctx context.Context, id string) (*StoreWithRating, error)
	// CreateStore fails with domain.ErrOwnerNotEligible unless the owner
	// resolves to an existing user holding the store_owner role.
	CreateStore(ctx context.Context, in CreateStoreInput) (*domain.Store, error)
	// SubmitRating validates the value, requires the store to exist, and
	// upserts on the (store, user) pair.
	SubmitRating(ctx context.Context, storeID, userID string, value int) (*domain.Rating, error)
	// MyRating returns (nil, nil) when the caller has not rated the store.
	MyRating(ctx context.Context, storeID, userID string) (*domain.Rating, error)
	// StoreRatings is owner-scoped: it fails with domain.ErrNotStoreOwner
	// when the store id does not belong to ownerID.
	StoreRatings(ctx context.Context, storeID, ownerID string) (*StoreRatingsResult, error)
	// OwnerStoreWithRatings resolves the single store owned by ownerID.
	OwnerStoreWithRatings(ctx context.Context, ownerID string) (*StoreRatingsResult, error)
	UserRatings(ctx context.Context, userID string) ([]RatingWithStore, error)
}
