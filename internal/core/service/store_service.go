package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ankitSharma645/store-rating-api/internal/core/domain"
	"github.com/ankitSharma645/store-rating-api/internal/core/ports"
)

// StoreService implements store management, rating submission and the
// per-read aggregation of rating values into averages.
type StoreService struct {
	stores  ports.StoreRepository
	users   ports.UserRepository
	ratings ports.RatingRepository
	log     zerolog.Logger
}

func NewStoreService(stores ports.StoreRepository, users ports.UserRepository, ratings ports.RatingRepository, log zerolog.Logger) *StoreService {
	return &StoreService{stores: stores, users: users, ratings: ratings, log: log}
}

// ListStores returns stores matching the filter, each annotated with its
// owner summary and an average computed from explicitly fetched ratings.
func (s *StoreService) ListStores(ctx context.Context, filter ports.ListStoresFilter) ([]ports.StoreWithRating, error) {
	stores, err := s.stores.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(stores) == 0 {
		return []ports.StoreWithRating{}, nil
	}

	storeIDs := make([]string, 0, len(stores))
	ownerIDs := make([]string, 0, len(stores))
	for _, st := range stores {
		storeIDs = append(storeIDs, st.ID)
		ownerIDs = append(ownerIDs, st.OwnerID)
	}

	ratingsByStore, err := s.ratings.ListByStoreIDs(ctx, storeIDs)
	if err != nil {
		return nil, err
	}
	owners, err := s.users.FindByIDs(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}

	out := make([]ports.StoreWithRating, 0, len(stores))
	for _, st := range stores {
		entries := ratingsByStore[st.ID]
		out = append(out, ports.StoreWithRating{
			Store:         *st,
			Owner:         ownerSummary(owners[st.OwnerID]),
			AverageRating: domain.AverageRating(entries),
			RatingsCount:  len(entries),
		})
	}
	return out, nil
}

func (s *StoreService) GetStore(ctx context.Context, id string) (*ports.StoreWithRating, error) {
	store, err := s.stores.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	entries, err := s.ratings.ListByStore(ctx, store.ID)
	if err != nil {
		return nil, err
	}

	owner, err := s.users.FindByID(ctx, store.OwnerID)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	return &ports.StoreWithRating{
		Store:         *store,
		Owner:         ownerSummary(owner),
		AverageRating: domain.AverageRating(entries),
		RatingsCount:  len(entries),
	}, nil
}

// CreateStore validates the owner reference at creation time: the owner
// must exist and hold the store_owner role. The role is not re-validated
// on later reads or writes.
func (s *StoreService) CreateStore(ctx context.Context, in ports.CreateStoreInput) (*domain.Store, error) {
	owner, err := s.users.FindByID(ctx, in.OwnerID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrOwnerNotEligible
		}
		return nil, err
	}
	if owner.Role != domain.RoleStoreOwner {
		return nil, domain.ErrOwnerNotEligible
	}

	store := &domain.Store{
		Name:      in.Name,
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Address:   in.Address,
		OwnerID:   owner.ID,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.stores.Create(ctx, store)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("store_id", created.ID).Str("owner_id", owner.ID).Msg("store created")
	return created, nil
}

// SubmitRating validates the value, requires the store to exist, then
// upserts: a second submission by the same user overwrites the stored
// value in place rather than appending a new record.
func (s *StoreService) SubmitRating(ctx context.Context, storeID, userID string, value int) (*domain.Rating, error) {
	if err := domain.ValidateRatingValue(value); err != nil {
		return nil, err
	}

	if _, err := s.stores.FindByID(ctx, storeID); err != nil {
		return nil, err
	}

	rating, err := s.ratings.Upsert(ctx, storeID, userID, value)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("store_id", storeID).Str("user_id", userID).Int("value", value).Msg("rating submitted")
	return rating, nil
}

func (s *StoreService) MyRating(ctx context.Context, storeID, userID string) (*domain.Rating, error) {
	return s.ratings.FindByStoreAndUser(ctx, storeID, userID)
}

// StoreRatings lists a store's ratings for its owner. The ownership gate
// is part of the lookup: a store id owned by someone else behaves exactly
// like a missing store.
func (s *StoreService) StoreRatings(ctx context.Context, storeID, ownerID string) (*ports.StoreRatingsResult, error) {
	store, err := s.stores.FindByIDAndOwner(ctx, storeID, ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrStoreNotFound) {
			return nil, domain.ErrNotStoreOwner
		}
		return nil, err
	}

	return s.ratingsForStore(ctx, store)
}

// OwnerStoreWithRatings resolves the single store owned by the caller and
// returns it with its full ledger.
func (s *StoreService) OwnerStoreWithRatings(ctx context.Context, ownerID string) (*ports.StoreRatingsResult, error) {
	store, err := s.stores.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return s.ratingsForStore(ctx, store)
}

func (s *StoreService) ratingsForStore(ctx context.Context, store *domain.Store) (*ports.StoreRatingsResult, error) {
	entries, err := s.ratings.ListByStore(ctx, store.ID)
	if err != nil {
		return nil, err
	}

	userIDs := make([]string, 0, len(entries))
	for _, r := range entries {
		userIDs = append(userIDs, r.UserID)
	}
	raters, err := s.users.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	withUsers := make([]ports.RatingWithUser, 0, len(entries))
	for _, r := range entries {
		withUsers = append(withUsers, ports.RatingWithUser{
			Rating: r,
			User:   ownerSummary(raters[r.UserID]),
		})
	}

	return &ports.StoreRatingsResult{
		Store:         *store,
		Ratings:       withUsers,
		AverageRating: domain.AverageRating(entries),
		TotalRatings:  len(entries),
	}, nil
}

func (s *StoreService) UserRatings(ctx context.Context, userID string) ([]ports.RatingWithStore, error) {
	entries, err := s.ratings.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]ports.RatingWithStore, 0, len(entries))
	for _, r := range entries {
		item := ports.RatingWithStore{Rating: r}
		store, err := s.stores.FindByID(ctx, r.StoreID)
		if err == nil {
			item.StoreName = store.Name
			item.StoreAddress = store.Address
		} else if !errors.Is(err, domain.ErrStoreNotFound) {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func ownerSummary(u *domain.User) *ports.OwnerSummary {
	if u == nil {
		return nil
	}
	return &ports.OwnerSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}
