package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ankitSharma645/store-rating-api/internal/core/domain"
	"github.com/ankitSharma645/store-rating-api/internal/core/ports"
)

// In-memory repository stubs mirroring the storage-layer contracts,
// including the uniqueness behavior the Mongo indexes provide.

var (
	_ ports.UserRepository   = (*stubUserRepo)(nil)
	_ ports.StoreRepository  = (*stubStoreRepo)(nil)
	_ ports.RatingRepository = (*stubRatingRepo)(nil)
)

type stubUserRepo struct {
	users map[string]*domain.User
	seq   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.seq++
	created := cloneUser(user)
	created.ID = fmt.Sprintf("u%d", r.seq)
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByIDs(_ context.Context, ids []string) (map[string]*domain.User, error) {
	out := make(map[string]*domain.User)
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out[id] = cloneUser(u)
		}
	}
	return out, nil
}

func (r *stubUserRepo) List(_ context.Context, filter ports.ListUsersFilter) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range r.users {
		if filter.Name != "" && !strings.Contains(strings.ToLower(u.Name), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.Email != "" && !strings.Contains(strings.ToLower(u.Email), strings.ToLower(filter.Email)) {
			continue
		}
		if filter.Address != "" && !strings.Contains(strings.ToLower(u.Address), strings.ToLower(filter.Address)) {
			continue
		}
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		out = append(out, cloneUser(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubUserRepo) ListByRole(_ context.Context, role string) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, cloneUser(u))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, id, passwordHash string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	u.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type stubStoreRepo struct {
	stores map[string]*domain.Store
	seq    int
}

func newStubStoreRepo() *stubStoreRepo {
	return &stubStoreRepo{stores: make(map[string]*domain.Store)}
}

func cloneStore(s *domain.Store) *domain.Store {
	clone := *s
	return &clone
}

func (r *stubStoreRepo) Create(_ context.Context, store *domain.Store) (*domain.Store, error) {
	for _, existing := range r.stores {
		if existing.Email == store.Email {
			return nil, domain.ErrStoreEmailTaken
		}
	}
	r.seq++
	created := cloneStore(store)
	created.ID = fmt.Sprintf("s%d", r.seq)
	r.stores[created.ID] = cloneStore(created)
	return created, nil
}

func (r *stubStoreRepo) FindByID(_ context.Context, id string) (*domain.Store, error) {
	s, ok := r.stores[id]
	if !ok {
		return nil, domain.ErrStoreNotFound
	}
	return cloneStore(s), nil
}

func (r *stubStoreRepo) FindByIDAndOwner(_ context.Context, id, ownerID string) (*domain.Store, error) {
	s, ok := r.stores[id]
	if !ok || s.OwnerID != ownerID {
		return nil, domain.ErrStoreNotFound
	}
	return cloneStore(s), nil
}

func (r *stubStoreRepo) FindByOwner(_ context.Context, ownerID string) (*domain.Store, error) {
	for _, s := range r.stores {
		if s.OwnerID == ownerID {
			return cloneStore(s), nil
		}
	}
	return nil, domain.ErrStoreNotFound
}

func (r *stubStoreRepo) List(_ context.Context, filter ports.ListStoresFilter) ([]*domain.Store, error) {
	var out []*domain.Store
	for _, s := range r.stores {
		if filter.Name != "" && !strings.Contains(strings.ToLower(s.Name), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.Address != "" && !strings.Contains(strings.ToLower(s.Address), strings.ToLower(filter.Address)) {
			continue
		}
		out = append(out, cloneStore(s))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubStoreRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.stores)), nil
}

type stubRatingRepo struct {
	ratings map[string]*domain.Rating // keyed store|user, mimicking the unique index
	seq     int
}

func newStubRatingRepo() *stubRatingRepo {
	return &stubRatingRepo{ratings: make(map[string]*domain.Rating)}
}

func ratingKey(storeID, userID string) string {
	return storeID + "|" + userID
}

func (r *stubRatingRepo) Upsert(_ context.Context, storeID, userID string, value int) (*domain.Rating, error) {
	key := ratingKey(storeID, userID)
	if existing, ok := r.ratings[key]; ok {
		existing.Value = value
		clone := *existing
		return &clone, nil
	}
	r.seq++
	created := &domain.Rating{
		ID:        fmt.Sprintf("r%d", r.seq),
		Value:     value,
		StoreID:   storeID,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	r.ratings[key] = created
	clone := *created
	return &clone, nil
}

func (r *stubRatingRepo) FindByStoreAndUser(_ context.Context, storeID, userID string) (*domain.Rating, error) {
	existing, ok := r.ratings[ratingKey(storeID, userID)]
	if !ok {
		return nil, nil
	}
	clone := *existing
	return &clone, nil
}

func (r *stubRatingRepo) ListByStore(_ context.Context, storeID string) ([]domain.Rating, error) {
	var out []domain.Rating
	for _, rt := range r.ratings {
		if rt.StoreID == storeID {
			out = append(out, *rt)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubRatingRepo) ListByStoreIDs(ctx context.Context, storeIDs []string) (map[string][]domain.Rating, error) {
	out := make(map[string][]domain.Rating)
	for _, id := range storeIDs {
		ratings, err := r.ListByStore(ctx, id)
		if err != nil {
			return nil, err
		}
		if len(ratings) > 0 {
			out[id] = ratings
		}
	}
	return out, nil
}

func (r *stubRatingRepo) ListByUser(_ context.Context, userID string) ([]domain.Rating, error) {
	var out []domain.Rating
	for _, rt := range r.ratings {
		if rt.UserID == userID {
			out = append(out, *rt)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubRatingRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.ratings)), nil
}
