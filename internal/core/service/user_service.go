package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/ankitSharma645/store-rating-api/internal/core/domain"
	"github.com/ankitSharma645/store-rating-api/internal/core/ports"
)

// UserService implements the admin-only queries.
type UserService struct {
	users   ports.UserRepository
	stores  ports.StoreRepository
	ratings ports.RatingRepository
	log     zerolog.Logger
}

func NewUserService(users ports.UserRepository, stores ports.StoreRepository, ratings ports.RatingRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, stores: stores, ratings: ratings, log: log}
}

func (s *UserService) ListUsers(ctx context.Context, filter ports.ListUsersFilter) ([]*domain.User, error) {
	return s.users.List(ctx, filter)
}

// GetUser returns the user and, for store owners, a summary of their store
// including the average rating computed at read time.
func (s *UserService) GetUser(ctx context.Context, id string) (*ports.UserDetail, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &ports.UserDetail{User: *user}
	if user.Role != domain.RoleStoreOwner {
		return detail, nil
	}

	store, err := s.stores.FindByOwner(ctx, user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrStoreNotFound) {
			return detail, nil
		}
		return nil, err
	}

	entries, err := s.ratings.ListByStore(ctx, store.ID)
	if err != nil {
		return nil, err
	}

	detail.Store = &ports.StoreSummary{
		Name:          store.Name,
		Email:         store.Email,
		Address:       store.Address,
		AverageRating: domain.FormatAverage(domain.AverageRating(entries)),
	}
	return detail, nil
}

// CreateUser is the admin creation path: no payload policy beyond role
// membership, but uniqueness and hashing are still enforced.
func (s *UserService) CreateUser(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         in.Name,
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		Address:      in.Address,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("user created by admin")
	return created, nil
}

func (s *UserService) Stats(ctx context.Context) (*ports.DashboardStats, error) {
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalStores, err := s.stores.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalRatings, err := s.ratings.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &ports.DashboardStats{
		TotalUsers:   totalUsers,
		TotalStores:  totalStores,
		TotalRatings: totalRatings,
	}, nil
}

func (s *UserService) StoreOwners(ctx context.Context) ([]ports.OwnerSummary, error) {
	owners, err := s.users.ListByRole(ctx, domain.RoleStoreOwner)
	if err != nil {
		return nil, err
	}

	out := make([]ports.OwnerSummary, 0, len(owners))
	for _, u := range owners {
		out = append(out, ports.OwnerSummary{ID: u.ID, Name: u.Name, Email: u.Email})
	}
	return out, nil
}
