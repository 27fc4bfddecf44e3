package handler

import (
	"time"

	"github.com/ankitSharma645/store-rating-api/internal/core/domain"
	"github.com/ankitSharma645/store-rating-api/internal/core/ports"
)

type createStoreRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Address string `json:"address" validate:"required,max=400"`
	Owner   string `json:"owner"   validate:"required"`
}

// submitRatingRequest deliberately carries no range tags: the [1,5] check
// lives in the domain so the service and transport agree on one rule.
type submitRatingRequest struct {
	Value int `json:"value"`
}

type ownerSummaryResponse struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// storeResponse annotates a store with its owner projection and the
// average recomputed at read time, rendered with one decimal digit.
type storeResponse struct {
	ID            string                `json:"_id"`
	Name          string                `json:"name"`
	Email         string                `json:"email"`
	Address       string                `json:"address"`
	Owner         *ownerSummaryResponse `json:"owner"`
	AverageRating string                `json:"averageRating"`
	RatingsCount  int                   `json:"ratingsCount"`
	CreatedAt     time.Time             `json:"createdAt"`
}

type ratingResponse struct {
	ID        string    `json:"_id"`
	Value     int       `json:"value"`
	Store     string    `json:"store"`
	User      string    `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
}

type ratingWithUserResponse struct {
	ID        string                `json:"_id"`
	Value     int                   `json:"value"`
	User      *ownerSummaryResponse `json:"user"`
	CreatedAt time.Time             `json:"createdAt"`
}

type storeRatingSummary struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type ratingWithStoreResponse struct {
	ID        string             `json:"_id"`
	Value     int                `json:"value"`
	Store     storeRatingSummary `json:"store"`
	CreatedAt time.Time          `json:"createdAt"`
}

// storeRatingsResponse is the owner-facing ledger view.
type storeRatingsResponse struct {
	Store         storeResponse            `json:"store"`
	Ratings       []ratingWithUserResponse `json:"ratings"`
	AverageRating string                   `json:"averageRating"`
	TotalRatings  int                      `json:"totalRatings"`
}

func toOwnerSummaryResponse(o *ports.OwnerSummary) *ownerSummaryResponse {
	if o == nil {
		return nil
	}
	return &ownerSummaryResponse{ID: o.ID, Name: o.Name, Email: o.Email}
}

func toStoreResponse(s ports.StoreWithRating) storeResponse {
	return storeResponse{
		ID:            s.Store.ID,
		Name:          s.Store.Name,
		Email:         s.Store.Email,
		Address:       s.Store.Address,
		Owner:         toOwnerSummaryResponse(s.Owner),
		AverageRating: domain.FormatAverage(s.AverageRating),
		RatingsCount:  s.RatingsCount,
		CreatedAt:     s.Store.CreatedAt,
	}
}

func toRatingResponse(r *domain.Rating) ratingResponse {
	return ratingResponse{
		ID:        r.ID,
		Value:     r.Value,
		Store:     r.StoreID,
		User:      r.UserID,
		CreatedAt: r.CreatedAt,
	}
}

func toStoreRatingsResponse(res *ports.StoreRatingsResult) storeRatingsResponse {
	ratings := make([]ratingWithUserResponse, 0, len(res.Ratings))
	for _, r := range res.Ratings {
		ratings = append(ratings, ratingWithUserResponse{
			ID:        r.Rating.ID,
			Value:     r.Rating.Value,
			User:      toOwnerSummaryResponse(r.User),
			CreatedAt: r.Rating.CreatedAt,
		})
	}

	avg := domain.FormatAverage(res.AverageRating)
	return storeRatingsResponse{
		Store: storeResponse{
			ID:            res.Store.ID,
			Name:          res.Store.Name,
			Email:         res.Store.Email,
			Address:       res.Store.Address,
			AverageRating: avg,
			RatingsCount:  res.TotalRatings,
			CreatedAt:     res.Store.CreatedAt,
		},
		Ratings:       ratings,
		AverageRating: avg,
		TotalRatings:  res.TotalRatings,
	}
}
