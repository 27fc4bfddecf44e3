package domain

import (
	"errors"
	"fmt"
	"time"
)

const (
	MinRatingValue = 1
	MaxRatingValue = 5
)

var ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")
var ErrRatingConflict = errors.New("rating already exists for this store and user")

// Rating is one user's score for one store. At most one exists per
// (store, user) pair; resubmission overwrites the value in place.
type Rating struct {
	ID        string    `json:"_id"`
	Value     int       `json:"value"`
	StoreID   string    `json:"store"`
	UserID    string    `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
}

// ValidateRatingValue checks the closed [1,5] range.
func ValidateRatingValue(value int) error {
	if value < MinRatingValue || value > MaxRatingValue {
		return ErrRatingOutOfRange
	}
	return nil
}

// AverageRating is the arithmetic mean of the given ratings, 0 when there
// are none. It is recomputed on every read; the value is never stored.
func AverageRating(ratings []Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Value
	}
	return float64(sum) / float64(len(ratings))
}

// FormatAverage renders an average with one decimal digit ("4.0", "0.0").
func FormatAverage(avg float64) string {
	return fmt.Sprintf("%.1f", avg)
}
