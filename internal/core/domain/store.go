package domain

import (
	"errors"
	"time"
)

var ErrStoreNotFound = errors.New("store not found")
var ErrStoreEmailTaken = errors.New("store email already in use")
var ErrOwnerNotEligible = errors.New("owner must be an existing user with store_owner role")

// ErrNotStoreOwner is returned when an owner-scoped query does not match the
// caller. It renders as a 404 so non-owners cannot probe store existence.
var ErrNotStoreOwner = errors.New("store not found or you are not the owner")

// Store is a rateable business. Owner references a User that held the
// store_owner role when the store was created; the role is not re-validated
// afterwards (admin-controlled role changes, see DESIGN.md).
type Store struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	OwnerID   string    `json:"owner"`
	CreatedAt time.Time `json:"createdAt"`
}
