package handler

import "github.com/ankitSharma645/store-rating-api/internal/core/ports"

// createUserRequest is the admin creation payload. It skips the
// self-registration password policy on purpose; uniqueness and hashing are
// still enforced by the service.
type createUserRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Address  string `json:"address"  validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"omitempty,oneof=admin user store_owner"`
}

// userDetailResponse extends the user projection with the owned-store
// summary for store_owner accounts.
type userDetailResponse struct {
	userResponse
	Store *ports.StoreSummary `json:"store,omitempty"`
}
