package handler

import "github.com/ankitSharma645/store-rating-api/internal/core/domain"

type registerRequest struct {
	Name     string `json:"name"     validate:"required,min=1,max=20"`
	Email    string `json:"email"    validate:"required,email"`
	Address  string `json:"address"  validate:"required,max=400"`
	Password string `json:"password" validate:"required,storepassword"`
	Role     string `json:"role"     validate:"omitempty,oneof=admin user store_owner"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// updatePasswordRequest carries only presence checks; the 8-16 policy on
// the new password is enforced by the credential service.
type updatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required"`
}

// userResponse is the public projection of a user; the password hash never
// crosses the transport boundary.
type userResponse struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Role    string `json:"role"`
}

// authDataResponse is the login / password-change payload: the user
// projection plus a freshly signed token.
type authDataResponse struct {
	userResponse
	Token string `json:"token"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Address: u.Address,
		Role:    u.Role,
	}
}
