package domain

import (
	"errors"
	"strings"
	"time"
	"unicode"
)

// Roles form a closed set. There is no hierarchy: every route declares the
// exact roles it accepts, and admin does not implicitly inherit the others.
const (
	RoleAdmin      = "admin"
	RoleUser       = "user"
	RoleStoreOwner = "store_owner"
)

// ValidRole reports whether role is one of the three known roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser || role == RoleStoreOwner
}

var ErrEmailTaken = errors.New("email already in use")
var ErrInvalidRole = errors.New("invalid role")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrPasswordIncorrect = errors.New("password is incorrect")

// User models an account. PasswordHash is excluded from serialization.
type User struct {
	ID           string    `json:"_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Address      string    `json:"address"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// passwordSymbols is the punctuation set accepted by both password policies.
const passwordSymbols = `!@#$%^&*(),.?":{}|<>`

// PasswordPolicyError carries the human-readable policy violation.
type PasswordPolicyError struct {
	Reason string
}

func (e *PasswordPolicyError) Error() string { return e.Reason }

// ValidateNewPassword enforces the password-change policy: length 8-16,
// at least one uppercase letter and one symbol from passwordSymbols.
func ValidateNewPassword(password string) error {
	if len(password) < 8 || len(password) > 16 {
		return &PasswordPolicyError{Reason: "Password must be between 8 and 16 characters"}
	}
	if !hasUpper(password) || !strings.ContainsAny(password, passwordSymbols) {
		return &PasswordPolicyError{Reason: "Password must contain at least one uppercase letter and one special character"}
	}
	return nil
}

// ValidRegistrationPassword enforces the self-registration policy, which has
// no upper length bound: at least 7 characters, one uppercase, one symbol.
func ValidRegistrationPassword(password string) bool {
	return len(password) >= 7 && hasUpper(password) && strings.ContainsAny(password, passwordSymbols)
}

func hasUpper(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}
