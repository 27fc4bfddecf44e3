package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ankitSharma645/store-rating-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"success": false, "message": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Success: false, Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, middleware rejections).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Password-policy violations carry their reason.
	var ppe *domain.PasswordPolicyError
	if errors.As(err, &ppe) {
		return http.StatusBadRequest, ppe.Reason
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, domain.ErrPasswordIncorrect):
		return http.StatusUnauthorized, "Password is incorrect"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusBadRequest, "Email already in use"
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, "Invalid role"
	case errors.Is(err, domain.ErrStoreEmailTaken):
		return http.StatusBadRequest, "Store email already in use"
	case errors.Is(err, domain.ErrNotStoreOwner):
		return http.StatusNotFound, "Store not found or you are not the owner"
	case errors.Is(err, domain.ErrStoreNotFound):
		return http.StatusNotFound, "Store not found"
	case errors.Is(err, domain.ErrOwnerNotEligible):
		return http.StatusBadRequest, "Owner must be an existing user with store_owner role"
	case errors.Is(err, domain.ErrRatingOutOfRange):
		return http.StatusBadRequest, "Rating must be between 1 and 5"
	case errors.Is(err, domain.ErrRatingConflict):
		return http.StatusBadRequest, "Rating already exists for this store and user"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Server error"
}
