package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ankitSharma645/store-rating-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)
	return rec.Code, rec.Body.String()
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
		{"password incorrect", domain.ErrPasswordIncorrect, http.StatusUnauthorized, "Password is incorrect"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "User not found"},
		{"email taken", domain.ErrEmailTaken, http.StatusBadRequest, "Email already in use"},
		{"invalid role", domain.ErrInvalidRole, http.StatusBadRequest, "Invalid role"},
		{"store email taken", domain.ErrStoreEmailTaken, http.StatusBadRequest, "Store email already in use"},
		{"not store owner", domain.ErrNotStoreOwner, http.StatusNotFound, "Store not found or you are not the owner"},
		{"store not found", domain.ErrStoreNotFound, http.StatusNotFound, "Store not found"},
		{"owner not eligible", domain.ErrOwnerNotEligible, http.StatusBadRequest, "Owner must be an existing user with store_owner role"},
		{"rating out of range", domain.ErrRatingOutOfRange, http.StatusBadRequest, "Rating must be between 1 and 5"},
		{"rating conflict", domain.ErrRatingConflict, http.StatusBadRequest, "Rating already exists for this store and user"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, body := renderError(t, tc.err)
			if code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, code)
			}
			want := `"message":"` + tc.message + `"`
			if !strings.Contains(body, want) {
				t.Fatalf("expected %s in %s", want, body)
			}
			if !strings.Contains(body, `"success":false`) {
				t.Fatalf("expected failure envelope, got %s", body)
			}
		})
	}
}

func TestErrorHandler_PasswordPolicyReason(t *testing.T) {
	code, body := renderError(t, &domain.PasswordPolicyError{Reason: "Password must be between 8 and 16 characters"})
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if !strings.Contains(body, "between 8 and 16") {
		t.Fatalf("expected policy reason, got %s", body)
	}
}

func TestErrorHandler_EchoHTTPErrorPassthrough(t *testing.T) {
	code, body := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "Not authorized to access this route"))
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	if !strings.Contains(body, "Not authorized to access this route") {
		t.Fatalf("unexpected body: %s", body)
	}
}

// Unknown errors never leak their text to the client.
func TestErrorHandler_UnknownErrorIsOpaque(t *testing.T) {
	code, body := renderError(t, errors.New("mongo: connection reset"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if strings.Contains(body, "mongo") {
		t.Fatalf("internal detail leaked: %s", body)
	}
	if !strings.Contains(body, "Server error") {
		t.Fatalf("expected generic message, got %s", body)
	}
}

