package handler_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ankitSharma645/store-rating-api/internal/api"
	"github.com/ankitSharma645/store-rating-api/internal/api/handler"
	"github.com/ankitSharma645/store-rating-api/internal/api/middleware"
	"github.com/ankitSharma645/store-rating-api/internal/core/domain"
	"github.com/ankitSharma645/store-rating-api/internal/core/ports"
)

// newEcho builds an echo instance with the request validator and the
// central error handler wired the same way the router does it.
func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())
	return e
}

// asUser injects the identity the Auth middleware would have resolved.
func asUser(userID, role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(middleware.CtxUserID, userID)
			c.Set(middleware.CtxRole, role)
			return next(c)
		}
	}
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	out := map[string]any{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON body %q: %v", rec.Body.String(), err)
	}
	return out
}

var (
	_ ports.AuthService  = (*stubAuthService)(nil)
	_ ports.StoreService = (*stubStoreService)(nil)
	_ ports.UserService  = (*stubUserService)(nil)
)

// stubAuthService returns canned results and records the inputs it saw.

type stubAuthService struct {
	registerIn  ports.RegisterInput
	registerOut *domain.User
	registerErr error

	loginEmail    string
	loginPassword string
	loginToken    string
	loginUser     *domain.User
	loginErr      error

	meUser *domain.User
	meErr  error

	changeCurrent string
	changeNew     string
	changeToken   string
	changeUser    *domain.User
	changeErr     error
}

func (s *stubAuthService) Register(_ context.Context, in ports.RegisterInput) (*domain.User, error) {
	s.registerIn = in
	return s.registerOut, s.registerErr
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (string, *domain.User, error) {
	s.loginEmail, s.loginPassword = email, password
	return s.loginToken, s.loginUser, s.loginErr
}

func (s *stubAuthService) Me(context.Context, string) (*domain.User, error) {
	return s.meUser, s.meErr
}

func (s *stubAuthService) ChangePassword(_ context.Context, _, current, newPassword string) (string, *domain.User, error) {
	s.changeCurrent, s.changeNew = current, newPassword
	return s.changeToken, s.changeUser, s.changeErr
}

// stubStoreService mirrors the store service contract.

type stubStoreService struct {
	listOut []ports.StoreWithRating
	listErr error

	getOut *ports.StoreWithRating
	getErr error

	createIn  ports.CreateStoreInput
	createOut *domain.Store
	createErr error

	submitStoreID string
	submitUserID  string
	submitValue   int
	submitOut     *domain.Rating
	submitErr     error

	myRatingOut *domain.Rating
	myRatingErr error

	storeRatingsOut *ports.StoreRatingsResult
	storeRatingsErr error

	ownerStoreOut *ports.StoreRatingsResult
	ownerStoreErr error

	userRatingsOut []ports.RatingWithStore
	userRatingsErr error
}

func (s *stubStoreService) ListStores(context.Context, ports.ListStoresFilter) ([]ports.StoreWithRating, error) {
	return s.listOut, s.listErr
}

func (s *stubStoreService) GetStore(context.Context, string) (*ports.StoreWithRating, error) {
	return s.getOut, s.getErr
}

func (s *stubStoreService) CreateStore(_ context.Context, in ports.CreateStoreInput) (*domain.Store, error) {
	s.createIn = in
	return s.createOut, s.createErr
}

func (s *stubStoreService) SubmitRating(_ context.Context, storeID, userID string, value int) (*domain.Rating, error) {
	s.submitStoreID, s.submitUserID, s.submitValue = storeID, userID, value
	return s.submitOut, s.submitErr
}

func (s *stubStoreService) MyRating(context.Context, string, string) (*domain.Rating, error) {
	return s.myRatingOut, s.myRatingErr
}

func (s *stubStoreService) StoreRatings(context.Context, string, string) (*ports.StoreRatingsResult, error) {
	return s.storeRatingsOut, s.storeRatingsErr
}

func (s *stubStoreService) OwnerStoreWithRatings(context.Context, string) (*ports.StoreRatingsResult, error) {
	return s.ownerStoreOut, s.ownerStoreErr
}

func (s *stubStoreService) UserRatings(context.Context, string) ([]ports.RatingWithStore, error) {
	return s.userRatingsOut, s.userRatingsErr
}

// stubUserService mirrors the admin query contract.

type stubUserService struct {
	listOut []*domain.User
	listErr error

	getOut *ports.UserDetail
	getErr error

	createIn  ports.CreateUserInput
	createOut *domain.User
	createErr error

	statsOut *ports.DashboardStats
	statsErr error

	ownersOut []ports.OwnerSummary
	ownersErr error
}

func (s *stubUserService) ListUsers(context.Context, ports.ListUsersFilter) ([]*domain.User, error) {
	return s.listOut, s.listErr
}

func (s *stubUserService) GetUser(context.Context, string) (*ports.UserDetail, error) {
	return s.getOut, s.getErr
}

func (s *stubUserService) CreateUser(_ context.Context, in ports.CreateUserInput) (*domain.User, error) {
	s.createIn = in
	return s.createOut, s.createErr
}

func (s *stubUserService) Stats(context.Context) (*ports.DashboardStats, error) {
	return s.statsOut, s.statsErr
}

func (s *stubUserService) StoreOwners(context.Context) ([]ports.OwnerSummary, error) {
	return s.ownersOut, s.ownersErr
}
