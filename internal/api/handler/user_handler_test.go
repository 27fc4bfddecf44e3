package handler_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/ankitSharma645/store-rating-api/internal/api/handler"
	"github.com/ankitSharma645/store-rating-api/internal/core/domain"
	"github.com/ankitSharma645/store-rating-api/internal/core/ports"
)

func TestUserHandler_List(t *testing.T) {
	svc := &stubUserService{listOut: []*domain.User{
		{ID: "u1", Name: "Alice", Email: "alice@example.com", Role: domain.RoleUser},
		{ID: "u2", Name: "Bob", Email: "bob@example.com", Role: domain.RoleAdmin},
	}}
	e := newEcho()
	e.GET("/users", handler.NewUserHandler(svc).List, asUser("admin1", domain.RoleAdmin))

	rec := doJSON(e, http.MethodGet, "/users", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["count"] != float64(2) {
		t.Fatalf("expected count 2, got %v", body["count"])
	}
	// The hash never crosses the transport boundary.
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("password material in response: %s", rec.Body.String())
	}
}

func TestUserHandler_Get_WithStoreSummary(t *testing.T) {
	svc := &stubUserService{getOut: &ports.UserDetail{
		User: domain.User{ID: "u1", Name: "Owner", Email: "owner@example.com", Role: domain.RoleStoreOwner},
		Store: &ports.StoreSummary{
			Name: "Shop", Email: "shop@example.com", Address: "a", AverageRating: "4.5",
		},
	}}
	e := newEcho()
	e.GET("/users/:id", handler.NewUserHandler(svc).Get, asUser("admin1", domain.RoleAdmin))

	rec := doJSON(e, http.MethodGet, "/users/u1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	data, _ := body["data"].(map[string]any)
	store, _ := data["store"].(map[string]any)
	if store["rating"] != "4.5" {
		t.Fatalf("expected store summary with rating, got %v", data)
	}
}

func TestUserHandler_Get_OmitsStoreForPlainUser(t *testing.T) {
	svc := &stubUserService{getOut: &ports.UserDetail{
		User: domain.User{ID: "u1", Name: "Alice", Email: "alice@example.com", Role: domain.RoleUser},
	}}
	e := newEcho()
	e.GET("/users/:id", handler.NewUserHandler(svc).Get, asUser("admin1", domain.RoleAdmin))

	rec := doJSON(e, http.MethodGet, "/users/u1", "")
	body := decodeBody(t, rec)
	data, _ := body["data"].(map[string]any)
	if _, ok := data["store"]; ok {
		t.Fatalf("store key must be omitted for non-owners, got %v", data)
	}
}

func TestUserHandler_Get_NotFound(t *testing.T) {
	svc := &stubUserService{getErr: domain.ErrUserNotFound}
	e := newEcho()
	e.GET("/users/:id", handler.NewUserHandler(svc).Get, asUser("admin1", domain.RoleAdmin))

	rec := doJSON(e, http.MethodGet, "/users/missing", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestUserHandler_Create_Success(t *testing.T) {
	svc := &stubUserService{createOut: &domain.User{
		ID: "u1", Name: "Alice", Email: "alice@example.com", Role: domain.RoleStoreOwner,
	}}
	e := newEcho()
	e.POST("/users", handler.NewUserHandler(svc).Create, asUser("admin1", domain.RoleAdmin))

	rec := doJSON(e, http.MethodPost, "/users",
		`{"name":"Alice","email":"alice@example.com","address":"a","password":"whatever","role":"store_owner"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.createIn.Role != domain.RoleStoreOwner {
		t.Fatalf("expected role forwarded, got %q", svc.createIn.Role)
	}
}

func TestUserHandler_Create_UnknownRole(t *testing.T) {
	svc := &stubUserService{}
	e := newEcho()
	e.POST("/users", handler.NewUserHandler(svc).Create, asUser("admin1", domain.RoleAdmin))

	rec := doJSON(e, http.MethodPost, "/users",
		`{"name":"Alice","email":"alice@example.com","address":"a","password":"x","role":"superadmin"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown role, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.createIn.Name != "" {
		t.Fatalf("service should not have been called")
	}
}

func TestUserHandler_Stats(t *testing.T) {
	svc := &stubUserService{statsOut: &ports.DashboardStats{
		TotalUsers: 10, TotalStores: 3, TotalRatings: 25,
	}}
	e := newEcho()
	e.GET("/users/dashboard/stats", handler.NewUserHandler(svc).Stats, asUser("admin1", domain.RoleAdmin))

	rec := doJSON(e, http.MethodGet, "/users/dashboard/stats", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	data, _ := body["data"].(map[string]any)
	if data["totalUsers"] != float64(10) || data["totalStores"] != float64(3) || data["totalRatings"] != float64(25) {
		t.Fatalf("unexpected stats: %v", data)
	}
}

func TestUserHandler_StoreOwners(t *testing.T) {
	svc := &stubUserService{ownersOut: []ports.OwnerSummary{
		{ID: "u1", Name: "Owner", Email: "owner@example.com"},
	}}
	e := newEcho()
	e.GET("/users/store-owners", handler.NewUserHandler(svc).StoreOwners, asUser("admin1", domain.RoleAdmin))

	rec := doJSON(e, http.MethodGet, "/users/store-owners", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["count"] != float64(1) {
		t.Fatalf("expected count 1, got %v", body["count"])
	}
	data, _ := body["data"].([]any)
	owner, _ := data[0].(map[string]any)
	if owner["email"] != "owner@example.com" {
		t.Fatalf("unexpected owner projection: %v", owner)
	}
}
