package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ankitSharma645/store-rating-api/internal/api/metrics"
	"github.com/ankitSharma645/store-rating-api/internal/core/ports"
)

// UserHandler handles the admin-only user endpoints. Role enforcement is
// the router's job (RBAC middleware); handlers assume an admin caller.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List returns users matching the query filters.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        name     query     string  false  "Substring filter on name"
// @Param        email    query     string  false  "Substring filter on email"
// @Param        address  query     string  false  "Substring filter on address"
// @Param        role     query     string  false  "Exact role filter"
// @Param        sort     query     string  false  "field:asc|desc, default createdAt:desc"
// @Success      200      {object}  successResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	sortField, sortDesc := parseSort(c.QueryParam("sort"))
	users, err := h.userService.ListUsers(c.Request().Context(), ports.ListUsersFilter{
		Name:      c.QueryParam("name"),
		Email:     c.QueryParam("email"),
		Address:   c.QueryParam("address"),
		Role:      c.QueryParam("role"),
		SortField: sortField,
		SortDesc:  sortDesc,
	})
	if err != nil {
		return err
	}

	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return respondCount(c, http.StatusOK, len(out), out)
}

// Get returns one user; for store owners the owned-store summary rides along.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  successResponse
// @Failure      404  {object}  failureResponse
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	detail, err := h.userService.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, userDetailResponse{
		userResponse: toUserResponse(&detail.User),
		Store:        detail.Store,
	})
}

// Create adds a user on behalf of an admin.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  successResponse
// @Failure      400   {object}  failureResponse
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.CreateUser(c.Request().Context(), ports.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Address:  req.Address,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}

	metrics.UsersRegisteredTotal.WithLabelValues(user.Role).Inc()
	return respond(c, http.StatusCreated, toUserResponse(user))
}

// Stats returns the dashboard counters.
//
// @Summary      Dashboard stats
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  successResponse
// @Router       /users/dashboard/stats [get]
func (h *UserHandler) Stats(c echo.Context) error {
	stats, err := h.userService.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, stats)
}

// StoreOwners lists the id/name/email projection of store_owner users.
//
// @Summary      List store owners
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  successResponse
// @Router       /users/store-owners [get]
func (h *UserHandler) StoreOwners(c echo.Context) error {
	owners, err := h.userService.StoreOwners(c.Request().Context())
	if err != nil {
		return err
	}
	return respondCount(c, http.StatusOK, len(owners), owners)
}
