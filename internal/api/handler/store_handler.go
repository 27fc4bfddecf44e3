package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ankitSharma645/store-rating-api/internal/api/metrics"
	"github.com/ankitSharma645/store-rating-api/internal/core/ports"
)

// StoreHandler handles store listing, creation and rating endpoints.
type StoreHandler struct {
	storeService ports.StoreService
}

func NewStoreHandler(storeService ports.StoreService) *StoreHandler {
	return &StoreHandler{storeService: storeService}
}

// parseSort splits a "field:direction" query value, e.g. "name:desc".
func parseSort(raw string) (field string, desc bool) {
	if raw == "" {
		return "", false
	}
	parts := strings.SplitN(raw, ":", 2)
	field = parts[0]
	desc = len(parts) == 2 && parts[1] == "desc"
	return field, desc
}

// List returns all stores with averages, filtered and sorted.
//
// @Summary      List stores
// @Tags         stores
// @Produce      json
// @Param        name     query     string  false  "Substring filter on name"
// @Param        address  query     string  false  "Substring filter on address"
// @Param        sort     query     string  false  "field:asc|desc, default createdAt:desc"
// @Success      200      {object}  successResponse
// @Router       /stores [get]
func (h *StoreHandler) List(c echo.Context) error {
	sortField, sortDesc := parseSort(c.QueryParam("sort"))
	stores, err := h.storeService.ListStores(c.Request().Context(), ports.ListStoresFilter{
		Name:      c.QueryParam("name"),
		Address:   c.QueryParam("address"),
		SortField: sortField,
		SortDesc:  sortDesc,
	})
	if err != nil {
		return err
	}

	out := make([]storeResponse, 0, len(stores))
	for _, s := range stores {
		out = append(out, toStoreResponse(s))
	}
	return respondCount(c, http.StatusOK, len(out), out)
}

// Get returns a single store with its average rating.
//
// @Summary      Get a store
// @Tags         stores
// @Produce      json
// @Param        id   path      string  true  "Store id"
// @Success      200  {object}  successResponse
// @Failure      404  {object}  failureResponse
// @Router       /stores/{id} [get]
func (h *StoreHandler) Get(c echo.Context) error {
	store, err := h.storeService.GetStore(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, toStoreResponse(*store))
}

// Create registers a new store under an existing store_owner user.
//
// @Summary      Create a store
// @Tags         stores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createStoreRequest  true  "Store details"
// @Success      201   {object}  successResponse
// @Failure      400   {object}  failureResponse
// @Router       /stores [post]
func (h *StoreHandler) Create(c echo.Context) error {
	var req createStoreRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	store, err := h.storeService.CreateStore(c.Request().Context(), ports.CreateStoreInput{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		OwnerID: req.Owner,
	})
	if err != nil {
		return err
	}

	metrics.StoresCreatedTotal.Inc()
	return respond(c, http.StatusCreated, store)
}

// SubmitRating upserts the caller's rating for a store.
//
// @Summary      Submit or update a rating
// @Tags         ratings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Store id"
// @Param        body  body      submitRatingRequest  true  "Rating value 1-5"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  failureResponse
// @Failure      404   {object}  failureResponse
// @Router       /stores/{id}/ratings [post]
func (h *StoreHandler) SubmitRating(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req submitRatingRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid payload")
	}

	rating, err := h.storeService.SubmitRating(c.Request().Context(), c.Param("id"), userID, req.Value)
	if err != nil {
		return err
	}

	metrics.RatingsSubmittedTotal.WithLabelValues(strconv.Itoa(rating.Value)).Inc()
	return respond(c, http.StatusOK, toRatingResponse(rating))
}

// MyRating returns the caller's rating for a store, or null.
//
// @Summary      Get own rating for a store
// @Tags         ratings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Store id"
// @Success      200  {object}  successResponse
// @Router       /stores/{id}/my-rating [get]
func (h *StoreHandler) MyRating(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	rating, err := h.storeService.MyRating(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return err
	}
	if rating == nil {
		return respond(c, http.StatusOK, nil)
	}
	return respond(c, http.StatusOK, toRatingResponse(rating))
}

// ListRatings returns a store's ratings for its owner. The ownership gate
// makes someone else's store indistinguishable from a missing one.
//
// @Summary      List ratings for an owned store
// @Tags         ratings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Store id"
// @Success      200  {object}  successResponse
// @Failure      404  {object}  failureResponse
// @Router       /stores/{id}/ratings [get]
func (h *StoreHandler) ListRatings(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	result, err := h.storeService.StoreRatings(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return err
	}

	resp := toStoreRatingsResponse(result)
	return respond(c, http.StatusOK, map[string]any{
		"averageRating": resp.AverageRating,
		"ratings":       resp.Ratings,
	})
}

// OwnerStore returns the caller's store with its full ratings ledger.
//
// @Summary      Get own store with ratings
// @Tags         ratings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  successResponse
// @Failure      404  {object}  failureResponse
// @Router       /stores/owner/with-ratings [get]
func (h *StoreHandler) OwnerStore(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	result, err := h.storeService.OwnerStoreWithRatings(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, toStoreRatingsResponse(result))
}

// UserRatings returns every rating the caller has submitted.
//
// @Summary      List own ratings across stores
// @Tags         ratings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  successResponse
// @Router       /stores/user/ratings [get]
func (h *StoreHandler) UserRatings(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	ratings, err := h.storeService.UserRatings(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	out := make([]ratingWithStoreResponse, 0, len(ratings))
	for _, r := range ratings {
		out = append(out, ratingWithStoreResponse{
			ID:        r.Rating.ID,
			Value:     r.Rating.Value,
			Store:     storeRatingSummary{Name: r.StoreName, Address: r.StoreAddress},
			CreatedAt: r.Rating.CreatedAt,
		})
	}
	return respondCount(c, http.StatusOK, len(out), out)
}
