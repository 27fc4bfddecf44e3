package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ankitSharma645/store-rating-api/internal/api/middleware"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fails fast when it is absent: a non-empty user id proves the middleware
// ran and resolved a live user. Authorization never runs on a request that
// did not pass authentication.
func ctxIdentity(c echo.Context) (userID, role string, err error) {
	userID, _ = c.Get(middleware.CtxUserID).(string)
	role, _ = c.Get(middleware.CtxRole).(string)
	if userID == "" || role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "Not authorized to access this route")
	}
	return userID, role, nil
}
