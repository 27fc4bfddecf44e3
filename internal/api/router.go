package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ankitSharma645/store-rating-api/internal/api/handler"
	"github.com/ankitSharma645/store-rating-api/internal/api/middleware"
	"github.com/ankitSharma645/store-rating-api/internal/core/domain"
	"github.com/ankitSharma645/store-rating-api/internal/core/service"
	mongodb "github.com/ankitSharma645/store-rating-api/internal/infrastructure/db/mongo"
)

// RouterConfig carries the settings the router needs from the process
// configuration; nothing is read from ambient state.
type RouterConfig struct {
	JWTSecret  string
	TokenTTL   time.Duration
	CORSOrigin string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, cfg RouterConfig, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowCredentials: true,
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddleware("storerating"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	storeRepo := mongodb.NewStoreRepository(db)
	ratingRepo := mongodb.NewRatingRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, log)
	storeService := service.NewStoreService(storeRepo, userRepo, ratingRepo, log)
	userService := service.NewUserService(userRepo, storeRepo, ratingRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	storeHandler := handler.NewStoreHandler(storeService)
	userHandler := handler.NewUserHandler(userService)

	protect := middleware.Auth(cfg.JWTSecret, userRepo)

	// --- Auth routes ---
	auth := e.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authHandler.Me, protect)
	auth.PUT("/updatepassword", authHandler.UpdatePassword, protect)
	auth.GET("/logout", authHandler.Logout, protect)

	// --- Store routes ---
	// Fixed-segment paths are registered before /:id so the parameter
	// cannot swallow the literal segments.
	stores := e.Group("/stores")
	stores.GET("", storeHandler.List)
	stores.GET("/user/ratings", storeHandler.UserRatings, protect, middleware.RBAC(domain.RoleUser))
	stores.GET("/owner/with-ratings", storeHandler.OwnerStore, protect, middleware.RBAC(domain.RoleStoreOwner))
	stores.POST("", storeHandler.Create, protect, middleware.RBAC(domain.RoleAdmin))
	stores.GET("/:id", storeHandler.Get)
	stores.GET("/:id/ratings", storeHandler.ListRatings, protect, middleware.RBAC(domain.RoleStoreOwner))
	stores.POST("/:id/ratings", storeHandler.SubmitRating, protect, middleware.RBAC(domain.RoleUser))
	stores.GET("/:id/my-rating", storeHandler.MyRating, protect, middleware.RBAC(domain.RoleUser))

	// --- User routes (admin only) ---
	users := e.Group("/users", protect, middleware.RBAC(domain.RoleAdmin))
	users.GET("/dashboard/stats", userHandler.Stats)
	users.GET("/store-owners", userHandler.StoreOwners)
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.GET("/:id", userHandler.Get)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is MongoDB up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
