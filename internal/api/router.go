package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/moviehub/rental-system/internal/api/handler"
	"github.com/moviehub/rental-system/internal/api/middleware"
	"github.com/moviehub/rental-system/internal/core/domain"
	"github.com/moviehub/rental-system/internal/core/ports"
	"github.com/moviehub/rental-system/internal/infrastructure/http/handlers"
)

// Deps bundles everything the router needs. Mongo and Redis may be nil when
// the memory store is selected; the readiness probe skips absent backends.
type Deps struct {
	AuthService   ports.AuthService
	RentalService ports.RentalService
	Mongo         *mongo.Database
	Redis         *redis.Client
	JWTSecret     string
	Logger        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("rental"))

	authHandler := handler.NewAuthHandler(deps.AuthService)
	movieHandler := handler.NewMovieHandler(deps.RentalService)
	authMiddleware := middleware.Auth(deps.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/register-admin", authHandler.RegisterAdmin)
	e.POST("/auth/login", authHandler.Login)

	// --- Authenticated API ---
	v1 := e.Group("/v1", authMiddleware)
	v1.GET("/users", authHandler.ListUsers, adminOnly)
	v1.GET("/movies", movieHandler.List)
	v1.POST("/movies", movieHandler.Add, adminOnly)
	v1.PUT("/movies/:title", movieHandler.Edit, adminOnly)
	v1.DELETE("/movies/:title", movieHandler.Remove, adminOnly)
	v1.POST("/movies/:title/rent", movieHandler.Rent)
	v1.POST("/movies/:title/buy", movieHandler.Buy)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
