package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/riderapp/admin-console/internal/api/handler"
	"github.com/riderapp/admin-console/internal/api/middleware"
	"github.com/riderapp/admin-console/internal/core/domain"
	"github.com/riderapp/admin-console/internal/core/ports"
)

// Dependencies carries everything the router needs. Mongo and Redis are nil
// under the in-memory profile; the readiness probe skips absent backends.
type Dependencies struct {
	Sessions  ports.SessionService
	Directory ports.DirectoryService
	Revoker   ports.TokenRevoker
	JWTSecret string
	Logger    zerolog.Logger

	Mongo *mongo.Database
	Redis *redis.Client
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("riderapp"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Sessions)
	directoryHandler := handler.NewDirectoryHandler(deps.Directory)
	settingsHandler := handler.NewSettingsHandler(deps.Directory)
	activityHandler := handler.NewActivityHandler(deps.Directory)
	rolesHandler := handler.NewRolesHandler()

	authMW := middleware.Auth(deps.JWTSecret, deps.Revoker)
	adminOnly := middleware.RBAC(string(domain.SessionRoleAdmin))

	// --- Auth routes ---
	e.POST("/v1/auth/login", authHandler.Login)
	e.POST("/v1/auth/demo-login", authHandler.DemoLogin)
	e.POST("/v1/auth/logout", authHandler.Logout, authMW)
	e.GET("/v1/auth/me", authHandler.Me, authMW)

	// --- Directory routes ---
	e.GET("/v1/users", directoryHandler.List, authMW)
	e.POST("/v1/users", directoryHandler.Create, authMW, adminOnly)
	e.DELETE("/v1/users/:id", directoryHandler.Delete, authMW, adminOnly)

	// --- Settings / activity / roles ---
	e.GET("/v1/settings", settingsHandler.Get, authMW)
	e.PATCH("/v1/settings", settingsHandler.Update, authMW, adminOnly)
	e.GET("/v1/activity", activityHandler.List, authMW)
	e.GET("/v1/roles", rolesHandler.List, authMW)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability / docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
