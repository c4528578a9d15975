package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/portfolio/contact-api/docs"
	"github.com/portfolio/contact-api/internal/api/handler"
	"github.com/portfolio/contact-api/internal/api/middleware"
	"github.com/portfolio/contact-api/internal/core/domain"
	"github.com/portfolio/contact-api/internal/core/ports"
)

// Services are the application services the routes delegate to.
type Services struct {
	Users    ports.UserService
	Messages ports.MessageService
	Auth     ports.AuthService
	Tokens   ports.TokenService
}

// Options configures cross-cutting behaviour of the router.
type Options struct {
	Log        zerolog.Logger
	Production bool
	// Registerer and Gatherer back the HTTP metrics and /metrics.
	// Both default to the global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
	// Health lists the dependencies checked by /alive/ready.
	Health map[string]handler.Pinger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, opts Options) *echo.Echo {
	if opts.Registerer == nil {
		opts.Registerer = prometheus.DefaultRegisterer
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Log, opts.Production)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(opts.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "contact_api",
		Subsystem:  "http",
		Registerer: opts.Registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Handlers ---
	userHandler := handler.NewUserHandler(svc.Users)
	messageHandler := handler.NewMessageHandler(svc.Messages)
	authHandler := handler.NewAuthHandler(svc.Auth)
	healthHandler := handler.NewHealthHandler(opts.Health)

	authn := middleware.Auth(svc.Tokens)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Probes and tooling (no auth required) ---
	e.GET("/alive", healthHandler.Alive)
	e.GET("/alive/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: opts.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Public ---
	e.POST("/users", userHandler.Create)
	e.POST("/verifyUser", authHandler.VerifyUser)
	e.POST("/admin/login", authHandler.AdminLogin)
	e.POST("/messages", messageHandler.Create)

	// --- Any authenticated user ---
	e.GET("/users", userHandler.List, authn)
	e.GET("/users/:id", userHandler.Get, authn)
	e.GET("/searchUser", userHandler.Search, authn)
	e.PUT("/users/:id", userHandler.Update, authn)
	e.DELETE("/users/:id", userHandler.Delete, authn)

	// --- Admin only ---
	e.PATCH("/users/:id/role", userHandler.ChangeRole, authn, adminOnly)

	e.GET("/messages", messageHandler.List, authn, adminOnly)
	e.GET("/messages/:id", messageHandler.Get, authn, adminOnly)
	e.PATCH("/messages/:id/status", messageHandler.UpdateStatus, authn, adminOnly)
	e.DELETE("/messages/:id", messageHandler.Delete, authn, adminOnly)

	return e
}
