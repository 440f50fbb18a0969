package rest

import (
	"errors"
	"log/slog"

	"github.com/frahmantamala/hr-portal/internal/auth"
	"github.com/frahmantamala/hr-portal/internal/transport"
	"github.com/frahmantamala/hr-portal/internal/transport/middleware"
	"github.com/frahmantamala/hr-portal/internal/transport/swagger"
	"github.com/go-chi/chi"
	"github.com/jmoiron/sqlx"
)

var errNoDatabase = errors.New("no database configured")

// Mounter registers a group of routes.
type Mounter interface {
	Mount(r chi.Router)
}

type Dependencies struct {
	Base    *transport.BaseHandler
	Logger  *slog.Logger
	DB      *sqlx.DB
	Auth    *auth.Handler
	Metrics *middleware.Metrics
	// MetricsPath is where Metrics is exposed; ignored when Metrics is nil.
	MetricsPath string
	// Pages are mounted behind the login guard.
	Pages []Mounter
}

// NewRouter wires the whole HTTP surface. System, docs and login routes are
// public; everything in Pages requires a signed-in user.
func NewRouter(deps Dependencies) *chi.Mux {
	router := chi.NewRouter()
	health := NewHealthHandler(deps.Base, deps.DB)

	router.Use(middleware.ContextLogger(deps.Logger))
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(deps.Logger))
	if deps.Metrics != nil {
		router.Use(deps.Metrics.Middleware)
	}
	router.Use(deps.Base.Sessions.Middleware)
	router.Use(deps.Auth.Gate)
	router.Use(middleware.UserContext)
	router.Use(middleware.LoggingMiddleware(nil))

	router.NotFound(deps.Base.NotFound)

	router.Get("/system/health", health.Health)
	router.Get("/system/ping", health.Ping)
	if deps.Metrics != nil {
		router.Handle(deps.MetricsPath, deps.Metrics.Handler())
	}
	router.Get(swagger.DocumentPath, swagger.Document)
	router.Handle("/swagger/*", swagger.Handler())

	deps.Auth.Mount(router)

	router.Group(func(r chi.Router) {
		r.Use(deps.Auth.RequireLogin)
		for _, m := range deps.Pages {
			m.Mount(r)
		}
	})

	return router
}
