package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"publicdashboard/internal/handlers"
	"publicdashboard/internal/session"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Dashboards *handlers.DashboardHandler
	Health     *handlers.HealthHandler
	Sessions   *session.Manager
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", deps.Health)
	})

	r.Route(handlers.ManagePath, func(r chi.Router) {
		r.Use(deps.Sessions.Middleware)

		r.Get("/", deps.Dashboards.Manage)
		r.Post("/", deps.Dashboards.Create)
		r.Get("/new", deps.Dashboards.CreateForm)
		r.Route("/{id}", func(r chi.Router) {
			r.Post("/", deps.Dashboards.Modify)
			r.Get("/edit", deps.Dashboards.ModifyForm)
			r.Get("/remove", deps.Dashboards.ConfirmRemove)
			r.Post("/remove", deps.Dashboards.Remove)
			r.Post("/move-up", deps.Dashboards.MoveUp)
			r.Post("/move-down", deps.Dashboards.MoveDown)
		})
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, handlers.ManagePath, http.StatusFound)
	})

	return r
}
