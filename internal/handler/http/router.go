package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/utafrali/ReviewDeskGo/pkg/health"
	"github.com/utafrali/ReviewDeskGo/pkg/middleware"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Reviews     *ReviewHandler
	Responses   *ResponseHandler
	Templates   *TemplateHandler
	Dashboard   *DashboardHandler
	Suggestions *SuggestionHandler
	GMB         *GMBHandler
	Export      *ExportHandler
	Drafts      *DraftHandler
	Auth        *AuthHandler
	Health      *health.Handler
}

// NewRouter builds the full middleware chain and API surface.
func NewRouter(h Handlers, l *slog.Logger, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(l))
	r.Use(middleware.RequestLogging(l))
	r.Use(middleware.Metrics)
	r.Use(middleware.CORS(allowedOrigins))

	r.Get("/healthz", h.Health.Live)
	r.Get("/readyz", h.Health.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/reviews", func(r chi.Router) {
			h.Reviews.Routes(r)
			r.Get("/{id}/responses", h.Responses.ListByReview)
			r.Post("/{id}/suggestions", h.Suggestions.Generate)
			r.Post("/{id}/reply", h.GMB.Reply)
			r.Put("/{id}/draft", h.Drafts.Save)
			r.Get("/{id}/draft", h.Drafts.Get)
			r.Delete("/{id}/draft", h.Drafts.Delete)
		})

		r.Route("/templates", h.Templates.Routes)
		r.Post("/responses", h.Responses.Create)
		r.Get("/dashboard/stats", h.Dashboard.Stats)
		r.Post("/ai/improve-response", h.Suggestions.Improve)
		r.Route("/gmb", h.GMB.Routes)
		r.Get("/export/reviews", h.Export.Reviews)

		r.Post("/auth/register", h.Auth.Register)
		r.Post("/auth/login", h.Auth.Login)
	})

	return r
}
