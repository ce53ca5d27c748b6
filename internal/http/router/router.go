package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/TalentX-App/vacancies/internal/http/handlers"
	appmw "github.com/TalentX-App/vacancies/internal/http/middleware"
	"github.com/TalentX-App/vacancies/internal/http/middleware/ratelimit"
	"github.com/TalentX-App/vacancies/internal/logx"
)

// New constructs a chi-based http.Handler with base middleware and routes.
// The rate limit middleware is optional; pass nil to disable it.
func New(h *handlers.Handlers, vh *handlers.VacancyHandler, logger logx.Logger, rl *ratelimit.Middleware) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(appmw.Observability(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(5 * time.Second))
	if rl != nil {
		r.Use(rl.Handler())
	}

	r.Get("/ping", h.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(h.HealthcheckHead))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/vacancies", vh.Search)
		r.Post("/vacancies", vh.Create)
		r.Route("/vacancies/{id}", func(r chi.Router) {
			r.Get("/", vh.GetByID)
			r.Patch("/", vh.Update)
			r.Delete("/", vh.Delete)
		})
	})

	r.NotFound(http.HandlerFunc(h.NotFound))

	return r
}
