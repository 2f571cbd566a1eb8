package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/albapay/albapay/internal/http/dashboard"
	"github.com/albapay/albapay/internal/http/profile"
	"github.com/albapay/albapay/internal/http/settlement"
	"github.com/albapay/albapay/internal/http/worklog"
	"github.com/albapay/albapay/internal/metrics"
)

func New(
	dashboardV1 *dashboard.Handler,
	settlementV1 *settlement.Handler,
	profileV1 *profile.Handler,
	worklogV1 *worklog.Handler,
	authMiddleware func(http.Handler) http.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(metrics.Middleware)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "PUT", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.Handle("/metrics", metrics.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/dashboard", dashboardV1.Routes)

		r.Route("/settlements", settlementV1.Routes)

		r.Route("/profile", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			profileV1.Routes(r)
		})

		r.Route("/work-logs", func(r chi.Router) {
			r.Use(authMiddleware)
			worklogV1.Routes(r)
		})
	})

	return router
}
