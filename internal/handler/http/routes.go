package http

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// maxRequestBodyBytes caps every request body at 100 KiB.
const maxRequestBodyBytes = 100 << 10

// Init builds the router. requestTimeout bounds every request; zero disables
// the limit.
func (h *Handler) Init(requestTimeout time.Duration) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withMetrics)
	router.Use(middleware.RequestSize(maxRequestBodyBytes))
	if requestTimeout > 0 {
		router.Use(middleware.Timeout(requestTimeout))
	}
	router.Use(withCORS)
	router.Use(middleware.Compress(5, "application/json"))

	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", h.health)

		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Post("/auth/signup", h.signUp)
			r.Post("/auth/login", h.login)
		})

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/expenses", h.listExpenses)
			r.Post("/expenses", h.addExpense)
			r.Delete("/expenses/delete-all", h.deleteAllExpenses)
			r.Get("/expenses/{id}", h.getExpense)
			r.Delete("/expenses/{id}", h.deleteExpense)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
