package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/ashwkun/dred-backend/internal/handlers"
	"github.com/ashwkun/dred-backend/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)

	lm := middleware.NewLoggerMiddleware(deps.Log)
	r.Use(lm.LoggerMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	ih := handlers.NewInsightsHandlers(deps)
	ch := handlers.NewCardHandlers(deps)
	ph := handlers.NewProjectionHandlers(deps)

	auth := middleware.NewMiddleware(deps.Firebase)
	r.Group(func(r chi.Router) {
		r.Use(auth.FirebaseAuth)
		r.Mount("/insights", ih.InsightsRoutes())
		r.Mount("/cards", ch.CardRoutes())
		r.Mount("/projections", ph.ProjectionRoutes())
	})

	return r
}
