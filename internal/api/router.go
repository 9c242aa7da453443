package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/motorwala/motorwala/internal/catalog"
	"github.com/motorwala/motorwala/internal/config"
	"github.com/motorwala/motorwala/internal/events"
)

func NewRouter(table *catalog.Table, ev events.Client, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(120))

	recs := NewRecommendationsHandler(table, ev, cfg, logger)
	cat := NewCatalogHandler(table)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/recommendations", recs.Recommend)
		r.Post("/budget/parse", recs.ParseBudget)

		r.Get("/catalog/summary", cat.Summary)
		r.Get("/catalog/cars", cat.Cars)
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}
