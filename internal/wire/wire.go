// internal/wire/wire.go
package wire

import (
	"net/http"

	"review-insights/internal/accesslog"
	"review-insights/internal/adaptor"
	"review-insights/internal/data/repository"
	"review-insights/internal/enrichment"
	"review-insights/internal/usecase"
	"review-insights/pkg/middleware"
	"review-insights/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and the router
func Wiring(repo *repository.Repository, accessLog *accesslog.Queue, config *utils.Config, logger *zap.Logger) *App {
	analyzer := enrichment.NewClient(config.OpenAI, logger)

	service := usecase.NewService(repo, analyzer, logger)
	handler := adaptor.NewHandler(service, accessLog, logger)

	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the Chi router
func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.Metrics())

	// Apply routes
	wireReview(r, handler.Review)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus scrape endpoint
	r.Handle("/metrics", promhttp.Handler())

	return r
}
