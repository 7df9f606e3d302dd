package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jwpark-dev/moru-commerce/api/controllers"
	pricingcontrollers "github.com/jwpark-dev/moru-commerce/api/controllers/pricing"
	"github.com/jwpark-dev/moru-commerce/api/middleware"
	"github.com/jwpark-dev/moru-commerce/internal/catalog"
	"github.com/jwpark-dev/moru-commerce/pkg/config"
	"github.com/jwpark-dev/moru-commerce/pkg/logger"
)

// RouterDeps bundles everything the router wires into handlers.
type RouterDeps struct {
	DB             controllers.Pinger
	Redis          controllers.Pinger
	RateStore      middleware.RateLimiterStore
	CatalogService catalog.Service
	Metrics        prometheus.Gatherer
}

func NewRouter(cfg *config.Config, logg *logger.Logger, deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	quotePolicy := middleware.NewRateLimitPolicy(
		"quote",
		cfg.RateLimit.QuoteWindow,
		cfg.RateLimit.QuoteIPLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.DB, deps.Redis))
	})

	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Metrics, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/pricing", func(r chi.Router) {
		r.Use(middleware.RateLimit(quotePolicy, deps.RateStore, logg))
		r.Post("/validate", pricingcontrollers.ValidateProducts(deps.CatalogService, logg))
		r.Post("/quote", pricingcontrollers.QuoteProducts(deps.CatalogService, logg))
	})

	return r
}
