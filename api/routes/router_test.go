package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"github.com/jwpark-dev/moru-commerce/internal/catalog"
	enginepricing "github.com/jwpark-dev/moru-commerce/internal/pricing"
	"github.com/jwpark-dev/moru-commerce/pkg/config"
	"github.com/jwpark-dev/moru-commerce/pkg/logger"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(context.Context) error {
	return s.err
}

type stubRateStore struct{}

func (stubRateStore) IncrWithTTL(context.Context, string, time.Duration) (int64, error) {
	return 1, nil
}

type stubCatalogService struct{}

func (stubCatalogService) ValidateProducts(context.Context, []enginepricing.Item) (*enginepricing.BatchValidationResult, error) {
	return &enginepricing.BatchValidationResult{
		ValidItems:   []enginepricing.Item{},
		InvalidItems: []enginepricing.InvalidItem{},
	}, nil
}

func (stubCatalogService) QuoteProducts(context.Context, []enginepricing.Item) (*catalog.QuoteResult, error) {
	return &catalog.QuoteResult{
		SubtotalMerchandise: decimal.Zero,
		SubtotalShippingFee: decimal.Zero,
		InvalidItems:        []enginepricing.InvalidItem{},
		List:                []catalog.SellerQuote{},
	}, nil
}

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.RateLimit.QuoteWindow = time.Minute
	cfg.RateLimit.QuoteIPLimit = 100

	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})

	return NewRouter(cfg, logg, RouterDeps{
		DB:             stubPinger{},
		Redis:          stubPinger{},
		RateStore:      stubRateStore{},
		CatalogService: stubCatalogService{},
		Metrics:        prometheus.NewRegistry(),
	})
}

func TestRouterHealthEndpoints(t *testing.T) {
	router := testRouter(t)

	for _, path := range []string{"/health/live", "/health/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, rec.Code)
		}
		if rec.Header().Get("X-Moru-Env") != "test" {
			t.Fatalf("%s: expected env header", path)
		}
	}
}

func TestRouterMetricsEndpoint(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRouterPricingRoutes(t *testing.T) {
	router := testRouter(t)

	for _, path := range []string{"/api/v1/pricing/validate", "/api/v1/pricing/quote"} {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{"items":[{"productId":1,"qty":1}]}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d (%s)", path, rec.Code, rec.Body.String())
		}
		if rec.Header().Get("X-Request-Id") == "" {
			t.Fatalf("%s: expected request id header", path)
		}
	}
}

func TestRouterUnknownRoute(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
