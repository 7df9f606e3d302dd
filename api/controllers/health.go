package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/jwpark-dev/moru-commerce/api/responses"
	"github.com/jwpark-dev/moru-commerce/pkg/config"
	pkgerrors "github.com/jwpark-dev/moru-commerce/pkg/errors"
	"github.com/jwpark-dev/moru-commerce/pkg/logger"
)

// Pinger is the health-check surface a backing dependency exposes.
type Pinger interface {
	Ping(context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Moru-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready only when every backing dependency answers a ping.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP, redisP Pinger) http.HandlerFunc {
	deps := []struct {
		name string
		ping Pinger
	}{
		{"database", dbP},
		{"redis", redisP},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Moru-Env", cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		for _, dep := range deps {
			if dep.ping == nil {
				continue
			}
			if err := dep.ping.Ping(ctx); err != nil {
				responses.WriteError(ctx, logg, w,
					pkgerrors.Wrap(pkgerrors.CodeDependency, err, dep.name+" unavailable").
						WithDetails(map[string]string{"dependency": dep.name}))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
