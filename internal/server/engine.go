package server

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/demoapps/go-services/handlers"
	"github.com/demoapps/go-services/internal/database"
	"github.com/demoapps/go-services/pkg/metrics"
	"github.com/demoapps/go-services/pkg/middleware"
)

// NewEngine builds the gin engine with the shared middleware chain, the
// health, metrics and docs routes, and every module in mods.
func NewEngine(ctx context.Context, d *Deps, mods ...Module) (*gin.Engine, error) {
	cfg := d.Config
	if cfg.Server.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.RequestLogger(), middleware.Recovery())
	r.Use(middleware.CORS(), middleware.Metrics())
	r.Use(middleware.ErrorHandler(cfg.Server.Production()))

	// per-user when authenticated, otherwise per-IP
	if cfg.RateLimit.Enabled {
		r.Use(middleware.OptionalAuth(d.Tokens))
		if cfg.RateLimit.UseRedis && d.Redis != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(d.Redis, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	handlers.RegisterHealth(r, readinessChecks(d))
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	handlers.RegisterSwagger(r)

	for _, m := range mods {
		if err := m.Mount(ctx, r, d); err != nil {
			return nil, err
		}
	}
	r.NoRoute(middleware.NotFound)
	return r, nil
}

func readinessChecks(d *Deps) map[string]handlers.Check {
	checks := map[string]handlers.Check{}
	if d.Mongo != nil {
		checks["mongo"] = func(ctx context.Context) error {
			return database.Probe(ctx, d.Mongo, handlers.ReadyTimeout)
		}
	} else {
		checks["memory"] = func(context.Context) error { return nil }
	}
	if d.Redis != nil {
		checks["redis"] = func(ctx context.Context) error { return d.Redis.Ping(ctx).Err() }
	}
	return checks
}
