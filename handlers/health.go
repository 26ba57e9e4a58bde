package handlers

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/demoapps/go-services/pkg/logger"
)

// ReadyTimeout bounds each dependency probe made by /ready.
const ReadyTimeout = 2 * time.Second

// Check probes one dependency; nil means healthy.
type Check func(ctx context.Context) error

var startTime = time.Now()

// RegisterHealth adds GET /health (liveness) and GET /ready (dependency probes).
func RegisterHealth(r gin.IRouter, checks map[string]Check) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "message": "Server is running"})
	})

	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	// readiness endpoint: 200 only when every configured dependency answers
	r.GET("/ready", func(c *gin.Context) {
		ready := true
		deps := map[string]bool{}
		for _, name := range names {
			ctx, cancel := context.WithTimeout(c.Request.Context(), ReadyTimeout)
			err := checks[name](ctx)
			cancel()
			deps[name] = err == nil
			if err != nil {
				logger.Warnf("readiness: %s unavailable: %v", name, err)
				ready = false
			}
		}
		uptime := time.Since(startTime).String()
		if !ready {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": deps, "uptime": uptime})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": uptime})
	})
}
