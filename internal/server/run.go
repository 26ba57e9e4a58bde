package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/demoapps/go-services/internal/config"
	"github.com/demoapps/go-services/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// Run serves r until SIGINT or SIGTERM, then shuts the server down gracefully.
func Run(cfg *config.Config, r *gin.Engine) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return Serve(ctx, cfg, r)
}

// Serve is Run with the stop signal supplied by ctx.
func Serve(ctx context.Context, cfg *config.Config, h http.Handler) error {
	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:      h,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

// Main loads configuration, bootstraps dependencies, mounts mods and serves
// until signalled. It exits the process on startup failure.
func Main(defaultDatabase string, mods ...Module) {
	cfg, err := config.LoadConfig(defaultDatabase)
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	ctx := context.Background()
	d, cleanup, err := Bootstrap(ctx, cfg)
	if err != nil {
		logger.Fatalf("failed to connect to MongoDB: %v", err)
	}
	defer cleanup()
	defer logger.Sync()

	r, err := NewEngine(ctx, d, mods...)
	if err != nil {
		logger.Errorf("failed to mount apps: %v", err)
		return
	}
	if err := Run(cfg, r); err != nil {
		logger.Errorf("server error: %v", err)
	}
}
