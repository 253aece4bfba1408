package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/dgallion1/mdsite/internal/config"
	"github.com/dgallion1/mdsite/internal/site"
)

// ListenAndServe runs the build pipeline and the HTTP server until ctx is
// cancelled, then drains both.
func ListenAndServe(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	orch := site.NewOrchestrator(cfg, nil, log)
	orch.Start(ctx)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      NewServer(orch, log, cfg),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting mdsite", "port", cfg.Port, "public_dir", cfg.PublicDir, "renderer", cfg.Renderer)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		orch.Stop()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down...")
	orch.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	return httpServer.Shutdown(shutdownCtx)
}
