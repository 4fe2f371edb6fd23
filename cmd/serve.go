package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "crowd-escrow/internal/adapter/http"
	"crowd-escrow/internal/db"
)

// serve starts the HTTP server and blocks until SIGINT or SIGTERM, then
// drains in-flight requests within HTTP_SHUTDOWN_TIMEOUT.
func (a *app) serve(ctx context.Context, seed bool) error {
	repo, closeRepo, err := a.openRepository(ctx)
	if err != nil {
		return err
	}
	defer closeRepo()

	svc := a.useCase(repo)
	if seed {
		if err = db.Seed(ctx, svc, a.logger); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}

	if a.cfg.HTTP.Faucet {
		a.logger.Warn("faucet endpoint enabled")
	}
	if !a.cfg.Auth.VerifySignatures {
		a.logger.Warn("request signatures are not verified, X-Signer is trusted")
	}
	handler := httpadapter.NewHandler(svc, a.logger,
		httpadapter.WithFaucet(a.cfg.HTTP.Faucet),
		httpadapter.WithSignatures(a.cfg.Auth.VerifySignatures, a.cfg.Auth.MaxClockSkew),
	)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", a.cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	serveErr := make(chan error, 1)
	go func() {
		a.logger.Info("server listening",
			slog.Int("port", int(a.cfg.HTTP.Port)),
			slog.String("store", a.cfg.Store.Normalized()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	var value os.Signal
	select {
	case err = <-serveErr:
		return fmt.Errorf("server error: %w", err)
	case value = <-quit:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		a.logger.Info("server gracefully stopped")
	}
	return signalExit{sig: value.(syscall.Signal)}
}
