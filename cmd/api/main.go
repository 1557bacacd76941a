package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"animals-safety/internal/adapters/notify/lognotify"
	"animals-safety/internal/adapters/notify/webhook"
	"animals-safety/internal/adapters/seed"
	"animals-safety/internal/config"
	"animals-safety/internal/platform/logger"
	"animals-safety/internal/platform/metrics"
	"animals-safety/internal/ports/notify"
	"animals-safety/internal/router"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	var m *metrics.Manager
	if cfg.MetricsEnabled {
		m = metrics.NewManager()
	}

	var (
		notifier notify.Notifier = lognotify.New(log)
		hook     *webhook.Notifier
	)
	if cfg.NotifyWebhookURL != "" {
		hook, err = webhook.New(webhook.Config{URL: cfg.NotifyWebhookURL, Timeout: cfg.NotifyTimeout()}, log)
		if err != nil {
			return fmt.Errorf("notify webhook: %w", err)
		}
		notifier = hook
	}

	app := router.New(router.Options{
		Logger:        log,
		Metrics:       m,
		Notifier:      notifier,
		DefaultLocale: cfg.Locale,
	})

	if err := seedStore(context.Background(), cfg, app, log); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      app.Handler,
		ReadTimeout:  cfg.ReadTimeout(),
		WriteTimeout: cfg.WriteTimeout(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if hook != nil {
		if err := hook.Wait(shutdownCtx); err != nil {
			log.Warn("pending notifications dropped", map[string]any{"error": err.Error()})
		}
	}
	return nil
}

func seedStore(ctx context.Context, cfg *config.Config, app *router.App, log logger.Logger) error {
	var entries []seed.Entry
	if cfg.SeedSample {
		entries = append(entries, seed.Sample()...)
	}
	if cfg.SeedFile != "" {
		fromFile, err := seed.ParseFile(cfg.SeedFile)
		if err != nil {
			return err
		}
		entries = append(entries, fromFile...)
	}
	if len(entries) == 0 {
		return nil
	}

	n, err := seed.Apply(ctx, app.Animals, entries)
	if err != nil {
		return err
	}
	log.Info("store seeded", map[string]any{"count": n})
	return nil
}
