package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/vidocq/internal/api"
	"github.com/MikeSquared-Agency/vidocq/internal/config"
	"github.com/MikeSquared-Agency/vidocq/internal/hermes"
	"github.com/MikeSquared-Agency/vidocq/internal/processor"
	"github.com/MikeSquared-Agency/vidocq/internal/remote"
	"github.com/MikeSquared-Agency/vidocq/internal/slack"
	"github.com/MikeSquared-Agency/vidocq/internal/staging"
)

const shutdownTimeout = 15 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the upload server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return serve(cfg)
		},
	}
}

func serve(cfg config.Config) error {
	setupLogging(cfg.LogLevel)

	slog.Info("vidocq starting", "port", cfg.Port, "version", version)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Staging area and periodic sweep
	area, err := staging.New(cfg.UploadDir, slog.Default())
	if err != nil {
		return err
	}
	go area.Run(ctx, cfg.CleanupInterval)

	opts := []processor.Option{}

	// Remote analyzer (optional, local analyzer always available)
	if cfg.Remote.Enabled() {
		a, err := remote.New(cfg.Remote)
		if err != nil {
			return fmt.Errorf("remote analyzer: %w", err)
		}
		opts = append(opts, processor.WithRemote(a, cfg.Remote.Timeout))
		slog.Info("remote analyzer ready", "provider", cfg.Remote.Provider, "model", cfg.Remote.Model)
	} else {
		slog.Warn("remote analyzer not configured, using local analysis only")
	}

	// NATS/Hermes (optional)
	if cfg.NatsURL != "" {
		hermesClient, err := hermes.NewClient(ctx, cfg.NatsURL, cfg.NatsToken, slog.Default())
		if err != nil {
			return fmt.Errorf("connect to NATS: %w", err)
		}
		defer hermesClient.Close()
		opts = append(opts, processor.WithPublisher(hermesClient))
		slog.Info("NATS connected", "url", cfg.NatsURL)
	}

	// Slack alerts (optional)
	if cfg.SlackBotToken != "" && cfg.SlackChannel != "" {
		opts = append(opts, processor.WithAlerter(slack.NewPoster(cfg.SlackBotToken, cfg.SlackChannel, slog.Default())))
		slog.Info("slack alerts ready", "channel", cfg.SlackChannel)
	}

	proc := processor.New(area, slog.Default(), opts...)

	// HTTP API
	srv := api.NewServer(cfg.Port, cfg.APIToken, cfg.MaxUploadMB, proc, slog.Default())
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	slog.Info("vidocq ready", "port", cfg.Port, "remote", proc.RemoteEnabled())

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigCh:
	case err := <-errCh:
		if err == nil {
			err = fmt.Errorf("stopped unexpectedly")
		}
		return fmt.Errorf("HTTP server: %w", err)
	}
	slog.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Warn("HTTP shutdown incomplete", "error", err)
	}
	<-errCh

	cancel()
	slog.Info("vidocq stopped")
	return nil
}
