package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/JonMunkholm/citystats/internal/config"
	"github.com/JonMunkholm/citystats/internal/dataset"
	"github.com/JonMunkholm/citystats/internal/logging"
	"github.com/JonMunkholm/citystats/internal/report"
	"github.com/JonMunkholm/citystats/internal/web"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"dataset_path", cfg.Dataset.Path,
		"relative_density", cfg.Dataset.RelativeDensity,
	)

	snap, err := dataset.Load(cfg.Dataset.Path)
	if err != nil {
		slog.Error("failed to load dataset", "error", err)
		os.Exit(1)
	}
	slog.Info("dataset loaded",
		"snapshot", snap.ID,
		"source", snap.Source,
		"bytes", len(snap.Text),
	)

	opts := report.DefaultOptions()
	opts.Render.RelativeDensity = cfg.Dataset.RelativeDensity
	opts.DropLast = cfg.Dataset.DropLast

	// Render the table once at startup; stdout gets exactly one write,
	// logs go to stderr.
	text, err := report.Generate(snap.Text, opts)
	if err != nil {
		slog.Error("failed to generate report", "error", err)
		os.Exit(1)
	}
	if _, err := os.Stdout.WriteString(text + "\n"); err != nil {
		slog.Error("failed to write report", "error", err)
		os.Exit(1)
	}

	server := web.NewServer(snap, opts, cfg)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil {
		slog.Info("server stopped", "error", err)
	}
}
