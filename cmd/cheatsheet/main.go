package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"

	"oopcheatsheet/internal/config"
	"oopcheatsheet/internal/logger"
	"oopcheatsheet/internal/metrics"
	"oopcheatsheet/internal/otel"
	"oopcheatsheet/internal/service"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	// Diagnostics go to stderr; stdout only carries cheatsheet lines
	log := logger.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	shutdown, err := otel.Init(ctx, cfg.Tracing, os.Stderr, log)
	if err != nil {
		log.Error("tracing_init_failed", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Error("tracing_shutdown_failed", slog.String("error", err.Error()))
		}
	}()

	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	if err != nil {
		log.Error("metrics_init_failed", slog.String("error", err.Error()))
		return 1
	}

	cs := service.NewCheatsheet(log, rec, service.Options{
		Pi:        cfg.Shapes.Pi,
		Precision: cfg.Shapes.Precision,
	})

	runErr := newRootCmd(cs).ExecuteContext(ctx)
	logTotals(log, reg)

	if runErr != nil {
		log.Error("cheatsheet_failed", slog.String("error", runErr.Error()))
		return 1
	}
	return 0
}

func logTotals(log *slog.Logger, reg prometheus.Gatherer) {
	sections, divErrs, err := metrics.Totals(reg)
	if err != nil {
		log.Warn("metrics_gather_failed", slog.String("error", err.Error()))
		return
	}
	var total float64
	for _, n := range sections {
		total += n
	}
	log.Debug("run_totals",
		slog.Float64("sections_run", total),
		slog.Float64("division_errors", divErrs),
	)
}
