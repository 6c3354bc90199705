package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"shoppinglist/internal/config"
	"shoppinglist/internal/database"
	"shoppinglist/internal/drill"
	"shoppinglist/internal/logger"
	"shoppinglist/internal/metrics"
	"shoppinglist/internal/otel"
	"shoppinglist/internal/repository/postgres"
	"shoppinglist/internal/service"
)

func main() {
	opts := drill.DefaultOptions()
	flags := pflag.NewFlagSet("drills", pflag.ExitOnError)
	flags.StringVar(&opts.SearchTerm, "search", opts.SearchTerm, "case-insensitive substring to search item names for")
	flags.IntVar(&opts.Page, "page", opts.Page, "1-indexed page of items to list")
	flags.IntVar(&opts.DaysAgo, "days", opts.DaysAgo, "list items added within this many days")
	_ = flags.Parse(os.Args[1:])

	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	log := logger.New(cfg.Log).With().
		Str("service", cfg.ServiceName).
		Str("run_id", uuid.NewString()).
		Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, opts, log); err != nil {
		log.Error().Err(err).Msg("drills_failed")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.AppConfig, opts drill.Options, log zerolog.Logger) error {
	shutdownTracing, err := otel.Init(ctx, cfg.ServiceName, log)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Warn().Err(err).Msg("tracing_shutdown_failed")
		}
	}()

	// The pool is owned here and closed when the drills finish.
	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	reg := prometheus.NewRegistry()
	qm, err := metrics.NewQueryMetrics(reg)
	if err != nil {
		return err
	}

	repo := metrics.Instrument(postgres.NewShoppingListPostgres(db), qm)
	reports := service.NewReportService(repo)

	runErr := drill.Run(ctx, reports, opts, log)

	counts, err := metrics.Snapshot(reg)
	if err != nil {
		log.Warn().Err(err).Msg("metrics_snapshot_failed")
	}
	for _, c := range counts {
		log.Info().
			Str("operation", c.Operation).
			Str("status", c.Status).
			Float64("count", c.Count).
			Msg("query_summary")
	}

	return runErr
}
