package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/enorett/enorett/internal/account"
	"github.com/enorett/enorett/internal/billing"
	"github.com/enorett/enorett/internal/config"
	"github.com/enorett/enorett/internal/corpus"
	"github.com/enorett/enorett/internal/database"
	"github.com/enorett/enorett/internal/dictionary"
	"github.com/enorett/enorett/internal/entitlement"
	"github.com/enorett/enorett/internal/i18n"
	"github.com/enorett/enorett/internal/lookup"
	"github.com/enorett/enorett/internal/metrics"
	"github.com/enorett/enorett/internal/morphology"
	"github.com/enorett/enorett/internal/pronunciation"
	"github.com/enorett/enorett/internal/server"
)

// freeTierOnly denies every entitlement check. Used when the database is
// unreachable so the API still serves the free tier.
type freeTierOnly struct{}

func (freeTierOnly) IsEntitled(ctx context.Context, userID string) (bool, error) {
	return false, nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load(os.Getenv("ENORETT_CONFIG"))
	if err != nil {
		return fmt.Errorf("config.Load() > %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	lookupMetrics := metrics.New(registry)

	store := dictionary.NewStore(cfg.Dictionary.Path, cfg.Dictionary.FreeLimit)
	pronunciations := pronunciation.Load(cfg.Pronunciation.LexiconPath)

	morphologyClient := morphology.NewClient(morphology.Config{
		Endpoint: cfg.Morphology.Endpoint,
		Timeout:  cfg.Morphology.Timeout(),
		CacheTTL: cfg.Morphology.CacheTTL(),
		Metrics:  lookupMetrics,
	})
	defer func() {
		_ = morphologyClient.Close()
	}()
	corpusClient := corpus.NewClient(corpus.Config{
		Endpoint: cfg.Corpus.Endpoint,
		Corpora:  cfg.Corpus.Corpora,
		Timeout:  cfg.Corpus.Timeout(),
		CacheTTL: cfg.Corpus.CacheTTL(),
		Metrics:  lookupMetrics,
	})
	defer func() {
		_ = corpusClient.Close()
	}()

	resolver := lookup.NewResolver(store, pronunciations, morphologyClient, corpusClient, cfg.Corpus.MaxExamples)

	catalog, err := i18n.NewCatalog()
	if err != nil {
		return fmt.Errorf("i18n.NewCatalog() > %w", err)
	}

	var (
		checker   entitlement.Checker = freeTierOnly{}
		users     account.UserRepository
		purchases billing.PurchaseRepository
	)
	db, err := database.Open(cfg.Database)
	if err != nil {
		slog.Warn("database unavailable, premium tier disabled", "error", err)
	} else {
		pingCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err = database.WaitUntilReady(pingCtx, db)
		cancel()
		if err != nil {
			slog.Warn("database unavailable, premium tier disabled", "error", err)
			_ = db.Close()
		} else {
			defer func() {
				_ = db.Close()
			}()
			users = account.NewDBUserRepository(db)
			purchaseRepository := billing.NewDBPurchaseRepository(db)
			purchases = purchaseRepository
			checker = entitlement.NewPurchaseChecker(purchaseRepository)
		}
	}

	lookupHandler := server.NewLookupHandler(resolver, checker, users, catalog, lookupMetrics)
	subscriptionHandler := server.NewSubscriptionHandler(users, purchases)

	srv := server.New(cfg, catalog, lookupHandler, subscriptionHandler, registry)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting server", "address", cfg.Server.Address)
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server.Start() > %w", err)
	case <-ctx.Done():
		slog.Info("shutting down")
		return srv.Shutdown()
	}
}
