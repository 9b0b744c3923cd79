package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/Kingleseu/GestionStocke/api/routes"
	"github.com/Kingleseu/GestionStocke/internal/cart"
	"github.com/Kingleseu/GestionStocke/internal/cartmirror"
	"github.com/Kingleseu/GestionStocke/internal/cartsync"
	"github.com/Kingleseu/GestionStocke/internal/catalog"
	"github.com/Kingleseu/GestionStocke/internal/content"
	"github.com/Kingleseu/GestionStocke/internal/storefront"
	"github.com/Kingleseu/GestionStocke/pkg/config"
	"github.com/Kingleseu/GestionStocke/pkg/db"
	"github.com/Kingleseu/GestionStocke/pkg/logger"
	"github.com/Kingleseu/GestionStocke/pkg/metrics"
	"github.com/Kingleseu/GestionStocke/pkg/migrate"
	"github.com/Kingleseu/GestionStocke/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	saverMetrics := metrics.NewSaverMetrics(registry)

	// The catalogue is loaded once and immutable for every session.
	catalogue, err := catalog.NewRepository(dbClient.DB()).ListActive(context.Background())
	if err != nil {
		logg.Error(context.Background(), "failed to load catalogue", err)
		os.Exit(1)
	}
	if len(catalogue) == 0 {
		logg.Warn(context.Background(), "catalogue is empty, storefront has nothing to sell")
	}

	mirrorService, err := cartmirror.NewService(cartmirror.NewRepository(dbClient.DB()), cfg.Sync.CSRFToken)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart mirror service", err)
		os.Exit(1)
	}

	stockPolicy, err := cart.ParseStockPolicy(cfg.App.StockPolicy)
	if err != nil {
		logg.Error(context.Background(), "invalid stock policy", err)
		os.Exit(1)
	}

	manager, err := storefront.NewManager(storefront.ManagerOptions{
		Catalogue:   catalogue,
		Pricing:     cfg.Pricing,
		StockPolicy: stockPolicy,
		NewSaver: func(string) storefront.CartSaver {
			return cartsync.NewSaver(cfg.Sync, logg, saverMetrics)
		},
		Mirror: mirrorService,
		Log:    logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create storefront manager", err)
		os.Exit(1)
	}

	contentStore := content.NewStore(redisClient, redisClient.ContentKey(cfg.Content.StorageKey), cfg.Content, logg, saverMetrics)
	contentStore.Load(context.Background())

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"products": len(catalogue),
	})
	logg.Info(ctx, "starting storefront api")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, redisClient, manager, contentStore, mirrorService, registry),
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logg.Error(ctx, "storefront api stopped unexpectedly", err)
		os.Exit(1)
	case sig := <-stop:
		logg.Info(logg.WithField(ctx, "signal", sig.String()), "shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var shutdownErr error
	shutdownErr = multierr.Append(shutdownErr, server.Shutdown(shutdownCtx))
	manager.Close()
	contentStore.Flush(shutdownCtx)
	contentStore.Close()

	if shutdownErr != nil {
		logg.Error(ctx, "shutdown finished with errors", shutdownErr)
		os.Exit(1)
	}
	logg.Info(ctx, "shutdown complete")
}
