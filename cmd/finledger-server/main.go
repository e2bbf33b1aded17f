package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/RohanPrasadGupta/stock-analysis-backend/internal/api"
	"github.com/RohanPrasadGupta/stock-analysis-backend/internal/config"
	"github.com/RohanPrasadGupta/stock-analysis-backend/internal/dao"
	"github.com/RohanPrasadGupta/stock-analysis-backend/internal/logging"
	"github.com/RohanPrasadGupta/stock-analysis-backend/internal/metrics"
	"github.com/RohanPrasadGupta/stock-analysis-backend/internal/migrate"
	"github.com/RohanPrasadGupta/stock-analysis-backend/internal/service"
)

var Version = "v0.1.0"

func main() {
	cfgPath := flag.String("config", "config.yaml", "path to config file")
	migrateFlag := flag.Bool("migrate", true, "run SQL migrations on startup")
	migrationsDir := flag.String("migrations", "migrations", "directory containing *.sql migration files")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	logging.SetGlobalLogger(logger)
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	logging.Infof(ctx, "finledger %s starting", Version)

	gdb, err := dao.Open(cfg.Database)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		log.Fatalf("unwrap sql db: %v", err)
	}
	defer sqlDB.Close()

	if err := dao.Ping(gdb, 5, 2*time.Second); err != nil {
		log.Fatalf("ping database: %v", err)
	}

	if *migrateFlag {
		abs, _ := filepath.Abs(migrate.Dir(*migrationsDir, cfg.Database.Driver))
		if err := migrate.Run(ctx, sqlDB, abs); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
		logging.Infof(ctx, "migrations applied from %s", abs)
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New(cfg.Metrics)
		m.Start(ctx)
	}

	router := api.NewRouter(cfg.Server, api.Dependencies{
		Transactions: service.NewTransactionService(dao.NewTransactionDao(gdb)),
		StockCapital: service.NewStockCapitalService(dao.NewStockCapitalDao(gdb)),
		CoinCapital:  service.NewCoinCapitalService(dao.NewCoinCapitalDao(gdb)),
		Metrics:      m,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	go func() {
		logging.Infof(ctx, "server listening on %s", cfg.Server.Address())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logging.Info(ctx, "shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.GracefulTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Errorf(ctx, "http graceful shutdown failed: %v", err)
	}
	if m != nil {
		if err := m.Stop(ctx); err != nil {
			logging.Errorf(ctx, "metrics shutdown failed: %v", err)
		}
	}
	logging.Info(ctx, "server stopped")
}
