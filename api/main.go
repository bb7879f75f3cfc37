package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rogerio-castellano/product-catalog/internal/auth"
	"github.com/rogerio-castellano/product-catalog/internal/config"
	"github.com/rogerio-castellano/product-catalog/internal/db"
	api "github.com/rogerio-castellano/product-catalog/internal/http"
	"github.com/rogerio-castellano/product-catalog/internal/http/handlers"
	rl "github.com/rogerio-castellano/product-catalog/internal/http/rate_limiter"
	"github.com/rogerio-castellano/product-catalog/internal/redissvc"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
)

// @title Product Catalog API
// @version 1.0
// @description REST API and HTML pages for managing the product catalogue.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	configPath := flag.String("config", "", "path to a config file (yaml, json or toml)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(cfg.Log.Level),
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	productRepo, closeStorage, err := openStorage(ctx, cfg)
	if err != nil {
		logger.Error("could not open storage", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}
	defer closeStorage()
	logger.Info("storage ready", "driver", cfg.Storage.Driver)

	var authService *auth.AuthService
	opts := api.RouterOptions{Logger: logger}
	if cfg.Auth.Enabled {
		tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
		authService = auth.NewAuthService(cfg.Auth.AdminUsername, cfg.Auth.AdminPasswordHash, tokens)
	}
	if cfg.RateLimit.Enabled {
		limiter := rl.NewVisitorLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, cfg.RateLimit.IdleTimeout)
		go limiter.StartVisitorCleanupLoop(ctx, time.Minute)
		opts.Limiter = limiter
	}

	h := handlers.NewHandler(productRepo, authService, logger)
	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           api.NewRouter(h, opts),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server running", "addr", cfg.HTTP.Addr, "auth", cfg.Auth.Enabled)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server error", "error", err)
	}
	logger.Info("server stopped")
}

// openStorage builds the repository selected by storage.driver. The returned
// func releases its connections.
func openStorage(ctx context.Context, cfg config.Config) (repo.ProductRepository, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		if cfg.Database.Migrate {
			if err := db.Migrate(cfg.Database.URL); err != nil {
				return nil, nil, err
			}
		}
		database, err := db.Connect(ctx, cfg.Database.URL)
		if err != nil {
			return nil, nil, err
		}
		return repo.NewPostgresProductRepository(database), func() { database.Close() }, nil
	case config.DriverRedis:
		rs, err := redissvc.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, nil, err
		}
		return repo.NewRedisProductRepository(rs.Rdb()), func() { rs.Close() }, nil
	case config.DriverMemory:
		return repo.NewInMemoryProductRepository(), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
