package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fjod/storefront/internal/admin"
	"github.com/fjod/storefront/internal/cartstore"
	"github.com/fjod/storefront/internal/catalog"
	"github.com/fjod/storefront/internal/checkout"
	"github.com/fjod/storefront/internal/config"
	h "github.com/fjod/storefront/internal/http"
	"github.com/fjod/storefront/internal/logger"
	"github.com/fjod/storefront/internal/service"
	"github.com/fjod/storefront/internal/telemetry"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	zap.ReplaceGlobals(log)

	if err := run(cfg, log); err != nil {
		log.Fatal("storefront failed", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.OTLPEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Warn("tracer shutdown failed", zap.Error(err))
		}
	}()

	cat, err := openCatalog(ctx, cfg, log)
	if err != nil {
		return err
	}

	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	var sink checkout.OrderSink = checkout.NewLogSink(log)
	if len(cfg.KafkaBrokers) > 0 {
		kafkaSink := checkout.NewKafkaSink(cfg.KafkaBrokers, cfg.OrdersTopic)
		defer kafkaSink.Close()
		sink = kafkaSink
		log.Info("publishing orders to kafka",
			zap.Strings("brokers", cfg.KafkaBrokers),
			zap.String("topic", cfg.OrdersTopic))
	}

	orders := checkout.NewService(cat, log, checkout.WithSink(sink))
	carts := service.NewCartService(cartstore.NewBreakerStore(store, "cart-store"), cat, orders, log)

	srv := &http.Server{
		Addr: ":" + cfg.HTTPPort,
		Handler: h.NewRouter(h.RouterConfig{
			Catalog:        cat,
			Checkout:       orders,
			Carts:          carts,
			Logger:         log,
			RequestTimeout: cfg.RequestTimeout,
			MaxBodySize:    cfg.MaxRequestBodySize,
		}),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	adminSrv, err := admin.New(cfg.AdminGRPCPort, log)
	if err != nil {
		return err
	}

	adminErr := make(chan error, 1)
	go func() {
		adminErr <- adminSrv.Serve(ctx)
	}()
	httpErr := make(chan error, 1)
	go func() {
		log.Info("storefront starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			httpErr <- fmt.Errorf("http server: %w", err)
		}
	}()

	var runErr error
	adminDone := false
	select {
	case <-ctx.Done():
	case runErr = <-httpErr:
	case runErr = <-adminErr:
		adminDone = true
	}

	log.Info("shutting down server")
	adminSrv.SetServing(false)
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		runErr = errors.Join(runErr, fmt.Errorf("server forced to shutdown: %w", err))
	}

	if !adminDone {
		runErr = errors.Join(runErr, waitForAdmin(shutdownCtx, adminErr))
	}
	if runErr != nil {
		return runErr
	}

	log.Info("server exited")
	return nil
}

// waitForAdmin returns the admin server's result once it has stopped, or an
// error when ctx expires first.
func waitForAdmin(ctx context.Context, adminErr <-chan error) error {
	select {
	case err := <-adminErr:
		return err
	case <-ctx.Done():
		return fmt.Errorf("admin grpc server did not stop: %w", ctx.Err())
	}
}

func openCatalog(ctx context.Context, cfg *config.Config, log *zap.Logger) (catalog.Catalog, error) {
	if cfg.CatalogDBPath == "" {
		return catalog.Default(), nil
	}

	cat, err := catalog.LoadSQLite(ctx, cfg.CatalogDBPath, cfg.CatalogMigrationsPath)
	if err != nil {
		return nil, err
	}
	log.Info("catalog loaded from sqlite",
		zap.String("path", cfg.CatalogDBPath),
		zap.Int("products", cat.Len()))
	return cat, nil
}

func openStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (cartstore.Store, func(), error) {
	switch cfg.CartStore {
	case config.StoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("redis connection failed: %w", err)
		}
		log.Info("cart store: redis", zap.String("addr", cfg.RedisAddr))
		return cartstore.NewRedisStore(client), func() { _ = client.Close() }, nil

	case config.StoreMongo:
		db, err := cartstore.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDBName)
		if err != nil {
			return nil, nil, err
		}
		store := cartstore.NewMongoStore(db)
		if err := store.CreateIndexes(ctx); err != nil {
			_ = db.Client().Disconnect(context.Background())
			return nil, nil, err
		}
		log.Info("cart store: mongodb", zap.String("database", cfg.MongoDBName))
		return store, func() { _ = db.Client().Disconnect(context.Background()) }, nil

	default:
		log.Info("cart store: memory")
		return cartstore.NewMemoryStore(), func() {}, nil
	}
}
