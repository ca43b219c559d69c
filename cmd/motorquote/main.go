package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/ougirez/motorquote/internal/api"
	"github.com/ougirez/motorquote/internal/catalog"
	"github.com/ougirez/motorquote/internal/pkg/config"
	"github.com/ougirez/motorquote/internal/pkg/constants"
	"github.com/ougirez/motorquote/internal/pkg/logger"
	"github.com/ougirez/motorquote/internal/pkg/store"
	"github.com/ougirez/motorquote/internal/service/quote"
)

func main() {
	configPath := pflag.String("config", os.Getenv("MOTORQUOTE_CONFIG"), "path to a YAML config file")
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config.Load: %s\n", err)
		os.Exit(1)
	}

	if err = logger.Init(cfg.Log.Level, cfg.Log.Development); err != nil {
		fmt.Fprintf(os.Stderr, "logger.Init: %s\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, cfg); err != nil {
		logger.Fatal(ctx, err)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	cat := catalog.Default()
	if cfg.Catalog.File != "" {
		var err error
		if cat, err = catalog.Load(cfg.Catalog.File); err != nil {
			return fmt.Errorf("catalog.Load: %w", err)
		}
		logger.Infof(ctx, "catalog loaded from %s with %d providers", cfg.Catalog.File, len(cat.Providers))
	}

	sessions, closeStore, err := newSessionStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	svc := api.NewAPIService(cfg.Server, quote.NewQuoteService(sessions, cat))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		logger.Infof(egCtx, "listening on %s", cfg.Server.Addr)
		return svc.Serve(cfg.Server.Addr)
	})
	eg.Go(func() error {
		<-egCtx.Done()
		logger.Info(ctx, "shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return svc.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

func newSessionStore(ctx context.Context, cfg *config.Config) (store.SessionStore, func(), error) {
	if cfg.Session.Backend != constants.SessionBackendRedis {
		return store.NewMemoryStore(cfg.Session.TTL), func() {}, nil
	}

	client, err := store.ConnectRedis(ctx, store.RedisOpts{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		Retries:  cfg.Redis.ConnectRetries,
	})
	if err != nil {
		return nil, nil, err
	}
	logger.Infof(ctx, "sessions stored in redis at %s", cfg.Redis.Addr)

	return store.NewRedisStore(client, cfg.Session.TTL), func() {
		if err := client.Close(); err != nil {
			logger.Errorf(ctx, "redis close: %s", err.Error())
		}
	}, nil
}
