package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"storefront/config"
	"storefront/internal/client/cart"
	"storefront/internal/client/gateway"
	"storefront/internal/client/shopper"
	"storefront/internal/client/storage"
	logs "storefront/internal/infra/log"

	"github.com/pkg/errors"
)

// withApp wires the client stack, runs fn and closes storage.
func withApp(ctx context.Context, fn func(a *shopper.App) error) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.NewWithWriter(os.Stderr, clientLog(cfg))
	if err != nil {
		return errors.Wrap(err, "failed to create logger")
	}

	storageURL, err := resolveStorageURL(cfg.Client.StorageURL)
	if err != nil {
		return err
	}

	store, err := storage.Open(ctx, storageURL)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("failed to close storage", slog.Any("error", err))
		}
	}()

	gw, err := gateway.New(ctx, cfg.Client.GatewayURL, store, logger)
	if err != nil {
		return err
	}

	carts := cart.NewStore(cart.NewPersistence(store, logger), logger)
	carts.Initialize(ctx)

	return fn(shopper.New(gw, carts, cfg.Client.Debounce, os.Stdout, logger))
}

func listOptions(f productsFlags) shopper.ListOptions {
	return shopper.ListOptions{
		Search:   *f.search,
		Category: *f.category,
		Sort:     *f.sort,
		Page:     *f.page,
	}
}

// clientLog keeps the terminal quiet unless the config asks for debug output.
func clientLog(cfg *config.Config) config.Log {
	level := "warn"
	if cfg.Env.Debug {
		level = cfg.Env.Log.Level
	}

	return config.Log{Pretty: true, Level: level}
}

// resolveStorageURL defaults to a directory under the user config dir.
func resolveStorageURL(configured string) (string, error) {
	if configured != "" {
		return configured, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to locate config dir")
	}

	return "file://" + filepath.ToSlash(filepath.Join(dir, "storefront-shopper")) + "?create_dir=1", nil
}
