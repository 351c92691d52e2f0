// Package main seeds the product store: it removes every product and inserts a sample catalog.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gocommerce/catalog/internal/app"
	"github.com/gocommerce/catalog/internal/store"
	"github.com/gocommerce/catalog/pkg/bootstrap"
	"github.com/gocommerce/catalog/pkg/config"
	"github.com/gocommerce/catalog/pkg/config/configloader"
)

const serviceName = "catalog"

// seedConfig is the part of the service configuration the seeder needs.
type seedConfig struct {
	Database config.DatabaseConfig `koanf:"database"`
	Log      config.LogConfig      `koanf:"log"`
}

func (c *seedConfig) Validate() error {
	if err := c.Database.Validate(); err != nil {
		return err
	}
	return c.Log.Validate()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Printf("seeding failed: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := configloader.Load[*seedConfig](serviceName)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger := bootstrap.NewLogger(cfg.Log.Level)

	productStore, closeStore, err := app.NewProductStore(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer func() { _ = closeStore(context.Background()) }()

	return seed(ctx, productStore, time.Now().UTC(), logger)
}

// seed replaces the whole content of productStore with the sample catalog.
func seed(ctx context.Context, productStore store.ProductStore, now time.Time, logger *slog.Logger) error {
	removed, err := productStore.DeleteAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear products: %w", err)
	}
	logger.InfoContext(ctx, "Removed existing products", slog.Int64("count", removed))

	for _, p := range sampleCatalog(now) {
		if errs := p.Validate(); len(errs) > 0 {
			return fmt.Errorf("sample product %q is invalid: %s", p.Name, strings.Join(errs, "; "))
		}
		if err := productStore.Insert(ctx, p.ToRecord()); err != nil {
			return fmt.Errorf("failed to insert %q: %w", p.Name, err)
		}
		logger.InfoContext(ctx, "Inserted product",
			slog.String("id", p.ID),
			slog.String("name", p.Name),
			slog.Float64("price", p.Price),
			slog.String("category", p.Category),
		)
	}
	logger.InfoContext(ctx, "Seeding completed", slog.Int("count", len(samples)))
	return nil
}
