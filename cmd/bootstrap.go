package cmd

import (
	"context"
	"fmt"

	"vehicle-reconciler/core/config"
	"vehicle-reconciler/core/database"
	"vehicle-reconciler/core/logger"
	"vehicle-reconciler/core/storage"
	"vehicle-reconciler/feature/vehicle/store"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// dependency tells bootstrap whether a backend is skipped, optional or required.
type dependency int

const (
	skip dependency = iota
	optional
	required
)

// deps bundles what commands need after startup.
type deps struct {
	cfg    *config.Config
	log    *zap.Logger
	db     *gorm.DB
	client storage.Client
}

// bootstrap loads configuration, builds the logger and connects the requested backends.
// Optional backends that fail are logged and left nil.
func bootstrap(ctx context.Context, db, objects dependency) (*deps, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	d := &deps{cfg: cfg, log: logg}

	if db != skip {
		conn, err := database.Connect(cfg.Database)
		switch {
		case err == nil:
			d.db = conn
			logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver), zap.String("name", cfg.Database.Name))
		case db == required:
			return nil, fmt.Errorf("database connection required: %w", err)
		default:
			logg.Warn("Optional database connection failed", zap.Error(err))
		}
	}

	if objects != skip {
		client, err := connectStorage(ctx, cfg.Storage)
		switch {
		case err == nil:
			d.client = client
		case objects == required:
			return nil, fmt.Errorf("object storage required: %w", err)
		default:
			logg.Warn("Optional object storage failed", zap.Error(err))
		}
	}

	return d, nil
}

// migrate creates the vehicle tables when a database is connected.
func (d *deps) migrate() error {
	if d.db == nil {
		return nil
	}
	if err := store.Migrate(d.db); err != nil {
		return err
	}
	d.log.Debug("Vehicle tables migrated")
	return nil
}

// sync flushes the logger.
func (d *deps) sync() {
	_ = d.log.Sync()
}

func connectStorage(ctx context.Context, cfg storage.Config) (storage.Client, error) {
	client, err := storage.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	if err := storage.EnsureBucket(ctx, client, cfg.Bucket, cfg.Region); err != nil {
		return nil, err
	}
	return client, nil
}
