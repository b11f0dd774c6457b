package vehicle

import (
	"fmt"

	"vehicle-reconciler/core/reconcile"
	"vehicle-reconciler/core/storage"
	"vehicle-reconciler/feature/vehicle/store"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
}

// NewFeature creates the vehicle feature. A nil db disables persistence and a nil
// client disables the archive; reconciliation works without either.
func NewFeature(client storage.Client, storageCfg storage.Config, db *gorm.DB, cfg reconcile.Config, logger *zap.Logger) *Feature {
	svc := NewService(NewEngine(), newRepository(db), newArchive(client, storageCfg), cfg, logger)
	return &Feature{service: svc}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "vehicle"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	handler, err := NewHandler(f.service)
	if err != nil {
		return fmt.Errorf("failed to create vehicle handler: %w", err)
	}
	handler.RegisterRoutes(app)
	return nil
}

// Service returns the feature's service, for commands that bypass HTTP.
func (f *Feature) Service() *Service {
	return f.service
}

func newRepository(db *gorm.DB) Repository {
	if db == nil {
		return nil
	}
	return store.NewRepository(db)
}

func newArchive(client storage.Client, cfg storage.Config) *Archive {
	if client == nil {
		return nil
	}
	return NewArchive(client, cfg.Bucket, cfg.Prefix)
}
