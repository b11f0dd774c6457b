package integrity

import (
	"context"
	"errors"

	"vehicle-reconciler/core/storage"
	"vehicle-reconciler/feature/integrity/checks"
	"vehicle-reconciler/feature/vehicle/store"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrNoStorage is returned by storage checks when object storage is not configured.
	ErrNoStorage = errors.New("object storage is not configured")
	// ErrNoDatabase is returned by schema checks when no database is connected.
	ErrNoDatabase = errors.New("database is not configured")
)

// Service handles integrity checks.
type Service struct {
	client storage.Client
	bucket string
	prefix string
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new integrity service. client and db may be nil.
func NewService(client storage.Client, storageCfg storage.Config, db *gorm.DB, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client: client,
		bucket: storageCfg.Bucket,
		prefix: storageCfg.Prefix,
		db:     db,
		logger: logger,
	}
}

// CheckStorage inspects the raw response archive.
func (s *Service) CheckStorage(ctx context.Context) (*checks.StorageReport, error) {
	if s.client == nil {
		return nil, ErrNoStorage
	}
	return checks.CheckStorage(ctx, s.client, s.bucket, s.prefix)
}

// FixStorage creates the archive folder.
func (s *Service) FixStorage(ctx context.Context) error {
	if s.client == nil {
		return ErrNoStorage
	}
	return checks.FixStorage(ctx, s.client, s.bucket, s.prefix, s.logger)
}

// CheckSchema compares the vehicle store tables with the database.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}
	return checks.CheckSchema(s.db, store.Tables()...)
}

// FixSchema migrates the vehicle store tables.
func (s *Service) FixSchema() error {
	if s.db == nil {
		return ErrNoDatabase
	}
	return store.Migrate(s.db)
}
