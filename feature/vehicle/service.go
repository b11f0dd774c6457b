package vehicle

import (
	"context"
	"errors"
	"fmt"

	"vehicle-reconciler/core/reconcile"
	"vehicle-reconciler/feature/vehicle/models"
	"vehicle-reconciler/feature/vehicle/store"

	"go.uber.org/zap"
)

var (
	// ErrStoreUnavailable is returned by operations that need the database when none is connected.
	ErrStoreUnavailable = errors.New("vehicle store is not configured")
	// ErrArchiveUnavailable is returned by replays when object storage is not configured.
	ErrArchiveUnavailable = errors.New("vehicle archive is not configured")
)

// Repository persists reconciled vehicles.
type Repository interface {
	Save(ctx context.Context, result *models.Result) error
	Get(ctx context.Context, vin string) (*models.Result, error)
	List(ctx context.Context, limit, offset int) (*store.Page, error)
	Delete(ctx context.Context, vin string) error
}

// ReconcileRequest is the input of one reconciliation.
type ReconcileRequest struct {
	VIN       string
	Primary   reconcile.RawResponse
	Secondary reconcile.RawResponse
	// Save persists the result when a repository is configured.
	Save bool
}

// Service wires the engine to persistence and the raw response archive.
// Both repo and archive are optional.
type Service struct {
	engine  *Engine
	repo    Repository
	archive *Archive
	cfg     reconcile.Config
	logger  *zap.Logger
}

// NewService creates a vehicle service.
func NewService(engine *Engine, repo Repository, archive *Archive, cfg reconcile.Config, logger *zap.Logger) *Service {
	if engine == nil {
		engine = NewEngine()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Service{engine: engine, repo: repo, archive: archive, cfg: cfg, logger: logger}
}

// Reconcile runs the engine for req, archives the inputs and output, and saves on request.
// Archive failures are logged and never fail the call.
func (s *Service) Reconcile(ctx context.Context, req ReconcileRequest) (*models.Result, error) {
	log := s.logger.With(zap.String("vin", req.VIN))

	result, err := s.reconcile(req.VIN, req.Primary, req.Secondary)
	if err != nil {
		return nil, err
	}

	log.Info("Vehicle reconciled",
		zap.String("confidence", string(result.Metadata.Confidence)),
		zap.Any("sources", result.Metadata.SourcesUsed),
		zap.Int("fields", len(result.Metadata.Populated())),
	)
	if result.Metadata.Confidence == reconcile.ConfidenceLow {
		log.Warn("Low confidence result, manual entry needed",
			zap.Strings("from_primary", result.Metadata.FieldsFromPrimary))
	}

	if s.archiving() {
		if err := s.archive.SaveRaw(ctx, req.VIN, req.Primary, req.Secondary); err != nil {
			log.Warn("Failed to archive raw responses", zap.Error(err))
		}
		s.archiveResult(ctx, log, result)
	}

	if req.Save {
		if err := s.save(ctx, result); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Get returns the stored record of vin.
func (s *Service) Get(ctx context.Context, vin string) (*models.Result, error) {
	if s.repo == nil {
		return nil, ErrStoreUnavailable
	}
	result, err := s.repo.Get(ctx, vin)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", vin, ErrNotFound)
	}
	return result, err
}

// List returns one page of stored records.
func (s *Service) List(ctx context.Context, limit, offset int) (*store.Page, error) {
	if s.repo == nil {
		return nil, ErrStoreUnavailable
	}
	return s.repo.List(ctx, limit, offset)
}

// Override applies manual values to the stored record of vin and saves it.
func (s *Service) Override(ctx context.Context, vin string, overrides map[string]any) (*models.Result, error) {
	current, err := s.Get(ctx, vin)
	if err != nil {
		return nil, err
	}
	result, err := ApplyOverrides(current, overrides)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, result); err != nil {
		return nil, err
	}

	log := s.logger.With(zap.String("vin", vin))
	log.Info("Manual overrides applied",
		zap.Strings("fields", result.Metadata.FieldsManuallyOverridden),
		zap.String("confidence", string(result.Metadata.Confidence)),
	)
	if s.archiving() {
		s.archiveResult(ctx, log, result)
	}
	return result, nil
}

// Delete removes the stored record and the archive of vin.
func (s *Service) Delete(ctx context.Context, vin string) error {
	if s.repo == nil {
		return ErrStoreUnavailable
	}
	if err := s.repo.Delete(ctx, vin); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%s: %w", vin, ErrNotFound)
		}
		return err
	}
	if s.archive != nil {
		if n, err := s.archive.Remove(ctx, vin); err != nil {
			s.logger.Warn("Failed to remove archive", zap.String("vin", vin), zap.Error(err))
		} else {
			s.logger.Info("Archive removed", zap.String("vin", vin), zap.Int("objects", n))
		}
	}
	return nil
}

// Replay reconciles vin again from its archived raw responses.
// Manual overrides on the stored record are reapplied on top of the new result.
func (s *Service) Replay(ctx context.Context, vin string, save bool) (*models.Result, error) {
	if s.archive == nil {
		return nil, ErrArchiveUnavailable
	}
	primary, secondary, err := s.archive.LoadRaw(ctx, vin)
	if err != nil {
		return nil, err
	}
	result, err := s.reconcile(vin, primary, secondary)
	if err != nil {
		return nil, err
	}

	if s.repo != nil {
		if previous, err := s.repo.Get(ctx, vin); err == nil {
			result, err = reapplyOverrides(result, previous)
			if err != nil {
				return nil, err
			}
		} else if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
	}

	if s.cfg.Archive {
		s.archiveResult(ctx, s.logger.With(zap.String("vin", vin)), result)
	}
	if save {
		if err := s.save(ctx, result); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// reconcile runs the engine and enforces the check digit when configured.
func (s *Service) reconcile(vin string, primary, secondary reconcile.RawResponse) (*models.Result, error) {
	result, err := s.engine.Reconcile(vin, primary, secondary)
	if err != nil {
		return nil, err
	}
	if s.cfg.RequireCheckDigit && !result.Metadata.CheckDigitValid {
		return nil, &ValidationError{
			Op:     "reconcile",
			Field:  "vin",
			Value:  vin,
			Reason: "check digit does not match",
			Err:    ErrInvalidVIN,
		}
	}
	return result, nil
}

// reapplyOverrides carries the manual values of previous over to result.
func reapplyOverrides(result, previous *models.Result) (*models.Result, error) {
	if len(previous.Metadata.FieldsManuallyOverridden) == 0 {
		return result, nil
	}
	values := models.IdentityValues(previous.Identity)
	for k, v := range models.ConfigurationValues(previous.Configuration) {
		values[k] = v
	}
	overrides := make(map[string]any, len(previous.Metadata.FieldsManuallyOverridden))
	for _, name := range previous.Metadata.FieldsManuallyOverridden {
		if v, ok := values[name]; ok {
			overrides[name] = v
		}
	}
	return ApplyOverrides(result, overrides)
}

func (s *Service) save(ctx context.Context, result *models.Result) error {
	if s.repo == nil {
		return ErrStoreUnavailable
	}
	if err := s.repo.Save(ctx, result); err != nil {
		return fmt.Errorf("failed to save %s: %w", result.VIN, err)
	}
	return nil
}

func (s *Service) archiving() bool {
	return s.cfg.Archive && s.archive != nil
}

func (s *Service) archiveResult(ctx context.Context, log *zap.Logger, result *models.Result) {
	if err := s.archive.SaveResult(ctx, result); err != nil {
		log.Warn("Failed to archive result", zap.Error(err))
	}
}
