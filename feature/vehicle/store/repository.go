package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"vehicle-reconciler/core/reconcile"
	"vehicle-reconciler/feature/vehicle/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when no record exists for a VIN.
var ErrNotFound = errors.New("record not found")

// MaxPageSize caps List.
const MaxPageSize = 500

// Repository persists reconciled vehicles.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository on db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the store tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Tables()...); err != nil {
		return fmt.Errorf("failed to migrate vehicle tables: %w", err)
	}
	return nil
}

// Save upserts the identity and configuration rows of result in one transaction.
func (r *Repository) Save(ctx context.Context, result *models.Result) error {
	meta, err := json.Marshal(result.Metadata)
	if err != nil {
		return fmt.Errorf("failed to encode metadata for %s: %w", result.VIN, err)
	}

	vehicle := VehicleRecord{
		VIN:        result.VIN,
		Identity:   result.Identity,
		Confidence: string(result.Metadata.Confidence),
		Metadata:   string(meta),
		DecodedAt:  result.Metadata.DecodedAt,
	}
	config := ConfigurationRecord{
		VIN:           result.VIN,
		Configuration: result.Configuration,
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&vehicle).Error; err != nil {
			return fmt.Errorf("failed to save vehicle %s: %w", result.VIN, err)
		}
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&config).Error; err != nil {
			return fmt.Errorf("failed to save configuration %s: %w", result.VIN, err)
		}
		return nil
	})
}

// Get loads the stored result for vin.
func (r *Repository) Get(ctx context.Context, vin string) (*models.Result, error) {
	db := r.db.WithContext(ctx)

	var vehicle VehicleRecord
	if err := db.Where("vin = ?", vin).First(&vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%s: %w", vin, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load vehicle %s: %w", vin, err)
	}

	var config ConfigurationRecord
	if err := db.Where("vin = ?", vin).Limit(1).Find(&config).Error; err != nil {
		return nil, fmt.Errorf("failed to load configuration %s: %w", vin, err)
	}

	return assemble(vehicle, config.Configuration)
}

// Page is one page of stored results.
type Page struct {
	Total   int64            `json:"total"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
	Results []*models.Result `json:"results"`
}

// List returns stored results, most recently updated first.
func (r *Repository) List(ctx context.Context, limit, offset int) (*Page, error) {
	if limit <= 0 || limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	db := r.db.WithContext(ctx)

	page := &Page{Limit: limit, Offset: offset, Results: []*models.Result{}}
	if err := db.Model(&VehicleRecord{}).Count(&page.Total).Error; err != nil {
		return nil, fmt.Errorf("failed to count vehicles: %w", err)
	}

	var vehicles []VehicleRecord
	if err := db.Order("updated_at DESC").Order("vin").Limit(limit).Offset(offset).Find(&vehicles).Error; err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	if len(vehicles) == 0 {
		return page, nil
	}

	vins := make([]string, len(vehicles))
	for i, v := range vehicles {
		vins[i] = v.VIN
	}
	var configs []ConfigurationRecord
	if err := db.Where("vin IN ?", vins).Find(&configs).Error; err != nil {
		return nil, fmt.Errorf("failed to list configurations: %w", err)
	}
	byVIN := make(map[string]models.Configuration, len(configs))
	for _, c := range configs {
		byVIN[c.VIN] = c.Configuration
	}

	for _, v := range vehicles {
		result, err := assemble(v, byVIN[v.VIN])
		if err != nil {
			return nil, err
		}
		page.Results = append(page.Results, result)
	}
	return page, nil
}

// Delete removes both rows of vin.
func (r *Repository) Delete(ctx context.Context, vin string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("vin = ?", vin).Delete(&ConfigurationRecord{}).Error; err != nil {
			return fmt.Errorf("failed to delete configuration %s: %w", vin, err)
		}
		res := tx.Where("vin = ?", vin).Delete(&VehicleRecord{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete vehicle %s: %w", vin, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%s: %w", vin, ErrNotFound)
		}
		return nil
	})
}

func assemble(v VehicleRecord, cfg models.Configuration) (*models.Result, error) {
	var meta models.Metadata
	if v.Metadata != "" {
		if err := json.Unmarshal([]byte(v.Metadata), &meta); err != nil {
			return nil, fmt.Errorf("failed to decode metadata for %s: %w", v.VIN, err)
		}
	}
	if meta.Confidence == "" {
		meta.Confidence = reconcile.Confidence(v.Confidence)
	}
	if meta.DecodedAt.IsZero() {
		meta.DecodedAt = v.DecodedAt
	}
	return &models.Result{
		VIN:           v.VIN,
		Identity:      v.Identity,
		Configuration: cfg,
		Metadata:      meta,
	}, nil
}
