package store

import (
	"time"

	"vehicle-reconciler/feature/vehicle/models"
)

// VehicleRecord is the identity row of a reconciled vehicle.
// Metadata holds the JSON encoded models.Metadata.
type VehicleRecord struct {
	VIN             string `gorm:"column:vin;primaryKey;type:varchar(17)"`
	models.Identity `gorm:"embedded"`
	Confidence      string    `gorm:"column:confidence;type:varchar(8);index"`
	Metadata        string    `gorm:"column:metadata;type:text"`
	DecodedAt       time.Time `gorm:"column:decoded_at"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;index"`
}

// TableName pins the table name.
func (VehicleRecord) TableName() string { return "vehicles" }

// ConfigurationRecord holds one nullable column per configuration field.
type ConfigurationRecord struct {
	VIN                  string `gorm:"column:vin;primaryKey;type:varchar(17)"`
	models.Configuration `gorm:"embedded"`
	UpdatedAt            time.Time `gorm:"column:updated_at"`
}

// TableName pins the table name.
func (ConfigurationRecord) TableName() string { return "vehicle_configurations" }

// Tables lists every model owned by the store, in migration order.
func Tables() []any {
	return []any{&VehicleRecord{}, &ConfigurationRecord{}}
}
