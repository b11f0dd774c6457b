// Package store persists reconciled vehicles with GORM.
//
// A record spans two tables: `vehicles` holds the identity and the reconciliation
// metadata, `vehicle_configurations` holds one row of configuration columns per VIN.
// Both are written in a single transaction.
package store
