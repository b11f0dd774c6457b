// Package database handles database connections and schema inspection.
//
// It wraps GORM to open MySQL or SQLite connections from the application's configuration.
// SQLite is meant for local runs and tests; production deployments use MySQL.
//
// # Connect
//
// Connect opens the configured driver, sizes the connection pool and verifies the
// connection with a ping bounded by TimeoutSeconds.
//
// # Schema Inspection
//
// GetTableColumns reads the live column definitions of a table. The integrity feature
// compares them with the vehicle store models to report schema drift.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "vehicles")
package database
