// Package config provides configuration management for the vehicle reconciler.
//
// It uses Viper to read an optional config.yaml, a .env file (godotenv) and
// environment variables. Defaults come from `default` struct tags on each section.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: HTTP port, API key, body limit
//   - Database: MySQL or SQLite connection details
//   - Storage: S3/MinIO credentials, archive bucket and prefix
//   - Log: logging level and format
//   - Reconcile: batch workers, archiving, check digit policy
//
// Environment variables map onto nested keys with underscores, e.g. RECONCILE_WORKERS.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
