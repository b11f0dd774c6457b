// Package integrity provides health checks for the infrastructure the vehicle feature depends on.
//
// # Checks Provided
//
//   - Storage: Checks that the bucket exists and that every archived VIN folder holds a
//     primary response, so it can be replayed.
//   - Schema: Validates that the connected database matches the vehicle store models (columns, declared types).
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/storage : Runs the storage check (supports ?fix=true).
//   - GET /integrity/schema : Runs the schema check (supports ?fix=true, which migrates).
package integrity
