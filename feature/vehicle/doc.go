// Package vehicle implements the vehicle data reconciliation feature.
//
// It merges two provider responses for one VIN into a single canonical record:
//  1. Primary: the VIN decode response (identity, body, weights, powertrain).
//  2. Secondary: the fuel-economy response (MPG, range, drivetrain details).
//
// # Reconcile Engine
//
// The merge itself runs on the generic `core/reconcile` engine through the provider
// tables in `mapping`. This package adds the vehicle rules on top: VIN validation,
// derived fields (payload, roof height, weight class, engine description), confidence
// scoring and manual overrides.
//
// # Components
//
//   - Engine: Pure reconciliation of raw responses into a models.Result.
//   - Service: Runs the engine, archives raw responses to object storage and persists results.
//   - Handler: Exposes HTTP endpoints for reconciliation, overrides and replays.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - POST /vehicles/reconcile : Reconcile raw provider responses.
//   - POST /vehicles/batch : Replay archived vehicles concurrently.
//   - GET /vehicles : List stored vehicles (supports ?limit= and ?offset=).
//   - GET /vehicles/:vin : Get a stored vehicle.
//   - PATCH /vehicles/:vin/overrides : Apply manual field values.
//   - POST /vehicles/:vin/replay : Reconcile again from the archive (supports ?save=true).
//   - DELETE /vehicles/:vin : Delete a stored vehicle and its archive.
package vehicle
