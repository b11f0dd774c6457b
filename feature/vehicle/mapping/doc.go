// Package mapping holds the static field tables for each vehicle-data provider.
//
// Two providers are supported:
//
//  1. Primary: a VIN-decode registry returning one flat key/value object per VIN
//     (keys such as "ModelYear", "Make", "GVWR", "CurbWeightLB").
//  2. Secondary: a fuel-economy registry returning one object per vehicle
//     (keys such as "city08", "highway08", "fuelType1").
//
// Each provider has an identity table and a configuration table. Entries are ordered and
// each carries a canonical name, the provider key, spelling aliases observed across API
// versions, and the coercion kind.
//
// A canonical name may appear in more than one entry. Later entries are only consulted when
// earlier ones yield no value, which is how "Series, then Trim" style fallbacks are declared
// without changing the alias resolution order of a single entry.
package mapping
