package mapping

import (
	"vehicle-reconciler/core/coerce"
	"vehicle-reconciler/core/reconcile"
	"vehicle-reconciler/feature/vehicle/models"
)

// SecondaryIdentity maps fuel-economy fields to identity fields.
// Identity always comes from the primary source. These fields are only compared against it
// to reject a fuel-economy record that describes a different vehicle.
var SecondaryIdentity = reconcile.Table{
	{Canonical: models.FieldModelYear, Field: "year", Aliases: []string{"Year", "modelYear"}, Kind: coerce.KindInt},
	{Canonical: models.FieldMakeName, Field: "make", Aliases: []string{"Make"}, Kind: coerce.KindString},
	{Canonical: models.FieldModelName, Field: "model", Aliases: []string{"Model", "baseModel"}, Kind: coerce.KindString},
}

// SecondaryConfiguration maps fuel-economy fields to configuration fields.
var SecondaryConfiguration = reconcile.Table{
	{Canonical: models.FieldMPGCity, Field: "city08", Aliases: []string{"cityMpg", "city08U", "UCity"}, Kind: coerce.KindFloat},
	{Canonical: models.FieldMPGHighway, Field: "highway08", Aliases: []string{"highwayMpg", "highway08U", "UHighway"}, Kind: coerce.KindFloat},
	{Canonical: models.FieldMPGCombined, Field: "comb08", Aliases: []string{"combinedMpg", "comb08U"}, Kind: coerce.KindFloat},
	{Canonical: models.FieldFuelType, Field: "fuelType1", Aliases: []string{"fuelType", "Fuel Type"}, Kind: coerce.KindString},
	{Canonical: models.FieldDriveType, Field: "drive", Aliases: []string{"Drive", "driveAxleType"}, Kind: coerce.KindString},
	{Canonical: models.FieldTransmission, Field: "trany", Aliases: []string{"transmission", "Trany"}, Kind: coerce.KindString},
	{Canonical: models.FieldEngineCylinders, Field: "cylinders", Aliases: []string{"Cylinders"}, Kind: coerce.KindInt},
	{Canonical: models.FieldEngineDisplacement, Field: "displ", Aliases: []string{"displacement", "Displ"}, Kind: coerce.KindFloat},
	{Canonical: models.FieldEngineDescription, Field: "eng_dscr", Aliases: []string{"engDscr", "engineDescription"}, Kind: coerce.KindString},
	{Canonical: models.FieldBodyStyle, Field: "VClass", Aliases: []string{"vClass", "vehicleClass"}, Kind: coerce.KindString},
	{Canonical: models.FieldElectricRange, Field: "range", Aliases: []string{"rangeA", "evRange"}, Kind: coerce.KindInt},
}

// Secondary is the adapter for the fuel-economy provider.
type Secondary struct{}

// Name returns the secondary source.
func (Secondary) Name() reconcile.Source { return reconcile.SourceSecondary }

// IdentityTable returns SecondaryIdentity.
func (Secondary) IdentityTable() reconcile.Table { return SecondaryIdentity }

// ConfigurationTable returns SecondaryConfiguration.
func (Secondary) ConfigurationTable() reconcile.Table { return SecondaryConfiguration }
