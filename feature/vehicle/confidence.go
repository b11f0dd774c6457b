package vehicle

import (
	"vehicle-reconciler/core/reconcile"
	"vehicle-reconciler/feature/vehicle/models"
)

// CriticalFields must all be present for a record to reach high confidence.
var CriticalFields = []string{
	models.FieldModelYear,
	models.FieldMakeName,
	models.FieldModelName,
	models.FieldGrossVehicleWeightRating,
}

// ImportantFields raise confidence when most of them are present.
var ImportantFields = []string{
	models.FieldBodyStyle,
	models.FieldDriveType,
	models.FieldEngineDescription,
	models.FieldFuelType,
}

// ConfidencePolicy is the policy applied to reconciled vehicles.
var ConfidencePolicy = reconcile.ConfidencePolicy{
	Critical:  CriticalFields,
	Important: ImportantFields,
}

// ClassifyConfidence returns the confidence level of a vehicle with the given populated fields.
func ClassifyConfidence(populated []string) reconcile.Confidence {
	return ConfidencePolicy.Classify(populated)
}
