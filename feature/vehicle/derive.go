package vehicle

import (
	"strconv"
	"strings"

	"vehicle-reconciler/feature/vehicle/models"
)

// Roof height bands by overall height in inches.
const (
	RoofLow    = "low"
	RoofMedium = "medium"
	RoofHigh   = "high"

	roofLowBelow    = 90.0
	roofMediumBelow = 105.0
)

// weightClasses are the upper GVWR bounds (pounds, inclusive) of classes 1 through 7.
// Anything heavier is Class 8.
var weightClasses = []struct {
	max  int
	name string
}{
	{6000, "Class 1"},
	{10000, "Class 2"},
	{14000, "Class 3"},
	{16000, "Class 4"},
	{19500, "Class 5"},
	{26000, "Class 6"},
	{33000, "Class 7"},
}

// DeriveFields fills configuration attributes no provider supplies directly.
//
// Rules run in order and only write to fields that are still nil:
//  1. payloadCapacity = grossVehicleWeightRating - curbWeight, suppressed when negative
//  2. roofHeight from overallHeight, weightClass from grossVehicleWeightRating
//  3. engineDescription composed from displacement, cylinders and engine model
//
// It returns the updated configuration and the names of the fields it filled.
// Running it again on its own output changes nothing.
func DeriveFields(cfg models.Configuration) (models.Configuration, []string) {
	out := cfg
	derived := []string{}

	if out.PayloadCapacity == nil && out.GrossVehicleWeightRating != nil && out.CurbWeight != nil {
		payload := *out.GrossVehicleWeightRating - *out.CurbWeight
		if payload >= 0 {
			out.PayloadCapacity = &payload
			derived = append(derived, models.FieldPayloadCapacity)
		}
	}

	if out.RoofHeight == nil && out.OverallHeight != nil && *out.OverallHeight > 0 {
		band := roofBand(*out.OverallHeight)
		out.RoofHeight = &band
		derived = append(derived, models.FieldRoofHeight)
	}

	if out.WeightClass == nil && out.GrossVehicleWeightRating != nil && *out.GrossVehicleWeightRating > 0 {
		class := weightClass(*out.GrossVehicleWeightRating)
		out.WeightClass = &class
		derived = append(derived, models.FieldWeightClass)
	}

	if out.EngineDescription == nil {
		if desc, ok := composeEngineDescription(out); ok {
			out.EngineDescription = &desc
			derived = append(derived, models.FieldEngineDescription)
		}
	}

	return out, derived
}

func roofBand(height float64) string {
	switch {
	case height < roofLowBelow:
		return RoofLow
	case height < roofMediumBelow:
		return RoofMedium
	default:
		return RoofHigh
	}
}

func weightClass(gvwr int) string {
	for _, c := range weightClasses {
		if gvwr <= c.max {
			return c.name
		}
	}
	return "Class 8"
}

// composeEngineDescription joins displacement, cylinder count and engine model,
// e.g. "6.7L 8-Cylinder Power Stroke". At least two of the three parts are required.
func composeEngineDescription(cfg models.Configuration) (string, bool) {
	parts := make([]string, 0, 3)
	if cfg.EngineDisplacement != nil && *cfg.EngineDisplacement > 0 {
		parts = append(parts, strconv.FormatFloat(*cfg.EngineDisplacement, 'f', 1, 64)+"L")
	}
	if cfg.EngineCylinders != nil && *cfg.EngineCylinders > 0 {
		parts = append(parts, strconv.Itoa(*cfg.EngineCylinders)+"-Cylinder")
	}
	if cfg.EngineModel != nil && *cfg.EngineModel != "" {
		parts = append(parts, *cfg.EngineModel)
	}
	if len(parts) < 2 {
		return "", false
	}
	return strings.Join(parts, " "), true
}
