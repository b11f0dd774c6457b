package vehicle_test

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"vehicle-reconciler/core/reconcile"
	"vehicle-reconciler/feature/vehicle"
	"vehicle-reconciler/feature/vehicle/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testVIN = "1FTBW9CK5PKA12345"

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestEngine() *vehicle.Engine {
	e := vehicle.NewEngine()
	e.Now = func() time.Time { return fixedNow }
	return e
}

func eTransitPrimary() reconcile.RawResponse {
	return reconcile.RawResponse{
		"ModelYear":    "2024",
		"Make":         "Ford",
		"Model":        "E-Transit",
		"GVWR":         "9500",
		"CurbWeightLB": "5620",
	}
}

func TestReconcile_PrimaryOnly(t *testing.T) {
	result, err := newTestEngine().Reconcile(testVIN, eTransitPrimary(), nil)
	require.NoError(t, err)

	assert.Equal(t, testVIN, result.VIN)
	require.NotNil(t, result.Identity.ModelYear)
	assert.Equal(t, 2024, *result.Identity.ModelYear)
	assert.Equal(t, "Ford", *result.Identity.MakeName)
	assert.Equal(t, "E-Transit", *result.Identity.ModelName)
	assert.Nil(t, result.Identity.SeriesOrTrim)

	cfg := result.Configuration
	require.NotNil(t, cfg.GrossVehicleWeightRating)
	assert.Equal(t, 9500, *cfg.GrossVehicleWeightRating)
	require.NotNil(t, cfg.PayloadCapacity)
	assert.Equal(t, 3880, *cfg.PayloadCapacity)
	assert.Equal(t, "Class 2", *cfg.WeightClass)

	meta := result.Metadata
	assert.Equal(t, reconcile.ConfidenceMedium, meta.Confidence)
	assert.Equal(t, []reconcile.Source{reconcile.SourcePrimary}, meta.SourcesUsed)
	assert.Equal(t, fixedNow, meta.DecodedAt)
	assert.ElementsMatch(t, []string{"modelYear", "makeName", "modelName", "curbWeight", "grossVehicleWeightRating"}, meta.FieldsFromPrimary)
	assert.Empty(t, meta.FieldsFromSecondary)
	assert.Equal(t, []string{"payloadCapacity", "weightClass"}, meta.FieldsDerived)
	assert.NotNil(t, meta.FieldsManuallyOverridden)
	assert.Empty(t, meta.FieldsManuallyOverridden)
	assert.True(t, meta.CheckDigitValid)

	source, ok := meta.SourceOf("payloadCapacity")
	assert.True(t, ok)
	assert.Equal(t, reconcile.SourceDerived, source)
}

func TestReconcile_SecondaryAuthoritativeMPG(t *testing.T) {
	primary := eTransitPrimary()
	primary["CityMPG"] = "20"
	primary["FuelTypePrimary"] = "Gasoline"
	primary["DriveType"] = "RWD/Rear-Wheel Drive"

	secondary := reconcile.RawResponse{
		"year":      2024,
		"make":      "FORD",
		"city08":    28,
		"highway08": 32,
		"fuelType1": "Regular Gasoline",
		"drive":     "Rear-Wheel Drive",
	}

	result, err := newTestEngine().Reconcile(testVIN, primary, secondary)
	require.NoError(t, err)

	cfg := result.Configuration
	require.NotNil(t, cfg.MPGCity)
	assert.Equal(t, 28.0, *cfg.MPGCity)
	require.NotNil(t, cfg.MPGHighway)
	assert.Equal(t, 32.0, *cfg.MPGHighway)
	assert.Equal(t, "Gasoline", *cfg.FuelType)
	assert.Equal(t, "RWD/Rear-Wheel Drive", *cfg.DriveType)

	meta := result.Metadata
	assert.Equal(t, []string{"mpgCity", "mpgHighway"}, meta.FieldsFromSecondary)
	assert.NotContains(t, meta.FieldsFromPrimary, "mpgCity")
	assert.Contains(t, meta.FieldsFromPrimary, "fuelType")
	assert.Equal(t, []reconcile.Source{reconcile.SourcePrimary, reconcile.SourceSecondary}, meta.SourcesUsed)
}

func TestReconcile_SecondaryFillsGaps(t *testing.T) {
	secondary := reconcile.RawResponse{
		"fuelType1": "Electricity",
		"VClass":    "Vans, Cargo Type",
		"drive":     "Rear-Wheel Drive",
		"range":     "126",
	}

	result, err := newTestEngine().Reconcile(testVIN, eTransitPrimary(), secondary)
	require.NoError(t, err)

	assert.Equal(t, "Electricity", *result.Configuration.FuelType)
	assert.Equal(t, 126, *result.Configuration.ElectricRange)
	assert.Equal(t, []string{"fuelType", "driveType", "bodyStyle", "electricRange"}, result.Metadata.FieldsFromSecondary)
	// Critical fields all present and three of four important ones.
	assert.Equal(t, reconcile.ConfidenceHigh, result.Metadata.Confidence)
}

func TestReconcile_Precedence(t *testing.T) {
	primary := eTransitPrimary()
	primary["CityMPG"] = "18"
	primary["HighwayMPG"] = "22"
	primary["FuelTypePrimary"] = "Electric"
	primary["EngineCylinders"] = "0"

	secondary := reconcile.RawResponse{
		"city08":    "75",
		"highway08": "62",
		"fuelType1": "Electricity",
		"cylinders": "4",
	}

	result, err := newTestEngine().Reconcile(testVIN, primary, secondary)
	require.NoError(t, err)

	assert.Equal(t, 75.0, *result.Configuration.MPGCity)
	assert.Equal(t, 62.0, *result.Configuration.MPGHighway)
	assert.Equal(t, "Electric", *result.Configuration.FuelType)
	assert.Equal(t, 0, *result.Configuration.EngineCylinders)
	assert.Equal(t, []string{"mpgCity", "mpgHighway"}, result.Metadata.FieldsFromSecondary)
}

func TestReconcile_SecondaryForDifferentVehicleIgnored(t *testing.T) {
	primary := eTransitPrimary()
	primary["CityMPG"] = "20"

	secondary := reconcile.RawResponse{
		"year":   2019,
		"make":   "Ford",
		"city08": 28,
	}

	result, err := newTestEngine().Reconcile(testVIN, primary, secondary)
	require.NoError(t, err)

	assert.Equal(t, 20.0, *result.Configuration.MPGCity)
	assert.Empty(t, result.Metadata.FieldsFromSecondary)
	assert.Equal(t, []reconcile.Source{reconcile.SourcePrimary}, result.Metadata.SourcesUsed)
}

func TestReconcile_UnusableSecondary(t *testing.T) {
	secondary := reconcile.RawResponse{
		"city08":    "Not Applicable",
		"highway08": map[string]any{"unexpected": true},
		"comb08":    "",
		"other":     "ignored",
	}

	result, err := newTestEngine().Reconcile(testVIN, eTransitPrimary(), secondary)
	require.NoError(t, err)

	assert.Nil(t, result.Configuration.MPGCity)
	assert.Nil(t, result.Configuration.MPGHighway)
	assert.Equal(t, []reconcile.Source{reconcile.SourcePrimary}, result.Metadata.SourcesUsed)
	assert.Equal(t, reconcile.ConfidenceMedium, result.Metadata.Confidence)
}

func TestReconcile_TotalSourceFailure(t *testing.T) {
	primary := reconcile.RawResponse{
		"ErrorCode": "11",
		"ErrorText": "Incorrect Model Year",
		"Make":      "",
		"Model":     "Not Applicable",
	}
	secondary := reconcile.RawResponse{"city08": 28, "highway08": 32}

	result, err := newTestEngine().Reconcile(testVIN, primary, secondary)
	require.NoError(t, err)

	assert.Equal(t, models.Identity{}, result.Identity)
	assert.Equal(t, models.Configuration{}, result.Configuration)
	assert.Equal(t, reconcile.ConfidenceLow, result.Metadata.Confidence)
	assert.NotNil(t, result.Metadata.SourcesUsed)
	assert.Empty(t, result.Metadata.SourcesUsed)
	assert.Empty(t, result.Metadata.FieldsFromPrimary)
	assert.Empty(t, result.Metadata.FieldsFromSecondary)
	assert.Empty(t, result.Metadata.FieldsDerived)
}

func TestReconcile_NilPrimary(t *testing.T) {
	result, err := newTestEngine().Reconcile(testVIN, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, reconcile.ConfidenceLow, result.Metadata.Confidence)
	assert.Empty(t, result.Metadata.SourcesUsed)
}

func TestReconcile_InvalidVIN(t *testing.T) {
	vins := []string{
		"",
		"1FTBW9CK5PKA1234",
		"1FTBW9CK5PKA123456",
		"1FTBW9CK5PKA1234I",
		"1FTBW9CK5PKA1234O",
		"1FTBW9CK5PKA1234Q",
		"1ftbw9ck5pka12345",
		"1FTBW9CK5PKA 2345",
	}

	for _, vin := range vins {
		result, err := newTestEngine().Reconcile(vin, eTransitPrimary(), nil)
		assert.Nil(t, result, vin)
		require.Error(t, err, vin)
		assert.True(t, vehicle.IsValidationError(err), vin)
		assert.True(t, errors.Is(err, vehicle.ErrInvalidVIN), vin)
	}
}

func TestReconcile_AnyValidVINSucceeds(t *testing.T) {
	const alphabet = "0123456789ABCDEFGHJKLMNPRSTUVWXYZ"
	rng := rand.New(rand.NewSource(42))
	engine := newTestEngine()

	for i := 0; i < 500; i++ {
		b := make([]byte, vehicle.VINLength)
		for j := range b {
			b[j] = alphabet[rng.Intn(len(alphabet))]
		}
		result, err := engine.Reconcile(string(b), eTransitPrimary(), nil)
		require.NoError(t, err, string(b))
		assert.NotNil(t, result)
	}
}

func TestReconcile_DoesNotModifyInputs(t *testing.T) {
	primary := eTransitPrimary()
	secondary := reconcile.RawResponse{"city08": 28}

	_, err := newTestEngine().Reconcile(testVIN, primary, secondary)
	require.NoError(t, err)

	assert.Equal(t, eTransitPrimary(), primary)
	assert.Equal(t, reconcile.RawResponse{"city08": 28}, secondary)
}

func TestReconcile_EveryFieldHasOneSource(t *testing.T) {
	primary := eTransitPrimary()
	primary["CityMPG"] = "20"
	primary["OverallHeight"] = "108.3"
	primary["BodyClass"] = "Van"
	secondary := reconcile.RawResponse{"city08": 28, "highway08": 32, "fuelType1": "Electricity"}

	result, err := newTestEngine().Reconcile(testVIN, primary, secondary)
	require.NoError(t, err)

	seen := map[string]int{}
	for _, name := range result.Metadata.Populated() {
		seen[name]++
	}
	for name, n := range seen {
		assert.Equal(t, 1, n, "field %s listed %d times", name, n)
	}

	values := models.ConfigurationValues(result.Configuration)
	for name := range models.IdentityValues(result.Identity) {
		values[name] = true
	}
	assert.Len(t, seen, len(values))
	for name := range values {
		assert.Contains(t, seen, name)
	}
}

func TestReconcile_PackageDefault(t *testing.T) {
	result, err := vehicle.Reconcile(testVIN, eTransitPrimary(), nil)
	require.NoError(t, err)
	assert.False(t, result.Metadata.DecodedAt.IsZero())
}
