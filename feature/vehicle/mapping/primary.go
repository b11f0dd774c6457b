package mapping

import (
	"vehicle-reconciler/core/coerce"
	"vehicle-reconciler/core/reconcile"
	"vehicle-reconciler/feature/vehicle/models"
)

// PrimaryIdentity maps VIN-decode fields to identity fields.
var PrimaryIdentity = reconcile.Table{
	{Canonical: models.FieldModelYear, Field: "ModelYear", Aliases: []string{"Model_Year", "Model Year"}, Kind: coerce.KindInt},
	{Canonical: models.FieldMakeName, Field: "Make", Aliases: []string{"Make_Name", "MakeName", "Make Name"}, Kind: coerce.KindString},
	{Canonical: models.FieldModelName, Field: "Model", Aliases: []string{"Model_Name", "ModelName", "Model Name"}, Kind: coerce.KindString},
	{Canonical: models.FieldSeriesOrTrim, Field: "Series", Aliases: []string{"Series_Name", "Series Name"}, Kind: coerce.KindString},
	{Canonical: models.FieldSeriesOrTrim, Field: "Trim", Aliases: []string{"Trim_Name", "Trim Name"}, Kind: coerce.KindString},
}

// PrimaryConfiguration maps VIN-decode fields to configuration fields.
var PrimaryConfiguration = reconcile.Table{
	// Body and classification
	{Canonical: models.FieldBodyStyle, Field: "BodyClass", Aliases: []string{"Body_Class", "Body Class"}, Kind: coerce.KindString},
	{Canonical: models.FieldVehicleType, Field: "VehicleType", Aliases: []string{"Vehicle_Type", "Vehicle Type"}, Kind: coerce.KindString},
	{Canonical: models.FieldDriveType, Field: "DriveType", Aliases: []string{"Drive_Type", "Drive Type"}, Kind: coerce.KindString},
	{Canonical: models.FieldCabType, Field: "BodyCabType", Aliases: []string{"Cab Type", "CabType", "Body_Cab_Type"}, Kind: coerce.KindString},
	{Canonical: models.FieldDoors, Field: "Doors", Aliases: []string{"Number_of_Doors", "Doors (Count)"}, Kind: coerce.KindInt},

	// Dimensions
	{Canonical: models.FieldWheelbase, Field: "WheelBaseShort", Aliases: []string{"WheelBase", "Wheel Base (inches) From"}, Kind: coerce.KindFloat},
	{Canonical: models.FieldWheelbase, Field: "WheelBaseLong", Aliases: []string{"Wheel Base (inches) To"}, Kind: coerce.KindFloat},
	{Canonical: models.FieldOverallLength, Field: "OverallLength", Aliases: []string{"Overall_Length", "Overall Length (inches)"}, Kind: coerce.KindFloat},
	{Canonical: models.FieldOverallWidth, Field: "OverallWidth", Aliases: []string{"Overall_Width", "Overall Width (inches)"}, Kind: coerce.KindFloat},
	{Canonical: models.FieldOverallHeight, Field: "OverallHeight", Aliases: []string{"Overall_Height", "Overall Height (inches)"}, Kind: coerce.KindFloat},
	{Canonical: models.FieldBedLength, Field: "BedLengthIN", Aliases: []string{"Bed_Length", "Bed Length (inches)"}, Kind: coerce.KindFloat},

	// Weights
	{Canonical: models.FieldCurbWeight, Field: "CurbWeightLB", Aliases: []string{"CurbWeight", "Curb Weight (pounds)"}, Kind: coerce.KindInt},
	{Canonical: models.FieldGrossVehicleWeightRating, Field: "GVWR", Aliases: []string{"GrossVehicleWeightRating", "Gross Vehicle Weight Rating From"}, Kind: coerce.KindInt},
	{Canonical: models.FieldFrontGAWR, Field: "GAWRFront", Aliases: []string{"FrontGAWR", "Front Axle GAWR (pounds)"}, Kind: coerce.KindInt},
	{Canonical: models.FieldRearGAWR, Field: "GAWRRear", Aliases: []string{"RearGAWR", "Rear Axle GAWR (pounds)"}, Kind: coerce.KindInt},

	// Powertrain
	{Canonical: models.FieldEngineDescription, Field: "EngineDescription", Aliases: []string{"OtherEngineInfo", "Other Engine Info"}, Kind: coerce.KindString},
	{Canonical: models.FieldEngineModel, Field: "EngineModel", Aliases: []string{"Engine_Model", "Engine Model"}, Kind: coerce.KindString},
	{Canonical: models.FieldEngineCylinders, Field: "EngineCylinders", Aliases: []string{"Engine_Cylinders", "Engine Number of Cylinders"}, Kind: coerce.KindInt},
	{Canonical: models.FieldEngineDisplacement, Field: "DisplacementL", Aliases: []string{"Displacement_L", "Displacement (L)"}, Kind: coerce.KindFloat},
	{Canonical: models.FieldTransmission, Field: "TransmissionStyle", Aliases: []string{"Transmission_Style", "Transmission Style"}, Kind: coerce.KindString},
	{Canonical: models.FieldTransmissionSpeeds, Field: "TransmissionSpeeds", Aliases: []string{"Transmission_Speeds", "Transmission Speeds"}, Kind: coerce.KindInt},
	{Canonical: models.FieldHorsepower, Field: "EngineHP", Aliases: []string{"Engine_HP", "Engine Brake (hp) From"}, Kind: coerce.KindFloat},
	{Canonical: models.FieldFuelType, Field: "FuelTypePrimary", Aliases: []string{"Fuel_Type_Primary", "Fuel Type - Primary"}, Kind: coerce.KindString},
	{Canonical: models.FieldBatteryKWh, Field: "BatteryKWh", Aliases: []string{"Battery_kWh", "Battery Energy (kWh) From"}, Kind: coerce.KindFloat},
	{Canonical: models.FieldBatteryVoltage, Field: "BatteryV", Aliases: []string{"Battery_V", "Battery Voltage (Volts) From"}, Kind: coerce.KindFloat},
	{Canonical: models.FieldElectricRange, Field: "ElectricRange", Aliases: []string{"EVRange", "Electric Range (miles)"}, Kind: coerce.KindInt},

	// Capacity
	{Canonical: models.FieldSeatingCapacity, Field: "Seats", Aliases: []string{"Number_of_Seats", "Number of Seats"}, Kind: coerce.KindInt},
	{Canonical: models.FieldSeatRows, Field: "SeatRows", Aliases: []string{"Number_of_Seat_Rows", "Number of Seat Rows"}, Kind: coerce.KindInt},
	{Canonical: models.FieldFuelTankGallons, Field: "FuelTankCapacity", Aliases: []string{"FuelTankGallons", "Fuel Tank Capacity (gallons)"}, Kind: coerce.KindFloat},
	{Canonical: models.FieldTowingCapacity, Field: "TowingCapacity", Aliases: []string{"MaxTowingCapacity", "Towing Capacity (pounds)"}, Kind: coerce.KindInt},

	// Efficiency
	{Canonical: models.FieldMPGCity, Field: "CityMPG", Aliases: []string{"MPG_City", "City MPG"}, Kind: coerce.KindFloat},
	{Canonical: models.FieldMPGHighway, Field: "HighwayMPG", Aliases: []string{"MPG_Highway", "Highway MPG"}, Kind: coerce.KindFloat},

	// Axles and wheels
	{Canonical: models.FieldAxleCount, Field: "Axles", Aliases: []string{"Number_of_Axles", "Number of Axles"}, Kind: coerce.KindInt},
	{Canonical: models.FieldRearWheels, Field: "RearWheels", Aliases: []string{"Rear_Wheels", "Dual Rear Wheels"}, Kind: coerce.KindString},

	// Features
	{Canonical: models.FieldHasBluetooth, Field: "Bluetooth", Aliases: []string{"BluetoothConnectivity", "Bluetooth Connectivity"}, Kind: coerce.KindBool},
	{Canonical: models.FieldHasBackupCamera, Field: "BackupCamera", Aliases: []string{"RearVisibilitySystem", "Backup Camera"}, Kind: coerce.KindBool},
	{Canonical: models.FieldHasTPMS, Field: "TPMS", Aliases: []string{"TirePressureMonitoring", "Tire Pressure Monitoring System (TPMS) Type"}, Kind: coerce.KindBool},
}

// Primary is the adapter for the VIN-decode provider.
type Primary struct{}

// Name returns the primary source.
func (Primary) Name() reconcile.Source { return reconcile.SourcePrimary }

// IdentityTable returns PrimaryIdentity.
func (Primary) IdentityTable() reconcile.Table { return PrimaryIdentity }

// ConfigurationTable returns PrimaryConfiguration.
func (Primary) ConfigurationTable() reconcile.Table { return PrimaryConfiguration }
