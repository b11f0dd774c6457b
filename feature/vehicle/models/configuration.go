package models

// Configuration field names.
const (
	// Body and classification
	FieldBodyStyle   = "bodyStyle"
	FieldVehicleType = "vehicleType"
	FieldDriveType   = "driveType"
	FieldCabType     = "cabType"
	FieldDoors       = "doors"
	FieldRoofHeight  = "roofHeight"
	FieldWeightClass = "weightClass"

	// Dimensions, inches
	FieldWheelbase     = "wheelbase"
	FieldOverallLength = "overallLength"
	FieldOverallWidth  = "overallWidth"
	FieldOverallHeight = "overallHeight"
	FieldBedLength     = "bedLength"

	// Weights, pounds
	FieldCurbWeight               = "curbWeight"
	FieldGrossVehicleWeightRating = "grossVehicleWeightRating"
	FieldFrontGAWR                = "frontGawr"
	FieldRearGAWR                 = "rearGawr"
	FieldPayloadCapacity          = "payloadCapacity"

	// Powertrain
	FieldEngineDescription  = "engineDescription"
	FieldEngineModel        = "engineModel"
	FieldEngineCylinders    = "engineCylinders"
	FieldEngineDisplacement = "engineDisplacement"
	FieldTransmission       = "transmission"
	FieldTransmissionSpeeds = "transmissionSpeeds"
	FieldHorsepower         = "horsepower"
	FieldFuelType           = "fuelType"
	FieldBatteryKWh         = "batteryKwh"
	FieldBatteryVoltage     = "batteryVoltage"
	FieldElectricRange      = "electricRange"

	// Capacity
	FieldSeatingCapacity = "seatingCapacity"
	FieldSeatRows        = "seatRows"
	FieldFuelTankGallons = "fuelTankGallons"
	FieldTowingCapacity  = "towingCapacity"

	// Efficiency, MPG or MPGe
	FieldMPGCity     = "mpgCity"
	FieldMPGHighway  = "mpgHighway"
	FieldMPGCombined = "mpgCombined"

	// Axles and wheels
	FieldAxleCount  = "axleCount"
	FieldRearWheels = "rearWheels"

	// Feature flags
	FieldHasBluetooth    = "hasBluetooth"
	FieldHasBackupCamera = "hasBackupCamera"
	FieldHasTPMS         = "hasTpms"
)

// Configuration is the canonical description of one vehicle configuration.
// Every field is optional: nil means unknown, which is different from zero or false.
type Configuration struct {
	// Body and classification
	BodyStyle   *string `json:"bodyStyle" mapstructure:"bodyStyle" gorm:"column:body_style"`
	VehicleType *string `json:"vehicleType" mapstructure:"vehicleType" gorm:"column:vehicle_type"`
	DriveType   *string `json:"driveType" mapstructure:"driveType" gorm:"column:drive_type"`
	CabType     *string `json:"cabType" mapstructure:"cabType" gorm:"column:cab_type"`
	Doors       *int    `json:"doors" mapstructure:"doors" gorm:"column:doors"`
	RoofHeight  *string `json:"roofHeight" mapstructure:"roofHeight" gorm:"column:roof_height"`
	WeightClass *string `json:"weightClass" mapstructure:"weightClass" gorm:"column:weight_class"`

	// Dimensions, inches
	Wheelbase     *float64 `json:"wheelbase" mapstructure:"wheelbase" gorm:"column:wheelbase"`
	OverallLength *float64 `json:"overallLength" mapstructure:"overallLength" gorm:"column:overall_length"`
	OverallWidth  *float64 `json:"overallWidth" mapstructure:"overallWidth" gorm:"column:overall_width"`
	OverallHeight *float64 `json:"overallHeight" mapstructure:"overallHeight" gorm:"column:overall_height"`
	BedLength     *float64 `json:"bedLength" mapstructure:"bedLength" gorm:"column:bed_length"`

	// Weights, pounds
	CurbWeight               *int `json:"curbWeight" mapstructure:"curbWeight" gorm:"column:curb_weight"`
	GrossVehicleWeightRating *int `json:"grossVehicleWeightRating" mapstructure:"grossVehicleWeightRating" gorm:"column:gvwr"`
	FrontGAWR                *int `json:"frontGawr" mapstructure:"frontGawr" gorm:"column:front_gawr"`
	RearGAWR                 *int `json:"rearGawr" mapstructure:"rearGawr" gorm:"column:rear_gawr"`
	PayloadCapacity          *int `json:"payloadCapacity" mapstructure:"payloadCapacity" gorm:"column:payload_capacity"`

	// Powertrain
	EngineDescription  *string  `json:"engineDescription" mapstructure:"engineDescription" gorm:"column:engine_description"`
	EngineModel        *string  `json:"engineModel" mapstructure:"engineModel" gorm:"column:engine_model"`
	EngineCylinders    *int     `json:"engineCylinders" mapstructure:"engineCylinders" gorm:"column:engine_cylinders"`
	EngineDisplacement *float64 `json:"engineDisplacement" mapstructure:"engineDisplacement" gorm:"column:engine_displacement"`
	Transmission       *string  `json:"transmission" mapstructure:"transmission" gorm:"column:transmission"`
	TransmissionSpeeds *int     `json:"transmissionSpeeds" mapstructure:"transmissionSpeeds" gorm:"column:transmission_speeds"`
	Horsepower         *float64 `json:"horsepower" mapstructure:"horsepower" gorm:"column:horsepower"`
	FuelType           *string  `json:"fuelType" mapstructure:"fuelType" gorm:"column:fuel_type"`
	BatteryKWh         *float64 `json:"batteryKwh" mapstructure:"batteryKwh" gorm:"column:battery_kwh"`
	BatteryVoltage     *float64 `json:"batteryVoltage" mapstructure:"batteryVoltage" gorm:"column:battery_voltage"`
	ElectricRange      *int     `json:"electricRange" mapstructure:"electricRange" gorm:"column:electric_range"`

	// Capacity
	SeatingCapacity *int     `json:"seatingCapacity" mapstructure:"seatingCapacity" gorm:"column:seating_capacity"`
	SeatRows        *int     `json:"seatRows" mapstructure:"seatRows" gorm:"column:seat_rows"`
	FuelTankGallons *float64 `json:"fuelTankGallons" mapstructure:"fuelTankGallons" gorm:"column:fuel_tank_gallons"`
	TowingCapacity  *int     `json:"towingCapacity" mapstructure:"towingCapacity" gorm:"column:towing_capacity"`

	// Efficiency, MPG or MPGe
	MPGCity     *float64 `json:"mpgCity" mapstructure:"mpgCity" gorm:"column:mpg_city"`
	MPGHighway  *float64 `json:"mpgHighway" mapstructure:"mpgHighway" gorm:"column:mpg_highway"`
	MPGCombined *float64 `json:"mpgCombined" mapstructure:"mpgCombined" gorm:"column:mpg_combined"`

	// Axles and wheels
	AxleCount  *int    `json:"axleCount" mapstructure:"axleCount" gorm:"column:axle_count"`
	RearWheels *string `json:"rearWheels" mapstructure:"rearWheels" gorm:"column:rear_wheels"`

	// Feature flags
	HasBluetooth    *bool `json:"hasBluetooth" mapstructure:"hasBluetooth" gorm:"column:has_bluetooth"`
	HasBackupCamera *bool `json:"hasBackupCamera" mapstructure:"hasBackupCamera" gorm:"column:has_backup_camera"`
	HasTPMS         *bool `json:"hasTpms" mapstructure:"hasTpms" gorm:"column:has_tpms"`
}
