package models

// Identity field names.
const (
	FieldModelYear    = "modelYear"
	FieldMakeName     = "makeName"
	FieldModelName    = "modelName"
	FieldSeriesOrTrim = "seriesOrTrim"
)

// Identity describes the base vehicle, independent of any particular configuration.
type Identity struct {
	ModelYear    *int    `json:"modelYear" mapstructure:"modelYear" gorm:"column:model_year"`
	MakeName     *string `json:"makeName" mapstructure:"makeName" gorm:"column:make_name"`
	ModelName    *string `json:"modelName" mapstructure:"modelName" gorm:"column:model_name"`
	SeriesOrTrim *string `json:"seriesOrTrim" mapstructure:"seriesOrTrim" gorm:"column:series_or_trim"`
}
