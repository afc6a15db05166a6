package entities

import "time"

// JSON names follow the crop-yield dataset columns.
type Cultivation struct {
	ID             string  `gorm:"primaryKey;size:36" json:"id" bson:"_id"`
	Crop           string  `gorm:"not null;index" json:"Crop" bson:"crop"`
	CropYear       int     `json:"Crop_Year" bson:"crop_year"`
	Season         string  `json:"Season" bson:"season"`
	State          string  `json:"State" bson:"state"`
	Area           float64 `json:"Area" bson:"area"`
	Production     float64 `json:"Production" bson:"production"`
	AnnualRainfall float64 `json:"Annual_Rainfall" bson:"annual_rainfall"` // mm
	Fertilizer     string  `json:"Fertilizer" bson:"fertilizer"`
	Pesticide      string  `json:"Pesticide" bson:"pesticide"`
	Yield          float64 `json:"Yield" bson:"yield"`

	CreatedAt time.Time `gorm:"autoCreateTime:false;index" json:"createdAt" bson:"created_at"`
}
