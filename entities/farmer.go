package entities

import (
	"time"

	"gorm.io/datatypes"
)

type LandOwnership string

const (
	LandOwned  LandOwnership = "Owned"
	LandLeased LandOwnership = "Leased"
	LandRented LandOwnership = "Rented"
)

func (o LandOwnership) Valid() bool {
	switch o {
	case LandOwned, LandLeased, LandRented:
		return true
	}
	return false
}

type ProjectType string

const (
	ProjectHorticulture ProjectType = "Horticulture"
	ProjectLivestock    ProjectType = "Livestock"
)

func (p ProjectType) Valid() bool {
	return p == ProjectHorticulture || p == ProjectLivestock
}

type FarmerStatus string

const (
	StatusActive   FarmerStatus = "Active"
	StatusInactive FarmerStatus = "Inactive"
)

func (s FarmerStatus) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// Farmer owns its cultivations through the Cultivation id list; cultivations
// carry no back reference.
type Farmer struct {
	ID                 string                      `gorm:"primaryKey;size:96" json:"id" bson:"_id"`
	Name               string                      `gorm:"not null" json:"name" bson:"name"`
	Phone              string                      `gorm:"not null" json:"phone" bson:"phone"`
	Village            string                      `gorm:"not null" json:"village" bson:"village"`
	District           string                      `gorm:"not null;index" json:"district" bson:"district"`
	State              string                      `gorm:"not null;index" json:"state" bson:"state"`
	LandSize           float64                     `json:"landSize" bson:"land_size"`
	LandOwnership      LandOwnership               `gorm:"size:16" json:"landOwnership" bson:"land_ownership"`
	IrrigationMethod   string                      `json:"irrigationMethod" bson:"irrigation_method"`
	ProjectType        ProjectType                 `gorm:"size:16" json:"projectType" bson:"project_type"`
	CropType           string                      `json:"cropType" bson:"crop_type"`
	JoinDate           time.Time                   `json:"joinDate" bson:"join_date"`
	Notes              string                      `json:"notes,omitempty" bson:"notes,omitempty"`
	Status             FarmerStatus                `gorm:"size:16;index" json:"status" bson:"status"`
	TotalProduction    float64                     `json:"totalProduction" bson:"total_production"`
	TotalSales         float64                     `json:"totalSales" bson:"total_sales"`
	TrainingAttendance int                         `json:"trainingAttendance" bson:"training_attendance"`
	Cultivation        datatypes.JSONSlice[string] `json:"cultivation" bson:"cultivation"`
	Trained            bool                        `json:"trained" bson:"trained"`

	CreatedAt time.Time `gorm:"autoCreateTime:false;index" json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false" json:"updatedAt" bson:"updated_at"`
}
