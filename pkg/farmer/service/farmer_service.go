package service

import (
	"context"
	"strings"

	"farmtrack/entities"
)

type FarmerService interface {
	Create(ctx context.Context, in FarmerFields) (*entities.Farmer, error)
	List(ctx context.Context) ([]entities.Farmer, error)
	Get(ctx context.Context, id string) (*entities.Farmer, error)
	Update(ctx context.Context, id string, patch FarmerFields) (*entities.Farmer, error)
	Delete(ctx context.Context, id string) error
}

// FarmerFields is both the registration body and the partial update body;
// nil means "not supplied".
type FarmerFields struct {
	Name             *string  `json:"name"`
	Phone            *string  `json:"phone"`
	Village          *string  `json:"village"`
	District         *string  `json:"district"`
	State            *string  `json:"state"`
	LandSize         *float64 `json:"landSize"`
	LandOwnership    *string  `json:"landOwnership"`
	IrrigationMethod *string  `json:"irrigationMethod"`
	ProjectType      *string  `json:"projectType"`
	CropType         *string  `json:"cropType"`
	JoinDate         *string  `json:"joinDate"`
	Notes            *string  `json:"notes"`

	Status             *string  `json:"status"`
	TotalProduction    *float64 `json:"totalProduction"`
	TotalSales         *float64 `json:"totalSales"`
	TrainingAttendance *int     `json:"trainingAttendance"`
	Trained            *bool    `json:"trained"`
}

// Registration drops the fields a new record never takes from the client.
func (f FarmerFields) Registration() FarmerFields {
	f.Status = nil
	f.TotalProduction = nil
	f.TotalSales = nil
	f.TrainingAttendance = nil
	f.Trained = nil
	return f
}

// MissingRequired lists the registration fields that are absent or blank,
// in declaration order.
func (f FarmerFields) MissingRequired() []string {
	var missing []string
	str := func(name string, v *string) {
		if v == nil || strings.TrimSpace(*v) == "" {
			missing = append(missing, name)
		}
	}
	str("name", f.Name)
	str("phone", f.Phone)
	str("village", f.Village)
	str("district", f.District)
	str("state", f.State)
	if f.LandSize == nil || *f.LandSize == 0 {
		missing = append(missing, "landSize")
	}
	str("landOwnership", f.LandOwnership)
	str("irrigationMethod", f.IrrigationMethod)
	str("projectType", f.ProjectType)
	str("cropType", f.CropType)
	str("joinDate", f.JoinDate)
	return missing
}
