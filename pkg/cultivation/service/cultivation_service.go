package service

import (
	"context"
	"strings"

	"farmtrack/entities"
)

type CultivationService interface {
	// Create stores a cultivation without an owner. Used by dataset imports.
	Create(ctx context.Context, in CultivationFields) (*entities.Cultivation, error)
	// AddForFarmer stores a cultivation and appends its id to the farmer's list.
	AddForFarmer(ctx context.Context, farmerID string, in CultivationFields) (*entities.Cultivation, error)
	ListAll(ctx context.Context) ([]entities.Cultivation, error)
	ListForFarmer(ctx context.Context, farmerID string) ([]entities.Cultivation, error)
}

type CultivationFields struct {
	Crop           *string  `json:"Crop"`
	CropYear       *int     `json:"Crop_Year"`
	Season         *string  `json:"Season"`
	State          *string  `json:"State"`
	Area           *float64 `json:"Area"`
	Production     *float64 `json:"Production"`
	AnnualRainfall *float64 `json:"Annual_Rainfall"`
	Fertilizer     *string  `json:"Fertilizer"`
	Pesticide      *string  `json:"Pesticide"`
	Yield          *float64 `json:"Yield"`
}

// MissingRequired lists absent fields in dataset column order. Numeric zero
// counts as present.
func (f CultivationFields) MissingRequired() []string {
	var missing []string
	str := func(name string, v *string) {
		if v == nil || strings.TrimSpace(*v) == "" {
			missing = append(missing, name)
		}
	}
	num := func(name string, present bool) {
		if !present {
			missing = append(missing, name)
		}
	}
	str("Crop", f.Crop)
	num("Crop_Year", f.CropYear != nil)
	str("Season", f.Season)
	str("State", f.State)
	num("Area", f.Area != nil)
	num("Production", f.Production != nil)
	num("Annual_Rainfall", f.AnnualRainfall != nil)
	str("Fertilizer", f.Fertilizer)
	str("Pesticide", f.Pesticide)
	num("Yield", f.Yield != nil)
	return missing
}
