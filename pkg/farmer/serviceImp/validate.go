package serviceImp

import (
	"math"
	"strings"
	"time"

	"farmtrack/entities"
	"farmtrack/pkg/farmer/service"
	"farmtrack/pkg/textclean"
)

var joinDateLayouts = []string{"2006-01-02", time.RFC3339Nano, time.RFC3339}

func parseJoinDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range joinDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// apply copies the supplied fields onto f. It returns the fields whose raw
// value could not be converted.
func apply(f *entities.Farmer, in service.FarmerFields) []string {
	var bad []string
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = strings.TrimSpace(*v)
		}
	}
	set(&f.Name, in.Name)
	set(&f.Phone, in.Phone)
	set(&f.Village, in.Village)
	set(&f.District, in.District)
	set(&f.State, in.State)
	set(&f.IrrigationMethod, in.IrrigationMethod)
	set(&f.CropType, in.CropType)
	if in.LandSize != nil {
		f.LandSize = *in.LandSize
	}
	if in.LandOwnership != nil {
		f.LandOwnership = entities.LandOwnership(strings.TrimSpace(*in.LandOwnership))
	}
	if in.ProjectType != nil {
		f.ProjectType = entities.ProjectType(strings.TrimSpace(*in.ProjectType))
	}
	if in.JoinDate != nil {
		if t, ok := parseJoinDate(*in.JoinDate); ok {
			f.JoinDate = t
		} else {
			bad = append(bad, "joinDate")
		}
	}
	if in.Notes != nil {
		f.Notes = textclean.PlainText(*in.Notes)
	}
	if in.Status != nil {
		f.Status = entities.FarmerStatus(strings.TrimSpace(*in.Status))
	}
	if in.TotalProduction != nil {
		f.TotalProduction = *in.TotalProduction
	}
	if in.TotalSales != nil {
		f.TotalSales = *in.TotalSales
	}
	if in.TrainingAttendance != nil {
		f.TrainingAttendance = *in.TrainingAttendance
	}
	if in.Trained != nil {
		f.Trained = *in.Trained
	}
	return bad
}

// validate checks the whole document, so updates are held to the same rules
// as registration.
func validate(f *entities.Farmer) []string {
	var bad []string
	req := func(name, v string) {
		if strings.TrimSpace(v) == "" {
			bad = append(bad, name)
		}
	}
	req("name", f.Name)
	req("phone", f.Phone)
	req("village", f.Village)
	req("district", f.District)
	req("state", f.State)
	if !(f.LandSize > 0) || math.IsInf(f.LandSize, 0) {
		bad = append(bad, "landSize")
	}
	if !f.LandOwnership.Valid() {
		bad = append(bad, "landOwnership")
	}
	req("irrigationMethod", f.IrrigationMethod)
	if !f.ProjectType.Valid() {
		bad = append(bad, "projectType")
	}
	req("cropType", f.CropType)
	if f.JoinDate.IsZero() {
		bad = append(bad, "joinDate")
	}
	if !f.Status.Valid() {
		bad = append(bad, "status")
	}
	if f.TotalProduction < 0 {
		bad = append(bad, "totalProduction")
	}
	if f.TotalSales < 0 {
		bad = append(bad, "totalSales")
	}
	if f.TrainingAttendance < 0 {
		bad = append(bad, "trainingAttendance")
	}
	return bad
}
