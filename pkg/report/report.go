// Package report renders farmers and their cultivations as an xlsx workbook.
package report

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"

	"farmtrack/entities"
	"farmtrack/pkg/apperr"
)

const (
	FarmersSheet      = "Farmers"
	CultivationsSheet = "Cultivations"

	xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type FarmerLister interface {
	List(ctx context.Context) ([]entities.Farmer, error)
}

type CultivationLister interface {
	ListAll(ctx context.Context) ([]entities.Cultivation, error)
}

type Builder struct {
	farmers FarmerLister
	cults   CultivationLister
}

func New(farmers FarmerLister, cults CultivationLister) *Builder {
	return &Builder{farmers: farmers, cults: cults}
}

var farmerHeader = []any{
	"ID", "Name", "Phone", "Village", "District", "State", "Land Size", "Land Ownership",
	"Irrigation", "Project", "Crop Type", "Join Date", "Status", "Total Production",
	"Total Sales", "Training Attendance", "Trained", "Cultivations", "Notes",
}

var cultivationHeader = []any{
	"ID", "Owner", "Crop", "Crop_Year", "Season", "State", "Area", "Production",
	"Annual_Rainfall", "Fertilizer", "Pesticide", "Yield", "Created",
}

func (b *Builder) Workbook(ctx context.Context) (*excelize.File, error) {
	var (
		farmers []entities.Farmer
		cults   []entities.Cultivation
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		farmers, err = b.farmers.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		cults, err = b.cults.ListAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	owner := map[string]string{}
	for _, f := range farmers {
		for _, id := range f.Cultivation {
			owner[id] = f.ID
		}
	}

	x := excelize.NewFile()
	if err := x.SetSheetName(x.GetSheetName(0), FarmersSheet); err != nil {
		x.Close()
		return nil, err
	}
	if _, err := x.NewSheet(CultivationsSheet); err != nil {
		x.Close()
		return nil, err
	}

	rows := [][]any{farmerHeader}
	for _, f := range farmers {
		rows = append(rows, []any{
			f.ID, f.Name, f.Phone, f.Village, f.District, f.State, f.LandSize, string(f.LandOwnership),
			f.IrrigationMethod, string(f.ProjectType), f.CropType, f.JoinDate.Format("2006-01-02"),
			string(f.Status), f.TotalProduction, f.TotalSales, f.TrainingAttendance, f.Trained,
			len(f.Cultivation), f.Notes,
		})
	}
	if err := writeRows(x, FarmersSheet, rows); err != nil {
		x.Close()
		return nil, err
	}

	rows = [][]any{cultivationHeader}
	for _, c := range cults {
		rows = append(rows, []any{
			c.ID, owner[c.ID], c.Crop, c.CropYear, c.Season, c.State, c.Area, c.Production,
			c.AnnualRainfall, c.Fertilizer, c.Pesticide, c.Yield, c.CreatedAt.Format(time.RFC3339),
		})
	}
	if err := writeRows(x, CultivationsSheet, rows); err != nil {
		x.Close()
		return nil, err
	}
	return x, nil
}

func writeRows(x *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := x.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return x.SetPanes(sheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})
}

// Export serves the workbook as a download.
func (b *Builder) Export(c echo.Context) error {
	x, err := b.Workbook(c.Request().Context())
	if err != nil {
		return apperr.Respond(c, err)
	}
	defer x.Close()
	buf, err := x.WriteToBuffer()
	if err != nil {
		return apperr.Respond(c, apperr.Storage("render workbook", err))
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="farmers.xlsx"`)
	return c.Blob(http.StatusOK, xlsxMIME, buf.Bytes())
}
