package report_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/datatypes"

	"farmtrack/entities"
	"farmtrack/pkg/apperr"
	"farmtrack/pkg/report"
)

type farmers []entities.Farmer

func (f farmers) List(context.Context) ([]entities.Farmer, error) { return f, nil }

type cultivations []entities.Cultivation

func (c cultivations) ListAll(context.Context) ([]entities.Cultivation, error) { return c, nil }

type failing struct{}

func (failing) ListAll(context.Context) ([]entities.Cultivation, error) {
	return nil, apperr.Storage("list cultivations", errors.New("disk gone"))
}

func fixture() (farmers, cultivations) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	fs := farmers{{
		ID: "Ramesh1234", Name: "Ramesh", Village: "V", LandSize: 2, JoinDate: now,
		Status: entities.StatusActive, Cultivation: datatypes.JSONSlice[string]{"c-1"},
	}}
	cs := cultivations{
		{ID: "c-1", Crop: "Rice", CropYear: 2023, CreatedAt: now},
		{ID: "c-2", Crop: "Maize", CropYear: 2022, CreatedAt: now},
	}
	return fs, cs
}

func TestWorkbook(t *testing.T) {
	fs, cs := fixture()
	x, err := report.New(fs, cs).Workbook(context.Background())
	require.NoError(t, err)
	defer x.Close()

	assert.Equal(t, []string{report.FarmersSheet, report.CultivationsSheet}, x.GetSheetList())

	rows, err := x.GetRows(report.FarmersSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Ramesh1234", rows[1][0])
	assert.Equal(t, "2024-01-01", rows[1][11])

	rows, err = x.GetRows(report.CultivationsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"c-1", "Ramesh1234", "Rice"}, rows[1][:3])
	assert.Equal(t, "", rows[2][1], "unowned cultivation")
}

func TestWorkbookPropagatesErrors(t *testing.T) {
	fs, _ := fixture()
	_, err := report.New(fs, failing{}).Workbook(context.Background())
	assert.True(t, apperr.Is(err, apperr.KindStorage))
}

func TestExport(t *testing.T) {
	fs, cs := fixture()
	e := echo.New()
	e.GET("/api/reports/farmers.xlsx", report.New(fs, cs).Export)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/reports/farmers.xlsx", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "farmers.xlsx")

	x, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer x.Close()
	rows, err := x.GetRows(report.CultivationsSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}
