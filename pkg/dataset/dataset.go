// Package dataset reads crop-yield tables (csv or xlsx) into cultivation
// fields and feeds them through the cultivation service.
package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"farmtrack/pkg/apperr"
	"farmtrack/pkg/cultivation/service"
)

type Row struct {
	Line   int
	Fields service.CultivationFields
	// Bad lists columns whose cell could not be parsed as a number.
	Bad []string
}

type column struct {
	name    string
	aliases []string
}

var columns = []column{
	{"Crop", []string{"crop", "crop_name"}},
	{"Crop_Year", []string{"crop_year", "year"}},
	{"Season", []string{"season"}},
	{"State", []string{"state", "state_name"}},
	{"Area", []string{"area", "area_ha"}},
	{"Production", []string{"production"}},
	{"Annual_Rainfall", []string{"annual_rainfall", "rainfall", "rainfall_mm"}},
	{"Fertilizer", []string{"fertilizer", "fertiliser"}},
	{"Pesticide", []string{"pesticide"}},
	{"Yield", []string{"yield"}},
}

func norm(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF")
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

// Load picks the reader by file extension.
func Load(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSV(f)
	case ".xlsx":
		return ReadXLSX(f)
	}
	return nil, fmt.Errorf("unsupported dataset format %q", filepath.Ext(path))
}

func ReadCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return fromRecords(records)
}

// ReadXLSX reads the first sheet of the workbook.
func ReadXLSX(r io.Reader) ([]Row, error) {
	x, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer x.Close()
	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("xlsx has no sheets")
	}
	records, err := x.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	return fromRecords(records)
}

func fromRecords(records [][]string) ([]Row, error) {
	if len(records) == 0 {
		return nil, errors.New("dataset is empty")
	}
	hmap := map[string]int{}
	for i, h := range records[0] {
		hmap[norm(h)] = i
	}
	idx := make([]int, len(columns))
	var missing []string
	for i, col := range columns {
		idx[i] = -1
		for _, k := range append([]string{col.name}, col.aliases...) {
			if j, ok := hmap[norm(k)]; ok {
				idx[i] = j
				break
			}
		}
		if idx[i] == -1 {
			missing = append(missing, col.name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("dataset missing columns %v (found %v)", missing, records[0])
	}

	rows := make([]Row, 0, len(records)-1)
	for n, rec := range records[1:] {
		get := func(c int) string {
			j := idx[c]
			if j < 0 || j >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[j])
		}
		if blank(rec) {
			continue
		}
		row := Row{Line: n + 2}
		str := func(c int) *string {
			if v := get(c); v != "" {
				return &v
			}
			return nil
		}
		num := func(c int) *float64 {
			v := strings.ReplaceAll(get(c), ",", "")
			if v == "" {
				return nil
			}
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				row.Bad = append(row.Bad, columns[c].name)
				return nil
			}
			return &f
		}
		row.Fields = service.CultivationFields{
			Crop:           str(0),
			Season:         str(2),
			State:          str(3),
			Area:           num(4),
			Production:     num(5),
			AnnualRainfall: num(6),
			Fertilizer:     str(7),
			Pesticide:      str(8),
			Yield:          num(9),
		}
		if v := get(1); v != "" {
			if y, err := strconv.Atoi(v); err == nil {
				row.Fields.CropYear = &y
			} else {
				row.Bad = append(row.Bad, columns[1].name)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func blank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

type Skipped struct {
	Line   int
	Reason string
}

type Result struct {
	Imported int
	Skipped  []Skipped
}

// Import creates one cultivation per row, linked to farmerID when it is set.
// Rows that fail validation are skipped; any other error stops the import.
func Import(ctx context.Context, svc service.CultivationService, rows []Row, farmerID string) (Result, error) {
	var res Result
	for _, row := range rows {
		if len(row.Bad) > 0 {
			res.Skipped = append(res.Skipped, Skipped{row.Line, "not a number: " + strings.Join(row.Bad, ", ")})
			continue
		}
		var err error
		if farmerID != "" {
			_, err = svc.AddForFarmer(ctx, farmerID, row.Fields)
		} else {
			_, err = svc.Create(ctx, row.Fields)
		}
		if apperr.Is(err, apperr.KindValidation) {
			res.Skipped = append(res.Skipped, Skipped{row.Line, err.Error()})
			continue
		}
		if err != nil {
			return res, fmt.Errorf("line %d: %w", row.Line, err)
		}
		res.Imported++
	}
	return res, nil
}
