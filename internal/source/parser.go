// Package source parses department budget CSVs into wide and long form.
package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"budgetlens/internal/model"
)

// Parse reads a budget CSV and reshapes it wide-to-long.
//
// The first column is always treated as the department key, whatever
// its header says. Every other header is coerced to an integer year;
// headers that do not parse are skipped as columns. Cell values run
// through ParseNumber, and a failing cell drops exactly that one
// (department, year) record; a department with one bad year still
// contributes records for its other years.
func Parse(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged rows tolerated; short rows read as missing cells
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &MalformedInputError{Reason: ReasonEmptyDocument}
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if len(header) < 2 {
		return nil, &MalformedInputError{Reason: ReasonNoDepartmentCol}
	}

	// Map header columns to year columns. colIdx[i] is the position of
	// years[i] in the raw row.
	var years []model.YearColumn
	var colIdx []int
	for i, h := range header[1:] {
		label := strings.TrimSpace(h)
		year, err := strconv.Atoi(label)
		if err != nil {
			continue
		}
		years = append(years, model.YearColumn{Label: label, Year: year})
		colIdx = append(colIdx, i+1)
	}
	if len(years) == 0 {
		return nil, &MalformedInputError{Reason: ReasonNoYearColumns}
	}

	wide := &model.WideTable{Years: years}
	var records []model.Record
	seen := make(map[string]struct{}) // department names already ingested

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}
		if len(row) == 0 {
			continue
		}

		dept := strings.TrimSpace(row[0])
		if dept == "" {
			continue
		}
		if _, dup := seen[dept]; dup {
			// Duplicate department row: first occurrence wins, so the
			// no-duplicate (department, year) invariant holds.
			continue
		}
		seen[dept] = struct{}{}

		wr := model.WideRow{
			Department: dept,
			Cells:      make([]model.Cell, len(years)),
		}
		for i, ci := range colIdx {
			if ci >= len(row) {
				continue
			}
			v, ok := ParseNumber(row[ci])
			if !ok {
				continue
			}
			wr.Cells[i] = model.Cell{Value: v, Valid: true}
			records = append(records, model.Record{
				Department: dept,
				Year:       years[i].Year,
				Budget:     v,
			})
		}
		wide.Rows = append(wide.Rows, wr)
	}

	if len(records) == 0 {
		return nil, &MalformedInputError{Reason: ReasonNoUsableRecords}
	}

	return &Dataset{Wide: wide, Records: records, Years: years}, nil
}

// ParseNumber applies the cell coercion policy:
//
//	empty / whitespace      -> dropped
//	grouped digits "1,234"  -> 1234 (separators stripped)
//	plain numeric string    -> value
//	anything else, NaN, Inf -> dropped
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
