package source

import "budgetlens/internal/model"

// Dataset is the output of parsing one budget CSV: the original wide
// table for row-oriented display, the canonical long-form records for
// aggregation, and the ordered year columns for range controls.
type Dataset struct {
	Wide    *model.WideTable
	Records []model.Record
	Years   []model.YearColumn
}

// MinYear returns the first (smallest) year column.
func (d *Dataset) MinYear() int {
	if len(d.Years) == 0 {
		return 0
	}
	min := d.Years[0].Year
	for _, y := range d.Years[1:] {
		if y.Year < min {
			min = y.Year
		}
	}
	return min
}

// MaxYear returns the last (largest) year column.
func (d *Dataset) MaxYear() int {
	if len(d.Years) == 0 {
		return 0
	}
	max := d.Years[0].Year
	for _, y := range d.Years[1:] {
		if y.Year > max {
			max = y.Year
		}
	}
	return max
}

// MalformedInputError reports a structural failure during ingestion:
// the document is missing a piece the reshape cannot do without. Fatal
// to the whole pipeline; there is nothing meaningful to aggregate.
type MalformedInputError struct {
	Reason string
}

func (e *MalformedInputError) Error() string {
	return "malformed input: " + e.Reason
}

// Structural expectations named by MalformedInputError.
const (
	ReasonEmptyDocument   = "empty document"
	ReasonNoDepartmentCol = "no department column (need at least two columns)"
	ReasonNoYearColumns   = "no numeric year columns"
	ReasonNoUsableRecords = "no parseable department/year cell"
)
