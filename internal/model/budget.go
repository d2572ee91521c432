// Package model defines domain types for budgetlens datasets and metrics.
package model

// Record is one long-form observation: a department's budget for one year.
type Record struct {
	Department string
	Year       int
	Budget     float64 // ₹ Crores
}

// YearColumn is one year column from the input header, in header order.
// Label keeps the original header text; Year is its integer form.
type YearColumn struct {
	Label string
	Year  int
}

// Cell is one wide-table cell. Valid is false when the input cell was
// empty or non-numeric and was dropped during reshape.
type Cell struct {
	Value float64
	Valid bool
}

// WideRow is one department row of the raw input table.
type WideRow struct {
	Department string
	Cells      []Cell // parallel to WideTable.Years
}

// WideTable is the raw input shape: one row per department, one column
// per year. Immutable after construction; it is the source of truth for
// row-oriented display and lifetime growth.
type WideTable struct {
	Years []YearColumn
	Rows  []WideRow
}

// Row returns the row for the given department, or nil if absent.
func (w *WideTable) Row(department string) *WideRow {
	for i := range w.Rows {
		if w.Rows[i].Department == department {
			return &w.Rows[i]
		}
	}
	return nil
}
