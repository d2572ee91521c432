package pipeline

import (
	"encoding/csv"
	"io"
	"strconv"

	"budgetlens/internal/model"
)

// ExportCSV writes records as long-form CSV with a Department,Year,Budget
// header, one row per record in input order.
func ExportCSV(w io.Writer, records []model.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Department", "Year", "Budget"}); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.Department,
			strconv.Itoa(r.Year),
			strconv.FormatFloat(r.Budget, 'f', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
