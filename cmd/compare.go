package cmd

import (
	"fmt"
	"strconv"

	"budgetlens/internal/cli"
	"budgetlens/internal/pipeline"
	"budgetlens/internal/source"

	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare <department>...",
	Short: "Compare budgets across departments",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(_ *cobra.Command, args []string) error {
	ds, err := loadDataset()
	if err != nil {
		return err
	}

	// Resolve each argument the same way the department command does.
	var names []string
	for _, arg := range args {
		if row := matchDepartment(ds.Wide, arg); row != nil {
			names = append(names, row.Department)
		} else {
			fmt.Printf("  Skipping %q: no unique department match\n", arg)
		}
	}

	from, to := yearWindow(ds)
	filtered := pipeline.FilterByYears(ds.Records, from, to)
	selected := pipeline.FilterByDepartments(filtered, names)

	if len(selected) == 0 {
		fmt.Println("\n  No data for the selected departments.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("DEPARTMENT COMPARISON  %s", cli.FormatYearRange(from, to))))
	fmt.Println()

	// One row per department: per-year values in header order
	years := visibleYears(ds, from, to)
	headers := append([]string{"Department"}, years...)

	byDept := make(map[string]map[int]float64)
	for _, r := range selected {
		if byDept[r.Department] == nil {
			byDept[r.Department] = make(map[int]float64)
		}
		byDept[r.Department][r.Year] += r.Budget
	}

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		cells, ok := byDept[name]
		if !ok {
			continue
		}
		row := []string{name}
		for _, label := range years {
			y, _ := strconv.Atoi(label)
			if v, present := cells[y]; present {
				row = append(row, cli.FormatIndian(int64(v)))
			} else {
				row = append(row, "–")
			}
		}
		rows = append(rows, row)
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Budget by Year (₹ Cr)",
		Headers: headers,
		Rows:    rows,
	}))

	// Latest-year pivot, summed per department, descending
	pivot := pipeline.PivotLatestYear(selected, to)
	if len(pivot) > 0 {
		pivotRows := make([][]string, 0, len(pivot))
		for _, d := range pivot {
			pivotRows = append(pivotRows, []string{d.Department, cli.FormatAmount(d.Budget)})
		}
		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   fmt.Sprintf("Summary – %d", to),
			Headers: []string{"Department", "Budget"},
			Rows:    pivotRows,
		}))
	}

	return nil
}

// visibleYears returns year-column labels falling inside [from, to],
// in header order.
func visibleYears(ds *source.Dataset, from, to int) []string {
	var labels []string
	for _, y := range ds.Years {
		if y.Year >= from && y.Year <= to {
			labels = append(labels, y.Label)
		}
	}
	return labels
}
