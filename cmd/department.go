package cmd

import (
	"fmt"
	"strings"

	"budgetlens/internal/cli"
	"budgetlens/internal/model"
	"budgetlens/internal/pipeline"

	"github.com/spf13/cobra"
)

var departmentCmd = &cobra.Command{
	Use:   "department <name>",
	Short: "Per-department budget history and lifetime growth",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDepartment,
}

func init() {
	rootCmd.AddCommand(departmentCmd)
}

func runDepartment(_ *cobra.Command, args []string) error {
	ds, err := loadDataset()
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	row := matchDepartment(ds.Wide, query)
	if row == nil {
		matches := candidateDepartments(ds.Wide, query)
		if len(matches) > 1 {
			fmt.Printf("\n  %q matches several departments:\n", query)
			for _, m := range matches {
				fmt.Printf("    %s\n", m)
			}
			return nil
		}
		return fmt.Errorf("no department matching %q", query)
	}

	from, to := yearWindow(ds)
	filtered := pipeline.FilterByYears(ds.Records, from, to)
	deptRecords := pipeline.FilterByDepartments(filtered, []string{row.Department})

	fmt.Println()
	fmt.Println(cli.RenderTitle(strings.ToUpper(row.Department)))
	fmt.Println()

	// Growth always spans the full year range, not the filtered window.
	growth := pipeline.GrowthOverFullRange(row, ds.Years)
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Lifetime Growth (%s)", cli.FormatYearRange(ds.MinYear(), ds.MaxYear())),
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"First Year Budget", cli.FormatAmount(growth.Start)},
			{"Latest Year Budget", cli.FormatAmount(growth.End)},
			{"Change", fmt.Sprintf("%s  (%s)", cli.FormatDelta(growth.AbsoluteChange), cli.FormatGrowthPercent(growth.PercentChange))},
		},
	}))

	if len(deptRecords) == 0 {
		fmt.Println("\n  No records in the selected year range.")
		return nil
	}

	vals := make([]float64, len(deptRecords))
	rows := make([][]string, 0, len(deptRecords))
	for i, r := range deptRecords {
		vals[i] = r.Budget
		rows = append(rows, []string{fmt.Sprintf("%d", r.Year), cli.FormatAmount(r.Budget)})
	}

	fmt.Println()
	fmt.Printf("  Trend %s\n\n", cli.RenderSparkline(vals))
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Budget by Year  %s", cli.FormatYearRange(from, to)),
		Headers: []string{"Year", "Budget"},
		Rows:    rows,
	}))

	return nil
}

// matchDepartment resolves a query to a single wide row: exact name
// first, then a unique case-insensitive substring match.
func matchDepartment(wide *model.WideTable, query string) *model.WideRow {
	if row := wide.Row(query); row != nil {
		return row
	}
	matches := candidateDepartments(wide, query)
	if len(matches) == 1 {
		return wide.Row(matches[0])
	}
	return nil
}

func candidateDepartments(wide *model.WideTable, query string) []string {
	q := strings.ToLower(query)
	var matches []string
	for _, row := range wide.Rows {
		if strings.Contains(strings.ToLower(row.Department), q) {
			matches = append(matches, row.Department)
		}
	}
	return matches
}
