package cmd

import (
	"fmt"
	"strconv"

	"budgetlens/internal/cli"
	"budgetlens/internal/config"
	"budgetlens/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	flagTopN    int
	flagTopYear int
)

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Top departments by budget for one year",
	RunE:  runTop,
}

func init() {
	topCmd.Flags().IntVarP(&flagTopN, "count", "n", 0, "Number of departments (default from config)")
	topCmd.Flags().IntVar(&flagTopYear, "year", 0, "Year to rank (default: latest in window)")
	rootCmd.AddCommand(topCmd)
}

func runTop(_ *cobra.Command, _ []string) error {
	ds, err := loadDataset()
	if err != nil {
		return err
	}

	from, to := yearWindow(ds)
	filtered := pipeline.FilterByYears(ds.Records, from, to)

	year := flagTopYear
	if year == 0 {
		year = to
	}

	n := flagTopN
	if n <= 0 {
		cfg, _ := config.Load()
		n = cfg.General.TopN
	}

	top := pipeline.TopByYear(filtered, year, n)
	if len(top) == 0 {
		fmt.Printf("\n  No data for %d.\n", year)
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("TOP %d DEPARTMENTS  %d", len(top), year)))
	fmt.Println()

	maxBudget := top[0].Budget
	rows := make([][]string, 0, len(top))
	for i, d := range top {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			d.Department,
			cli.FormatAmount(d.Budget),
			cli.RenderShareBar(d.Budget, maxBudget, 20),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"#", "Department", "Budget", ""},
		Rows:    rows,
	}))

	return nil
}
