package cmd

import (
	"fmt"
	"strconv"

	"budgetlens/internal/cli"
	"budgetlens/internal/config"
	"budgetlens/internal/pipeline"

	"github.com/spf13/cobra"
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Headline metrics and per-year totals",
	RunE:  runOverview,
}

func init() {
	rootCmd.AddCommand(overviewCmd)
}

func runOverview(_ *cobra.Command, _ []string) error {
	ds, err := loadDataset()
	if err != nil {
		return err
	}

	from, to := yearWindow(ds)
	filtered := pipeline.FilterByYears(ds.Records, from, to)

	if len(filtered) == 0 {
		fmt.Println("\n  No data in the selected year range.")
		return nil
	}

	headline := pipeline.ComputeHeadline(filtered)
	totals := pipeline.TotalByYear(filtered)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("BUDGET OVERVIEW  %s", cli.FormatYearRange(from, to))))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{fmt.Sprintf("Total Budget %d", headline.FirstYear), cli.FormatAmount(headline.FirstTotal)},
			{fmt.Sprintf("Total Budget %d", headline.LatestYear),
				fmt.Sprintf("%s  (%s)", cli.FormatAmount(headline.LatestTotal), cli.FormatDelta(headline.AbsoluteChange))},
			{"Growth", cli.FormatPercent(headline.PercentChange)},
			{"Departments", cli.FormatIndian(int64(headline.Departments))},
		},
	}))

	// Per-year totals with a trend sparkline
	vals := make([]float64, len(totals))
	rows := make([][]string, 0, len(totals))
	for i, yt := range totals {
		vals[i] = yt.Total
		rows = append(rows, []string{strconv.Itoa(yt.Year), cli.FormatAmount(yt.Total)})
	}

	fmt.Println()
	fmt.Printf("  Trend %s\n\n", cli.RenderSparkline(vals))
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Total Budget by Year",
		Headers: []string{"Year", "Total"},
		Rows:    rows,
	}))

	// Top departments for the latest selected year
	cfg, _ := config.Load()
	top := pipeline.TopByYear(filtered, headline.LatestYear, cfg.General.TopN)
	if len(top) > 0 {
		topRows := make([][]string, 0, len(top))
		for i, d := range top {
			topRows = append(topRows, []string{
				fmt.Sprintf("%d. %s", i+1, d.Department),
				cli.FormatAmount(d.Budget),
			})
		}
		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   fmt.Sprintf("Top %d Departments – %d", len(top), headline.LatestYear),
			Headers: []string{"Department", "Budget"},
			Rows:    topRows,
		}))
	}

	return nil
}
