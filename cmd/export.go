package cmd

import (
	"fmt"
	"os"

	"budgetlens/internal/pipeline"

	"github.com/spf13/cobra"
)

var flagExportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the filtered long-form records as CSV",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "output", "o", "", "Output file (default: stdout)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	ds, err := loadDataset()
	if err != nil {
		return err
	}

	from, to := yearWindow(ds)
	filtered := pipeline.FilterByYears(ds.Records, from, to)

	out := os.Stdout
	if flagExportOut != "" {
		f, err := os.Create(flagExportOut)
		if err != nil {
			return fmt.Errorf("creating %s: %w", flagExportOut, err)
		}
		defer f.Close()
		out = f
	}

	if err := pipeline.ExportCSV(out, filtered); err != nil {
		return fmt.Errorf("writing CSV: %w", err)
	}

	if flagExportOut != "" && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Wrote %d records to %s\n", len(filtered), flagExportOut)
	}
	return nil
}
