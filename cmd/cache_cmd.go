package cmd

import (
	"fmt"

	"budgetlens/internal/cli"
	"budgetlens/internal/pipeline"
	"budgetlens/internal/store"

	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Show parse-cache status",
	RunE:  runCacheStatus,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the parse cache",
	RunE:  runCacheClear,
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCacheStatus(_ *cobra.Command, _ []string) error {
	cache, err := store.Open(pipeline.CachePath())
	if err != nil {
		return fmt.Errorf("opening cache: %w", err)
	}
	defer cache.Close()

	stats, err := cache.Stats()
	if err != nil {
		return fmt.Errorf("reading cache: %w", err)
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Parse Cache",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Location", pipeline.CachePath()},
			{"Datasets", cli.FormatIndian(int64(stats.Datasets))},
			{"Records", cli.FormatIndian(int64(stats.Records))},
		},
	}))
	return nil
}

func runCacheClear(_ *cobra.Command, _ []string) error {
	cache, err := store.Open(pipeline.CachePath())
	if err != nil {
		return fmt.Errorf("opening cache: %w", err)
	}
	defer cache.Close()

	if err := cache.Clear(); err != nil {
		return fmt.Errorf("clearing cache: %w", err)
	}
	fmt.Println("  Parse cache cleared.")
	return nil
}
