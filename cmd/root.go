package cmd

import (
	"fmt"
	"os"

	"budgetlens/internal/config"
	"budgetlens/internal/pipeline"
	"budgetlens/internal/source"
	"budgetlens/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagFile    string
	flagFrom    int
	flagTo      int
	flagNoCache bool
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "budgetlens",
	Short: "Government budget CSV analyzer",
	Long: "Analyze department-wise Government of India budget allocations " +
		"(₹ Crores): trends, rankings, growth, and comparisons.",
	RunE: runOverview,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "Budget CSV file (default from config)")
	rootCmd.PersistentFlags().IntVar(&flagFrom, "from", 0, "First year of the window (0 = earliest)")
	rootCmd.PersistentFlags().IntVar(&flagTo, "to", 0, "Last year of the window (0 = latest)")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "Skip SQLite parse cache, reparse the CSV")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// csvPath resolves the input file from the -f flag or the config default.
func csvPath() string {
	if flagFile != "" {
		return flagFile
	}
	cfg, _ := config.Load()
	return cfg.General.CSVFile
}

// loadDataset is the shared ingestion path used by all commands.
// Uses the SQLite parse cache when available for fast subsequent runs.
func loadDataset() (*source.Dataset, error) {
	path := csvPath()

	loader := pipeline.NewLoader()
	if !flagNoCache {
		cache, err := store.Open(pipeline.CachePath())
		if err != nil {
			// Cache open failed, fall back to a plain parse
			if !flagQuiet {
				fmt.Fprintf(os.Stderr, "  Cache unavailable, parsing %s\n", path)
			}
		} else {
			defer cache.Close()
			loader.Store = cache
		}
	}

	result, err := loader.Load(path)
	if err != nil {
		return nil, err
	}

	if !flagQuiet {
		if result.CacheHit {
			fmt.Fprintf(os.Stderr, "  Loaded %d records from cache (%d departments)\n",
				len(result.Dataset.Records), len(result.Dataset.Wide.Rows))
		} else {
			fmt.Fprintf(os.Stderr, "  Parsed %d records across %d departments\n",
				len(result.Dataset.Records), len(result.Dataset.Wide.Rows))
		}
	}

	return result.Dataset, nil
}

// yearWindow resolves the --from/--to flags (falling back to config
// presets) against the dataset's observed range. Zero means "full
// range"; out-of-range bounds clamp rather than fail.
func yearWindow(ds *source.Dataset) (from, to int) {
	from, to = flagFrom, flagTo
	if from == 0 || to == 0 {
		cfg, _ := config.Load()
		if from == 0 {
			from = cfg.General.FromYear
		}
		if to == 0 {
			to = cfg.General.ToYear
		}
	}
	if from == 0 {
		from = ds.MinYear()
	}
	if to == 0 {
		to = ds.MaxYear()
	}
	return from, to
}
