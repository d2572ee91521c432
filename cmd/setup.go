package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"budgetlens/internal/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to budgetlens!")
	fmt.Println()

	// 1. CSV file
	fmt.Println("  1. Budget CSV file")
	fmt.Println("     Columns: Department, 2014, 2015, ... (amounts in ₹ Crores)")
	fmt.Printf("     Current: %s\n", cfg.General.CSVFile)
	fmt.Print("     > ")
	path, _ := reader.ReadString('\n')
	path = strings.TrimSpace(path)
	if path != "" {
		cfg.General.CSVFile = path
	}
	fmt.Println()

	// 2. Default ranking size
	fmt.Println("  2. Default top-N ranking size")
	fmt.Printf("     Current: %d\n", cfg.General.TopN)
	fmt.Print("     > ")
	nStr, _ := reader.ReadString('\n')
	if n, err := strconv.Atoi(strings.TrimSpace(nStr)); err == nil && n > 0 {
		cfg.General.TopN = n
	}
	fmt.Println()

	// 3. Theme
	fmt.Println("  3. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(choice) {
	case "2":
		cfg.Appearance.Theme = "catppuccin-mocha"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}
	fmt.Println()

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `budgetlens` for an overview or `budgetlens tui` for the dashboard.")
	return nil
}
