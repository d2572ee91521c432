package tui

import (
	"strconv"

	"budgetlens/internal/config"
	"budgetlens/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// newSetupForm builds the first-run wizard: input CSV, ranking size,
// theme. Defaults come from the freshly loaded dataset and config.
func (a *App) newSetupForm() *huh.Form {
	cfg, _ := config.Load()

	a.setupPath = a.path
	a.setupTopN = strconv.Itoa(cfg.General.TopN)
	a.setupTheme = cfg.Appearance.Theme

	var themeOptions []huh.Option[string]
	for _, t := range theme.All {
		themeOptions = append(themeOptions, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Budget CSV file").
				Description("Columns: Department, 2014, 2015, ... (₹ Crores)").
				Value(&a.setupPath),
			huh.NewSelect[string]().
				Title("Default ranking size").
				Options(
					huh.NewOption("Top 3", "3"),
					huh.NewOption("Top 5", "5"),
					huh.NewOption("Top 10", "10"),
				).
				Value(&a.setupTopN),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOptions...).
				Value(&a.setupTheme),
		),
	)
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.saveSetupConfig()
		a.needSetup = false
		a.setupForm = nil

		// A changed path means the current dataset is the wrong one.
		if a.setupPath != "" && a.setupPath != a.path {
			a.path = a.setupPath
			a.loaded = false
			return a, tea.Batch(loadDataCmd(a.path, a.useCache), a.spinner.Tick)
		}
		a.recompute()
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a *App) saveSetupConfig() {
	cfg, _ := config.Load()

	if a.setupPath != "" {
		cfg.General.CSVFile = a.setupPath
	}
	if n, err := strconv.Atoi(a.setupTopN); err == nil && n > 0 {
		cfg.General.TopN = n
		a.topN = n
	}
	if a.setupTheme != "" {
		cfg.Appearance.Theme = a.setupTheme
		theme.SetActive(a.setupTheme)
	}

	// Best effort: an unsaved config just means setup runs again next time.
	_ = config.Save(cfg)
}
