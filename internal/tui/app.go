// Package tui provides the interactive Bubble Tea dashboard for budgetlens.
package tui

import (
	"strconv"
	"strings"

	"budgetlens/internal/config"
	"budgetlens/internal/model"
	"budgetlens/internal/pipeline"
	"budgetlens/internal/source"
	"budgetlens/internal/store"
	"budgetlens/internal/tui/components"
	"budgetlens/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// DataLoadedMsg is sent when the ingestion pipeline finishes.
type DataLoadedMsg struct {
	Dataset *source.Dataset
	Err     error
}

// App is the root Bubble Tea model.
type App struct {
	// Data
	path     string
	useCache bool
	ds       *source.Dataset
	loaded   bool
	loadErr  error

	// Active year window, inclusive, clamped to the observed range
	from int
	to   int

	// Pre-computed for the current window
	filtered    []model.Record
	headline    model.Headline
	totals      []model.YearTotal
	top         []model.DepartmentBudget
	departments []string

	// Per-tab state
	deptIdx    int                 // departments tab cursor
	compareIdx int                 // compare tab cursor
	selected   map[string]struct{} // compare tab selections

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	topN      int

	// First-run setup (huh form)
	setupForm  *huh.Form
	needSetup  bool
	setupPath  string
	setupTopN  string
	setupTheme string

	spinner spinner.Model
}

const (
	minTerminalWidth = 70
	maxContentWidth  = 160
)

// NewApp creates a new TUI app model. from/to of 0 mean "full range".
func NewApp(path string, from, to int, useCache bool) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	cfg, _ := config.Load()
	topN := cfg.General.TopN

	return App{
		path:      path,
		useCache:  useCache,
		from:      from,
		to:        to,
		topN:      topN,
		needSetup: !config.Exists(),
		selected:  make(map[string]struct{}),
		spinner:   sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		loadDataCmd(a.path, a.useCache),
		a.spinner.Tick,
	)
}

// loadDataCmd runs the ingestion pipeline off the UI goroutine.
func loadDataCmd(path string, useCache bool) tea.Cmd {
	return func() tea.Msg {
		loader := pipeline.NewLoader()
		if useCache {
			if cache, err := store.Open(pipeline.CachePath()); err == nil {
				defer cache.Close()
				loader.Store = cache
			}
		}
		result, err := loader.Load(path)
		if err != nil {
			return DataLoadedMsg{Err: err}
		}
		return DataLoadedMsg{Dataset: result.Dataset}
	}
}

// recompute re-derives everything shown from the cached dataset. Every
// interaction triggers a full pass; all queries are pure, so this is
// safe and cheap for a dataset this size.
func (a *App) recompute() {
	if a.ds == nil {
		return
	}

	minYear, maxYear := a.ds.MinYear(), a.ds.MaxYear()
	if a.from == 0 || a.from < minYear {
		a.from = minYear
	}
	if a.to == 0 || a.to > maxYear {
		a.to = maxYear
	}
	if a.from > a.to {
		a.from = a.to
	}

	a.filtered = pipeline.FilterByYears(a.ds.Records, a.from, a.to)
	a.headline = pipeline.ComputeHeadline(a.filtered)
	a.totals = pipeline.TotalByYear(a.filtered)
	a.top = pipeline.TopByYear(a.filtered, a.headline.LatestYear, a.topN)
	a.departments = pipeline.Departments(a.filtered)

	if a.deptIdx >= len(a.departments) {
		a.deptIdx = len(a.departments) - 1
	}
	if a.deptIdx < 0 {
		a.deptIdx = 0
	}
	if a.compareIdx >= len(a.departments) {
		a.compareIdx = len(a.departments) - 1
	}
	if a.compareIdx < 0 {
		a.compareIdx = 0
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case DataLoadedMsg:
		a.loaded = true
		a.loadErr = msg.Err
		a.ds = msg.Dataset
		if a.ds != nil {
			a.recompute()
			if a.needSetup {
				a.setupForm = a.newSetupForm()
				return a, a.setupForm.Init()
			}
		}
		return a, nil

	case spinner.TickMsg:
		if a.loaded {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch msg.String() {
	case "q":
		return a, tea.Quit

	case "?":
		a.showHelp = true
		return a, nil

	case "r":
		a.loaded = false
		a.loadErr = nil
		return a, tea.Batch(loadDataCmd(a.path, a.useCache), a.spinner.Tick)

	case "tab", "right":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil

	case "shift+tab", "left":
		a.activeTab = (a.activeTab + len(components.Tabs) - 1) % len(components.Tabs)
		return a, nil

	case "[":
		a.from--
		a.recompute()
		return a, nil
	case "]":
		if a.from < a.to {
			a.from++
		}
		a.recompute()
		return a, nil
	case "{":
		if a.to > a.from {
			a.to--
		}
		a.recompute()
		return a, nil
	case "}":
		a.to++
		a.recompute()
		return a, nil

	case "j", "down":
		a.moveCursor(1)
		return a, nil
	case "k", "up":
		a.moveCursor(-1)
		return a, nil

	case " ":
		if a.activeTab == tabCompare && a.compareIdx < len(a.departments) {
			name := a.departments[a.compareIdx]
			if _, ok := a.selected[name]; ok {
				delete(a.selected, name)
			} else {
				a.selected[name] = struct{}{}
			}
		}
		return a, nil
	}

	if len(msg.Runes) == 1 {
		if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
			a.activeTab = idx
			return a, nil
		}
	}

	return a, nil
}

// Tab indices, matching components.Tabs order.
const (
	tabOverview = iota
	tabDepartments
	tabCompare
	tabAbout
)

func (a *App) moveCursor(delta int) {
	if len(a.departments) == 0 {
		return
	}
	switch a.activeTab {
	case tabDepartments:
		a.deptIdx = clamp(a.deptIdx+delta, 0, len(a.departments)-1)
	case tabCompare:
		a.compareIdx = clamp(a.compareIdx+delta, 0, len(a.departments)-1)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	if a.loadErr != nil {
		return a.viewLoadError()
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewMain() string {
	t := theme.Active
	cw := a.contentWidth()

	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)

	var b strings.Builder
	b.WriteString("\n ")
	b.WriteString(titleStyle.Render("budgetlens"))
	b.WriteString(lipgloss.NewStyle().Foreground(t.TextMuted).Render("  ·  India department budgets (₹ Crores)"))
	b.WriteString("\n\n")
	b.WriteString(components.RenderTabBar(a.activeTab))
	b.WriteString("\n\n")

	switch a.activeTab {
	case tabOverview:
		b.WriteString(a.renderOverviewTab(cw))
	case tabDepartments:
		b.WriteString(a.renderDepartmentsTab(cw))
	case tabCompare:
		b.WriteString(a.renderCompareTab(cw))
	case tabAbout:
		b.WriteString(a.renderAboutTab(cw))
	}

	b.WriteString("\n")
	window := strconv.Itoa(a.from) + "–" + strconv.Itoa(a.to)
	b.WriteString(components.RenderStatusBar(a.width, a.path, window))

	return b.String()
}

func (a App) viewTooNarrow() string {
	return lipgloss.NewStyle().Foreground(theme.Active.TextMuted).Render(
		"\n  Terminal too narrow.\n  budgetlens needs at least " +
			strconv.Itoa(minTerminalWidth) + " columns.\n")
}

func (a App) viewLoading() string {
	t := theme.Active
	return "\n\n  " + a.spinner.View() +
		lipgloss.NewStyle().Foreground(t.TextMuted).Render(" Loading "+a.path+"...")
}

func (a App) viewLoadError() string {
	t := theme.Active
	errStyle := lipgloss.NewStyle().Foreground(t.Red)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	return "\n\n  " + errStyle.Render("Could not load "+a.path) +
		"\n\n  " + errStyle.Render(a.loadErr.Error()) +
		"\n\n  " + hintStyle.Render("[r]etry  [q]uit")
}

func (a App) viewHelp() string {
	t := theme.Active
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	lines := []struct{ key, desc string }{
		{"o d c a", "switch tabs (also tab / shift+tab)"},
		{"[ ]", "move the first year of the window"},
		{"{ }", "move the last year of the window"},
		{"j k", "move the department cursor"},
		{"space", "toggle a department on the Compare tab"},
		{"r", "reload the CSV"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString("\n  Keys\n\n")
	for _, l := range lines {
		b.WriteString("  " + keyStyle.Render(l.key) + "\t" + descStyle.Render(l.desc) + "\n")
	}
	b.WriteString("\n  " + descStyle.Render("Press any key to close."))
	return b.String()
}
