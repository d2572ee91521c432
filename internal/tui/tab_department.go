package tui

import (
	"fmt"
	"strconv"
	"strings"

	"budgetlens/internal/cli"
	"budgetlens/internal/pipeline"
	"budgetlens/internal/tui/components"
	"budgetlens/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// listHeight is how many departments the picker shows at once.
const listHeight = 12

func (a App) renderDepartmentsTab(cw int) string {
	if len(a.departments) == 0 {
		return noDataHint("No departments in the selected year range.")
	}

	listW := cw / 3
	if listW < 30 {
		listW = 30
	}
	detailW := cw - listW

	list := a.renderDeptList(listW, a.deptIdx, nil)
	detail := a.renderDeptDetail(detailW)

	return components.CardRow([]string{list, detail})
}

// renderDeptList draws the scrolling picker. selected marks checked
// entries on the Compare tab; nil means no checkboxes.
func (a App) renderDeptList(outerW, cursor int, selected map[string]struct{}) string {
	t := theme.Active

	cursorStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	innerW := components.CardInnerWidth(outerW)

	// Window the list around the cursor
	start := 0
	if cursor >= listHeight {
		start = cursor - listHeight + 1
	}
	end := start + listHeight
	if end > len(a.departments) {
		end = len(a.departments)
	}

	var body strings.Builder
	if start > 0 {
		body.WriteString(dimStyle.Render("  ↑ more") + "\n")
	}
	for i := start; i < end; i++ {
		name := a.departments[i]
		marker := ""
		if selected != nil {
			if _, ok := selected[name]; ok {
				marker = "◉ "
			} else {
				marker = "○ "
			}
		}
		label := marker + truncate(name, innerW-4)
		if i == cursor {
			body.WriteString(cursorStyle.Render("▸ " + label))
		} else {
			body.WriteString(nameStyle.Render("  " + label))
		}
		body.WriteString("\n")
	}
	if end < len(a.departments) {
		body.WriteString(dimStyle.Render("  ↓ more"))
	}

	title := fmt.Sprintf("Departments (%d)", len(a.departments))
	return components.ContentCard(title, strings.TrimRight(body.String(), "\n"), outerW)
}

func (a App) renderDeptDetail(outerW int) string {
	t := theme.Active
	name := a.departments[a.deptIdx]
	row := a.ds.Wide.Row(name)

	var b strings.Builder

	// Lifetime growth always spans the full year range, not the window
	growth := pipeline.GrowthOverFullRange(row, a.ds.Years)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var g strings.Builder
	fmt.Fprintf(&g, "%s %s\n",
		labelStyle.Render("First year "),
		valueStyle.Render(cli.FormatAmount(growth.Start)))
	fmt.Fprintf(&g, "%s %s\n",
		labelStyle.Render("Latest year"),
		valueStyle.Render(cli.FormatAmount(growth.End)))
	fmt.Fprintf(&g, "%s %s (%s)",
		labelStyle.Render("Change     "),
		valueStyle.Render(cli.FormatDelta(growth.AbsoluteChange)),
		valueStyle.Render(cli.FormatGrowthPercent(growth.PercentChange)))

	b.WriteString(components.ContentCard(
		fmt.Sprintf("%s · lifetime %s", truncate(name, components.CardInnerWidth(outerW)-20),
			cli.FormatYearRange(a.ds.MinYear(), a.ds.MaxYear())),
		g.String(),
		outerW,
	))
	b.WriteString("\n")

	// Windowed per-year chart
	deptRecords := pipeline.FilterByDepartments(a.filtered, []string{name})
	if len(deptRecords) == 0 {
		b.WriteString(noDataHint("No records in the selected year range."))
		return b.String()
	}

	vals := make([]float64, len(deptRecords))
	labels := make([]string, len(deptRecords))
	for i, r := range deptRecords {
		vals[i] = r.Budget
		labels[i] = strconv.Itoa(r.Year % 100)
	}
	b.WriteString(components.ContentCard(
		fmt.Sprintf("Budget by Year  %s", cli.FormatYearRange(a.from, a.to)),
		components.BarChart(vals, labels, t.Green, components.CardInnerWidth(outerW), 7),
		outerW,
	))

	return b.String()
}
