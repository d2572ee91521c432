package tui

import (
	"fmt"
	"sort"
	"strings"

	"budgetlens/internal/cli"
	"budgetlens/internal/pipeline"
	"budgetlens/internal/tui/components"
	"budgetlens/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderCompareTab(cw int) string {
	t := theme.Active

	if len(a.departments) == 0 {
		return noDataHint("No departments in the selected year range.")
	}

	listW := cw / 3
	if listW < 30 {
		listW = 30
	}
	detailW := cw - listW

	list := a.renderDeptList(listW, a.compareIdx, a.selected)

	if len(a.selected) == 0 {
		hint := lipgloss.NewStyle().Foreground(t.TextMuted).Render(
			"Select at least one department\nwith space to see the comparison.")
		return components.CardRow([]string{list, components.ContentCard("Comparison", hint, detailW)})
	}

	names := make([]string, 0, len(a.selected))
	for name := range a.selected {
		names = append(names, name)
	}
	sort.Strings(names)

	selected := pipeline.FilterByDepartments(a.filtered, names)

	var b strings.Builder

	// One sparkline per department over the window
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	innerW := components.CardInnerWidth(detailW)
	nameW := innerW / 2
	if nameW > 36 {
		nameW = 36
	}

	sparkColors := []lipgloss.Color{t.Blue, t.Green, t.Orange, t.Yellow, t.Red, t.Accent}

	var trends strings.Builder
	for i, name := range names {
		var vals []float64
		for _, r := range selected {
			if r.Department == name {
				vals = append(vals, r.Budget)
			}
		}
		color := sparkColors[i%len(sparkColors)]
		fmt.Fprintf(&trends, "%s %s\n",
			nameStyle.Render(fmt.Sprintf("%-*s", nameW, truncate(name, nameW))),
			components.Sparkline(vals, color))
	}
	b.WriteString(components.ContentCard(
		fmt.Sprintf("Trends  %s", cli.FormatYearRange(a.from, a.to)),
		strings.TrimRight(trends.String(), "\n"),
		detailW,
	))
	b.WriteString("\n")

	// Latest-year pivot, one summed row per department
	pivot := pipeline.PivotLatestYear(selected, a.headline.LatestYear)
	if len(pivot) > 0 {
		amountStyle := lipgloss.NewStyle().Foreground(t.Green)
		var rows strings.Builder
		for _, d := range pivot {
			fmt.Fprintf(&rows, "%s %s\n",
				nameStyle.Render(fmt.Sprintf("%-*s", nameW, truncate(d.Department, nameW))),
				amountStyle.Render(cli.FormatAmount(d.Budget)))
		}
		b.WriteString(components.ContentCard(
			fmt.Sprintf("Summary – %d", a.headline.LatestYear),
			strings.TrimRight(rows.String(), "\n"),
			detailW,
		))
	} else {
		b.WriteString(noDataHint(fmt.Sprintf("No records for %d.", a.headline.LatestYear)))
	}

	return components.CardRow([]string{list, b.String()})
}
