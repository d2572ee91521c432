package tui

import (
	"fmt"
	"strconv"
	"strings"

	"budgetlens/internal/cli"
	"budgetlens/internal/tui/components"
	"budgetlens/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	h := a.headline
	var b strings.Builder

	if len(a.filtered) == 0 {
		return noDataHint("No records in the selected year range.")
	}

	// Row 1: headline metric cards
	metrics := []components.Metric{
		{Label: fmt.Sprintf("Total %d", h.FirstYear), Value: cli.FormatAmount(h.FirstTotal)},
		{Label: fmt.Sprintf("Total %d", h.LatestYear), Value: cli.FormatAmount(h.LatestTotal), Delta: cli.FormatDelta(h.AbsoluteChange)},
		{Label: "Growth", Value: cli.FormatPercent(h.PercentChange), Delta: cli.FormatYearRange(h.FirstYear, h.LatestYear)},
		{Label: "Departments", Value: strconv.Itoa(h.Departments)},
	}
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	// Row 2: total budget by year
	vals := make([]float64, len(a.totals))
	labels := make([]string, len(a.totals))
	for i, yt := range a.totals {
		vals[i] = yt.Total
		labels[i] = strconv.Itoa(yt.Year % 100)
	}
	b.WriteString(components.ContentCard(
		"Total Budget by Year",
		components.BarChart(vals, labels, t.Blue, components.CardInnerWidth(cw), 8),
		cw,
	))
	b.WriteString("\n")

	// Row 3: top departments for the latest selected year
	if len(a.top) > 0 {
		nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
		amountStyle := lipgloss.NewStyle().Foreground(t.Green)
		barStyle := lipgloss.NewStyle().Foreground(t.Accent)

		innerW := components.CardInnerWidth(cw)
		nameW := innerW / 2
		if nameW > 40 {
			nameW = 40
		}
		barMax := innerW - nameW - 16
		if barMax < 5 {
			barMax = 5
		}

		peak := a.top[0].Budget
		var body strings.Builder
		for _, d := range a.top {
			barLen := 0
			if peak > 0 {
				barLen = int(d.Budget / peak * float64(barMax))
			}
			fmt.Fprintf(&body, "%s %s %s\n",
				nameStyle.Render(fmt.Sprintf("%-*s", nameW, truncate(d.Department, nameW))),
				barStyle.Render(strings.Repeat("█", barLen)),
				amountStyle.Render(cli.FormatAmount(d.Budget)))
		}
		b.WriteString(components.ContentCard(
			fmt.Sprintf("Top %d Departments – %d", len(a.top), h.LatestYear),
			strings.TrimRight(body.String(), "\n"),
			cw,
		))
	}

	return b.String()
}

func truncate(s string, w int) string {
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	if w <= 1 {
		return string(r[:w])
	}
	return string(r[:w-1]) + "…"
}

func noDataHint(msg string) string {
	return lipgloss.NewStyle().Foreground(theme.Active.TextMuted).Render("\n  " + msg + "\n")
}
