package tui

import (
	"fmt"
	"strings"

	"budgetlens/internal/cli"
	"budgetlens/internal/tui/components"
	"budgetlens/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

const aboutText = `The Union Budget allocates funds across the departments of the
Government of India. Key roles include:

 1. Economic planning and stability - guiding growth, controlling
    inflation, and maintaining financial stability.
 2. Resource allocation - distributing funds across sectors like
    agriculture, defence, education, and health.
 3. Social welfare and development - supporting schemes for poverty
    reduction, employment, and inclusive growth.
 4. Infrastructure and investment - funding public works and capital
    projects to boost economic activity.
 5. Fiscal responsibility and transparency - presenting clear revenue
    and expenditure data to ensure accountability.

Amounts are department-wise budget allocations in ₹ Crores
(1 Crore = 10,000,000), not adjusted for inflation.`

func (a App) renderAboutTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	textStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	b.WriteString(components.ContentCard(
		"Why the Union Budget Matters",
		textStyle.Render(aboutText),
		cw,
	))
	b.WriteString("\n")

	// Raw wide-table preview, first rows only
	b.WriteString(a.renderRawPreview(cw))

	return b.String()
}

const previewRows = 8

func (a App) renderRawPreview(cw int) string {
	t := theme.Active
	wide := a.ds.Wide

	headStyle := lipgloss.NewStyle().Foreground(t.Accent)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	numStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	innerW := components.CardInnerWidth(cw)
	nameW := 30
	colW := 10
	maxCols := (innerW - nameW) / colW
	if maxCols < 1 {
		maxCols = 1
	}

	years := wide.Years
	if len(years) > maxCols {
		years = years[len(years)-maxCols:] // latest years fit best
	}
	firstShown := len(wide.Years) - len(years)

	var b strings.Builder
	b.WriteString(headStyle.Render(fmt.Sprintf("%-*s", nameW, "Department")))
	for _, y := range years {
		b.WriteString(headStyle.Render(fmt.Sprintf("%*s", colW, y.Label)))
	}
	b.WriteString("\n")

	n := len(wide.Rows)
	if n > previewRows {
		n = previewRows
	}
	for _, row := range wide.Rows[:n] {
		b.WriteString(nameStyle.Render(fmt.Sprintf("%-*s", nameW, truncate(row.Department, nameW-1))))
		for ci := range years {
			cell := row.Cells[firstShown+ci]
			if cell.Valid {
				b.WriteString(numStyle.Render(fmt.Sprintf("%*s", colW, cli.FormatIndian(int64(cell.Value)))))
			} else {
				b.WriteString(dimStyle.Render(fmt.Sprintf("%*s", colW, "–")))
			}
		}
		b.WriteString("\n")
	}
	if len(wide.Rows) > previewRows {
		b.WriteString(dimStyle.Render(fmt.Sprintf("… %d more departments", len(wide.Rows)-previewRows)))
	}

	return components.ContentCard("Raw Data Preview", strings.TrimRight(b.String(), "\n"), cw)
}
