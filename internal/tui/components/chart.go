package components

import (
	"fmt"
	"strings"

	"budgetlens/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color)

	var buf strings.Builder
	for _, v := range values {
		idx := int(v / peak * float64(len(sparkBlocks)-1))
		if idx >= len(sparkBlocks) {
			idx = len(sparkBlocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(sparkBlocks[idx])
	}

	return style.Render(buf.String())
}

// BarChart renders a vertical bar chart with per-bar labels under the
// axis and the peak value in the top-left corner. Bars share the width
// evenly; labels are truncated to the bar width.
func BarChart(values []float64, labels []string, color lipgloss.Color, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	if width < 15 || height < 3 {
		return Sparkline(values, color)
	}

	t := theme.Active

	peak := 0.0
	for _, v := range values {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	n := len(values)
	gap := 1
	barW := (width - (n-1)*gap) / n
	if barW < 1 {
		barW = 1
		gap = 0
	}
	if barW > 7 {
		barW = 7
	}

	barStyle := lipgloss.NewStyle().Foreground(color)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	// Each bar's height in eighth-block units.
	units := make([]int, n)
	for i, v := range values {
		u := int(v / peak * float64(height*8))
		if v > 0 && u == 0 {
			u = 1 // nonzero values always show
		}
		units[i] = u
	}

	var b strings.Builder
	b.WriteString(dimStyle.Render(fmt.Sprintf("peak %s", formatChartValue(peak))))
	b.WriteString("\n")

	for row := height; row >= 1; row-- {
		for i := 0; i < n; i++ {
			if i > 0 {
				b.WriteString(strings.Repeat(" ", gap))
			}
			remaining := units[i] - (row-1)*8
			var cell string
			switch {
			case remaining >= 8:
				cell = strings.Repeat("█", barW)
			case remaining > 0:
				cell = strings.Repeat(string(sparkBlocks[remaining-1]), barW)
			default:
				cell = strings.Repeat(" ", barW)
			}
			b.WriteString(barStyle.Render(cell))
		}
		b.WriteString("\n")
	}

	// Label row under the axis
	if len(labels) == n {
		for i, label := range labels {
			if i > 0 {
				b.WriteString(strings.Repeat(" ", gap))
			}
			if len(label) > barW {
				label = label[:barW]
			}
			b.WriteString(dimStyle.Render(fmt.Sprintf("%-*s", barW, label)))
		}
	}

	return b.String()
}

// formatChartValue compacts a value for the peak label.
func formatChartValue(v float64) string {
	switch {
	case v >= 1_000_000:
		return fmt.Sprintf("%.1fM", v/1_000_000)
	case v >= 1_000:
		return fmt.Sprintf("%.1fK", v/1_000)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}
