package components

import (
	"budgetlens/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Metric is one headline figure: a label, the formatted budget value,
// and an optional delta line underneath.
type Metric struct {
	Label string
	Value string
	Delta string
}

// minCardContent keeps degenerate widths renderable.
const minCardContent = 10

// cardFrame is the shared bordered box every card variant renders into.
// contentWidth excludes the border columns.
func cardFrame(contentWidth int) lipgloss.Style {
	if contentWidth < minCardContent {
		contentWidth = minCardContent
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Active.Border).
		Width(contentWidth).
		Padding(0, 1)
}

// LayoutRow splits totalWidth into n column widths summing exactly to
// totalWidth; the leftmost columns absorb the division remainder.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	base := totalWidth / n
	remainder := totalWidth % n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
		if i < remainder {
			widths[i]++
		}
	}
	return widths
}

// MetricCardRow renders the headline metrics side by side, filling
// totalWidth exactly.
func MetricCardRow(metrics []Metric, totalWidth int) string {
	if len(metrics) == 0 {
		return ""
	}

	widths := LayoutRow(totalWidth, len(metrics))
	cards := make([]string, len(metrics))
	for i, m := range metrics {
		cards[i] = renderMetric(m, widths[i])
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func renderMetric(m Metric, outerWidth int) string {
	t := theme.Active

	body := lipgloss.NewStyle().Foreground(t.TextMuted).Render(m.Label) +
		"\n" +
		lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true).Render(m.Value)
	if m.Delta != "" {
		body += "\n" + lipgloss.NewStyle().Foreground(t.TextDim).Render(m.Delta)
	}

	return cardFrame(outerWidth - 2).Render(body)
}

// ContentCard renders a bordered panel with an optional bold title line.
// outerWidth is the total rendered width including the border.
func ContentCard(title, body string, outerWidth int) string {
	content := body
	if title != "" {
		titleStyle := lipgloss.NewStyle().Foreground(theme.Active.TextMuted).Bold(true)
		content = titleStyle.Render(title) + "\n" + body
	}
	return cardFrame(outerWidth - 2).Render(content)
}

// CardRow joins pre-rendered cards horizontally, top-aligned.
func CardRow(cards []string) string {
	if len(cards) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// CardInnerWidth is the text width available inside a card of the given
// outer width, after the border and padding columns.
func CardInnerWidth(outerWidth int) int {
	w := outerWidth - 4
	if w < minCardContent {
		w = minCardContent
	}
	return w
}
