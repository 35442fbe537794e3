package components

import (
	"github.com/charmbracelet/lipgloss"
)

// StatCard renders a label above its value in a small bordered box.
func StatCard(label, value string, width int) string {
	labelStyle := Style(lipgloss.NewStyle(), Typography(TypographyVariantCaption))
	valueStyle := Style(lipgloss.NewStyle(), Typography(TypographyVariantEmphasis))

	box := Style(lipgloss.NewStyle(), Border(BorderVariantRounded), PaddingX(SpacingSizeExtraSmall))
	if width > 0 {
		box = box.Width(width - horizontalBorderWidth(box))
	}
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, labelStyle.Render(label), valueStyle.Render(value)))
}

// StatGrid arranges stat cards two per row.
func StatGrid(labels, values []string, width int) string {
	n := len(labels)
	if len(values) < n {
		n = len(values)
	}
	if n == 0 {
		return ""
	}

	cell := width / 2
	if width <= 0 {
		cell = 0
	}

	var rows []string
	for i := 0; i < n; i += 2 {
		left := StatCard(labels[i], values[i], cell)
		if i+1 < n {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, left, StatCard(labels[i+1], values[i+1], cell)))
			continue
		}
		rows = append(rows, left)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
