package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Badge renders a short label as a pill.
func Badge(label string) string {
	return Style(lipgloss.NewStyle(), Background(PaletteTag), PaddingX(SpacingSizeExtraSmall)).Render(label)
}

// AccentBadge renders a label on the accent colour, used for the hero role line.
func AccentBadge(label string) string {
	return Style(
		lipgloss.NewStyle(),
		Background(PaletteAccent),
		PaddingX(SpacingSizeExtraSmall),
		Typography(TypographyVariantEmphasis),
	).Render(label)
}

// BadgeRow lays badges out left to right, wrapping onto a new line once maxWidth is reached.
// A non-positive maxWidth keeps every badge on one line.
func BadgeRow(labels []string, maxWidth int) string {
	var (
		lines   []string
		current []string
		width   int
	)

	for _, label := range labels {
		badge := Badge(label)
		w := lipgloss.Width(badge)
		gap := 0
		if len(current) > 0 {
			gap = 1
		}
		if maxWidth > 0 && len(current) > 0 && width+gap+w > maxWidth {
			lines = append(lines, strings.Join(current, " "))
			current, width, gap = nil, 0, 0
		}
		current = append(current, badge)
		width += gap + w
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}
	return strings.Join(lines, "\n")
}
