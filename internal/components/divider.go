package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	dividerChar       = "─"
	dashedDividerChar = "╌"
)

// Divider renders a horizontal rule in the border colour. A non-positive width falls back to 40.
func Divider(width int) string {
	return rule(dividerChar, width)
}

// DashedDivider is Divider drawn with a dashed line.
func DashedDivider(width int) string {
	return rule(dashedDividerChar, width)
}

func rule(char string, width int) string {
	if width <= 0 {
		width = 40
	}
	return Style(
		lipgloss.NewStyle(),
		Background(PalettePage),
		StyleFunc(func(base lipgloss.Style, theme Theme) lipgloss.Style {
			return base.Foreground(theme.Palette.Border)
		}),
	).Render(strings.Repeat(char, width))
}
