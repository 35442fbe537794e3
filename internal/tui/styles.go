package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/folio/internal/components"
)

// Styles are looked up on every render so they follow the active theme.

func bodyStyle() lipgloss.Style {
	return components.TypographyStyle(components.TypographyVariantBody)
}

func captionStyle() lipgloss.Style {
	return components.TypographyStyle(components.TypographyVariantCaption)
}

func headingStyle() lipgloss.Style {
	return components.TypographyStyle(components.TypographyVariantHeading)
}

func linkStyle() lipgloss.Style {
	return components.TypographyStyle(components.TypographyVariantLink)
}

func accentStyle() lipgloss.Style {
	return components.Style(lipgloss.NewStyle(), components.MutedForeground(components.PaletteAccent))
}

func fieldErrorStyle() lipgloss.Style {
	return components.Style(lipgloss.NewStyle(), components.MutedForeground(components.PaletteDanger))
}

func sectionStyle(width int) lipgloss.Style {
	style := components.Style(lipgloss.NewStyle(), components.SectionStyle()...)
	return style.Width(width - style.GetHorizontalBorderSize())
}

func logoMark() string {
	return components.Style(
		lipgloss.NewStyle().Width(4).Height(2),
		components.Background(components.PaletteAccent),
	).Render("")
}

func greetingTile(greeting string, width int) string {
	return components.Style(
		lipgloss.NewStyle().Width(width).Height(5).Align(lipgloss.Center, lipgloss.Center),
		components.Background(components.PaletteHighlight),
	).Render("👋\n" + greeting)
}

// sectionInnerWidth is the text width inside a section panel of the given outer width.
func sectionInnerWidth(outer int) int {
	style := sectionStyle(outer)
	inner := outer - style.GetHorizontalBorderSize() - style.GetHorizontalPadding()
	if inner < 1 {
		return 1
	}
	return inner
}

// fieldTextWidth is the editable width inside an input box of the given outer width.
func fieldTextWidth(outer int) int {
	style := components.InputStyle(components.InputStateDefault)
	w := outer - style.GetHorizontalBorderSize() - style.GetHorizontalPadding() - 1
	if w < 4 {
		return 4
	}
	return w
}

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}
