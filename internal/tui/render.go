package tui

import (
	"github.com/alexisbeaulieu97/folio/internal/components"
	"github.com/alexisbeaulieu97/folio/internal/content"
	"github.com/alexisbeaulieu97/folio/internal/theme"
)

// Render draws the whole page once, without interaction, at width cells in mode.
// It switches the component theme to mode.
func Render(c content.Content, mode theme.Mode, width int) string {
	if !mode.Valid() {
		mode = theme.DefaultMode
	}
	components.Root().SetDark(mode.IsDark())

	m := NewModel(Options{Content: c, Mode: mode, Width: width})
	page, _ := m.renderPage()
	return page
}
