package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestBadgeRowWraps(t *testing.T) {
	row := BadgeRow([]string{"React", "Tailwind", "Node.js", "Charts"}, 18)
	lines := strings.Split(row, "\n")

	assert.Greater(t, len(lines), 1)
	for _, line := range lines {
		assert.LessOrEqual(t, lipgloss.Width(line), 18)
	}
	assert.Equal(t, 1, len(strings.Split(BadgeRow([]string{"a", "b"}, 0), "\n")))
	assert.Empty(t, BadgeRow(nil, 10))
}

func TestStatGrid(t *testing.T) {
	grid := StatGrid([]string{"Experience", "Design", "Location"}, []string{"4+ yrs", "Figma", "Nigeria"}, 40)

	assert.Contains(t, grid, "Experience")
	assert.Contains(t, grid, "4+ yrs")
	assert.Contains(t, grid, "Nigeria")
	assert.LessOrEqual(t, lipgloss.Width(grid), 40)
	assert.Empty(t, StatGrid(nil, nil, 40))
}

func TestButtonStates(t *testing.T) {
	button := NewButton("View Projects", ButtonOptions{Variant: ButtonVariantOutline})
	normal := button.buildStyle()

	focused := button.WithFocus(true).buildStyle()
	assert.True(t, focused.GetUnderline())
	assert.False(t, normal.GetUnderline())

	disabled := button.WithFocus(false).WithDisabled(true).buildStyle()
	assert.True(t, disabled.GetFaint())
}

func TestButtonGroup(t *testing.T) {
	group := NewButtonGroup(
		NewButton("View Projects", ButtonOptions{}),
		NewButton("Download CV", ButtonOptions{Variant: ButtonVariantOutline}),
	)
	view := group.View()

	assert.Contains(t, view, "View Projects")
	assert.Contains(t, view, "Download CV")
	assert.Empty(t, NewButtonGroup().View())
}

func TestAlertVariants(t *testing.T) {
	success := Style(lipgloss.NewStyle(), alertVariantAppliers(AlertVariantSuccess)...)
	failure := Style(lipgloss.NewStyle(), alertVariantAppliers(AlertVariantError)...)
	assert.NotEqual(t, success.GetBackground(), failure.GetBackground())

	view := InfoAlert("No inbox is configured.").View()
	assert.Contains(t, view, "Info")
	assert.Contains(t, view, "No inbox is configured.")
}

func TestAlertWrapsMessage(t *testing.T) {
	view := ErrorAlert(strings.Repeat("broken ", 10)).WithWidth(20).View()
	for _, line := range strings.Split(view, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 20)
	}
}

func TestDividerWidth(t *testing.T) {
	withTheme(t, DarkTheme())

	assert.Equal(t, 12, lipgloss.Width(Divider(12)))
	assert.Contains(t, Divider(3), "───")
	assert.Equal(t, 40, lipgloss.Width(DashedDivider(0)))
}
