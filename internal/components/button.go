package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ButtonVariant selects the colour treatment of a button.
type ButtonVariant int

const (
	// ButtonVariantPrimary is the filled accent call to action.
	ButtonVariantPrimary ButtonVariant = iota
	// ButtonVariantOutline is a bordered button on the page background.
	ButtonVariantOutline
	// ButtonVariantGhost is plain text, used for the theme toggle.
	ButtonVariantGhost
)

// ButtonOptions defines the configuration options for a button
type ButtonOptions struct {
	Variant  ButtonVariant
	Disabled bool
	Focus    bool
}

// Button represents a labelled action.
type Button struct {
	label   string
	options ButtonOptions
}

// NewButton creates a new button with the given label and options
func NewButton(label string, opts ButtonOptions) *Button {
	return &Button{
		label:   label,
		options: opts,
	}
}

// WithVariant sets the button variant
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.options.Variant = variant
	return b
}

// WithDisabled sets the button disabled state
func (b *Button) WithDisabled(disabled bool) *Button {
	b.options.Disabled = disabled
	return b
}

// WithFocus sets the button focus state
func (b *Button) WithFocus(focus bool) *Button {
	b.options.Focus = focus
	return b
}

// View renders the button
func (b *Button) View() string {
	return b.buildStyle().Render(b.label)
}

func (b *Button) buildStyle() lipgloss.Style {
	style := Style(lipgloss.NewStyle(), buttonVariantAppliers(b.options.Variant)...)

	switch {
	case b.options.Disabled:
		style = Style(style, MutedForeground(PalettePage)).Faint(true)
	case b.options.Focus:
		style = Style(style.Underline(true), Typography(TypographyVariantEmphasis))
		if b.options.Variant == ButtonVariantOutline {
			style = Style(style, BorderColour(PaletteAccent))
		}
	}

	return style
}

func buttonVariantAppliers(variant ButtonVariant) []StyleApplier {
	switch variant {
	case ButtonVariantOutline:
		return []StyleApplier{
			Border(BorderVariantRounded),
			PaddingX(SpacingSizeExtraSmall),
			Typography(TypographyVariantBody),
		}
	case ButtonVariantGhost:
		return []StyleApplier{
			PaddingX(SpacingSizeExtraSmall),
			Typography(TypographyVariantCaption),
		}
	default:
		return []StyleApplier{
			Background(PaletteAccent),
			PaddingX(SpacingSizeSmall),
			Typography(TypographyVariantEmphasis),
		}
	}
}

// ButtonGroup represents a horizontal group of buttons
type ButtonGroup struct {
	buttons []*Button
	spacing int
}

// NewButtonGroup creates a new button group
func NewButtonGroup(buttons ...*Button) *ButtonGroup {
	return &ButtonGroup{
		buttons: buttons,
		spacing: SpacingValue(SpacingSizeSmall),
	}
}

// View renders the buttons side by side, bottom aligned so bordered and plain buttons line up.
func (bg *ButtonGroup) View() string {
	if len(bg.buttons) == 0 {
		return ""
	}

	spacer := strings.Repeat(" ", bg.spacing)
	parts := make([]string, 0, len(bg.buttons)*2)
	for i, button := range bg.buttons {
		if i > 0 {
			parts = append(parts, spacer)
		}
		parts = append(parts, button.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
