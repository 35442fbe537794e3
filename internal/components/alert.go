package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// AlertVariant selects the colour of an alert.
type AlertVariant int

const (
	AlertVariantInfo AlertVariant = iota
	AlertVariantSuccess
	AlertVariantError
)

// AlertOptions defines the configuration options for an alert
type AlertOptions struct {
	Variant AlertVariant
	Title   string
	Width   int
}

// Alert represents a message alert component
type Alert struct {
	message string
	options AlertOptions
}

// NewAlert creates a new alert with the given message and options
func NewAlert(message string, opts AlertOptions) *Alert {
	return &Alert{
		message: message,
		options: opts,
	}
}

// WithWidth wraps the message to width cells.
func (a *Alert) WithWidth(width int) *Alert {
	a.options.Width = width
	return a
}

// View renders the alert
func (a *Alert) View() string {
	var content []string

	if a.options.Title != "" {
		titleStyle := Style(lipgloss.NewStyle(), Typography(TypographyVariantEmphasis)).Inline(true)
		content = append(content, titleStyle.Render(a.options.Title))
	}

	if a.message != "" {
		inner := a.options.Width - 2*SpacingValue(SpacingSizeExtraSmall)
		content = append(content, wrapText(a.message, inner))
	}

	return Style(lipgloss.NewStyle(), alertVariantAppliers(a.options.Variant)...).Render(strings.Join(content, "\n"))
}

func alertVariantAppliers(variant AlertVariant) []StyleApplier {
	base := []StyleApplier{PaddingX(SpacingSizeExtraSmall)}
	switch variant {
	case AlertVariantSuccess:
		return cloneAppliers(base, Background(PaletteSuccess))
	case AlertVariantError:
		return cloneAppliers(base, Background(PaletteDanger))
	default:
		return cloneAppliers(base, Background(PaletteInfo))
	}
}

// SuccessAlert creates a success alert
func SuccessAlert(message string) *Alert {
	return NewAlert(message, AlertOptions{Variant: AlertVariantSuccess, Title: "Sent"})
}

// ErrorAlert creates an error alert
func ErrorAlert(message string) *Alert {
	return NewAlert(message, AlertOptions{Variant: AlertVariantError, Title: "Error"})
}

// InfoAlert creates an info alert
func InfoAlert(message string) *Alert {
	return NewAlert(message, AlertOptions{Variant: AlertVariantInfo, Title: "Info"})
}
