package components

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// CardStyle defines the visual appearance of a project card.
type CardStyle struct {
	BorderStyle  lipgloss.Style
	TitleStyle   lipgloss.Style
	ContentStyle lipgloss.Style
	LinkStyle    lipgloss.Style
	// Width is the outer width of the card in cells, border included.
	Width   int
	Padding int
}

// DefaultCardStyle returns a card style drawn from the active theme.
func DefaultCardStyle() CardStyle {
	padding := SpacingValue(SpacingSizeExtraSmall)
	return CardStyle{
		BorderStyle: Style(lipgloss.NewStyle(), Border(BorderVariantRounded), PaddingX(SpacingSizeExtraSmall)),
		TitleStyle:  Style(lipgloss.NewStyle(), Typography(TypographyVariantTitle)),
		ContentStyle: Style(
			lipgloss.NewStyle(),
			Typography(TypographyVariantCaption),
		),
		LinkStyle: Style(lipgloss.NewStyle(), Typography(TypographyVariantLink)),
		Width:     40,
		Padding:   padding,
	}
}

// Link is a labelled destination shown at the bottom of a card.
type Link struct {
	Label string
	URL   string
}

// CardData holds what a project card shows.
type CardData struct {
	Title       string
	Description string
	Tags        []string
	Links       []Link
}

// Card renders one project: title, description, tag badges and links.
type Card struct {
	data    CardData
	style   CardStyle
	focused bool
}

// NewCard creates a new card with the given data.
func NewCard(data CardData) *Card {
	return &Card{
		data:  data,
		style: DefaultCardStyle(),
	}
}

// WithStyle sets a custom style for the card.
func (c *Card) WithStyle(style CardStyle) *Card {
	c.style = style
	return c
}

// WithWidth sets the card width.
func (c *Card) WithWidth(width int) *Card {
	c.style.Width = width
	return c
}

// WithFocus highlights the card border.
func (c *Card) WithFocus(focused bool) *Card {
	c.focused = focused
	return c
}

// View renders the card.
func (c *Card) View() string {
	var content []string

	if c.data.Title != "" {
		content = append(content, c.style.TitleStyle.Render(c.data.Title))
	}

	if c.data.Description != "" {
		content = append(content, c.style.ContentStyle.Render(wrapText(c.data.Description, c.innerWidth())))
	}

	if len(c.data.Tags) > 0 {
		content = append(content, "", BadgeRow(c.data.Tags, c.innerWidth()))
	}

	if len(c.data.Links) > 0 {
		links := make([]string, 0, len(c.data.Links))
		for _, link := range c.data.Links {
			links = append(links, c.style.LinkStyle.Render(link.Label))
		}
		content = append(content, "", strings.Join(links, "  "))
	}

	border := c.style.BorderStyle
	if c.focused {
		border = Style(border, BorderColour(PaletteAccent))
	}
	if c.style.Width > 0 {
		border = border.Width(c.style.Width - horizontalBorderWidth(border))
	}
	return border.Render(strings.Join(content, "\n"))
}

func (c *Card) innerWidth() int {
	if c.style.Width <= 0 {
		return 0
	}
	return c.style.Width - horizontalBorderWidth(c.style.BorderStyle) - c.style.Padding*2
}

// wrapText wraps text at word boundaries to fit maxWidth cells, splitting words longer than a line.
// A non-positive maxWidth disables wrapping.
func wrapText(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return text
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}

	var lines []string
	currentLine := ""

	for _, word := range words {
		if utf8.RuneCountInString(word) > maxWidth {
			wordRunes := []rune(word)
			if currentLine != "" {
				lines = append(lines, currentLine)
				currentLine = ""
			}
			for len(wordRunes) > maxWidth {
				lines = append(lines, string(wordRunes[:maxWidth]))
				wordRunes = wordRunes[maxWidth:]
			}
			currentLine = string(wordRunes)
			continue
		}

		candidate := word
		if currentLine != "" {
			candidate = currentLine + " " + word
		}

		if utf8.RuneCountInString(candidate) <= maxWidth {
			currentLine = candidate
			continue
		}
		lines = append(lines, currentLine)
		currentLine = word
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n")
}

// horizontalBorderWidth sums left and right border sizes, falling back to zero on error.
func horizontalBorderWidth(style lipgloss.Style) (width int) {
	defer func() {
		if recover() != nil {
			width = 0
		}
	}()

	width = style.GetBorderLeftSize() + style.GetBorderRightSize()
	if width < 0 {
		return 0
	}
	return width
}
