package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/folio/internal/components"
	"github.com/alexisbeaulieu97/folio/internal/content"
)

// View renders the visible part of the page and the status bar.
func (m Model) View() string {
	return m.viewport.View() + "\n" + m.renderStatusBar()
}

func (m Model) renderStatusBar() string {
	helpView := m.help.View(m.keys)
	if m.help.ShowAll {
		return helpView
	}

	scroll := captionStyle().Render(fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100))
	gap := m.width - lipgloss.Width(helpView) - lipgloss.Width(scroll)
	if gap < 1 {
		return helpView
	}
	return helpView + strings.Repeat(" ", gap) + scroll
}

// renderPage draws every revealed section and returns the line each one starts on.
func (m Model) renderPage() (string, [sectionCount]int) {
	var offsets [sectionCount]int
	width := m.pageWidth()

	renderers := [sectionCount]func(int) string{
		SectionHeader:   m.renderHeader,
		SectionHero:     m.renderHero,
		SectionAbout:    m.renderAbout,
		SectionProjects: m.renderProjects,
		SectionContact:  m.renderContact,
		SectionFooter:   m.renderFooter,
	}

	var parts []string
	line := 0
	for i := 0; i < int(sectionCount); i++ {
		offsets[i] = line
		if i >= m.revealed {
			continue
		}
		block := renderers[i](width)
		parts = append(parts, block)
		line += lipgloss.Height(block)
	}

	page := lipgloss.JoinVertical(lipgloss.Left, parts...)
	if m.width > width {
		page = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, page)
	}
	return page, offsets
}

func (m Model) renderHeader(width int) string {
	profile := m.content.Profile
	mode := m.Mode()

	identity := lipgloss.JoinVertical(lipgloss.Left,
		components.TypographyStyle(components.TypographyVariantTitle).Render(profile.Name),
		captionStyle().Render(profile.Role),
	)
	left := lipgloss.JoinHorizontal(lipgloss.Center, logoMark(), " ", identity)

	actions := components.NewButtonGroup(
		components.NewButton(mode.Icon()+" "+mode.Label(), components.ButtonOptions{
			Variant: components.ButtonVariantGhost,
			Focus:   m.focus == focusToggle,
		}),
		components.NewButton("Let’s talk", components.ButtonOptions{
			Variant: components.ButtonVariantPrimary,
			Focus:   m.focus == focusLetsTalk,
		}),
	).View()

	gap := width - lipgloss.Width(left) - lipgloss.Width(actions)
	if gap < 1 {
		return lipgloss.JoinVertical(lipgloss.Left, left, actions)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, left, strings.Repeat(" ", gap), actions)
}

func (m Model) renderHero(width int) string {
	profile := m.content.Profile
	inner := sectionInnerWidth(width)

	const tileWidth = 20
	textWidth := inner
	sideBySide := inner >= 60
	if sideBySide {
		textWidth = inner - tileWidth - 2
	}

	title := components.TypographyStyle(components.TypographyVariantDisplay).Render(profile.Name)
	if profile.Badge != "" {
		title += " " + components.AccentBadge(profile.Badge)
	}

	buttons := components.NewButtonGroup(
		components.NewButton("View projects", components.ButtonOptions{
			Variant: components.ButtonVariantPrimary,
			Focus:   m.focus == focusViewProjects,
		}),
		components.NewButton("Contact me", components.ButtonOptions{
			Variant: components.ButtonVariantOutline,
			Focus:   m.focus == focusContactMe,
		}),
	).View()

	text := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		bodyStyle().Width(textWidth).Render(profile.Headline),
		"",
		buttons,
	)

	tile := greetingTile(profile.Greeting, tileWidth)
	var body string
	if sideBySide {
		body = lipgloss.JoinHorizontal(lipgloss.Center, text, "  ", tile)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, text, "", tile)
	}
	return sectionStyle(width).Render(body)
}

func (m Model) renderAbout(width int) string {
	profile := m.content.Profile
	inner := sectionInnerWidth(width)

	labels := make([]string, 0, len(profile.Stats))
	values := make([]string, 0, len(profile.Stats))
	for _, stat := range profile.Stats {
		labels = append(labels, stat.Label)
		values = append(values, stat.Value)
	}

	lines := []string{
		headingStyle().Render("About"),
		bodyStyle().Width(inner).Render(profile.About),
	}
	if grid := components.StatGrid(labels, values, inner); grid != "" {
		lines = append(lines, "", grid)
	}
	return sectionStyle(width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) renderProjects(width int) string {
	inner := sectionInnerWidth(width)

	heading := headingStyle().Render("Projects")
	if blurb := m.content.Profile.ProjectsBlurb; blurb != "" {
		caption := captionStyle().Render(blurb)
		if gap := inner - lipgloss.Width(heading) - lipgloss.Width(caption); gap >= 1 {
			heading = heading + strings.Repeat(" ", gap) + caption
		} else {
			heading = lipgloss.JoinVertical(lipgloss.Left, heading, caption)
		}
	}

	columns := 1
	if inner >= 64 {
		columns = 2
	}
	cardWidth := (inner - 2*(columns-1)) / columns

	cards := make([]string, 0, len(m.content.Projects))
	for _, p := range m.content.Projects {
		cards = append(cards, projectCard(p).WithWidth(cardWidth).View())
	}

	rows := []string{heading}
	for i := 0; i < len(cards); i += columns {
		end := i + columns
		if end > len(cards) {
			end = len(cards)
		}
		row := cards[i]
		for _, card := range cards[i+1 : end] {
			row = lipgloss.JoinHorizontal(lipgloss.Top, row, "  ", card)
		}
		rows = append(rows, "", row)
	}
	return sectionStyle(width).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func projectCard(p content.Project) *components.Card {
	card := components.NewCard(components.CardData{
		Title:       p.Title,
		Description: p.Description,
		Tags:        p.Tags,
		Links: []components.Link{
			{Label: linkLabel("Live", p.Live), URL: p.Live},
			{Label: linkLabel("Source", p.Source), URL: p.Source},
		},
	})
	return card.WithStyle(projectCardStyle(p))
}

// projectCardStyle draws the links of a project with nothing to follow yet as plain captions.
func projectCardStyle(p content.Project) components.CardStyle {
	style := components.DefaultCardStyle()
	if !content.HasLink(p.Live) && !content.HasLink(p.Source) {
		style.LinkStyle = captionStyle()
	}
	return style
}

// sendButton is the primary call to action, drawn as a disabled outline while a delivery is
// in flight.
func sendButton(focused, sending bool) *components.Button {
	button := components.NewButton("Send message", components.ButtonOptions{
		Variant: components.ButtonVariantPrimary,
		Focus:   focused,
	})
	if sending {
		button = button.WithVariant(components.ButtonVariantOutline).WithDisabled(true)
	}
	return button
}

func linkLabel(label, target string) string {
	if content.HasLink(target) {
		return label + " ↗ " + target
	}
	return label
}

func (m Model) renderContact(width int) string {
	profile := m.content.Profile
	inner := sectionInnerWidth(width)

	half := inner
	if inner >= 60 {
		half = (inner - 2) / 2
	}

	nameField := m.renderField("Name", m.name.View(), focusName, "name", half)
	emailField := m.renderField("Email", m.email.View(), focusEmail, "email", half)
	var identity string
	if half < inner {
		identity = lipgloss.JoinHorizontal(lipgloss.Top, nameField, "  ", emailField)
	} else {
		identity = lipgloss.JoinVertical(lipgloss.Left, nameField, emailField)
	}

	actions := components.NewButtonGroup(
		sendButton(m.focus == focusSend, m.sending),
		components.NewButton("Download CV", components.ButtonOptions{
			Variant: components.ButtonVariantOutline,
			Focus:   m.focus == focusCV,
		}),
	).View()
	if m.sending {
		actions += " " + m.spinner.View() + captionStyle().Render(" sending…")
	}

	lines := []string{
		headingStyle().Render("Contact"),
		captionStyle().Width(inner).Render(profile.ContactBlurb),
		"",
		identity,
		m.renderField("Message", m.message.View(), focusMessage, "message", inner),
		"",
		actions,
	}
	if profile.Email != "" {
		lines = append(lines, captionStyle().Render("Or email: ")+linkStyle().Render(profile.Email))
	}
	if m.notice != nil {
		alert := components.NewAlert(m.notice.text, components.AlertOptions{
			Variant: m.notice.variant,
			Title:   m.notice.title,
		}).WithWidth(inner).View()
		lines = append(lines, "", alert)
	}
	return sectionStyle(width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) renderField(label, view string, target focusTarget, errKey string, width int) string {
	state := components.InputStateDefault
	msg, invalid := m.fieldErrors[errKey]
	switch {
	case invalid:
		state = components.InputStateInvalid
	case m.focus == target:
		state = components.InputStateFocus
	}

	box := components.InputStyle(state)
	box = box.Width(width - box.GetHorizontalBorderSize())

	lines := []string{captionStyle().Render(label), box.Render(view)}
	if invalid {
		lines = append(lines, fieldErrorStyle().Render(label+" "+msg))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderFooter(width int) string {
	text := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(captionStyle().Render(m.content.Profile.Footer))
	return lipgloss.NewStyle().MarginTop(1).Render(
		lipgloss.JoinVertical(lipgloss.Left, components.DashedDivider(width), text),
	)
}
