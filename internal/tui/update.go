package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/folio/internal/components"
	"github.com/alexisbeaulieu97/folio/internal/contact"
	folioerrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

const submitTimeout = 15 * time.Second

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		m.syncViewport()
		return m, nil

	case revealTickMsg:
		if m.revealed >= int(sectionCount) {
			return m, nil
		}
		m.revealed++
		m.syncViewport()
		if m.revealed < int(sectionCount) {
			return m, revealTick()
		}
		return m, nil

	case spinner.TickMsg:
		if !m.sending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.syncViewport()
		return m, cmd

	case themeChangedMsg:
		if m.controller != nil {
			m.mode = m.controller.Mode()
		}
		m.applyStyles()
		m.syncViewport()
		return m, waitForThemeChange(m.themeChanges)

	case submitResultMsg:
		m.sending = false
		m.handleSubmitResult(msg.err)
		m.syncViewport()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m.quit()
	}

	// Any key skips the rest of the entrance animation.
	m.revealed = int(sectionCount)

	if m.focus.isField() {
		return m.handleFieldKeys(msg)
	}

	var cmd tea.Cmd
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Toggle):
		m.toggleTheme()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()

	case key.Matches(msg, m.keys.Next):
		cmd = m.moveFocus(1)

	case key.Matches(msg, m.keys.Prev):
		cmd = m.moveFocus(-1)

	case key.Matches(msg, m.keys.Projects):
		m.jumpTo(SectionProjects)
		return m, nil

	case key.Matches(msg, m.keys.Contact):
		cmd = m.setFocus(focusName)
		m.jumpTo(SectionContact)
		return m, cmd

	case key.Matches(msg, m.keys.Activate):
		return m.activate()

	case key.Matches(msg, m.keys.Submit):
		cmd = m.submit()

	case key.Matches(msg, m.keys.Leave):
		m.notice = nil
		m.setFocus(focusNone)

	default:
		m.syncViewport()
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	m.syncViewport()
	return m, cmd
}

// handleFieldKeys routes keys to the focused form field. Only navigation and submit keys
// are intercepted so letters like t and q can be typed.
func (m Model) handleFieldKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, m.keys.Leave):
		m.setFocus(focusNone)

	case key.Matches(msg, m.keys.Next):
		cmd = m.moveFocus(1)

	case key.Matches(msg, m.keys.Prev):
		cmd = m.moveFocus(-1)

	case key.Matches(msg, m.keys.Submit):
		cmd = m.submit()

	case key.Matches(msg, m.keys.Activate) && m.focus != focusMessage:
		cmd = m.moveFocus(1)

	default:
		switch m.focus {
		case focusName:
			m.name, cmd = m.name.Update(msg)
			delete(m.fieldErrors, "name")
		case focusEmail:
			m.email, cmd = m.email.Update(msg)
			delete(m.fieldErrors, "email")
		case focusMessage:
			m.message, cmd = m.message.Update(msg)
			delete(m.fieldErrors, "message")
		}
	}

	m.syncViewport()
	return m, cmd
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	return m, tea.Quit
}

func (m Model) activate() (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.focus {
	case focusToggle:
		m.toggleTheme()
	case focusLetsTalk, focusContactMe:
		cmd = m.setFocus(focusName)
		m.jumpTo(SectionContact)
		return m, cmd
	case focusViewProjects:
		m.jumpTo(SectionProjects)
		return m, nil
	case focusSend:
		cmd = m.submit()
	case focusCV:
		m.notice = &notice{
			variant: components.AlertVariantInfo,
			title:   "Download CV",
			text:    fmt.Sprintf("The CV is published at %s.", m.content.Profile.CVPath),
		}
	}

	m.syncViewport()
	return m, cmd
}

// toggleTheme flips the mode. With a controller the change is persisted and the component
// theme is switched by the persister; without one only the component theme changes.
// The page restyles immediately; the change signal from the controller restyles again later.
func (m *Model) toggleTheme() {
	if m.controller != nil {
		m.mode = m.controller.Toggle()
	} else {
		m.mode = m.mode.Opposite()
		components.Root().SetDark(m.mode.IsDark())
	}
	m.applyStyles()
	m.log.WithFields(map[string]any{"mode": m.mode.String()}).Info("theme toggled")
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	current := -1
	for i, target := range focusOrder {
		if target == m.focus {
			current = i
			break
		}
	}

	next := 0
	switch {
	case current < 0 && delta < 0:
		next = len(focusOrder) - 1
	case current >= 0:
		next = (current + delta + len(focusOrder)) % len(focusOrder)
	}

	cmd := m.setFocus(focusOrder[next])
	m.scrollToFocus()
	return cmd
}

func (m *Model) setFocus(target focusTarget) tea.Cmd {
	m.focus = target
	m.name.Blur()
	m.email.Blur()
	m.message.Blur()

	switch target {
	case focusName:
		return m.name.Focus()
	case focusEmail:
		return m.email.Focus()
	case focusMessage:
		return m.message.Focus()
	}
	return nil
}

func (m *Model) jumpTo(section Section) {
	m.syncViewport()
	m.viewport.SetYOffset(m.offsets[section])
}

// scrollToFocus brings the section holding the focused control into view.
func (m *Model) scrollToFocus() {
	var section Section
	switch m.focus {
	case focusToggle, focusLetsTalk:
		section = SectionHeader
	case focusViewProjects, focusContactMe:
		section = SectionHero
	case focusNone:
		return
	default:
		section = SectionContact
	}

	m.syncViewport()
	top := m.offsets[section]
	if top < m.viewport.YOffset || top >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(top)
	}
}

func (m Model) form() contact.Form {
	return contact.Form{
		Name:    m.name.Value(),
		Email:   m.email.Value(),
		Message: m.message.Value(),
	}
}

// submit validates the form and, when valid, hands it to the submitter.
func (m *Model) submit() tea.Cmd {
	if m.sending {
		return nil
	}

	form := m.form()
	m.fieldErrors = form.FieldErrors()

	if err := form.Validate(); err != nil {
		m.notice = &notice{
			variant: components.AlertVariantError,
			title:   "Check the form",
			text:    err.Error(),
		}
		var valErr *folioerrors.ValidationError
		if errors.As(err, &valErr) {
			return m.setFocus(focusForField(valErr.Field))
		}
		return nil
	}

	if m.submitter == nil {
		m.notice = &notice{
			variant: components.AlertVariantInfo,
			title:   "Not sent",
			text:    fmt.Sprintf("Messages can’t be delivered from here yet. Email %s instead.", m.content.Profile.Email),
		}
		m.log.Debug("contact form completed with no submitter")
		return nil
	}

	m.sending = true
	m.notice = nil
	return tea.Batch(m.spinner.Tick, submitCmd(m.submitter, form))
}

func (m *Model) handleSubmitResult(err error) {
	if err != nil {
		m.log.Warn(err, "contact form delivery failed")
		m.notice = &notice{
			variant: components.AlertVariantError,
			title:   "Not sent",
			text:    err.Error(),
		}
		return
	}

	m.log.Info("contact form delivered")
	m.notice = &notice{
		variant: components.AlertVariantSuccess,
		title:   "Sent",
		text:    "Thanks! I’ll get back within a few days.",
	}
	m.name.Reset()
	m.email.Reset()
	m.message.Reset()
	m.fieldErrors = make(map[string]string)
	m.setFocus(focusNone)
}

func submitCmd(submitter contact.Submitter, form contact.Form) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
		defer cancel()
		return submitResultMsg{err: contact.Send(ctx, submitter, form)}
	}
}

func focusForField(field string) focusTarget {
	switch field {
	case "email":
		return focusEmail
	case "message":
		return focusMessage
	default:
		return focusName
	}
}
