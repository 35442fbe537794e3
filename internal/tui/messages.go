package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/folio/internal/components"
)

// Section identifies one block of the page, in display order.
type Section int

const (
	SectionHeader Section = iota
	SectionHero
	SectionAbout
	SectionProjects
	SectionContact
	SectionFooter
	sectionCount
)

func (s Section) String() string {
	switch s {
	case SectionHeader:
		return "header"
	case SectionHero:
		return "hero"
	case SectionAbout:
		return "about"
	case SectionProjects:
		return "projects"
	case SectionContact:
		return "contact"
	case SectionFooter:
		return "footer"
	default:
		return "unknown"
	}
}

// revealTickMsg uncovers the next hidden section.
type revealTickMsg struct{}

// submitResultMsg carries the outcome of a contact form delivery.
type submitResultMsg struct {
	err error
}

// themeChangedMsg reports that the controller switched mode.
type themeChangedMsg struct{}

// waitForThemeChange blocks until the controller signals a change on ch.
func waitForThemeChange(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		<-ch
		return themeChangedMsg{}
	}
}

// notice is the alert shown under the contact form.
type notice struct {
	variant components.AlertVariant
	title   string
	text    string
}

const revealInterval = 120 * time.Millisecond

func revealTick() tea.Cmd {
	return tea.Tick(revealInterval, func(time.Time) tea.Msg { return revealTickMsg{} })
}
