package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/folio/internal/contact"
	"github.com/alexisbeaulieu97/folio/internal/content"
	"github.com/alexisbeaulieu97/folio/internal/logger"
	"github.com/alexisbeaulieu97/folio/internal/theme"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	minPageWidth  = 40
	maxPageWidth  = 100
)

// focusTarget is something on the page that tab can land on.
type focusTarget int

const (
	focusNone focusTarget = iota
	focusToggle
	focusLetsTalk
	focusViewProjects
	focusContactMe
	focusName
	focusEmail
	focusMessage
	focusSend
	focusCV
)

var focusOrder = []focusTarget{
	focusToggle,
	focusLetsTalk,
	focusViewProjects,
	focusContactMe,
	focusName,
	focusEmail,
	focusMessage,
	focusSend,
	focusCV,
}

func (f focusTarget) isField() bool {
	return f == focusName || f == focusEmail || f == focusMessage
}

// Options configures a page Model.
type Options struct {
	Content content.Content
	// Controller owns the theme. When nil the page keeps Mode locally and never persists.
	Controller *theme.Controller
	Mode       theme.Mode
	Submitter  contact.Submitter
	Logger     *logger.Logger
	// Motion reveals sections one at a time on start.
	Motion bool
	Width  int
	Height int
}

// Model is the Bubble Tea model for the portfolio page.
type Model struct {
	content    content.Content
	controller *theme.Controller
	mode       theme.Mode
	submitter  contact.Submitter
	log        *logger.Logger

	keys     keyMap
	help     help.Model
	viewport viewport.Model
	spinner  spinner.Model

	name    textinput.Model
	email   textinput.Model
	message textarea.Model

	focus       focusTarget
	revealed    int
	fieldErrors map[string]string
	notice      *notice
	sending     bool

	offsets [sectionCount]int
	width   int
	height  int
	ready   bool

	themeChanges chan struct{}
	unsubscribe  func()
}

// NewModel builds the page model. The theme marker must already reflect the starting mode.
func NewModel(opts Options) Model {
	mode := opts.Mode
	if opts.Controller != nil {
		mode = opts.Controller.Mode()
	}
	if !mode.Valid() {
		mode = theme.DefaultMode
	}

	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	name := textinput.New()
	name.Placeholder = "Name"
	name.Prompt = ""
	name.CharLimit = 120

	email := textinput.New()
	email.Placeholder = "Email"
	email.Prompt = ""
	email.CharLimit = 254

	message := textarea.New()
	message.Placeholder = "Message"
	message.ShowLineNumbers = false
	message.Prompt = ""
	message.CharLimit = 4000

	s := spinner.New()
	s.Spinner = spinner.Dot

	m := Model{
		content:     opts.Content,
		controller:  opts.Controller,
		mode:        mode,
		submitter:   opts.Submitter,
		log:         opts.Logger.WithComponent("tui"),
		keys:        defaultKeyMap(),
		help:        help.New(),
		viewport:    viewport.New(width, height-1),
		spinner:     s,
		name:        name,
		email:       email,
		message:     message,
		fieldErrors: make(map[string]string),
		width:       width,
		height:      height,
	}

	if !opts.Motion {
		m.revealed = int(sectionCount)
	}

	if m.controller != nil {
		// Buffered so a change made from inside Update never blocks; one pending signal is enough.
		changes := make(chan struct{}, 1)
		m.themeChanges = changes
		m.unsubscribe = m.controller.Subscribe(func(theme.Mode) {
			select {
			case changes <- struct{}{}:
			default:
			}
		})
	}

	m.applyStyles()
	m.layout()
	m.syncViewport()
	return m
}

// Init starts the entrance animation when motion is enabled and listens for theme changes.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.revealed < int(sectionCount) {
		cmds = append(cmds, revealTick())
	}
	if m.themeChanges != nil {
		cmds = append(cmds, waitForThemeChange(m.themeChanges))
	}
	return tea.Batch(cmds...)
}

// Mode returns the mode the page is currently drawn in.
func (m Model) Mode() theme.Mode {
	if m.controller != nil {
		return m.controller.Mode()
	}
	return m.mode
}

// Revealed reports how many sections are visible.
func (m Model) Revealed() int {
	return m.revealed
}

func (m Model) pageWidth() int {
	w := m.width
	if w > maxPageWidth {
		w = maxPageWidth
	}
	if w < minPageWidth {
		w = minPageWidth
	}
	return w
}

// layout sizes the viewport and form fields to the current window.
func (m *Model) layout() {
	m.help.Width = m.width
	statusHeight := len(splitLines(m.renderStatusBar()))
	vh := m.height - statusHeight
	if vh < 1 {
		vh = 1
	}
	m.viewport.Width = m.width
	m.viewport.Height = vh

	inner := sectionInnerWidth(m.pageWidth())
	half := inner
	if inner >= 60 {
		half = (inner - 2) / 2
	}
	m.name.Width = fieldTextWidth(half)
	m.email.Width = fieldTextWidth(half)
	m.message.SetWidth(fieldTextWidth(inner))
	m.message.SetHeight(4)
}

// syncViewport re-renders the page into the viewport and records where each section starts.
func (m *Model) syncViewport() {
	page, offsets := m.renderPage()
	m.offsets = offsets
	m.viewport.SetContent(page)
}

// applyStyles restyles the form controls from the active theme.
func (m *Model) applyStyles() {
	for _, in := range []*textinput.Model{&m.name, &m.email} {
		in.TextStyle = bodyStyle()
		in.PlaceholderStyle = captionStyle()
		in.Cursor.Style = accentStyle()
	}

	ta := textarea.Style{
		Base:        bodyStyle(),
		Text:        bodyStyle(),
		Placeholder: captionStyle(),
		CursorLine:  bodyStyle(),
		EndOfBuffer: captionStyle(),
	}
	m.message.FocusedStyle = ta
	m.message.BlurredStyle = ta
	m.message.Cursor.Style = accentStyle()
	// The textarea keeps a pointer to whichever style is active; re-point it at this copy.
	if m.focus == focusMessage {
		m.message.Focus()
	} else {
		m.message.Blur()
	}

	m.spinner.Style = accentStyle()
}
