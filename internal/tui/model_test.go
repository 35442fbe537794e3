package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/folio/internal/components"
	"github.com/alexisbeaulieu97/folio/internal/contact"
	"github.com/alexisbeaulieu97/folio/internal/content"
	"github.com/alexisbeaulieu97/folio/internal/preference"
	"github.com/alexisbeaulieu97/folio/internal/theme"
)

func resetTheme(t *testing.T) {
	t.Helper()
	components.Root().SetDark(true)
	t.Cleanup(func() { components.Root().SetDark(true) })
}

func newSession(t *testing.T, opts Options) (Model, *preference.MemoryStore) {
	t.Helper()
	resetTheme(t)

	store := preference.NewMemoryStore(nil)
	opts.Controller = theme.NewController(theme.Dark, theme.NewPersister(store, components.Root(), nil))
	if opts.Content.Projects == nil {
		opts.Content = content.Default()
	}
	return NewModel(opts), store
}

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var updated tea.Model
		updated, cmd = m.Update(msg)
		var ok bool
		m, ok = updated.(Model)
		require.True(t, ok)
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelWithoutMotion(t *testing.T) {
	m, _ := newSession(t, Options{})
	assert.Equal(t, int(sectionCount), m.Revealed())
	assert.NotNil(t, m.Init(), "the page listens for theme changes")
	assert.Equal(t, theme.Dark, m.Mode())

	static := NewModel(Options{Content: content.Default()})
	assert.Nil(t, static.Init())
}

func TestPageFollowsControllerChanges(t *testing.T) {
	m, store := newSession(t, Options{})
	require.Contains(t, m.View(), theme.Dark.Label())

	require.NoError(t, m.controller.Set(theme.Light))

	msg := waitForThemeChange(m.themeChanges)()
	require.IsType(t, themeChangedMsg{}, msg)

	m, cmd := send(t, m, msg)
	assert.Equal(t, theme.Light, m.Mode())
	assert.Contains(t, m.View(), theme.Light.Label())
	assert.False(t, components.Root().IsDark())
	assert.NotNil(t, cmd, "keeps listening after a change")

	value, _, _ := store.Get(theme.StorageKey)
	assert.Equal(t, "light", value)
}

func TestQuitUnsubscribesFromController(t *testing.T) {
	m, _ := newSession(t, Options{})
	controller := m.controller

	_, cmd := send(t, m, runes("q"))
	require.NotNil(t, cmd)

	controller.Toggle()
	select {
	case <-m.themeChanges:
		t.Fatal("no signal expected after quitting")
	default:
	}
}

func TestRevealTicks(t *testing.T) {
	m, _ := newSession(t, Options{Motion: true})
	require.Equal(t, 0, m.Revealed())
	require.NotNil(t, m.Init())

	var cmd tea.Cmd
	for i := 1; i <= int(sectionCount); i++ {
		m, cmd = send(t, m, revealTickMsg{})
		assert.Equal(t, i, m.Revealed())
	}
	assert.Nil(t, cmd, "no tick after the last section")

	m, _ = send(t, m, revealTickMsg{})
	assert.Equal(t, int(sectionCount), m.Revealed())
}

func TestKeyPressSkipsReveal(t *testing.T) {
	m, _ := newSession(t, Options{Motion: true})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, int(sectionCount), m.Revealed())
}

func TestToggleKeySwitchesThemeAndPersists(t *testing.T) {
	m, store := newSession(t, Options{})
	assert.Contains(t, m.View(), "Dark")

	m, _ = send(t, m, runes("t"))

	assert.Equal(t, theme.Light, m.Mode())
	assert.False(t, components.Root().IsDark())
	value, ok, err := store.Get(theme.StorageKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "light", value)
	assert.Contains(t, m.View(), "Light")

	m, _ = send(t, m, runes("t"))
	assert.Equal(t, theme.Dark, m.Mode())
	assert.True(t, components.Root().IsDark())
}

func TestToggleWithoutController(t *testing.T) {
	resetTheme(t)
	m := NewModel(Options{Content: content.Default(), Mode: theme.Dark})

	m, _ = send(t, m, runes("t"))
	assert.Equal(t, theme.Light, m.Mode())
	assert.False(t, components.Root().IsDark())
}

func TestEnterOnToggleButton(t *testing.T) {
	m, _ := newSession(t, Options{})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, focusToggle, m.focus)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, theme.Light, m.Mode())
}

func TestFocusCycle(t *testing.T) {
	m, _ := newSession(t, Options{})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, focusCV, m.focus, "shift+tab from nothing wraps to the last control")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, focusToggle, m.focus)

	for range focusOrder {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	}
	assert.Equal(t, focusToggle, m.focus)
}

func TestTypingInFieldsIgnoresShortcuts(t *testing.T) {
	m, _ := newSession(t, Options{})

	m, _ = send(t, m, runes("c"))
	require.Equal(t, focusName, m.focus)

	m, _ = send(t, m, runes("t"), runes("q"))
	assert.Equal(t, "tq", m.name.Value())
	assert.Equal(t, theme.Dark, m.Mode())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, focusNone, m.focus)
	m, _ = send(t, m, runes("t"))
	assert.Equal(t, theme.Light, m.Mode())
}

func TestQuitKeys(t *testing.T) {
	m, _ := newSession(t, Options{})

	_, cmd := send(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	m, _ = send(t, m, runes("c"))
	_, cmd = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestJumpToProjects(t *testing.T) {
	m, _ := newSession(t, Options{})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 12})

	m, _ = send(t, m, runes("p"))
	assert.Greater(t, m.offsets[SectionProjects], 0)
	assert.Equal(t, m.offsets[SectionProjects], m.viewport.YOffset)
	assert.Contains(t, m.View(), "Projects")
}

func TestWindowResize(t *testing.T) {
	m, _ := newSession(t, Options{})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.True(t, m.ready)
	assert.Equal(t, 120, m.viewport.Width)
	assert.Less(t, m.viewport.Height, 40)
	assert.Equal(t, maxPageWidth, m.pageWidth())
}

func TestHelpToggle(t *testing.T) {
	m, _ := newSession(t, Options{})
	short := m.viewport.Height

	m, _ = send(t, m, runes("?"))
	assert.True(t, m.help.ShowAll)
	assert.Less(t, m.viewport.Height, short)
}

func TestSubmitEmptyFormReportsEveryField(t *testing.T) {
	m, _ := newSession(t, Options{})
	m, _ = send(t, m, runes("c"), tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Len(t, m.fieldErrors, 3)
	assert.Equal(t, focusName, m.focus)
	require.NotNil(t, m.notice)
	assert.Equal(t, components.AlertVariantError, m.notice.variant)

	m, _ = send(t, m, runes("A"))
	assert.NotContains(t, m.fieldErrors, "name", "editing a field clears its error")
}

func TestSubmitInvalidEmailFocusesEmail(t *testing.T) {
	m, _ := newSession(t, Options{})
	m.name.SetValue("Ada")
	m.email.SetValue("nope")
	m.message.SetValue("Hello")
	m.focus = focusSend

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, focusEmail, m.focus)
	assert.Contains(t, m.fieldErrors, "email")
}

func TestSubmitWithoutSubmitter(t *testing.T) {
	m, _ := newSession(t, Options{})
	m.name.SetValue("Ada")
	m.email.SetValue("ada@example.com")
	m.message.SetValue("Hello")
	m.focus = focusSend

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	require.NotNil(t, m.notice)
	assert.Equal(t, components.AlertVariantInfo, m.notice.variant)
	assert.Contains(t, m.notice.text, "you@example.com")
	assert.Empty(t, m.fieldErrors)
}

type recordingSubmitter struct {
	forms []contact.Form
	err   error
}

func (r *recordingSubmitter) Submit(_ context.Context, form contact.Form) error {
	r.forms = append(r.forms, form)
	return r.err
}

func TestSubmitWithSubmitter(t *testing.T) {
	sub := &recordingSubmitter{}
	m, _ := newSession(t, Options{Submitter: sub})
	m.name.SetValue("Ada")
	m.email.SetValue("ada@example.com")
	m.message.SetValue("Hello")
	m.focus = focusSend

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.sending)

	result := submitCmd(sub, m.form())()
	require.Len(t, sub.forms, 1)
	assert.Equal(t, "Ada", sub.forms[0].Name)

	m, _ = send(t, m, result)
	assert.False(t, m.sending)
	require.NotNil(t, m.notice)
	assert.Equal(t, components.AlertVariantSuccess, m.notice.variant)
	assert.Empty(t, m.name.Value())
	assert.Empty(t, m.message.Value())
}

func TestSubmitFailureKeepsForm(t *testing.T) {
	sub := &recordingSubmitter{err: errors.New("mailbox full")}
	m, _ := newSession(t, Options{Submitter: sub})
	m.name.SetValue("Ada")

	m, _ = send(t, m, submitResultMsg{err: contact.Send(context.Background(), sub, contact.Form{Name: "Ada", Email: "ada@example.com", Message: "Hi"})})
	require.NotNil(t, m.notice)
	assert.Equal(t, components.AlertVariantError, m.notice.variant)
	assert.Contains(t, m.notice.text, "mailbox full")
	assert.Equal(t, "Ada", m.name.Value())
}

func TestDownloadCVNotice(t *testing.T) {
	m, _ := newSession(t, Options{})
	m.focus = focusCV

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.notice)
	assert.Contains(t, m.notice.text, "/cv.pdf")
}
