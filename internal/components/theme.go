package components

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// SpacingSize enumerates supported spacing size tokens.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
)

const spacingSizeCount = int(SpacingSizeLarge) + 1

type spacingTable [spacingSizeCount]int

// TypographyVariant represents a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantBody TypographyVariant = iota
	TypographyVariantDisplay
	TypographyVariantHeading
	TypographyVariantTitle
	TypographyVariantCaption
	TypographyVariantEmphasis
	TypographyVariantLink
)

type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
)

// ColourSet is a background colour paired with the text colour drawn on it.
type ColourSet struct {
	Base   lipgloss.Color
	OnBase lipgloss.Color
	Muted  lipgloss.Color
}

// Palette describes the semantic colour slots used by components.
type Palette struct {
	Page      ColourSet
	Panel     ColourSet
	Accent    ColourSet
	Highlight ColourSet
	Tag       ColourSet
	Border    lipgloss.Color
	Success   ColourSet
	Danger    ColourSet
	Info      ColourSet
}

// TypographyScale contains semantic typography presets.
type TypographyScale struct {
	Body     lipgloss.Style
	Display  lipgloss.Style
	Heading  lipgloss.Style
	Title    lipgloss.Style
	Caption  lipgloss.Style
	Emphasis lipgloss.Style
	Link     lipgloss.Style
}

// InputStyles describes default/focus styles for form controls.
type InputStyles struct {
	Default lipgloss.Style
	Focus   lipgloss.Style
	Invalid lipgloss.Style
}

// Theme is one of the two palettes the page can be drawn with.
type Theme struct {
	Name       string
	Dark       bool
	Palette    Palette
	Spacing    spacingTable
	Typography TypographyScale
	Input      InputStyles
}

// ThemeManager coordinates access to the active Theme.
type ThemeManager struct {
	mu    sync.RWMutex
	theme Theme
}

// NewThemeManager allocates a ThemeManager with the provided theme.
func NewThemeManager(theme Theme) *ThemeManager {
	return &ThemeManager{theme: normalizeTheme(theme)}
}

// SetTheme replaces the managed theme.
func (m *ThemeManager) SetTheme(theme Theme) {
	m.mu.Lock()
	m.theme = normalizeTheme(theme)
	m.mu.Unlock()
}

// Theme returns a copy of the managed theme.
func (m *ThemeManager) Theme() Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.theme
}

// SetDark switches between DarkTheme and LightTheme. It is the page's visual-mode marker.
func (m *ThemeManager) SetDark(dark bool) {
	if dark {
		m.SetTheme(DarkTheme())
		return
	}
	m.SetTheme(LightTheme())
}

// IsDark reports whether the dark palette is active.
func (m *ThemeManager) IsDark() bool {
	return m.Theme().Dark
}

func normalizeTheme(theme Theme) Theme {
	var zero spacingTable
	if theme.Spacing == zero {
		theme.Spacing = defaultSpacingTable()
	}
	return theme
}

func defaultSpacingTable() spacingTable {
	return spacingTable{
		SpacingSizeNone:       0,
		SpacingSizeExtraSmall: 1,
		SpacingSizeSmall:      2,
		SpacingSizeMedium:     3,
		SpacingSizeLarge:      4,
	}
}

// DarkTheme is the night palette: deep navy page with pink and indigo accents.
func DarkTheme() Theme {
	palette := Palette{
		Page:      ColourSet{Base: "#0b1020", OnBase: "#f3f4f6", Muted: "#9ca3af"},
		Panel:     ColourSet{Base: "#151a2c", OnBase: "#f3f4f6", Muted: "#d1d5db"},
		Accent:    ColourSet{Base: "#ec4899", OnBase: "#0b1020", Muted: "#a855f7"},
		Highlight: ColourSet{Base: "#22d3ee", OnBase: "#0b1020", Muted: "#6366f1"},
		Tag:       ColourSet{Base: "#262b3d", OnBase: "#e5e7eb", Muted: "#9ca3af"},
		Border:    "#2a3046",
		Success:   ColourSet{Base: "#14532d", OnBase: "#bbf7d0", Muted: "#4ade80"},
		Danger:    ColourSet{Base: "#450a0a", OnBase: "#fecaca", Muted: "#f87171"},
		Info:      ColourSet{Base: "#1e1b4b", OnBase: "#c7d2fe", Muted: "#818cf8"},
	}
	return newTheme("dark", true, palette)
}

// LightTheme is the day palette: white page with the same accents.
func LightTheme() Theme {
	palette := Palette{
		Page:      ColourSet{Base: "#ffffff", OnBase: "#111827", Muted: "#4b5563"},
		Panel:     ColourSet{Base: "#f9fafb", OnBase: "#111827", Muted: "#4b5563"},
		Accent:    ColourSet{Base: "#ec4899", OnBase: "#111827", Muted: "#9333ea"},
		Highlight: ColourSet{Base: "#22d3ee", OnBase: "#111827", Muted: "#4f46e5"},
		Tag:       ColourSet{Base: "#e5e7eb", OnBase: "#1f2937", Muted: "#6b7280"},
		Border:    "#d1d5db",
		Success:   ColourSet{Base: "#dcfce7", OnBase: "#14532d", Muted: "#16a34a"},
		Danger:    ColourSet{Base: "#fee2e2", OnBase: "#7f1d1d", Muted: "#dc2626"},
		Info:      ColourSet{Base: "#e0e7ff", OnBase: "#312e81", Muted: "#4f46e5"},
	}
	return newTheme("light", false, palette)
}

func newTheme(name string, dark bool, palette Palette) Theme {
	return normalizeTheme(Theme{
		Name:       name,
		Dark:       dark,
		Palette:    palette,
		Typography: defaultTypography(palette),
		Input: InputStyles{
			Default: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(palette.Border).
				Padding(0, 1),
			Focus: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(palette.Highlight.Muted).
				Padding(0, 1),
			Invalid: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(palette.Danger.Muted).
				Padding(0, 1),
		},
	})
}

func defaultTypography(p Palette) TypographyScale {
	body := lipgloss.NewStyle().Foreground(p.Page.OnBase).Background(p.Page.Base)

	return TypographyScale{
		Body:     body,
		Display:  body.Bold(true),
		Heading:  body.Bold(true).Foreground(p.Accent.Muted),
		Title:    body.Bold(true),
		Caption:  body.Foreground(p.Page.Muted),
		Emphasis: body.Bold(true),
		Link:     body.Underline(true).Foreground(p.Highlight.Muted),
	}
}

var defaultThemeManager = NewThemeManager(DarkTheme())

// Root returns the manager holding the page-wide theme.
func Root() *ThemeManager {
	return defaultThemeManager
}

// SetTheme sets the global theme
func SetTheme(theme Theme) {
	defaultThemeManager.SetTheme(theme)
}

// GetTheme returns the current global theme
func GetTheme() Theme {
	return defaultThemeManager.Theme()
}

func spacingLookup(table spacingTable, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(table) {
		index = int(SpacingSizeMedium)
	}
	return table[index]
}

// SpacingValue returns the cell count for size in the active theme.
func SpacingValue(size SpacingSize) int {
	return spacingLookup(GetTheme().Spacing, size)
}

// TypographyStyle returns the specified typography style from the current theme.
func TypographyStyle(variant TypographyVariant) lipgloss.Style {
	return typographyFor(GetTheme(), variant)
}

func typographyFor(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantDisplay:
		return typo.Display
	case TypographyVariantHeading:
		return typo.Heading
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantCaption:
		return typo.Caption
	case TypographyVariantEmphasis:
		return typo.Emphasis
	case TypographyVariantLink:
		return typo.Link
	default:
		return typo.Body
	}
}

// InputState selects an input style.
type InputState int

const (
	InputStateDefault InputState = iota
	InputStateFocus
	InputStateInvalid
)

func InputStyle(state InputState) lipgloss.Style {
	input := GetTheme().Input
	switch state {
	case InputStateFocus:
		return input.Focus
	case InputStateInvalid:
		return input.Invalid
	default:
		return input.Default
	}
}

// StyleApplier represents a function that can apply styling to a lipgloss.Style
type StyleApplier interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc implements StyleApplier for a function type
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

func (fn StyleFunc) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	return fn(base, theme)
}

// Style applies a series of modifiers using the active theme.
func Style(base lipgloss.Style, appliers ...StyleApplier) lipgloss.Style {
	theme := GetTheme()
	for _, applier := range appliers {
		base = applier.Apply(base, theme)
	}
	return base
}

// PaletteSlot provides access to a semantic colour slot.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePage      PaletteSlot = func(p Palette) ColourSet { return p.Page }
	PalettePanel     PaletteSlot = func(p Palette) ColourSet { return p.Panel }
	PaletteAccent    PaletteSlot = func(p Palette) ColourSet { return p.Accent }
	PaletteHighlight PaletteSlot = func(p Palette) ColourSet { return p.Highlight }
	PaletteTag       PaletteSlot = func(p Palette) ColourSet { return p.Tag }
	PaletteSuccess   PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteDanger    PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteInfo      PaletteSlot = func(p Palette) ColourSet { return p.Info }
)

// Background applies a semantic background colour and matching foreground.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// MutedForeground applies the muted tone of a slot as the foreground.
func MutedForeground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Muted)
	}
}

func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		var border lipgloss.Border
		switch variant {
		case BorderVariantNormal:
			border = lipgloss.NormalBorder()
		case BorderVariantRounded:
			border = lipgloss.RoundedBorder()
		case BorderVariantThick:
			border = lipgloss.ThickBorder()
		default:
			return base
		}
		return base.Border(border).BorderForeground(theme.Palette.Border)
	}
}

// BorderColour recolours an existing border with a slot's muted tone.
func BorderColour(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.BorderForeground(slot(theme.Palette).Muted)
	}
}

func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing, size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

func PaddingY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing, size)
		return base.PaddingTop(value).PaddingBottom(value)
	}
}

func MarginTop(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.MarginTop(spacingLookup(theme.Spacing, size))
	}
}

// Typography applies typography styling
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(typographyFor(theme, variant))
	}
}

// SectionStyle is the panel every page section is drawn in.
func SectionStyle() []StyleApplier {
	return []StyleApplier{
		Border(BorderVariantRounded),
		PaddingX(SpacingSizeSmall),
		PaddingY(SpacingSizeNone),
		MarginTop(SpacingSizeExtraSmall),
	}
}

func cloneAppliers(base []StyleApplier, extras ...StyleApplier) []StyleApplier {
	cloned := make([]StyleApplier, len(base)+len(extras))
	copy(cloned, base)
	copy(cloned[len(base):], extras)
	return cloned
}
