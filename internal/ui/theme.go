package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/tada/internal/model"
)

// Palette is the set of colours one theme paints with.
type Palette struct {
	Page, Card, Foreground lipgloss.Color
	HeaderBg, HeaderFg     lipgloss.Color
	Muted, Accent, Border  lipgloss.Color
	Success, Danger        lipgloss.Color
}

var (
	lightPalette = Palette{
		Page: "#F3F4F6", Card: "#FFFFFF", Foreground: "#000000",
		HeaderBg: "#3B82F6", HeaderFg: "#FFFFFF",
		Muted: "#6B7280", Accent: "#3B82F6", Border: "#D1D5DB",
		Success: "#16A34A", Danger: "#EF4444",
	}
	darkPalette = Palette{
		Page: "#111827", Card: "#1F2937", Foreground: "#FFFFFF",
		HeaderBg: "#3B82F6", HeaderFg: "#FFFFFF",
		Muted: "#9CA3AF", Accent: "#60A5FA", Border: "#374151",
		Success: "#22C55E", Danger: "#EF4444",
	}
)

// PaletteFor picks the palette of a theme.
func PaletteFor(t model.Theme) Palette {
	if t == model.ThemeDark {
		return darkPalette
	}
	return lightPalette
}

const (
	BoxUnchecked = "☐"
	BoxChecked   = "☑"
	SymDelete    = "✖"
	SymDone      = "✔"
	SymPending   = "•"
)

// Styles bundles every style the views need for one theme. It is built once
// per theme change and handed to the components that draw with it.
type Styles struct {
	Theme   model.Theme
	Palette Palette

	Card   lipgloss.Style
	Header lipgloss.Style
	Title  lipgloss.Style
	Toggle lipgloss.Style
	Body   lipgloss.Style

	Input  lipgloss.Style
	Button lipgloss.Style

	Cursor       lipgloss.Style
	Checkbox     lipgloss.Style
	CheckboxDone lipgloss.Style
	Text         lipgloss.Style
	TextDone     lipgloss.Style
	Delete       lipgloss.Style

	Muted   lipgloss.Style
	Accent  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Border  lipgloss.Style
}

// NewStyles builds the styles for theme. A nil renderer uses lipgloss's
// default one (stdout).
func NewStyles(theme model.Theme, r *lipgloss.Renderer) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p := PaletteFor(theme)
	body := r.NewStyle().Background(p.Card).Foreground(p.Foreground)

	return Styles{
		Theme:   theme,
		Palette: p,

		Card:   r.NewStyle().Background(p.Card).Foreground(p.Foreground),
		Header: r.NewStyle().Background(p.HeaderBg).Foreground(p.HeaderFg).Padding(0, 1),
		Title:  r.NewStyle().Background(p.HeaderBg).Foreground(p.HeaderFg).Bold(true),
		Toggle: r.NewStyle().Background(p.HeaderBg).Foreground(p.HeaderFg),
		Body:   body.Padding(1, 2),

		Input: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			BorderBackground(p.Card).
			Padding(0, 1),
		Button: r.NewStyle().Background(p.Accent).Foreground(lipgloss.Color("#FFFFFF")).Bold(true),

		Cursor:       body.Foreground(p.Accent).Bold(true),
		Checkbox:     body.Foreground(p.Muted),
		CheckboxDone: body.Foreground(p.Success),
		Text:         body,
		TextDone:     body.Foreground(p.Muted).Strikethrough(true),
		Delete:       body.Foreground(p.Danger),

		Muted:   body.Foreground(p.Muted),
		Accent:  body.Foreground(p.Accent),
		Success: r.NewStyle().Foreground(p.Success),
		Error:   r.NewStyle().Foreground(p.Danger).Bold(true),
		Border: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
	}
}

// ToggleLabel is the header affordance: it names the theme a press
// switches to.
func ToggleLabel(theme model.Theme) string {
	if theme == model.ThemeDark {
		return "☀ light"
	}
	return "☾ dark"
}
