// Package tui is the interactive terminal front end: a shell with a header
// and theme toggle hosting the todo list view.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/tada/internal/logger"
	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/todo"
	"github.com/idilsaglam/tada/internal/ui"
)

const (
	title = "Simple Todo List"

	// card sizing, in cells
	maxCardWidth  = 56
	defaultWidth  = 44
	defaultHeight = 16
	formHeight    = 5
	chromeHeight  = 8 // header, body padding, help, margin
	bodyPadX      = 2
)

// Model is the application shell. It owns the theme and hands the styles
// for it to the list view.
type Model struct {
	theme  model.Theme
	styles ui.Styles
	keys   appKeys
	help   help.Model
	todos  ListModel
	log    *logger.Logger

	width  int
	height int
}

// Options tune the shell.
type Options struct {
	Theme  model.Theme
	Logger *logger.Logger
}

// New builds the shell around mgr.
func New(ctx context.Context, mgr *todo.Manager, opts Options) Model {
	st := ui.NewStyles(opts.Theme, nil)
	m := Model{
		theme:  opts.Theme,
		styles: st,
		keys:   newAppKeys(),
		help:   help.New(),
		todos:  NewListModel(ctx, mgr, st, opts.Logger),
		log:    opts.Logger,
	}
	m.applyHelpStyles()
	return m
}

// Theme reports the current theme.
func (m Model) Theme() model.Theme { return m.theme }

// ToggleTheme flips between light and dark and restyles the list.
func (m Model) ToggleTheme() Model {
	m.theme = m.theme.Toggle()
	m.styles = ui.NewStyles(m.theme, nil)
	m.todos = m.todos.SetStyles(m.styles)
	m.applyHelpStyles()
	m.log.WithFields(map[string]any{"theme": m.theme.String()}).Debug("theme toggled")
	return m
}

func (m *Model) applyHelpStyles() {
	m.help.Styles.ShortKey = lipgloss.NewStyle().Foreground(m.styles.Palette.Muted).Bold(true)
	m.help.Styles.ShortDesc = lipgloss.NewStyle().Foreground(m.styles.Palette.Muted)
	m.help.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(m.styles.Palette.Border)
}

func (m Model) Init() tea.Cmd { return m.todos.Init() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.todos = m.todos.SetSize(m.innerWidth(), max(formHeight+3, msg.Height-chromeHeight))
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.ToggleTheme):
			return m.ToggleTheme(), nil
		}
	}

	var cmd tea.Cmd
	m.todos, cmd = m.todos.Update(msg)
	return m, cmd
}

func (m Model) cardWidth() int {
	if m.width <= 0 {
		return defaultWidth + 2*bodyPadX
	}
	return min(maxCardWidth, max(20, m.width-4))
}

func (m Model) innerWidth() int { return m.cardWidth() - 2*bodyPadX }

func (m Model) View() string {
	st := m.styles
	w := m.cardWidth()

	card := lipgloss.JoinVertical(lipgloss.Left,
		m.header(w),
		st.Body.Width(w).Render(m.todos.View()),
	)
	helpKeys := append(m.todos.HelpKeys(), m.keys.ToggleTheme, m.keys.Quit)
	page := lipgloss.JoinVertical(lipgloss.Center, "", card, "", m.help.ShortHelpView(helpKeys))

	if m.width <= 0 || m.height <= 0 {
		return page
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, page,
		lipgloss.WithWhitespaceBackground(st.Palette.Page))
}

// header renders the title bar with the theme affordance on the right.
func (m Model) header(width int) string {
	st := m.styles
	left := st.Title.Render(title)
	right := st.Toggle.Render(ui.ToggleLabel(m.theme))
	inner := width - st.Header.GetHorizontalPadding()
	gap := max(1, inner-lipgloss.Width(left)-lipgloss.Width(right))
	return st.Header.Width(width).Render(left + st.Toggle.Render(strings.Repeat(" ", gap)) + right)
}
