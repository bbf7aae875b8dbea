package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/tada/internal/logger"
	"github.com/idilsaglam/tada/internal/todo"
	"github.com/idilsaglam/tada/internal/ui"
)

type focus int

const (
	focusInput focus = iota
	focusList
)

// ListModel is the view of the todo list: an entry form above the items.
// State lives in the todo.Manager; after every mutation the rows are
// rebuilt from it in refresh.
type ListModel struct {
	ctx    context.Context
	mgr    *todo.Manager
	log    *logger.Logger
	keys   listKeys
	styles ui.Styles

	input textinput.Model
	list  list.Model
	focus focus
	width int
}

func NewListModel(ctx context.Context, mgr *todo.Manager, st ui.Styles, log *logger.Logger) ListModel {
	keys := newListKeys()

	ti := textinput.New()
	ti.Prompt = "+ "
	ti.Placeholder = "Add a new todo"
	ti.CharLimit = 200
	ti.SetValue(mgr.Pending())
	ti.Focus()

	l := list.New(toListItems(mgr.Items()), newItemDelegate(st, keys), 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowFilter(false)
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(true)
	l.SetShowPagination(true)
	l.SetStatusBarItemName("todo", "todos")
	l.DisableQuitKeybindings()
	l.KeyMap.ShowFullHelp.SetEnabled(false)
	l.KeyMap.CloseFullHelp.SetEnabled(false)
	// "d" deletes here, so it cannot also page
	l.KeyMap.NextPage = key.NewBinding(key.WithKeys("right", "l", "pgdown", "f"), key.WithHelp("→/l", "next page"))

	m := ListModel{
		ctx:   ctx,
		mgr:   mgr,
		log:   log,
		keys:  keys,
		input: ti,
		list:  l,
		focus: focusInput,
	}
	m.applyStyles(st)
	return m.SetSize(defaultWidth, defaultHeight)
}

// SetStyles swaps in the styles of a new theme.
func (m ListModel) SetStyles(st ui.Styles) ListModel {
	m.applyStyles(st)
	return m
}

func (m *ListModel) applyStyles(st ui.Styles) {
	m.styles = st
	m.list.SetDelegate(newItemDelegate(st, m.keys))
	m.list.Styles.StatusBar = st.Muted.Padding(0, 0, 1, 2)
	m.list.Styles.NoItems = st.Muted.Padding(0, 2)
	m.list.Styles.StatusEmpty = st.Muted
	m.list.Styles.PaginationStyle = st.Muted.PaddingLeft(2)
	m.list.Styles.ActivePaginationDot = st.Accent.SetString("•")
	m.list.Styles.InactivePaginationDot = st.Muted.SetString("•")
	m.input.PromptStyle = st.Accent
	m.input.TextStyle = st.Text
	m.input.PlaceholderStyle = st.Muted
	m.input.Cursor.Style = st.Accent
}

// SetSize sizes the form and list to the inner width of the card and the
// rows left for the list.
func (m ListModel) SetSize(width, height int) ListModel {
	m.width = width
	m.input.Width = max(1, width-lipgloss.Width(m.input.Prompt)-5)
	m.list.SetSize(width, max(3, height-formHeight))
	return m
}

// Focused reports whether the entry field has the focus.
func (m ListModel) Focused() bool { return m.focus == focusInput }

func (m ListModel) Init() tea.Cmd { return textinput.Blink }

func (m ListModel) Update(msg tea.Msg) (ListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case toggleMsg:
		if _, err := m.mgr.Toggle(m.ctx, msg.id); err != nil {
			m.log.Error(err, "toggle")
		}
		return m, m.refresh()
	case deleteMsg:
		if _, err := m.mgr.Delete(m.ctx, msg.id); err != nil {
			m.log.Error(err, "delete")
		}
		return m, m.refresh()
	case tea.KeyMsg:
		if m.focus == focusInput {
			return m.updateInput(msg)
		}
		return m.updateList(msg)
	}

	var cmd tea.Cmd
	if m.focus == focusInput {
		m.input, cmd = m.input.Update(msg)
	} else {
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m ListModel) updateInput(msg tea.KeyMsg) (ListModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.mgr.SetPending(m.input.Value())
		_, ok, err := m.mgr.Submit(m.ctx)
		if err != nil {
			m.log.Error(err, "add")
		}
		if !ok {
			return m, nil
		}
		m.input.SetValue(m.mgr.Pending())
		cmd := m.refresh()
		m.list.Select(len(m.list.Items()) - 1)
		return m, tea.Batch(cmd, m.input.Focus())
	case key.Matches(msg, m.keys.FocusList), key.Matches(msg, m.keys.Leave):
		return m.focusOn(focusList), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.mgr.SetPending(m.input.Value())
	return m, cmd
}

func (m ListModel) updateList(msg tea.KeyMsg) (ListModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.FocusForm):
		m = m.focusOn(focusInput)
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Up) && m.list.Index() == 0:
		m = m.focusOn(focusInput)
		return m, m.input.Focus()
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m ListModel) focusOn(f focus) ListModel {
	m.focus = f
	if f == focusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	return m
}

// refresh rebuilds the rows from the manager and keeps the cursor in range.
func (m *ListModel) refresh() tea.Cmd {
	items := m.mgr.Items()
	cmd := m.list.SetItems(toListItems(items))
	if n := len(items); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}
	return cmd
}

// HelpKeys lists the bindings that apply to the current focus.
func (m ListModel) HelpKeys() []key.Binding {
	if m.focus == focusInput {
		return []key.Binding{m.keys.Submit, m.keys.FocusList}
	}
	return []key.Binding{m.keys.Up, m.keys.Down, m.keys.Toggle, m.keys.Delete, m.keys.FocusForm, m.keys.Quit}
}

func (m ListModel) View() string {
	st := m.styles
	input := st.Input.Width(m.width - 2).Render(m.input.View())
	btn := st.Button
	if m.focus == focusInput {
		btn = btn.Underline(true)
	}
	button := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, btn.Render(" + Add Todo "),
		lipgloss.WithWhitespaceBackground(st.Palette.Card))
	return lipgloss.JoinVertical(lipgloss.Left, input, button, "", m.list.View())
}
