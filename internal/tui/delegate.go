package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/ui"
)

// listItem adapts model.Item to bubbles/list.Item
type listItem struct{ model.Item }

func (i listItem) FilterValue() string { return i.Text }

func toListItems(items []model.Item) []list.Item {
	out := make([]list.Item, 0, len(items))
	for _, it := range items {
		out = append(out, listItem{it})
	}
	return out
}

type toggleMsg struct{ id int64 }

type deleteMsg struct{ id int64 }

// itemDelegate renders rows with ui.RenderItem and turns the toggle and
// delete keys on the selected row into the callbacks.
type itemDelegate struct {
	styles   ui.Styles
	keys     listKeys
	onToggle func(id int64) tea.Cmd
	onDelete func(id int64) tea.Cmd
}

func newItemDelegate(st ui.Styles, keys listKeys) itemDelegate {
	return itemDelegate{
		styles:   st,
		keys:     keys,
		onToggle: func(id int64) tea.Cmd { return func() tea.Msg { return toggleMsg{id} } },
		onDelete: func(id int64) tea.Cmd { return func() tea.Msg { return deleteMsg{id} } },
	}
}

func (d itemDelegate) Height() int  { return 1 }
func (d itemDelegate) Spacing() int { return 0 }

func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	it, ok := m.SelectedItem().(listItem)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(km, d.keys.Toggle):
		return d.onToggle(it.ID)
	case key.Matches(km, d.keys.Delete):
		return d.onDelete(it.ID)
	}
	return nil
}

func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	fmt.Fprint(w, ui.RenderItem(it.Item, index == m.Index(), d.styles, m.Width()))
}
