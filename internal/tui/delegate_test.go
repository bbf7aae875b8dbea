package tui

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/ui"
)

func TestDelegateInvokesCallbacksWithSelectedID(t *testing.T) {
	var toggled, deleted []int64
	d := newItemDelegate(ui.NewStyles(model.ThemeLight, nil), newListKeys())
	d.onToggle = func(id int64) tea.Cmd {
		toggled = append(toggled, id)
		return nil
	}
	d.onDelete = func(id int64) tea.Cmd {
		deleted = append(deleted, id)
		return nil
	}

	l := list.New(toListItems([]model.Item{{ID: 7, Text: "a"}, {ID: 9, Text: "b"}}), d, 40, 10)
	l.Select(1)

	d.Update(space, &l)
	d.Update(runes("x"), &l)
	d.Update(runes("z"), &l)
	d.Update(tea.WindowSizeMsg{}, &l)

	assert.Equal(t, []int64{9}, toggled)
	assert.Equal(t, []int64{9}, deleted)
}

func TestDelegateOnEmptyList(t *testing.T) {
	d := newItemDelegate(ui.NewStyles(model.ThemeLight, nil), newListKeys())
	l := list.New(nil, d, 40, 10)
	assert.Nil(t, d.Update(space, &l))
}

func TestDelegateDefaultCallbacksEmitMessages(t *testing.T) {
	d := newItemDelegate(ui.NewStyles(model.ThemeLight, nil), newListKeys())
	l := list.New(toListItems([]model.Item{{ID: 3, Text: "a"}}), d, 40, 10)

	cmd := d.Update(space, &l)
	require.NotNil(t, cmd)
	assert.Equal(t, toggleMsg{id: 3}, cmd())

	cmd = d.Update(runes("d"), &l)
	require.NotNil(t, cmd)
	assert.Equal(t, deleteMsg{id: 3}, cmd())
}

func TestDelegateRender(t *testing.T) {
	d := newItemDelegate(ui.NewStyles(model.ThemeLight, nil), newListKeys())
	items := []model.Item{{ID: 1, Text: "first"}, {ID: 2, Text: "second", Completed: true}}
	l := list.New(toListItems(items), d, 40, 10)

	var buf bytes.Buffer
	d.Render(&buf, l, 0, l.Items()[0])
	assert.Contains(t, buf.String(), "> ")
	assert.Contains(t, buf.String(), ui.BoxUnchecked+" first")

	buf.Reset()
	d.Render(&buf, l, 1, l.Items()[1])
	assert.Contains(t, buf.String(), ui.BoxChecked)
	assert.NotContains(t, buf.String(), "> ")
}
