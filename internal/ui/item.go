package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/tada/internal/model"
)

// RenderItem draws one todo row: cursor, checkbox, text and the delete
// control pushed to the right edge of width. It holds no state.
func RenderItem(it model.Item, selected bool, st Styles, width int) string {
	cursor := st.Text.Render("  ")
	if selected {
		cursor = st.Cursor.Render("> ")
	}

	box, text := st.Checkbox.Render(BoxUnchecked), st.Text
	if it.Completed {
		box, text = st.CheckboxDone.Render(BoxChecked), st.TextDone
	}
	del := st.Delete.Render(SymDelete)

	fixed := lipgloss.Width(cursor) + lipgloss.Width(box) + 1 + 1 + lipgloss.Width(del)
	label := it.Text
	gap := 1
	if width > 0 {
		label = Truncate(label, width-fixed)
		gap = max(1, width-fixed-lipgloss.Width(label)+1)
	}

	return cursor + box + st.Text.Render(" ") + text.Render(label) +
		st.Text.Render(strings.Repeat(" ", gap)) + del
}

// Truncate shortens s to at most n cells, marking the cut with an ellipsis.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= n {
		return s
	}
	rs := []rune(s)
	for len(rs) > 0 && lipgloss.Width(string(rs))+1 > n {
		rs = rs[:len(rs)-1]
	}
	return string(rs) + "…"
}
