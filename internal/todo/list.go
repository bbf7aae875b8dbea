// Package todo holds the todo list state and the operations on it.
//
// Add, Toggle and Delete are pure: they return a new slice and never touch
// the one they are given. Manager layers persistence on top of them.
package todo

import (
	"strings"

	"github.com/idilsaglam/tada/internal/model"
)

// Add appends a new pending item with the trimmed text. It reports false and
// returns items unchanged when the trimmed text is empty.
func Add(items []model.Item, text string, id int64) ([]model.Item, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return items, false
	}
	out := make([]model.Item, len(items), len(items)+1)
	copy(out, items)
	return append(out, model.Item{ID: id, Text: text}), true
}

// Toggle flips Completed on every item with the given id. Stored data may
// carry duplicate ids; they are treated alike.
func Toggle(items []model.Item, id int64) ([]model.Item, bool) {
	if indexOf(items, id) < 0 {
		return items, false
	}
	out := make([]model.Item, len(items))
	copy(out, items)
	for i := range out {
		if out[i].ID == id {
			out[i].Completed = !out[i].Completed
		}
	}
	return out, true
}

// Delete removes the items with the given id, keeping the order of the rest.
func Delete(items []model.Item, id int64) ([]model.Item, bool) {
	if indexOf(items, id) < 0 {
		return items, false
	}
	out := make([]model.Item, 0, len(items)-1)
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out, true
}

// Stats counts completed and pending items.
func Stats(items []model.Item) (done, pending int) {
	for _, it := range items {
		if it.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}

func indexOf(items []model.Item, id int64) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
