package tui

import "github.com/charmbracelet/bubbles/key"

type appKeys struct {
	ToggleTheme key.Binding
	Quit        key.Binding
}

func newAppKeys() appKeys {
	return appKeys{
		ToggleTheme: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "theme")),
		Quit:        key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

type listKeys struct {
	Submit    key.Binding
	FocusList key.Binding
	FocusForm key.Binding
	Leave     key.Binding
	Toggle    key.Binding
	Delete    key.Binding
	Up        key.Binding
	Down      key.Binding
	Quit      key.Binding
}

func newListKeys() listKeys {
	return listKeys{
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add todo")),
		FocusList: key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "list")),
		FocusForm: key.NewBinding(key.WithKeys("tab", "a", "i"), key.WithHelp("tab/a", "new todo")),
		Leave:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "list")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "toggle")),
		Delete:    key.NewBinding(key.WithKeys("x", "d", "delete"), key.WithHelp("x", "delete")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}
