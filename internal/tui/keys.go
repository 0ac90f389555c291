package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up          key.Binding
	down        key.Binding
	enter       key.Binding
	esc         key.Binding
	tab         key.Binding
	backtab     key.Binding
	quit        key.Binding
	newItem     key.Binding
	edit        key.Binding
	delete      key.Binding
	search      key.Binding
	copy        key.Binding
	copyUser    key.Binding
	reveal      key.Binding
	generate    key.Binding
	revealInput key.Binding
	yes         key.Binding
	no          key.Binding
}

var keys = keyMap{
	up:          key.NewBinding(key.WithKeys("up", "k")),
	down:        key.NewBinding(key.WithKeys("down", "j")),
	enter:       key.NewBinding(key.WithKeys("enter")),
	esc:         key.NewBinding(key.WithKeys("esc")),
	tab:         key.NewBinding(key.WithKeys("tab", "down")),
	backtab:     key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:        key.NewBinding(key.WithKeys("q")),
	newItem:     key.NewBinding(key.WithKeys("a", "n")),
	edit:        key.NewBinding(key.WithKeys("e")),
	delete:      key.NewBinding(key.WithKeys("d")),
	search:      key.NewBinding(key.WithKeys("/")),
	copy:        key.NewBinding(key.WithKeys("c")),
	copyUser:    key.NewBinding(key.WithKeys("u")),
	reveal:      key.NewBinding(key.WithKeys(" ")),
	generate:    key.NewBinding(key.WithKeys("ctrl+g")),
	revealInput: key.NewBinding(key.WithKeys("ctrl+r")),
	yes:         key.NewBinding(key.WithKeys("y")),
	no:          key.NewBinding(key.WithKeys("n", "esc")),
}
