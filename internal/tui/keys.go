package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	logout  key.Binding
	newNote key.Binding
	search  key.Binding
	reload  key.Binding
	edit    key.Binding
	delete  key.Binding
	share   key.Binding
	scan    key.Binding
	copy    key.Binding
	save    key.Binding
	yes     key.Binding
	no      key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:  key.NewBinding(key.WithKeys("l")),
	newNote: key.NewBinding(key.WithKeys("n")),
	search:  key.NewBinding(key.WithKeys("/")),
	reload:  key.NewBinding(key.WithKeys("r")),
	edit:    key.NewBinding(key.WithKeys("e")),
	delete:  key.NewBinding(key.WithKeys("ctrl+d")),
	share:   key.NewBinding(key.WithKeys("s")),
	scan:    key.NewBinding(key.WithKeys("i")),
	copy:    key.NewBinding(key.WithKeys("c")),
	save:    key.NewBinding(key.WithKeys("ctrl+s")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n")),
}
