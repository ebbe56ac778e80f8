package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	quit     key.Binding
	logout   key.Binding
	refresh  key.Binding
	nextPage key.Binding
	prevPage key.Binding
	copy     key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:   key.NewBinding(key.WithKeys("l")),
	refresh:  key.NewBinding(key.WithKeys("r")),
	nextPage: key.NewBinding(key.WithKeys("n", "right")),
	prevPage: key.NewBinding(key.WithKeys("p", "left")),
	copy:     key.NewBinding(key.WithKeys("c")),
}
