package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up     key.Binding
	down   key.Binding
	enter  key.Binding
	esc    key.Binding
	filter key.Binding
	reload key.Binding
	delete key.Binding
	yes    key.Binding
	no     key.Binding
	btc    key.Binding
	copy   key.Binding
	info   key.Binding
	quit   key.Binding
	forceQ key.Binding
}

var keys = keyMap{
	up:     key.NewBinding(key.WithKeys("up", "k")),
	down:   key.NewBinding(key.WithKeys("down", "j")),
	enter:  key.NewBinding(key.WithKeys("enter")),
	esc:    key.NewBinding(key.WithKeys("esc")),
	filter: key.NewBinding(key.WithKeys("/")),
	reload: key.NewBinding(key.WithKeys("r")),
	delete: key.NewBinding(key.WithKeys("ctrl+d")),
	yes:    key.NewBinding(key.WithKeys("y")),
	no:     key.NewBinding(key.WithKeys("n")),
	btc:    key.NewBinding(key.WithKeys("b")),
	copy:   key.NewBinding(key.WithKeys("c")),
	info:   key.NewBinding(key.WithKeys("v")),
	quit:   key.NewBinding(key.WithKeys("q")),
	forceQ: key.NewBinding(key.WithKeys("ctrl+c")),
}
