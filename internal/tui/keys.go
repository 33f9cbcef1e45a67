package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter key.Binding
	quit  key.Binding
}

var keys = keyMap{
	enter: key.NewBinding(key.WithKeys("enter")),
	quit:  key.NewBinding(key.WithKeys("esc", "ctrl+c")),
}
