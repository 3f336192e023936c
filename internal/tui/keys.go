package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	cancel key.Binding
	back   key.Binding
}

var keys = keyMap{
	cancel: key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("esc/q", "cancel")),
	// esc is taken by cancel, so going up a directory uses the remaining keys
	back: key.NewBinding(key.WithKeys("h", "backspace", "left"), key.WithHelp("h/←", "back")),
}
