package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the bindings shared by the menu-style screens. Form screens
// (login, register, OTP) switch on the raw key string instead because their
// handling depends on which input has focus.
type keyMap struct {
	up     key.Binding
	down   key.Binding
	enter  key.Binding
	otp    key.Binding
	resend key.Binding
	logout key.Binding
	quit   key.Binding
}

var keys = keyMap{
	up:     key.NewBinding(key.WithKeys("up", "k")),
	down:   key.NewBinding(key.WithKeys("down", "j")),
	enter:  key.NewBinding(key.WithKeys("enter")),
	otp:    key.NewBinding(key.WithKeys("o")),
	resend: key.NewBinding(key.WithKeys("r")),
	logout: key.NewBinding(key.WithKeys("l")),
	quit:   key.NewBinding(key.WithKeys("q", "ctrl+c")),
}
