package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	submit    key.Binding
	quit      key.Binding
	buildInfo key.Binding
	switchTo  key.Binding

	search   key.Binding
	archived key.Binding
	date     key.Binding
	newNote  key.Binding
	edit     key.Binding
	archive  key.Binding
	delete   key.Binding
	copy     key.Binding
	refresh  key.Binding
	logout   key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	submit:    key.NewBinding(key.WithKeys("ctrl+s")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
	buildInfo: key.NewBinding(key.WithKeys("f1")),
	switchTo:  key.NewBinding(key.WithKeys("ctrl+r")),

	search:   key.NewBinding(key.WithKeys("/")),
	archived: key.NewBinding(key.WithKeys("a")),
	date:     key.NewBinding(key.WithKeys("t")),
	newNote:  key.NewBinding(key.WithKeys("n")),
	edit:     key.NewBinding(key.WithKeys("e")),
	archive:  key.NewBinding(key.WithKeys("x")),
	delete:   key.NewBinding(key.WithKeys("d")),
	copy:     key.NewBinding(key.WithKeys("c")),
	refresh:  key.NewBinding(key.WithKeys("r")),
	logout:   key.NewBinding(key.WithKeys("l")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n", "esc")),
}
