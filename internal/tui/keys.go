// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	reveal   key.Binding
	newEntry key.Binding
	edit     key.Binding
	delete   key.Binding
	copy     key.Binding
	lock     key.Binding
	save     key.Binding
	noImage  key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	left:     key.NewBinding(key.WithKeys("left")),
	right:    key.NewBinding(key.WithKeys("right")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	reveal:   key.NewBinding(key.WithKeys("ctrl+r")),
	newEntry: key.NewBinding(key.WithKeys("n")),
	edit:     key.NewBinding(key.WithKeys("e", "enter")),
	delete:   key.NewBinding(key.WithKeys("d")),
	copy:     key.NewBinding(key.WithKeys("c")),
	lock:     key.NewBinding(key.WithKeys("l")),
	save:     key.NewBinding(key.WithKeys("ctrl+s")),
	noImage:  key.NewBinding(key.WithKeys("ctrl+x")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n", "esc")),
}
