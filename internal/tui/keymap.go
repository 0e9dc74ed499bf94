// Copyright (c) 2026 Keymaster Team
// ssr - SSH known_hosts manager
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/toeirei/ssr/internal/i18n"
)

type pickerKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Confirm key.Binding
	Quit    key.Binding
}

func (km pickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Toggle, km.Confirm, km.Quit}
}

func (km pickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Up, km.Down}, {km.Toggle, km.Confirm, km.Quit}}
}

var _ help.KeyMap = pickerKeyMap{}

// newPickerKeyMap builds the bindings with help text in the active language.
func newPickerKeyMap() pickerKeyMap {
	return pickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", i18n.T("picker.help_up")),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", i18n.T("picker.help_down")),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space/x", i18n.T("picker.help_toggle")),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", i18n.T("picker.help_confirm")),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", i18n.T("picker.help_quit")),
		),
	}
}
