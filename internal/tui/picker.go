// Copyright (c) 2026 Keymaster Team
// ssr - SSH known_hosts manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui provides the interactive host picker used by "ssr list -i".
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/ssr/internal/i18n"
	"github.com/toeirei/ssr/internal/knownhosts"
)

// Picker lets the user mark host groups for removal.
type Picker struct {
	items     []knownhosts.HostCount
	cursor    int
	marked    map[int]bool
	keys      pickerKeyMap
	help      help.Model
	confirmed bool
	done      bool
}

// NewPicker returns a picker over items.
func NewPicker(items []knownhosts.HostCount) Picker {
	return Picker{
		items:  items,
		marked: make(map[int]bool),
		keys:   newPickerKeyMap(),
		help:   help.New(),
	}
}

// Init implements tea.Model.
func (m Picker) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Confirm):
			m.confirmed = true
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Toggle):
			if len(m.items) > 0 {
				m.marked[m.cursor] = !m.marked[m.cursor]
			}
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Picker) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(i18n.T("picker.title")))
	b.WriteString("\n")
	if len(m.items) == 0 {
		b.WriteString(i18n.T("picker.empty"))
		b.WriteString("\n")
	}
	for i, it := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		box := "[ ]"
		host := it.Host
		if m.marked[i] {
			box = "[x]"
			host = selectedStyle.Render(host)
		}
		line := fmt.Sprintf("%s%s %s", cursor, box, host)
		if it.Count > 1 {
			line += " " + countStyle.Render(fmt.Sprintf("(%d)", it.Count))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Selected returns the host fields marked for removal, in list order. It is
// empty unless the user confirmed.
func (m Picker) Selected() []string {
	if !m.confirmed {
		return nil
	}
	var out []string
	for i, it := range m.items {
		if m.marked[i] {
			out = append(out, it.Host)
		}
	}
	return out
}

// Run shows the picker on the given terminal streams and returns the
// confirmed selection.
func Run(items []knownhosts.HostCount, in io.Reader, out io.Writer) ([]string, error) {
	p := tea.NewProgram(NewPicker(items), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	picker, ok := final.(Picker)
	if !ok {
		return nil, fmt.Errorf("unexpected picker model %T", final)
	}
	return picker.Selected(), nil
}
