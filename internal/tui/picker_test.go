// Copyright (c) 2026 Keymaster Team
// ssr - SSH known_hosts manager
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/ssr/internal/i18n"
	"github.com/toeirei/ssr/internal/knownhosts"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Picker, msgs ...tea.Msg) Picker {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Picker)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func sampleItems() []knownhosts.HostCount {
	return []knownhosts.HostCount{
		{Host: "a", Count: 3},
		{Host: "[b]:2222", Count: 1},
		{Host: "c", Count: 2},
	}
}

func TestPicker_ToggleAndConfirm(t *testing.T) {
	i18n.Init("en")
	m := NewPicker(sampleItems())
	m = send(t, m,
		tea.KeyMsg{Type: tea.KeySpace},
		runes("j"),
		runes("j"),
		runes("x"),
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	got := m.Selected()
	want := []string{"a", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Selected = %v, want %v", got, want)
	}
}

func TestPicker_UntoggleAndBounds(t *testing.T) {
	i18n.Init("en")
	m := NewPicker(sampleItems())
	m = send(t, m,
		tea.KeyMsg{Type: tea.KeyUp}, // already at the top
		runes("x"),
		runes("x"),
		runes("j"), runes("j"), runes("j"), runes("j"), // clamps at the last item
		runes(" "),
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	if got := m.Selected(); !reflect.DeepEqual(got, []string{"c"}) {
		t.Fatalf("Selected = %v", got)
	}
}

func TestPicker_QuitSelectsNothing(t *testing.T) {
	i18n.Init("en")
	m := NewPicker(sampleItems())
	m = send(t, m, runes("x"), runes("q"))
	if got := m.Selected(); got != nil {
		t.Fatalf("quit should select nothing, got %v", got)
	}

	m = NewPicker(sampleItems())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should quit")
	}
}

func TestPicker_View(t *testing.T) {
	i18n.Init("en")
	m := NewPicker(sampleItems())
	m = send(t, m, runes("x"))
	view := m.View()
	for _, want := range []string{"Select known_hosts entries to remove", "[x]", "[b]:2222", "(3)"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}

	empty := NewPicker(nil)
	if !strings.Contains(empty.View(), "No entries to choose from.") {
		t.Fatalf("empty view: %s", empty.View())
	}
	empty = send(t, empty, runes("x"), tea.KeyMsg{Type: tea.KeyEnter})
	if got := empty.Selected(); got != nil {
		t.Fatalf("empty picker selected %v", got)
	}
}
