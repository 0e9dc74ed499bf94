// Copyright (c) 2026 Keymaster Team
// ssr - SSH known_hosts manager
// This source code is licensed under the MIT license found in the LICENSE file.

// This file defines the lipgloss styles of the host picker.
package tui

import "github.com/charmbracelet/lipgloss"

// colorPalette defines the core colors used in the TUI.
const (
	colorSubtle    = lipgloss.Color("240") // Muted gray
	colorHighlight = lipgloss.Color("81")  // A nice teal/cyan
	colorSpecial   = lipgloss.Color("208") // An orange for entries marked for removal
)

var (
	// Title above the host list
	titleStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true).
			MarginBottom(1)

	// Cursor marker in front of the current row
	cursorStyle = lipgloss.NewStyle().Foreground(colorHighlight)

	// Hosts marked for removal
	selectedStyle = lipgloss.NewStyle().Foreground(colorSpecial)

	// Entry counts
	countStyle = lipgloss.NewStyle().Foreground(colorSubtle)
)
