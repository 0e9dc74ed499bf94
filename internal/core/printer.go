// Copyright (c) 2026 Keymaster Team
// ssr - SSH known_hosts manager
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/toeirei/ssr/internal/config"
)

// colorPalette mirrors the TUI colors.
const (
	colorSubtle    = lipgloss.Color("240")
	colorHighlight = lipgloss.Color("81")
	colorSpecial   = lipgloss.Color("208")
	colorSuccess   = lipgloss.Color("40")
)

// Printer writes user-facing lines. Styling only ever adds color; the text
// is identical with and without it.
type Printer struct {
	w      io.Writer
	styled bool

	headerStyle  lipgloss.Style
	removedStyle lipgloss.Style
	successStyle lipgloss.Style
	subtleStyle  lipgloss.Style
}

// NewPrinter returns a Printer for w. colorMode is one of the config color
// modes; "auto" colors only when w is a color capable terminal.
func NewPrinter(w io.Writer, colorMode string) *Printer {
	r := lipgloss.NewRenderer(w)
	styled := false
	switch colorMode {
	case config.ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
		styled = true
	case config.ColorNever:
	default:
		styled = r.ColorProfile() != termenv.Ascii
	}
	return &Printer{
		w:            w,
		styled:       styled,
		headerStyle:  r.NewStyle().Foreground(colorHighlight),
		removedStyle: r.NewStyle().Foreground(colorSpecial),
		successStyle: r.NewStyle().Foreground(colorSuccess),
		subtleStyle:  r.NewStyle().Foreground(colorSubtle),
	}
}

// Println writes s unstyled.
func (p *Printer) Println(s string) { p.line(s, nil) }

// Header writes a heading line.
func (p *Printer) Header(s string) { p.line(s, &p.headerStyle) }

// Removed writes a per-entry removal notice.
func (p *Printer) Removed(s string) { p.line(s, &p.removedStyle) }

// Success writes a final success summary.
func (p *Printer) Success(s string) { p.line(s, &p.successStyle) }

// Subtle writes secondary detail.
func (p *Printer) Subtle(s string) { p.line(s, &p.subtleStyle) }

func (p *Printer) line(s string, style *lipgloss.Style) {
	if p.styled && style != nil {
		s = style.Render(s)
	}
	_, _ = fmt.Fprintln(p.w, s)
}
