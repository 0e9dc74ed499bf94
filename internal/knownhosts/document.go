// Copyright (c) 2026 Keymaster Team
// ssr - SSH known_hosts manager
// This source code is licensed under the MIT license found in the LICENSE file.

package knownhosts

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Document is the in-memory form of a known_hosts file.
type Document struct {
	Path  string
	Raw   []byte
	Lines []string
}

// Load reads the whole file at path. A missing file yields an error that
// satisfies errors.Is(err, fs.ErrNotExist).
func Load(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &Document{Path: path, Raw: raw, Lines: SplitLines(string(raw))}, nil
}

// IsBlank reports whether the file holds nothing but whitespace.
func (d *Document) IsBlank() bool {
	return strings.TrimSpace(string(d.Raw)) == ""
}

// SplitLines splits on '\n' and drops one trailing '\r' per line. A final
// newline does not produce an extra empty line.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// IsEntry reports whether line is a host entry rather than a blank line or
// a '#' comment.
func IsEntry(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed != "" && !strings.HasPrefix(trimmed, "#")
}

// HostField returns the first whitespace-delimited field of line.
func HostField(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// WriteLines truncates path and writes every line followed by '\n'.
// A failure part way through may leave the file truncated; nothing is
// rolled back.
func WriteLines(path string, lines []string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			_ = f.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
