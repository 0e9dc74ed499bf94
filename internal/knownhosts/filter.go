// Copyright (c) 2026 Keymaster Team
// ssr - SSH known_hosts manager
// This source code is licensed under the MIT license found in the LICENSE file.

package knownhosts

// Removed describes one dropped entry.
type Removed struct {
	HostField string
	Line      string
}

// Filter splits lines into the ones to keep and the entries m matches.
// Blank and comment lines are always kept, in place.
func Filter(lines []string, m Matcher) (kept []string, removed []Removed) {
	kept = make([]string, 0, len(lines))
	for _, line := range lines {
		if !IsEntry(line) {
			kept = append(kept, line)
			continue
		}
		host := HostField(line)
		if m.MatchHostField(host) {
			removed = append(removed, Removed{HostField: host, Line: line})
			continue
		}
		kept = append(kept, line)
	}
	return kept, removed
}
