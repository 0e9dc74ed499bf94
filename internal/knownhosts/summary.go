// Copyright (c) 2026 Keymaster Team
// ssr - SSH known_hosts manager
// This source code is licensed under the MIT license found in the LICENSE file.

package knownhosts

// HostCount is one distinct host field and the entries that carry it.
type HostCount struct {
	Host  string
	Count int
	Lines []string
}

// Summarize groups entry lines by host field. The result keeps the order in
// which each host field was first seen; comment and blank lines are skipped.
func Summarize(lines []string) []HostCount {
	index := make(map[string]int)
	var out []HostCount
	for _, line := range lines {
		if !IsEntry(line) {
			continue
		}
		host := HostField(line)
		i, seen := index[host]
		if !seen {
			i = len(out)
			index[host] = i
			out = append(out, HostCount{Host: host})
		}
		out[i].Count++
		out[i].Lines = append(out[i].Lines, line)
	}
	return out
}
