// Copyright (c) 2026 Keymaster Team
// ssr - SSH known_hosts manager
// This source code is licensed under the MIT license found in the LICENSE file.

package knownhosts

import (
	"golang.org/x/crypto/ssh"
)

// KeyInfo is the parsed key of a single entry line.
type KeyInfo struct {
	Marker      string
	Type        string
	Fingerprint string
	// Err is set when the line could not be parsed as a known_hosts entry.
	Err error
}

// Inspect parses one entry line. It does not judge the key, it only reports
// its algorithm and SHA256 fingerprint.
func Inspect(line string) KeyInfo {
	marker, _, pub, _, _, err := ssh.ParseKnownHosts([]byte(line))
	if err != nil {
		return KeyInfo{Err: err}
	}
	return KeyInfo{
		Marker:      marker,
		Type:        pub.Type(),
		Fingerprint: ssh.FingerprintSHA256(pub),
	}
}
