// Copyright (c) 2026 Keymaster Team
// ssr - SSH known_hosts manager
// This source code is licensed under the MIT license found in the LICENSE file.

package knownhosts

import (
	"errors"
	"path/filepath"
)

// ErrHomeNotFound is returned when no home directory variable is set.
var ErrHomeNotFound = errors.New("Could not find home directory") //nolint:staticcheck // ST1005: printed verbatim after the error label

// HomeEnvVars lists the variables consulted for the home directory, in order.
var HomeEnvVars = []string{"HOME", "USERPROFILE"}

// LookupEnv matches the signature of os.LookupEnv.
type LookupEnv func(key string) (string, bool)

// ResolvePath returns <home>/.ssh/known_hosts. Empty variables count as unset.
func ResolvePath(lookup LookupEnv) (string, error) {
	for _, name := range HomeEnvVars {
		if home, ok := lookup(name); ok && home != "" {
			return filepath.Join(home, ".ssh", "known_hosts"), nil
		}
	}
	return "", ErrHomeNotFound
}
