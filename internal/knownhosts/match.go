// Copyright (c) 2026 Keymaster Team
// ssr - SSH known_hosts manager
// This source code is licensed under the MIT license found in the LICENSE file.

package knownhosts

import (
	"errors"
	"strings"

	"golang.org/x/crypto/ssh/knownhosts"
)

// ErrEmptyTarget is returned for an empty removal target, which would
// otherwise match every entry through the substring rule.
var ErrEmptyTarget = errors.New("target must not be empty")

// Matcher decides whether an entry should be removed, given its host field.
type Matcher interface {
	MatchHostField(field string) bool
}

// Validator is implemented by matchers that can refuse to run at all.
type Validator interface {
	Validate() error
}

// TargetMatcher implements the removal policy for a user supplied host or IP.
//
// Each comma separated sub-token of the host field is compared two ways: its
// clean host (one leading '[' stripped, cut at the first ']') must equal the
// target, or the raw sub-token must contain the target. The substring rule is
// loose: target "1.1" also removes "11.1.1.1".
type TargetMatcher struct {
	Target string
	// Hashed additionally tests "|1|salt|hash" tokens against the target.
	Hashed bool

	normalized string
}

// NewTargetMatcher prepares a matcher for target. Whitespace is kept as
// given; such a target simply matches nothing.
func NewTargetMatcher(target string, hashed bool) *TargetMatcher {
	return &TargetMatcher{
		Target:     target,
		Hashed:     hashed,
		normalized: knownhosts.Normalize(target),
	}
}

// Validate implements Validator. Only the empty string is refused.
func (m *TargetMatcher) Validate() error {
	if m.Target == "" {
		return ErrEmptyTarget
	}
	return nil
}

// MatchHostField implements Matcher.
func (m *TargetMatcher) MatchHostField(field string) bool {
	for _, token := range strings.Split(field, ",") {
		if CleanHost(token) == m.Target || strings.Contains(token, m.Target) {
			return true
		}
		if m.Hashed && matchHashed(token, m.normalized) {
			return true
		}
	}
	return false
}

// CleanHost strips the bracket and port decoration of a "[host]:port" token.
func CleanHost(token string) string {
	clean := strings.TrimPrefix(token, "[")
	if i := strings.IndexByte(clean, ']'); i >= 0 {
		clean = clean[:i]
	}
	return clean
}

// FieldMatcher matches entries whose whole host field equals one of a fixed
// set. The interactive picker uses it so a selection never removes more than
// what was shown.
type FieldMatcher struct {
	fields map[string]struct{}
}

// NewFieldMatcher builds a FieldMatcher for the given host fields.
func NewFieldMatcher(fields ...string) *FieldMatcher {
	m := &FieldMatcher{fields: make(map[string]struct{}, len(fields))}
	for _, f := range fields {
		m.fields[f] = struct{}{}
	}
	return m
}

// MatchHostField implements Matcher.
func (m *FieldMatcher) MatchHostField(field string) bool {
	_, ok := m.fields[field]
	return ok
}
