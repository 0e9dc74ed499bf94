// Copyright (c) 2026 Keymaster Team
// ssr - SSH known_hosts manager
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/toeirei/ssr/internal/i18n"
	"github.com/toeirei/ssr/internal/knownhosts"
	"github.com/toeirei/ssr/internal/logging"
)

const ruleWidth = 60

// ListOptions tunes List.
type ListOptions struct {
	// Fingerprints prints key type and SHA256 fingerprint under each host.
	Fingerprints bool
}

// List prints every distinct host field in first-seen order with its
// occurrence count. It never writes to the file.
func (s *Service) List(ctx context.Context, opts ListOptions) error {
	doc, ok, err := s.load()
	if err != nil || !ok {
		return err
	}
	if doc.IsBlank() {
		s.Out.Println(i18n.T("list.empty"))
		return nil
	}

	s.Out.Header(i18n.T("list.header", s.Path))
	s.Out.Header(strings.Repeat("=", ruleWidth))
	for i, hc := range knownhosts.Summarize(doc.Lines) {
		row := fmt.Sprintf("%4d. %s", i+1, hc.Host)
		if hc.Count > 1 {
			row += fmt.Sprintf(" (%d)", hc.Count)
		}
		s.Out.Println(row)
		if opts.Fingerprints {
			s.printKeys(hc.Lines)
		}
	}
	return nil
}

func (s *Service) printKeys(lines []string) {
	for _, line := range lines {
		info := knownhosts.Inspect(line)
		if info.Err != nil {
			s.Out.Subtle("      " + i18n.T("list.unparsable", info.Err))
			continue
		}
		detail := info.Type + " " + info.Fingerprint
		if info.Marker != "" {
			detail = "@" + info.Marker + " " + detail
		}
		s.Out.Subtle("      " + detail)
	}
}

// Groups returns the host groups of the file for interactive selection. A
// missing or blank file prints the usual notice and yields no groups.
func (s *Service) Groups(ctx context.Context) ([]knownhosts.HostCount, error) {
	doc, ok, err := s.load()
	if err != nil || !ok {
		return nil, err
	}
	if doc.IsBlank() {
		s.Out.Println(i18n.T("list.empty"))
		return nil, nil
	}
	return knownhosts.Summarize(doc.Lines), nil
}

// load reads the file. ok is false, with the notice already printed, when the
// file does not exist.
func (s *Service) load() (doc *knownhosts.Document, ok bool, err error) {
	logging.Debugf("reading %s", s.Path)
	doc, err = knownhosts.Load(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		s.Out.Println(i18n.T("known_hosts.not_found", s.Path))
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return doc, true, nil
}
