// Copyright (c) 2026 Keymaster Team
// ssr - SSH known_hosts manager
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"context"

	"github.com/toeirei/ssr/internal/audit"
	"github.com/toeirei/ssr/internal/i18n"
	"github.com/toeirei/ssr/internal/knownhosts"
	"github.com/toeirei/ssr/internal/logging"
)

// RemoveOptions tunes Remove.
type RemoveOptions struct {
	// DryRun reports what would be removed and leaves the file alone.
	DryRun bool
}

// Remove drops every entry m matches and rewrites the file with the rest.
// label names the target in user-facing messages. It returns the number of
// removed entries.
//
// The file is truncated and rewritten in place; an I/O error during the
// write may leave it partially written.
func (s *Service) Remove(ctx context.Context, label string, m knownhosts.Matcher, opts RemoveOptions) (int, error) {
	doc, ok, err := s.load()
	if err != nil || !ok {
		return 0, err
	}
	if v, ok := m.(knownhosts.Validator); ok {
		if err := v.Validate(); err != nil {
			return 0, err
		}
	}

	if s.Lock && !opts.DryRun {
		lockCtx := ctx
		if s.LockTimeout > 0 {
			var cancel context.CancelFunc
			lockCtx, cancel = context.WithTimeout(ctx, s.LockTimeout)
			defer cancel()
		}
		unlock, err := knownhosts.Lock(lockCtx, s.Path)
		if err != nil {
			return 0, err
		}
		defer func() {
			if err := unlock(); err != nil {
				logging.Warnf("could not release lock on %s: %v", s.Path, err)
			}
		}()
		logging.Debugf("locked %s", knownhosts.LockPath(s.Path))
		// Re-read under the lock so the rewrite starts from the latest content.
		if doc, err = knownhosts.Load(s.Path); err != nil {
			return 0, err
		}
	}

	kept, removed := knownhosts.Filter(doc.Lines, m)
	for _, r := range removed {
		s.Out.Removed(i18n.T("remove.removing", r.HostField))
	}
	if len(removed) == 0 {
		s.Out.Println(i18n.T("remove.no_match", label))
		return 0, nil
	}
	if opts.DryRun {
		s.Out.Println(i18n.T("remove.dry_run", len(removed), label))
		return len(removed), nil
	}

	if s.Backup {
		dst, err := knownhosts.WriteBackup(s.Path, doc.Raw)
		if err != nil {
			return 0, err
		}
		logging.Infof("backup written to %s", dst)
	}
	if err := knownhosts.WriteLines(s.Path, kept); err != nil {
		return 0, err
	}
	s.Out.Success(i18n.T("remove.success", len(removed), label))

	s.record(ctx, label, removed)
	return len(removed), nil
}

// record journals removed entries. Journal failures never fail the removal,
// the file has already been rewritten.
func (s *Service) record(ctx context.Context, label string, removed []knownhosts.Removed) {
	if s.Journal == nil {
		return
	}
	rows := make([]audit.Removal, 0, len(removed))
	for _, r := range removed {
		rows = append(rows, audit.Removal{
			Path:      s.Path,
			Target:    label,
			HostField: r.HostField,
			Line:      r.Line,
		})
	}
	if err := s.Journal.Record(ctx, rows); err != nil {
		logging.Warnf("could not record removals in journal: %v", err)
		return
	}
	logging.Debugf("journaled %d removal(s)", len(rows))
}
