// Copyright (c) 2026 Keymaster Team
// ssr - SSH known_hosts manager
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"context"
	"time"

	"github.com/toeirei/ssr/internal/i18n"
)

// HistoryLimit caps the rows History prints.
const HistoryLimit = 50

// History prints the most recent journal records, newest first.
func (s *Service) History(ctx context.Context) error {
	if s.Journal == nil {
		s.Out.Println(i18n.T("list.history_disabled"))
		return nil
	}
	rows, err := s.Journal.Recent(ctx, HistoryLimit)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		s.Out.Println(i18n.T("list.history_none"))
		return nil
	}
	for _, r := range rows {
		s.Out.Println(i18n.T("list.history_row", r.RemovedAt.Local().Format(time.RFC3339), r.Username, r.HostField, r.Target))
		s.Out.Subtle("      " + r.Line)
	}
	return nil
}
