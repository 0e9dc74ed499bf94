// Copyright (c) 2026 Keymaster Team
// ssr - SSH known_hosts manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package core implements the list and remove operations on a known_hosts
// file. UI layers resolve the path and configuration, build a Service and
// call it; everything user-visible goes through the Service's Printer.
package core

import (
	"context"
	"time"

	"github.com/toeirei/ssr/internal/audit"
)

// Journal records removed entries. *audit.Journal satisfies it.
type Journal interface {
	Record(ctx context.Context, removals []audit.Removal) error
	Recent(ctx context.Context, limit int) ([]audit.Removal, error)
}

// Service operates on the known_hosts file at Path.
type Service struct {
	Path string
	Out  *Printer

	// Lock holds an advisory lock across read-modify-write.
	Lock bool
	// LockTimeout bounds the wait for the lock. Zero waits as long as the
	// context allows.
	LockTimeout time.Duration
	// Backup writes a compressed copy of the file before rewriting it.
	Backup bool
	// Journal, when non-nil, receives every removed entry.
	Journal Journal
}

// NewService returns a Service with no optional features enabled.
func NewService(path string, out *Printer) *Service {
	return &Service{Path: path, Out: out}
}
