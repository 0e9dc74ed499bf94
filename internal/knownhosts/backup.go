// Copyright (c) 2026 Keymaster Team
// ssr - SSH known_hosts manager
// This source code is licensed under the MIT license found in the LICENSE file.

package knownhosts

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
)

// BackupPath returns where WriteBackup stores the copy of path.
func BackupPath(path string) string { return path + ".old.zst" }

// WriteBackup stores raw zstd-compressed next to path, replacing any
// previous backup.
func WriteBackup(path string, raw []byte) (string, error) {
	dst := BackupPath(path)
	file, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return "", fmt.Errorf("could not create backup: %w", err)
	}
	defer func() { _ = file.Close() }()

	zw, err := zstd.NewWriter(file)
	if err != nil {
		return "", fmt.Errorf("could not create zstd writer: %w", err)
	}
	if _, err := io.Copy(zw, bytes.NewReader(raw)); err != nil {
		_ = zw.Close()
		return "", fmt.Errorf("could not write backup: %w", err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("could not finish backup: %w", err)
	}
	return dst, file.Close()
}

// ReadBackup returns the decompressed contents of a backup file.
func ReadBackup(backupPath string) ([]byte, error) {
	file, err := os.Open(backupPath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	zr, err := zstd.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("could not create zstd reader: %w", err)
	}
	defer zr.Close()
	return io.ReadAll(zr)
}
