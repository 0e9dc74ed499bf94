// Copyright (c) 2026 Keymaster Team
// ssr - SSH known_hosts manager
// This source code is licensed under the MIT license found in the LICENSE file.

package knownhosts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another process holds the advisory lock.
var ErrLocked = errors.New("known_hosts is locked by another process")

// LockRetryDelay is the polling interval while waiting for the lock.
var LockRetryDelay = 50 * time.Millisecond

// LockPath returns the side file used for advisory locking of path.
func LockPath(path string) string { return path + ".lock" }

// Lock takes an exclusive advisory lock for path, waiting until ctx is done.
// Only other ssr processes honour it; ssh itself does not.
func Lock(ctx context.Context, path string) (unlock func() error, err error) {
	fl := flock.New(LockPath(path))
	ok, err := fl.TryLockContext(ctx, LockRetryDelay)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %v", ErrLocked, err)
		}
		return nil, fmt.Errorf("lock %s: %w", LockPath(path), err)
	}
	if !ok {
		return nil, ErrLocked
	}
	return fl.Unlock, nil
}
