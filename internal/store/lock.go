package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/flock"

	"sctime/internal/config"
)

// ErrLocked is returned when another process holds the session lock.
var ErrLocked = errors.New("session data is locked by another process")

const lockRetryDelay = 50 * time.Millisecond

// Lock is an exclusive, cross-process lock on the data directory.
type Lock struct {
	lock *flock.Flock
	path string
}

// AcquireLock takes the data directory lock, retrying until ctx is done.
func AcquireLock(ctx context.Context, cfg *config.Config) (*Lock, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}
	path := cfg.LockPath()
	l := &Lock{lock: flock.New(path), path: path}

	ok, err := l.lock.TryLockContext(ensureContext(ctx), lockRetryDelay)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
		return nil, fmt.Errorf("acquire lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w (%s)", ErrLocked, path)
	}
	return l, nil
}

// Path returns the lock file location.
func (l *Lock) Path() string { return l.path }

// Release unlocks the data directory. It is safe to call more than once.
func (l *Lock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	if err := l.lock.Unlock(); err != nil {
		return fmt.Errorf("release lock %s: %w", l.path, err)
	}
	return nil
}
