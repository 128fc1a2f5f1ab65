package utils

import (
	"fmt"
	"os"

	"github.com/gofrs/flock"
)

const lockFileSuffix = ".lock"

// DBLock guards the local settings database against concurrent pinmap
// processes writing the session slot at the same time.
type DBLock struct {
	lock *flock.Flock
	path string
}

// NewDBLock creates a lock next to the given database file.
func NewDBLock(dbPath string) *DBLock {
	lockPath := dbPath + lockFileSuffix
	return &DBLock{
		lock: flock.New(lockPath),
		path: lockPath,
	}
}

// Lock acquires the database lock, waiting if another process holds it.
func (l *DBLock) Lock() error {
	locked, err := l.lock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", l.path, err)
	}

	if !locked {
		fmt.Fprintf(os.Stderr, "Another pinmap process is writing to the database, waiting for it to finish...\n")
		if err := l.lock.Lock(); err != nil {
			return fmt.Errorf("failed to acquire lock on %s after waiting: %w", l.path, err)
		}
	}
	return nil
}

// Unlock releases the database lock.
func (l *DBLock) Unlock() error {
	if err := l.lock.Unlock(); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to release lock on %s: %w", l.path, err)
	}
	return nil
}
