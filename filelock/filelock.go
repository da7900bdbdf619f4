package filelock

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrLocked is returned from Lock if the target is already locked.
var ErrLocked = errors.New("specified lockfile is locked")

// FileLock is a handle to an on-disk file lock.
type FileLock struct {
	path string
}

// Lock acquires a lock guarding the file at `filename` by creating
// `filename`.lck next to it. The lock file is created exclusively, so of two
// concurrent callers exactly one succeeds and the other gets ErrLocked.
func Lock(filename string) (*FileLock, error) {
	absolutePath, err := filepath.Abs(filename + ".lck")
	if err != nil {
		return nil, err
	}

	f, err := os.OpenFile(absolutePath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err != nil {
		if os.IsExist(err) {
			return nil, ErrLocked
		}
		return nil, err
	}
	if err = f.Close(); err != nil {
		os.Remove(absolutePath)
		return nil, err
	}

	return &FileLock{
		path: absolutePath,
	}, nil
}

// Path returns the absolute path of the lock file.
func (fl *FileLock) Path() string {
	return fl.path
}

// Unlock releases the FileLock.
func (fl *FileLock) Unlock() error {
	return os.Remove(fl.path)
}
