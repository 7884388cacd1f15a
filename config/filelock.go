package config

import (
	"os"
	"path/filepath"
)

const lockFileName = "kbheight.lock"

// FileLock serializes access to the files in the config directory across
// processes. It locks a sibling lock file rather than the data file itself, so
// the data file can be replaced while the lock is held.
type FileLock struct {
	path string
	file *os.File
}

// NewFileLock creates a FileLock guarding the file at path.
func NewFileLock(path string) *FileLock {
	return &FileLock{
		path: filepath.Join(filepath.Dir(path), lockFileName),
	}
}

// held reports whether this FileLock currently holds its lock.
func (l *FileLock) held() bool {
	return l.file != nil
}

// withLock runs fn while holding an exclusive lock next to path.
func withLock(path string, fn func() error) error {
	lock := NewFileLock(path)
	if err := lock.Lock(); err != nil {
		return err
	}
	defer lock.Unlock()
	return fn()
}
