// Package flock serialize writers of a shared file across processes,
// like concurrent benchmark runs appending to the same timings file.
package flock

import "sync"

// Filelock is an exclusive lock held on a lock file. Goroutines of
// the same process are serialized by the embedded mutex, other
// processes by the lock on the file.
type Filelock struct {
	mu   sync.Mutex
	path string
	fd   handle
}

// Path of the lock file.
func (l *Filelock) Path() string {
	return l.path
}

// With acquire the lock on `path`, call fn and release the lock.
// The lock file is created if missing and left in place.
func With(path string, fn func() error) error {
	l, err := Open(path)
	if err != nil {
		return err
	}
	defer l.Close()

	if err := l.Lock(); err != nil {
		return err
	}
	ferr := fn()
	if err := l.Unlock(); err != nil && ferr == nil {
		return err
	}
	return ferr
}
