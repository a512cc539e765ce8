//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

package flock

import "fmt"
import "syscall"

type handle = int

// Open the lock file at `path`, creating it if missing.
func Open(path string) (*Filelock, error) {
	fd, err := syscall.Open(path, syscall.O_CREAT|syscall.O_RDONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("flock.Open(%q): %w", path, err)
	}
	return &Filelock{path: path, fd: fd}, nil
}

// Lock block until the lock is acquired.
func (l *Filelock) Lock() error {
	l.mu.Lock()
	if err := syscall.Flock(l.fd, syscall.LOCK_EX); err != nil {
		l.mu.Unlock()
		return fmt.Errorf("flock.Lock(%q): %w", l.path, err)
	}
	return nil
}

// Unlock release a lock acquired by Lock.
func (l *Filelock) Unlock() error {
	defer l.mu.Unlock()
	if err := syscall.Flock(l.fd, syscall.LOCK_UN); err != nil {
		return fmt.Errorf("flock.Unlock(%q): %w", l.path, err)
	}
	return nil
}

// Close the lock file, any lock held is released.
func (l *Filelock) Close() error {
	return syscall.Close(l.fd)
}
