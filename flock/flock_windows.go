//go:build windows

package flock

import "fmt"
import "syscall"
import "unsafe"

type handle = syscall.Handle

const lockfileExclusiveLock = 2

var (
	modkernel32      = syscall.NewLazyDLL("kernel32.dll")
	procLockFileEx   = modkernel32.NewProc("LockFileEx")
	procUnlockFileEx = modkernel32.NewProc("UnlockFileEx")
)

// Open the lock file at `path`, creating it if missing.
func Open(path string) (*Filelock, error) {
	name, err := syscall.UTF16PtrFromString(path)
	if err != nil {
		return nil, err
	}
	fd, err := syscall.CreateFile(
		name, syscall.GENERIC_READ|syscall.GENERIC_WRITE,
		syscall.FILE_SHARE_READ|syscall.FILE_SHARE_WRITE,
		nil, syscall.OPEN_ALWAYS, syscall.FILE_ATTRIBUTE_NORMAL, 0)
	if err != nil {
		return nil, fmt.Errorf("flock.Open(%q): %w", path, err)
	}
	return &Filelock{path: path, fd: fd}, nil
}

// Lock block until the lock is acquired.
func (l *Filelock) Lock() error {
	l.mu.Lock()
	var ol syscall.Overlapped
	r1, _, e1 := syscall.Syscall6(
		procLockFileEx.Addr(), 6, uintptr(l.fd), lockfileExclusiveLock, 0,
		1, 0, uintptr(unsafe.Pointer(&ol)))
	if r1 == 0 {
		l.mu.Unlock()
		return fmt.Errorf("flock.Lock(%q): %w", l.path, errno(e1))
	}
	return nil
}

// Unlock release a lock acquired by Lock.
func (l *Filelock) Unlock() error {
	defer l.mu.Unlock()
	var ol syscall.Overlapped
	r1, _, e1 := syscall.Syscall6(
		procUnlockFileEx.Addr(), 5, uintptr(l.fd), 0, 1, 0,
		uintptr(unsafe.Pointer(&ol)), 0)
	if r1 == 0 {
		return fmt.Errorf("flock.Unlock(%q): %w", l.path, errno(e1))
	}
	return nil
}

// Close the lock file, any lock held is released.
func (l *Filelock) Close() error {
	return syscall.CloseHandle(l.fd)
}

func errno(e syscall.Errno) error {
	if e != 0 {
		return e
	}
	return syscall.EINVAL
}
