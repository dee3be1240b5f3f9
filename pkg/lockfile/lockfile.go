// Package lockfile provides the process singleton lock. Only one blind
// scan may drive a frontend at a time; the channels are not shareable.
package lockfile

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Lock is a held pidfile lock.
type Lock struct {
	path string
	file *os.File
}

// Acquire opens (creating if needed) the pidfile, takes an exclusive
// non-blocking flock on it and records our pid. A second process
// acquiring the same path fails immediately.
func Acquire(path string) (*Lock, error) {
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0664)
	if err != nil {
		return nil, fmt.Errorf("failed to open pidfile: %w", err)
	}

	if err := unix.Flock(int(file.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to lock %s (another scan running?): %w", path, err)
	}

	if err := file.Truncate(0); err != nil {
		unix.Flock(int(file.Fd()), unix.LOCK_UN)
		file.Close()
		return nil, fmt.Errorf("failed to truncate pidfile: %w", err)
	}
	if _, err := fmt.Fprintf(file, "%d\n", os.Getpid()); err != nil {
		unix.Flock(int(file.Fd()), unix.LOCK_UN)
		file.Close()
		return nil, fmt.Errorf("failed to write pidfile: %w", err)
	}

	return &Lock{path: path, file: file}, nil
}

// Release drops the lock and closes the pidfile. The file is left in
// place; the lock, not the file's existence, is what matters.
func (l *Lock) Release() {
	if l == nil || l.file == nil {
		return
	}
	unix.Flock(int(l.file.Fd()), unix.LOCK_UN)
	l.file.Close()
	l.file = nil
}
