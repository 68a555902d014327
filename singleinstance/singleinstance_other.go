//go:build !windows

package singleinstance

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
)

// Lock holds the pid lock file for the lifetime of the process.
type Lock struct {
	path string
}

// Acquire takes the pid lock file named after the application. A lock file
// left behind by a dead process is treated as stale and replaced.
func Acquire(name string) (*Lock, error) {
	return acquireAt(filepath.Join(os.TempDir(), strings.ToLower(name)+".lock"))
}

func acquireAt(path string) (*Lock, error) {
	if data, err := os.ReadFile(path); err == nil {
		pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
		if err == nil && isProcessRunning(pid) {
			return nil, ErrAlreadyRunning
		}
		// Stale lock from a dead process, or unreadable contents.
		os.Remove(path)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return nil, ErrAlreadyRunning
		}
		return nil, fmt.Errorf("creating lock file: %w", err)
	}
	defer file.Close()

	if _, err := fmt.Fprintf(file, "%d", os.Getpid()); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("writing lock file: %w", err)
	}
	return &Lock{path: path}, nil
}

// isProcessRunning checks whether a process with the given pid exists.
// Signal 0 probes for existence without delivering anything.
func isProcessRunning(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return process.Signal(syscall.Signal(0)) == nil
}

// Release removes the lock file.
func (l *Lock) Release() {
	if l.path != "" {
		os.Remove(l.path)
		l.path = ""
	}
}
