//go:build windows

package singleinstance

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// Lock holds the named mutex for the lifetime of the process.
type Lock struct {
	handle windows.Handle
}

// Acquire creates the named mutex. If another process already owns a mutex
// of the same name, Acquire returns ErrAlreadyRunning.
func Acquire(name string) (*Lock, error) {
	namePtr, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return nil, fmt.Errorf("encoding mutex name: %w", err)
	}

	handle, err := windows.CreateMutex(nil, false, namePtr)
	if err == windows.ERROR_ALREADY_EXISTS {
		if handle != 0 {
			windows.CloseHandle(handle)
		}
		return nil, ErrAlreadyRunning
	}
	if err != nil {
		return nil, fmt.Errorf("creating mutex: %w", err)
	}
	return &Lock{handle: handle}, nil
}

// Release closes the mutex handle.
func (l *Lock) Release() {
	if l.handle != 0 {
		windows.CloseHandle(l.handle)
		l.handle = 0
	}
}
