// Package singleinstance implements the process-wide named lock that keeps a
// second launch from starting. On Windows the lock is a named mutex; on
// other platforms it is a pid lock file with stale-holder detection.
package singleinstance

import "errors"

// ErrAlreadyRunning reports that another live instance holds the lock. The
// second launch must exit immediately without side effects.
var ErrAlreadyRunning = errors.New("another instance is already running")
