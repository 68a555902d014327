// Package logging constructs the application logger with standard settings.
package logging

import (
	"os"

	"github.com/hashicorp/go-hclog"
)

// New creates a named hclog logger. The level comes from RUNCAT_LOG_LEVEL
// and defaults to info.
func New(name string) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:  name,
		Level: hclog.LevelFromString(logLevel()),
	})
}

func logLevel() string {
	if level := os.Getenv("RUNCAT_LOG_LEVEL"); level != "" {
		return level
	}
	return "info"
}
