//go:build windows

package main

import (
	"os/exec"

	"github.com/hashicorp/go-hclog"
)

// openTaskManager launches the system task manager. Best effort: the helper
// may be missing or blocked by policy, and that is not our problem to report.
func openTaskManager(log hclog.Logger) {
	cmd := exec.Command("taskmgr.exe")
	if err := cmd.Start(); err != nil {
		log.Debug("could not launch task manager", "error", err)
		return
	}
	go func() { _ = cmd.Wait() }()
}
