//go:build !windows

// Package process stops the headless browser started for PDF export.
package process

import "syscall"

// KillProcessGroup kills the browser and all its children by sending SIGKILL
// to the process group (negative PID).
func KillProcessGroup(pid int) {
	// Best-effort; the launcher's own Kill runs afterwards
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
