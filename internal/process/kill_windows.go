//go:build windows

// Package process stops the headless browser started for PDF export.
package process

import (
	"os/exec"
	"strconv"
)

// KillProcessGroup kills the browser and all its children using taskkill.
// /F = force kill, /T = terminate child processes (tree kill).
func KillProcessGroup(pid int) {
	// Best-effort; the launcher's own Kill runs afterwards
	_ = exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run() // #nosec G204 -- pid is an int
}
