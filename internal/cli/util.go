package cli

import (
	"os"
	"strconv"
	"strings"
	"syscall"
)

const pidFile = "/tmp/lootvault-watch.pid"

// WritePIDFile writes the process ID of the watch listener to a file
func WritePIDFile(pid int) error {
	return os.WriteFile(pidFile, []byte(strconv.Itoa(pid)), 0644)
}

// RemovePIDFile removes the PID file
func RemovePIDFile() {
	os.Remove(pidFile)
}

// IsWatcherRunning checks whether a watch listener is already running by
// reading the PID file and probing the recorded process.
func IsWatcherRunning() bool {
	data, err := os.ReadFile(pidFile)
	if err != nil {
		return false
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		// The PID file is corrupt
		os.Remove(pidFile)
		return false
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		os.Remove(pidFile)
		return false
	}

	// On Unix-like systems, os.FindProcess always succeeds, so send signal 0
	// to actually check if the process exists
	if err := process.Signal(syscall.Signal(0)); err != nil {
		os.Remove(pidFile)
		return false
	}

	return true
}
