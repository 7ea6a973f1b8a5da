package platform

import (
	"os"
	"runtime"
)

// IsPrivileged reports whether the process runs as root (e.g. under sudo).
// On Windows this always returns false because there is no euid.
func IsPrivileged() bool {
	if runtime.GOOS == "windows" {
		return false
	}
	return os.Geteuid() == 0
}

// InvokedViaSudo reports whether SUDO_USER is set, which names the real user
// behind an elevated shell.
func InvokedViaSudo() (string, bool) {
	u := os.Getenv("SUDO_USER")
	return u, u != ""
}
