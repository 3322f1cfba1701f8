//go:build !windows

package cmd

// HandleTerminalCompatibility automatically restarts the current process inside
// a terminal compatibility emulator if necessary. No terminal emulation is
// required on POSIX systems.
func HandleTerminalCompatibility() {}
