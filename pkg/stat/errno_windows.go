package stat

import (
	"golang.org/x/sys/windows"
)

// errnoMessage returns the system message for a native error code.
func errnoMessage(e Errno) string {
	return windows.Errno(e).Error()
}
