//go:build !windows

package stat

import (
	"fmt"
)

// errnoNames are descriptions for the native error codes that the package
// inspects.
var errnoNames = map[Errno]string{
	ErrnoSuccess:            "the operation completed successfully",
	ErrnoFileNotFound:       "the system cannot find the file specified",
	ErrnoPathNotFound:       "the system cannot find the path specified",
	ErrnoAccessDenied:       "access is denied",
	ErrnoNoMoreFiles:        "there are no more files",
	ErrnoSharingViolation:   "the process cannot access the file because it is being used by another process",
	ErrnoInsufficientBuffer: "the data area passed to a system call is too small",
}

// errnoMessage returns a description for a native error code.
func errnoMessage(e Errno) string {
	if name, ok := errnoNames[e]; ok {
		return name
	}
	return fmt.Sprintf("native error %d", uint32(e))
}
