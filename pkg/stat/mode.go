package stat

import (
	"fmt"

	"golang.org/x/text/cases"
)

// Mode is a synthesized POSIX-style mode, encoding type and permission bits.
type Mode uint32

const (
	// ModeTypeMask is a bit mask that isolates type information from a Mode.
	ModeTypeMask = Mode(0170000)
	// ModeTypeDirectory represents a directory.
	ModeTypeDirectory = Mode(0040000)
	// ModeTypeFile represents a regular file.
	ModeTypeFile = Mode(0100000)

	// ModePermissionsMask is a bit mask that isolates permission bits.
	ModePermissionsMask = Mode(0777)
	// ModePermissionUserRead is the user readable bit.
	ModePermissionUserRead = Mode(0400)
	// ModePermissionUserWrite is the user writable bit.
	ModePermissionUserWrite = Mode(0200)
	// ModePermissionUserExecute is the user executable bit.
	ModePermissionUserExecute = Mode(0100)
	// ModePermissionGroupRead is the group readable bit.
	ModePermissionGroupRead = Mode(0040)
	// ModePermissionGroupWrite is the group writable bit.
	ModePermissionGroupWrite = Mode(0020)
	// ModePermissionGroupExecute is the group executable bit.
	ModePermissionGroupExecute = Mode(0010)
	// ModePermissionOthersRead is the others readable bit.
	ModePermissionOthersRead = Mode(0004)
	// ModePermissionOthersWrite is the others writable bit.
	ModePermissionOthersWrite = Mode(0002)
	// ModePermissionOthersExecute is the others executable bit.
	ModePermissionOthersExecute = Mode(0001)

	// modePermissionUserMask isolates the user permission bits.
	modePermissionUserMask = Mode(0700)
)

// String renders the mode in octal with a leading zero.
func (m Mode) String() string {
	return fmt.Sprintf("0%o", uint32(m))
}

// executableExtensions are the (case-folded) file extensions treated as
// executable.
var executableExtensions = map[string]bool{
	".bat": true,
	".cmd": true,
	".com": true,
	".exe": true,
}

// extension returns the extension of the leaf component of a path, including
// the leading dot. Both separators are recognized. A leaf beginning with its
// only dot (e.g. ".profile") has no extension.
func extension(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		switch path[i] {
		case '\\', '/', ':':
			return ""
		case '.':
			if i == 0 || isSeparator(path[i-1]) || path[i-1] == ':' {
				return ""
			}
			return path[i:]
		}
	}
	return ""
}

// IsExecutableName determines whether or not the leaf of a path carries one of
// the executable extensions. The comparison is case-insensitive.
func IsExecutableName(path string) bool {
	ext := extension(path)
	if ext == "" {
		return false
	}
	return executableExtensions[cases.Fold().String(ext)]
}

// Synthesize computes a POSIX-style mode from classified attribute flags. User
// permissions are mirrored to group and others before group and others write
// permissions are cleared, since the platform has no separate notion of them.
func Synthesize(flags Flags, executable bool) Mode {
	// Entries are always readable, and writable unless marked read-only.
	mode := ModePermissionUserRead
	if !flags.Readonly {
		mode |= ModePermissionUserWrite
	}

	// Directories are always traversable.
	if flags.Directory {
		mode |= ModeTypeDirectory | ModePermissionUserExecute
	} else {
		mode |= ModeTypeFile
	}
	if executable {
		mode |= ModePermissionUserExecute
	}

	// Mirror user permissions to group and others.
	mode |= (mode & modePermissionUserMask) >> 3
	mode |= (mode & modePermissionUserMask) >> 6

	// Strip group and others write permissions.
	mode &^= ModePermissionGroupWrite | ModePermissionOthersWrite

	return mode
}
