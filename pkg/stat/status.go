package stat

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Status is an immutable file status snapshot. It reflects the state of a path
// at the moment of its creation; later changes on disk aren't reflected.
type Status struct {
	path             string
	accessTime       time.Time
	changeTime       time.Time
	modificationTime time.Time
	size             uint64
	blockSize        uint64
	blockSizeKnown   bool
	userSID          string
	groupSID         string
	uid              uint32
	gid              uint32
	owned            bool
	groupOwned       bool
	links            uint32
	device           uint32
	deviceKnown      bool
	inode            uint64
	inodeKnown       bool
	rdev             int
	flags            Flags
	fileType         FileType
	blockDevice      bool
	symlink          bool
	linkTarget       string
	executable       bool
	mode             Mode
}

// Path returns the normalized path for which the status was created.
func (s *Status) Path() string {
	return s.path
}

// AccessTime returns the last access time.
func (s *Status) AccessTime() time.Time {
	return s.accessTime
}

// ChangeTime returns the change time. The platform has no inode change time,
// so this is the creation time of the file.
func (s *Status) ChangeTime() time.Time {
	return s.changeTime
}

// ModificationTime returns the last modification time.
func (s *Status) ModificationTime() time.Time {
	return s.modificationTime
}

// Size returns the size of the file in bytes.
func (s *Status) Size() uint64 {
	return s.size
}

// NonZeroSize returns the size of the file and true if the size is non-zero.
func (s *Status) NonZeroSize() (uint64, bool) {
	return s.size, s.size > 0
}

// Zero indicates whether or not the file is empty.
func (s *Status) Zero() bool {
	return s.size == 0
}

// BlockSize returns the allocation unit size of the file's volume. The result
// is unknown for network shares whose geometry can't be queried.
func (s *Status) BlockSize() (uint64, bool) {
	return s.blockSize, s.blockSizeKnown
}

// Blocks returns the number of allocation units needed to hold the file,
// rounded up. It is 0 if the block size is 0 and unknown if the block size is
// unknown.
func (s *Status) Blocks() (uint64, bool) {
	if !s.blockSizeKnown {
		return 0, false
	} else if s.blockSize == 0 {
		return 0, true
	}
	blocks := s.size / s.blockSize
	if s.size%s.blockSize != 0 {
		blocks++
	}
	return blocks, true
}

// UserSID returns the textual SID of the file's owner.
func (s *Status) UserSID() string {
	return s.userSID
}

// GroupSID returns the textual SID of the file's primary group.
func (s *Status) GroupSID() string {
	return s.groupSID
}

// UID returns the relative identifier of the file owner's SID.
func (s *Status) UID() uint32 {
	return s.uid
}

// GID returns the relative identifier of the file group's SID.
func (s *Status) GID() uint32 {
	return s.gid
}

// Owned indicates whether or not the current process's user owns the file.
func (s *Status) Owned() bool {
	return s.owned
}

// GroupOwned indicates whether or not the current process's primary group is
// the file's group.
func (s *Status) GroupOwned() bool {
	return s.groupOwned
}

// Links returns the number of hard links to the file. It is 1 if metadata was
// acquired from the file's directory entry.
func (s *Status) Links() uint32 {
	return s.links
}

// Device returns the serial number of the file's volume, if known.
func (s *Status) Device() (uint32, bool) {
	return s.device, s.deviceKnown
}

// Inode returns the file index, if known.
func (s *Status) Inode() (uint64, bool) {
	return s.inode, s.inodeKnown
}

// RDev returns the drive number of the file's volume (0 for A: through 25 for
// Z:), or -1 if the file doesn't reside on a lettered drive.
func (s *Status) RDev() int {
	return s.rdev
}

// Flags returns the classified attribute flags.
func (s *Status) Flags() Flags {
	return s.flags
}

// Archive indicates whether or not the file is marked for archiving.
func (s *Status) Archive() bool {
	return s.flags.Archive
}

// Compressed indicates whether or not the file is compressed.
func (s *Status) Compressed() bool {
	return s.flags.Compressed
}

// Directory indicates whether or not the file is a directory.
func (s *Status) Directory() bool {
	return s.flags.Directory
}

// Encrypted indicates whether or not the file is encrypted.
func (s *Status) Encrypted() bool {
	return s.flags.Encrypted
}

// Hidden indicates whether or not the file is hidden.
func (s *Status) Hidden() bool {
	return s.flags.Hidden
}

// ContentIndexed indicates whether or not the file's content is indexed.
func (s *Status) ContentIndexed() bool {
	return s.flags.ContentIndexed
}

// Normal indicates whether or not the file has no other attributes set.
func (s *Status) Normal() bool {
	return s.flags.Normal
}

// Offline indicates whether or not the file's data isn't immediately
// available.
func (s *Status) Offline() bool {
	return s.flags.Offline
}

// Readonly indicates whether or not the file is read-only.
func (s *Status) Readonly() bool {
	return s.flags.Readonly
}

// ReparsePoint indicates whether or not the file is a reparse point.
func (s *Status) ReparsePoint() bool {
	return s.flags.ReparsePoint
}

// Sparse indicates whether or not the file is sparse.
func (s *Status) Sparse() bool {
	return s.flags.Sparse
}

// System indicates whether or not the file is used by the operating system.
func (s *Status) System() bool {
	return s.flags.System
}

// Temporary indicates whether or not the file is marked as temporary.
func (s *Status) Temporary() bool {
	return s.flags.Temporary
}

// BlockDevice indicates whether or not the file resides on removable media, a
// CD-ROM, or a RAM disk.
func (s *Status) BlockDevice() bool {
	return s.blockDevice
}

// CharacterDevice indicates whether or not the file is a character device.
func (s *Status) CharacterDevice() bool {
	return s.fileType == FileTypeCharacter
}

// Regular indicates whether or not the file is a regular on-disk file.
func (s *Status) Regular() bool {
	return s.fileType == FileTypeDisk && !s.flags.Directory
}

// Pipe indicates whether or not the file is a pipe.
func (s *Status) Pipe() bool {
	return s.fileType == FileTypePipe
}

// Socket is equivalent to Pipe, since the platform doesn't distinguish them.
func (s *Status) Socket() bool {
	return s.Pipe()
}

// Symlink indicates whether or not the file is a symbolic link.
func (s *Status) Symlink() bool {
	return s.symlink
}

// LinkTarget returns the target of a symbolic link. It is empty if the file
// isn't a symbolic link or if its target couldn't be read.
func (s *Status) LinkTarget() string {
	return s.linkTarget
}

// Executable indicates whether or not the file carries an executable
// extension (.bat, .cmd, .com, or .exe).
func (s *Status) Executable() bool {
	return s.executable
}

// ExecutableReal is equivalent to Executable.
func (s *Status) ExecutableReal() bool {
	return s.executable
}

// Readable always returns true.
func (s *Status) Readable() bool {
	return true
}

// ReadableReal always returns true.
func (s *Status) ReadableReal() bool {
	return true
}

// Writable always returns true.
func (s *Status) Writable() bool {
	return true
}

// WritableReal always returns true.
func (s *Status) WritableReal() bool {
	return true
}

// Setuid always returns false.
func (s *Status) Setuid() bool {
	return false
}

// Setgid always returns false.
func (s *Status) Setgid() bool {
	return false
}

// Sticky always returns false.
func (s *Status) Sticky() bool {
	return false
}

// Mode returns the synthesized POSIX-style mode.
func (s *Status) Mode() Mode {
	return s.mode
}

// FileType identifies the type of the file as one of "directory",
// "characterSpecial", "file", "socket", "blockSpecial", or "unknown".
func (s *Status) FileType() string {
	if s.flags.Directory {
		return "directory"
	}
	switch s.fileType {
	case FileTypeCharacter:
		return "characterSpecial"
	case FileTypeDisk:
		return "file"
	case FileTypePipe:
		return "socket"
	default:
		if s.blockDevice {
			return "blockSpecial"
		}
		return "unknown"
	}
}

// Compare orders statuses by modification time. It returns -1, 0, or 1 if s
// was modified before, at the same time as, or after other, respectively. No
// other fields are considered.
func (s *Status) Compare(other *Status) int {
	if s.modificationTime.Before(other.modificationTime) {
		return -1
	} else if s.modificationTime.After(other.modificationTime) {
		return 1
	}
	return 0
}

// unknownValue is the textual representation of unknown values.
const unknownValue = "nil"

// Field is a named, textually rendered status field.
type Field struct {
	// Name is the field name.
	Name string
	// Value is the rendered field value.
	Value string
}

// Fields returns every field of the status, sorted by name. Booleans are
// rendered as true or false and the mode in octal. Unknown values and absent
// link targets are rendered as nil.
func (s *Status) Fields() []Field {
	blockSize, blocks, device, inode := unknownValue, unknownValue, unknownValue, unknownValue
	linkTarget := unknownValue
	if value, ok := s.BlockSize(); ok {
		blockSize = strconv.FormatUint(value, 10)
	}
	if value, ok := s.Blocks(); ok {
		blocks = strconv.FormatUint(value, 10)
	}
	if value, ok := s.Device(); ok {
		device = strconv.FormatUint(uint64(value), 10)
	}
	if value, ok := s.Inode(); ok {
		inode = strconv.FormatUint(value, 10)
	}
	if s.linkTarget != "" {
		linkTarget = s.linkTarget
	}

	fields := []Field{
		{"archive", strconv.FormatBool(s.Archive())},
		{"atime", s.accessTime.String()},
		{"blksize", blockSize},
		{"blockdev", strconv.FormatBool(s.BlockDevice())},
		{"blocks", blocks},
		{"chardev", strconv.FormatBool(s.CharacterDevice())},
		{"compressed", strconv.FormatBool(s.Compressed())},
		{"ctime", s.changeTime.String()},
		{"dev", device},
		{"directory", strconv.FormatBool(s.Directory())},
		{"encrypted", strconv.FormatBool(s.Encrypted())},
		{"executable", strconv.FormatBool(s.Executable())},
		{"executable_real", strconv.FormatBool(s.ExecutableReal())},
		{"file", strconv.FormatBool(s.Regular())},
		{"ftype", s.FileType()},
		{"gid", strconv.FormatUint(uint64(s.gid), 10)},
		{"group_sid", s.groupSID},
		{"grpowned", strconv.FormatBool(s.GroupOwned())},
		{"hidden", strconv.FormatBool(s.Hidden())},
		{"indexed", strconv.FormatBool(s.ContentIndexed())},
		{"ino", inode},
		{"link_target", linkTarget},
		{"mode", s.mode.String()},
		{"mtime", s.modificationTime.String()},
		{"nlink", strconv.FormatUint(uint64(s.links), 10)},
		{"normal", strconv.FormatBool(s.Normal())},
		{"offline", strconv.FormatBool(s.Offline())},
		{"owned", strconv.FormatBool(s.Owned())},
		{"path", s.path},
		{"pipe", strconv.FormatBool(s.Pipe())},
		{"rdev", strconv.Itoa(s.rdev)},
		{"readable", strconv.FormatBool(s.Readable())},
		{"readable_real", strconv.FormatBool(s.ReadableReal())},
		{"readonly", strconv.FormatBool(s.Readonly())},
		{"reparse_point", strconv.FormatBool(s.ReparsePoint())},
		{"setgid", strconv.FormatBool(s.Setgid())},
		{"setuid", strconv.FormatBool(s.Setuid())},
		{"size", strconv.FormatUint(s.size, 10)},
		{"sparse", strconv.FormatBool(s.Sparse())},
		{"sticky", strconv.FormatBool(s.Sticky())},
		{"symlink", strconv.FormatBool(s.Symlink())},
		{"system", strconv.FormatBool(s.System())},
		{"temporary", strconv.FormatBool(s.Temporary())},
		{"uid", strconv.FormatUint(uint64(s.uid), 10)},
		{"user_sid", s.userSID},
		{"writable", strconv.FormatBool(s.Writable())},
		{"writable_real", strconv.FormatBool(s.WritableReal())},
	}
	sort.Slice(fields, func(i, j int) bool {
		return fields[i].Name < fields[j].Name
	})
	return fields
}

// String renders every field of the status on a single line.
func (s *Status) String() string {
	var builder strings.Builder
	builder.WriteString("#<stat.Status")
	for _, field := range s.Fields() {
		fmt.Fprintf(&builder, " %s=%s", field.Name, field.Value)
	}
	builder.WriteString(">")
	return builder.String()
}
