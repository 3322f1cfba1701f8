package stat

import (
	"io"
)

// Handle is an open native handle. Closing it releases the underlying
// resource.
type Handle io.Closer

// FileType is a native file type classification, as returned by GetFileType.
type FileType uint32

const (
	// FileTypeUnknown indicates an unknown file type.
	FileTypeUnknown FileType = 0x0000
	// FileTypeDisk indicates an on-disk file.
	FileTypeDisk FileType = 0x0001
	// FileTypeCharacter indicates a character device.
	FileTypeCharacter FileType = 0x0002
	// FileTypePipe indicates a pipe or socket.
	FileTypePipe FileType = 0x0003
)

// DriveType is a native drive type classification, as returned by
// GetDriveType.
type DriveType uint32

const (
	// DriveTypeUnknown indicates that the drive type couldn't be determined.
	DriveTypeUnknown DriveType = 0
	// DriveTypeNoRootDirectory indicates that the root path is invalid.
	DriveTypeNoRootDirectory DriveType = 1
	// DriveTypeRemovable indicates removable media.
	DriveTypeRemovable DriveType = 2
	// DriveTypeFixed indicates fixed media.
	DriveTypeFixed DriveType = 3
	// DriveTypeRemote indicates a network drive.
	DriveTypeRemote DriveType = 4
	// DriveTypeCDROM indicates a CD-ROM drive.
	DriveTypeCDROM DriveType = 5
	// DriveTypeRAMDisk indicates a RAM disk.
	DriveTypeRAMDisk DriveType = 6
)

// blockDevice indicates whether or not the drive type is treated as a block
// device.
func (t DriveType) blockDevice() bool {
	return t == DriveTypeRemovable || t == DriveTypeCDROM || t == DriveTypeRAMDisk
}

// SecurityInformation selects the component of a security descriptor to query.
type SecurityInformation uint32

const (
	// SecurityInformationOwner selects the owner SID.
	SecurityInformationOwner SecurityInformation = 0x00000001
	// SecurityInformationGroup selects the primary group SID.
	SecurityInformationGroup SecurityInformation = 0x00000002
)

// TokenClass selects the identity to extract from a process token.
type TokenClass uint32

const (
	// TokenClassUser selects the token's user SID.
	TokenClassUser TokenClass = 1
	// TokenClassPrimaryGroup selects the token's primary group SID.
	TokenClassPrimaryGroup TokenClass = 5
)

// ReparseTagSymbolicLink is the reparse tag identifying symbolic links
// (IO_REPARSE_TAG_SYMLINK).
const ReparseTagSymbolicLink uint32 = 0xA000000C

// Filetime is a native timestamp: the number of 100-nanosecond intervals since
// January 1, 1601 (UTC), split into 32-bit halves.
type Filetime struct {
	// LowDateTime is the low-order half of the timestamp.
	LowDateTime uint32
	// HighDateTime is the high-order half of the timestamp.
	HighDateTime uint32
}

// EntryMetadata is the metadata common to handle-based and
// directory-entry-based queries.
type EntryMetadata struct {
	// Attributes is the native attribute bitmask.
	Attributes Attributes
	// CreationTime is the creation time of the entry.
	CreationTime Filetime
	// LastAccessTime is the last access time of the entry.
	LastAccessTime Filetime
	// LastWriteTime is the last modification time of the entry.
	LastWriteTime Filetime
	// FileSizeHigh is the high-order half of the entry size.
	FileSizeHigh uint32
	// FileSizeLow is the low-order half of the entry size.
	FileSizeLow uint32
}

// Size returns the entry size in bytes.
func (m *EntryMetadata) Size() uint64 {
	return uint64(m.FileSizeHigh)<<32 + uint64(m.FileSizeLow)
}

// FileInformation is the result of a handle-based metadata query
// (BY_HANDLE_FILE_INFORMATION).
type FileInformation struct {
	EntryMetadata
	// VolumeSerialNumber is the serial number of the containing volume.
	VolumeSerialNumber uint32
	// NumberOfLinks is the number of hard links to the file.
	NumberOfLinks uint32
	// FileIndexHigh is the high-order half of the file index.
	FileIndexHigh uint32
	// FileIndexLow is the low-order half of the file index.
	FileIndexLow uint32
}

// FileIndex returns the 64-bit file index.
func (i *FileInformation) FileIndex() uint64 {
	return uint64(i.FileIndexHigh)<<32 | uint64(i.FileIndexLow)
}

// FindData is the result of a directory entry lookup (WIN32_FIND_DATA).
type FindData struct {
	EntryMetadata
	// ReparseTag is the reparse tag of the entry. It is only meaningful if the
	// reparse point attribute is set.
	ReparseTag uint32
}

// DiskGeometry is the allocation geometry of a volume.
type DiskGeometry struct {
	// SectorsPerCluster is the number of sectors in each allocation unit.
	SectorsPerCluster uint32
	// BytesPerSector is the number of bytes in each sector.
	BytesPerSector uint32
}

// AllocationUnit returns the size of an allocation unit in bytes.
func (g *DiskGeometry) AllocationUnit() uint64 {
	return uint64(g.SectorsPerCluster) * uint64(g.BytesPerSector)
}

// Native is the set of native calls consumed by the package. Failing calls
// should return an error that unwraps to an Errno carrying the native error
// code.
type Native interface {
	// Open opens a metadata handle for path with read access, read sharing,
	// backup semantics (so that directories can be opened), and without
	// following a reparse point at the path leaf.
	Open(path string) (Handle, error)
	// FileType classifies an open handle. An unknown type without an error
	// must be reported as FileTypeUnknown with a nil error.
	FileType(handle Handle) (FileType, error)
	// FileInformation queries full file information for an open handle.
	FileInformation(handle Handle) (*FileInformation, error)
	// FindEntry locates the single directory entry matching path.
	FindEntry(path string) (*FindData, error)
	// DriveType classifies the drive for a root path. An empty root refers to
	// the root of the current directory.
	DriveType(root string) DriveType
	// DiskGeometry queries the allocation geometry for a root path.
	DiskGeometry(root string) (*DiskGeometry, error)
	// FileSecurity copies the requested portion of the security descriptor
	// for path into descriptor and returns the number of bytes required to
	// hold it. If descriptor is too small, then an error is returned along
	// with the required size.
	FileSecurity(path string, information SecurityInformation, descriptor []byte) (uint32, error)
	// DescriptorSID extracts the owner or group SID from a security
	// descriptor and converts it to its textual form.
	DescriptorSID(descriptor []byte, information SecurityInformation) (string, error)
	// OpenProcessToken opens the identity token of the current process for
	// querying.
	OpenProcessToken() (Handle, error)
	// TokenSID queries an identity from a process token and converts it to
	// its textual form.
	TokenSID(token Handle, class TokenClass) (string, error)
	// FullPath resolves path to an absolute path.
	FullPath(path string) (string, error)
	// LinkTarget reads the target of the symbolic link at path. It may return
	// an empty string if the target can't be decoded on the platform.
	LinkTarget(path string) (string, error)
}
