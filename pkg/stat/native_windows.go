package stat

import (
	"unsafe"

	"github.com/pkg/errors"

	"golang.org/x/sys/windows"

	"github.com/Microsoft/go-winio"

	"github.com/mutagen-io/winstat/pkg/logging"
	"github.com/mutagen-io/winstat/pkg/must"
)

var (
	// kernel32 is the kernel32 system library.
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")
	// advapi32 is the advapi32 system library.
	advapi32 = windows.NewLazySystemDLL("advapi32.dll")

	// procGetFileType is GetFileType. It's invoked directly (rather than via
	// windows.GetFileType) so that an unknown type without an error can be
	// distinguished from a failure.
	procGetFileType = kernel32.NewProc("GetFileType")
	// procGetDiskFreeSpaceW is GetDiskFreeSpaceW.
	procGetDiskFreeSpaceW = kernel32.NewProc("GetDiskFreeSpaceW")
	// procGetFileSecurityW is GetFileSecurityW.
	procGetFileSecurityW = advapi32.NewProc("GetFileSecurityW")
)

// nativeError converts an error returned by a system call to an Errno.
func nativeError(err error) error {
	var errno windows.Errno
	if errors.As(err, &errno) {
		return Errno(errno)
	}
	return err
}

// fileHandle is an open file handle.
type fileHandle windows.Handle

// Close implements io.Closer.Close.
func (h fileHandle) Close() error {
	return nativeError(windows.CloseHandle(windows.Handle(h)))
}

// tokenHandle is an open process token.
type tokenHandle windows.Token

// Close implements io.Closer.Close.
func (t tokenHandle) Close() error {
	return nativeError(windows.Token(t).Close())
}

// findHandle is an open directory search handle.
type findHandle windows.Handle

// Close implements io.Closer.Close.
func (h findHandle) Close() error {
	return nativeError(windows.FindClose(windows.Handle(h)))
}

// windowsNative is the Windows implementation of Native.
type windowsNative struct {
	// logger is the logger for handle release failures.
	logger *logging.Logger
}

// DefaultNative returns the native call interface for the current platform.
// The logger may be nil.
func DefaultNative(logger *logging.Logger) Native {
	return windowsNative{logger: logger}
}

// Open implements Native.Open.
func (windowsNative) Open(path string) (Handle, error) {
	path16, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil, err
	}
	handle, err := windows.CreateFile(
		path16,
		windows.GENERIC_READ,
		windows.FILE_SHARE_READ,
		nil,
		windows.OPEN_EXISTING,
		windows.FILE_FLAG_BACKUP_SEMANTICS|windows.FILE_FLAG_OPEN_REPARSE_POINT,
		0,
	)
	if err != nil {
		return nil, nativeError(err)
	}
	return fileHandle(handle), nil
}

// FileType implements Native.FileType.
func (windowsNative) FileType(handle Handle) (FileType, error) {
	h, ok := handle.(fileHandle)
	if !ok {
		panic("handle is not a file handle")
	}
	r0, _, err := procGetFileType.Call(uintptr(h))
	if fileType := FileType(r0); fileType != FileTypeUnknown {
		return fileType, nil
	} else if errno, ok := err.(windows.Errno); ok && errno != windows.ERROR_SUCCESS {
		return FileTypeUnknown, Errno(errno)
	}
	return FileTypeUnknown, nil
}

// convertFiletime converts a native timestamp.
func convertFiletime(f windows.Filetime) Filetime {
	return Filetime{LowDateTime: f.LowDateTime, HighDateTime: f.HighDateTime}
}

// FileInformation implements Native.FileInformation.
func (windowsNative) FileInformation(handle Handle) (*FileInformation, error) {
	h, ok := handle.(fileHandle)
	if !ok {
		panic("handle is not a file handle")
	}
	var data windows.ByHandleFileInformation
	if err := windows.GetFileInformationByHandle(windows.Handle(h), &data); err != nil {
		return nil, nativeError(err)
	}
	return &FileInformation{
		EntryMetadata: EntryMetadata{
			Attributes:     Attributes(data.FileAttributes),
			CreationTime:   convertFiletime(data.CreationTime),
			LastAccessTime: convertFiletime(data.LastAccessTime),
			LastWriteTime:  convertFiletime(data.LastWriteTime),
			FileSizeHigh:   data.FileSizeHigh,
			FileSizeLow:    data.FileSizeLow,
		},
		VolumeSerialNumber: data.VolumeSerialNumber,
		NumberOfLinks:      data.NumberOfLinks,
		FileIndexHigh:      data.FileIndexHigh,
		FileIndexLow:       data.FileIndexLow,
	}, nil
}

// FindEntry implements Native.FindEntry.
func (n windowsNative) FindEntry(path string) (*FindData, error) {
	path16, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil, err
	}
	var data windows.Win32finddata
	handle, err := windows.FindFirstFile(path16, &data)
	if err != nil {
		return nil, nativeError(err)
	}
	must.Close(findHandle(handle), n.logger)
	return &FindData{
		EntryMetadata: EntryMetadata{
			Attributes:     Attributes(data.FileAttributes),
			CreationTime:   convertFiletime(data.CreationTime),
			LastAccessTime: convertFiletime(data.LastAccessTime),
			LastWriteTime:  convertFiletime(data.LastWriteTime),
			FileSizeHigh:   data.FileSizeHigh,
			FileSizeLow:    data.FileSizeLow,
		},
		ReparseTag: data.Reserved0,
	}, nil
}

// rootPointer converts a root path for use in drive queries. An empty root
// yields a nil pointer, which refers to the root of the current directory.
func rootPointer(root string) (*uint16, error) {
	if root == "" {
		return nil, nil
	}
	return windows.UTF16PtrFromString(root)
}

// DriveType implements Native.DriveType.
func (windowsNative) DriveType(root string) DriveType {
	root16, err := rootPointer(root)
	if err != nil {
		return DriveTypeNoRootDirectory
	}
	return DriveType(windows.GetDriveType(root16))
}

// DiskGeometry implements Native.DiskGeometry.
func (windowsNative) DiskGeometry(root string) (*DiskGeometry, error) {
	root16, err := rootPointer(root)
	if err != nil {
		return nil, err
	}
	var sectorsPerCluster, bytesPerSector, freeClusters, totalClusters uint32
	r0, _, err := procGetDiskFreeSpaceW.Call(
		uintptr(unsafe.Pointer(root16)),
		uintptr(unsafe.Pointer(&sectorsPerCluster)),
		uintptr(unsafe.Pointer(&bytesPerSector)),
		uintptr(unsafe.Pointer(&freeClusters)),
		uintptr(unsafe.Pointer(&totalClusters)),
	)
	if r0 == 0 {
		return nil, nativeError(err)
	}
	return &DiskGeometry{
		SectorsPerCluster: sectorsPerCluster,
		BytesPerSector:    bytesPerSector,
	}, nil
}

// FileSecurity implements Native.FileSecurity.
func (windowsNative) FileSecurity(path string, information SecurityInformation, descriptor []byte) (uint32, error) {
	path16, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, err
	}
	var buffer *byte
	if len(descriptor) > 0 {
		buffer = &descriptor[0]
	}
	var needed uint32
	r0, _, err := procGetFileSecurityW.Call(
		uintptr(unsafe.Pointer(path16)),
		uintptr(information),
		uintptr(unsafe.Pointer(buffer)),
		uintptr(len(descriptor)),
		uintptr(unsafe.Pointer(&needed)),
	)
	if r0 == 0 {
		return needed, nativeError(err)
	}
	return needed, nil
}

// DescriptorSID implements Native.DescriptorSID.
func (windowsNative) DescriptorSID(descriptor []byte, information SecurityInformation) (string, error) {
	if len(descriptor) == 0 {
		return "", Errno(windows.ERROR_INVALID_SECURITY_DESCR)
	}
	sd := (*windows.SECURITY_DESCRIPTOR)(unsafe.Pointer(&descriptor[0]))

	var sid *windows.SID
	var err error
	switch information {
	case SecurityInformationOwner:
		sid, _, err = sd.Owner()
	case SecurityInformationGroup:
		sid, _, err = sd.Group()
	default:
		panic("unsupported security information")
	}
	if err != nil {
		return "", nativeError(err)
	} else if sid == nil {
		return "", Errno(windows.ERROR_INVALID_SID)
	}
	return sid.String(), nil
}

// OpenProcessToken implements Native.OpenProcessToken.
func (windowsNative) OpenProcessToken() (Handle, error) {
	var token windows.Token
	if err := windows.OpenProcessToken(windows.CurrentProcess(), windows.TOKEN_QUERY, &token); err != nil {
		return nil, nativeError(err)
	}
	return tokenHandle(token), nil
}

// TokenSID implements Native.TokenSID.
func (windowsNative) TokenSID(token Handle, class TokenClass) (string, error) {
	t, ok := token.(tokenHandle)
	if !ok {
		panic("handle is not a process token")
	}
	switch class {
	case TokenClassUser:
		user, err := windows.Token(t).GetTokenUser()
		if err != nil {
			return "", nativeError(err)
		}
		return user.User.Sid.String(), nil
	case TokenClassPrimaryGroup:
		group, err := windows.Token(t).GetTokenPrimaryGroup()
		if err != nil {
			return "", nativeError(err)
		}
		return group.PrimaryGroup.String(), nil
	default:
		panic("unsupported token class")
	}
}

// FullPath implements Native.FullPath.
func (windowsNative) FullPath(path string) (string, error) {
	path16, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return "", err
	}
	buffer := make([]uint16, windows.MAX_PATH)
	for {
		n, err := windows.GetFullPathName(path16, uint32(len(buffer)), &buffer[0], nil)
		if err != nil {
			return "", nativeError(err)
		} else if n <= uint32(len(buffer)) {
			return windows.UTF16ToString(buffer[:n]), nil
		}
		buffer = make([]uint16, n)
	}
}

// LinkTarget implements Native.LinkTarget.
func (n windowsNative) LinkTarget(path string) (string, error) {
	handle, err := n.Open(path)
	if err != nil {
		return "", err
	}
	defer must.Close(handle, n.logger)

	buffer := make([]byte, windows.MAXIMUM_REPARSE_DATA_BUFFER_SIZE)
	var returned uint32
	if err := windows.DeviceIoControl(
		windows.Handle(handle.(fileHandle)),
		windows.FSCTL_GET_REPARSE_POINT,
		nil,
		0,
		&buffer[0],
		uint32(len(buffer)),
		&returned,
		nil,
	); err != nil {
		return "", nativeError(err)
	}

	reparsePoint, err := winio.DecodeReparsePoint(buffer[:returned])
	if err != nil {
		return "", err
	}
	return reparsePoint.Target, nil
}
