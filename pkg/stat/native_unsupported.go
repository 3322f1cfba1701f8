//go:build !windows

package stat

import (
	"github.com/mutagen-io/winstat/pkg/logging"
)

// unsupportedNative is the Native implementation used on platforms without
// native support. All fallible calls fail with ErrUnsupportedPlatform.
type unsupportedNative struct{}

// DefaultNative returns the native call interface for the current platform.
func DefaultNative(_ *logging.Logger) Native {
	return unsupportedNative{}
}

// Open implements Native.Open.
func (unsupportedNative) Open(string) (Handle, error) {
	return nil, ErrUnsupportedPlatform
}

// FileType implements Native.FileType.
func (unsupportedNative) FileType(Handle) (FileType, error) {
	return FileTypeUnknown, ErrUnsupportedPlatform
}

// FileInformation implements Native.FileInformation.
func (unsupportedNative) FileInformation(Handle) (*FileInformation, error) {
	return nil, ErrUnsupportedPlatform
}

// FindEntry implements Native.FindEntry.
func (unsupportedNative) FindEntry(string) (*FindData, error) {
	return nil, ErrUnsupportedPlatform
}

// DriveType implements Native.DriveType.
func (unsupportedNative) DriveType(string) DriveType {
	return DriveTypeUnknown
}

// DiskGeometry implements Native.DiskGeometry.
func (unsupportedNative) DiskGeometry(string) (*DiskGeometry, error) {
	return nil, ErrUnsupportedPlatform
}

// FileSecurity implements Native.FileSecurity.
func (unsupportedNative) FileSecurity(string, SecurityInformation, []byte) (uint32, error) {
	return 0, ErrUnsupportedPlatform
}

// DescriptorSID implements Native.DescriptorSID.
func (unsupportedNative) DescriptorSID([]byte, SecurityInformation) (string, error) {
	return "", ErrUnsupportedPlatform
}

// OpenProcessToken implements Native.OpenProcessToken.
func (unsupportedNative) OpenProcessToken() (Handle, error) {
	return nil, ErrUnsupportedPlatform
}

// TokenSID implements Native.TokenSID.
func (unsupportedNative) TokenSID(Handle, TokenClass) (string, error) {
	return "", ErrUnsupportedPlatform
}

// FullPath implements Native.FullPath.
func (unsupportedNative) FullPath(string) (string, error) {
	return "", ErrUnsupportedPlatform
}

// LinkTarget implements Native.LinkTarget.
func (unsupportedNative) LinkTarget(string) (string, error) {
	return "", ErrUnsupportedPlatform
}
