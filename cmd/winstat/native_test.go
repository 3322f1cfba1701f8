package main

import (
	"strings"
	"time"

	"github.com/mutagen-io/winstat/pkg/stat"
)

// testSID is the SID reported for all files and the process.
const testSID = "S-1-5-21-1-2-3-1001"

// testTime is the timestamp reported for all files.
var testTime = time.Date(2020, time.February, 2, 20, 20, 2, 0, time.UTC)

// testHandle is a handle with nothing to release. It records the path that
// it was opened for, if any.
type testHandle struct {
	// path is the path that the handle was opened for.
	path string
}

// Close implements io.Closer.Close.
func (testHandle) Close() error {
	return nil
}

// testNative is a Native implementation reporting regular files whose size is
// the length of their path. Paths containing "missing" don't exist.
type testNative struct{}

func (testNative) metadata(path string) stat.EntryMetadata {
	return stat.EntryMetadata{
		Attributes:     stat.AttributeArchive,
		CreationTime:   stat.FiletimeFromTime(testTime),
		LastAccessTime: stat.FiletimeFromTime(testTime),
		LastWriteTime:  stat.FiletimeFromTime(testTime),
		FileSizeLow:    uint32(len(path)),
	}
}

func (testNative) Open(path string) (stat.Handle, error) {
	if strings.Contains(path, "missing") {
		return nil, stat.ErrnoFileNotFound
	}
	return testHandle{path: path}, nil
}

func (testNative) FileType(stat.Handle) (stat.FileType, error) {
	return stat.FileTypeDisk, nil
}

func (n testNative) FileInformation(handle stat.Handle) (*stat.FileInformation, error) {
	return &stat.FileInformation{
		EntryMetadata: n.metadata(handle.(testHandle).path),
		NumberOfLinks: 1,
	}, nil
}

func (n testNative) FindEntry(path string) (*stat.FindData, error) {
	return &stat.FindData{EntryMetadata: n.metadata(path)}, nil
}

func (testNative) DriveType(string) stat.DriveType {
	return stat.DriveTypeFixed
}

func (testNative) DiskGeometry(string) (*stat.DiskGeometry, error) {
	return &stat.DiskGeometry{SectorsPerCluster: 8, BytesPerSector: 512}, nil
}

func (testNative) FileSecurity(path string, _ stat.SecurityInformation, descriptor []byte) (uint32, error) {
	if len(descriptor) < len(testSID) {
		return uint32(len(testSID)), stat.ErrnoInsufficientBuffer
	} else if strings.Contains(path, "missing") {
		return 0, stat.ErrnoFileNotFound
	}
	return uint32(copy(descriptor, testSID)), nil
}

func (testNative) DescriptorSID(descriptor []byte, _ stat.SecurityInformation) (string, error) {
	return string(descriptor), nil
}

func (testNative) OpenProcessToken() (stat.Handle, error) {
	return testHandle{}, nil
}

func (testNative) TokenSID(stat.Handle, stat.TokenClass) (string, error) {
	return testSID, nil
}

func (testNative) FullPath(path string) (string, error) {
	return path, nil
}

func (testNative) LinkTarget(string) (string, error) {
	return "", nil
}
