package stat

import (
	"time"
)

// fakeHandle is a Handle issued by fakeNative.
type fakeHandle struct {
	// native is the issuing fake.
	native *fakeNative
	// closed indicates whether or not the handle has been closed.
	closed bool
}

// Close implements io.Closer.Close.
func (h *fakeHandle) Close() error {
	if h.closed {
		panic("handle closed twice")
	}
	h.closed = true
	h.native.closed++
	return nil
}

// fakeNative is a scripted Native implementation. Its zero value (after
// newFakeNative) describes an ordinary file on a fixed drive.
type fakeNative struct {
	// calls records the names of the calls made, in order.
	calls []string
	// paths records the paths passed to path-based calls, in order.
	paths []string

	openErr        error
	fileType       FileType
	fileTypeErr    error
	information    *FileInformation
	informationErr error
	entries        map[string]*FindData
	driveType      DriveType
	geometry       *DiskGeometry
	geometryErr    error
	owner          string
	group          string
	securityErr    error
	descriptorErr  error
	processUser    string
	processGroup   string
	tokenErr       error
	tokenSIDErr    error
	fullPathPrefix string
	fullPathErr    error
	linkTarget     string
	linkTargetErr  error

	// opened is the number of handles opened.
	opened int
	// closed is the number of handles closed.
	closed int
}

// testModificationTime is the modification time used by fakes.
var testModificationTime = time.Date(2021, time.March, 14, 15, 9, 26, 0, time.UTC)

// newFakeNative creates a fake describing a 10-byte archive file on a fixed
// drive with 4096-byte allocation units, owned by the current process.
func newFakeNative() *fakeNative {
	metadata := EntryMetadata{
		Attributes:     AttributeArchive,
		CreationTime:   FiletimeFromTime(testModificationTime.Add(-time.Hour)),
		LastAccessTime: FiletimeFromTime(testModificationTime.Add(time.Hour)),
		LastWriteTime:  FiletimeFromTime(testModificationTime),
		FileSizeLow:    10,
	}
	return &fakeNative{
		fileType: FileTypeDisk,
		information: &FileInformation{
			EntryMetadata:      metadata,
			VolumeSerialNumber: 0xDEADBEEF,
			NumberOfLinks:      2,
			FileIndexHigh:      1,
			FileIndexLow:       42,
		},
		entries:      map[string]*FindData{},
		driveType:    DriveTypeFixed,
		geometry:     &DiskGeometry{SectorsPerCluster: 8, BytesPerSector: 512},
		owner:        "S-1-5-21-1004336348-1177238915-682003330-1001",
		group:        "S-1-5-21-1004336348-1177238915-682003330-513",
		processUser:  "S-1-5-21-1004336348-1177238915-682003330-1001",
		processGroup: "S-1-5-21-1004336348-1177238915-682003330-513",
	}
}

// setMetadata sets the metadata returned by both handle-based and entry-based
// queries for path.
func (n *fakeNative) setMetadata(path string, metadata EntryMetadata, reparseTag uint32) {
	n.information.EntryMetadata = metadata
	n.entries[path] = &FindData{EntryMetadata: metadata, ReparseTag: reparseTag}
}

// record records a call.
func (n *fakeNative) record(call, path string) {
	n.calls = append(n.calls, call)
	if path != "" {
		n.paths = append(n.paths, path)
	}
}

// called counts the calls made with the specified name.
func (n *fakeNative) called(call string) int {
	var count int
	for _, c := range n.calls {
		if c == call {
			count++
		}
	}
	return count
}

func (n *fakeNative) Open(path string) (Handle, error) {
	n.record("Open", path)
	if n.openErr != nil {
		return nil, n.openErr
	}
	n.opened++
	return &fakeHandle{native: n}, nil
}

func (n *fakeNative) FileType(handle Handle) (FileType, error) {
	n.record("FileType", "")
	if handle.(*fakeHandle).closed {
		panic("file type query on closed handle")
	}
	return n.fileType, n.fileTypeErr
}

func (n *fakeNative) FileInformation(handle Handle) (*FileInformation, error) {
	n.record("FileInformation", "")
	if handle.(*fakeHandle).closed {
		panic("information query on closed handle")
	}
	if n.informationErr != nil {
		return nil, n.informationErr
	}
	information := *n.information
	return &information, nil
}

func (n *fakeNative) FindEntry(path string) (*FindData, error) {
	n.record("FindEntry", path)
	if data, ok := n.entries[path]; ok {
		result := *data
		return &result, nil
	}
	return nil, ErrnoFileNotFound
}

func (n *fakeNative) DriveType(root string) DriveType {
	n.record("DriveType", root)
	return n.driveType
}

func (n *fakeNative) DiskGeometry(root string) (*DiskGeometry, error) {
	n.record("DiskGeometry", root)
	if n.geometryErr != nil {
		return nil, n.geometryErr
	}
	geometry := *n.geometry
	return &geometry, nil
}

// sid returns the SID selected by the security information.
func (n *fakeNative) sid(information SecurityInformation) string {
	if information == SecurityInformationGroup {
		return n.group
	}
	return n.owner
}

func (n *fakeNative) FileSecurity(path string, information SecurityInformation, descriptor []byte) (uint32, error) {
	n.record("FileSecurity", path)
	sid := n.sid(information)
	if len(descriptor) < len(sid) {
		if n.securityErr != nil && len(descriptor) > 0 {
			return uint32(len(sid)), n.securityErr
		}
		return uint32(len(sid)), ErrnoInsufficientBuffer
	} else if n.securityErr != nil {
		return uint32(len(sid)), n.securityErr
	}
	copy(descriptor, sid)
	return uint32(len(sid)), nil
}

func (n *fakeNative) DescriptorSID(descriptor []byte, information SecurityInformation) (string, error) {
	n.record("DescriptorSID", "")
	if n.descriptorErr != nil {
		return "", n.descriptorErr
	}
	return string(descriptor), nil
}

func (n *fakeNative) OpenProcessToken() (Handle, error) {
	n.record("OpenProcessToken", "")
	if n.tokenErr != nil {
		return nil, n.tokenErr
	}
	n.opened++
	return &fakeHandle{native: n}, nil
}

func (n *fakeNative) TokenSID(token Handle, class TokenClass) (string, error) {
	n.record("TokenSID", "")
	if token.(*fakeHandle).closed {
		panic("token query on closed token")
	}
	if n.tokenSIDErr != nil {
		return "", n.tokenSIDErr
	}
	if class == TokenClassPrimaryGroup {
		return n.processGroup, nil
	}
	return n.processUser, nil
}

func (n *fakeNative) FullPath(path string) (string, error) {
	n.record("FullPath", path)
	if n.fullPathErr != nil {
		return "", n.fullPathErr
	}
	return n.fullPathPrefix + path, nil
}

func (n *fakeNative) LinkTarget(path string) (string, error) {
	n.record("LinkTarget", path)
	return n.linkTarget, n.linkTargetErr
}
