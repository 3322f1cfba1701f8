package stat

import (
	"github.com/mutagen-io/winstat/pkg/logging"
	"github.com/mutagen-io/winstat/pkg/must"
)

// probeState is a state of the metadata acquisition protocol.
type probeState uint8

const (
	// probeStateOpen attempts to open a metadata handle.
	probeStateOpen probeState = iota
	// probeStateClassify classifies the file type of an open handle.
	probeStateClassify
	// probeStateDevice determines block device status and block size from
	// the path's root.
	probeStateDevice
	// probeStateStrategy chooses between handle-based and
	// directory-entry-based acquisition.
	probeStateStrategy
	// probeStateHandle acquires metadata using the open handle.
	probeStateHandle
	// probeStateEntry acquires metadata from the path's directory entry.
	probeStateEntry
	// probeStateDone is the terminal state.
	probeStateDone
)

// String provides a human-readable representation of a probe state.
func (s probeState) String() string {
	switch s {
	case probeStateOpen:
		return "open"
	case probeStateClassify:
		return "classify"
	case probeStateDevice:
		return "device"
	case probeStateStrategy:
		return "strategy"
	case probeStateHandle:
		return "handle"
	case probeStateEntry:
		return "entry"
	case probeStateDone:
		return "done"
	default:
		return "unknown"
	}
}

// probeResult is the outcome of a metadata probe.
type probeResult struct {
	// metadata is the acquired attributes, timestamps, and size.
	metadata EntryMetadata
	// fileType is the handle's file type, or FileTypeUnknown if no handle
	// could be opened.
	fileType FileType
	// blockDevice indicates whether or not the path's root is removable
	// media, a CD-ROM, or a RAM disk.
	blockDevice bool
	// blockSize is the allocation unit size of the path's root.
	blockSize uint64
	// blockSizeKnown indicates whether or not blockSize is known.
	blockSizeKnown bool
	// links is the number of hard links to the file.
	links uint32
	// device is the volume serial number.
	device uint32
	// deviceKnown indicates whether or not device is known.
	deviceKnown bool
	// index is the file index.
	index uint64
	// indexKnown indicates whether or not index is known.
	indexKnown bool
}

// probe implements the metadata acquisition protocol for a single path. The
// protocol is a state machine that starts in probeStateOpen and ends in
// probeStateDone. Each terminal acquisition state fully determines the link
// count, device, and index.
type probe struct {
	// native is the native call interface.
	native Native
	// logger is the underlying logger.
	logger *logging.Logger
	// path is the path being probed.
	path string
	// handle is the open metadata handle, if any.
	handle Handle
	// driveType is the drive type of the path's root.
	driveType DriveType
	// result is the accumulated probe result.
	result probeResult
}

// run executes the acquisition protocol. The handle (if any) is released
// before run returns, regardless of outcome.
func (p *probe) run() (*probeResult, error) {
	defer p.release()

	for state := probeStateOpen; state != probeStateDone; {
		p.logger.Tracef("Probing %s: state %s", p.path, state)
		next, err := p.step(state)
		if err != nil {
			return nil, err
		}
		state = next
	}

	return &p.result, nil
}

// release releases the handle, if any.
func (p *probe) release() {
	if p.handle != nil {
		must.Close(p.handle, p.logger)
		p.handle = nil
	}
}

// step performs the work of a single state and returns the next state.
func (p *probe) step(state probeState) (probeState, error) {
	switch state {
	case probeStateOpen:
		return p.open()
	case probeStateClassify:
		return p.classify()
	case probeStateDevice:
		return p.device()
	case probeStateStrategy:
		return p.strategy(), nil
	case probeStateHandle:
		return p.acquireFromHandle()
	case probeStateEntry:
		return p.acquireFromEntry()
	default:
		panic("unhandled probe state")
	}
}

// open attempts to open a metadata handle. A sharing violation means that the
// file is locked by another process, in which case no handle is used.
func (p *probe) open() (probeState, error) {
	handle, err := p.native.Open(p.path)
	if err != nil {
		if isSharingViolation(err) {
			p.logger.Debugf("%s is locked, falling back to directory entry", p.path)
			return probeStateDevice, nil
		}
		return probeStateDone, newNativeCallError(ErrOpenFailed, "CreateFile", err)
	}
	p.handle = handle
	return probeStateClassify, nil
}

// classify queries the file type of the open handle.
func (p *probe) classify() (probeState, error) {
	fileType, err := p.native.FileType(p.handle)
	if fileType == FileTypeUnknown && err != nil {
		return probeStateDone, newNativeCallError(ErrTypeQueryFailed, "GetFileType", err)
	}
	p.result.fileType = fileType
	return probeStateDevice, nil
}

// device determines block device status and the allocation unit size from the
// path's root. Allocation unit queries are allowed to fail for network shares.
func (p *probe) device() (probeState, error) {
	root := VolumeRoot(p.path)

	p.driveType = p.native.DriveType(root)
	p.result.blockDevice = p.driveType.blockDevice()

	geometry, err := p.native.DiskGeometry(root)
	if err != nil {
		if !IsUNC(root) {
			return probeStateDone, newNativeCallError(ErrGeometryQueryFailed, "GetDiskFreeSpace", err)
		}
		p.logger.Debugf("Unable to query geometry for share %s: %v", root, err)
	} else {
		p.result.blockSize = geometry.AllocationUnit()
		p.result.blockSizeKnown = true
	}

	return probeStateStrategy, nil
}

// strategy chooses the acquisition method. Directory entries are used if no
// handle is available or if the handle refers to a device or pipe not residing
// on removable media, since handle queries on those are unreliable.
func (p *probe) strategy() probeState {
	special := p.result.blockDevice ||
		p.result.fileType == FileTypeCharacter ||
		p.result.fileType == FileTypePipe
	if p.handle == nil || (special && p.driveType != DriveTypeRemovable) {
		p.release()
		return probeStateEntry
	}
	return probeStateHandle
}

// acquireFromHandle acquires metadata using the open handle.
func (p *probe) acquireFromHandle() (probeState, error) {
	information, err := p.native.FileInformation(p.handle)
	if err != nil {
		return probeStateDone, newNativeCallError(ErrInfoQueryFailed, "GetFileInformationByHandle", err)
	}

	p.result.metadata = information.EntryMetadata
	p.result.links = information.NumberOfLinks
	p.result.device = information.VolumeSerialNumber
	p.result.deviceKnown = true
	p.result.index = information.FileIndex()
	p.result.indexKnown = true

	return probeStateDone, nil
}

// acquireFromEntry acquires metadata from the path's directory entry. Link
// count defaults to 1 and the device and index are unknown.
func (p *probe) acquireFromEntry() (probeState, error) {
	data, err := p.native.FindEntry(p.path)
	if err != nil {
		return probeStateDone, newNativeCallError(ErrEntryNotFound, "FindFirstFile", err)
	}

	p.result.metadata = data.EntryMetadata
	p.result.links = 1

	return probeStateDone, nil
}

// isSymbolicLink determines whether or not the reparse point at the specified
// absolute path is a symbolic link by inspecting the reparse tag of its
// directory entry.
func isSymbolicLink(native Native, path string) (bool, error) {
	data, err := native.FindEntry(path)
	if err != nil {
		return false, newNativeCallError(ErrEntryNotFound, "FindFirstFile", err)
	}
	return data.ReparseTag == ReparseTagSymbolicLink, nil
}
