package stat

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/mutagen-io/winstat/pkg/logging"
)

// Statter creates file status snapshots using a native call interface. It
// holds no mutable state and is safe for concurrent usage, though each Stat
// call is itself synchronous and performs blocking native calls.
type Statter struct {
	// native is the native call interface.
	native Native
	// logger is the underlying logger.
	logger *logging.Logger
}

// New creates a new Statter. The logger may be nil.
func New(native Native, logger *logging.Logger) *Statter {
	return &Statter{
		native: native,
		logger: logger,
	}
}

// Stat creates a file status snapshot for path using the platform's native
// call interface.
func Stat(path string) (*Status, error) {
	return New(DefaultNative(nil), nil).Stat(path)
}

// normalizePath converts forward slashes in a path to backslashes.
func normalizePath(path string) string {
	return strings.ReplaceAll(path, "/", `\`)
}

// Stat creates a file status snapshot for path.
func (s *Statter) Stat(path string) (*Status, error) {
	// Validate the path before performing any native calls.
	if path == "" {
		return nil, errors.Wrap(ErrInvalidArgument, "empty path")
	} else if strings.IndexByte(path, 0) != -1 {
		return nil, errors.Wrap(ErrInvalidArgument, "path contains NUL byte")
	}
	path = normalizePath(path)

	// Resolve file and process identities.
	identities := &identityResolver{native: s.native, logger: s.logger}
	userSID, err := identities.fileSID(path, SecurityInformationOwner)
	if err != nil {
		return nil, errors.Wrap(err, "unable to resolve file owner")
	}
	groupSID, err := identities.fileSID(path, SecurityInformationGroup)
	if err != nil {
		return nil, errors.Wrap(err, "unable to resolve file group")
	}
	uid, err := RelativeIdentifier(userSID)
	if err != nil {
		return nil, errors.Wrap(err, "unable to compute user ID")
	}
	gid, err := RelativeIdentifier(groupSID)
	if err != nil {
		return nil, errors.Wrap(err, "unable to compute group ID")
	}
	processUserSID, err := identities.processSID(TokenClassUser)
	if err != nil {
		return nil, errors.Wrap(err, "unable to resolve process user")
	}
	processGroupSID, err := identities.processSID(TokenClassPrimaryGroup)
	if err != nil {
		return nil, errors.Wrap(err, "unable to resolve process group")
	}

	// Acquire metadata.
	p := &probe{native: s.native, logger: s.logger, path: path}
	result, err := p.run()
	if err != nil {
		return nil, errors.Wrap(err, "unable to probe metadata")
	}

	// Resolve the absolute path, which is used for the drive number and for
	// reparse point inspection.
	fullPath, err := s.native.FullPath(path)
	if err != nil {
		return nil, newNativeCallError(ErrPathResolutionFailed, "GetFullPathName", err)
	}

	// Classify attributes and synthesize the mode.
	flags := Classify(result.metadata.Attributes)
	executable := IsExecutableName(path)
	mode := Synthesize(flags, executable)

	// Determine whether or not reparse points are symbolic links.
	var symlink bool
	var linkTarget string
	if flags.ReparsePoint {
		if symlink, err = isSymbolicLink(s.native, fullPath); err != nil {
			return nil, errors.Wrap(err, "unable to inspect reparse point")
		}
		if symlink {
			if linkTarget, err = s.native.LinkTarget(fullPath); err != nil {
				s.logger.Warnf("Unable to read link target for %s: %v", fullPath, err)
			}
		}
	}

	s.logger.Debugf("Created status for %s (mode %v, attributes %#x)", path, mode, uint32(result.metadata.Attributes))

	// Success.
	return &Status{
		path:             path,
		accessTime:       result.metadata.LastAccessTime.Time(),
		changeTime:       result.metadata.CreationTime.Time(),
		modificationTime: result.metadata.LastWriteTime.Time(),
		size:             result.metadata.Size(),
		blockSize:        result.blockSize,
		blockSizeKnown:   result.blockSizeKnown,
		userSID:          userSID,
		groupSID:         groupSID,
		uid:              uid,
		gid:              gid,
		owned:            userSID == processUserSID,
		groupOwned:       groupSID == processGroupSID,
		links:            result.links,
		device:           result.device,
		deviceKnown:      result.deviceKnown,
		inode:            result.index,
		inodeKnown:       result.indexKnown,
		rdev:             DriveNumber(fullPath),
		flags:            flags,
		fileType:         result.fileType,
		blockDevice:      result.blockDevice,
		symlink:          symlink,
		linkTarget:       linkTarget,
		executable:       executable,
		mode:             mode,
	}, nil
}
