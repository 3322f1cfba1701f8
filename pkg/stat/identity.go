package stat

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/mutagen-io/winstat/pkg/logging"
	"github.com/mutagen-io/winstat/pkg/must"
)

// LockedSID is the identity reported for files whose security descriptors
// can't be read because another process holds them locked.
const LockedSID = "S-1-5-80-0"

// identityResolver resolves file and process identities.
type identityResolver struct {
	// native is the native call interface.
	native Native
	// logger is the underlying logger.
	logger *logging.Logger
}

// fileSID returns the textual owner or group SID of the file at path. A
// sharing violation yields LockedSID rather than an error.
func (r *identityResolver) fileSID(path string, information SecurityInformation) (string, error) {
	// Query the required descriptor size. This call is expected to fail due to
	// the empty buffer, so only the reported size is used.
	size, _ := r.native.FileSecurity(path, information, nil)

	// Query the descriptor itself.
	descriptor := make([]byte, size)
	if _, err := r.native.FileSecurity(path, information, descriptor); err != nil {
		if isSharingViolation(err) {
			r.logger.Debugf("Security descriptor for %s locked, using %s", path, LockedSID)
			return LockedSID, nil
		}
		return "", newNativeCallError(ErrIdentityQueryFailed, "GetFileSecurity", err)
	}

	// Extract the SID.
	sid, err := r.native.DescriptorSID(descriptor, information)
	if err != nil {
		operation := "GetSecurityDescriptorOwner"
		if information == SecurityInformationGroup {
			operation = "GetSecurityDescriptorGroup"
		}
		return "", newNativeCallError(ErrIdentityQueryFailed, operation, err)
	}
	return sid, nil
}

// processSID returns the textual user or primary group SID of the current
// process.
func (r *identityResolver) processSID(class TokenClass) (string, error) {
	token, err := r.native.OpenProcessToken()
	if err != nil {
		return "", newNativeCallError(ErrIdentityQueryFailed, "OpenProcessToken", err)
	}
	defer must.Close(token, r.logger)

	sid, err := r.native.TokenSID(token, class)
	if err != nil {
		return "", newNativeCallError(ErrIdentityQueryFailed, "GetTokenInformation", err)
	}
	return sid, nil
}

// RelativeIdentifier extracts the relative identifier (the final
// dash-delimited component) of a textual SID.
func RelativeIdentifier(sid string) (uint32, error) {
	index := strings.LastIndexByte(sid, '-')
	if index < 0 {
		return 0, errors.Wrapf(ErrMalformedSID, "no separator in %q", sid)
	}
	rid, err := strconv.ParseUint(sid[index+1:], 10, 32)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformedSID, "invalid relative identifier in %q", sid)
	}
	return uint32(rid), nil
}
