package stat

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidArgument indicates that the path passed to Stat is unusable.
	// No native calls are attempted in this case.
	ErrInvalidArgument = errors.New("invalid path argument")
	// ErrUnsupportedPlatform indicates that no native implementation exists
	// for the current platform.
	ErrUnsupportedPlatform = errors.New("native file status queries not supported on this platform")
	// ErrMalformedSID indicates that a textual SID lacks a numeric relative
	// identifier.
	ErrMalformedSID = errors.New("malformed security identifier")

	// ErrIdentityQueryFailed is the kind of error returned when a file or
	// process identity can't be resolved.
	ErrIdentityQueryFailed = errors.New("identity query failed")
	// ErrOpenFailed is the kind of error returned when a metadata handle can't
	// be opened for a reason other than a sharing violation.
	ErrOpenFailed = errors.New("unable to open path")
	// ErrTypeQueryFailed is the kind of error returned when a handle's file
	// type can't be determined.
	ErrTypeQueryFailed = errors.New("file type query failed")
	// ErrGeometryQueryFailed is the kind of error returned when the allocation
	// unit of a non-UNC root can't be determined.
	ErrGeometryQueryFailed = errors.New("disk geometry query failed")
	// ErrInfoQueryFailed is the kind of error returned when handle-based file
	// information can't be queried.
	ErrInfoQueryFailed = errors.New("file information query failed")
	// ErrPathResolutionFailed is the kind of error returned when a path can't
	// be resolved to an absolute path.
	ErrPathResolutionFailed = errors.New("unable to resolve absolute path")
	// ErrEntryNotFound is the kind of error returned when no directory entry
	// matches the path.
	ErrEntryNotFound = errors.New("directory entry not found")
)

// Errno is a native error code.
type Errno uint32

const (
	// ErrnoSuccess indicates the absence of an error (NO_ERROR).
	ErrnoSuccess Errno = 0
	// ErrnoFileNotFound is ERROR_FILE_NOT_FOUND.
	ErrnoFileNotFound Errno = 2
	// ErrnoPathNotFound is ERROR_PATH_NOT_FOUND.
	ErrnoPathNotFound Errno = 3
	// ErrnoAccessDenied is ERROR_ACCESS_DENIED.
	ErrnoAccessDenied Errno = 5
	// ErrnoNoMoreFiles is ERROR_NO_MORE_FILES.
	ErrnoNoMoreFiles Errno = 18
	// ErrnoSharingViolation is ERROR_SHARING_VIOLATION, returned when another
	// process holds the file open with an incompatible sharing mode.
	ErrnoSharingViolation Errno = 32
	// ErrnoInsufficientBuffer is ERROR_INSUFFICIENT_BUFFER.
	ErrnoInsufficientBuffer Errno = 122
)

// Error implements error.Error.
func (e Errno) Error() string {
	return errnoMessage(e)
}

// nativeCode extracts the native error code from an error returned by a
// Native implementation. It returns ErrnoSuccess if no code is present.
func nativeCode(err error) Errno {
	var code Errno
	if errors.As(err, &code) {
		return code
	}
	return ErrnoSuccess
}

// isSharingViolation determines whether or not err represents a sharing
// violation.
func isSharingViolation(err error) bool {
	return err != nil && nativeCode(err) == ErrnoSharingViolation
}

// NativeCallError is returned when a native call fails unexpectedly. It
// records the kind of failure, the name of the failing native operation, and
// the native error code.
type NativeCallError struct {
	// Kind is the failure classification, e.g. ErrOpenFailed.
	Kind error
	// Operation is the name of the failing native operation.
	Operation string
	// Code is the native error code.
	Code Errno
	// Err is the underlying error returned by the native call.
	Err error
}

// newNativeCallError creates a new NativeCallError from an error returned by a
// Native implementation.
func newNativeCallError(kind error, operation string, err error) *NativeCallError {
	return &NativeCallError{
		Kind:      kind,
		Operation: operation,
		Code:      nativeCode(err),
		Err:       err,
	}
}

// Error implements error.Error.
func (e *NativeCallError) Error() string {
	return fmt.Sprintf("%v: %s failed: %v (code %d)", e.Kind, e.Operation, e.Err, uint32(e.Code))
}

// Unwrap returns the underlying native error.
func (e *NativeCallError) Unwrap() error {
	return e.Err
}

// Is reports whether or not target is the kind of this error.
func (e *NativeCallError) Is(target error) bool {
	return target == e.Kind
}
