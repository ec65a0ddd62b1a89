package verification

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingFile occurs when a declared file does not exist.
	ErrMissingFile = errors.New("file not found")

	// ErrMissingDirectory occurs when a declared directory does not exist and
	// the declaring item does not allow it to be repaired.
	ErrMissingDirectory = errors.New("directory not found")

	// ErrNotDirectory occurs when a declared directory exists, but is not a
	// directory.
	ErrNotDirectory = errors.New("path exists but is not a directory")

	// ErrRepairFailed occurs when a missing directory could not be created.
	ErrRepairFailed = errors.New("failed to create directory")

	// ErrUnexpectedEntry occurs when a strict directory contains an entry that
	// is neither a declared file nor a declared directory.
	ErrUnexpectedEntry = errors.New("undeclared entry in strict directory")

	// ErrInspectFailed occurs when the existence of a path could not be
	// established for other reasons than it not existing.
	ErrInspectFailed = errors.New("failed to inspect path")

	// ErrFieldNotConfigured occurs when a well-known directory is verified,
	// but the structure configuration does not declare it.
	ErrFieldNotConfigured = errors.New("structure configuration field not found")

	// ErrPathResolution occurs when a well-known directory could not be
	// resolved to a path on this system.
	ErrPathResolution = errors.New("failed to resolve path")

	// ErrVerificationFailed occurs when one or more well-known directories
	// failed verification during a run over multiple directories.
	ErrVerificationFailed = errors.New("structure verification failed")
)

// PathError is the error returned for any failure of a filesystem check. It
// holds one of the sentinel errors of this package, the absolute path that was
// checked and, where applicable, the underlying cause.
type PathError struct {
	Err   error
	Path  string
	Cause error
}

func newPathError(err error, path string, cause error) *PathError {
	return &PathError{
		Err:   err,
		Path:  path,
		Cause: cause,
	}
}

// Error returns the message, which embeds the path and any underlying cause.
func (e *PathError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%v: %s: %v", e.Err, e.Path, e.Cause)
	}

	return fmt.Sprintf("%v: %s", e.Err, e.Path)
}

// Unwrap allows matching both the sentinel error and the underlying cause with
// [errors.Is] and [errors.As].
func (e *PathError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}

	return []error{e.Err}
}
