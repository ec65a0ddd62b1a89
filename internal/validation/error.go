package validation

import "errors"

var (
	// ErrEmptyName occurs when a declared file or directory name is empty.
	ErrEmptyName = errors.New("empty entry name")

	// ErrDotName occurs when a declared name is "." or "..", which would
	// refer to the directory itself or its parent.
	ErrDotName = errors.New("entry name refers to itself or its parent")

	// ErrNameHasSeparator occurs when a declared name contains a path
	// separator instead of being a single path element.
	ErrNameHasSeparator = errors.New("entry name contains a path separator")

	// ErrNameHasNull occurs when a declared name contains a NUL byte, which no
	// filesystem accepts.
	ErrNameHasNull = errors.New("entry name contains a NUL byte")

	// ErrFileDirConflict occurs when the same name is declared as both a file
	// and a directory of the same item.
	ErrFileDirConflict = errors.New("entry declared as both file and directory")
)
