package schema

import "errors"

var (
	// ErrConfig occurs when a schema document is unreadable or does not match
	// the expected shape (unknown field, wrong value type, malformed nesting).
	ErrConfig = errors.New("invalid structure configuration")

	// ErrUnknownKind occurs when an identifier does not name one of the
	// well-known directories.
	ErrUnknownKind = errors.New("unknown well-known directory")

	// ErrEmptyDocument occurs when a schema document contains no data.
	ErrEmptyDocument = errors.New("empty schema document")

	// ErrNotString occurs when a file or directory name in a schema document
	// is not a string, such as an unquoted YAML number or boolean.
	ErrNotString = errors.New("name is not a string")
)
