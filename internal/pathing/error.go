package pathing

import "errors"

var (
	// ErrUnresolvable occurs when a well-known directory is not defined or
	// not supported on this system.
	ErrUnresolvable = errors.New("directory cannot be resolved on this system")

	// ErrNoIdentifier occurs when an application-scoped directory is resolved
	// without an application identifier being set.
	ErrNoIdentifier = errors.New("no application identifier set")

	// ErrRelativeOverride occurs when a path override is not an absolute path.
	ErrRelativeOverride = errors.New("path override is relative")

	// ErrUnknownKind occurs when a [schema.Kind] is not known to the resolver.
	ErrUnknownKind = errors.New("unknown directory kind")
)
