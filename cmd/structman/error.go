package main

import "errors"

var (
	// ErrNoSchema occurs when no schema document was configured, neither in
	// the settings nor on the command-line.
	ErrNoSchema = errors.New("no schema document given")

	// ErrUIFailed occurs when the user interface could not be started.
	ErrUIFailed = errors.New("user interface has failed")
)
