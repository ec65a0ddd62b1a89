package configuration

import "errors"

var (
	// ErrNoSettingsFile occurs when settings are read without naming a file.
	ErrNoSettingsFile = errors.New("no settings file given")

	// ErrInvalidSetting occurs when a settings value cannot be interpreted.
	ErrInvalidSetting = errors.New("invalid setting")
)
