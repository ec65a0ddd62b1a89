package schema

import (
	"fmt"
	"strings"
)

// Kind is one of the well-known directories a structure can be declared for.
type Kind int

const (
	KindAppCache Kind = iota
	KindAppConfig
	KindAppData
	KindAppLocalData
	KindAppLog
	KindAudio
	KindCache
	KindConfig
	KindData
	KindDesktop
	KindDocument
	KindDownload
	KindExecutable
	KindFont
	KindHome
	KindLocalData
	KindPicture
	KindPublic
	KindResource
	KindRuntime
	KindTemp
	KindTemplate
	KindVideo

	kindCount
)

// kindNames maps each [Kind] to its external (camelCase) and internal
// (snake_case) identifier.
//
//nolint:gochecknoglobals
var kindNames = [kindCount][2]string{
	KindAppCache:     {"appCache", "app_cache"},
	KindAppConfig:    {"appConfig", "app_config"},
	KindAppData:      {"appData", "app_data"},
	KindAppLocalData: {"appLocalData", "app_local_data"},
	KindAppLog:       {"appLog", "app_log"},
	KindAudio:        {"audio", "audio"},
	KindCache:        {"cache", "cache"},
	KindConfig:       {"config", "config"},
	KindData:         {"data", "data"},
	KindDesktop:      {"desktop", "desktop"},
	KindDocument:     {"document", "document"},
	KindDownload:     {"download", "download"},
	KindExecutable:   {"executable", "executable"},
	KindFont:         {"font", "font"},
	KindHome:         {"home", "home"},
	KindLocalData:    {"localData", "local_data"},
	KindPicture:      {"picture", "picture"},
	KindPublic:       {"public", "public"},
	KindResource:     {"resource", "resource"},
	KindRuntime:      {"runtime", "runtime"},
	KindTemp:         {"temp", "temp"},
	KindTemplate:     {"template", "template"},
	KindVideo:        {"video", "video"},
}

// Kinds returns all known [Kind] in their declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := range kindCount {
		kinds = append(kinds, k)
	}

	return kinds
}

// Valid reports whether the [Kind] is one of the known well-known directories.
func (k Kind) Valid() bool {
	return k >= 0 && k < kindCount
}

// String returns the external (camelCase) identifier, as used in schema
// documents.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k][0]
}

// SnakeName returns the internal (snake_case) identifier.
func (k Kind) SnakeName() string {
	if !k.Valid() {
		return fmt.Sprintf("kind_%d", int(k))
	}

	return kindNames[k][1]
}

// EnvName returns the identifier in upper snake case, for use in environment
// style configuration keys.
func (k Kind) EnvName() string {
	return strings.ToUpper(k.SnakeName())
}

// ParseKind resolves either the camelCase or the snake_case identifier into a
// [Kind].
func ParseKind(s string) (Kind, error) {
	for k := range kindCount {
		if kindNames[k][0] == s || kindNames[k][1] == s {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// kindFromExternal resolves only the camelCase identifier, which is the sole
// accepted spelling inside schema documents.
func kindFromExternal(s string) (Kind, bool) {
	for k := range kindCount {
		if kindNames[k][0] == s {
			return k, true
		}
	}

	return 0, false
}
