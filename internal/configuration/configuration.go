// Package configuration implements the reading of the application settings
// from Unix-type (key=value) settings files.
package configuration

import (
	"fmt"
	"strings"

	"github.com/desertwitch/structman/internal/schema"
	"github.com/desertwitch/structman/internal/verification"
)

const (
	// KeyPrefix is the prefix of all settings keys.
	KeyPrefix = "STRUCTMAN_"

	KeySchema     = KeyPrefix + "SCHEMA"
	KeyIdentifier = KeyPrefix + "IDENTIFIER"
	KeyRoots      = KeyPrefix + "ROOTS"
	KeyPolicy     = KeyPrefix + "POLICY"

	// KeyRootPrefix is followed by the upper snake case name of a
	// [schema.Kind] to override the resolved path of that directory.
	KeyRootPrefix = KeyPrefix + "ROOT_"
)

type genericConfigProvider interface {
	Read(filenames ...string) (envMap map[string]string, err error)
}

// Settings holds the application settings.
type Settings struct {
	SchemaPath string
	Identifier string

	// Roots are the directories to verify, empty meaning all configured.
	Roots []schema.Kind

	Policy    verification.Policy
	Overrides map[schema.Kind]string
}

// NewSettings returns a pointer to new and empty [Settings].
func NewSettings() *Settings {
	return &Settings{
		Overrides: make(map[schema.Kind]string),
	}
}

// Handler is the principal implementation for the configuration services.
type Handler struct {
	GenericConfigReader genericConfigProvider
}

// NewHandler returns a pointer to a new configuration [Handler].
func NewHandler(reader genericConfigProvider) *Handler {
	return &Handler{
		GenericConfigReader: reader,
	}
}

// ReadSettings reads the given settings files into [Settings].
func (c *Handler) ReadSettings(filenames ...string) (*Settings, error) {
	if len(filenames) == 0 {
		return nil, ErrNoSettingsFile
	}

	envMap, err := c.GenericConfigReader.Read(filenames...)
	if err != nil {
		return nil, fmt.Errorf("(config) %w", err)
	}

	return ParseSettings(envMap)
}

// ParseSettings interprets an already read settings map. Unknown keys are
// ignored, so a settings file may be shared with other programs.
func ParseSettings(envMap map[string]string) (*Settings, error) {
	settings := NewSettings()

	settings.SchemaPath = mapKeyToString(envMap, KeySchema)
	settings.Identifier = mapKeyToString(envMap, KeyIdentifier)

	roots, err := ParseRoots(mapKeyToString(envMap, KeyRoots))
	if err != nil {
		return nil, fmt.Errorf("(config) %s: %w", KeyRoots, err)
	}
	settings.Roots = roots

	policy, err := verification.ParsePolicy(mapKeyToString(envMap, KeyPolicy))
	if err != nil {
		return nil, fmt.Errorf("(config) %w: %s: %w", ErrInvalidSetting, KeyPolicy, err)
	}
	settings.Policy = policy

	for _, kind := range schema.Kinds() {
		if path := mapKeyToString(envMap, KeyRootPrefix+kind.EnvName()); path != "" {
			settings.Overrides[kind] = path
		}
	}

	return settings, nil
}

// ParseRoots resolves a comma separated list of directory identifiers. Both
// the camelCase and snake_case spellings are accepted, duplicates are removed.
func ParseRoots(value string) ([]schema.Kind, error) {
	var kinds []schema.Kind

	seen := make(map[schema.Kind]struct{})

	for _, field := range strings.Split(value, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		kind, err := schema.ParseKind(field)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidSetting, err)
		}

		if _, ok := seen[kind]; ok {
			continue
		}
		seen[kind] = struct{}{}

		kinds = append(kinds, kind)
	}

	return kinds, nil
}

// ParseOverride resolves a single "kind=path" override.
func ParseOverride(value string) (schema.Kind, string, error) {
	name, path, ok := strings.Cut(value, "=")
	if !ok || strings.TrimSpace(path) == "" {
		return 0, "", fmt.Errorf("%w: expected kind=path: %q", ErrInvalidSetting, value)
	}

	kind, err := schema.ParseKind(strings.TrimSpace(name))
	if err != nil {
		return 0, "", fmt.Errorf("%w: %w", ErrInvalidSetting, err)
	}

	return kind, strings.TrimSpace(path), nil
}

func mapKeyToString(envMap map[string]string, key string) string {
	if value, exists := envMap[key]; exists {
		return strings.TrimSpace(value)
	}

	return ""
}
