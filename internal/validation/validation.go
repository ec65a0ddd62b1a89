// Package validation implements the sanity checks a [schema.Config] has to
// pass before any filesystem operation is performed based on it.
package validation

import (
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/desertwitch/structman/internal/schema"
)

// ValidateConfig checks every configured [schema.Item] tree of a
// [schema.Config]. Any violation is returned wrapped in [schema.ErrConfig],
// naming the well-known directory and location of the offending entry.
func ValidateConfig(cfg *schema.Config) error {
	for _, kind := range cfg.Configured() {
		item, _ := cfg.Get(kind)

		if err := validateItem(item, kind.String()); err != nil {
			return fmt.Errorf("%w: %w", schema.ErrConfig, err)
		}
	}

	slog.Debug("Structure configuration passed validation.",
		"kinds", len(cfg.Configured()),
	)

	return nil
}

// validateItem recursively checks an [schema.Item] and its children, the
// location is extended with every nesting level.
func validateItem(item *schema.Item, location string) error {
	if item == nil {
		return nil
	}

	files := make(map[string]struct{}, len(item.Files))

	for _, name := range item.Files {
		if err := validateName(name); err != nil {
			return fmt.Errorf("(validation) %s: file %q: %w", location, name, err)
		}
		files[name] = struct{}{}
	}

	for _, name := range item.DirNames() {
		if err := validateName(name); err != nil {
			return fmt.Errorf("(validation) %s: dir %q: %w", location, name, err)
		}

		if _, conflict := files[name]; conflict {
			return fmt.Errorf("(validation) %s: %q: %w", location, name, ErrFileDirConflict)
		}

		if err := validateItem(item.Dirs[name], path.Join(location, name)); err != nil {
			return err
		}
	}

	return nil
}

// validateName checks that a name is a single, relative path element.
func validateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}

	if name == "." || name == ".." {
		return ErrDotName
	}

	if strings.ContainsAny(name, `/\`) {
		return ErrNameHasSeparator
	}

	if strings.ContainsRune(name, 0) {
		return ErrNameHasNull
	}

	return nil
}
