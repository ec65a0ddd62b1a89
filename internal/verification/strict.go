package verification

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/desertwitch/structman/internal/schema"
)

// verifyStrict checks that a directory contains no entries besides the files
// and directories its [schema.Item] declares. Only the item's own level is
// checked, nested items carry their own strict option. A directory that does
// not exist has no undeclared entries.
func (v *Handler) verifyStrict(root string, item *schema.Item) error {
	entries, err := v.OSOps.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return newPathError(ErrInspectFailed, root, err)
	}

	declared := make(map[string]struct{}, len(item.Files)+len(item.Dirs))
	for _, name := range item.Files {
		declared[name] = struct{}{}
	}
	for name := range item.Dirs {
		declared[name] = struct{}{}
	}

	for _, entry := range entries {
		if _, ok := declared[entry.Name()]; !ok {
			return newPathError(ErrUnexpectedEntry, filepath.Join(root, entry.Name()), nil)
		}
	}

	return nil
}
