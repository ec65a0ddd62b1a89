package verification

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
)

const (
	// dirPerms are the permissions repaired directories are created with,
	// before the process umask is applied.
	dirPerms = 0o755
)

// ensureDirectory creates a missing directory including any missing
// ancestors, top-down. A directory appearing concurrently (e.g. created by
// another repairing process) is not considered a failure. Directories created
// before a failure are not removed.
func (v *Handler) ensureDirectory(path string, report *Report) error {
	var missing []string

	for current := path; ; {
		if _, err := v.OSOps.Stat(current); err == nil {
			break
		} else if !isNotExist(err) {
			return newPathError(ErrRepairFailed, path, err)
		}

		missing = append(missing, current)

		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	for i := len(missing) - 1; i >= 0; i-- {
		dir := missing[i]

		if err := v.UnixOps.Mkdir(dir, dirPerms); err != nil {
			if errors.Is(err, fs.ErrExist) {
				continue
			}

			return newPathError(ErrRepairFailed, path, fmt.Errorf("mkdir %s: %w", dir, err))
		}

		report.DirsCreated = append(report.DirsCreated, dir)

		slog.Info("Created missing directory.",
			"path", dir,
		)
	}

	return nil
}
