// Package verification implements the depth-first verification (and repair)
// of a directory structure against a [schema.Item] tree, as well as the
// dispatch of verifications for the well-known directories.
package verification

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/desertwitch/structman/internal/schema"
	"golang.org/x/sys/unix"
)

type osProvider interface {
	ReadDir(name string) ([]os.DirEntry, error)
	Stat(name string) (os.FileInfo, error)
}

type unixProvider interface {
	Mkdir(path string, mode uint32) error
}

type pathResolver interface {
	Resolve(kind schema.Kind) (string, error)
}

type configProvider interface {
	Load() *schema.Config
}

// Handler is the principal implementation for the verification services.
type Handler struct {
	OSOps    osProvider
	UnixOps  unixProvider
	Resolver pathResolver
	Store    configProvider
}

// NewHandler returns a pointer to a new verification [Handler].
func NewHandler(osOps osProvider, unixOps unixProvider, resolver pathResolver, store configProvider) *Handler {
	return &Handler{
		OSOps:    osOps,
		UnixOps:  unixOps,
		Resolver: resolver,
		Store:    store,
	}
}

// Verify walks an [schema.Item] tree depth-first against the filesystem at
// root. Declared files are checked before declared directories; missing
// directories are created where the declaring item allows repair. The first
// failure aborts the walk and is returned as a [*PathError], along with the
// [Report] of the work done up to that point.
func (v *Handler) Verify(root string, item *schema.Item) (*Report, error) {
	report := &Report{}

	slog.Debug("Verifying structure.",
		"path", root,
		"depth", itemDepth{item},
	)

	if err := v.verifyItem(root, item, report); err != nil {
		return report, err
	}

	return report, nil
}

func (v *Handler) verifyItem(root string, item *schema.Item, report *Report) error {
	if item == nil {
		return nil
	}

	repair := item.IsRepair()

	for _, name := range item.Files {
		path := filepath.Join(root, name)

		if _, err := v.OSOps.Stat(path); err != nil {
			if isNotExist(err) {
				return newPathError(ErrMissingFile, path, nil)
			}

			return newPathError(ErrInspectFailed, path, err)
		}

		report.FilesChecked++
	}

	for _, name := range item.DirNames() {
		path := filepath.Join(root, name)

		info, err := v.OSOps.Stat(path)

		switch {
		case err == nil:
			if !info.IsDir() {
				return newPathError(ErrNotDirectory, path, nil)
			}

		case isNotExist(err):
			if !repair {
				return newPathError(ErrMissingDirectory, path, nil)
			}

			if err := v.ensureDirectory(path, report); err != nil {
				return err
			}

		default:
			return newPathError(ErrInspectFailed, path, err)
		}

		report.DirsChecked++

		if err := v.verifyItem(path, item.Dirs[name], report); err != nil {
			return err
		}
	}

	if item.IsStrict() {
		if err := v.verifyStrict(root, item); err != nil {
			return err
		}
	}

	return nil
}

// isNotExist reports whether a stat error proves the path does not exist. A
// path below a non-directory (ENOTDIR) cannot exist either.
func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, unix.ENOTDIR)
}

// itemDepth defers the depth calculation of a tree until a log record is
// actually handled.
type itemDepth struct {
	item *schema.Item
}

func (d itemDepth) LogValue() slog.Value {
	return slog.IntValue(d.item.Depth())
}
