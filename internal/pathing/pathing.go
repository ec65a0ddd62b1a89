// Package pathing implements the resolution of well-known directories (the
// [schema.Kind]) into absolute paths, following the XDG base directory and
// user directory conventions on Unix systems.
package pathing

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"

	"github.com/desertwitch/structman/internal/schema"
)

type osProvider interface {
	Executable() (string, error)
	Getenv(key string) string
	ReadFile(name string) ([]byte, error)
	TempDir() string
	UserCacheDir() (string, error)
	UserConfigDir() (string, error)
	UserHomeDir() (string, error)
}

// Handler is the principal implementation for the path resolution services.
type Handler struct {
	identifier string
	overrides  map[schema.Kind]string
	goos       string

	OSOps osProvider
}

// NewHandler returns a pointer to a new path resolution [Handler]. The
// identifier names the application, it is appended to the base directories to
// form the application-scoped directories. Any overrides take precedence over
// the resolved paths.
func NewHandler(identifier string, overrides map[schema.Kind]string, osOps osProvider) *Handler {
	return &Handler{
		identifier: identifier,
		overrides:  overrides,
		goos:       runtime.GOOS,
		OSOps:      osOps,
	}
}

// Identifier returns the application identifier.
func (p *Handler) Identifier() string {
	return p.identifier
}

// Resolve returns the absolute path of a well-known directory. The path is not
// checked for existence.
func (p *Handler) Resolve(kind schema.Kind) (string, error) {
	if override, ok := p.overrides[kind]; ok {
		if !filepath.IsAbs(override) {
			return "", fmt.Errorf("(pathing) %s: %w: %s", kind, ErrRelativeOverride, override)
		}

		slog.Debug("Using path override.",
			"kind", kind.String(),
			"path", override,
		)

		return filepath.Clean(override), nil
	}

	path, err := p.resolve(kind)
	if err != nil {
		return "", fmt.Errorf("(pathing) %s: %w", kind, err)
	}

	return filepath.Clean(path), nil
}

//nolint:cyclop
func (p *Handler) resolve(kind schema.Kind) (string, error) {
	switch kind {
	case schema.KindHome:
		return p.home()

	case schema.KindCache:
		return p.cacheDir()

	case schema.KindConfig:
		return p.configDir()

	case schema.KindData, schema.KindLocalData:
		return p.dataDir()

	case schema.KindRuntime:
		if dir := p.xdgEnv("XDG_RUNTIME_DIR"); dir != "" {
			return dir, nil
		}

		return "", fmt.Errorf("%w: XDG_RUNTIME_DIR not set", ErrUnresolvable)

	case schema.KindExecutable:
		return p.executableDir()

	case schema.KindFont:
		return p.fontDir()

	case schema.KindTemp:
		return p.OSOps.TempDir(), nil

	case schema.KindResource:
		exe, err := p.OSOps.Executable()
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrUnresolvable, err)
		}

		return filepath.Dir(exe), nil

	case schema.KindAudio, schema.KindDesktop, schema.KindDocument, schema.KindDownload,
		schema.KindPicture, schema.KindPublic, schema.KindTemplate, schema.KindVideo:
		return p.userDir(kind)

	case schema.KindAppCache:
		return p.appScoped(p.cacheDir)

	case schema.KindAppConfig:
		return p.appScoped(p.configDir)

	case schema.KindAppData, schema.KindAppLocalData:
		return p.appScoped(p.dataDir)

	case schema.KindAppLog:
		return p.appLogDir()

	default:
		return "", fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
}
