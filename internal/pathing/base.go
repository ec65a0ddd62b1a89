package pathing

import (
	"fmt"
	"path/filepath"
)

const (
	goosDarwin = "darwin"
)

// xdgEnv returns the value of an XDG environment variable. Relative paths are
// invalid for XDG variables and are ignored.
func (p *Handler) xdgEnv(key string) string {
	value := p.OSOps.Getenv(key)
	if value == "" || !filepath.IsAbs(value) {
		return ""
	}

	return value
}

func (p *Handler) home() (string, error) {
	home, err := p.OSOps.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnresolvable, err)
	}

	return home, nil
}

// fromHome returns the XDG environment variable, if set, or else the given
// path elements joined to the home directory.
func (p *Handler) fromHome(key string, elem ...string) (string, error) {
	if dir := p.xdgEnv(key); dir != "" {
		return dir, nil
	}

	home, err := p.home()
	if err != nil {
		return "", err
	}

	return filepath.Join(append([]string{home}, elem...)...), nil
}

func (p *Handler) cacheDir() (string, error) {
	if p.goos == goosDarwin {
		dir, err := p.OSOps.UserCacheDir()
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrUnresolvable, err)
		}

		return dir, nil
	}

	return p.fromHome("XDG_CACHE_HOME", ".cache")
}

func (p *Handler) configDir() (string, error) {
	if p.goos == goosDarwin {
		dir, err := p.OSOps.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrUnresolvable, err)
		}

		return dir, nil
	}

	return p.fromHome("XDG_CONFIG_HOME", ".config")
}

func (p *Handler) dataDir() (string, error) {
	if p.goos == goosDarwin {
		return p.configDir()
	}

	return p.fromHome("XDG_DATA_HOME", ".local", "share")
}

func (p *Handler) executableDir() (string, error) {
	if p.goos == goosDarwin {
		return "", fmt.Errorf("%w: no executable directory on %s", ErrUnresolvable, p.goos)
	}

	return p.fromHome("XDG_BIN_HOME", ".local", "bin")
}

func (p *Handler) fontDir() (string, error) {
	if p.goos == goosDarwin {
		home, err := p.home()
		if err != nil {
			return "", err
		}

		return filepath.Join(home, "Library", "Fonts"), nil
	}

	data, err := p.dataDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(data, "fonts"), nil
}

// appScoped appends the application identifier to a base directory.
func (p *Handler) appScoped(base func() (string, error)) (string, error) {
	if p.identifier == "" {
		return "", ErrNoIdentifier
	}

	dir, err := base()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, p.identifier), nil
}

func (p *Handler) appLogDir() (string, error) {
	if p.identifier == "" {
		return "", ErrNoIdentifier
	}

	if p.goos == goosDarwin {
		home, err := p.home()
		if err != nil {
			return "", err
		}

		return filepath.Join(home, "Library", "Logs", p.identifier), nil
	}

	dir, err := p.appScoped(p.dataDir)
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "logs"), nil
}
