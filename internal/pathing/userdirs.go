package pathing

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/desertwitch/structman/internal/schema"
	"github.com/joho/godotenv"
)

const (
	// userDirsFile is the file within the configuration directory that
	// defines the user directories (as written by xdg-user-dirs-update).
	userDirsFile = "user-dirs.dirs"
)

// userDirKeys maps the user directories to their XDG keys and the directory
// name used on systems without XDG user directories.
//
//nolint:gochecknoglobals
var userDirKeys = map[schema.Kind][2]string{
	schema.KindAudio:    {"XDG_MUSIC_DIR", "Music"},
	schema.KindDesktop:  {"XDG_DESKTOP_DIR", "Desktop"},
	schema.KindDocument: {"XDG_DOCUMENTS_DIR", "Documents"},
	schema.KindDownload: {"XDG_DOWNLOAD_DIR", "Downloads"},
	schema.KindPicture:  {"XDG_PICTURES_DIR", "Pictures"},
	schema.KindPublic:   {"XDG_PUBLICSHARE_DIR", "Public"},
	schema.KindTemplate: {"XDG_TEMPLATES_DIR", ""},
	schema.KindVideo:    {"XDG_VIDEOS_DIR", "Movies"},
}

// userDir resolves a user directory from the environment or the user-dirs
// definitions file.
func (p *Handler) userDir(kind schema.Kind) (string, error) {
	keys, ok := userDirKeys[kind]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	if p.goos == goosDarwin {
		if keys[1] == "" {
			return "", fmt.Errorf("%w: no %s directory on %s", ErrUnresolvable, kind, p.goos)
		}

		home, err := p.home()
		if err != nil {
			return "", err
		}

		return filepath.Join(home, keys[1]), nil
	}

	if dir := p.xdgEnv(keys[0]); dir != "" {
		return dir, nil
	}

	dirs, err := p.readUserDirs()
	if err != nil {
		return "", err
	}

	if dir, ok := dirs[keys[0]]; ok && filepath.IsAbs(dir) {
		return dir, nil
	}

	return "", fmt.Errorf("%w: %s not defined", ErrUnresolvable, keys[0])
}

// readUserDirs reads the user-dirs definitions file, which is a shell-style
// key/value file with the home directory written as $HOME.
func (p *Handler) readUserDirs() (map[string]string, error) {
	configDir, err := p.configDir()
	if err != nil {
		return nil, err
	}

	path := filepath.Join(configDir, userDirsFile)

	data, err := p.OSOps.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}

		return nil, fmt.Errorf("%w: %w", ErrUnresolvable, err)
	}

	home, err := p.home()
	if err != nil {
		return nil, err
	}

	content := strings.NewReplacer("${HOME}", home, "$HOME", home).Replace(string(data))

	dirs, err := godotenv.Unmarshal(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnresolvable, path, err)
	}

	return dirs, nil
}
