package schema

import (
	"os"

	"golang.org/x/sys/unix"
)

// OS is an implementation wrapping operating system functions.
type OS struct{}

// Stat wraps around [os.Stat].
func (*OS) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// ReadDir wraps around [os.ReadDir].
func (*OS) ReadDir(name string) ([]os.DirEntry, error) {
	return os.ReadDir(name)
}

// ReadFile wraps around [os.ReadFile].
func (*OS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// Getenv wraps around [os.Getenv].
func (*OS) Getenv(key string) string {
	return os.Getenv(key)
}

// UserHomeDir wraps around [os.UserHomeDir].
func (*OS) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

// UserCacheDir wraps around [os.UserCacheDir].
func (*OS) UserCacheDir() (string, error) {
	return os.UserCacheDir()
}

// UserConfigDir wraps around [os.UserConfigDir].
func (*OS) UserConfigDir() (string, error) {
	return os.UserConfigDir()
}

// Executable wraps around [os.Executable].
func (*OS) Executable() (string, error) {
	return os.Executable()
}

// TempDir wraps around [os.TempDir].
func (*OS) TempDir() string {
	return os.TempDir()
}

// Unix is an implementation wrapping Unix operating system functions.
type Unix struct{}

// Mkdir wraps around [unix.Mkdir].
func (*Unix) Mkdir(path string, mode uint32) error {
	return unix.Mkdir(path, mode)
}
