package scaffold

import (
	"os"
	"runtime"
)

// OSFileSystem implements FileSystem using the real filesystem.
type OSFileSystem struct{}

var _ FileSystem = (*OSFileSystem)(nil)

func (OSFileSystem) Mkdir(path string, perm os.FileMode) error {
	return os.Mkdir(path, perm)
}

// Chmod is a no-op on Windows, which has no Unix permission bits.
func (OSFileSystem) Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}

func (OSFileSystem) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

func (OSFileSystem) OpenFile(path string, flag int, perm os.FileMode) (File, error) {
	f, err := os.OpenFile(path, flag, perm)
	if err != nil {
		return nil, err
	}
	return osFile{f}, nil
}

func (OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

type osFile struct {
	*os.File
}

func (f osFile) Chmod(mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return f.File.Chmod(mode)
}
