package scaffold

import (
	"io"
	"os"
)

// FileSystem abstracts the filesystem calls the scaffolder makes.
type FileSystem interface {
	// Mkdir creates a single directory. It must fail if the path exists.
	Mkdir(path string, perm os.FileMode) error

	// Chmod changes the mode of a path.
	Chmod(path string, mode os.FileMode) error

	// Stat returns file info for a path.
	Stat(path string) (os.FileInfo, error)

	// OpenFile opens a file with the given flags, like os.OpenFile.
	OpenFile(path string, flag int, perm os.FileMode) (File, error)

	// ReadFile reads a whole file.
	ReadFile(path string) ([]byte, error)
}

// File is an open, writable file handle.
type File interface {
	io.WriteCloser

	// Chmod changes the mode of the open file.
	Chmod(mode os.FileMode) error
}
