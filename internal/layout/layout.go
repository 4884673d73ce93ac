package layout

import (
	_ "embed"
	"os"
	"path/filepath"
)

// Permission bits applied to scaffolded entries.
const (
	DirMode  os.FileMode = 0o775 // rwxrwxr-x
	FileMode os.FileMode = 0o644 // rw-r--r--
)

//go:embed templates/Makefile
var makefileTemplate []byte

//go:embed templates/main.c
var mainTemplate []byte

// Kind distinguishes directories from files in a layout.
type Kind string

const (
	KindDir  Kind = "dir"
	KindFile Kind = "file"
)

// DirSpec names a directory directly under the project root.
type DirSpec struct {
	Name string
	Mode os.FileMode
}

// FileSpec is a template written verbatim to a path under the project root.
// Path is slash-separated and relative to the root.
type FileSpec struct {
	Path     string
	Contents []byte
	Mode     os.FileMode
}

// Target returns the OS path of the file under root.
func (f FileSpec) Target(root string) string {
	return filepath.Join(root, filepath.FromSlash(f.Path))
}

// Target returns the OS path of the directory under root.
func (d DirSpec) Target(root string) string {
	return filepath.Join(root, d.Name)
}

// Layout is the ordered set of directories and files making up a project.
// Directories are created in order before any file is written.
type Layout struct {
	Dirs  []DirSpec
	Files []FileSpec
}

// Default returns the built-in C project layout: src/ and inc/, a Makefile
// and a hello-world src/main.c. Each call returns an independent copy.
func Default() Layout {
	return Layout{
		Dirs: []DirSpec{
			{Name: "src", Mode: DirMode},
			{Name: "inc", Mode: DirMode},
		},
		Files: []FileSpec{
			{Path: "Makefile", Contents: clone(makefileTemplate), Mode: FileMode},
			{Path: "src/main.c", Contents: clone(mainTemplate), Mode: FileMode},
		},
	}
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
