package scaffold

import (
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// memFS is an in-memory FileSystem that records calls and injects faults.
type memFS struct {
	dirs  map[string]bool
	files map[string][]byte
	modes map[string]os.FileMode
	calls []string

	mkdirErr   map[string]error
	openErr    map[string]error
	chmodErr   map[string]error // applies to File.Chmod
	closeErr   map[string]error
	shortWrite map[string]int // bytes actually written before stopping

	handles []*memFile
}

var _ FileSystem = (*memFS)(nil)

func newMemFS(root string) *memFS {
	return &memFS{
		dirs:       map[string]bool{root: true},
		files:      map[string][]byte{},
		modes:      map[string]os.FileMode{root: 0o755},
		mkdirErr:   map[string]error{},
		openErr:    map[string]error{},
		chmodErr:   map[string]error{},
		closeErr:   map[string]error{},
		shortWrite: map[string]int{},
	}
}

func (m *memFS) Mkdir(path string, perm os.FileMode) error {
	m.calls = append(m.calls, "mkdir "+path)
	if err := m.mkdirErr[path]; err != nil {
		return &fs.PathError{Op: "mkdir", Path: path, Err: err}
	}
	if m.dirs[path] || m.files[path] != nil {
		return &fs.PathError{Op: "mkdir", Path: path, Err: fs.ErrExist}
	}
	if !m.dirs[filepath.Dir(path)] {
		return &fs.PathError{Op: "mkdir", Path: path, Err: fs.ErrNotExist}
	}
	m.dirs[path] = true
	m.modes[path] = perm
	return nil
}

func (m *memFS) Chmod(path string, mode os.FileMode) error {
	m.calls = append(m.calls, "chmod "+path)
	m.modes[path] = mode
	return nil
}

func (m *memFS) Stat(path string) (os.FileInfo, error) {
	switch {
	case m.dirs[path]:
		return memInfo{name: filepath.Base(path), dir: true, mode: m.modes[path]}, nil
	case m.files[path] != nil:
		return memInfo{name: filepath.Base(path), size: int64(len(m.files[path])), mode: m.modes[path]}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
}

func (m *memFS) OpenFile(path string, flag int, perm os.FileMode) (File, error) {
	m.calls = append(m.calls, "open "+path)
	if err := m.openErr[path]; err != nil {
		return nil, &fs.PathError{Op: "open", Path: path, Err: err}
	}
	if !m.dirs[filepath.Dir(path)] {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	if _, ok := m.files[path]; !ok {
		m.modes[path] = perm
	}
	m.files[path] = []byte{}
	f := &memFile{fs: m, path: path}
	m.handles = append(m.handles, f)
	return f, nil
}

func (m *memFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return data, nil
}

type memFile struct {
	fs     *memFS
	path   string
	closed bool
}

func (f *memFile) Write(p []byte) (int, error) {
	n := len(p)
	if limit, ok := f.fs.shortWrite[f.path]; ok && limit < n {
		n = limit
	}
	f.fs.files[f.path] = append(f.fs.files[f.path], p[:n]...)
	// Deliberately returns a nil error on a short write, like a misbehaving writer.
	return n, nil
}

func (f *memFile) Chmod(mode os.FileMode) error {
	f.fs.calls = append(f.fs.calls, "fchmod "+f.path)
	if err := f.fs.chmodErr[f.path]; err != nil {
		return &fs.PathError{Op: "chmod", Path: f.path, Err: err}
	}
	f.fs.modes[f.path] = mode
	return nil
}

func (f *memFile) Close() error {
	f.fs.calls = append(f.fs.calls, "close "+f.path)
	f.closed = true
	return f.fs.closeErr[f.path]
}

type memInfo struct {
	name string
	size int64
	dir  bool
	mode os.FileMode
}

func (i memInfo) Name() string       { return i.name }
func (i memInfo) Size() int64        { return i.size }
func (i memInfo) ModTime() time.Time { return time.Time{} }
func (i memInfo) IsDir() bool        { return i.dir }
func (i memInfo) Sys() any           { return nil }

func (i memInfo) Mode() os.FileMode {
	if i.dir {
		return i.mode | fs.ModeDir
	}
	return i.mode
}
