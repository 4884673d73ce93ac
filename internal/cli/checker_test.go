package cli

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"syscall"
	"testing"
	"time"

	"github.com/cbout22/makegen/internal/layout"
	"github.com/cbout22/makegen/internal/scaffold"
)

// testFS is a minimal read-only FileSystem for checker tests.
type testFS struct {
	entries map[string]testEntry
	statErr map[string]error
}

type testEntry struct {
	dir  bool
	mode os.FileMode
	data []byte
}

var _ scaffold.FileSystem = (*testFS)(nil)

func newTestFS() *testFS {
	return &testFS{entries: map[string]testEntry{}, statErr: map[string]error{}}
}

// scaffolded returns a testFS holding exactly what a successful run writes under root.
func scaffolded(root string) *testFS {
	f := newTestFS()
	l := layout.Default()
	for _, d := range l.Dirs {
		f.entries[d.Target(root)] = testEntry{dir: true, mode: d.Mode}
	}
	for _, file := range l.Files {
		f.entries[file.Target(root)] = testEntry{mode: file.Mode, data: file.Contents}
	}
	return f
}

func (f *testFS) Mkdir(path string, perm os.FileMode) error { return syscall.EROFS }
func (f *testFS) Chmod(path string, mode os.FileMode) error { return syscall.EROFS }

func (f *testFS) OpenFile(path string, flag int, perm os.FileMode) (scaffold.File, error) {
	return nil, syscall.EROFS
}

func (f *testFS) Stat(path string) (os.FileInfo, error) {
	if err := f.statErr[path]; err != nil {
		return nil, &fs.PathError{Op: "stat", Path: path, Err: err}
	}
	e, ok := f.entries[path]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
	}
	return testInfo{name: filepath.Base(path), entry: e}, nil
}

func (f *testFS) ReadFile(path string) ([]byte, error) {
	e, ok := f.entries[path]
	if !ok || e.dir {
		return nil, &fs.PathError{Op: "read", Path: path, Err: fs.ErrNotExist}
	}
	return e.data, nil
}

type testInfo struct {
	name  string
	entry testEntry
}

func (i testInfo) Name() string       { return i.name }
func (i testInfo) Size() int64        { return int64(len(i.entry.data)) }
func (i testInfo) ModTime() time.Time { return time.Time{} }
func (i testInfo) IsDir() bool        { return i.entry.dir }
func (i testInfo) Sys() any           { return nil }

func (i testInfo) Mode() os.FileMode {
	if i.entry.dir {
		return i.entry.mode | fs.ModeDir
	}
	return i.entry.mode
}

func statusOf(t *testing.T, results []CheckResult, path string) CheckStatus {
	t.Helper()
	for _, r := range results {
		if r.Path == path {
			return r.Status
		}
	}
	t.Fatalf("no result for %s", path)
	return CheckError
}

func TestCheckLayout_AllOK(t *testing.T) {
	t.Parallel()
	root := "proj"
	results := CheckLayout(root, layout.Default(), scaffolded(root))

	if len(results) != 4 {
		t.Fatalf("got %d results, want 4", len(results))
	}
	for _, r := range results {
		if r.Status != CheckOK {
			t.Errorf("%s: status = %d, want CheckOK", r.Path, r.Status)
		}
	}
}

func TestCheckLayout_EmptyRoot(t *testing.T) {
	t.Parallel()
	results := CheckLayout("proj", layout.Default(), newTestFS())
	for _, r := range results {
		if r.Status != CheckMissing {
			t.Errorf("%s: status = %d, want CheckMissing", r.Path, r.Status)
		}
	}
}

func TestCheckLayout_Modified(t *testing.T) {
	t.Parallel()
	root := "proj"
	fsys := scaffolded(root)
	main := filepath.Join(root, "src", "main.c")
	fsys.entries[main] = testEntry{mode: 0o644, data: []byte("int main(void) { return 0; }\n")}

	results := CheckLayout(root, layout.Default(), fsys)
	if got := statusOf(t, results, "src/main.c"); got != CheckModified {
		t.Errorf("status = %d, want CheckModified", got)
	}
	if got := statusOf(t, results, "Makefile"); got != CheckOK {
		t.Errorf("Makefile status = %d, want CheckOK", got)
	}
}

func TestCheckLayout_ModeMismatch(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("modes are not compared on windows")
	}
	root := "proj"
	fsys := scaffolded(root)
	mk := filepath.Join(root, "Makefile")
	e := fsys.entries[mk]
	e.mode = 0o600
	fsys.entries[mk] = e
	inc := filepath.Join(root, "inc")
	fsys.entries[inc] = testEntry{dir: true, mode: 0o755}

	results := CheckLayout(root, layout.Default(), fsys)
	if got := statusOf(t, results, "Makefile"); got != CheckModeMismatch {
		t.Errorf("Makefile status = %d, want CheckModeMismatch", got)
	}
	if got := statusOf(t, results, "inc"); got != CheckModeMismatch {
		t.Errorf("inc status = %d, want CheckModeMismatch", got)
	}
	for _, r := range results {
		if r.Path == "Makefile" && (r.GotMode != 0o600 || r.WantMode != 0o644) {
			t.Errorf("Makefile modes = %o/%o, want 600/644", r.GotMode, r.WantMode)
		}
	}
}

func TestCheckLayout_WrongKind(t *testing.T) {
	t.Parallel()
	root := "proj"
	fsys := scaffolded(root)
	fsys.entries[filepath.Join(root, "inc")] = testEntry{mode: 0o644, data: []byte("x")}
	fsys.entries[filepath.Join(root, "Makefile")] = testEntry{dir: true, mode: 0o775}

	results := CheckLayout(root, layout.Default(), fsys)
	if got := statusOf(t, results, "inc"); got != CheckWrongKind {
		t.Errorf("inc status = %d, want CheckWrongKind", got)
	}
	if got := statusOf(t, results, "Makefile"); got != CheckWrongKind {
		t.Errorf("Makefile status = %d, want CheckWrongKind", got)
	}
}

func TestCheckLayout_StatError(t *testing.T) {
	t.Parallel()
	root := "proj"
	fsys := scaffolded(root)
	fsys.statErr[filepath.Join(root, "src")] = syscall.EACCES

	results := CheckLayout(root, layout.Default(), fsys)
	for _, r := range results {
		if r.Path != "src" {
			continue
		}
		if r.Status != CheckError || r.Err == nil {
			t.Errorf("src: status = %d err = %v, want CheckError with cause", r.Status, r.Err)
		}
	}
}
