package cli

import (
	"os"
	"runtime"

	"github.com/cbout22/makegen/internal/layout"
	"github.com/cbout22/makegen/internal/manifest"
	"github.com/cbout22/makegen/internal/scaffold"
)

// CheckStatus describes the state of a single layout entry on disk.
type CheckStatus int

const (
	CheckOK           CheckStatus = iota // Present with expected kind, mode and content
	CheckMissing                         // Not on disk
	CheckWrongKind                       // A file where a directory belongs, or the reverse
	CheckModeMismatch                    // Permission bits differ
	CheckModified                        // File content differs from the template
	CheckError                           // Could not be inspected
)

// CheckResult holds the outcome of checking one layout entry.
type CheckResult struct {
	Path     string // slash-separated, relative to root
	Kind     layout.Kind
	Status   CheckStatus
	WantMode os.FileMode
	GotMode  os.FileMode // zero unless the entry exists
	Err      error       // set for CheckError
}

// CheckLayout compares every entry of l against what is under root.
// It only reads through fsys and never modifies anything.
func CheckLayout(root string, l layout.Layout, fsys scaffold.FileSystem) []CheckResult {
	results := make([]CheckResult, 0, len(l.Dirs)+len(l.Files))

	for _, d := range l.Dirs {
		r := CheckResult{Path: d.Name, Kind: layout.KindDir, WantMode: d.Mode}
		info, ok := statEntry(fsys, d.Target(root), &r)
		if ok {
			switch {
			case !info.IsDir():
				r.Status = CheckWrongKind
			case !modeMatches(r.GotMode, d.Mode):
				r.Status = CheckModeMismatch
			}
		}
		results = append(results, r)
	}

	for _, f := range l.Files {
		r := CheckResult{Path: f.Path, Kind: layout.KindFile, WantMode: f.Mode}
		info, ok := statEntry(fsys, f.Target(root), &r)
		if ok {
			if info.IsDir() {
				r.Status = CheckWrongKind
				results = append(results, r)
				continue
			}
			data, err := fsys.ReadFile(f.Target(root))
			switch {
			case err != nil:
				r.Status = CheckError
				r.Err = err
			case manifest.Checksum(data) != manifest.Checksum(f.Contents):
				r.Status = CheckModified
			case !modeMatches(r.GotMode, f.Mode):
				r.Status = CheckModeMismatch
			}
		}
		results = append(results, r)
	}

	return results
}

// statEntry fills r for a missing or unreadable path and reports whether the
// entry exists.
func statEntry(fsys scaffold.FileSystem, path string, r *CheckResult) (os.FileInfo, bool) {
	info, err := fsys.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			r.Status = CheckMissing
		} else {
			r.Status = CheckError
			r.Err = err
		}
		return nil, false
	}
	r.GotMode = info.Mode().Perm()
	return info, true
}

// modeMatches ignores permission bits on Windows, which does not have them.
func modeMatches(got, want os.FileMode) bool {
	if runtime.GOOS == "windows" {
		return true
	}
	return got == want.Perm()
}
