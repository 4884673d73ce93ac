package manifest

import (
	"fmt"

	"github.com/cbout22/makegen/internal/layout"
)

// Manifest describes every entry a layout creates under a project root.
type Manifest struct {
	// Version of the manifest format.
	Version int     `toml:"version" json:"version" yaml:"version"`
	Entries []Entry `toml:"entries" json:"entries" yaml:"entries"`
}

// Entry is a single directory or template file of a layout.
type Entry struct {
	Path     string      `toml:"path" json:"path" yaml:"path"` // slash-separated, relative to root
	Kind     layout.Kind `toml:"kind" json:"kind" yaml:"kind"`
	Mode     string      `toml:"mode" json:"mode" yaml:"mode"`                               // octal, e.g. "0644"
	Size     int         `toml:"size,omitempty" json:"size,omitempty" yaml:"size,omitempty"` // files only
	Checksum string      `toml:"checksum,omitempty" json:"checksum,omitempty" yaml:"checksum,omitempty"`
}

// FromLayout builds the manifest of l. Directories come first, in creation
// order, followed by files in write order.
func FromLayout(l layout.Layout) *Manifest {
	m := &Manifest{
		Version: 1,
		Entries: make([]Entry, 0, len(l.Dirs)+len(l.Files)),
	}
	for _, d := range l.Dirs {
		m.Entries = append(m.Entries, Entry{
			Path: d.Name,
			Kind: layout.KindDir,
			Mode: FormatMode(uint32(d.Mode.Perm())),
		})
	}
	for _, f := range l.Files {
		m.Entries = append(m.Entries, Entry{
			Path:     f.Path,
			Kind:     layout.KindFile,
			Mode:     FormatMode(uint32(f.Mode.Perm())),
			Size:     len(f.Contents),
			Checksum: Checksum(f.Contents),
		})
	}
	return m
}

// FormatMode renders permission bits as a four-digit octal string.
func FormatMode(perm uint32) string {
	return fmt.Sprintf("%04o", perm)
}
