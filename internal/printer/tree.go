package printer

import (
	"io"
	"strings"

	"github.com/ddddddO/gtree"

	"github.com/cbout22/makegen/internal/layout"
)

// PrintTree renders l as a directory tree headed by rootName.
// Directories get a trailing slash.
func PrintTree(w io.Writer, rootName string, l layout.Layout) error {
	root := gtree.NewRoot(rootName)
	nodes := map[string]*gtree.Node{}

	// dir returns the node for a slash-separated directory path, creating parents.
	var dir func(path string) *gtree.Node
	dir = func(path string) *gtree.Node {
		if path == "" || path == "." {
			return root
		}
		if n, ok := nodes[path]; ok {
			return n
		}
		parent, name := "", path
		if i := strings.LastIndex(path, "/"); i >= 0 {
			parent, name = path[:i], path[i+1:]
		}
		n := dir(parent).Add(name + "/")
		nodes[path] = n
		return n
	}

	for _, d := range l.Dirs {
		dir(d.Name)
	}
	for _, f := range l.Files {
		parent, name := "", f.Path
		if i := strings.LastIndex(f.Path, "/"); i >= 0 {
			parent, name = f.Path[:i], f.Path[i+1:]
		}
		dir(parent).Add(name)
	}

	return gtree.OutputProgrammably(w, root)
}
