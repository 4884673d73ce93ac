package scaffold

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/fatih/color"

	errUtils "github.com/cbout22/makegen/internal/errors"
	"github.com/cbout22/makegen/internal/layout"
)

var (
	okColor   = color.New(color.FgGreen)
	skipColor = color.New(color.FgYellow)
)

// Scaffolder creates a project layout under a root directory.
// Directories are created first, then template files are written in order.
// The first failure stops the run; nothing is rolled back.
type Scaffolder struct {
	root   string
	layout layout.Layout
	fs     FileSystem
	log    *log.Logger
	out    io.Writer
}

// Option configures a Scaffolder.
type Option func(*Scaffolder)

// WithFileSystem replaces the real filesystem.
func WithFileSystem(fsys FileSystem) Option {
	return func(s *Scaffolder) { s.fs = fsys }
}

// WithLogger sets the logger used for debug records.
func WithLogger(l *log.Logger) Option {
	return func(s *Scaffolder) { s.log = l }
}

// WithOutput sets where progress lines are printed.
func WithOutput(w io.Writer) Option {
	return func(s *Scaffolder) { s.out = w }
}

// New creates a Scaffolder for root. By default it uses the real filesystem
// and discards progress and log output.
func New(root string, l layout.Layout, opts ...Option) *Scaffolder {
	s := &Scaffolder{
		root:   root,
		layout: l,
		fs:     OSFileSystem{},
		log:    log.New(io.Discard),
		out:    io.Discard,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Root returns the directory the scaffolder writes into.
func (s *Scaffolder) Root() string {
	return s.root
}

// Scaffold ensures every directory exists and then writes every template file.
// Errors are *errUtils.StepError values naming the failed step.
func (s *Scaffolder) Scaffold() error {
	s.log.Debug("scaffolding project", "root", s.root,
		"dirs", len(s.layout.Dirs), "files", len(s.layout.Files))

	if err := s.CreateAllDirectories(); err != nil {
		return err
	}

	for _, f := range s.layout.Files {
		step := "write " + f.Path
		if err := s.WriteTemplateFile(f.Target(s.root), f.Contents, f.Mode); err != nil {
			s.log.Debug("step failed", "step", step, "err", err)
			return errUtils.Step(step, err)
		}
		s.printf(okColor.Sprint("[ OK ]"), "wrote %s", f.Path)
	}

	s.log.Debug("scaffold complete", "root", s.root)
	return nil
}

// CreateAllDirectories creates the layout's directories in order.
// A directory that already exists is skipped.
func (s *Scaffolder) CreateAllDirectories() error {
	for _, d := range s.layout.Dirs {
		err := s.CreateDirectory(d)
		switch {
		case err == nil:
			s.printf(okColor.Sprint("[ OK ]"), "created %s", d.Name)
		case errors.Is(err, errUtils.ErrAlreadyExists):
			s.printf(skipColor.Sprint("[SKIP]"), "%s already exists", d.Name)
		default:
			step := fmt.Sprintf("create directory %q", d.Name)
			s.log.Debug("step failed", "step", step, "err", err)
			return errUtils.Step(step, err)
		}
	}
	return nil
}

// CreateDirectory creates root/name with the DirSpec mode. A new directory is
// chmod-ed afterwards so the umask cannot narrow its mode. When the directory
// is already present the returned error wraps errUtils.ErrAlreadyExists; an
// existing non-directory yields ENOTDIR.
func (s *Scaffolder) CreateDirectory(d layout.DirSpec) error {
	path := d.Target(s.root)
	s.log.Debug("creating directory", "path", path, "mode", fmt.Sprintf("%#o", d.Mode))

	if err := s.fs.Mkdir(path, d.Mode); err != nil {
		if !os.IsExist(err) {
			return errors.Wrapf(err, "creating directory %s", path)
		}
		info, statErr := s.fs.Stat(path)
		if statErr != nil {
			return errors.Wrapf(statErr, "inspecting existing %s", path)
		}
		if !info.IsDir() {
			return errors.Wrapf(&fs.PathError{Op: "mkdir", Path: path, Err: syscall.ENOTDIR},
				"%s exists but is not a directory", path)
		}
		return errors.Wrapf(errUtils.ErrAlreadyExists, "directory %s", path)
	}

	if err := s.fs.Chmod(path, d.Mode); err != nil {
		return errors.Wrapf(err, "setting permissions on %s", path)
	}
	return nil
}

// WriteTemplateFile creates or truncates path, writes all of contents and
// sets mode through the open handle. The handle is always closed. A write that
// transfers fewer bytes than len(contents) fails with a
// *errUtils.PartialWriteError. Partially written files are left in place.
func (s *Scaffolder) WriteTemplateFile(path string, contents []byte, mode os.FileMode) (err error) {
	s.log.Debug("writing template", "path", path, "bytes", len(contents), "mode", fmt.Sprintf("%#o", mode))

	f, err := s.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return errors.Wrapf(err, "opening %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "closing %s", path)
		}
	}()

	n, werr := f.Write(contents)
	if n != len(contents) {
		return errors.WithStack(&errUtils.PartialWriteError{
			Path:    path,
			Written: n,
			Want:    len(contents),
			Err:     werr,
		})
	}
	if werr != nil {
		return errors.Wrapf(werr, "writing %s", path)
	}

	if err := f.Chmod(mode); err != nil {
		return errors.Wrapf(err, "setting permissions on %s", path)
	}
	return nil
}

func (s *Scaffolder) printf(marker, format string, args ...any) {
	fmt.Fprintf(s.out, "  %s %s\n", marker, fmt.Sprintf(format, args...))
}
