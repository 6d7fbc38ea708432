// Package discover finds the Cygwin installation the process runs under.
//
// Cygwin programs load cygwin1.dll from <root>\bin, which is on PATH
// inside the environment. The first directory of PATH holding the
// marker decides the root.
package discover

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/forgottenswitch/cygpathint/cygpath"
	"github.com/go-logr/logr"
	"github.com/ngicks/go-common/serr"
	"github.com/spf13/afero"
)

// DefaultMarker is the file whose presence identifies <root>\bin.
const DefaultMarker = "cygwin1.dll"

// ErrNotFound is returned when no directory holds the marker.
var ErrNotFound = errors.New("marker not found")

type options struct {
	fsys   afero.Fs
	marker string
	logger logr.Logger
}

type Option func(o *options)

// WithFs sets the filesystem searched. Defaults to [afero.NewOsFs].
func WithFs(fsys afero.Fs) Option {
	return func(o *options) {
		o.fsys = fsys
	}
}

// WithMarker sets the marker file name. Defaults to [DefaultMarker].
func WithMarker(marker string) Option {
	return func(o *options) {
		o.marker = marker
	}
}

func WithLogger(logger logr.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts []Option) options {
	o := options{
		marker: DefaultMarker,
		logger: logr.Discard(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.fsys == nil {
		o.fsys = afero.NewOsFs()
	}
	return o
}

// Search returns the path of the first dirs[i]/marker that exists
// and is not a directory. Empty entries of dirs are skipped.
//
// If none is found Search returns an error satisfying errors.Is(err, [ErrNotFound]).
// Failures other than non-existence are gathered into that error, prefixed by their directory.
func Search(fsys afero.Fs, dirs []string, marker string) (string, error) {
	var errs []serr.PrefixErr
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		p := filepath.Join(dir, marker)
		info, err := fsys.Stat(p)
		switch {
		case err == nil && !info.IsDir():
			return p, nil
		case err == nil, errors.Is(err, fs.ErrNotExist):
			continue
		}
		errs = append(errs, serr.PrefixErr{P: dir + ": ", E: err})
	}
	if err := serr.GatherPrefixed(errs); err != nil {
		return "", fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return "", ErrNotFound
}

// RootFromMarker returns the active root two levels above markerPath.
// The root is inactive if either level is missing.
func RootFromMarker(markerPath string) cygpath.Root {
	bin, ok := parent(markerPath)
	if !ok {
		return cygpath.Inactive()
	}
	root, ok := parent(bin)
	if !ok {
		return cygpath.Inactive()
	}
	return cygpath.NewRoot(root, true)
}

func parent(p string) (string, bool) {
	dir := filepath.Dir(p)
	if dir == p || dir == "." {
		return "", false
	}
	return dir, true
}

// FromPathList searches pathList, a list of directories joined by
// [os.PathListSeparator], on any host.
func FromPathList(pathList string, opts ...Option) cygpath.Root {
	o := newOptions(opts)

	markerPath, err := Search(o.fsys, filepath.SplitList(pathList), o.marker)
	if err != nil {
		o.logger.V(1).Info("not running under cygwin", "marker", o.marker, "reason", err.Error())
		return cygpath.Inactive()
	}

	root := RootFromMarker(markerPath)
	o.logger.V(1).Info("found marker", "path", markerPath, "root", root.String())
	return root
}

// Detect searches the PATH of the process.
// On hosts other than Windows it always returns an inactive root.
func Detect(opts ...Option) cygpath.Root {
	if !hostSupported {
		return cygpath.Inactive()
	}
	return FromPathList(os.Getenv("PATH"), opts...)
}
