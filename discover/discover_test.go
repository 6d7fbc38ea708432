package discover

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/forgottenswitch/cygpathint/cygpath"
	"github.com/forgottenswitch/cygpathint/internal/observe"
	"github.com/spf13/afero"
	"gotest.tools/v3/assert"
)

var errDenied = errors.New("denied")

// statErrFs fails Stat for every name under dir.
type statErrFs struct {
	afero.Fs
	dir string
}

func (fsys statErrFs) Stat(name string) (fs.FileInfo, error) {
	if strings.HasPrefix(name, fsys.dir) {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: errDenied}
	}
	return fsys.Fs.Stat(name)
}

func join(elem ...string) string {
	return filepath.Join(elem...)
}

func prepare(t *testing.T) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	assert.NilError(t, fsys.MkdirAll(join("/", "usr", "bin"), fs.ModePerm))
	assert.NilError(t, fsys.MkdirAll(join("/", "decoy", "bin", DefaultMarker), fs.ModePerm))
	assert.NilError(t, afero.WriteFile(fsys, join("/", "cygwin64", "bin", DefaultMarker), nil, fs.ModePerm))
	assert.NilError(t, afero.WriteFile(fsys, join("/", "other", "bin", DefaultMarker), nil, fs.ModePerm))
	return fsys
}

func TestSearch(t *testing.T) {
	fsys := observe.New(prepare(t), nil)

	dirs := []string{
		"",
		join("/", "usr", "bin"),
		join("/", "decoy", "bin"),
		join("/", "cygwin64", "bin"),
		join("/", "other", "bin"),
	}
	found, err := Search(fsys, dirs, DefaultMarker)
	assert.NilError(t, err)
	assert.Equal(t, found, join("/", "cygwin64", "bin", DefaultMarker))
	// stops at the first match, in order.
	assert.DeepEqual(t, fsys.Names("Stat"), []string{
		join("/", "usr", "bin", DefaultMarker),
		join("/", "decoy", "bin", DefaultMarker),
		join("/", "cygwin64", "bin", DefaultMarker),
	})
}

func TestSearch_not_found(t *testing.T) {
	fsys := prepare(t)

	_, err := Search(fsys, []string{join("/", "usr", "bin"), join("/", "missing")}, DefaultMarker)
	assert.Equal(t, err, ErrNotFound)

	_, err = Search(fsys, nil, DefaultMarker)
	assert.Equal(t, err, ErrNotFound)

	denied := statErrFs{Fs: fsys, dir: join("/", "cygwin64")}
	_, err = Search(denied, []string{join("/", "usr", "bin"), join("/", "cygwin64", "bin")}, DefaultMarker)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, errDenied)
	assert.ErrorContains(t, err, join("/", "cygwin64", "bin")+": ")
}

func TestRootFromMarker(t *testing.T) {
	root := RootFromMarker(join("/", "cygwin64", "bin", DefaultMarker))
	assert.Assert(t, root.Active())
	assert.Equal(t, root.NativePath(), join("/", "cygwin64"))

	for _, p := range []string{
		join("/", DefaultMarker),
		join("bin", DefaultMarker),
		DefaultMarker,
		"",
	} {
		assert.Equal(t, RootFromMarker(p), cygpath.Inactive(), "path = %q", p)
	}
}

func TestFromPathList(t *testing.T) {
	fsys := prepare(t)
	list := strings.Join([]string{
		join("/", "usr", "bin"),
		join("/", "other", "bin"),
		join("/", "cygwin64", "bin"),
	}, string(filepath.ListSeparator))

	root := FromPathList(list, WithFs(fsys))
	assert.Assert(t, root.Active())
	assert.Equal(t, root.NativePath(), join("/", "other"))

	root = FromPathList(join("/", "usr", "bin"), WithFs(fsys))
	assert.Assert(t, !root.Active())

	assert.NilError(t, afero.WriteFile(fsys, join("/", "msys", "usr", "bin", "msys-2.0.dll"), nil, fs.ModePerm))
	root = FromPathList(list+string(filepath.ListSeparator)+join("/", "msys", "usr", "bin"), WithFs(fsys), WithMarker("msys-2.0.dll"))
	assert.Assert(t, root.Active())
	assert.Equal(t, root.NativePath(), join("/", "msys", "usr"))
}
