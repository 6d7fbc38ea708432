// Package probe decides cheaply whether a native file may be a symlink file.
//
// A positive answer is only a hint; callers still read the file and check
// its marker. A negative answer is final.
package probe

import (
	"github.com/forgottenswitch/cygpathint/symlink"
	"github.com/spf13/afero"
)

type Prober interface {
	// MaybeSymlink reports whether the file at nativePath may be a symlink file.
	// A missing or inaccessible file is not a symlink.
	MaybeSymlink(nativePath string) bool
}

// Func adapts an ordinary function to [Prober].
type Func func(nativePath string) bool

func (f Func) MaybeSymlink(nativePath string) bool {
	return f(nativePath)
}

var (
	// Never answers false for every path.
	// [System] returns Never on hosts without file attribute bits.
	Never Prober = Func(func(string) bool { return false })
	// Always answers true for every path, leaving the decision to the marker check.
	Always Prober = Func(func(string) bool { return true })
)

// Sniff returns a Prober that opens the file in fsys and checks for [symlink.Magic].
// It is the only meaningful Prober for trees whose attribute bits are not visible,
// e.g. a Windows volume mounted on another host.
func Sniff(fsys afero.Fs) Prober {
	return Func(func(nativePath string) bool {
		return symlink.Sniff(fsys, nativePath)
	})
}
