// Package cygpath interprets Cygwin paths from a native Windows process.
//
// A [Root] maps POSIX-style absolute paths onto the Cygwin installation
// directory (or onto a drive for /cygdrive/<letter>), and a [Resolver]
// follows Cygwin symlink files to their final destination.
//
// Native paths produced here are always Windows paths, whatever the build host.
// Nothing in this package modifies the filesystem or caches results.
package cygpath

// Root is the compatibility root: the native directory that "/" maps onto.
//
// Root is an immutable value; copy or share it freely.
// The zero value is an inactive root.
type Root struct {
	native string
	active bool
}

// NewRoot returns a Root mapping "/" onto nativeRoot.
// active tells whether the process runs inside the Cygwin environment.
func NewRoot(nativeRoot string, active bool) Root {
	return Root{native: nativeRoot, active: active}
}

// Inactive returns a Root for a process outside the Cygwin environment.
func Inactive() Root {
	return Root{}
}

// NativePath returns the native path "/" maps onto.
func (r Root) NativePath() string {
	return r.native
}

// Active reports whether the process runs inside the Cygwin environment.
func (r Root) Active() bool {
	return r.active
}

func (r Root) String() string {
	if !r.active {
		return "<inactive>"
	}
	return r.native
}
