package cygpath

import (
	"errors"
	"strings"

	"github.com/forgottenswitch/cygpathint/internal/errdef"
	"github.com/forgottenswitch/cygpathint/probe"
	"github.com/forgottenswitch/cygpathint/symlink"
	"github.com/go-logr/logr"
	"github.com/spf13/afero"
)

// Resolver follows Cygwin symlink files.
//
// Resolver holds no mutable state; a single Resolver may serve
// concurrent calls as long as its filesystem and Prober allow it.
type Resolver struct {
	root    Root
	fsys    afero.Fs
	prober  probe.Prober
	logger  logr.Logger
	maxHops int
}

func NewResolver(root Root, opts ...Option) *Resolver {
	r := &Resolver{
		root:    root,
		logger:  logr.Discard(),
		maxHops: DefaultMaxHops,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.fsys == nil {
		r.fsys = afero.NewOsFs()
	}
	if r.prober == nil {
		r.prober = probe.System()
	}
	return r
}

func (r *Resolver) Root() Root {
	return r.root
}

// MaybeSymlink asks the Prober of r about nativePath.
func (r *Resolver) MaybeSymlink(nativePath string) bool {
	return r.prober.MaybeSymlink(nativePath)
}

// ReadTarget reads the target text of the symlink file at nativePath.
// ok is false if the file can not be read or is not a symlink file.
func (r *Resolver) ReadTarget(nativePath string) (target string, ok bool) {
	target, err := symlink.Read(r.fsys, nativePath)
	if err != nil {
		if r.logger.V(2).Enabled() {
			r.logger.V(2).Info("not a symlink", "path", nativePath, "reason", err.Error())
		}
		return "", false
	}
	return target, true
}

// ResolveOnce follows the symlink file at nativePath by a single hop.
// nativePath is returned unchanged if it is not a symlink file.
func (r *Resolver) ResolveOnce(nativePath string) string {
	target, ok := r.ReadTarget(nativePath)
	if !ok {
		return nativePath
	}
	return r.root.Join(nativePath, target)
}

// Resolve follows symlink files starting at nativePath until it reaches
// a path that is not a symlink and returns that path.
//
// nativePath itself is read without consulting the Prober:
// callers are expected to have probed it already.
// If the hop limit is reached, the last path reached is returned.
func (r *Resolver) Resolve(nativePath string) string {
	chain, err := r.ResolveChain(nativePath)
	if err != nil {
		r.logger.Error(err, "symlink resolution stopped", "path", nativePath, "hops", len(chain)-1)
	}
	return chain[len(chain)-1]
}

// ResolveChain is like [Resolver.Resolve] but returns every path visited,
// nativePath first and the final destination last.
//
// When the hop limit is reached it returns the chain so far and
// an error for which [IsLoop] reports true (syscall.ELOOP on most platforms).
func (r *Resolver) ResolveChain(nativePath string) ([]string, error) {
	chain := []string{nativePath}
	dest := nativePath
	for hop := 0; ; hop++ {
		if hop > 0 && !r.prober.MaybeSymlink(dest) {
			return chain, nil
		}
		if r.maxHops > 0 && hop >= r.maxHops {
			return chain, errdef.WrapPathErr("readlink", nativePath, errdef.ELOOP)
		}

		target, ok := r.ReadTarget(dest)
		if !ok {
			return chain, nil
		}

		next := r.root.Join(dest, target)
		r.logger.V(1).Info("followed symlink", "hop", hop+1, "link", dest, "target", target, "dest", next)
		dest = next
		chain = append(chain, dest)
	}
}

// ResolvePath translates path and follows it if it is a symlink file.
//
// Outside the Cygwin environment path is returned unchanged.
// Otherwise a path starting with '/' is translated by [Root.Translate],
// any other path is taken as already native.
func (r *Resolver) ResolvePath(path string) string {
	if !r.root.Active() {
		r.logger.V(1).Info("not running under cygwin, path left as is", "path", path)
		return path
	}

	native := path
	if strings.HasPrefix(path, "/") {
		native = r.root.Translate(path)
	}

	if !r.prober.MaybeSymlink(native) {
		return native
	}
	return r.Resolve(native)
}

// ResolvePath is a shorthand for NewResolver(root).ResolvePath(path),
// reading the host filesystem and probing with [probe.System].
func ResolvePath(path string, root Root) string {
	return NewResolver(root).ResolvePath(path)
}

// IsLoop reports whether err came from the hop limit of [Resolver.ResolveChain].
func IsLoop(err error) bool {
	return errors.Is(err, errdef.ELOOP)
}
