package cygpath

import (
	"github.com/forgottenswitch/cygpathint/probe"
	"github.com/go-logr/logr"
	"github.com/spf13/afero"
)

// DefaultMaxHops is the hop limit of a [Resolver] built without [WithMaxHops].
// It follows linux's maximum: https://man7.org/linux/man-pages/man7/path_resolution.7.html
const DefaultMaxHops = 40

type Option func(r *Resolver)

// WithFs sets the filesystem symlink files are read from.
// Defaults to [afero.NewOsFs].
func WithFs(fsys afero.Fs) Option {
	return func(r *Resolver) {
		r.fsys = fsys
	}
}

// WithProber sets the Prober consulted before reading a file.
// Defaults to [probe.System].
func WithProber(p probe.Prober) Option {
	return func(r *Resolver) {
		r.prober = p
	}
}

// WithLogger sets the logger. Hops are logged at V(1),
// swallowed read failures at V(2).
func WithLogger(logger logr.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// WithMaxHops limits the number of symlinks followed by a single resolution.
// n <= 0 removes the limit; a symlink cycle then never terminates.
func WithMaxHops(n int) Option {
	return func(r *Resolver) {
		r.maxHops = n
	}
}
