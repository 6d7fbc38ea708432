package main

import (
	"fmt"
	"io"

	"github.com/forgottenswitch/cygpathint/cygpath"
	"github.com/ngicks/go-common/serr"
)

type stater struct {
	out      io.Writer
	resolver *cygpath.Resolver
	chain    bool
}

// statAll stats every arg, even after one of them fails.
func (s *stater) statAll(args []string) error {
	var errs []serr.PrefixErr
	for _, arg := range args {
		if err := s.stat(arg); err != nil {
			errs = append(errs, serr.PrefixErr{P: arg + ": ", E: err})
		}
	}
	return serr.GatherPrefixed(errs)
}

func (s *stater) stat(arg string) error {
	p := &printer{w: s.out}
	p.printf("%q\n", arg)

	root := s.resolver.Root()
	if !root.Active() {
		p.printf("  Not running under cygwin.\n")
		return p.err
	}
	p.printf("  Cygwin root: %q\n", root.NativePath())

	native := root.Translate(arg)
	p.printf("  Converted to native: %q\n", native)

	maybe := s.resolver.MaybeSymlink(native)
	p.printf("  Maybe cygwin symlink: %t\n", maybe)
	if !maybe {
		return p.err
	}

	if target, ok := s.resolver.ReadTarget(native); ok {
		p.printf("    Symlink contents: %q\n", target)
	} else {
		p.printf("    Symlink contents: none\n")
	}
	p.printf("    Symlink's first destination: %q\n", s.resolver.ResolveOnce(native))

	if !s.chain {
		p.printf("    Symlink's final destination: %q\n", s.resolver.Resolve(native))
		return p.err
	}

	chain, err := s.resolver.ResolveChain(native)
	for i, hop := range chain[1:] {
		p.printf("      hop %d: %q\n", i+1, hop)
	}
	p.printf("    Symlink's final destination: %q\n", chain[len(chain)-1])
	return serr.Gather(err, p.err)
}

// printer keeps the first write error and skips every write after it.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
