package cygpath

import (
	"strings"

	"github.com/forgottenswitch/cygpathint/internal/winpath"
)

// Join computes where the symlink file at symlinkPath points to,
// given its decoded target text.
//
// An absolute target is translated by [Root.Translate] on its own,
// so a link may point to another drive or anywhere under the root.
// A relative target has its '/' replaced and is joined to the directory
// containing symlinkPath, or returned alone if symlinkPath has no parent.
//
// ".." is not collapsed. A relative target climbing out of the root into
// "cygdrive" therefore stays under the root instead of reaching the drive.
func (r Root) Join(symlinkPath, target string) string {
	if strings.HasPrefix(target, "/") {
		return r.Translate(target)
	}
	target = winpath.FromSlash(target)
	parent, ok := winpath.Dir(symlinkPath)
	if !ok {
		return target
	}
	return winpath.Join(parent, target)
}
