package cygpath

import (
	"strings"

	"github.com/forgottenswitch/cygpathint/internal/pathseq"
	"github.com/forgottenswitch/cygpathint/internal/winpath"
)

const cygdrive = "cygdrive"

// Translate converts a POSIX-style path into a native path.
//
// Absolute paths are placed under the root, except /cygdrive/<letter>[/...]
// which maps onto the drive <LETTER>:\. Any other input is copied component
// by component. Both '/' and '\' separate components, runs of them collapse
// and a trailing separator is dropped. Nothing else (".", "..") is interpreted.
//
// Translate is meant for an active r. On an inactive r absolute paths are
// placed under an empty root, which makes little sense but never fails.
func (r Root) Translate(posixPath string) string {
	out := make([]byte, 0, len(r.native)+len(posixPath)+1)
	rest := posixPath

	if strings.HasPrefix(posixPath, "/") {
		if letter, off, ok := matchCygdrive(posixPath); ok {
			out = append(out, winpath.DriveRoot(letter)...)
			rest = posixPath[off:]
		} else {
			out = append(out, r.native...)
		}
	}

	for _, c := range pathseq.Split(rest) {
		if len(out) > 0 && !winpath.IsSep(out[len(out)-1]) {
			out = append(out, winpath.Separator)
		}
		out = append(out, c.Name...)
	}
	return string(out)
}

// matchCygdrive matches "/+cygdrive/+<letter>" followed by the end of p or a separator.
// off is the offset just past the match, including one trailing separator.
func matchCygdrive(p string) (letter byte, off int, ok bool) {
	i := 0
	for i < len(p) && p[i] == '/' {
		i++
	}
	if i == 0 || !strings.HasPrefix(p[i:], cygdrive) {
		return 0, 0, false
	}
	i += len(cygdrive)

	j := i
	for j < len(p) && p[j] == '/' {
		j++
	}
	if j == i || j >= len(p) || !winpath.IsDriveLetter(p[j]) {
		return 0, 0, false
	}
	letter = p[j]
	j++

	if j < len(p) {
		if !pathseq.IsSep(p[j]) {
			return 0, 0, false
		}
		j++
	}
	return letter, j, true
}
