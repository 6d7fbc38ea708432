// Package winpath implements the handful of Windows path operations
// the translator needs, independent of the build host.
//
// path/filepath follows the host's conventions, which makes it useless
// for producing Windows paths while running elsewhere (tests included).
// Both '\' and '/' are treated as separators, as Windows does.
package winpath

import "strings"

const Separator = '\\'

func IsSep(b byte) bool {
	return b == '\\' || b == '/'
}

// IsDriveLetter reports whether b is an ASCII letter.
func IsDriveLetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

// DriveRoot returns the root of the drive named by letter, e.g. `C:\`.
// letter is upper-cased.
func DriveRoot(letter byte) string {
	if 'a' <= letter && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	return string([]byte{letter, ':', Separator})
}

// VolumeName returns the leading volume name of p.
// It understands drive letters (`C:`) and UNC shares (`\\host\share`).
func VolumeName(p string) string {
	if len(p) >= 2 && p[1] == ':' && IsDriveLetter(p[0]) {
		return p[:2]
	}
	if len(p) >= 5 && IsSep(p[0]) && IsSep(p[1]) && !IsSep(p[2]) && p[2] != '.' && p[2] != '?' {
		// \\host\share
		n := 3
		for n < len(p) && !IsSep(p[n]) {
			n++
		}
		if n >= len(p)-1 {
			return ""
		}
		n++
		if IsSep(p[n]) {
			return ""
		}
		for n < len(p) && !IsSep(p[n]) {
			n++
		}
		return p[:n]
	}
	return ""
}

// Dir returns the parent of p.
// ok is false when p has no parent: p is empty, a bare name,
// a bare volume or a volume root such as `C:\`.
// Trailing separators of p are ignored.
func Dir(p string) (parent string, ok bool) {
	vol := VolumeName(p)
	rest := p[len(vol):]

	trimmed := strings.TrimRightFunc(rest, func(r rune) bool { return r == '\\' || r == '/' })
	if trimmed == "" {
		return "", false
	}

	i := strings.LastIndexAny(trimmed, `\/`)
	if i < 0 {
		if vol == "" {
			return "", false
		}
		return vol, true
	}

	dir := strings.TrimRightFunc(trimmed[:i], func(r rune) bool { return r == '\\' || r == '/' })
	if dir == "" {
		// parent is the root of the volume; keep the separator the input had.
		return vol + trimmed[:1], true
	}
	return vol + dir, true
}

// Join joins elem onto dir with a single separator.
//
// elem carrying its own volume replaces dir entirely,
// elem rooted at a separator keeps only the volume of dir.
// Neither dir nor elem are cleaned.
func Join(dir, elem string) string {
	switch {
	case dir == "":
		return elem
	case elem == "":
		return dir
	case VolumeName(elem) != "":
		return elem
	case IsSep(elem[0]):
		return VolumeName(dir) + elem
	}
	if IsSep(dir[len(dir)-1]) || dir == VolumeName(dir) {
		return dir + elem
	}
	return dir + string(Separator) + elem
}

// FromSlash replaces every '/' in p with the Windows separator.
func FromSlash(p string) string {
	return strings.ReplaceAll(p, "/", string(Separator))
}
