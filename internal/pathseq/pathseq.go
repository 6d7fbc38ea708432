// Package pathseq scans POSIX-style path strings into components.
//
// Both '/' and '\' are accepted as separators and runs of them
// collapse into a single boundary. Separators are single ASCII bytes,
// so every component is a byte-offset slice of the input that keeps
// whatever UTF-8 the input carried intact.
package pathseq

import "iter"

// Component is a non-empty run of non separator bytes.
// Offsets are byte offsets into the scanned string; OffsetEnd is exclusive.
type Component struct {
	Name        string
	OffsetStart int
	OffsetEnd   int
}

// IsSep reports whether b separates path components.
func IsSep(b byte) bool {
	return b == '/' || b == '\\'
}

// Split yields non-empty components of path with their index.
// Leading, trailing and repeated separators never produce an empty component.
func Split(path string) iter.Seq2[int, Component] {
	return func(yield func(int, Component) bool) {
		i := 0
		off := 0
		for off < len(path) {
			for off < len(path) && IsSep(path[off]) {
				off++
			}
			if off >= len(path) {
				return
			}
			end := off
			for end < len(path) && !IsSep(path[end]) {
				end++
			}
			if !yield(i, Component{path[off:end], off, end}) {
				return
			}
			i++
			off = end
		}
	}
}
