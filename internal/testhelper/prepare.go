// Package testhelper builds filesystem fixtures holding Cygwin symlink files.
package testhelper

import (
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"sync"

	"github.com/forgottenswitch/cygpathint/internal/winpath"
	"github.com/forgottenswitch/cygpathint/probe"
	"github.com/forgottenswitch/cygpathint/symlink"
	"github.com/spf13/afero"
	"gotest.tools/v3/assert"
)

type LineKind string

const (
	LineKindMkdir     LineKind = "mkdir"
	LineKindWriteFile LineKind = "write_file"
	LineKindSymlink   LineKind = "symlink"
)

// LineDirection is a parsed fixture line.
//
//	C:\dir\                   mkdir
//	C:\dir\file: content      write file, content may be a quoted Go string
//	C:\dir\link -> target     write a symlink file (UTF-16LE)
//	C:\dir\link -> target [utf8]
//
// Both '\' and '/' are accepted as trailing separator of a mkdir line.
type LineDirection struct {
	LineKind   LineKind
	Path       string
	TargetPath string // for symlink target
	Encoding   symlink.Encoding
	Content    []byte // for write file content
}

var encodingSuffixes = map[string]symlink.Encoding{
	" [utf8]":    symlink.UTF8,
	" [utf16le]": symlink.UTF16LE,
	" [utf16be]": symlink.UTF16BE,
}

// ParseLine parses txt. The returned LineDirection has empty LineKind
// if txt is not understood.
func ParseLine(txt string) LineDirection {
	switch {
	case strings.Contains(txt, " -> "):
		path, target, _ := strings.Cut(txt, " -> ")
		enc := symlink.UTF16LE
		for suf, e := range encodingSuffixes {
			if trimmed, ok := strings.CutSuffix(target, suf); ok {
				target, enc = trimmed, e
				break
			}
		}
		target, ok := unquote(target)
		if !ok {
			return LineDirection{}
		}
		return LineDirection{
			LineKind:   LineKindSymlink,
			Path:       path,
			TargetPath: target,
			Encoding:   enc,
		}
	case strings.Contains(txt, ": "):
		path, content, _ := strings.Cut(txt, ": ")
		content, ok := unquote(content)
		if !ok {
			return LineDirection{}
		}
		return LineDirection{
			LineKind: LineKindWriteFile,
			Path:     path,
			Content:  []byte(content),
		}
	case strings.HasSuffix(txt, `\`) || strings.HasSuffix(txt, "/"):
		return LineDirection{
			LineKind: LineKindMkdir,
			Path:     strings.TrimRight(txt, `\/`),
		}
	}
	return LineDirection{}
}

func unquote(s string) (string, bool) {
	if !strings.HasPrefix(s, `"`) && !strings.HasPrefix(s, "`") {
		return s, true
	}
	unquoted, err := strconv.Unquote(s)
	if err != nil {
		return "", false
	}
	return unquoted, true
}

func (l LineDirection) Execute(fsys afero.Fs) error {
	switch l.LineKind {
	case LineKindMkdir:
		return fsys.MkdirAll(l.Path, fs.ModePerm)
	case LineKindWriteFile:
		return writeFile(fsys, l.Path, l.Content)
	case LineKindSymlink:
		return writeFile(fsys, l.Path, symlink.Encode(l.TargetPath, l.Encoding))
	}
	return fmt.Errorf("unknown line kind %q", l.LineKind)
}

func writeFile(fsys afero.Fs, name string, content []byte) error {
	if dir, ok := winpath.Dir(name); ok {
		if err := fsys.MkdirAll(dir, fs.ModePerm); err != nil {
			return err
		}
	}
	return afero.WriteFile(fsys, name, content, fs.ModePerm)
}

// Fixture is a prepared filesystem together with the set of files
// that carry the system attribute, which Cygwin sets on its symlink files.
type Fixture struct {
	Fs afero.Fs

	mu     sync.Mutex
	system map[string]bool
}

// ExecuteLines executes lines against fsys.
// Every symlink line marks its path as a system file.
func ExecuteLines(fsys afero.Fs, lines ...string) (*Fixture, error) {
	f := &Fixture{Fs: fsys, system: map[string]bool{}}
	for _, line := range lines {
		l := ParseLine(line)
		if l.LineKind == "" {
			return nil, fmt.Errorf("unknown line %q", line)
		}
		if err := l.Execute(fsys); err != nil {
			return nil, err
		}
		if l.LineKind == LineKindSymlink {
			f.system[l.Path] = true
		}
	}
	return f, nil
}

// Prepare is like [ExecuteLines] on a new in-memory filesystem
// but fails t on error.
func Prepare(t assert.TestingT, lines ...string) *Fixture {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	f, err := ExecuteLines(afero.NewMemMapFs(), lines...)
	assert.NilError(t, err)
	return f
}

// MarkSystem sets the system attribute on paths.
// Marking a file that is not a symlink file mimics an ordinary system file.
func (f *Fixture) MarkSystem(paths ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range paths {
		f.system[p] = true
	}
}

// Prober answers like the attribute query would for the fixture.
func (f *Fixture) Prober() probe.Prober {
	return probe.Func(func(nativePath string) bool {
		f.mu.Lock()
		defer f.mu.Unlock()
		return f.system[nativePath]
	})
}
