// Package symlink reads the symlink representation used by Cygwin:
// a regular file starting with the ASCII marker "!<symlink>" followed by
// the link target text.
//
// The target text is UTF-16 when it starts with a byte order mark
// (FE FF big endian, FF FE little endian), otherwise it is UTF-8.
// Decoding never fails: invalid sequences are replaced with U+FFFD.
package symlink

import (
	"bytes"
	"errors"
	"io"

	"github.com/forgottenswitch/cygpathint/internal/errdef"
	"github.com/spf13/afero"
	"golang.org/x/text/encoding/unicode"
)

// Magic is the marker every symlink file starts with.
const Magic = "!<symlink>"

// ErrNotSymlink is returned when a file does not start with [Magic].
var ErrNotSymlink = errors.New("not a symlink")

var (
	bomBE = []byte{0xfe, 0xff}
	bomLE = []byte{0xff, 0xfe}
)

// Decode decodes whole file content.
// ok is false if content does not start with [Magic].
func Decode(content []byte) (target string, ok bool) {
	payload, ok := bytes.CutPrefix(content, []byte(Magic))
	if !ok {
		return "", false
	}
	return DecodePayload(payload), true
}

// DecodePayload decodes the bytes following [Magic].
//
// UTF-16 text ends at the first zero code unit following the byte order mark.
// A dangling odd byte is dropped.
func DecodePayload(payload []byte) string {
	switch {
	case bytes.HasPrefix(payload, bomBE):
		return decodeUTF16(payload[len(bomBE):], unicode.BigEndian)
	case bytes.HasPrefix(payload, bomLE):
		return decodeUTF16(payload[len(bomLE):], unicode.LittleEndian)
	default:
		// The UTF-8 decoder substitutes ill-formed sequences and never errs.
		out, _ := unicode.UTF8.NewDecoder().Bytes(payload)
		return string(out)
	}
}

func decodeUTF16(b []byte, e unicode.Endianness) string {
	b = b[:len(b)&^1]
	for i := 0; i < len(b); i += 2 {
		if b[i] == 0 && b[i+1] == 0 {
			b = b[:i]
			break
		}
	}
	// Unpaired surrogates become U+FFFD; even sized input never errs.
	out, _ := unicode.UTF16(e, unicode.IgnoreBOM).NewDecoder().Bytes(b)
	return string(out)
}

// open opens name and consumes [Magic].
// The returned file is positioned at the start of the payload.
func open(fsys afero.Fs, name string) (afero.File, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}

	head := make([]byte, len(Magic))
	_, err = io.ReadFull(f, head)
	switch {
	case errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF):
		err = errdef.WrapPathErr("readlink", name, ErrNotSymlink)
	case err != nil:
		err = errdef.WrapPathErr("read", name, err)
	case string(head) != Magic:
		err = errdef.WrapPathErr("readlink", name, ErrNotSymlink)
	}
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}

// Read reads the symlink file at name and returns its decoded target.
//
// Read returns an error satisfying errors.Is(err, [ErrNotSymlink])
// if the file does not start with [Magic], or the error from fsys
// if name can not be opened or read.
func Read(fsys afero.Fs, name string) (string, error) {
	f, err := open(fsys, name)
	if err != nil {
		return "", err
	}
	defer f.Close()

	payload, err := io.ReadAll(f)
	if err != nil {
		return "", errdef.WrapPathErr("read", name, err)
	}
	return DecodePayload(payload), nil
}

// ReadTarget is like [Read] but collapses every failure into ok == false.
func ReadTarget(fsys afero.Fs, name string) (target string, ok bool) {
	target, err := Read(fsys, name)
	if err != nil {
		return "", false
	}
	return target, true
}

// Sniff reports whether the file at name starts with [Magic].
// Only the marker is read.
func Sniff(fsys afero.Fs, name string) bool {
	f, err := open(fsys, name)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}
