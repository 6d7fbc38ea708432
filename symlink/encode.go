package symlink

import "golang.org/x/text/encoding/unicode"

// Encoding selects how [Encode] writes the target text.
type Encoding int

const (
	UTF8 Encoding = iota
	UTF16LE
	UTF16BE
)

func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "utf8"
	case UTF16LE:
		return "utf16le"
	case UTF16BE:
		return "utf16be"
	}
	return "unknown"
}

// Encode returns file content representing a symlink to target.
//
// UTF-16 content carries a byte order mark and a terminating zero unit,
// the way Cygwin writes it.
func Encode(target string, enc Encoding) []byte {
	buf := []byte(Magic)

	var (
		e   unicode.Endianness
		bom []byte
	)
	switch enc {
	case UTF16LE:
		e, bom = unicode.LittleEndian, bomLE
	case UTF16BE:
		e, bom = unicode.BigEndian, bomBE
	default:
		return append(buf, target...)
	}

	// The encoder substitutes invalid UTF-8 and never errs.
	encoded, _ := unicode.UTF16(e, unicode.IgnoreBOM).NewEncoder().Bytes([]byte(target))
	buf = append(buf, bom...)
	buf = append(buf, encoded...)
	return append(buf, 0, 0)
}
