package winpath

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestDriveRoot(t *testing.T) {
	assert.Equal(t, DriveRoot('f'), `F:\`)
	assert.Equal(t, DriveRoot('Z'), `Z:\`)
}

func TestVolumeName(t *testing.T) {
	for _, tc := range [][2]string{
		{`C:\dir`, "C:"},
		{`c:`, "c:"},
		{`C:foo`, "C:"},
		{`\\host\share\dir`, `\\host\share`},
		{`\\host\share`, `\\host\share`},
		{`//host/share/a/b/c`, `//host/share`},
		{`\\host`, ""},
		{`\\host\`, ""},
		{`\dir`, ""},
		{`dir\sub`, ""},
		{``, ""},
		{`1:\dir`, ""},
	} {
		assert.Equal(t, VolumeName(tc[0]), tc[1], "input = %q", tc[0])
	}
}

func TestDir(t *testing.T) {
	type testCase struct {
		input  string
		parent string
		ok     bool
	}
	for _, tc := range []testCase{
		{`C:\dir1\symlink`, `C:\dir1`, true},
		{`C:\symlink`, `C:\`, true},
		{`C:\dir1\sub\`, `C:\dir1`, true},
		{`C:\dir1\\symlink`, `C:\dir1`, true},
		{`C:/dir1/symlink`, `C:/dir1`, true},
		{`C:\`, "", false},
		{`C:`, "", false},
		{`C:foo`, `C:`, true},
		{`symlink`, "", false},
		{``, "", false},
		{`a\b`, `a`, true},
		{`\a`, `\`, true},
		{`\\host\share\a`, `\\host\share\`, true},
	} {
		parent, ok := Dir(tc.input)
		assert.Equal(t, parent, tc.parent, "input = %q", tc.input)
		assert.Equal(t, ok, tc.ok, "input = %q", tc.input)
	}
}

func TestJoin(t *testing.T) {
	type testCase struct {
		dir, elem, want string
	}
	for _, tc := range []testCase{
		{`C:\dir1`, `a\bb\ccc`, `C:\dir1\a\bb\ccc`},
		{`C:\`, `a`, `C:\a`},
		{`C:`, `a`, `C:a`},
		{``, `a\b`, `a\b`},
		{`C:\dir1`, ``, `C:\dir1`},
		{`C:\dir1`, `D:\x`, `D:\x`},
		{`C:\dir1`, `\x`, `C:\x`},
		{`dir1`, `x`, `dir1\x`},
	} {
		assert.Equal(t, Join(tc.dir, tc.elem), tc.want, "dir = %q, elem = %q", tc.dir, tc.elem)
	}
}

func TestFromSlash(t *testing.T) {
	assert.Equal(t, FromSlash("a/bb/ccc"), `a\bb\ccc`)
	assert.Equal(t, FromSlash(`a\b/c`), `a\b\c`)
}
