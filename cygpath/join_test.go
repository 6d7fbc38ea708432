package cygpath

import (
	"testing"

	"github.com/forgottenswitch/cygpathint/internal/winpath"
	"gotest.tools/v3/assert"
)

func TestJoin(t *testing.T) {
	type testCase struct {
		name        string
		symlinkPath string
		target      string
		want        string
	}
	for _, tc := range []testCase{
		{"relative", `C:\dir1\symlink`, "a/bb/ccc", `C:\dir1\a\bb\ccc`},
		{"cygdrive", `C:\dir1\symlink`, "/cygdrive/a/bb/ccc", `A:\bb\ccc`},
		{"absolute under root", `C:\dir1\symlink`, "/usr/bin/env", `F:\cygwin\usr\bin\env`},
		{"sibling", `F:\cygwin\bin\python`, "python3.12", `F:\cygwin\bin\python3.12`},
		{"link at drive root", `C:\symlink`, "x", `C:\x`},
		{"bare file name", "symlink", "a/b", `a\b`},
		{"empty symlink path", "", "a/b", `a\b`},
		{"target with backslashes", `C:\dir1\symlink`, `a\b`, `C:\dir1\a\b`},
		{"target with native volume", `C:\dir1\symlink`, "D:/x", `D:\x`},
		{"empty target", `C:\dir1\symlink`, "", `C:\dir1`},
		{"dot dot kept", `C:\dir1\symlink`, "../x", `C:\dir1\..\x`},
		// ".." is not collapsed, so climbing out of the root
		// never reaches the drive named by a cygdrive component.
		{"dot dot into cygdrive stays under root", `F:\cygwin\home\link`, "../../cygdrive/c/x", `F:\cygwin\home\..\..\cygdrive\c\x`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, testRoot.Join(tc.symlinkPath, tc.target), tc.want)
		})
	}
}

func TestJoin_absolute_target_ignores_link_dir(t *testing.T) {
	for _, target := range []string{"/cygdrive/a/bb/ccc", "/tmp/x", "/", "//cygdrive/z"} {
		for _, link := range []string{`C:\dir1\symlink`, `D:\a\b\c\d`, "symlink", ""} {
			assert.Equal(t, testRoot.Join(link, target), testRoot.Translate(target))
		}
	}
}

func TestJoin_relative_target_joins_parent(t *testing.T) {
	for _, link := range []string{`C:\dir1\symlink`, `D:\a\b\c\d`, `C:\x`, "symlink"} {
		for _, target := range []string{"a/bb/ccc", "x", "../y"} {
			want := winpath.FromSlash(target)
			if parent, ok := winpath.Dir(link); ok {
				want = winpath.Join(parent, want)
			}
			assert.Equal(t, testRoot.Join(link, target), want)
		}
	}
}
