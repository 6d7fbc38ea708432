//go:build windows

package probe

import "golang.org/x/sys/windows"

// System returns the Prober backed by the file attribute query of the host.
// Cygwin marks its symlink files with FILE_ATTRIBUTE_SYSTEM.
func System() Prober {
	return systemProber{}
}

type systemProber struct{}

func (systemProber) MaybeSymlink(nativePath string) bool {
	attrs, ok := Attributes(nativePath)
	return ok && attrs&windows.FILE_ATTRIBUTE_SYSTEM != 0
}

// Attributes returns the attribute bits of nativePath.
// ok is false if the file does not exist or can not be queried.
func Attributes(nativePath string) (attrs uint32, ok bool) {
	p, err := windows.UTF16PtrFromString(nativePath)
	if err != nil {
		return 0, false
	}
	attrs, err = windows.GetFileAttributes(p)
	if err != nil {
		return 0, false
	}
	return attrs, true
}
