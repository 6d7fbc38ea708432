//go:build !windows

package probe

// System returns the Prober backed by the file attribute query of the host.
// This host has no such attribute, so it is [Never].
func System() Prober {
	return Never
}

// Attributes always returns ok == false on this host.
func Attributes(nativePath string) (attrs uint32, ok bool) {
	return 0, false
}
