//go:build !windows

package discover

const hostSupported = false
