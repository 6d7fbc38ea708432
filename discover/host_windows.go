//go:build windows

package discover

const hostSupported = true
