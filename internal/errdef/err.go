//go:build !plan9

package errdef

import "syscall"

var ELOOP = syscall.ELOOP
