// Command cygstat shows how Cygwin paths map onto native paths and
// where Cygwin symlink files lead.
//
//	cygstat [flags] PATH...
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
