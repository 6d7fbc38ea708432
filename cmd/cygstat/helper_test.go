package main

import (
	"github.com/go-logr/logr"
	"github.com/google/go-cmp/cmp"
)

var (
	discardLogger = logr.Discard()
	cmpConfig     = cmp.AllowUnexported(config{})
)
