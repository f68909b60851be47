// Package fspath holds the few touch points between typed paths and the host filesystem.
package fspath

import (
	"os"
)

// Local is a machine-dependent path representation. It is the format expected by functions in the
// path/filepath module, and the only format the host hands out.
type Local = string

// Getwd returns the process' working directory. It is a variable so that tests can pin it.
var Getwd func() (Local, error) = os.Getwd
