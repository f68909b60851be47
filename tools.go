//go:build tools

package typedpath

import (
	_ "github.com/dmarkham/enumer"
)
