package winstat

import (
	"os"
)

// DebugEnabled controls whether or not debugging is enabled for winstat. It is
// set automatically based on the WINSTAT_DEBUG environment variable.
var DebugEnabled bool

func init() {
	// Check whether or not debugging should be enabled.
	DebugEnabled = os.Getenv("WINSTAT_DEBUG") == "1"
}
