// Package must provides cleanup helpers for operations whose failure can't be
// meaningfully handled by the caller. Failures are logged as warnings.
package must

import (
	"io"

	"github.com/mutagen-io/winstat/pkg/logging"
)

// Close closes c, logging a warning if closure fails.
func Close(c io.Closer, logger *logging.Logger) {
	err := c.Close()
	if err != nil {
		logger.Warnf("Unable to close: %s", err.Error())
	}
}
