package cmd

import (
	"io"
	"log"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/mutagen-io/winstat/pkg/logging"
	"github.com/mutagen-io/winstat/pkg/winstat"
)

func init() {
	// Silence the default logger until logging is explicitly configured.
	log.SetOutput(io.Discard)
}

// ConfigureLogging configures the standard logger (which backs all loggers)
// based on a log level name and returns the logger to use. An empty name
// disables logging unless debugging is enabled via the environment, in which
// case the debug level is used. A nil logger is returned if logging is
// disabled.
func ConfigureLogging(name string) (*logging.Logger, error) {
	// Determine the level.
	level := logging.LevelDisabled
	if name != "" {
		var ok bool
		if level, ok = logging.NameToLevel(name); !ok {
			return nil, errors.Errorf("invalid log level: %s", name)
		}
	} else if winstat.DebugEnabled {
		level = logging.LevelDebug
	}

	// Handle disabled logging.
	if level == logging.LevelDisabled {
		log.SetOutput(io.Discard)
		return nil, nil
	}

	// Route log output to standard error.
	log.SetOutput(color.Error)
	log.SetFlags(log.Ltime | log.Lmicroseconds)

	// Success.
	return logging.NewLogger(level), nil
}
