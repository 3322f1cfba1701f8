package logging

// Level represents a log level. Its value hierarchy is ordered so that levels
// can be compared by value, with higher levels producing more output.
type Level uint

const (
	// LevelDisabled indicates that logging is completely disabled.
	LevelDisabled Level = iota
	// LevelError indicates that only fatal errors are logged.
	LevelError
	// LevelWarn indicates that both fatal and recovered errors are logged.
	LevelWarn
	// LevelInfo indicates that basic execution information is logged (in
	// addition to all errors).
	LevelInfo
	// LevelDebug indicates that status construction details are logged (in
	// addition to basic information and all errors).
	LevelDebug
	// LevelTrace indicates that every metadata probe state transition is
	// logged (in addition to all other output).
	LevelTrace
)

// levelNames maps levels to their names.
var levelNames = [...]string{
	LevelDisabled: "disabled",
	LevelError:    "error",
	LevelWarn:     "warn",
	LevelInfo:     "info",
	LevelDebug:    "debug",
	LevelTrace:    "trace",
}

// NameToLevel converts a level name to the corresponding Level value. It
// returns a boolean indicating whether or not the name was valid. If the name
// is invalid, LevelDisabled is returned.
func NameToLevel(name string) (Level, bool) {
	for level, levelName := range levelNames {
		if name == levelName {
			return Level(level), true
		}
	}
	return LevelDisabled, false
}

// String provides a human-readable representation of a log level.
func (l Level) String() string {
	if l < Level(len(levelNames)) {
		return levelNames[l]
	}
	return "unknown"
}
