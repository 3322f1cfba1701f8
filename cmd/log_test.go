package cmd

import (
	"testing"

	"github.com/mutagen-io/winstat/pkg/logging"
)

func TestConfigureLogging(t *testing.T) {
	testCases := []struct {
		name          string
		expectLogger  bool
		expectedLevel logging.Level
		expectError   bool
	}{
		{"disabled", false, logging.LevelDisabled, false},
		{"warn", true, logging.LevelWarn, false},
		{"debug", true, logging.LevelDebug, false},
		{"trace", true, logging.LevelTrace, false},
		{"verbose", false, logging.LevelDisabled, true},
	}

	for _, testCase := range testCases {
		logger, err := ConfigureLogging(testCase.name)
		if testCase.expectError {
			if err == nil {
				t.Errorf("invalid level %s accepted", testCase.name)
			}
			continue
		} else if err != nil {
			t.Errorf("unable to configure logging for %s: %v", testCase.name, err)
			continue
		}
		if (logger != nil) != testCase.expectLogger {
			t.Errorf("logger presence mismatch for %s", testCase.name)
		} else if logger != nil && logger.Level() != testCase.expectedLevel {
			t.Errorf("level mismatch for %s: %v", testCase.name, logger.Level())
		}
	}

	// Restore silenced logging.
	if _, err := ConfigureLogging("disabled"); err != nil {
		t.Fatal("unable to disable logging:", err)
	}
}
