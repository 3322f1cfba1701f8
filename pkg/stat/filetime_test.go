package stat

import (
	"testing"
	"time"
)

func TestFiletimeUnixEpoch(t *testing.T) {
	epoch := Filetime{LowDateTime: 0xD53E8000, HighDateTime: 0x019DB1DE}
	if converted := epoch.Time(); !converted.Equal(time.Unix(0, 0)) {
		t.Error("native Unix epoch converted incorrectly:", converted)
	}
}

func TestFiletimeBeforeUnixEpoch(t *testing.T) {
	if converted := (Filetime{}).Time(); converted.Year() != 1601 {
		t.Error("native epoch converted incorrectly:", converted)
	}
}

func TestFiletimeRoundTrip(t *testing.T) {
	expected := time.Date(2021, time.March, 14, 15, 9, 26, 535897900, time.UTC)
	if converted := FiletimeFromTime(expected).Time(); !converted.Equal(expected) {
		t.Error("timestamp round trip mismatch:", converted, "!=", expected)
	}
}
