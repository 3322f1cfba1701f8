package stat

import (
	"time"
)

// filetimeUnixOffset is the number of 100-nanosecond intervals between the
// native epoch (1601-01-01) and the Unix epoch (1970-01-01).
const filetimeUnixOffset = 116444736000000000

// Ticks returns the number of 100-nanosecond intervals since the native epoch.
func (f Filetime) Ticks() uint64 {
	return uint64(f.HighDateTime)<<32 | uint64(f.LowDateTime)
}

// Time converts the timestamp to a time.Time in UTC.
func (f Filetime) Time() time.Time {
	ticks := int64(f.Ticks()) - filetimeUnixOffset
	return time.Unix(ticks/1e7, (ticks%1e7)*100).UTC()
}

// FiletimeFromTime converts a time.Time to a native timestamp.
func FiletimeFromTime(t time.Time) Filetime {
	ticks := uint64(t.Unix()*1e7+int64(t.Nanosecond()/100)) + filetimeUnixOffset
	return Filetime{
		LowDateTime:  uint32(ticks),
		HighDateTime: uint32(ticks >> 32),
	}
}
