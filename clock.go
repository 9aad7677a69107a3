package bink

import "time"

// Clock supplies the monotonic millisecond timestamp the pacer uses to
// decide when a frame is due. Injected as a constructor
// parameter rather than a package-level variable or singleton, since a
// Decoder is a value owned by exactly one caller, not a shared resource.
type Clock interface {
	NowMillis() int64
}

// SystemClock is the default Clock, backed by the monotonic reading
// time.Now() already carries.
type SystemClock struct{ start time.Time }

// NewSystemClock returns a Clock epoched at the moment of the call.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// NowMillis returns elapsed milliseconds since the clock was created.
func (c *SystemClock) NowMillis() int64 {
	return time.Since(c.start).Milliseconds()
}
