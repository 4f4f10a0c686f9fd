package availability

import "time"

// ReferenceZone is the fixed UTC+9 offset every "today" comparison uses,
// whatever the caller's or the server's locale. It has no DST.
var ReferenceZone = time.FixedZone("UTC+9", 9*60*60)

// Clock returns the current instant.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }
