// Package clock abstracts time so that repair timing, recording sequence
// numbers and playback offsets can be driven deterministically in tests.
package clock

import "time"

// Clock is injected wherever production code would call time.Now or
// time.After directly.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

// Real returns a Clock backed by the time package.
func Real() Clock { return realClock{} }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// UnixMilli is the millisecond timestamp used on the wire and in capture files.
func UnixMilli(c Clock) int64 {
	return c.Now().UnixMilli()
}
