package runtime

import (
	"room-sync/clock"
	"room-sync/domain"
	"time"
)

// ActivityMonitor remembers when each connection was last active.
// It is only read to decide whether a pending connection may be repaired.
type ActivityMonitor struct {
	clock    clock.Clock
	lastSeen map[domain.ConnID]time.Time
}

func NewActivityMonitor(clock clock.Clock) *ActivityMonitor {
	return &ActivityMonitor{
		clock:    clock,
		lastSeen: make(map[domain.ConnID]time.Time),
	}
}

func (a *ActivityMonitor) UpdateTime(conn domain.ConnID) {
	a.lastSeen[conn] = a.clock.Now()
}

// DeltaTime returns the time elapsed since conn was last active.
// ok is false for a connection that was never seen.
func (a *ActivityMonitor) DeltaTime(conn domain.ConnID) (time.Duration, bool) {
	last, ok := a.lastSeen[conn]
	if !ok {
		return 0, false
	}
	return a.clock.Now().Sub(last), true
}

func (a *ActivityMonitor) Forget(conn domain.ConnID) {
	delete(a.lastSeen, conn)
}

func (a *ActivityMonitor) Len() int {
	return len(a.lastSeen)
}
