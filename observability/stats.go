package observability

import "sync/atomic"

// EngineStats holds gauges written by the engine goroutine and read by the
// stats reporter. All fields are atomic so readers never touch engine state.
type EngineStats struct {
	sessions       atomic.Int64
	connections    atomic.Int64
	pendingRepairs atomic.Int64
	recording      atomic.Int64
	commands       atomic.Uint64
	dropped        atomic.Uint64
}

// StatsSnapshot is a consistent-enough copy of the gauges for logging.
type StatsSnapshot struct {
	Sessions       int64  `json:"sessions"`
	Connections    int64  `json:"connections"`
	PendingRepairs int64  `json:"pending_repairs"`
	Recording      int64  `json:"recording"`
	Commands       uint64 `json:"commands"`
	Dropped        uint64 `json:"dropped"`
}

func NewEngineStats() *EngineStats {
	return &EngineStats{}
}

// Observe overwrites the engine gauges after a command has been handled.
func (s *EngineStats) Observe(sessions, connections, pendingRepairs, recording int) {
	s.sessions.Store(int64(sessions))
	s.connections.Store(int64(connections))
	s.pendingRepairs.Store(int64(pendingRepairs))
	s.recording.Store(int64(recording))
	s.commands.Add(1)
}

// Dropped counts a message that was not applied because its connection
// was still waiting for repair.
func (s *EngineStats) Dropped() {
	s.dropped.Add(1)
}

func (s *EngineStats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		Sessions:       s.sessions.Load(),
		Connections:    s.connections.Load(),
		PendingRepairs: s.pendingRepairs.Load(),
		Recording:      s.recording.Load(),
		Commands:       s.commands.Load(),
		Dropped:        s.dropped.Load(),
	}
}
