package runtime

import (
	"log/slog"
	"room-sync/domain"
	"time"
)

// Repairer re-establishes the session and room bindings of a connection.
type Repairer interface {
	Repair(conn domain.ConnID, sessionID domain.SessionID, clientID domain.ClientID)
}

// RepairCenter holds connections whose bindings are suspect after a
// reconnect. It only keeps identities, never session data.
type RepairCenter struct {
	log      *slog.Logger
	activity *ActivityMonitor
	minWait  time.Duration
	repairer Repairer
	pending  map[domain.ConnID]struct{}
}

func NewRepairCenter(log *slog.Logger, activity *ActivityMonitor, minWait time.Duration) *RepairCenter {
	return &RepairCenter{
		log:      log,
		activity: activity,
		minWait:  minWait,
		pending:  make(map[domain.ConnID]struct{}),
	}
}

// SetRepairer wires the procedure run once a connection becomes eligible.
func (r *RepairCenter) SetRepairer(repairer Repairer) {
	r.repairer = repairer
}

func (r *RepairCenter) Add(conn domain.ConnID) {
	r.log.Info("Added connection to repair center", "conn_id", conn)
	r.pending[conn] = struct{}{}
}

func (r *RepairCenter) Remove(conn domain.ConnID) {
	delete(r.pending, conn)
}

func (r *RepairCenter) Has(conn domain.ConnID) bool {
	_, ok := r.pending[conn]
	return ok
}

func (r *RepairCenter) Len() int {
	return len(r.pending)
}

// Eligible reports whether enough quiet time has passed for conn.
// An unseen connection is always eligible.
func (r *RepairCenter) Eligible(conn domain.ConnID) bool {
	delta, seen := r.activity.DeltaTime(conn)
	return !seen || delta >= r.minWait
}

// RepairIfEligible repairs a pending connection once it has been quiet for
// at least the minimum wait. It returns true when conn is no longer pending,
// either because it was never pending or because it has just been repaired.
func (r *RepairCenter) RepairIfEligible(conn domain.ConnID, sessionID domain.SessionID, clientID domain.ClientID) bool {
	if !r.Has(conn) {
		return true
	}
	if !r.Eligible(conn) {
		return false
	}
	r.log.Info("Repairing connection", "session_id", sessionID, "client_id", clientID, "conn_id", conn)
	if r.repairer != nil {
		r.repairer.Repair(conn, sessionID, clientID)
	}
	r.activity.UpdateTime(conn)
	r.Remove(conn)
	return true
}
