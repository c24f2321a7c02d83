// Package domain contains the core concepts of the synchronization engine:
// sessions, their roster and connection bindings, entities and the commands
// the transport feeds into the engine.
// No runtime, network, or storage logic should be added here.
package domain

import "strconv"

// SessionID identifies a collaborative room. Zero means absent.
type SessionID int64

// ClientID is the stable identity of a participant, independent of any connection.
// Zero means absent.
type ClientID int64

// EntityID identifies a synchronized object inside a session.
type EntityID int64

// ConnID identifies one live transport connection. Empty means absent.
type ConnID string

func (s SessionID) String() string { return strconv.FormatInt(int64(s), 10) }

func (c ClientID) String() string { return strconv.FormatInt(int64(c), 10) }

// HasIDs reports whether both identifiers required by every session-scoped
// request are present.
func HasIDs(sessionID SessionID, clientID ClientID) bool {
	return sessionID != 0 && clientID != 0
}
