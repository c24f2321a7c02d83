package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// NewCaptureID builds the identifier of a recording, "{session}_{start}".
// The same string is used as the playback id.
func NewCaptureID(sessionID SessionID, start int64) string {
	return fmt.Sprintf("%d_%d", sessionID, start)
}

// ParsePlaybackID splits a playback id into the captured session and the
// recording start it refers to.
func ParsePlaybackID(playbackID string) (SessionID, int64, error) {
	parts := strings.Split(playbackID, "_")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("playback id %q: expected {session}_{start}", playbackID)
	}
	sessionID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || sessionID == 0 {
		return 0, 0, fmt.Errorf("playback id %q: bad session", playbackID)
	}
	start, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || start <= 0 {
		return 0, 0, fmt.Errorf("playback id %q: bad start", playbackID)
	}
	return SessionID(sessionID), start, nil
}

// Connection event names written to the metadata store.
const (
	EventConnect    = "connect"
	EventReconnect  = "reconnect"
	EventDisconnect = "disconnect"
	EventLeave      = "leave"
)

// ConnectionEvent is one row of the connections table.
type ConnectionEvent struct {
	Timestamp int64     `cbor:"timestamp"`
	SessionID SessionID `cbor:"session_id"`
	ClientID  ClientID  `cbor:"client_id"`
	Event     string    `cbor:"event"`
}

// Capture is one row of the captures table. End is zero while recording.
type Capture struct {
	CaptureID string    `cbor:"capture_id"`
	SessionID SessionID `cbor:"session_id"`
	Start     int64     `cbor:"start"`
	End       int64     `cbor:"end"`
}
