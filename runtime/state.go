package runtime

import (
	"fmt"
	"room-sync/domain"
	"room-sync/errors"
)

// Snapshot returns the state of a live session in the requested version.
func (e *SyncEngine) Snapshot(sessionID domain.SessionID, version int) (domain.State, error) {
	session, ok := e.sessions.Get(sessionID)
	if !ok {
		return nil, fmt.Errorf("state %d: %w", sessionID, errors.ErrSessionNotFound)
	}
	return session.Snapshot(version), nil
}

// State sends a catch-up snapshot to the requesting connection only.
func (e *SyncEngine) State(cmd domain.StateCommand) error {
	if cmd.SessionID == 0 {
		e.log.Error("State requested without session id", "client_id", cmd.ClientID, "conn_id", cmd.Conn)
		return fmt.Errorf("state: %w", errors.ErrMissingIDs)
	}
	state, err := e.Snapshot(cmd.SessionID, cmd.Version)
	if err != nil {
		e.log.Warn("State requested for unknown session", "session_id", cmd.SessionID,
			"client_id", cmd.ClientID, "conn_id", cmd.Conn)
		return err
	}
	e.hooks.State(cmd.Conn, state)
	return nil
}

func (e *SyncEngine) SessionInfo(cmd domain.SessionInfoCommand) error {
	session, ok := e.sessions.Get(cmd.SessionID)
	if !ok {
		e.log.Warn("Session info requested for unknown session", "session_id", cmd.SessionID, "conn_id", cmd.Conn)
		return fmt.Errorf("session info %d: %w", cmd.SessionID, errors.ErrSessionNotFound)
	}
	e.hooks.SessionInfo(cmd.Conn, session.Info())
	return nil
}
