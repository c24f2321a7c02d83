package runtime

import (
	"fmt"
	"room-sync/domain"
	"room-sync/errors"
)

const missingIDsMessage = "You must provide a client ID and a session ID. Disconnecting"

// Connect greets a new connection. A connection that resumes a client
// already on the roster of a live session is parked in the repair center.
func (e *SyncEngine) Connect(cmd domain.ConnectCommand) {
	conn := cmd.Conn
	e.hooks.ServerName(conn, e.config.ServerName)
	e.activity.UpdateTime(conn)
	e.log.Info("Connected", "conn_id", conn)

	if !domain.HasIDs(cmd.SessionID, cmd.ClientID) {
		return
	}
	session, ok := e.sessions.Get(cmd.SessionID)
	if !ok || !session.HasClient(cmd.ClientID) {
		return
	}
	e.repair.Add(conn)
}

func (e *SyncEngine) protocolViolation(conn domain.ConnID, sessionID domain.SessionID, clientID domain.ClientID, op string) error {
	e.log.Warn("Missing ids, disconnecting", "op", op, "session_id", sessionID, "client_id", clientID, "conn_id", conn)
	e.hooks.ConnectionError(conn, missingIDsMessage)
	e.hooks.Disconnect(conn)
	return fmt.Errorf("%s: %w", op, errors.ErrMissingIDs)
}

// Join binds a connection to a client in a session. With bump set, every
// other connection of the same client is evicted.
func (e *SyncEngine) Join(cmd domain.JoinCommand) error {
	conn, sessionID, clientID := cmd.Conn, cmd.SessionID, cmd.ClientID
	if !domain.HasIDs(sessionID, clientID) {
		return e.protocolViolation(conn, sessionID, clientID, "join")
	}

	if err := e.hooks.JoinRoom(conn, sessionID); err != nil {
		e.log.Warn("Failed to join room", "session_id", sessionID, "client_id", clientID, "conn_id", conn, "error", err)
		e.hooks.FailedToJoin(conn, sessionID, fmt.Sprintf("Failed to join room: %v", err))
		return fmt.Errorf("join room: %w", err)
	}

	session, created := e.sessions.GetOrCreate(sessionID, e.clock.Now())
	if created {
		e.log.Info("Created session", "session_id", sessionID)
	}
	session.AddClient(clientID)

	if cmd.Bump {
		if bumped := e.bump(session, clientID, conn); bumped > 0 {
			e.log.Info("Bumped stale connections", "session_id", sessionID, "client_id", clientID, "count", bumped)
		}
		session.RemoveDuplicateClients(clientID)
	}

	session.AddSocket(conn, clientID)
	e.activity.UpdateTime(conn)
	e.repair.Remove(conn)

	e.hooks.SuccessfullyJoined(conn, sessionID)
	e.hooks.ClientJoined(conn, sessionID, clientID)
	e.log.Info("Joined", "session_id", sessionID, "client_id", clientID, "conn_id", conn,
		"clients", session.Clients())

	e.logConnectionEvent(sessionID, clientID, domain.EventConnect)
	return nil
}

// bump evicts every connection bound to clientID except kept, pending repair
// or not. It returns the number of evicted connections.
func (e *SyncEngine) bump(session *domain.Session, clientID domain.ClientID, kept domain.ConnID) int {
	stale := session.SocketsFromClientID(clientID, kept)
	for _, conn := range stale {
		session.RemoveSocket(conn)
		session.RemoveClient(clientID)
		e.hooks.Bump(conn, session.ID)
		if err := e.hooks.LeaveRoom(conn, session.ID); err != nil {
			e.hooks.FailedToLeave(conn, session.ID, fmt.Sprintf("Failed to leave during bump: %v", err))
		}
		e.hooks.Disconnect(conn)
		e.forget(conn)
	}
	return len(stale)
}

// Leave removes a connection and one roster occurrence of its client.
func (e *SyncEngine) Leave(cmd domain.LeaveCommand) error {
	conn, sessionID, clientID := cmd.Conn, cmd.SessionID, cmd.ClientID
	fail := func(reason string, err error) error {
		e.log.Warn("Failed to leave", "session_id", sessionID, "client_id", clientID, "conn_id", conn, "reason", reason)
		e.hooks.FailedToLeave(conn, sessionID, reason)
		return fmt.Errorf("leave: %w", err)
	}

	if !domain.HasIDs(sessionID, clientID) {
		return fail("A session ID and a client ID are required to leave", errors.ErrMissingIDs)
	}
	if err := e.hooks.LeaveRoom(conn, sessionID); err != nil {
		return fail(fmt.Sprintf("Failed to leave room: %v", err), err)
	}
	session, ok := e.sessions.Get(sessionID)
	if !ok {
		return fail("Session not found", errors.ErrSessionNotFound)
	}
	if !session.HasSocket(conn) {
		return fail("Connection is not bound to the session", errors.ErrBindingNotFound)
	}
	if !session.HasClient(clientID) {
		return fail("Client is not in the session", errors.ErrClientNotFound)
	}
	session.RemoveSocket(conn)
	session.RemoveClient(clientID)

	e.hooks.SuccessfullyLeft(conn, sessionID)
	e.hooks.ClientLeft(conn, sessionID, clientID)
	e.repair.Remove(conn)
	e.log.Info("Left", "session_id", sessionID, "client_id", clientID, "conn_id", conn)

	e.logConnectionEvent(sessionID, clientID, domain.EventLeave)
	e.cleanupIfEmpty(session)
	return nil
}

// Disconnect handles a dead connection: rejoin in place when the reason
// allows it, otherwise remove it from its session.
func (e *SyncEngine) Disconnect(cmd domain.DisconnectCommand) error {
	conn := cmd.Conn
	owner, ok := e.sessions.FindOwner(conn)
	if !ok {
		e.log.Info("Disconnected connection was not bound to any session", "conn_id", conn, "reason", cmd.Reason)
		e.forget(conn)
		return fmt.Errorf("disconnect: %w", errors.ErrBindingNotFound)
	}
	session, _ := e.sessions.Get(owner.SessionID)

	if domain.ShouldReconnect(cmd.Reason, e.config.ReconnectOnUnknownReason) {
		e.log.Info("Attempting reconnect", "session_id", owner.SessionID, "client_id", owner.ClientID,
			"conn_id", conn, "reason", cmd.Reason)
		if e.reconnect(conn, session, owner.ClientID) {
			return nil
		}
	}

	e.removeConnection(conn, session, owner.ClientID)
	return nil
}

func (e *SyncEngine) reconnect(conn domain.ConnID, session *domain.Session, clientID domain.ClientID) bool {
	if err := e.hooks.JoinRoom(conn, session.ID); err != nil {
		e.log.Info("Reconnect failed", "session_id", session.ID, "client_id", clientID, "conn_id", conn, "error", err)
		return false
	}
	if !session.HasClient(clientID) {
		session.AddClient(clientID)
	}
	session.AddSocket(conn, clientID)
	e.repair.Add(conn)
	e.activity.UpdateTime(conn)
	e.log.Info("Reconnected", "session_id", session.ID, "client_id", clientID, "conn_id", conn)
	e.logConnectionEvent(session.ID, clientID, domain.EventReconnect)
	return true
}

func (e *SyncEngine) removeConnection(conn domain.ConnID, session *domain.Session, clientID domain.ClientID) {
	session.RemoveSocket(conn)
	if !session.RemoveClient(clientID) {
		e.log.Info("Client already absent from roster", "session_id", session.ID, "client_id", clientID, "conn_id", conn)
	}
	e.hooks.ClientDisconnected(conn, session.ID, clientID)
	e.hooks.Disconnect(conn)
	e.forget(conn)
	e.log.Info("Disconnected", "session_id", session.ID, "client_id", clientID, "conn_id", conn,
		"clients", session.Clients())

	e.logConnectionEvent(session.ID, clientID, domain.EventDisconnect)
	e.cleanupIfEmpty(session)
}

// cleanupIfEmpty tears down a session with no roster left, stopping its
// recording first.
func (e *SyncEngine) cleanupIfEmpty(session *domain.Session) bool {
	if session.ClientCount() > 0 {
		return false
	}
	if session.IsRecording {
		e.finishRecording(session)
	}
	e.sessions.Delete(session.ID)
	e.log.Info("Removed empty session", "session_id", session.ID)
	return true
}

// Repair re-establishes the bindings of conn and sends it a full state.
func (e *SyncEngine) Repair(conn domain.ConnID, sessionID domain.SessionID, clientID domain.ClientID) {
	session, _ := e.sessions.GetOrCreate(sessionID, e.clock.Now())
	if !session.HasClient(clientID) {
		e.log.Info("Client is not in session, adding it", "session_id", sessionID, "client_id", clientID, "conn_id", conn)
		session.AddClient(clientID)
	}
	if !session.HasSocket(conn) {
		e.log.Info("Connection is not in session, adding it", "session_id", sessionID, "client_id", clientID, "conn_id", conn)
		session.AddSocket(conn, clientID)
	}
	if !e.hooks.InRoom(conn, sessionID) {
		if err := e.hooks.JoinRoom(conn, sessionID); err != nil {
			e.log.Warn("Repair could not join room", "session_id", sessionID, "conn_id", conn, "error", err)
		}
	}
	e.hooks.State(conn, session.Snapshot(domain.StateVersion))
}
