package runtime

import (
	"encoding/json"
	"fmt"
	"room-sync/domain"
	"room-sync/errors"
)

const identityMismatchMessage = "Connection is bound to another client in this session"

// admit runs the checks shared by every state-changing event and resolves
// the target session. The event must not be applied when an error is returned.
func (e *SyncEngine) admit(conn domain.ConnID, sessionID domain.SessionID, clientID domain.ClientID, op string) (*domain.Session, error) {
	if !domain.HasIDs(sessionID, clientID) {
		return nil, e.protocolViolation(conn, sessionID, clientID, op)
	}

	e.firstContact(conn)
	if !e.repair.RepairIfEligible(conn, sessionID, clientID) {
		if e.stats != nil {
			e.stats.Dropped()
		}
		e.log.Debug("Dropping event from connection pending repair", "op", op,
			"session_id", sessionID, "client_id", clientID, "conn_id", conn)
		return nil, fmt.Errorf("%s: %w", op, errors.ErrRepairIneligible)
	}
	e.activity.UpdateTime(conn)

	session, created := e.sessions.GetOrCreate(sessionID, e.clock.Now())
	if created {
		e.log.Error("Event addressed to unknown session, created it", "op", op,
			"session_id", sessionID, "client_id", clientID, "conn_id", conn)
	}

	if bound, ok := session.ClientIDFromSocket(conn); ok && bound != clientID {
		e.log.Warn("Rejecting connection claiming another client", "op", op, "session_id", sessionID,
			"client_id", clientID, "bound_client_id", bound, "conn_id", conn)
		e.hooks.RejectUser(conn, identityMismatchMessage)
		e.hooks.Disconnect(conn)
		return nil, fmt.Errorf("%s: %w", op, errors.ErrBindingNotFound)
	}
	return session, nil
}

// firstContact parks a connection that writes before being bound to any
// session. Its quiet time starts now if it was never seen.
func (e *SyncEngine) firstContact(conn domain.ConnID) {
	if e.repair.Has(conn) {
		return
	}
	if _, bound := e.sessions.FindOwner(conn); bound {
		return
	}
	if _, seen := e.activity.DeltaTime(conn); !seen {
		e.activity.UpdateTime(conn)
	}
	e.repair.Add(conn)
}

// Message relays a generic application message, applies it to the session
// state and records it while the session is recording.
func (e *SyncEngine) Message(cmd domain.MessageCommand) error {
	msg := cmd.Message
	session, err := e.admit(cmd.Conn, msg.SessionID, msg.ClientID, "message")
	if err != nil {
		return err
	}
	if msg.Type == "" {
		e.log.Error("Message without type", "session_id", msg.SessionID, "client_id", msg.ClientID, "conn_id", cmd.Conn)
		return fmt.Errorf("message type: %w", errors.ErrInvalidPacket)
	}
	if len(msg.Payload) == 0 || string(msg.Payload) == "null" {
		e.log.Error("Message without payload", "session_id", msg.SessionID, "client_id", msg.ClientID, "conn_id", cmd.Conn)
		return fmt.Errorf("message payload: %w", errors.ErrInvalidPacket)
	}

	raw := msg.Raw
	if len(raw) == 0 {
		if raw, err = json.Marshal(msg); err != nil {
			return fmt.Errorf("message relay: %w", err)
		}
	}
	e.hooks.Message(cmd.Conn, msg.SessionID, raw)

	payload, err := domain.ParsePayload(msg.Payload)
	if err != nil {
		e.log.Error("Could not parse message payload", "session_id", msg.SessionID, "client_id", msg.ClientID,
			"conn_id", cmd.Conn, "error", err)
		return fmt.Errorf("message payload: %w", err)
	}
	msg.Payload = payload

	e.applyMessage(session, msg)

	if session.IsRecording {
		session.Record(msg, e.now())
	}
	return nil
}

func (e *SyncEngine) applyMessage(session *domain.Session, msg domain.Message) {
	switch msg.Type {
	case domain.MessageTypeInteraction:
		var p domain.InteractionPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			e.log.Error("Malformed interaction payload", "session_id", session.ID, "client_id", msg.ClientID, "error", err)
			return
		}
		if p.TargetEntityID == 0 {
			e.log.Error("Interaction without target entity", "session_id", session.ID, "client_id", msg.ClientID)
			return
		}
		if !session.ApplyInteraction(p.TargetEntityID, p.InteractionType) {
			e.log.Debug("Interaction has no effect on state", "session_id", session.ID, "type", p.InteractionType)
		}
	case domain.MessageTypeSync:
		var p domain.SyncPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			e.log.Error("Malformed sync payload", "session_id", session.ID, "client_id", msg.ClientID, "error", err)
			return
		}
		if p.EntityType != nil && *p.EntityType != domain.EntityTypeObjects {
			return
		}
		if session.ApplySync(p.EntityID, msg.Payload) {
			e.log.Info("Sync created entity", "session_id", session.ID, "entity_id", p.EntityID)
		}
	}
}

// Update relays a position update and stores it as the latest state of
// object entities.
func (e *SyncEngine) Update(cmd domain.UpdateCommand) error {
	p := cmd.Packet
	session, err := e.admit(cmd.Conn, p.SessionID, p.ClientID, "update")
	if err != nil {
		return err
	}
	if !session.HasClient(p.ClientID) {
		e.log.Debug("Update from client outside of session roster", "session_id", p.SessionID, "client_id", p.ClientID, "conn_id", cmd.Conn)
		return fmt.Errorf("update: %w", errors.ErrClientNotFound)
	}
	e.hooks.RelayUpdate(cmd.Conn, p.SessionID, p.Raw)

	if p.EntityType == domain.EntityTypeObjects {
		session.ApplySync(p.EntityID, p.Raw)
	}
	return nil
}

// Interact relays an interaction packet and applies the same transitions
// as interaction messages.
func (e *SyncEngine) Interact(cmd domain.InteractCommand) error {
	p := cmd.Packet
	session, err := e.admit(cmd.Conn, p.SessionID, p.ClientID, "interact")
	if err != nil {
		return err
	}
	e.hooks.InteractionUpdate(cmd.Conn, p.SessionID, p.Raw)

	if !session.HasClient(p.ClientID) {
		e.log.Debug("Interaction from client outside of session roster", "session_id", p.SessionID, "client_id", p.ClientID, "conn_id", cmd.Conn)
		return fmt.Errorf("interact: %w", errors.ErrClientNotFound)
	}
	if p.TargetEntityID == 0 {
		e.log.Error("Interaction without target entity", "session_id", p.SessionID, "client_id", p.ClientID, "conn_id", cmd.Conn)
		return fmt.Errorf("interact target: %w", errors.ErrInvalidPacket)
	}
	session.ApplyInteraction(p.TargetEntityID, p.InteractionType)
	return nil
}

// Draw strokes are relayed to the room and never stored.
func (e *SyncEngine) Draw(cmd domain.DrawCommand) error {
	p := cmd.Packet
	if p.SessionID == 0 {
		e.log.Error("Draw event without session id", "client_id", p.ClientID, "conn_id", cmd.Conn)
		return fmt.Errorf("draw: %w", errors.ErrMissingIDs)
	}
	if p.ClientID == 0 {
		e.log.Warn("Draw event without client id", "session_id", p.SessionID, "conn_id", cmd.Conn)
		return fmt.Errorf("draw: %w", errors.ErrMissingIDs)
	}
	e.hooks.Draw(cmd.Conn, p.SessionID, p.Raw)
	return nil
}
