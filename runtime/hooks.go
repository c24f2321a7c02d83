package runtime

import (
	"encoding/json"
	"log/slog"
	"room-sync/contract"
	"room-sync/domain"
	"room-sync/errors"
)

// hooks forwards engine notifications to the transport. When no transport
// was provided every call is logged and skipped, and the engine carries on
// with its state mutation.
type hooks struct {
	log       *slog.Logger
	transport contract.Transport
}

func (h hooks) missing(name string, conn domain.ConnID) bool {
	if h.transport != nil {
		return false
	}
	h.log.Warn("Skipping notification", "hook", name, "conn_id", conn, "error", errors.ErrHookMissing)
	return true
}

func (h hooks) ConnectionError(conn domain.ConnID, message string) {
	if !h.missing("connectionError", conn) {
		h.transport.ConnectionError(conn, message)
	}
}

func (h hooks) InteractionUpdate(from domain.ConnID, sessionID domain.SessionID, packet json.RawMessage) {
	if !h.missing("interactionUpdate", from) {
		h.transport.InteractionUpdate(from, sessionID, packet)
	}
}

func (h hooks) ClientJoined(from domain.ConnID, sessionID domain.SessionID, clientID domain.ClientID) {
	if !h.missing("joined", from) {
		h.transport.ClientJoined(from, sessionID, clientID)
	}
}

func (h hooks) FailedToJoin(conn domain.ConnID, sessionID domain.SessionID, reason string) {
	if !h.missing("failedToJoin", conn) {
		h.transport.FailedToJoin(conn, sessionID, reason)
	}
}

func (h hooks) SuccessfullyJoined(conn domain.ConnID, sessionID domain.SessionID) {
	if !h.missing("successfullyJoined", conn) {
		h.transport.SuccessfullyJoined(conn, sessionID)
	}
}

func (h hooks) ClientLeft(from domain.ConnID, sessionID domain.SessionID, clientID domain.ClientID) {
	if !h.missing("left", from) {
		h.transport.ClientLeft(from, sessionID, clientID)
	}
}

func (h hooks) FailedToLeave(conn domain.ConnID, sessionID domain.SessionID, reason string) {
	if !h.missing("failedToLeave", conn) {
		h.transport.FailedToLeave(conn, sessionID, reason)
	}
}

func (h hooks) SuccessfullyLeft(conn domain.ConnID, sessionID domain.SessionID) {
	if !h.missing("successfullyLeft", conn) {
		h.transport.SuccessfullyLeft(conn, sessionID)
	}
}

func (h hooks) ClientDisconnected(from domain.ConnID, sessionID domain.SessionID, clientID domain.ClientID) {
	if !h.missing("disconnected", from) {
		h.transport.ClientDisconnected(from, sessionID, clientID)
	}
}

func (h hooks) ServerName(conn domain.ConnID, name string) {
	if !h.missing("serverName", conn) {
		h.transport.ServerName(conn, name)
	}
}

func (h hooks) SessionInfo(conn domain.ConnID, info domain.SessionInfo) {
	if !h.missing("sessionInfo", conn) {
		h.transport.SessionInfo(conn, info)
	}
}

func (h hooks) State(conn domain.ConnID, state domain.State) {
	if !h.missing("state", conn) {
		h.transport.State(conn, state)
	}
}

func (h hooks) Draw(from domain.ConnID, sessionID domain.SessionID, packet json.RawMessage) {
	if !h.missing("draw", from) {
		h.transport.Draw(from, sessionID, packet)
	}
}

func (h hooks) Message(from domain.ConnID, sessionID domain.SessionID, data json.RawMessage) {
	if !h.missing("message", from) {
		h.transport.Message(from, sessionID, data)
	}
}

func (h hooks) RelayUpdate(from domain.ConnID, sessionID domain.SessionID, packet json.RawMessage) {
	if !h.missing("relayUpdate", from) {
		h.transport.RelayUpdate(from, sessionID, packet)
	}
}

func (h hooks) Bump(conn domain.ConnID, sessionID domain.SessionID) {
	if !h.missing("bump", conn) {
		h.transport.Bump(conn, sessionID)
	}
}

func (h hooks) RejectUser(conn domain.ConnID, reason string) {
	if !h.missing("rejectUser", conn) {
		h.transport.RejectUser(conn, reason)
	}
}

// Room operations without a transport succeed so that joins and leaves
// still update session state.

func (h hooks) JoinRoom(conn domain.ConnID, sessionID domain.SessionID) error {
	if h.missing("joinRoom", conn) {
		return nil
	}
	return h.transport.JoinRoom(conn, sessionID)
}

func (h hooks) LeaveRoom(conn domain.ConnID, sessionID domain.SessionID) error {
	if h.missing("leaveRoom", conn) {
		return nil
	}
	return h.transport.LeaveRoom(conn, sessionID)
}

func (h hooks) InRoom(conn domain.ConnID, sessionID domain.SessionID) bool {
	if h.missing("inRoom", conn) {
		return true
	}
	return h.transport.InRoom(conn, sessionID)
}

func (h hooks) Disconnect(conn domain.ConnID) {
	if !h.missing("disconnect", conn) {
		h.transport.Disconnect(conn)
	}
}
