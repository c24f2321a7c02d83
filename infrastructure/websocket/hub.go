package websocket

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"room-sync/domain"
	"room-sync/errors"
	"sync"
	"time"

	ws "github.com/gorilla/websocket"
	"github.com/samber/lo"
)

const (
	defaultSendBuffer   = 256
	defaultWriteTimeout = 10 * time.Second
)

type peer struct {
	id    domain.ConnID
	conn  *ws.Conn
	send  chan []byte
	rooms map[domain.SessionID]struct{}
}

// Hub tracks live websocket connections and their rooms. Every write goes
// through the connection's own buffered channel and write pump, so a slow
// reader never blocks the engine.
type Hub struct {
	mu           sync.RWMutex
	log          *slog.Logger
	peers        map[domain.ConnID]*peer
	rooms        map[domain.SessionID]map[domain.ConnID]struct{}
	sendBuffer   int
	writeTimeout time.Duration
	pingPeriod   time.Duration
}

// NewHub builds an empty hub. With a positive pingPeriod every write pump
// pings its client at that rate; zero disables pings.
func NewHub(log *slog.Logger, sendBuffer int, writeTimeout, pingPeriod time.Duration) *Hub {
	if sendBuffer <= 0 {
		sendBuffer = defaultSendBuffer
	}
	if writeTimeout <= 0 {
		writeTimeout = defaultWriteTimeout
	}
	return &Hub{
		log:          log,
		peers:        make(map[domain.ConnID]*peer),
		rooms:        make(map[domain.SessionID]map[domain.ConnID]struct{}),
		sendBuffer:   sendBuffer,
		writeTimeout: writeTimeout,
		pingPeriod:   pingPeriod,
	}
}

// Register starts the write pump of a freshly upgraded connection.
func (h *Hub) Register(id domain.ConnID, conn *ws.Conn) {
	p := &peer{
		id:    id,
		conn:  conn,
		send:  make(chan []byte, h.sendBuffer),
		rooms: make(map[domain.SessionID]struct{}),
	}
	h.mu.Lock()
	h.peers[id] = p
	h.mu.Unlock()
	go h.writePump(p)
}

// Unregister drops a connection whose read side ended. It returns false
// when the server already closed the connection itself.
func (h *Hub) Unregister(id domain.ConnID) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.drop(id)
}

// Len returns the number of live connections.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.peers)
}

// Members returns the connections currently in a room.
func (h *Hub) Members(sessionID domain.SessionID) []domain.ConnID {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return lo.Keys(h.rooms[sessionID])
}

func (h *Hub) drop(id domain.ConnID) bool {
	p, ok := h.peers[id]
	if !ok {
		return false
	}
	for sid := range p.rooms {
		h.removeMember(sid, id)
	}
	delete(h.peers, id)
	close(p.send)
	return true
}

func (h *Hub) removeMember(sid domain.SessionID, id domain.ConnID) {
	members := h.rooms[sid]
	delete(members, id)
	if len(members) == 0 {
		delete(h.rooms, sid)
	}
}

func (h *Hub) writePump(p *peer) {
	var ping <-chan time.Time
	if h.pingPeriod > 0 {
		ticker := time.NewTicker(h.pingPeriod)
		defer ticker.Stop()
		ping = ticker.C
	}
	defer p.conn.Close()
	for {
		select {
		case msg, ok := <-p.send:
			_ = p.conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
			if !ok {
				_ = p.conn.WriteMessage(ws.CloseMessage, ws.FormatCloseMessage(ws.CloseNormalClosure, ""))
				return
			}
			if err := p.conn.WriteMessage(ws.TextMessage, msg); err != nil {
				h.log.Debug("Write failed", "conn_id", p.id, "error", err)
				return
			}
		case <-ping:
			_ = p.conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
			if err := p.conn.WriteMessage(ws.PingMessage, nil); err != nil {
				h.log.Debug("Ping failed", "conn_id", p.id, "error", err)
				return
			}
		}
	}
}

// enqueue must be called with h.mu held.
func (h *Hub) enqueue(p *peer, event string, msg []byte) {
	select {
	case p.send <- msg:
	default:
		h.log.Warn("Dropping outbound frame, send buffer full", "conn_id", p.id, "event", event)
	}
}

func (h *Hub) send(conn domain.ConnID, event string, data any) {
	msg, err := Encode(event, data)
	if err != nil {
		h.log.Error("Unable to encode frame", "event", event, "error", err)
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	p, ok := h.peers[conn]
	if !ok {
		h.log.Debug("Skipping frame for closed connection", "conn_id", conn, "event", event)
		return
	}
	h.enqueue(p, event, msg)
}

func (h *Hub) broadcast(from domain.ConnID, sessionID domain.SessionID, event string, data any) {
	msg, err := Encode(event, data)
	if err != nil {
		h.log.Error("Unable to encode frame", "event", event, "error", err)
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for id := range h.rooms[sessionID] {
		if id == from {
			continue
		}
		if p, ok := h.peers[id]; ok {
			h.enqueue(p, event, msg)
		}
	}
}

func (h *Hub) JoinRoom(conn domain.ConnID, sessionID domain.SessionID) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	p, ok := h.peers[conn]
	if !ok {
		return fmt.Errorf("%w: %s", errors.ErrConnectionClosed, conn)
	}
	p.rooms[sessionID] = struct{}{}
	members, ok := h.rooms[sessionID]
	if !ok {
		members = make(map[domain.ConnID]struct{})
		h.rooms[sessionID] = members
	}
	members[conn] = struct{}{}
	return nil
}

func (h *Hub) LeaveRoom(conn domain.ConnID, sessionID domain.SessionID) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	p, ok := h.peers[conn]
	if !ok {
		return fmt.Errorf("%w: %s", errors.ErrConnectionClosed, conn)
	}
	delete(p.rooms, sessionID)
	h.removeMember(sessionID, conn)
	return nil
}

func (h *Hub) InRoom(conn domain.ConnID, sessionID domain.SessionID) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.rooms[sessionID][conn]
	return ok
}

// Disconnect closes the connection from the server side. The write pump
// flushes what is queued, then sends a close frame.
func (h *Hub) Disconnect(conn domain.ConnID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.drop(conn)
}

func (h *Hub) ConnectionError(conn domain.ConnID, message string) {
	h.send(conn, EventConnectionError, message)
}

func (h *Hub) InteractionUpdate(from domain.ConnID, sessionID domain.SessionID, packet json.RawMessage) {
	h.broadcast(from, sessionID, EventInteractionUpdate, packet)
}

func (h *Hub) ClientJoined(from domain.ConnID, sessionID domain.SessionID, clientID domain.ClientID) {
	h.broadcast(from, sessionID, EventJoined, clientID)
}

func (h *Hub) FailedToJoin(conn domain.ConnID, sessionID domain.SessionID, reason string) {
	h.send(conn, EventFailedToJoin, Failure{SessionID: sessionID, Reason: reason})
}

func (h *Hub) SuccessfullyJoined(conn domain.ConnID, sessionID domain.SessionID) {
	h.send(conn, EventSuccessfullyJoined, sessionID)
}

func (h *Hub) ClientLeft(from domain.ConnID, sessionID domain.SessionID, clientID domain.ClientID) {
	h.broadcast(from, sessionID, EventLeft, clientID)
}

func (h *Hub) FailedToLeave(conn domain.ConnID, sessionID domain.SessionID, reason string) {
	h.send(conn, EventFailedToLeave, Failure{SessionID: sessionID, Reason: reason})
}

func (h *Hub) SuccessfullyLeft(conn domain.ConnID, sessionID domain.SessionID) {
	h.send(conn, EventSuccessfullyLeft, sessionID)
}

func (h *Hub) ClientDisconnected(from domain.ConnID, sessionID domain.SessionID, clientID domain.ClientID) {
	h.broadcast(from, sessionID, EventDisconnected, clientID)
}

func (h *Hub) ServerName(conn domain.ConnID, name string) {
	h.send(conn, EventServerName, name)
}

func (h *Hub) SessionInfo(conn domain.ConnID, info domain.SessionInfo) {
	h.send(conn, EventSessionInfo, info)
}

func (h *Hub) State(conn domain.ConnID, state domain.State) {
	h.send(conn, EventState, state)
}

func (h *Hub) Draw(from domain.ConnID, sessionID domain.SessionID, packet json.RawMessage) {
	h.broadcast(from, sessionID, EventDraw, packet)
}

func (h *Hub) Message(from domain.ConnID, sessionID domain.SessionID, data json.RawMessage) {
	h.broadcast(from, sessionID, EventMessage, data)
}

func (h *Hub) RelayUpdate(from domain.ConnID, sessionID domain.SessionID, packet json.RawMessage) {
	h.broadcast(from, sessionID, EventRelayUpdate, packet)
}

func (h *Hub) Bump(conn domain.ConnID, sessionID domain.SessionID) {
	h.send(conn, EventBump, sessionID)
}

func (h *Hub) RejectUser(conn domain.ConnID, reason string) {
	h.send(conn, EventRejectUser, reason)
}
