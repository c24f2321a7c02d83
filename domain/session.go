package domain

import (
	"encoding/json"
	"slices"
	"time"
)

// Binding associates a live connection with a client id inside a session.
type Binding struct {
	ClientID ClientID
	Conn     ConnID
}

// Session is the authoritative state of one room.
// Roster and bindings are allowed to disagree: a client may be present on
// several devices at once, each with its own connection.
type Session struct {
	ID        SessionID
	CreatedAt time.Time

	clients  []ClientID
	bindings map[ConnID]Binding
	order    []ConnID

	entities []Entity
	index    map[EntityID]int

	Scene          *EntityID
	IsRecording    bool
	RecordingStart int64
	CaptureID      string
	buffer         []RecordedMessage
}

func NewSession(id SessionID, createdAt time.Time) *Session {
	return &Session{
		ID:        id,
		CreatedAt: createdAt,
		bindings:  make(map[ConnID]Binding),
		index:     make(map[EntityID]int),
	}
}

// AddClient appends one roster occurrence.
func (s *Session) AddClient(clientID ClientID) bool {
	s.clients = append(s.clients, clientID)
	return true
}

// RemoveClient removes one roster occurrence. It returns false, without
// mutating anything, when the client is absent.
func (s *Session) RemoveClient(clientID ClientID) bool {
	i := slices.Index(s.clients, clientID)
	if i == -1 {
		return false
	}
	s.clients = slices.Delete(s.clients, i, i+1)
	return true
}

// RemoveDuplicateClients keeps the first occurrence of clientID and drops the rest.
func (s *Session) RemoveDuplicateClients(clientID ClientID) {
	seen := false
	s.clients = slices.DeleteFunc(s.clients, func(c ClientID) bool {
		if c != clientID {
			return false
		}
		if !seen {
			seen = true
			return false
		}
		return true
	})
}

func (s *Session) HasClient(clientID ClientID) bool {
	return slices.Contains(s.clients, clientID)
}

// ClientInstances counts the roster occurrences of clientID.
func (s *Session) ClientInstances(clientID ClientID) int {
	count := 0
	for _, c := range s.clients {
		if c == clientID {
			count++
		}
	}
	return count
}

// ClientCount is the total number of roster occurrences for all clients.
func (s *Session) ClientCount() int {
	return len(s.clients)
}

// Clients returns a copy of the roster in join order.
func (s *Session) Clients() []ClientID {
	return slices.Clone(s.clients)
}

// AddSocket binds conn to clientID. Re-binding an existing connection keeps
// its original position in binding order.
func (s *Session) AddSocket(conn ConnID, clientID ClientID) {
	if _, ok := s.bindings[conn]; !ok {
		s.order = append(s.order, conn)
	}
	s.bindings[conn] = Binding{ClientID: clientID, Conn: conn}
}

// RemoveSocket drops the binding of conn and reports whether one existed.
func (s *Session) RemoveSocket(conn ConnID) bool {
	if _, ok := s.bindings[conn]; !ok {
		return false
	}
	delete(s.bindings, conn)
	s.order = slices.DeleteFunc(s.order, func(c ConnID) bool { return c == conn })
	return true
}

func (s *Session) HasSocket(conn ConnID) bool {
	_, ok := s.bindings[conn]
	return ok
}

// SocketsFromClientID returns every connection bound to clientID except
// excluded, in binding order.
func (s *Session) SocketsFromClientID(clientID ClientID, excluded ConnID) []ConnID {
	var result []ConnID
	for _, conn := range s.order {
		if conn == excluded {
			continue
		}
		if s.bindings[conn].ClientID == clientID {
			result = append(result, conn)
		}
	}
	return result
}

// ClientIDFromSocket is the reverse lookup of a binding.
func (s *Session) ClientIDFromSocket(conn ConnID) (ClientID, bool) {
	b, ok := s.bindings[conn]
	return b.ClientID, ok
}

// Bindings returns the connection bindings in binding order.
func (s *Session) Bindings() []Binding {
	result := make([]Binding, 0, len(s.order))
	for _, conn := range s.order {
		result = append(result, s.bindings[conn])
	}
	return result
}

func (s *Session) SocketCount() int {
	return len(s.order)
}

// Entity returns the entity with the given id. The pointer is only valid
// until the next entity is created.
func (s *Session) Entity(id EntityID) (*Entity, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	return &s.entities[i], true
}

// EnsureEntity returns the existing entity with id, or appends a new one
// built from the given defaults.
func (s *Session) EnsureEntity(id EntityID, defaults Entity) (*Entity, bool) {
	if e, ok := s.Entity(id); ok {
		return e, false
	}
	defaults.ID = id
	if len(defaults.Latest) == 0 {
		defaults.Latest = json.RawMessage(emptyObject)
	}
	s.entities = append(s.entities, defaults)
	s.index[id] = len(s.entities) - 1
	return &s.entities[len(s.entities)-1], true
}

// Entities returns a copy of the entity records in creation order.
func (s *Session) Entities() []Entity {
	return slices.Clone(s.entities)
}

func (s *Session) EntityCount() int {
	return len(s.entities)
}

// ChangeScene points the session at a new scene.
func (s *Session) ChangeScene(scene EntityID) {
	s.Scene = &scene
}

// StartRecording flips the session into recording mode. It returns false
// when the session is already recording.
func (s *Session) StartRecording(start int64) bool {
	if s.IsRecording {
		return false
	}
	s.IsRecording = true
	s.RecordingStart = start
	s.CaptureID = NewCaptureID(s.ID, start)
	return true
}

// StopRecording ends the recording and hands back the buffered messages.
// The session buffer is reset. ok is false when nothing was recording.
func (s *Session) StopRecording() (captureID string, records []RecordedMessage, ok bool) {
	if !s.IsRecording {
		s.CaptureID = ""
		return "", nil, false
	}
	s.IsRecording = false
	captureID, records = s.CaptureID, s.buffer
	s.buffer = nil
	s.CaptureID = ""
	return captureID, records, true
}

// Record appends an annotated copy of message to the buffer. Messages are
// only accumulated while recording.
func (s *Session) Record(message Message, arrivedAt int64) bool {
	if !s.IsRecording {
		return false
	}
	s.buffer = append(s.buffer, RecordedMessage{
		SessionID: message.SessionID,
		ClientID:  message.ClientID,
		Type:      message.Type,
		Message:   message.Payload,
		Ts:        arrivedAt,
		Seq:       arrivedAt - s.RecordingStart,
		CaptureID: s.CaptureID,
	})
	return true
}

// Buffer returns a copy of the messages recorded so far.
func (s *Session) Buffer() []RecordedMessage {
	return slices.Clone(s.buffer)
}

// Info summarizes the session for sessionInfo requests.
func (s *Session) Info() SessionInfo {
	return SessionInfo{
		ID:             s.ID,
		Clients:        s.Clients(),
		Connections:    len(s.order),
		Entities:       len(s.entities),
		Scene:          s.Scene,
		IsRecording:    s.IsRecording,
		RecordingStart: s.RecordingStart,
		CaptureID:      s.CaptureID,
		CreatedAt:      s.CreatedAt.UnixMilli(),
	}
}
