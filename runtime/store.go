package runtime

import (
	"room-sync/domain"
	"slices"
	"time"
)

// Owner is the result of a reverse lookup of a connection binding.
type Owner struct {
	SessionID domain.SessionID
	ClientID  domain.ClientID
}

// SessionStore maps session ids to their live state. Sessions are kept in
// creation order so that reverse scans are deterministic.
type SessionStore struct {
	sessions map[domain.SessionID]*domain.Session
	order    []domain.SessionID
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[domain.SessionID]*domain.Session)}
}

func (s *SessionStore) Get(id domain.SessionID) (*domain.Session, bool) {
	session, ok := s.sessions[id]
	return session, ok
}

// GetOrCreate returns the session with id, creating it when missing.
func (s *SessionStore) GetOrCreate(id domain.SessionID, now time.Time) (*domain.Session, bool) {
	if session, ok := s.sessions[id]; ok {
		return session, false
	}
	session := domain.NewSession(id, now)
	s.sessions[id] = session
	s.order = append(s.order, id)
	return session, true
}

func (s *SessionStore) Delete(id domain.SessionID) bool {
	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	s.order = slices.DeleteFunc(s.order, func(sid domain.SessionID) bool { return sid == id })
	return true
}

func (s *SessionStore) Len() int {
	return len(s.sessions)
}

// All returns the live sessions in creation order.
func (s *SessionStore) All() []*domain.Session {
	result := make([]*domain.Session, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.sessions[id])
	}
	return result
}

// FindOwner scans every session for the binding of conn.
func (s *SessionStore) FindOwner(conn domain.ConnID) (Owner, bool) {
	for _, id := range s.order {
		if clientID, ok := s.sessions[id].ClientIDFromSocket(conn); ok {
			return Owner{SessionID: id, ClientID: clientID}, true
		}
	}
	return Owner{}, false
}

// Connections counts bindings across all sessions.
func (s *SessionStore) Connections() int {
	total := 0
	for _, session := range s.sessions {
		total += session.SocketCount()
	}
	return total
}

// Recording counts the sessions currently recording.
func (s *SessionStore) Recording() int {
	total := 0
	for _, session := range s.sessions {
		if session.IsRecording {
			total++
		}
	}
	return total
}
