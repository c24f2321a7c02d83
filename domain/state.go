package domain

// StateVersion is the current state catch-up format.
const StateVersion = 2

// State is a point-in-time snapshot sent to exactly one connection.
type State interface {
	Version() int
}

// FullState is the version 2 snapshot.
type FullState struct {
	Clients     []ClientID `json:"clients"`
	Entities    []Entity   `json:"entities"`
	Scene       *EntityID  `json:"scene"`
	IsRecording bool       `json:"isRecording"`
}

func (FullState) Version() int { return StateVersion }

// LegacyState is the snapshot for clients asking for version 1 or no version.
type LegacyState struct {
	Clients     []ClientID `json:"clients"`
	Entities    []EntityID `json:"entities"`
	Locked      []EntityID `json:"locked"`
	Scene       *EntityID  `json:"scene"`
	IsRecording bool       `json:"isRecording"`
}

func (LegacyState) Version() int { return 1 }

// Snapshot builds the state for the requested version.
func (s *Session) Snapshot(version int) State {
	clients := s.Clients()
	if clients == nil {
		clients = []ClientID{}
	}
	if version == StateVersion {
		entities := s.Entities()
		if entities == nil {
			entities = []Entity{}
		}
		return FullState{
			Clients:     clients,
			Entities:    entities,
			Scene:       s.Scene,
			IsRecording: s.IsRecording,
		}
	}
	legacy := LegacyState{
		Clients:     clients,
		Entities:    make([]EntityID, 0, len(s.entities)),
		Locked:      []EntityID{},
		Scene:       s.Scene,
		IsRecording: s.IsRecording,
	}
	for _, e := range s.entities {
		legacy.Entities = append(legacy.Entities, e.ID)
		if e.Locked {
			legacy.Locked = append(legacy.Locked, e.ID)
		}
	}
	return legacy
}

// SessionInfo is the summary returned for sessionInfo requests.
type SessionInfo struct {
	ID             SessionID  `json:"id"`
	Clients        []ClientID `json:"clients"`
	Connections    int        `json:"connections"`
	Entities       int        `json:"entities"`
	Scene          *EntityID  `json:"scene"`
	IsRecording    bool       `json:"isRecording"`
	RecordingStart int64      `json:"recordingStart"`
	CaptureID      string     `json:"captureId,omitempty"`
	CreatedAt      int64      `json:"createdAt"`
}
