package domain

import "encoding/json"

// Command is one inbound event, already decoded by the transport.
// The engine processes commands strictly one at a time.
type Command interface {
	Connection() ConnID
}

// Origin carries the connection a command arrived on.
type Origin struct {
	Conn ConnID
}

func (o Origin) Connection() ConnID { return o.Conn }

// ConnectCommand announces a new connection. SessionID and ClientID are set
// when the client presents a resume claim while reconnecting.
type ConnectCommand struct {
	Origin
	SessionID SessionID
	ClientID  ClientID
}

type JoinCommand struct {
	Origin
	SessionID SessionID
	ClientID  ClientID
	Bump      bool
}

type LeaveCommand struct {
	Origin
	SessionID SessionID
	ClientID  ClientID
}

type SessionInfoCommand struct {
	Origin
	SessionID SessionID
}

type StateCommand struct {
	Origin
	SessionID SessionID
	ClientID  ClientID
	Version   int
}

type MessageCommand struct {
	Origin
	Message Message
}

// UpdatePacket is the decoded form of a position update packed array
// [_, session, client, entity, entityType, ...].
type UpdatePacket struct {
	SessionID  SessionID
	ClientID   ClientID
	EntityID   EntityID
	EntityType int
	Length     int
	Raw        json.RawMessage
}

type UpdateCommand struct {
	Origin
	Packet UpdatePacket
}

// InteractPacket is the decoded form of an interaction packed array
// [_, session, client, source, target, interactionType, ...].
type InteractPacket struct {
	SessionID       SessionID
	ClientID        ClientID
	SourceEntityID  EntityID
	TargetEntityID  EntityID
	InteractionType InteractionType
	Raw             json.RawMessage
}

type InteractCommand struct {
	Origin
	Packet InteractPacket
}

// DrawPacket is a drawing stroke [_, session, client, ...], relayed only.
type DrawPacket struct {
	SessionID SessionID
	ClientID  ClientID
	Raw       json.RawMessage
}

type DrawCommand struct {
	Origin
	Packet DrawPacket
}

type StartRecordingCommand struct {
	Origin
	SessionID SessionID
}

type EndRecordingCommand struct {
	Origin
	SessionID SessionID
}

type PlaybackCommand struct {
	Origin
	ClientID   ClientID
	SessionID  SessionID
	PlaybackID string
}

// PlaybackFrameCommand re-enters the engine queue for every replayed record.
type PlaybackFrameCommand struct {
	Origin
	SessionID  SessionID
	PlaybackID string
	Record     RecordedMessage
}

// PlaybackEndCommand marks the end of a replay.
type PlaybackEndCommand struct {
	Origin
	SessionID  SessionID
	PlaybackID string
	Frames     int
	Err        error
}

// ShutdownCommand asks the engine to finish running recordings. Done is
// closed once it has.
type ShutdownCommand struct {
	Origin
	Done chan struct{}
}

type DisconnectCommand struct {
	Origin
	Reason string
}

type DisconnectingCommand struct {
	Origin
	Reason string
}

type ErrorCommand struct {
	Origin
	Err error
}
