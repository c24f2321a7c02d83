// Package websocket is the network side of the engine: it upgrades HTTP
// connections, decodes inbound frames into commands and implements the
// engine's transport on top of per-connection write pumps.
package websocket

import (
	"encoding/json"
	"fmt"
	"room-sync/domain"
	"room-sync/errors"
	"strconv"
)

// Inbound event names.
const (
	EventJoin           = "join"
	EventLeave          = "leave"
	EventSessionInfo    = "sessionInfo"
	EventState          = "state"
	EventMessage        = "message"
	EventUpdate         = "update"
	EventInteract       = "interact"
	EventDraw           = "draw"
	EventStartRecording = "start_recording"
	EventEndRecording   = "end_recording"
	EventPlayback       = "playback"
)

// Outbound event names.
const (
	EventConnectionError    = "connectionError"
	EventInteractionUpdate  = "interactionUpdate"
	EventJoined             = "joined"
	EventFailedToJoin       = "failedToJoin"
	EventSuccessfullyJoined = "successfullyJoined"
	EventLeft               = "left"
	EventFailedToLeave      = "failedToLeave"
	EventSuccessfullyLeft   = "successfullyLeft"
	EventDisconnected       = "disconnected"
	EventServerName         = "serverName"
	EventRelayUpdate        = "relayUpdate"
	EventBump               = "bump"
	EventRejectUser         = "rejectUser"
)

// Minimum packed array lengths.
const (
	minUpdateLength   = 5
	minInteractLength = 6
	minDrawLength     = 3
)

// Frame is the envelope of every websocket text message.
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Failure is the payload of failedToJoin and failedToLeave.
type Failure struct {
	SessionID domain.SessionID `json:"session_id"`
	Reason    string           `json:"reason"`
}

// wireID is an id sent either as a JSON number or as a numeric string.
type wireID int64

func (w *wireID) UnmarshalJSON(raw []byte) error {
	if string(raw) == "null" {
		return nil
	}
	id, err := decodeID(raw)
	if err != nil {
		return err
	}
	*w = wireID(id)
	return nil
}

type stateRequest struct {
	SessionID wireID `json:"session_id"`
	ClientID  wireID `json:"client_id"`
	Version   int    `json:"version"`
}

type playbackRequest struct {
	SessionID  wireID `json:"session_id"`
	ClientID   wireID `json:"client_id"`
	PlaybackID string `json:"playback_id"`
}

type messageFrame struct {
	SessionID wireID          `json:"session_id"`
	ClientID  wireID          `json:"client_id"`
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"message"`
}

// Decode turns one inbound frame into the command it describes.
func Decode(conn domain.ConnID, payload []byte) (domain.Command, error) {
	var frame Frame
	if err := json.Unmarshal(payload, &frame); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidPacket, err)
	}
	origin := domain.Origin{Conn: conn}

	switch frame.Event {
	case EventJoin:
		arr, err := packed(frame.Data, 2)
		if err != nil {
			return nil, err
		}
		cmd := domain.JoinCommand{
			Origin:    origin,
			SessionID: domain.SessionID(intAt(arr, 0)),
			ClientID:  domain.ClientID(intAt(arr, 1)),
			Bump:      true,
		}
		if len(arr) > 2 {
			var bump bool
			if json.Unmarshal(arr[2], &bump) == nil {
				cmd.Bump = bump
			}
		}
		return cmd, nil

	case EventLeave:
		arr, err := packed(frame.Data, 2)
		if err != nil {
			return nil, err
		}
		return domain.LeaveCommand{
			Origin:    origin,
			SessionID: domain.SessionID(intAt(arr, 0)),
			ClientID:  domain.ClientID(intAt(arr, 1)),
		}, nil

	case EventSessionInfo:
		id, err := decodeID(frame.Data)
		if err != nil {
			return nil, err
		}
		return domain.SessionInfoCommand{Origin: origin, SessionID: domain.SessionID(id)}, nil

	case EventState:
		var req stateRequest
		if err := json.Unmarshal(frame.Data, &req); err != nil {
			return nil, fmt.Errorf("%w: state: %v", errors.ErrInvalidPacket, err)
		}
		return domain.StateCommand{
			Origin:    origin,
			SessionID: domain.SessionID(req.SessionID),
			ClientID:  domain.ClientID(req.ClientID),
			Version:   req.Version,
		}, nil

	case EventMessage:
		var msg messageFrame
		if err := json.Unmarshal(frame.Data, &msg); err != nil {
			return nil, fmt.Errorf("%w: message: %v", errors.ErrInvalidPacket, err)
		}
		return domain.MessageCommand{Origin: origin, Message: domain.Message{
			SessionID: domain.SessionID(msg.SessionID),
			ClientID:  domain.ClientID(msg.ClientID),
			Type:      msg.Type,
			Payload:   msg.Payload,
			Raw:       frame.Data,
		}}, nil

	case EventUpdate:
		arr, err := packed(frame.Data, minUpdateLength)
		if err != nil {
			return nil, err
		}
		return domain.UpdateCommand{Origin: origin, Packet: domain.UpdatePacket{
			SessionID:  domain.SessionID(intAt(arr, 1)),
			ClientID:   domain.ClientID(intAt(arr, 2)),
			EntityID:   domain.EntityID(intAt(arr, 3)),
			EntityType: int(intAt(arr, 4)),
			Length:     len(arr),
			Raw:        frame.Data,
		}}, nil

	case EventInteract:
		arr, err := packed(frame.Data, minInteractLength)
		if err != nil {
			return nil, err
		}
		return domain.InteractCommand{Origin: origin, Packet: domain.InteractPacket{
			SessionID:       domain.SessionID(intAt(arr, 1)),
			ClientID:        domain.ClientID(intAt(arr, 2)),
			SourceEntityID:  domain.EntityID(intAt(arr, 3)),
			TargetEntityID:  domain.EntityID(intAt(arr, 4)),
			InteractionType: domain.InteractionType(intAt(arr, 5)),
			Raw:             frame.Data,
		}}, nil

	case EventDraw:
		arr, err := packed(frame.Data, minDrawLength)
		if err != nil {
			return nil, err
		}
		return domain.DrawCommand{Origin: origin, Packet: domain.DrawPacket{
			SessionID: domain.SessionID(intAt(arr, 1)),
			ClientID:  domain.ClientID(intAt(arr, 2)),
			Raw:       frame.Data,
		}}, nil

	case EventStartRecording, EventEndRecording:
		id, err := decodeID(frame.Data)
		if err != nil {
			return nil, err
		}
		if frame.Event == EventStartRecording {
			return domain.StartRecordingCommand{Origin: origin, SessionID: domain.SessionID(id)}, nil
		}
		return domain.EndRecordingCommand{Origin: origin, SessionID: domain.SessionID(id)}, nil

	case EventPlayback:
		var req playbackRequest
		if err := json.Unmarshal(frame.Data, &req); err != nil {
			return nil, fmt.Errorf("%w: playback: %v", errors.ErrInvalidPacket, err)
		}
		return domain.PlaybackCommand{
			Origin:     origin,
			SessionID:  domain.SessionID(req.SessionID),
			ClientID:   domain.ClientID(req.ClientID),
			PlaybackID: req.PlaybackID,
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", errors.ErrUnknownEvent, frame.Event)
}

// Encode wraps data into an outbound frame.
func Encode(event string, data any) ([]byte, error) {
	raw, ok := data.(json.RawMessage)
	if !ok {
		var err error
		if raw, err = json.Marshal(data); err != nil {
			return nil, fmt.Errorf("encode %s: %w", event, err)
		}
	}
	return json.Marshal(Frame{Event: event, Data: raw})
}

func packed(data json.RawMessage, minLength int) ([]json.RawMessage, error) {
	var arr []json.RawMessage
	if err := json.Unmarshal(data, &arr); err != nil {
		return nil, fmt.Errorf("%w: expected packed array: %v", errors.ErrInvalidPacket, err)
	}
	if len(arr) < minLength {
		return nil, fmt.Errorf("%w: packed array has %d fields, need %d", errors.ErrInvalidPacket, len(arr), minLength)
	}
	return arr, nil
}

// intAt reads a numeric field of a packed array; absent or non-numeric
// fields read as zero.
func intAt(arr []json.RawMessage, i int) int64 {
	if i >= len(arr) {
		return 0
	}
	id, err := decodeID(arr[i])
	if err != nil {
		return 0
	}
	return id
}

// decodeID accepts an integer id sent either as a JSON number or as a
// numeric string. Fractional ids are rejected.
func decodeID(raw json.RawMessage) (int64, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return 0, fmt.Errorf("%w: id %s", errors.ErrInvalidPacket, string(raw))
		}
		s = n.String()
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id %q", errors.ErrInvalidPacket, s)
	}
	return id, nil
}
