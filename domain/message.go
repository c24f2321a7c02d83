// Package domain contains core concepts of the synchronization engine.
// This file defines inbound application messages and their recorded form.
package domain

import (
	"encoding/json"
	"fmt"
)

// Message is a generic application message. Raw keeps the frame exactly as
// received so that it can be relayed to peers untouched.
type Message struct {
	SessionID SessionID       `json:"session_id"`
	ClientID  ClientID        `json:"client_id"`
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"message"`
	Raw       json.RawMessage `json:"-"`
}

// RecordedMessage is the annotated copy of a Message stored in a capture.
// Seq is the arrival time relative to the start of the recording.
type RecordedMessage struct {
	SessionID SessionID       `json:"session_id"`
	ClientID  ClientID        `json:"client_id"`
	Type      string          `json:"type"`
	Message   json.RawMessage `json:"message"`
	Ts        int64           `json:"ts"`
	Seq       int64           `json:"seq"`
	CaptureID string          `json:"capture_id"`
}

// InteractionPayload is the parsed payload of an interaction message.
type InteractionPayload struct {
	SourceEntityID  EntityID        `json:"sourceEntity_id"`
	TargetEntityID  EntityID        `json:"targetEntity_id"`
	InteractionType InteractionType `json:"interactionType"`
}

// SyncPayload is the parsed payload of a sync message. EntityType is optional.
type SyncPayload struct {
	EntityID   EntityID `json:"entityId"`
	EntityType *int     `json:"entityType"`
}

// ParsePayload returns the payload as a JSON document. Clients may send the
// payload either as an object or as a string holding serialized JSON.
func ParsePayload(raw json.RawMessage) (json.RawMessage, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty payload")
	}
	if raw[0] != '"' {
		if !json.Valid(raw) {
			return nil, fmt.Errorf("payload is not valid JSON")
		}
		return raw, nil
	}
	var serialized string
	if err := json.Unmarshal(raw, &serialized); err != nil {
		return nil, fmt.Errorf("payload string: %w", err)
	}
	if !json.Valid([]byte(serialized)) {
		return nil, fmt.Errorf("payload string does not hold JSON: %q", serialized)
	}
	return json.RawMessage(serialized), nil
}
