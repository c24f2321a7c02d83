package errors

import "fmt"

var (
	ErrWorkerPanic       = fmt.Errorf("worker panic")
	ErrMissingIDs        = fmt.Errorf("session id and client id are required")
	ErrSessionNotFound   = fmt.Errorf("session not found")
	ErrBindingNotFound   = fmt.Errorf("connection binding not found")
	ErrClientNotFound    = fmt.Errorf("client not in session roster")
	ErrRepairIneligible  = fmt.Errorf("connection is pending repair")
	ErrHookMissing       = fmt.Errorf("notification hook not provided")
	ErrConnectionClosed  = fmt.Errorf("connection closed")
	ErrInvalidPlaybackID = fmt.Errorf("invalid playback id")
	ErrInvalidPacket     = fmt.Errorf("invalid packet")
	ErrUnknownEvent      = fmt.Errorf("unknown event")
	ErrQueueFull         = fmt.Errorf("queue full")
	ErrAlreadyRecording  = fmt.Errorf("session is already recording")
	ErrNotRecording      = fmt.Errorf("session is not recording")
)
