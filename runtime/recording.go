package runtime

import (
	"context"
	"encoding/json"
	"fmt"
	"room-sync/domain"
	"room-sync/errors"
)

func (e *SyncEngine) StartRecording(cmd domain.StartRecordingCommand) error {
	session, ok := e.sessions.Get(cmd.SessionID)
	if !ok {
		e.log.Warn("Cannot start recording, session not found", "session_id", cmd.SessionID, "conn_id", cmd.Conn)
		return fmt.Errorf("start recording %d: %w", cmd.SessionID, errors.ErrSessionNotFound)
	}
	start := e.now()
	if !session.StartRecording(start) {
		e.log.Warn("Session is already recording", "session_id", cmd.SessionID, "capture_id", session.CaptureID)
		return fmt.Errorf("start recording %d: %w", cmd.SessionID, errors.ErrAlreadyRecording)
	}

	capture := domain.Capture{CaptureID: session.CaptureID, SessionID: session.ID, Start: start}
	if e.captures != nil {
		e.persist("capture directory", func(ctx context.Context) error {
			return e.captures.Create(capture.SessionID, capture.Start)
		})
	}
	if e.metadata != nil {
		e.persist("capture start", func(ctx context.Context) error {
			return e.metadata.StartCapture(ctx, capture)
		})
	}
	e.log.Info("Started recording", "session_id", session.ID, "capture_id", capture.CaptureID)
	return nil
}

func (e *SyncEngine) EndRecording(cmd domain.EndRecordingCommand) error {
	session, ok := e.sessions.Get(cmd.SessionID)
	if !ok {
		e.log.Warn("Cannot end recording, session not found", "session_id", cmd.SessionID, "conn_id", cmd.Conn)
		return fmt.Errorf("end recording %d: %w", cmd.SessionID, errors.ErrSessionNotFound)
	}
	if !e.finishRecording(session) {
		e.log.Warn("Session is not recording", "session_id", cmd.SessionID)
		return fmt.Errorf("end recording %d: %w", cmd.SessionID, errors.ErrNotRecording)
	}
	return nil
}

// finishRecording stops the recording and writes the buffer out.
func (e *SyncEngine) finishRecording(session *domain.Session) bool {
	sessionID, start := session.ID, session.RecordingStart
	captureID, records, ok := session.StopRecording()
	if !ok {
		return false
	}
	end := e.now()
	if e.captures != nil {
		e.persist("capture data", func(ctx context.Context) error {
			return e.captures.Save(sessionID, start, records)
		})
	}
	if e.metadata != nil {
		e.persist("capture end", func(ctx context.Context) error {
			return e.metadata.EndCapture(ctx, captureID, end)
		})
	}
	e.log.Info("Ended recording", "session_id", sessionID, "capture_id", captureID, "records", len(records))
	return true
}

// Playback asks the player to stream a capture back into a live session.
func (e *SyncEngine) Playback(cmd domain.PlaybackCommand) error {
	if cmd.SessionID == 0 {
		e.log.Error("Playback requested without session id", "client_id", cmd.ClientID, "conn_id", cmd.Conn)
		return fmt.Errorf("playback: %w", errors.ErrMissingIDs)
	}
	captured, start, err := domain.ParsePlaybackID(cmd.PlaybackID)
	if err != nil {
		e.log.Warn("Invalid playback id", "session_id", cmd.SessionID, "playback_id", cmd.PlaybackID, "error", err)
		return fmt.Errorf("%w: %v", errors.ErrInvalidPlaybackID, err)
	}
	if _, ok := e.sessions.Get(cmd.SessionID); !ok {
		e.log.Warn("Playback requested for unknown session", "session_id", cmd.SessionID, "playback_id", cmd.PlaybackID)
		return fmt.Errorf("playback %d: %w", cmd.SessionID, errors.ErrSessionNotFound)
	}
	if e.player == nil {
		e.log.Warn("Playback requested but no player is configured", "session_id", cmd.SessionID, "error", errors.ErrHookMissing)
		return fmt.Errorf("playback: %w", errors.ErrHookMissing)
	}
	if !e.player.Play(cmd.SessionID, cmd.PlaybackID, captured, start) {
		e.log.Warn("Playback not started", "session_id", cmd.SessionID, "playback_id", cmd.PlaybackID)
		return fmt.Errorf("playback %s: %w", cmd.PlaybackID, errors.ErrQueueFull)
	}
	e.log.Info("Started playback", "session_id", cmd.SessionID, "playback_id", cmd.PlaybackID, "client_id", cmd.ClientID)
	return nil
}

// PlaybackFrame relays one replayed record to the whole room. The session
// is resolved again for every frame; once it is gone the playback stops.
func (e *SyncEngine) PlaybackFrame(cmd domain.PlaybackFrameCommand) error {
	if _, ok := e.sessions.Get(cmd.SessionID); !ok {
		e.log.Info("Session vanished during playback", "session_id", cmd.SessionID, "playback_id", cmd.PlaybackID)
		if e.player != nil {
			e.player.Stop(cmd.PlaybackID)
		}
		return fmt.Errorf("playback frame %d: %w", cmd.SessionID, errors.ErrSessionNotFound)
	}
	data, err := json.Marshal(cmd.Record)
	if err != nil {
		return fmt.Errorf("playback frame: %w", err)
	}
	e.hooks.Message("", cmd.SessionID, data)
	return nil
}

func (e *SyncEngine) PlaybackEnd(cmd domain.PlaybackEndCommand) {
	if cmd.Err != nil {
		e.log.Warn("Playback failed", "session_id", cmd.SessionID, "playback_id", cmd.PlaybackID, "error", cmd.Err)
		return
	}
	e.log.Info("Playback finished", "session_id", cmd.SessionID, "playback_id", cmd.PlaybackID, "frames", cmd.Frames)
}
