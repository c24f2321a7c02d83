// Package runtime holds the synchronization engine and the machinery that
// feeds it: the session store, repair bookkeeping and the command queue.
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"room-sync/clock"
	"room-sync/contract"
	"room-sync/domain"
	"room-sync/observability"
)

// Ensure *SyncEngine can be handed to the RepairCenter.
var _ Repairer = (*SyncEngine)(nil)

type EngineConfig struct {
	ServerName               string
	ReconnectOnUnknownReason bool
}

// SyncEngine is the protocol state machine. It owns every session, the
// repair center and the activity monitor, and is driven by exactly one
// goroutine through Handle.
type SyncEngine struct {
	log      *slog.Logger
	clock    clock.Clock
	config   EngineConfig
	hooks    hooks
	sessions *SessionStore
	activity *ActivityMonitor
	repair   *RepairCenter

	captures  contract.ICaptureRepository
	metadata  contract.IMetadataStore
	persister contract.IPersister
	player    contract.IPlayer
	stats     *observability.EngineStats
}

func NewSyncEngine(
	log *slog.Logger,
	clock clock.Clock,
	transport contract.Transport,
	repair *RepairCenter,
	activity *ActivityMonitor,
	persister contract.IPersister,
	captures contract.ICaptureRepository,
	metadata contract.IMetadataStore,
	stats *observability.EngineStats,
	config EngineConfig) *SyncEngine {
	e := &SyncEngine{
		log:       log,
		clock:     clock,
		config:    config,
		hooks:     hooks{log: log, transport: transport},
		sessions:  NewSessionStore(),
		activity:  activity,
		repair:    repair,
		captures:  captures,
		metadata:  metadata,
		persister: persister,
		stats:     stats,
	}
	repair.SetRepairer(e)
	return e
}

// SetPlayer wires the playback worker, which itself dispatches back into
// the engine queue.
func (e *SyncEngine) SetPlayer(player contract.IPlayer) {
	e.player = player
}

// Sessions exposes the store for inspection. It must only be used from the
// engine goroutine or once the engine has stopped.
func (e *SyncEngine) Sessions() *SessionStore {
	return e.sessions
}

// Handle processes one command to completion.
func (e *SyncEngine) Handle(cmd domain.Command) {
	var err error
	switch c := cmd.(type) {
	case domain.ConnectCommand:
		e.Connect(c)
	case domain.JoinCommand:
		err = e.Join(c)
	case domain.LeaveCommand:
		err = e.Leave(c)
	case domain.SessionInfoCommand:
		err = e.SessionInfo(c)
	case domain.StateCommand:
		err = e.State(c)
	case domain.MessageCommand:
		err = e.Message(c)
	case domain.UpdateCommand:
		err = e.Update(c)
	case domain.InteractCommand:
		err = e.Interact(c)
	case domain.DrawCommand:
		err = e.Draw(c)
	case domain.StartRecordingCommand:
		err = e.StartRecording(c)
	case domain.EndRecordingCommand:
		err = e.EndRecording(c)
	case domain.PlaybackCommand:
		err = e.Playback(c)
	case domain.PlaybackFrameCommand:
		err = e.PlaybackFrame(c)
	case domain.PlaybackEndCommand:
		e.PlaybackEnd(c)
	case domain.DisconnectCommand:
		err = e.Disconnect(c)
	case domain.DisconnectingCommand:
		e.log.Info("Connection disconnecting", "conn_id", c.Conn, "reason", c.Reason)
	case domain.ShutdownCommand:
		e.Shutdown()
		if c.Done != nil {
			close(c.Done)
		}
	case domain.ErrorCommand:
		e.log.Error("Transport error", "conn_id", c.Conn, "error", c.Err)
	default:
		e.log.Warn("Unknown command", "type", fmt.Sprintf("%T", cmd), "conn_id", cmd.Connection())
	}
	if err != nil {
		e.log.Debug("Command not applied", "type", fmt.Sprintf("%T", cmd), "conn_id", cmd.Connection(), "error", err)
	}
	e.observe()
}

// Shutdown ends every running recording so its capture is queued for
// persistence before the workers stop.
func (e *SyncEngine) Shutdown() {
	finished := 0
	for _, session := range e.sessions.All() {
		if session.IsRecording && e.finishRecording(session) {
			finished++
		}
	}
	e.log.Info("Engine flushed for shutdown", "sessions", e.sessions.Len(), "recordings", finished)
}

func (e *SyncEngine) observe() {
	if e.stats == nil {
		return
	}
	e.stats.Observe(e.sessions.Len(), e.sessions.Connections(), e.repair.Len(), e.sessions.Recording())
}

func (e *SyncEngine) now() int64 {
	return clock.UnixMilli(e.clock)
}

// persist hands a job to the persistence worker without waiting for it.
func (e *SyncEngine) persist(name string, run func(ctx context.Context) error) {
	if e.persister == nil {
		return
	}
	if !e.persister.Submit(contract.PersistenceJob{Name: name, Run: run}) {
		e.log.Warn("Persistence queue full, dropping job", "job", name)
	}
}

func (e *SyncEngine) logConnectionEvent(sessionID domain.SessionID, clientID domain.ClientID, event string) {
	if e.metadata == nil {
		return
	}
	evt := domain.ConnectionEvent{
		Timestamp: e.now(),
		SessionID: sessionID,
		ClientID:  clientID,
		Event:     event,
	}
	e.persist("connection "+event, func(ctx context.Context) error {
		return e.metadata.LogConnectionEvent(ctx, evt)
	})
}

// forget drops every per-connection record outside of sessions.
func (e *SyncEngine) forget(conn domain.ConnID) {
	e.repair.Remove(conn)
	e.activity.Forget(conn)
}
