//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"encoding/json"
	"reflect"
	"room-sync/domain"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Notifier delivers engine output to connections and rooms.
// A "from" connection is excluded from room broadcasts; an empty one reaches the whole room.
type Notifier interface {
	ConnectionError(conn domain.ConnID, message string)
	InteractionUpdate(from domain.ConnID, sessionID domain.SessionID, packet json.RawMessage)
	ClientJoined(from domain.ConnID, sessionID domain.SessionID, clientID domain.ClientID)
	FailedToJoin(conn domain.ConnID, sessionID domain.SessionID, reason string)
	SuccessfullyJoined(conn domain.ConnID, sessionID domain.SessionID)
	ClientLeft(from domain.ConnID, sessionID domain.SessionID, clientID domain.ClientID)
	FailedToLeave(conn domain.ConnID, sessionID domain.SessionID, reason string)
	SuccessfullyLeft(conn domain.ConnID, sessionID domain.SessionID)
	ClientDisconnected(from domain.ConnID, sessionID domain.SessionID, clientID domain.ClientID)
	ServerName(conn domain.ConnID, name string)
	SessionInfo(conn domain.ConnID, info domain.SessionInfo)
	State(conn domain.ConnID, state domain.State)
	Draw(from domain.ConnID, sessionID domain.SessionID, packet json.RawMessage)
	Message(from domain.ConnID, sessionID domain.SessionID, data json.RawMessage)
	RelayUpdate(from domain.ConnID, sessionID domain.SessionID, packet json.RawMessage)
	Bump(conn domain.ConnID, sessionID domain.SessionID)
	RejectUser(conn domain.ConnID, reason string)
}

// RoomManager owns transport-level room membership. Calls complete synchronously.
type RoomManager interface {
	JoinRoom(conn domain.ConnID, sessionID domain.SessionID) error
	LeaveRoom(conn domain.ConnID, sessionID domain.SessionID) error
	InRoom(conn domain.ConnID, sessionID domain.SessionID) bool
	Disconnect(conn domain.ConnID)
}

// Transport is everything the engine needs from the network layer.
type Transport interface {
	Notifier
	RoomManager
}

// IMetadataStore keeps the relational side of the history: connection
// events and capture boundaries.
type IMetadataStore interface {
	LogConnectionEvent(ctx context.Context, evt domain.ConnectionEvent) error
	StartCapture(ctx context.Context, capture domain.Capture) error
	EndCapture(ctx context.Context, captureID string, end int64) error
	ListCaptures(ctx context.Context) ([]domain.Capture, error)
	ListConnectionEvents(ctx context.Context, sessionID domain.SessionID) ([]domain.ConnectionEvent, error)
}

// ICaptureRepository stores recorded message buffers on disk.
type ICaptureRepository interface {
	Create(sessionID domain.SessionID, start int64) error
	Save(sessionID domain.SessionID, start int64, records []domain.RecordedMessage) error
	Load(sessionID domain.SessionID, start int64) ([]domain.RecordedMessage, error)
	List() ([]domain.Capture, error)
}

// PersistenceJob is a unit of best-effort I/O executed off the event path.
type PersistenceJob struct {
	Name string
	Run  func(ctx context.Context) error
}

// IPersister accepts persistence jobs without blocking.
type IPersister interface {
	Submit(job PersistenceJob) bool
}

// IPlayer replays a capture back into the command queue.
type IPlayer interface {
	Play(sessionID domain.SessionID, playbackID string, captured domain.SessionID, start int64) bool
	Stop(playbackID string)
}

// ICommandHandler processes one command to completion.
type ICommandHandler interface {
	Handle(cmd domain.Command)
}

// IDispatcher queues a command for the engine.
type IDispatcher interface {
	Dispatch(ctx context.Context, cmd domain.Command) error
}

type IOrchestrator interface {
	IDispatcher
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}
