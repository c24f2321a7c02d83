package runtime_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"room-sync/clock"
	"room-sync/contract"
	"room-sync/domain"
	"room-sync/errors"
	"room-sync/observability"
	"room-sync/runtime"
	"testing"
	"time"
)

var epoch = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

// sent is one call recorded by fakeTransport.
type sent struct {
	Event     string
	Conn      domain.ConnID
	SessionID domain.SessionID
	ClientID  domain.ClientID
	Data      any
}

// fakeTransport records every notification and keeps a minimal room table.
// Connections listed in closed fail room operations.
type fakeTransport struct {
	calls  []sent
	rooms  map[domain.ConnID]map[domain.SessionID]bool
	closed map[domain.ConnID]bool
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{
		rooms:  make(map[domain.ConnID]map[domain.SessionID]bool),
		closed: make(map[domain.ConnID]bool),
	}
}

func (f *fakeTransport) record(s sent) { f.calls = append(f.calls, s) }

// named returns the recorded calls of one event.
func (f *fakeTransport) named(event string) []sent {
	var result []sent
	for _, c := range f.calls {
		if c.Event == event {
			result = append(result, c)
		}
	}
	return result
}

func (f *fakeTransport) reset() { f.calls = nil }

func (f *fakeTransport) ConnectionError(conn domain.ConnID, message string) {
	f.record(sent{Event: "connectionError", Conn: conn, Data: message})
}

func (f *fakeTransport) InteractionUpdate(from domain.ConnID, sessionID domain.SessionID, packet json.RawMessage) {
	f.record(sent{Event: "interactionUpdate", Conn: from, SessionID: sessionID, Data: string(packet)})
}

func (f *fakeTransport) ClientJoined(from domain.ConnID, sessionID domain.SessionID, clientID domain.ClientID) {
	f.record(sent{Event: "joined", Conn: from, SessionID: sessionID, ClientID: clientID})
}

func (f *fakeTransport) FailedToJoin(conn domain.ConnID, sessionID domain.SessionID, reason string) {
	f.record(sent{Event: "failedToJoin", Conn: conn, SessionID: sessionID, Data: reason})
}

func (f *fakeTransport) SuccessfullyJoined(conn domain.ConnID, sessionID domain.SessionID) {
	f.record(sent{Event: "successfullyJoined", Conn: conn, SessionID: sessionID})
}

func (f *fakeTransport) ClientLeft(from domain.ConnID, sessionID domain.SessionID, clientID domain.ClientID) {
	f.record(sent{Event: "left", Conn: from, SessionID: sessionID, ClientID: clientID})
}

func (f *fakeTransport) FailedToLeave(conn domain.ConnID, sessionID domain.SessionID, reason string) {
	f.record(sent{Event: "failedToLeave", Conn: conn, SessionID: sessionID, Data: reason})
}

func (f *fakeTransport) SuccessfullyLeft(conn domain.ConnID, sessionID domain.SessionID) {
	f.record(sent{Event: "successfullyLeft", Conn: conn, SessionID: sessionID})
}

func (f *fakeTransport) ClientDisconnected(from domain.ConnID, sessionID domain.SessionID, clientID domain.ClientID) {
	f.record(sent{Event: "disconnected", Conn: from, SessionID: sessionID, ClientID: clientID})
}

func (f *fakeTransport) ServerName(conn domain.ConnID, name string) {
	f.record(sent{Event: "serverName", Conn: conn, Data: name})
}

func (f *fakeTransport) SessionInfo(conn domain.ConnID, info domain.SessionInfo) {
	f.record(sent{Event: "sessionInfo", Conn: conn, SessionID: info.ID, Data: info})
}

func (f *fakeTransport) State(conn domain.ConnID, state domain.State) {
	f.record(sent{Event: "state", Conn: conn, Data: state})
}

func (f *fakeTransport) Draw(from domain.ConnID, sessionID domain.SessionID, packet json.RawMessage) {
	f.record(sent{Event: "draw", Conn: from, SessionID: sessionID, Data: string(packet)})
}

func (f *fakeTransport) Message(from domain.ConnID, sessionID domain.SessionID, data json.RawMessage) {
	f.record(sent{Event: "message", Conn: from, SessionID: sessionID, Data: string(data)})
}

func (f *fakeTransport) RelayUpdate(from domain.ConnID, sessionID domain.SessionID, packet json.RawMessage) {
	f.record(sent{Event: "relayUpdate", Conn: from, SessionID: sessionID, Data: string(packet)})
}

func (f *fakeTransport) Bump(conn domain.ConnID, sessionID domain.SessionID) {
	f.record(sent{Event: "bump", Conn: conn, SessionID: sessionID})
}

func (f *fakeTransport) RejectUser(conn domain.ConnID, reason string) {
	f.record(sent{Event: "rejectUser", Conn: conn, Data: reason})
}

func (f *fakeTransport) JoinRoom(conn domain.ConnID, sessionID domain.SessionID) error {
	if f.closed[conn] {
		return fmt.Errorf("%w: %s", errors.ErrConnectionClosed, conn)
	}
	if f.rooms[conn] == nil {
		f.rooms[conn] = make(map[domain.SessionID]bool)
	}
	f.rooms[conn][sessionID] = true
	return nil
}

func (f *fakeTransport) LeaveRoom(conn domain.ConnID, sessionID domain.SessionID) error {
	if f.closed[conn] {
		return fmt.Errorf("%w: %s", errors.ErrConnectionClosed, conn)
	}
	delete(f.rooms[conn], sessionID)
	return nil
}

func (f *fakeTransport) InRoom(conn domain.ConnID, sessionID domain.SessionID) bool {
	return f.rooms[conn][sessionID]
}

func (f *fakeTransport) Disconnect(conn domain.ConnID) {
	f.record(sent{Event: "disconnect", Conn: conn})
	f.closed[conn] = true
	delete(f.rooms, conn)
}

// inlinePersister runs jobs synchronously so tests can assert on their effects.
type inlinePersister struct {
	jobs []string
	errs []error
}

func (p *inlinePersister) Submit(job contract.PersistenceJob) bool {
	p.jobs = append(p.jobs, job.Name)
	if err := job.Run(context.Background()); err != nil {
		p.errs = append(p.errs, err)
	}
	return true
}

type fixture struct {
	engine    *runtime.SyncEngine
	transport *fakeTransport
	clock     *clock.FakeClock
	repair    *runtime.RepairCenter
	activity  *runtime.ActivityMonitor
	persister *inlinePersister
	stats     *observability.EngineStats
}

type fixtureOption func(*fixtureConfig)

type fixtureConfig struct {
	transport contract.Transport
	captures  contract.ICaptureRepository
	metadata  contract.IMetadataStore
	config    runtime.EngineConfig
	minWait   time.Duration
}

func withTransport(t contract.Transport) fixtureOption {
	return func(c *fixtureConfig) { c.transport = t }
}

func withCaptures(r contract.ICaptureRepository) fixtureOption {
	return func(c *fixtureConfig) { c.captures = r }
}

func withMetadata(m contract.IMetadataStore) fixtureOption {
	return func(c *fixtureConfig) { c.metadata = m }
}

func withConfig(cfg runtime.EngineConfig) fixtureOption {
	return func(c *fixtureConfig) { c.config = cfg }
}

func newFixture(t *testing.T, opts ...fixtureOption) *fixture {
	t.Helper()
	transport := newFakeTransport()
	cfg := fixtureConfig{
		transport: transport,
		config:    runtime.EngineConfig{ServerName: "relay-test"},
		minWait:   time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	log := slog.New(slog.DiscardHandler)
	fake := clock.Fake(epoch)
	activity := runtime.NewActivityMonitor(fake)
	repair := runtime.NewRepairCenter(log, activity, cfg.minWait)
	persister := &inlinePersister{}
	stats := observability.NewEngineStats()
	engine := runtime.NewSyncEngine(log, fake, cfg.transport, repair, activity, persister,
		cfg.captures, cfg.metadata, stats, cfg.config)

	return &fixture{
		engine:    engine,
		transport: transport,
		clock:     fake,
		repair:    repair,
		activity:  activity,
		persister: persister,
		stats:     stats,
	}
}

func origin(conn domain.ConnID) domain.Origin {
	return domain.Origin{Conn: conn}
}

func (f *fixture) join(conn domain.ConnID, sessionID domain.SessionID, clientID domain.ClientID) {
	f.engine.Handle(domain.JoinCommand{Origin: origin(conn), SessionID: sessionID, ClientID: clientID, Bump: true})
}

func (f *fixture) session(t *testing.T, id domain.SessionID) *domain.Session {
	t.Helper()
	session, ok := f.engine.Sessions().Get(id)
	if !ok {
		t.Fatalf("session %d not found", id)
	}
	return session
}

func message(sessionID domain.SessionID, clientID domain.ClientID, kind string, payload string) domain.Message {
	return domain.Message{
		SessionID: sessionID,
		ClientID:  clientID,
		Type:      kind,
		Payload:   json.RawMessage(payload),
	}
}
