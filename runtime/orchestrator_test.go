package runtime_test

import (
	"context"
	"log/slog"
	"room-sync/clock"
	"room-sync/domain"
	"room-sync/infrastructure/storage"
	"room-sync/mocks"
	"room-sync/observability"
	"room-sync/runtime"
	"room-sync/runtime/workers"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_Orchestrator_feeds_engine_in_dispatch_order(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	handler := mocks.NewMockICommandHandler(ctrl)
	log := slog.New(slog.DiscardHandler)
	orchestrator := runtime.NewOrchestrator(log, workers.NewSupervisor(log, time.Millisecond), handler, 4)

	join := domain.JoinCommand{Origin: origin("c1"), SessionID: 12, ClientID: 1}
	leave := domain.LeaveCommand{Origin: origin("c1"), SessionID: 12, ClientID: 1}
	done := make(chan struct{})
	gomock.InOrder(
		handler.EXPECT().Handle(join),
		handler.EXPECT().Handle(leave).Do(func(domain.Command) { close(done) }),
		handler.EXPECT().Handle(gomock.AssignableToTypeOf(domain.ShutdownCommand{})).Do(func(cmd domain.Command) {
			close(cmd.(domain.ShutdownCommand).Done)
		}),
	)

	// Given commands queued before the engine starts
	ctx := context.Background()
	req.NoError(orchestrator.Dispatch(ctx, join))
	req.NoError(orchestrator.Dispatch(ctx, leave))

	// When it starts
	stopped := make(chan error, 1)
	go func() { stopped <- orchestrator.Start(ctx) }()

	// Then they are handled in order
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		req.Fail("commands were not handled")
	}
	req.Eventually(orchestrator.Running, time.Second, 5*time.Millisecond)

	req.NoError(orchestrator.Stop(ctx))
	req.NoError(<-stopped)
	req.False(orchestrator.Running())
}

func Test_Orchestrator_dispatch_waits_then_gives_up_with_context(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	handler := mocks.NewMockICommandHandler(ctrl)
	log := slog.New(slog.DiscardHandler)
	orchestrator := runtime.NewOrchestrator(log, workers.NewSupervisor(log, time.Millisecond), handler, 1)

	// Given a full queue and no engine running
	req.NoError(orchestrator.Dispatch(context.Background(), domain.ConnectCommand{Origin: origin("c1")}))

	// When another command is dispatched with a short deadline
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := orchestrator.Dispatch(ctx, domain.ConnectCommand{Origin: origin("c2")})

	// Then it reports the deadline
	req.ErrorIs(err, context.DeadlineExceeded)
}

func Test_Orchestrator_stop_saves_running_recordings_before_returning(t *testing.T) {
	req := require.New(t)
	log := slog.New(slog.DiscardHandler)
	fake := clock.Fake(epoch)
	captures := storage.NewCaptureRepository(t.TempDir(), log)
	activity := runtime.NewActivityMonitor(fake)
	repair := runtime.NewRepairCenter(log, activity, time.Second)
	persister := workers.NewPersistenceWorker(log, 8, time.Second)
	engine := runtime.NewSyncEngine(log, fake, nil, repair, activity, persister, captures, nil,
		observability.NewEngineStats(), runtime.EngineConfig{ServerName: "relay-test"})
	orchestrator := runtime.NewOrchestrator(log, workers.NewSupervisor(log, time.Millisecond), engine, 8)
	orchestrator.Add(persister)

	// Given a session recording when the server stops
	ctx := context.Background()
	req.NoError(orchestrator.Dispatch(ctx, domain.JoinCommand{Origin: origin("c1"), SessionID: 12, ClientID: 1, Bump: true}))
	req.NoError(orchestrator.Dispatch(ctx, domain.StartRecordingCommand{Origin: origin("c1"), SessionID: 12}))
	req.NoError(orchestrator.Dispatch(ctx, domain.MessageCommand{Origin: origin("c1"), Message: message(12, 1, "chat", `{"text":"bye"}`)}))
	stopped := make(chan error, 1)
	go func() { stopped <- orchestrator.Start(ctx) }()
	req.Eventually(orchestrator.Running, time.Second, 5*time.Millisecond)

	// When it stops
	stopCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	req.NoError(orchestrator.Stop(stopCtx))

	// Then the workers are gone and the capture is on disk
	req.NoError(<-stopped)
	records, err := captures.Load(12, epoch.UnixMilli())
	req.NoError(err)
	req.Len(records, 1)
}
