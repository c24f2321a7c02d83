package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"room-sync/contract"
	"room-sync/domain"
	"room-sync/runtime/workers"
	"sync"
	"sync/atomic"
)

var _ contract.IOrchestrator = (*Orchestrator)(nil)

// Orchestrator owns the command queue and the supervised workers around the
// engine. Transport goroutines Dispatch into it; a single EngineWorker
// drains the queue.
type Orchestrator struct {
	mu         sync.Mutex
	log        *slog.Logger
	supervisor contract.ISupervisor
	engine     contract.ICommandHandler
	commands   chan domain.Command
	workers    []contract.Worker
	running    atomic.Bool
	started    atomic.Bool
	done       chan struct{}
}

func NewOrchestrator(log *slog.Logger, supervisor contract.ISupervisor, engine contract.ICommandHandler, bufferSize int) *Orchestrator {
	return &Orchestrator{
		log:        log,
		supervisor: supervisor,
		engine:     engine,
		commands:   make(chan domain.Command, bufferSize),
		done:       make(chan struct{}),
	}
}

// Add registers auxiliary workers started alongside the engine worker.
func (o *Orchestrator) Add(extra ...contract.Worker) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.workers = append(o.workers, extra...)
}

// Dispatch queues cmd for the engine. When the queue is full the caller
// waits, so one connection's commands keep their arrival order; only the
// transport goroutine is held back, never the engine.
func (o *Orchestrator) Dispatch(ctx context.Context, cmd domain.Command) error {
	select {
	case o.commands <- cmd:
		return nil
	default:
	}
	o.log.Debug("Command queue full, waiting", "conn_id", cmd.Connection(), "type", fmt.Sprintf("%T", cmd))
	select {
	case o.commands <- cmd:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("dispatch %T: %w", cmd, ctx.Err())
	}
}

func (o *Orchestrator) Running() bool {
	return o.running.Load()
}

// Start registers the engine worker and every auxiliary worker, then blocks
// until the supervisor stops. It must be called once.
func (o *Orchestrator) Start(ctx context.Context) error {
	o.started.Store(true)
	defer close(o.done)
	o.mu.Lock()
	o.supervisor.Add(workers.NewEngineWorker(o.log, o.commands, o.engine))
	o.supervisor.Add(o.workers...)
	o.mu.Unlock()

	o.log.Info("Starting orchestrator and all supervised workers", "workers", len(o.workers)+1)
	o.running.Store(true)
	defer o.running.Store(false)
	o.supervisor.Run(ctx)
	return nil
}

// Stop lets the engine finish its running recordings, cancels the
// supervised workers and waits for them to return, at most until ctx ends.
// Persistence jobs queued by the engine are drained before Stop returns.
func (o *Orchestrator) Stop(ctx context.Context) error {
	o.log.Info("Requesting orchestrator shutdown")
	if o.Running() {
		flushed := make(chan struct{})
		if err := o.Dispatch(ctx, domain.ShutdownCommand{Done: flushed}); err != nil {
			o.log.Warn("Could not flush engine before shutdown", "error", err)
		} else {
			select {
			case <-flushed:
			case <-ctx.Done():
				o.log.Warn("Engine flush timed out", "error", ctx.Err())
			}
		}
	}
	o.supervisor.Stop()
	if !o.started.Load() {
		return nil
	}
	select {
	case <-o.done:
		o.log.Info("Orchestrator stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("orchestrator stop: %w", ctx.Err())
	}
}
