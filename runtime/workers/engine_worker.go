package workers

import (
	"context"
	"log/slog"
	"room-sync/contract"
	"room-sync/domain"
)

var _ contract.Worker = (*EngineWorker)(nil)

// EngineWorker is the only goroutine allowed to touch engine state.
// It processes queued commands one at a time, in queue order.
type EngineWorker struct {
	log      *slog.Logger
	commands chan domain.Command
	handler  contract.ICommandHandler
}

func NewEngineWorker(log *slog.Logger, commands chan domain.Command, handler contract.ICommandHandler) *EngineWorker {
	return &EngineWorker{
		log:      log,
		commands: commands,
		handler:  handler,
	}
}

func (w *EngineWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping engine worker")
			return ctx.Err()
		case cmd, ok := <-w.commands:
			if !ok {
				w.log.Debug("Command channel is closed")
				return nil
			}
			w.handler.Handle(cmd)
		}
	}
}
