package workers

import (
	"context"
	"log/slog"
	"room-sync/contract"
	"time"
)

var (
	_ contract.Worker     = (*PersistenceWorker)(nil)
	_ contract.IPersister = (*PersistenceWorker)(nil)
)

// PersistenceWorker runs best-effort I/O jobs off the event path.
// Failures are logged and otherwise ignored.
type PersistenceWorker struct {
	log     *slog.Logger
	jobs    chan contract.PersistenceJob
	timeout time.Duration
}

func NewPersistenceWorker(log *slog.Logger, bufferSize int, timeout time.Duration) *PersistenceWorker {
	return &PersistenceWorker{
		log:     log,
		jobs:    make(chan contract.PersistenceJob, bufferSize),
		timeout: timeout,
	}
}

// Submit never blocks. It reports false when the queue is full.
func (w *PersistenceWorker) Submit(job contract.PersistenceJob) bool {
	select {
	case w.jobs <- job:
		return true
	default:
		return false
	}
}

func (w *PersistenceWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.drain()
			return ctx.Err()
		case job := <-w.jobs:
			w.execute(ctx, job)
		}
	}
}

func (w *PersistenceWorker) execute(ctx context.Context, job contract.PersistenceJob) {
	jobCtx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()
	if err := job.Run(jobCtx); err != nil {
		w.log.Warn("Persistence job failed", "job", job.Name, "error", err)
		return
	}
	w.log.Debug("Persistence job done", "job", job.Name)
}

// drain flushes what is already queued so that captures ended right before
// shutdown still reach the disk.
func (w *PersistenceWorker) drain() {
	for {
		select {
		case job := <-w.jobs:
			w.execute(context.Background(), job)
		default:
			return
		}
	}
}
