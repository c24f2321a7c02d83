package workers

import (
	"context"
	"fmt"
	"log/slog"
	"room-sync/clock"
	"room-sync/contract"
	"room-sync/domain"
	"sync"
	"time"
)

var (
	_ contract.Worker  = (*PlaybackWorker)(nil)
	_ contract.IPlayer = (*PlaybackWorker)(nil)
)

type playbackRequest struct {
	sessionID  domain.SessionID
	playbackID string
	captured   domain.SessionID
	start      int64
}

// PlaybackWorker loads captures and feeds their records back into the
// command queue at their recorded offsets. Each playback runs in its own
// goroutine and can be stopped by id.
type PlaybackWorker struct {
	log        *slog.Logger
	clock      clock.Clock
	captures   contract.ICaptureRepository
	dispatcher contract.IDispatcher
	requests   chan playbackRequest

	mu      sync.Mutex
	running map[string]*activePlayback
}

type activePlayback struct {
	cancel context.CancelFunc
}

func NewPlaybackWorker(
	log *slog.Logger,
	clock clock.Clock,
	captures contract.ICaptureRepository,
	dispatcher contract.IDispatcher,
	bufferSize int) *PlaybackWorker {
	return &PlaybackWorker{
		log:        log,
		clock:      clock,
		captures:   captures,
		dispatcher: dispatcher,
		requests:   make(chan playbackRequest, bufferSize),
		running:    make(map[string]*activePlayback),
	}
}

// Play queues a playback without blocking. It returns false when the same
// playback is already running or the queue is full.
func (w *PlaybackWorker) Play(sessionID domain.SessionID, playbackID string, captured domain.SessionID, start int64) bool {
	w.mu.Lock()
	_, busy := w.running[playbackID]
	w.mu.Unlock()
	if busy {
		return false
	}
	select {
	case w.requests <- playbackRequest{sessionID: sessionID, playbackID: playbackID, captured: captured, start: start}:
		return true
	default:
		return false
	}
}

func (w *PlaybackWorker) Stop(playbackID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if active, ok := w.running[playbackID]; ok {
		active.cancel()
		delete(w.running, playbackID)
	}
}

// release forgets a finished playback unless it was already replaced.
func (w *PlaybackWorker) release(playbackID string, active *activePlayback) {
	w.mu.Lock()
	defer w.mu.Unlock()
	active.cancel()
	if w.running[playbackID] == active {
		delete(w.running, playbackID)
	}
}

func (w *PlaybackWorker) Run(ctx context.Context) error {
	var wg sync.WaitGroup
	defer wg.Wait()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case req := <-w.requests:
			playCtx, cancel := context.WithCancel(ctx)
			w.mu.Lock()
			if _, busy := w.running[req.playbackID]; busy {
				w.mu.Unlock()
				cancel()
				continue
			}
			active := &activePlayback{cancel: cancel}
			w.running[req.playbackID] = active
			w.mu.Unlock()

			wg.Add(1)
			go func() {
				defer wg.Done()
				defer w.release(req.playbackID, active)
				w.play(playCtx, req)
			}()
		}
	}
}

func (w *PlaybackWorker) play(ctx context.Context, req playbackRequest) {
	records, err := w.captures.Load(req.captured, req.start)
	if err != nil {
		w.finish(ctx, req, 0, fmt.Errorf("load capture %s: %w", req.playbackID, err))
		return
	}

	origin := w.clock.Now()
	frames := 0
	for _, record := range records {
		wait := origin.Add(time.Duration(record.Seq) * time.Millisecond).Sub(w.clock.Now())
		select {
		case <-ctx.Done():
			w.log.Info("Playback stopped", "playback_id", req.playbackID, "frames", frames)
			return
		case <-w.clock.After(wait):
		}
		if ctx.Err() != nil {
			w.log.Info("Playback stopped", "playback_id", req.playbackID, "frames", frames)
			return
		}
		frame := domain.PlaybackFrameCommand{
			SessionID:  req.sessionID,
			PlaybackID: req.playbackID,
			Record:     record,
		}
		if err := w.dispatcher.Dispatch(ctx, frame); err != nil {
			w.log.Info("Playback stopped", "playback_id", req.playbackID, "frames", frames, "error", err)
			return
		}
		frames++
	}
	w.finish(ctx, req, frames, nil)
}

func (w *PlaybackWorker) finish(ctx context.Context, req playbackRequest, frames int, err error) {
	end := domain.PlaybackEndCommand{
		SessionID:  req.sessionID,
		PlaybackID: req.playbackID,
		Frames:     frames,
		Err:        err,
	}
	if dispatchErr := w.dispatcher.Dispatch(ctx, end); dispatchErr != nil {
		w.log.Debug("Could not report end of playback", "playback_id", req.playbackID, "error", dispatchErr)
	}
}
