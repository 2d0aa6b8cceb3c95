package workers

import (
	"context"
	"sync"
	"time"

	"github.com/andreaprogra/rapport-vocal/internal/directory"
	"github.com/andreaprogra/rapport-vocal/internal/logger"
)

type rosterRefreshWorker struct {
	users    directory.UserSource
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRosterRefreshWorker creates a Worker that refreshes the user roster on a
// ticker, so directory edits made during a long session are picked up without
// restarting the app. If interval is zero or negative it defaults to 5 minutes.
func NewRosterRefreshWorker(users directory.UserSource, interval time.Duration, log *logger.Logger) Worker {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &rosterRefreshWorker{users: users, interval: interval, logger: log}
}

// Run implements [Worker]. It stops any previously running refresh loop, then
// launches a background goroutine that refreshes the roster every interval.
func (w *rosterRefreshWorker) Run() {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(w.logger.WithContext(context.Background()))
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				roster := w.users.RefreshCache(jobCtx)
				w.logger.Debug().
					Str("func", "rosterRefreshWorker.Run").
					Int("users", len(roster)).
					Msg("roster refreshed in background")
			}
		}
	}()
}

// Stop implements [Worker]. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited.
func (w *rosterRefreshWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
