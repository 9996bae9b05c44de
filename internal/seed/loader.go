// Package seed loads the static reservation dataset into the store.
//
// The load is a one-shot deferred unit of work: after a configured delay the
// seed file is read, ingested all-or-nothing, and the store flips to ready.
// While the load is pending the API serves a loading placeholder; when it
// fails, the failure is recorded and never retried.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/forgo/frontdesk/api/internal/model"
	"github.com/forgo/frontdesk/api/internal/service"
)

// Loader performs the deferred one-shot seed of the reservation store.
type Loader struct {
	repo  service.ReservationRepository
	path  string
	delay time.Duration

	stopCh  chan struct{}
	wg      sync.WaitGroup
	running bool
	mu      sync.Mutex
}

// NewLoader creates a loader that reads the JSON dataset at path and seeds
// repo after the given delay.
func NewLoader(repo service.ReservationRepository, path string, delay time.Duration) *Loader {
	return &Loader{
		repo:   repo,
		path:   path,
		delay:  delay,
		stopCh: make(chan struct{}),
	}
}

// Start schedules the load. Calling Start on a running loader is a no-op.
func (l *Loader) Start() {
	l.mu.Lock()
	if l.running {
		l.mu.Unlock()
		return
	}
	l.running = true
	l.mu.Unlock()

	l.wg.Add(1)
	go l.run()
	slog.Info("seed load scheduled",
		slog.String("file", l.path),
		slog.Duration("delay", l.delay),
	)
}

// Stop prevents a load that has not fired yet. A load already in flight is
// not cancelled; Stop waits for it to finish.
func (l *Loader) Stop() {
	l.mu.Lock()
	if !l.running {
		l.mu.Unlock()
		return
	}
	l.running = false
	l.mu.Unlock()

	close(l.stopCh)
	l.wg.Wait()
}

// Wait blocks until the load has completed or been stopped.
func (l *Loader) Wait() {
	l.wg.Wait()
}

func (l *Loader) run() {
	defer l.wg.Done()

	timer := time.NewTimer(l.delay)
	defer timer.Stop()

	select {
	case <-l.stopCh:
		return
	case <-timer.C:
	}

	l.load(context.Background())
}

func (l *Loader) load(ctx context.Context) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		l.fail(fmt.Errorf("read seed file: %w", err))
		return
	}

	var raws []model.RawReservation
	if err := json.Unmarshal(data, &raws); err != nil {
		l.fail(fmt.Errorf("parse seed file: %w", err))
		return
	}

	reservations, err := service.IngestAll(raws)
	if err != nil {
		l.fail(err)
		return
	}

	if err := l.repo.Seed(ctx, reservations); err != nil {
		l.fail(err)
		return
	}

	slog.Info("reservation data loaded",
		slog.String("file", l.path),
		slog.Int("count", len(reservations)),
	)
}

// fail records the load failure on the store. The whole batch is discarded
// and nothing is retried; the dashboard shows a loading-failure message.
func (l *Loader) fail(err error) {
	l.repo.MarkFailed(err)
	slog.Error("failed to load reservation data", slog.String("error", err.Error()))
}
