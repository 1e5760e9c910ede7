// Package scheduler runs named one-shot jobs at computed instants.
// Scheduling under an existing name replaces the pending job, which is
// also the cancellation mechanism for the old instance. Job rows are
// persisted so a restarted daemon can restore its pending work.
package scheduler

import (
	"sync"
	"time"

	"github.com/fijnedagvan/dagvan/internal/logger"
	"github.com/fijnedagvan/dagvan/internal/models"
	"github.com/fijnedagvan/dagvan/internal/storage"
)

// Scheduler owns the in-process timers. The clock is injectable for tests.
type Scheduler struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
	store  storage.Provider
	now    func() time.Time
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithClock overrides the time source used for delay computation.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) { s.now = now }
}

// New returns a Scheduler persisting job rows to the given store.
func New(store storage.Provider, opts ...Option) *Scheduler {
	s := &Scheduler{
		timers: make(map[string]*time.Timer),
		store:  store,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Schedule commits a job and arms its timer, replacing any pending job of
// the same name. A non-positive delay schedules nothing: that only
// happens on clock anomalies and is logged as a warning.
func (s *Scheduler) Schedule(job models.Job, fn func(payload []byte)) error {
	delay := job.RunAt.Sub(s.now())
	if delay <= 0 {
		logger.Warn("scheduler: non-positive delay computed, job not scheduled", "job", job.Name, "delay", delay)
		return nil
	}

	if err := s.store.SaveJob(job); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[job.Name]; ok {
		t.Stop()
	}
	payload := job.Payload
	name := job.Name
	s.timers[name] = time.AfterFunc(delay, func() {
		s.mu.Lock()
		delete(s.timers, name)
		s.mu.Unlock()
		fn(payload)
	})
	logger.Info("scheduler: job scheduled", "job", name, "run_at", job.RunAt, "delay", delay.Round(time.Second))
	return nil
}

// Cancel stops the pending job of the given name and deletes its row.
// Cancelling a job that does not exist is not an error.
func (s *Scheduler) Cancel(name string) error {
	s.mu.Lock()
	if t, ok := s.timers[name]; ok {
		t.Stop()
		delete(s.timers, name)
	}
	s.mu.Unlock()
	return s.store.DeleteJob(name)
}

// Pending reports whether a job of the given name has an armed timer.
func (s *Scheduler) Pending(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.timers[name]
	return ok
}

// Stop disarms all timers, leaving the persisted rows in place for the
// next daemon start.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for name, t := range s.timers {
		t.Stop()
		delete(s.timers, name)
	}
}
