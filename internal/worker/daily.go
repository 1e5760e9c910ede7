package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fijnedagvan/dagvan/internal/constants"
	"github.com/fijnedagvan/dagvan/internal/logger"
	"github.com/fijnedagvan/dagvan/internal/models"
	"github.com/fijnedagvan/dagvan/internal/notify"
	"github.com/fijnedagvan/dagvan/internal/scheduler"
	"github.com/fijnedagvan/dagvan/internal/storage"
	"github.com/fijnedagvan/dagvan/internal/utils"
)

// Daily is the recurring daily notification job. Each run refreshes
// today's data, applies the decision table, and commits the next slot.
type Daily struct {
	Store storage.Provider
	Data  DataSource
	Sched *scheduler.Scheduler
	Send  Sender

	// Now is the clock; defaults to time.Now when nil.
	Now func() time.Time
}

func (w *Daily) now() time.Time {
	if w.Now != nil {
		return w.Now()
	}
	return time.Now()
}

// Run executes one pass of the daily job. The order is strict:
// refresh, then decide, then reschedule. A failed refresh short-circuits
// into a near-term retry of the same slot so the decision never runs on
// stale or partial data.
func (w *Daily) Run(ctx context.Context) error {
	runID := uuid.NewString()
	logger.Info("daily job: started", "run", runID)

	settings, err := w.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("daily job: failed to read settings: %w", err)
	}

	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		return fmt.Errorf("daily job: %w", err)
	}
	today := w.now().In(loc).Format(constants.DateFormat)

	if err := w.refresh(ctx, today); err != nil {
		stale := w.Data.LastKnownGood(today)
		logger.Error("daily job: refresh failed, scheduling retry",
			"run", runID, "error", err, "stale_entries_available", len(stale))
		w.scheduleRetry()
		return err
	}

	if !settings.DailyEnabled && !settings.NoDayEnabled {
		logger.Debug("daily job: all notifications disabled", "run", runID)
		w.ScheduleNext(settings)
		return nil
	}

	days := models.Confirmed(w.Data.ForDate(ctx, today))
	logger.Debug("daily job: confirmed days for today", "run", runID, "date", today, "count", len(days))

	var fact *models.FunFact
	if len(days) == 0 && settings.NoDayEnabled {
		if f, ok := w.Data.RandomFunFact(); ok {
			fact = &f
		}
	}

	if n, ok := notify.PlanDaily(days, settings, fact); ok {
		send(ctx, w.Send, w.Data, n)
	} else {
		logger.Debug("daily job: nothing to notify", "run", runID)
	}

	// The next slot is committed regardless of whether anything was sent.
	w.ScheduleNext(settings)
	return nil
}

func (w *Daily) refresh(ctx context.Context, today string) error {
	if err := w.Data.Refresh(ctx, today); err != nil {
		return err
	}
	return w.Data.RefreshFunFacts(ctx)
}

// ScheduleNext commits the next daily slot: today at the configured
// hour:minute when still in the future, else tomorrow.
func (w *Daily) ScheduleNext(settings models.Settings) {
	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		logger.Error("daily job: cannot schedule next slot", "error", err)
		return
	}
	at := scheduler.NextDaily(w.now().In(loc), settings.Hour, settings.Minute)
	w.schedule(at)
}

// scheduleRetry re-arms the same unique name a short delay out instead of
// the next day's slot, so a transient failure is retried soon.
func (w *Daily) scheduleRetry() {
	w.schedule(w.now().Add(constants.DailyRetryDelay))
}

func (w *Daily) schedule(at time.Time) {
	job := models.Job{
		Name:  constants.DailyJobName,
		Kind:  constants.JobKindDaily,
		RunAt: at,
	}
	err := w.Sched.Schedule(job, func([]byte) {
		if err := w.Run(context.Background()); err != nil {
			logger.Error("daily job: run failed", "error", err)
		}
	})
	if err != nil {
		logger.Error("daily job: failed to schedule", "error", err)
	}
}
