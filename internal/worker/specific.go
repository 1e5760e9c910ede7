package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fijnedagvan/dagvan/internal/constants"
	"github.com/fijnedagvan/dagvan/internal/logger"
	"github.com/fijnedagvan/dagvan/internal/models"
	"github.com/fijnedagvan/dagvan/internal/notify"
	"github.com/fijnedagvan/dagvan/internal/parser"
	"github.com/fijnedagvan/dagvan/internal/scheduler"
	"github.com/fijnedagvan/dagvan/internal/utils"
)

// Specific is the one-shot job for a single subscribed day. The day is
// carried in the job payload so the job can act without re-querying.
type Specific struct {
	Data DataSource
	Send Sender
}

// Run executes the job for one payload. A payload that does not decode
// is a comprehension failure, not a transient one: the job fails
// permanently and is never retried.
func (w *Specific) Run(ctx context.Context, payload []byte) error {
	day, err := parser.Day(payload)
	if err != nil {
		logger.Error("specific job: malformed payload, giving up", "error", err)
		return err
	}

	n, ok := notify.PlanDay(day)
	if !ok {
		err := fmt.Errorf("specific job: day %q has no usable id or name", day.Slug)
		logger.Error(err.Error())
		return err
	}

	logger.Info("specific job: firing", "day", day.Name, "day_id", day.DayID)
	send(ctx, w.Send, w.Data, n)
	return nil
}

// Schedule commits the one-shot job for a subscribed day, keyed by its
// day id. The fire instant is the day's date at the configured
// hour:minute, rolled forward year by year when already past. The full
// day is attached as payload.
func (w *Specific) Schedule(sched *scheduler.Scheduler, day models.Day, settings models.Settings, now time.Time) error {
	if day.DayID == "" {
		return fmt.Errorf("cannot schedule: day id is empty")
	}
	if day.Date == "" {
		return fmt.Errorf("cannot schedule %q: day has no date", day.Name)
	}

	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		return err
	}
	at, err := scheduler.NextAnnual(now.In(loc), day.Date, settings.Hour, settings.Minute)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(day)
	if err != nil {
		return fmt.Errorf("failed to serialize day payload: %w", err)
	}

	job := models.Job{
		Name:    JobName(day.DayID),
		Kind:    constants.JobKindSpecific,
		RunAt:   at,
		Payload: payload,
	}
	return sched.Schedule(job, func(p []byte) {
		if err := w.Run(context.Background(), p); err != nil {
			logger.Error("specific job: run failed", "job", job.Name, "error", err)
		}
	})
}

// JobName returns the unique job name for a day id.
func JobName(dayID string) string {
	return constants.SpecificJobPrefix + dayID
}
