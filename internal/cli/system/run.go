package system

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fijnedagvan/dagvan/internal/cli"
	"github.com/fijnedagvan/dagvan/internal/constants"
	"github.com/fijnedagvan/dagvan/internal/logger"
	"github.com/fijnedagvan/dagvan/internal/models"
	"github.com/fijnedagvan/dagvan/internal/parser"
)

type RunCmd struct{}

// Run starts the notification daemon: it arms the daily track when any
// notification kind is enabled, restores the per-day track from the
// subscription list, and then blocks until interrupted.
func (c *RunCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if settings.DailyEnabled || settings.NoDayEnabled {
		ctx.DailyWorker().ScheduleNext(settings)
	} else {
		logger.Info("daemon: all daily notifications disabled, daily track idle")
	}

	if err := c.restoreSubscriptions(ctx, settings); err != nil {
		return err
	}

	fmt.Println("dagvan daemon running; press Ctrl+C to stop.")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	fmt.Println("Shutting down.")
	ctx.Sched.Stop()
	return ctx.Store.Close()
}

// restoreSubscriptions re-arms one job per subscription. Stored job rows
// provide the full day payload; a subscription without a usable row
// falls back to the fields the subscription itself carries.
func (c *RunCmd) restoreSubscriptions(ctx *cli.Context, settings models.Settings) error {
	subs, err := ctx.Store.GetSubscriptions()
	if err != nil {
		return fmt.Errorf("failed to get subscriptions: %w", err)
	}
	if len(subs) == 0 {
		return nil
	}

	jobs, err := ctx.Store.GetJobs()
	if err != nil {
		return fmt.Errorf("failed to get jobs: %w", err)
	}
	payloads := make(map[string][]byte, len(jobs))
	for _, job := range jobs {
		if job.Kind == constants.JobKindSpecific {
			payloads[job.Name] = job.Payload
		}
	}

	specific := ctx.SpecificWorker()
	now := time.Now()
	for _, sub := range subs {
		day := models.Day{DayID: sub.DayID, Name: sub.DayName, Date: sub.Date}
		if raw, ok := payloads[constants.SpecificJobPrefix+sub.DayID]; ok {
			if stored, err := parser.Day(raw); err == nil {
				day = stored
			} else {
				logger.Warn("daemon: stored payload unreadable, using subscription fields", "day_id", sub.DayID, "error", err)
			}
		}
		if err := specific.Schedule(ctx.Sched, day, settings, now); err != nil {
			logger.Error("daemon: failed to restore subscription job", "day_id", sub.DayID, "error", err)
			continue
		}
		logger.Debug("daemon: subscription job restored", "day_id", sub.DayID)
	}
	return nil
}
