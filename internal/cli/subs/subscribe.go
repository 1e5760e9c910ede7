package subs

import (
	"context"
	"fmt"
	"time"

	"github.com/fijnedagvan/dagvan/internal/cli"
	"github.com/fijnedagvan/dagvan/internal/models"
	"github.com/fijnedagvan/dagvan/internal/utils"
)

type SubscribeCmd struct {
	Date  string `arg:"" help:"Date of the day to subscribe to (YYYY-MM-DD)."`
	DayID string `help:"Day id to pick when the date has more than one day."`
}

func (c *SubscribeCmd) Run(ctx *cli.Context) error {
	if !utils.ValidateDateFormat(c.Date) {
		return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %s", c.Date)
	}

	if err := ctx.Store.Load(); err != nil {
		return err
	}

	days := ctx.Svc.ForDate(context.Background(), c.Date)
	if len(days) == 0 {
		return fmt.Errorf("no days found on %s", c.Date)
	}

	day, err := pickDay(days, c.DayID)
	if err != nil {
		return err
	}

	sub := models.Subscription{DayID: day.DayID, DayName: day.Name, Date: day.Date}
	if err := sub.Validate(); err != nil {
		return fmt.Errorf("day cannot be subscribed to: %w", err)
	}
	if err := ctx.Store.AddSubscription(sub); err != nil {
		return fmt.Errorf("failed to save subscription: %w", err)
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if err := ctx.SpecificWorker().Schedule(ctx.Sched, day, settings, time.Now()); err != nil {
		return fmt.Errorf("failed to schedule notification: %w", err)
	}

	fmt.Printf("✓ Subscribed to %s (%s)\n", day.Name, day.Date)
	return nil
}

func pickDay(days []models.Day, dayID string) (models.Day, error) {
	if dayID != "" {
		for _, d := range days {
			if d.DayID == dayID {
				return d, nil
			}
		}
		return models.Day{}, fmt.Errorf("no day with id %s on that date", dayID)
	}
	if len(days) > 1 {
		names := ""
		for i, d := range days {
			if i > 0 {
				names += ", "
			}
			names += fmt.Sprintf("%s (%s)", d.Name, d.DayID)
		}
		return models.Day{}, fmt.Errorf("multiple days on that date, pick one with --day-id: %s", names)
	}
	return days[0], nil
}
