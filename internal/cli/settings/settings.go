package settings

import (
	"fmt"
	"time"

	"github.com/fijnedagvan/dagvan/internal/cli"
	"github.com/fijnedagvan/dagvan/internal/constants"
	"github.com/fijnedagvan/dagvan/internal/models"
	"github.com/fijnedagvan/dagvan/internal/scheduler"
	"github.com/fijnedagvan/dagvan/internal/utils"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Daily     *bool    `help:"Enable or disable the daily notification."`
	NoDay     *bool    `help:"Enable or disable 'no special day' notifications."`
	Time      *string  `help:"Notification time (HH:MM)."`
	Timezone  *string  `help:"IANA timezone name, or Local."`
	Theme     *string  `help:"Theme mode (system|light|dark)."`
	FontScale *float64 `help:"Relative font scale."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		fmt.Println("Notification Settings:")
		fmt.Printf("  Daily Enabled:   %v\n", settings.DailyEnabled)
		fmt.Printf("  No-Day Enabled:  %v\n", settings.NoDayEnabled)
		fmt.Printf("  Time:            %02d:%02d\n", settings.Hour, settings.Minute)
		fmt.Printf("  Timezone:        %s\n", settings.Timezone)
		fmt.Println("\nDisplay Settings:")
		fmt.Printf("  Theme Mode:      %s\n", settings.ThemeMode)
		fmt.Printf("  Font Scale:      %.2f\n", settings.FontScale)
		return nil
	}

	updated := false
	if c.Daily != nil {
		settings.DailyEnabled = *c.Daily
		updated = true
	}
	if c.NoDay != nil {
		settings.NoDayEnabled = *c.NoDay
		updated = true
	}
	if c.Time != nil {
		hour, minute, err := utils.ParseClockTime(*c.Time)
		if err != nil {
			return err
		}
		settings.Hour = hour
		settings.Minute = minute
		updated = true
	}
	if c.Timezone != nil {
		if !utils.ValidateTimezone(*c.Timezone) {
			return fmt.Errorf("invalid timezone: %s", *c.Timezone)
		}
		settings.Timezone = *c.Timezone
		updated = true
	}
	if c.Theme != nil {
		settings.ThemeMode = *c.Theme
		updated = true
	}
	if c.FontScale != nil {
		settings.FontScale = *c.FontScale
		updated = true
	}

	if !updated {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}

	if err := settings.Validate(); err != nil {
		return err
	}
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	if err := c.recommitDailySlot(ctx, settings); err != nil {
		return err
	}

	fmt.Println("Settings updated successfully.")
	return nil
}

// recommitDailySlot keeps the persisted daily job row in step with the
// preferences, so the daemon picks up the new slot on its next start.
// A running daemon also re-reads settings at every job run.
func (c *SettingsCmd) recommitDailySlot(ctx *cli.Context, settings models.Settings) error {
	if !settings.DailyEnabled && !settings.NoDayEnabled {
		return ctx.Store.DeleteJob(constants.DailyJobName)
	}

	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		return err
	}
	return ctx.Store.SaveJob(models.Job{
		Name:  constants.DailyJobName,
		Kind:  constants.JobKindDaily,
		RunAt: scheduler.NextDaily(time.Now().In(loc), settings.Hour, settings.Minute),
	})
}
