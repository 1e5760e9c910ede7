package days

import (
	"context"
	"fmt"

	"github.com/fijnedagvan/dagvan/internal/cli"
	"github.com/fijnedagvan/dagvan/internal/utils"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	today, err := utils.GetTodayFromSettings(settings)
	if err != nil {
		return err
	}

	days := ctx.Svc.ForDate(context.Background(), today)
	printDays("Today ("+today+")", days)
	return nil
}
