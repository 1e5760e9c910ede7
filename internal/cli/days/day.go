package days

import (
	"context"
	"fmt"

	"github.com/fijnedagvan/dagvan/internal/cli"
	"github.com/fijnedagvan/dagvan/internal/utils"
)

type DayCmd struct {
	Date  string `arg:"" help:"Date to show (YYYY-MM-DD)."`
	Stale bool   `help:"Fall back to expired cached data when nothing fresh is available."`
}

func (c *DayCmd) Run(ctx *cli.Context) error {
	if !utils.ValidateDateFormat(c.Date) {
		return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %s", c.Date)
	}

	if err := ctx.Store.Load(); err != nil {
		return err
	}

	days := ctx.Svc.ForDate(context.Background(), c.Date)
	if len(days) == 0 && c.Stale {
		days = ctx.Svc.LastKnownGood(c.Date)
		if len(days) > 0 {
			fmt.Println("Showing expired cached data; it may be out of date.")
		}
	}

	printDays("Days on "+c.Date, days)
	return nil
}
