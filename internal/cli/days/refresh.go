package days

import (
	"context"
	"fmt"

	"github.com/fijnedagvan/dagvan/internal/cli"
	"github.com/fijnedagvan/dagvan/internal/utils"
)

type RefreshCmd struct {
	Date string `arg:"" help:"Date to refresh (YYYY-MM-DD)."`
}

func (c *RefreshCmd) Run(ctx *cli.Context) error {
	if !utils.ValidateDateFormat(c.Date) {
		return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %s", c.Date)
	}

	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if err := ctx.Svc.Refresh(context.Background(), c.Date); err != nil {
		return fmt.Errorf("refresh failed: %w", err)
	}

	fmt.Printf("✓ Cache refreshed for %s\n", c.Date)
	return nil
}
