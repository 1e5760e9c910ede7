package days

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fijnedagvan/dagvan/internal/cli"
)

type YearCmd struct {
	Year string `arg:"" help:"Year to show (e.g. 2026)."`
}

func (c *YearCmd) Run(ctx *cli.Context) error {
	if _, err := strconv.Atoi(c.Year); err != nil {
		return fmt.Errorf("invalid year: %s", c.Year)
	}

	if err := ctx.Store.Load(); err != nil {
		return err
	}

	days := ctx.Svc.ForYear(context.Background(), c.Year)
	printDays("Days in "+c.Year, days)
	return nil
}
