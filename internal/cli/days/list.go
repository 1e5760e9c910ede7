package days

import (
	"context"

	"github.com/fijnedagvan/dagvan/internal/cli"
)

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	days := ctx.Svc.All(context.Background())
	printDays("All days", days)
	return nil
}
