package subs

import (
	"fmt"

	"github.com/fijnedagvan/dagvan/internal/cli"
	"github.com/fijnedagvan/dagvan/internal/worker"
)

type UnsubscribeCmd struct {
	DayID string `arg:"" help:"Day id to unsubscribe from."`
}

func (c *UnsubscribeCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if err := ctx.Store.RemoveSubscription(c.DayID); err != nil {
		return fmt.Errorf("failed to remove subscription: %w", err)
	}

	// Cancelling a job that was never scheduled is fine.
	if err := ctx.Sched.Cancel(worker.JobName(c.DayID)); err != nil {
		return fmt.Errorf("failed to cancel scheduled notification: %w", err)
	}

	fmt.Printf("✓ Unsubscribed from day %s\n", c.DayID)
	return nil
}
