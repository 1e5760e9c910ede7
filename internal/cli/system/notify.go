package system

import (
	"context"
	"fmt"

	"github.com/fijnedagvan/dagvan/internal/cli"
	"github.com/fijnedagvan/dagvan/internal/notify"
	"github.com/fijnedagvan/dagvan/internal/worker"
)

type NotifyCmd struct {
	DryRun bool `help:"Print the notification to stdout instead of sending it."`
}

// printSender renders notifications to stdout for --dry-run.
type printSender struct{}

func (printSender) Send(_ context.Context, n notify.Notification, image []byte) error {
	fmt.Printf("[DryRun] (%d) %s\n", n.ID, n.Title)
	fmt.Printf("[DryRun] %s\n", n.Body)
	if len(image) > 0 {
		fmt.Printf("[DryRun] image attached (%d bytes)\n", len(image))
	}
	return nil
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	daily := ctx.DailyWorker()
	if c.DryRun {
		daily.Send = printSender{}
	}

	return daily.Run(context.Background())
}

var _ worker.Sender = printSender{}
