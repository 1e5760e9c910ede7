package subs

import (
	"fmt"
	"strings"

	"github.com/fijnedagvan/dagvan/internal/cli"
)

type SubListCmd struct{}

func (c *SubListCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	subs, err := ctx.Store.GetSubscriptions()
	if err != nil {
		return fmt.Errorf("failed to get subscriptions: %w", err)
	}

	if len(subs) == 0 {
		fmt.Println("No subscriptions.")
		return nil
	}

	fmt.Printf("%-16s %-12s %s\n", "Day ID", "Date", "Name")
	fmt.Println(strings.Repeat("-", 60))
	for _, sub := range subs {
		fmt.Printf("%-16s %-12s %s\n", sub.DayID, sub.Date, sub.DayName)
	}

	return nil
}
