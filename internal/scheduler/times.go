package scheduler

import (
	"fmt"
	"time"

	"github.com/fijnedagvan/dagvan/internal/constants"
)

// NextDaily computes the next fire instant for the daily track: today at
// hour:minute when that is still in the future relative to now, otherwise
// tomorrow at hour:minute.
func NextDaily(now time.Time, hour, minute int) time.Time {
	target := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !target.After(now) {
		target = target.AddDate(0, 0, 1)
	}
	return target
}

// NextAnnual computes the fire instant for a per-day job: the day's date
// at hour:minute, rolled forward by whole years until it lands in the
// future. This is what makes subscriptions to recurring annual days keep
// working after their date has passed.
func NextAnnual(now time.Time, dateStr string, hour, minute int) (time.Time, error) {
	date, err := time.ParseInLocation(constants.DateFormat, dateStr, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", dateStr, err)
	}
	target := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, now.Location())
	for !target.After(now) {
		target = target.AddDate(1, 0, 0)
	}
	return target, nil
}
