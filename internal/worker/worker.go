// Package worker holds the bodies of the scheduled background jobs.
package worker

import (
	"context"

	"github.com/fijnedagvan/dagvan/internal/logger"
	"github.com/fijnedagvan/dagvan/internal/models"
	"github.com/fijnedagvan/dagvan/internal/notify"
)

// DataSource is the slice of the data service the jobs depend on.
type DataSource interface {
	Refresh(ctx context.Context, date string) error
	RefreshFunFacts(ctx context.Context) error
	ForDate(ctx context.Context, date string) []models.Day
	LastKnownGood(date string) []models.Day
	RandomFunFact() (models.FunFact, bool)
	FetchImage(ctx context.Context, url string) ([]byte, error)
}

// Sender delivers a decided notification. The tray notifier implements
// it; tests and --dry-run substitute their own.
type Sender interface {
	Send(ctx context.Context, n notify.Notification, image []byte) error
}

// fetchImage downloads the notification image best-effort. A missing or
// failed image degrades the notification to text-only.
func fetchImage(ctx context.Context, data DataSource, url string) []byte {
	if url == "" {
		return nil
	}
	image, err := data.FetchImage(ctx, url)
	if err != nil {
		logger.Debug("worker: image download failed, sending without image", "url", url, "error", err)
		return nil
	}
	return image
}

// send delivers the notification and logs delivery failures without
// surfacing them: an unreachable notification channel drops the
// notification, it never fails the job.
func send(ctx context.Context, sender Sender, data DataSource, n notify.Notification) {
	image := fetchImage(ctx, data, n.ImageURL)
	if err := sender.Send(ctx, n, image); err != nil {
		logger.Warn("worker: notification dropped", "id", n.ID, "title", n.Title, "error", err)
		return
	}
	logger.Info("worker: notification sent", "id", n.ID, "title", n.Title)
}
