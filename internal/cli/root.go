package cli

import (
	"github.com/fijnedagvan/dagvan/internal/notify"
	"github.com/fijnedagvan/dagvan/internal/scheduler"
	"github.com/fijnedagvan/dagvan/internal/service"
	"github.com/fijnedagvan/dagvan/internal/storage"
	"github.com/fijnedagvan/dagvan/internal/worker"
)

type Context struct {
	Store    storage.Provider
	Svc      *service.Service
	Sched    *scheduler.Scheduler
	Notifier *notify.Notifier
}

// DailyWorker builds the daily job bound to this context's services.
func (c *Context) DailyWorker() *worker.Daily {
	return &worker.Daily{
		Store: c.Store,
		Data:  c.Svc,
		Sched: c.Sched,
		Send:  c.Notifier,
	}
}

// SpecificWorker builds the per-day job bound to this context's services.
func (c *Context) SpecificWorker() *worker.Specific {
	return &worker.Specific{
		Data: c.Svc,
		Send: c.Notifier,
	}
}
