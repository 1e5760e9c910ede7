package worker

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/fijnedagvan/dagvan/internal/constants"
	"github.com/fijnedagvan/dagvan/internal/models"
	"github.com/fijnedagvan/dagvan/internal/notify"
	"github.com/fijnedagvan/dagvan/internal/parser"
	"github.com/fijnedagvan/dagvan/internal/scheduler"
	"github.com/fijnedagvan/dagvan/internal/storage"
)

func newSpecificScheduler(t *testing.T) (*scheduler.Scheduler, storage.Provider) {
	t.Helper()
	store := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "dagvan.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("store.Init() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	sched := scheduler.New(store, scheduler.WithClock(func() time.Time { return testNow }))
	t.Cleanup(sched.Stop)
	return sched, store
}

func TestSpecificRun(t *testing.T) {
	data := &fakeData{image: []byte("jpeg")}
	sender := &fakeSender{}
	w := &Specific{Data: data, Send: sender}

	payload, err := json.Marshal(models.Day{DayID: "42", Name: "Dag van de Koffie", Date: "2026-10-01"})
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Run(context.Background(), payload); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if len(sender.sent) != 1 {
		t.Fatalf("sent %d notifications, want 1", len(sender.sent))
	}
	got := sender.sent[0].n
	if got.Title != "Vandaag is het de Dag van de Koffie" {
		t.Errorf("Title = %q", got.Title)
	}
	if got.ID != notify.EntityID("42") {
		t.Errorf("ID = %d, want EntityID(42)", got.ID)
	}
	if got.Link != constants.DeepLinkDayPrefix+"42" {
		t.Errorf("Link = %q", got.Link)
	}
}

func TestSpecificRunMalformedPayload(t *testing.T) {
	sender := &fakeSender{}
	w := &Specific{Data: &fakeData{}, Send: sender}

	if err := w.Run(context.Background(), []byte("{broken")); err == nil {
		t.Fatal("Run() accepted a malformed payload")
	}
	if len(sender.sent) != 0 {
		t.Errorf("sent %d notifications for a malformed payload, want 0", len(sender.sent))
	}
}

func TestSpecificRunUnusableDay(t *testing.T) {
	sender := &fakeSender{}
	w := &Specific{Data: &fakeData{}, Send: sender}

	// Valid JSON, but the day cannot be turned into a notification.
	if err := w.Run(context.Background(), []byte(`{"slug":"naamloos"}`)); err == nil {
		t.Fatal("Run() accepted a day without id and name")
	}
	if len(sender.sent) != 0 {
		t.Errorf("sent %d notifications, want 0", len(sender.sent))
	}
}

func TestSpecificSchedule(t *testing.T) {
	sched, store := newSpecificScheduler(t)
	w := &Specific{Data: &fakeData{}, Send: &fakeSender{}}

	day := models.Day{DayID: "42", Name: "Dag van de Koffie", Date: "2026-10-01", Info: "<p>Alles over koffie</p>"}
	if err := w.Schedule(sched, day, testSettings(), testNow); err != nil {
		t.Fatalf("Schedule() failed: %v", err)
	}

	if !sched.Pending(JobName("42")) {
		t.Error("Pending() = false after Schedule()")
	}

	jobs, err := store.GetJobs()
	if err != nil {
		t.Fatalf("GetJobs() failed: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("GetJobs() = %d rows, want 1", len(jobs))
	}
	job := jobs[0]
	if job.Name != constants.SpecificJobPrefix+"42" || job.Kind != constants.JobKindSpecific {
		t.Errorf("job = %s/%s", job.Name, job.Kind)
	}

	// 2026-10-01 is ahead of the May clock, so the fire instant is this year.
	want := time.Date(2026, 10, 1, 7, 30, 0, 0, time.UTC)
	if !job.RunAt.Equal(want) {
		t.Errorf("RunAt = %v, want %v", job.RunAt, want)
	}

	// The payload must round-trip into the same day.
	stored, err := parser.Day(job.Payload)
	if err != nil {
		t.Fatalf("stored payload does not decode: %v", err)
	}
	if stored != day {
		t.Errorf("stored day = %+v, want %+v", stored, day)
	}
}

func TestSpecificSchedulePastDateRollsForward(t *testing.T) {
	sched, store := newSpecificScheduler(t)
	w := &Specific{Data: &fakeData{}, Send: &fakeSender{}}

	day := models.Day{DayID: "7", Name: "Dag van de Arbeid", Date: "2020-05-01"}
	if err := w.Schedule(sched, day, testSettings(), testNow); err != nil {
		t.Fatalf("Schedule() failed: %v", err)
	}

	// May 1st 07:30 of 2026 has passed the 08:00 clock; the next
	// occurrence is a year out.
	want := time.Date(2027, 5, 1, 7, 30, 0, 0, time.UTC)
	if runAt := jobRunAt(t, store, JobName("7")); !runAt.Equal(want) {
		t.Errorf("RunAt = %v, want %v", runAt, want)
	}
}

func TestSpecificScheduleRejectsIncompleteDays(t *testing.T) {
	sched, _ := newSpecificScheduler(t)
	w := &Specific{Data: &fakeData{}, Send: &fakeSender{}}

	if err := w.Schedule(sched, models.Day{Name: "Zonder ID", Date: "2026-10-01"}, testSettings(), testNow); err == nil {
		t.Error("Schedule() accepted a day without an id")
	}
	if err := w.Schedule(sched, models.Day{DayID: "1", Name: "Zonder datum"}, testSettings(), testNow); err == nil {
		t.Error("Schedule() accepted a day without a date")
	}
	if err := w.Schedule(sched, models.Day{DayID: "1", Name: "Kapotte datum", Date: "01-10-2026"}, testSettings(), testNow); err == nil {
		t.Error("Schedule() accepted a malformed date")
	}
}
