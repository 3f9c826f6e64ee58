package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/ujustbe/attendance-backend-go/internal/domain/holiday"
)

// materializeWindowDays is how far ahead recurring holidays are persisted.
const materializeWindowDays = 365

type HolidayJobs struct {
	holidaySvc holiday.HolidayService
	loc        *time.Location
}

func NewHolidayJobs(holidaySvc holiday.HolidayService, loc *time.Location) *HolidayJobs {
	return &HolidayJobs{
		holidaySvc: holidaySvc,
		loc:        loc,
	}
}

func (j *HolidayJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("materialize_recurring_holidays", 24*time.Hour, j.MaterializeRecurring)
}

// MaterializeRecurring persists the coming window of derived weekly-off
// entries. Idempotent: already-persisted (name, date) pairs are skipped.
func (j *HolidayJobs) MaterializeRecurring(ctx context.Context) error {
	from := time.Now().In(j.loc)
	from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)

	created, err := j.holidaySvc.MaterializeRecurring(ctx, from, materializeWindowDays)
	if err != nil {
		return err
	}

	if created > 0 {
		slog.Info("Cron: recurring holidays materialized", "created", created, "window_days", materializeWindowDays)
	}
	return nil
}
