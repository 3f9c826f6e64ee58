package holiday

import (
	"context"
	"time"
)

// HolidayService resolves the calendar: persisted entries plus recurring
// rules, already evaluated for the requested date.
type HolidayService interface {
	// EntriesOn returns every entry (persisted and derived) falling on date
	EntriesOn(ctx context.Context, date time.Time) ([]Entry, error)

	// DepartmentsOn returns the set of departments on holiday for date
	DepartmentsOn(ctx context.Context, date time.Time) (map[string]struct{}, error)

	// Year returns the full-year calendar, date ascending
	Year(ctx context.Context, year int) ([]EntryResponse, error)

	// Add persists a new admin-entered holiday
	Add(ctx context.Context, req AddHolidayRequest) (EntryResponse, error)

	// MaterializeRecurring persists derived entries for the days ahead;
	// idempotent on (name, date)
	MaterializeRecurring(ctx context.Context, from time.Time, days int) (int, error)
}
