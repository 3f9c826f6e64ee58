package holiday

import (
	"context"
	"time"
)

// HolidayRepository - data access for persisted holiday entries
type HolidayRepository interface {
	Create(ctx context.Context, entry Entry) (Entry, error)

	// GetByDate retrieves persisted entries falling exactly on date
	GetByDate(ctx context.Context, date time.Time) ([]Entry, error)

	// ListByYear retrieves persisted entries within a calendar year
	ListByYear(ctx context.Context, year int) ([]Entry, error)

	// ExistsOn reports whether an entry with the same name and date is
	// already persisted; used to keep materialization idempotent
	ExistsOn(ctx context.Context, name string, date time.Time) (bool, error)
}
