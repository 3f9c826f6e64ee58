package session

import (
	"fmt"
	"time"
)

// DateKeyLayout is the canonical per-day key, e.g. "2025-09-01". One record
// exists per (employee, date key).
const DateKeyLayout = "2006-01-02"

// BreakInterval is a closed break. Open breaks are never stored here; they
// live in Record.BreakStartedAt until closed.
type BreakInterval struct {
	Start time.Time `json:"breakStart"`
	End   time.Time `json:"breakEnd"`
}

func (b BreakInterval) Duration() time.Duration {
	return b.End.Sub(b.Start)
}

// Record is a single employee's session for one calendar day. Append-only:
// records are created on first login and never destroyed.
type Record struct {
	EmployeeID string
	DateKey    string
	LoginTime  *time.Time
	LogoutTime *time.Time

	// Breaks holds closed intervals only, in the order they were taken.
	Breaks []BreakInterval

	// BreakStartedAt is the single source of truth for an in-progress
	// break. Nil means no break is open.
	BreakStartedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BreakState is a tagged value: either closed, or open since StartedAt.
type BreakState struct {
	Open      bool
	StartedAt time.Time
}

// BreakState derives the current break state from the record.
func (r Record) BreakState() BreakState {
	if r.BreakStartedAt == nil {
		return BreakState{}
	}
	return BreakState{Open: true, StartedAt: *r.BreakStartedAt}
}

// TotalBreak sums the closed break intervals. An open break contributes
// nothing until it is closed.
func (r Record) TotalBreak() time.Duration {
	var total time.Duration
	for _, b := range r.Breaks {
		total += b.Duration()
	}
	return total
}

// FormatBreakDuration renders a break total as "H hr M min", minutes
// truncated.
func FormatBreakDuration(d time.Duration) string {
	totalSeconds := int64(d.Seconds())
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	return fmt.Sprintf("%d hr %d min", hours, minutes)
}

// DateKeyFor returns the date key for t in the given timezone.
func DateKeyFor(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DateKeyLayout)
}
