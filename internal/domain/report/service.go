package report

import (
	"context"
	"time"

	"github.com/ujustbe/attendance-backend-go/internal/domain/leave"
	"github.com/ujustbe/attendance-backend-go/internal/domain/session"
)

// ReportService is the attendance reconciliation engine. Both entry points
// share one set of precedence rules so the admin report and the per-user
// history can never disagree.
type ReportService interface {
	// GenerateReport classifies every active employee for date into
	// exactly one bucket. Per-employee read failures are logged and
	// classified Not-Marked; an enumeration failure yields an empty
	// report, never an error.
	GenerateReport(ctx context.Context, date time.Time) Report

	// DetermineStatus resolves the per-row status for one employee-day.
	// rec is nil when no session record exists. Evaluation order: leave,
	// then ongoing, then forgot-to-mark, then unmarked, then present.
	DetermineStatus(rec *session.Record, leaves []leave.Request, date time.Time) string

	// History returns per-day rows for one employee, newest first,
	// combining session records with the department's holiday calendar.
	History(ctx context.Context, employeeID string) ([]HistoryRow, error)
}
