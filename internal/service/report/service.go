package report

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ujustbe/attendance-backend-go/internal/domain/employee"
	"github.com/ujustbe/attendance-backend-go/internal/domain/holiday"
	"github.com/ujustbe/attendance-backend-go/internal/domain/leave"
	"github.com/ujustbe/attendance-backend-go/internal/domain/report"
	"github.com/ujustbe/attendance-backend-go/internal/domain/session"
)

// reportConcurrency bounds the per-employee fan-out; each employee costs up
// to two store reads.
const reportConcurrency = 8

const displayTimeLayout = "2006-01-02 15:04:05"

// ReportServiceImpl is the attendance reconciliation engine. The admin
// report and the per-user history both run through it, sharing one set of
// precedence rules.
type ReportServiceImpl struct {
	employee.EmployeeRepository
	leave.LeaveRequestRepository
	session.SessionRepository
	holidaySvc holiday.HolidayService

	primaryDepartment string
	loc               *time.Location
	now               func() time.Time
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	leaveRepo leave.LeaveRequestRepository,
	sessionRepo session.SessionRepository,
	holidaySvc holiday.HolidayService,
	primaryDepartment string,
	loc *time.Location,
) report.ReportService {
	return &ReportServiceImpl{
		EmployeeRepository:     employeeRepo,
		LeaveRequestRepository: leaveRepo,
		SessionRepository:      sessionRepo,
		holidaySvc:             holidaySvc,
		primaryDepartment:      primaryDepartment,
		loc:                    loc,
		now:                    time.Now,
	}
}

// presentEntry keeps the raw login instant next to its display row so the
// Present bucket can be ordered before rendering.
type presentEntry struct {
	row     report.PresentRow
	loginAt time.Time
}

// classification is one employee's resolved bucket.
type classification struct {
	holidayRow *report.Row
	leaveRow   *report.LeaveRow
	present    *presentEntry
	notMarked  *report.Row
}

// GenerateReport implements report.ReportService. Classification runs per
// active employee with holiday, leave and session checks in that order; the
// first match wins. The engine is fail-open throughout: a read failure for
// one employee lands them in Not-Marked, and a failure to enumerate
// employees yields an empty report so the screen still renders.
func (s *ReportServiceImpl) GenerateReport(ctx context.Context, date time.Time) report.Report {
	rep := report.Report{
		Date:      date.Format(session.DateKeyLayout),
		Present:   make([]report.PresentRow, 0),
		OnLeave:   make([]report.LeaveRow, 0),
		NotMarked: make([]report.Row, 0),
		OnHoliday: make([]report.Row, 0),
	}

	employees, err := s.EmployeeRepository.ListActive(ctx)
	if err != nil {
		slog.Error("attendance report: failed to enumerate employees", "date", rep.Date, "error", err)
		return rep
	}

	departmentsOnHoliday, err := s.holidaySvc.DepartmentsOn(ctx, date)
	if err != nil {
		slog.Error("attendance report: failed to resolve holiday departments", "date", rep.Date, "error", err)
		departmentsOnHoliday = map[string]struct{}{}
	}

	var (
		mu      sync.Mutex
		present []presentEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(reportConcurrency)

	for _, emp := range employees {
		if !emp.Reportable() {
			continue
		}

		emp := emp
		g.Go(func() error {
			select {
			case <-gctx.Done():
				// Timed out or cancelled; return what was classified
				// so far rather than blocking.
				return nil
			default:
			}

			c := s.classify(gctx, emp, date, departmentsOnHoliday)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case c.holidayRow != nil:
				rep.OnHoliday = append(rep.OnHoliday, *c.holidayRow)
			case c.leaveRow != nil:
				rep.OnLeave = append(rep.OnLeave, *c.leaveRow)
			case c.present != nil:
				present = append(present, *c.present)
			case c.notMarked != nil:
				rep.NotMarked = append(rep.NotMarked, *c.notMarked)
			}
			return nil
		})
	}

	// Workers never return errors; failures were already folded into
	// Not-Marked per employee.
	_ = g.Wait()

	// Primary department first, ties broken by ascending login time.
	sort.SliceStable(present, func(i, j int) bool {
		iPrimary := present[i].row.Department == s.primaryDepartment
		jPrimary := present[j].row.Department == s.primaryDepartment
		if iPrimary != jPrimary {
			return iPrimary
		}
		return present[i].loginAt.Before(present[j].loginAt)
	})
	for _, entry := range present {
		rep.Present = append(rep.Present, entry.row)
	}

	return rep
}

func (s *ReportServiceImpl) classify(ctx context.Context, emp employee.Employee, date time.Time, departmentsOnHoliday map[string]struct{}) classification {
	// 1. Holiday check short-circuits everything else for the day.
	if _, onHoliday := departmentsOnHoliday[emp.Department]; onHoliday {
		return classification{holidayRow: &report.Row{Name: emp.Name, Department: emp.Department}}
	}

	// 2. Leave check. Overlapping requests resolve by status precedence,
	// not recency.
	leaves, err := s.LeaveRequestRepository.Overlapping(ctx, emp.ID, date)
	if err != nil {
		slog.Warn("attendance report: leave lookup failed, classifying not-marked", "employee_id", emp.ID, "error", err)
		return classification{notMarked: &report.Row{Name: emp.Name, Department: emp.Department}}
	}
	if len(leaves) > 0 {
		return classification{leaveRow: &report.LeaveRow{
			Name:        emp.Name,
			Department:  emp.Department,
			LeaveStatus: resolveLeaveStatus(leaves),
		}}
	}

	// 3. Session check: a record for the day means present.
	rec, err := s.SessionRepository.Get(ctx, emp.ID, date.Format(session.DateKeyLayout))
	if err != nil {
		if !errors.Is(err, session.ErrSessionNotFound) {
			slog.Warn("attendance report: session lookup failed, classifying not-marked", "employee_id", emp.ID, "error", err)
		}
		return classification{notMarked: &report.Row{Name: emp.Name, Department: emp.Department}}
	}

	loginDisplay := "N/A"
	var loginAt time.Time
	if rec.LoginTime != nil {
		loginAt = *rec.LoginTime
		loginDisplay = loginAt.In(s.loc).Format(displayTimeLayout)
	}

	return classification{present: &presentEntry{
		row: report.PresentRow{
			Name:       emp.Name,
			Department: emp.Department,
			LoginTime:  loginDisplay,
		},
		loginAt: loginAt,
	}}
}

// resolveLeaveStatus picks the displayed status across overlapping requests
// by fixed precedence Approved > Pending > Declined.
func resolveLeaveStatus(leaves []leave.Request) string {
	for _, want := range []leave.RequestStatus{leave.StatusApproved, leave.StatusPending, leave.StatusDeclined} {
		for _, req := range leaves {
			if req.Status == want {
				return string(want)
			}
		}
	}
	return "Rejected"
}

// DetermineStatus implements report.ReportService. The chain is strict
// if/else-if; leave always wins over session-derived status, and an open
// session only reads Ongoing on the current day.
func (s *ReportServiceImpl) DetermineStatus(rec *session.Record, leaves []leave.Request, date time.Time) string {
	for _, req := range leaves {
		if req.Overlaps(date) {
			return report.OnLeaveStatus(string(req.LeaveType))
		}
	}

	dateKey := date.Format(session.DateKeyLayout)
	today := session.DateKeyFor(s.now(), s.loc)

	hasLogin := rec != nil && rec.LoginTime != nil
	hasLogout := rec != nil && rec.LogoutTime != nil

	if dateKey == today && hasLogin && !hasLogout {
		return report.StatusOngoing
	}
	if hasLogin && !hasLogout {
		return report.StatusForgot
	}
	if !hasLogin {
		return report.StatusNotMarked
	}
	return report.StatusPresent
}

// History implements report.ReportService. Combines the employee's session
// records with their department's holiday calendar for the current year,
// newest first, the way the per-user attendance screen lists them.
func (s *ReportServiceImpl) History(ctx context.Context, employeeID string) ([]report.HistoryRow, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	records, err := s.SessionRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	leaves, err := s.LeaveRequestRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	type dated struct {
		at  time.Time
		row report.HistoryRow
	}
	rows := make([]dated, 0, len(records))

	for _, rec := range records {
		date, err := time.Parse(session.DateKeyLayout, rec.DateKey)
		if err != nil {
			// A record with an unparseable key must not sink the whole
			// view; surface it as unknown.
			slog.Warn("attendance history: malformed date key", "employee_id", employeeID, "date_key", rec.DateKey)
			rows = append(rows, dated{row: report.HistoryRow{
				Date:       rec.DateKey,
				TotalBreak: session.FormatBreakDuration(0),
				Status:     report.StatusNotMarked,
			}})
			continue
		}

		rows = append(rows, dated{at: date, row: report.HistoryRow{
			Month:      date.Month().String(),
			Date:       date.Format("02/01/2006"),
			LoginTime:  formatClock(rec.LoginTime, s.loc),
			LogoutTime: formatClock(rec.LogoutTime, s.loc),
			TotalBreak: session.FormatBreakDuration(rec.TotalBreak()),
			Status:     s.DetermineStatus(&rec, leaves, date),
		}})
	}

	year := s.now().In(s.loc).Year()
	calendar, err := s.holidaySvc.Year(ctx, year)
	if err != nil {
		slog.Warn("attendance history: holiday calendar unavailable", "employee_id", employeeID, "error", err)
		calendar = nil
	}
	for _, entry := range calendar {
		applies := false
		for _, dept := range entry.Departments {
			if dept == emp.Department {
				applies = true
				break
			}
		}
		if !applies {
			continue
		}
		date, ok := parseDateKey(entry.Date)
		if !ok {
			continue
		}
		rows = append(rows, dated{at: date, row: report.HistoryRow{
			Month:      date.Month().String(),
			Date:       date.Format("02/01/2006"),
			TotalBreak: "-",
			Status:     entry.Name,
			Holiday:    true,
		}})
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].at.After(rows[j].at) })

	out := make([]report.HistoryRow, 0, len(rows))
	for _, d := range rows {
		out = append(out, d.row)
	}
	return out, nil
}

func formatClock(t *time.Time, loc *time.Location) *string {
	if t == nil {
		return nil
	}
	formatted := t.In(loc).Format("02/01/2006 15:04")
	return &formatted
}

func parseDateKey(key string) (time.Time, bool) {
	t, err := time.Parse(session.DateKeyLayout, key)
	return t, err == nil
}
