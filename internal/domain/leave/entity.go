package leave

import "time"

type RequestStatus string

const (
	StatusPending  RequestStatus = "Pending"
	StatusApproved RequestStatus = "Approved"
	StatusDeclined RequestStatus = "Declined"
)

// LeaveType values match the options offered to employees.
type LeaveType string

const (
	TypeSick         LeaveType = "Sick Leave"
	TypeCasual       LeaveType = "Casual Leave"
	TypeUnpaid       LeaveType = "Unpaid Leave"
	TypeCompOff      LeaveType = "CompOff Leave"
	TypeHalfDay      LeaveType = "Half-Day Leave"
	TypeForgotToMark LeaveType = "Forgot to Mark Attendance"
)

// AllTypes lists the accepted leave types.
var AllTypes = []LeaveType{
	TypeSick, TypeCasual, TypeUnpaid, TypeCompOff, TypeHalfDay, TypeForgotToMark,
}

// Request is an employee leave request over an inclusive date range.
// Overlapping ranges for one employee are allowed; display precedence is
// resolved by the reconciliation engine.
type Request struct {
	ID         string
	EmployeeID string
	LeaveType  LeaveType

	StartDate time.Time
	EndDate   time.Time

	Reason string

	// Status transitions Pending -> Approved|Declined exactly once.
	Status      RequestStatus
	AdminRemark *string
	DecidedAt   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships (for responses)
	EmployeeName *string
}

// Overlaps reports whether date falls inside the request's inclusive range.
func (r Request) Overlaps(date time.Time) bool {
	day := date.Truncate(24 * time.Hour)
	return !r.StartDate.After(day) && !r.EndDate.Before(day)
}
