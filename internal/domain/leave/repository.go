package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository - data access for leave requests
type LeaveRequestRepository interface {
	Create(ctx context.Context, request Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)

	// Overlapping retrieves requests whose inclusive range contains date
	Overlapping(ctx context.Context, employeeID string, date time.Time) ([]Request, error)

	// ListByEmployee retrieves all requests for one employee, newest first
	ListByEmployee(ctx context.Context, employeeID string) ([]Request, error)

	// List retrieves requests across employees, optionally by status
	List(ctx context.Context, status *RequestStatus) ([]Request, error)

	// UpdateDecision records the one-time Pending -> Approved|Declined
	// transition together with the admin remark
	UpdateDecision(ctx context.Context, id string, status RequestStatus, remark *string, decidedAt time.Time) error

	// UpdateRemark amends the admin remark after a decision
	UpdateRemark(ctx context.Context, id string, remark string) error
}
