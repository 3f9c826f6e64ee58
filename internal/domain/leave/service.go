package leave

import "context"

// LeaveService defines business logic for leave requests
type LeaveService interface {
	// Submit files a new request on behalf of the employee
	Submit(ctx context.Context, employeeID string, req SubmitRequest) (RequestResponse, error)

	// Decide performs the one-time Pending -> Approved|Declined transition
	Decide(ctx context.Context, id string, req DecisionRequest) (RequestResponse, error)

	// UpdateRemark amends the admin remark on a decided request
	UpdateRemark(ctx context.Context, id string, req RemarkRequest) (RequestResponse, error)

	// MyRequests lists the caller's requests, newest first
	MyRequests(ctx context.Context, employeeID string) ([]RequestResponse, error)

	// List lists requests across employees, optionally by status
	List(ctx context.Context, status *RequestStatus) ([]RequestResponse, error)
}
