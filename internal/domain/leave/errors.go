package leave

import "errors"

// Leave domain errors
var (
	ErrLeaveRequestNotFound         = errors.New("leave request not found")
	ErrLeaveRequestAlreadyProcessed = errors.New("leave request has already been approved or declined")
	ErrLeaveRequestNotDecided       = errors.New("leave request has not been decided yet")
	ErrInvalidDateRange             = errors.New("start date must not be after end date")
	ErrInvalidLeaveType             = errors.New("invalid leave type")
	ErrInvalidDecision              = errors.New("decision must be Approved or Declined")
)
