package response

import (
	"errors"
	"net/http"

	"github.com/ujustbe/attendance-backend-go/internal/domain/employee"
	"github.com/ujustbe/attendance-backend-go/internal/domain/holiday"
	"github.com/ujustbe/attendance-backend-go/internal/domain/leave"
	"github.com/ujustbe/attendance-backend-go/internal/domain/session"
	"github.com/ujustbe/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeExists):
		Conflict(w, "Employee already registered with this phone number")
	case errors.Is(err, employee.ErrInvalidStatus):
		BadRequest(w, "Invalid employment status", nil)

	// Session domain errors
	case errors.Is(err, session.ErrSessionNotFound):
		NotFound(w, "No session record for this day")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrLeaveRequestNotDecided):
		Conflict(w, "Leave request has not been decided yet")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "Start date must not be after end date", nil)
	case errors.Is(err, leave.ErrInvalidLeaveType):
		BadRequest(w, "Invalid leave type", nil)
	case errors.Is(err, leave.ErrInvalidDecision):
		BadRequest(w, "Decision must be Approved or Declined", nil)

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "Holiday already exists for this name and date")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
