package leave

import (
	"time"

	"github.com/ujustbe/attendance-backend-go/internal/pkg/validator"
)

type SubmitRequest struct {
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

func (r SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	typeOK := false
	for _, t := range AllTypes {
		if string(t) == r.LeaveType {
			typeOK = true
			break
		}
	}
	if !typeOK {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "must be a known leave type"})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
	}
	if startOK && endOK && start.After(end) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must not be after end_date"})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DecisionRequest struct {
	Status string  `json:"status"`
	Remark *string `json:"remark,omitempty"`
}

func (r DecisionRequest) Validate() error {
	if r.Status != string(StatusApproved) && r.Status != string(StatusDeclined) {
		return ErrInvalidDecision
	}
	return nil
}

type RemarkRequest struct {
	Remark string `json:"remark"`
}

func (r RemarkRequest) Validate() error {
	if validator.IsEmpty(r.Remark) {
		return validator.ValidationErrors{{Field: "remark", Message: "is required"}}
	}
	return nil
}

type RequestResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	LeaveType    string  `json:"leave_type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	AdminRemark  *string `json:"admin_remark,omitempty"`
	DecidedAt    *string `json:"decided_at,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

// ToResponse maps a request entity to its transport shape.
func ToResponse(req Request) RequestResponse {
	var decidedAt *string
	if req.DecidedAt != nil {
		s := req.DecidedAt.Format(time.RFC3339)
		decidedAt = &s
	}
	return RequestResponse{
		ID:           req.ID,
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		LeaveType:    string(req.LeaveType),
		StartDate:    req.StartDate.Format("2006-01-02"),
		EndDate:      req.EndDate.Format("2006-01-02"),
		Reason:       req.Reason,
		Status:       string(req.Status),
		AdminRemark:  req.AdminRemark,
		DecidedAt:    decidedAt,
		CreatedAt:    req.CreatedAt.Format(time.RFC3339),
	}
}
