package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ujustbe/attendance-backend-go/internal/domain/employee"
	"github.com/ujustbe/attendance-backend-go/internal/domain/leave"
	"github.com/ujustbe/attendance-backend-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
	employee.EmployeeRepository
	now func() time.Time
}

func NewLeaveService(leaveRepo leave.LeaveRequestRepository, employeeRepo employee.EmployeeRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRequestRepository: leaveRepo,
		EmployeeRepository:     employeeRepo,
		now:                    time.Now,
	}
}

// Submit implements leave.LeaveService. Overlapping ranges for the same
// employee are allowed; a half-day request may sit inside a longer one and
// display precedence is resolved at reporting time.
func (s *LeaveServiceImpl) Submit(ctx context.Context, employeeID string, req leave.SubmitRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return leave.RequestResponse{}, employee.ErrEmployeeNotFound
		}
		return leave.RequestResponse{}, fmt.Errorf("failed to verify employee: %w", err)
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	endDate, _ := validator.IsValidDate(req.EndDate)

	created, err := s.LeaveRequestRepository.Create(ctx, leave.Request{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		LeaveType:  leave.LeaveType(req.LeaveType),
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return leave.ToResponse(created), nil
}

// Decide implements leave.LeaveService. The Pending -> Approved|Declined
// transition happens exactly once; a second decision fails with
// ErrLeaveRequestAlreadyProcessed. Only the remark stays editable after.
func (s *LeaveServiceImpl) Decide(ctx context.Context, id string, req leave.DecisionRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	existing, err := s.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveRequestNotFound) {
			return leave.RequestResponse{}, leave.ErrLeaveRequestNotFound
		}
		return leave.RequestResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	if existing.Status != leave.StatusPending {
		return leave.RequestResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	decidedAt := s.now()
	if err := s.LeaveRequestRepository.UpdateDecision(ctx, id, leave.RequestStatus(req.Status), req.Remark, decidedAt); err != nil {
		return leave.RequestResponse{}, err
	}

	decided, err := s.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to get decided leave request: %w", err)
	}

	return leave.ToResponse(decided), nil
}

// UpdateRemark implements leave.LeaveService. The decision itself is final
// but the remark stays editable afterwards.
func (s *LeaveServiceImpl) UpdateRemark(ctx context.Context, id string, req leave.RemarkRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	existing, err := s.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveRequestNotFound) {
			return leave.RequestResponse{}, leave.ErrLeaveRequestNotFound
		}
		return leave.RequestResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	if existing.Status == leave.StatusPending {
		return leave.RequestResponse{}, leave.ErrLeaveRequestNotDecided
	}

	if err := s.LeaveRequestRepository.UpdateRemark(ctx, id, req.Remark); err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to update remark: %w", err)
	}

	updated, err := s.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to get updated leave request: %w", err)
	}

	return leave.ToResponse(updated), nil
}

// MyRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) MyRequests(ctx context.Context, employeeID string) ([]leave.RequestResponse, error) {
	requests, err := s.LeaveRequestRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.RequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, leave.ToResponse(req))
	}
	return responses, nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, status *leave.RequestStatus) ([]leave.RequestResponse, error) {
	requests, err := s.LeaveRequestRepository.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.RequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, leave.ToResponse(req))
	}
	return responses, nil
}
