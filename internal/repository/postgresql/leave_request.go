package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ujustbe/attendance-backend-go/internal/domain/leave"
	"github.com/ujustbe/attendance-backend-go/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

const leaveColumns = `
	lr.id, lr.employee_id, lr.leave_type, lr.start_date, lr.end_date,
	lr.reason, lr.status, lr.admin_remark, lr.decided_at,
	lr.created_at, lr.updated_at,
	e.name AS employee_name
`

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) Create(ctx context.Context, request leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (id, employee_id, leave_type, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.ID,
		request.EmployeeID,
		string(request.LeaveType),
		request.StartDate,
		request.EndDate,
		request.Reason,
		string(request.Status),
	).Scan(&request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return request, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests lr
		LEFT JOIN employees e ON e.id = lr.employee_id
		WHERE lr.id = $1
	`

	req, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Request{}, leave.ErrLeaveRequestNotFound
		}
		return leave.Request{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return req, nil
}

// Overlapping implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) Overlapping(ctx context.Context, employeeID string, date time.Time) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests lr
		LEFT JOIN employees e ON e.id = lr.employee_id
		WHERE lr.employee_id = $1
		  AND lr.start_date <= $2::date
		  AND lr.end_date >= $2::date
		ORDER BY lr.created_at
	`

	rows, err := q.Query(ctx, query, employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query overlapping leave requests: %w", err)
	}
	defer rows.Close()

	return scanLeaveRequests(rows)
}

// ListByEmployee implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) ListByEmployee(ctx context.Context, employeeID string) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests lr
		LEFT JOIN employees e ON e.id = lr.employee_id
		WHERE lr.employee_id = $1
		ORDER BY lr.created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	return scanLeaveRequests(rows)
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) List(ctx context.Context, status *leave.RequestStatus) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests lr
		LEFT JOIN employees e ON e.id = lr.employee_id
	`
	args := []interface{}{}
	if status != nil {
		query += ` WHERE lr.status = $1`
		args = append(args, string(*status))
	}
	query += ` ORDER BY lr.created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	return scanLeaveRequests(rows)
}

// UpdateDecision implements leave.LeaveRequestRepository. The WHERE clause
// makes the Pending -> decided transition one-shot at the store level.
func (r *leaveRequestRepository) UpdateDecision(ctx context.Context, id string, status leave.RequestStatus, remark *string, decidedAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2, admin_remark = $3, decided_at = $4, updated_at = NOW()
		WHERE id = $1
		  AND status = 'Pending'
	`

	tag, err := q.Exec(ctx, query, id, string(status), remark, decidedAt)
	if err != nil {
		return fmt.Errorf("failed to update leave request decision: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestAlreadyProcessed
	}

	return nil
}

// UpdateRemark implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) UpdateRemark(ctx context.Context, id string, remark string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET admin_remark = $2, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, remark)
	if err != nil {
		return fmt.Errorf("failed to update leave request remark: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}

	return nil
}

func scanLeaveRequest(row pgx.Row) (leave.Request, error) {
	var req leave.Request
	var leaveType, status string

	err := row.Scan(
		&req.ID, &req.EmployeeID, &leaveType, &req.StartDate, &req.EndDate,
		&req.Reason, &status, &req.AdminRemark, &req.DecidedAt,
		&req.CreatedAt, &req.UpdatedAt,
		&req.EmployeeName,
	)
	if err != nil {
		return leave.Request{}, err
	}

	req.LeaveType = leave.LeaveType(leaveType)
	req.Status = leave.RequestStatus(status)
	return req, nil
}

func scanLeaveRequests(rows pgx.Rows) ([]leave.Request, error) {
	requests := make([]leave.Request, 0)
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request row: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("leave request rows iteration: %w", err)
	}
	return requests, nil
}
