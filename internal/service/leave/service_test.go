package leave

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ujustbe/attendance-backend-go/internal/domain/employee"
	"github.com/ujustbe/attendance-backend-go/internal/domain/leave"
	"github.com/ujustbe/attendance-backend-go/internal/pkg/validator"
)

type fakeLeaveRepo struct {
	requests map[string]leave.Request
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{requests: make(map[string]leave.Request)}
}

func (f *fakeLeaveRepo) Create(_ context.Context, req leave.Request) (leave.Request, error) {
	req.CreatedAt = time.Now()
	f.requests[req.ID] = req
	return req, nil
}

func (f *fakeLeaveRepo) GetByID(_ context.Context, id string) (leave.Request, error) {
	req, ok := f.requests[id]
	if !ok {
		return leave.Request{}, leave.ErrLeaveRequestNotFound
	}
	return req, nil
}

func (f *fakeLeaveRepo) Overlapping(_ context.Context, employeeID string, date time.Time) ([]leave.Request, error) {
	matched := make([]leave.Request, 0)
	for _, req := range f.requests {
		if req.EmployeeID == employeeID && req.Overlaps(date) {
			matched = append(matched, req)
		}
	}
	return matched, nil
}

func (f *fakeLeaveRepo) ListByEmployee(_ context.Context, employeeID string) ([]leave.Request, error) {
	matched := make([]leave.Request, 0)
	for _, req := range f.requests {
		if req.EmployeeID == employeeID {
			matched = append(matched, req)
		}
	}
	return matched, nil
}

func (f *fakeLeaveRepo) List(_ context.Context, status *leave.RequestStatus) ([]leave.Request, error) {
	matched := make([]leave.Request, 0)
	for _, req := range f.requests {
		if status == nil || req.Status == *status {
			matched = append(matched, req)
		}
	}
	return matched, nil
}

func (f *fakeLeaveRepo) UpdateDecision(_ context.Context, id string, status leave.RequestStatus, remark *string, decidedAt time.Time) error {
	req, ok := f.requests[id]
	if !ok || req.Status != leave.StatusPending {
		return leave.ErrLeaveRequestAlreadyProcessed
	}
	req.Status = status
	req.AdminRemark = remark
	req.DecidedAt = &decidedAt
	f.requests[id] = req
	return nil
}

func (f *fakeLeaveRepo) UpdateRemark(_ context.Context, id string, remark string) error {
	req, ok := f.requests[id]
	if !ok {
		return leave.ErrLeaveRequestNotFound
	}
	req.AdminRemark = &remark
	f.requests[id] = req
	return nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo(ids ...string) *fakeEmployeeRepo {
	repo := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, id := range ids {
		repo.employees[id] = employee.Employee{ID: id, Name: "Employee " + id, Department: "UJustBe", Status: employee.StatusActive}
	}
	return repo
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) ListActive(_ context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, _ employee.Employee) error { return nil }

func (f *fakeEmployeeRepo) UpdateStatus(_ context.Context, _ string, _ string) error { return nil }

func newTestLeaveService(leaveRepo *fakeLeaveRepo, employeeRepo *fakeEmployeeRepo) *LeaveServiceImpl {
	return &LeaveServiceImpl{
		LeaveRequestRepository: leaveRepo,
		EmployeeRepository:     employeeRepo,
		now:                    time.Now,
	}
}

func validSubmitRequest() leave.SubmitRequest {
	return leave.SubmitRequest{
		LeaveType: string(leave.TypeSick),
		StartDate: "2025-09-03",
		EndDate:   "2025-09-05",
		Reason:    "Fever",
	}
}

func TestLeaveService_Submit_CreatesPendingRequest(t *testing.T) {
	ctx := context.Background()
	svc := newTestLeaveService(newFakeLeaveRepo(), newFakeEmployeeRepo("9876543210"))

	resp, err := svc.Submit(ctx, "9876543210", validSubmitRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "9876543210", resp.EmployeeID)
	assert.Equal(t, "Sick Leave", resp.LeaveType)
	assert.Equal(t, string(leave.StatusPending), resp.Status)
	assert.Equal(t, "2025-09-03", resp.StartDate)
	assert.Equal(t, "2025-09-05", resp.EndDate)
}

func TestLeaveService_Submit_UnknownEmployee(t *testing.T) {
	ctx := context.Background()
	svc := newTestLeaveService(newFakeLeaveRepo(), newFakeEmployeeRepo())

	_, err := svc.Submit(ctx, "9876543210", validSubmitRequest())

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestLeaveService_Submit_ValidatesInput(t *testing.T) {
	ctx := context.Background()
	svc := newTestLeaveService(newFakeLeaveRepo(), newFakeEmployeeRepo("9876543210"))

	_, err := svc.Submit(ctx, "9876543210", leave.SubmitRequest{
		LeaveType: "Vacation",
		StartDate: "2025-09-05",
		EndDate:   "2025-09-03",
		Reason:    "",
	})

	require.Error(t, err)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	m := verrs.ToMap()
	assert.Contains(t, m, "leave_type")
	assert.Contains(t, m, "start_date")
	assert.Contains(t, m, "reason")
}

func TestLeaveService_Submit_AcceptsSourceSystemTypeValues(t *testing.T) {
	ctx := context.Background()
	svc := newTestLeaveService(newFakeLeaveRepo(), newFakeEmployeeRepo("9876543210"))

	// Historical records imported from the previous system carry these
	// exact strings; the enum must match them verbatim.
	for _, leaveType := range []string{
		"Sick Leave", "Casual Leave", "Unpaid Leave",
		"CompOff Leave", "Half-Day Leave", "Forgot to Mark Attendance",
	} {
		resp, err := svc.Submit(ctx, "9876543210", leave.SubmitRequest{
			LeaveType: leaveType,
			StartDate: "2025-09-03",
			EndDate:   "2025-09-03",
			Reason:    "Backfill",
		})
		require.NoError(t, err, "leave type %q", leaveType)
		assert.Equal(t, leaveType, resp.LeaveType)
	}
}

func TestLeaveService_Submit_AllowsOverlappingRanges(t *testing.T) {
	ctx := context.Background()
	svc := newTestLeaveService(newFakeLeaveRepo(), newFakeEmployeeRepo("9876543210"))

	_, err := svc.Submit(ctx, "9876543210", validSubmitRequest())
	require.NoError(t, err)

	// A half-day inside the sick range is a legitimate second request.
	overlapping := leave.SubmitRequest{
		LeaveType: string(leave.TypeHalfDay),
		StartDate: "2025-09-04",
		EndDate:   "2025-09-04",
		Reason:    "Appointment",
	}
	_, err = svc.Submit(ctx, "9876543210", overlapping)

	assert.NoError(t, err)
}

func TestLeaveService_Decide_ApprovesOnce(t *testing.T) {
	ctx := context.Background()
	repo := newFakeLeaveRepo()
	svc := newTestLeaveService(repo, newFakeEmployeeRepo("9876543210"))

	created, err := svc.Submit(ctx, "9876543210", validSubmitRequest())
	require.NoError(t, err)

	remark := "Get well soon"
	resp, err := svc.Decide(ctx, created.ID, leave.DecisionRequest{
		Status: string(leave.StatusApproved),
		Remark: &remark,
	})

	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusApproved), resp.Status)
	require.NotNil(t, resp.AdminRemark)
	assert.Equal(t, remark, *resp.AdminRemark)
	assert.NotNil(t, resp.DecidedAt)
}

func TestLeaveService_Decide_SecondDecisionFails(t *testing.T) {
	ctx := context.Background()
	repo := newFakeLeaveRepo()
	svc := newTestLeaveService(repo, newFakeEmployeeRepo("9876543210"))

	created, err := svc.Submit(ctx, "9876543210", validSubmitRequest())
	require.NoError(t, err)

	_, err = svc.Decide(ctx, created.ID, leave.DecisionRequest{Status: string(leave.StatusApproved)})
	require.NoError(t, err)

	_, err = svc.Decide(ctx, created.ID, leave.DecisionRequest{Status: string(leave.StatusDeclined)})

	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
}

func TestLeaveService_Decide_RejectsUnknownStatus(t *testing.T) {
	ctx := context.Background()
	svc := newTestLeaveService(newFakeLeaveRepo(), newFakeEmployeeRepo("9876543210"))

	_, err := svc.Decide(ctx, "any", leave.DecisionRequest{Status: "Maybe"})

	assert.ErrorIs(t, err, leave.ErrInvalidDecision)
}

func TestLeaveService_Decide_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := newTestLeaveService(newFakeLeaveRepo(), newFakeEmployeeRepo())

	_, err := svc.Decide(ctx, "missing", leave.DecisionRequest{Status: string(leave.StatusApproved)})

	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestLeaveService_UpdateRemark_EditableAfterDecision(t *testing.T) {
	ctx := context.Background()
	repo := newFakeLeaveRepo()
	svc := newTestLeaveService(repo, newFakeEmployeeRepo("9876543210"))

	created, err := svc.Submit(ctx, "9876543210", validSubmitRequest())
	require.NoError(t, err)

	_, err = svc.Decide(ctx, created.ID, leave.DecisionRequest{Status: string(leave.StatusApproved)})
	require.NoError(t, err)

	resp, err := svc.UpdateRemark(ctx, created.ID, leave.RemarkRequest{Remark: "Approved, docs received"})

	require.NoError(t, err)
	require.NotNil(t, resp.AdminRemark)
	assert.Equal(t, "Approved, docs received", *resp.AdminRemark)
	assert.Equal(t, string(leave.StatusApproved), resp.Status)
}

func TestLeaveService_UpdateRemark_RejectsPendingRequest(t *testing.T) {
	ctx := context.Background()
	svc := newTestLeaveService(newFakeLeaveRepo(), newFakeEmployeeRepo("9876543210"))

	created, err := svc.Submit(ctx, "9876543210", validSubmitRequest())
	require.NoError(t, err)

	_, err = svc.UpdateRemark(ctx, created.ID, leave.RemarkRequest{Remark: "Too early"})

	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotDecided)
}

func TestLeaveService_List_FiltersByStatus(t *testing.T) {
	ctx := context.Background()
	repo := newFakeLeaveRepo()
	svc := newTestLeaveService(repo, newFakeEmployeeRepo("9876543210"))

	first, err := svc.Submit(ctx, "9876543210", validSubmitRequest())
	require.NoError(t, err)
	_, err = svc.Submit(ctx, "9876543210", leave.SubmitRequest{
		LeaveType: string(leave.TypeCasual),
		StartDate: "2025-09-10",
		EndDate:   "2025-09-10",
		Reason:    "Errand",
	})
	require.NoError(t, err)

	_, err = svc.Decide(ctx, first.ID, leave.DecisionRequest{Status: string(leave.StatusApproved)})
	require.NoError(t, err)

	pending := leave.StatusPending
	responses, err := svc.List(ctx, &pending)

	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Equal(t, string(leave.StatusPending), responses[0].Status)
}
