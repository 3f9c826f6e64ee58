package employee

import "context"

// EmployeeService defines business logic for directory operations
type EmployeeService interface {
	// Create onboards a new employee
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// Get retrieves a single employee
	Get(ctx context.Context, id string) (EmployeeResponse, error)

	// List retrieves all employees
	List(ctx context.Context) ([]EmployeeResponse, error)

	// Update changes profile fields (name, department)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// UpdateStatus transitions an employee's employment status
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (EmployeeResponse, error)
}
