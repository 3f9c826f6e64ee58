package employee

import "context"

// EmployeeRepository defines data access methods for the employee directory.
type EmployeeRepository interface {
	// Create onboards a new employee
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves an employee by phone number
	GetByID(ctx context.Context, id string) (Employee, error)

	// ListActive retrieves employees whose status is not resigned/terminated
	ListActive(ctx context.Context) ([]Employee, error)

	// List retrieves all employees regardless of status
	List(ctx context.Context) ([]Employee, error)

	// Update updates profile fields (name, department)
	Update(ctx context.Context, emp Employee) error

	// UpdateStatus transitions employment status; history is never deleted
	UpdateStatus(ctx context.Context, id string, status string) error
}
