package employee

import (
	"context"
)

// EmployeeRepository defines data access methods for employee records.
type EmployeeRepository interface {
	// Create inserts a new employee. Returns ErrEmployeeIDExists or
	// ErrEmailExists on uniqueness violations.
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves an employee by employee_id.
	GetByID(ctx context.Context, employeeID string) (Employee, error)

	// List retrieves employees matching the filter, newest first.
	List(ctx context.Context, filter ListEmployeesFilter) ([]Employee, error)

	// Update replaces the mutable fields of an existing employee.
	Update(ctx context.Context, emp Employee) (Employee, error)

	// Delete removes an employee by employee_id.
	Delete(ctx context.Context, employeeID string) error
}
