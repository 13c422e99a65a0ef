package employee

import (
	"context"
)

// EmployeeService exposes the employee directory to the API layer.
type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	List(ctx context.Context, filter ListEmployeesFilter) ([]EmployeeResponse, error)
	Get(ctx context.Context, employeeID string) (EmployeeResponse, error)
	Update(ctx context.Context, employeeID string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	// Delete removes the employee and cascades deletion of their attendance
	// records through the attendance component.
	Delete(ctx context.Context, employeeID string) error
}
