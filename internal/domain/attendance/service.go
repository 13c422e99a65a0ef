package attendance

import (
	"context"
)

// AttendanceService exposes attendance marking and querying to the API layer.
type AttendanceService interface {
	Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)
	List(ctx context.Context, filter ListAttendanceFilter) ([]AttendanceResponse, error)
	Update(ctx context.Context, recordID string, req UpdateAttendanceRequest) (AttendanceResponse, error)
	Delete(ctx context.Context, recordID string) error

	// DeleteAllForEmployee is the cascade hook invoked by the employee
	// directory when an employee is removed.
	DeleteAllForEmployee(ctx context.Context, employeeID string) (int64, error)
}
