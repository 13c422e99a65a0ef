package attendance

import (
	"context"
)

// UpdatePatch carries the mutable fields of an attendance record. The
// employee and date of a record are immutable after creation.
type UpdatePatch struct {
	Status *string
	Notes  *string
}

// AttendanceRepository defines data access methods for attendance records.
// The store enforces uniqueness of (employee_id, date); Insert surfaces a
// violation as ErrAlreadyMarked, which is the sole mechanism resolving
// concurrent duplicate marks.
type AttendanceRepository interface {
	// Insert creates a new attendance record.
	Insert(ctx context.Context, att Attendance) (Attendance, error)

	// FindMany retrieves records matching the filter, ordered by date
	// descending with ties broken by employee_id ascending.
	FindMany(ctx context.Context, filter ListAttendanceFilter) ([]Attendance, error)

	// UpdateByID applies the patch and returns the updated record.
	UpdateByID(ctx context.Context, id string, patch UpdatePatch) (Attendance, error)

	// DeleteByID removes a record. Returns ErrRecordNotFound if absent, so a
	// repeated delete of the same id fails.
	DeleteByID(ctx context.Context, id string) error

	// DeleteByEmployee removes every record for the employee and returns the
	// deleted count. Zero records is not an error.
	DeleteByEmployee(ctx context.Context, employeeID string) (int64, error)
}
