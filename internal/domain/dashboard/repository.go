package dashboard

import (
	"context"
	"time"
)

// DashboardRepository defines the aggregate queries behind the dashboard.
type DashboardRepository interface {
	// CountEmployees returns the total number of employees.
	CountEmployees(ctx context.Context) (int64, error)

	// TodayAttendanceCounts returns the number of records dated on the given
	// day with status Present and Absent respectively. Half Day and Leave are
	// intentionally excluded from both counts.
	TodayAttendanceCounts(ctx context.Context, day time.Time) (present int64, absent int64, err error)

	// DepartmentCounts returns employee counts grouped by department. Only
	// departments with at least one employee appear.
	DepartmentCounts(ctx context.Context) (map[string]int64, error)

	// EmployeeAttendanceStats returns per-employee aggregates for every
	// employee with at least one attendance record, ordered by employee_id
	// ascending.
	EmployeeAttendanceStats(ctx context.Context) ([]EmployeeAttendanceStats, error)
}
