package dashboard

// DashboardSummary is recomputed from current employee/attendance state and
// cached with a short TTL; it is never persisted.
type DashboardSummary struct {
	TotalEmployees   int64            `json:"total_employees"`
	PresentToday     int64            `json:"present_today"`
	AbsentToday      int64            `json:"absent_today"`
	DepartmentCounts map[string]int64 `json:"department_counts"`
}

// EmployeeAttendanceSummary aggregates one employee's recorded days.
// TotalDays counts every recorded row, Half Day and Leave included, so the
// percentage reflects presence across all recorded days.
type EmployeeAttendanceSummary struct {
	EmployeeID           string  `json:"employee_id"`
	FullName             string  `json:"full_name"`
	PresentDays          int64   `json:"present_days"`
	AbsentDays           int64   `json:"absent_days"`
	TotalDays            int64   `json:"total_days"`
	AttendancePercentage float64 `json:"attendance_percentage"`
}

// EmployeeAttendanceStats is the raw per-employee aggregate read from the
// store, before the percentage is derived.
type EmployeeAttendanceStats struct {
	EmployeeID  string
	FullName    string
	PresentDays int64
	AbsentDays  int64
	TotalDays   int64
}
