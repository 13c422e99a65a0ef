package attendance

import (
	"time"
)

// Attendance statuses. Half Day and Leave are recorded like any other status
// but are excluded from the dashboard's present/absent counts.
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
	StatusHalfDay = "Half Day"
	StatusLeave   = "Leave"
)

var Statuses = []string{StatusPresent, StatusAbsent, StatusHalfDay, StatusLeave}

type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Status     string
	Notes      *string
	CreatedAt  time.Time

	// Joined from the employee record for list responses.
	EmployeeName *string
}
