package employee

import (
	"time"
)

// Departments is the fixed set of values accepted for Employee.Department.
var Departments = []string{
	"Engineering",
	"Sales",
	"Marketing",
	"Human Resources",
	"Finance",
	"Operations",
}

type Employee struct {
	EmployeeID string
	FullName   string
	Email      string
	Department string
	Position   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
