package attendance

import "errors"

// Attendance domain errors
var (
	ErrRecordNotFound = errors.New("attendance record not found")
	ErrAlreadyMarked  = errors.New("attendance already marked for this employee and date")
)
