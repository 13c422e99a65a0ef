package attendance

import (
	"strings"
	"time"

	"github.com/sutra-hrms/hrms-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// Day truncates t to its calendar date at midnight UTC. Attendance dates are
// stored this way so the compound (employee_id, date) key compares cleanly.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type MarkAttendanceRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	Status     string  `json:"status"`
	Notes      *string `json:"notes"`

	// Populated by Validate.
	ParsedDate time.Time `json:"-"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	r.EmployeeID = strings.ToUpper(strings.TrimSpace(r.EmployeeID))
	if !validator.IsValidEmployeeID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be 3-50 uppercase alphanumeric characters or hyphens",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if date, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	} else {
		r.ParsedDate = Day(date)
		if r.ParsedDate.After(Day(time.Now())) {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "attendance cannot be marked for future dates",
			})
		}
	}

	if !validator.IsInSlice(r.Status, Statuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(Statuses, ", "),
		})
	}

	if r.Notes != nil && len(*r.Notes) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "notes",
			Message: "notes must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateAttendanceRequest struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status == nil && r.Notes == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "at least one of status or notes must be provided",
		})
		return errs
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, Statuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(Statuses, ", "),
		})
	}

	if r.Notes != nil && len(*r.Notes) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "notes",
			Message: "notes must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ListAttendanceFilter carries the raw query filters. All supplied filters
// are combined with AND semantics. The exact-match date filter and the
// start_date/end_date range are mutually exclusive: supplying both is
// rejected rather than letting one win silently.
type ListAttendanceFilter struct {
	EmployeeID string
	Date       string
	StartDate  string
	EndDate    string
	Status     string

	// Populated by Validate.
	ParsedDate  *time.Time `json:"-"`
	ParsedStart *time.Time `json:"-"`
	ParsedEnd   *time.Time `json:"-"`
}

func (f *ListAttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.EmployeeID != "" {
		f.EmployeeID = strings.ToUpper(strings.TrimSpace(f.EmployeeID))
		if !validator.IsValidEmployeeID(f.EmployeeID) {
			errs = append(errs, validator.ValidationError{
				Field:   "employee_id",
				Message: "employee_id must be 3-50 uppercase alphanumeric characters or hyphens",
			})
		}
	}

	if f.Date != "" {
		if date, ok := validator.IsValidDate(f.Date); ok {
			day := Day(date)
			f.ParsedDate = &day
		} else {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.StartDate != "" {
		if date, ok := validator.IsValidDate(f.StartDate); ok {
			day := Day(date)
			f.ParsedStart = &day
		} else {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != "" {
		if date, ok := validator.IsValidDate(f.EndDate); ok {
			day := Day(date)
			f.ParsedEnd = &day
		} else {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.ParsedDate != nil && (f.ParsedStart != nil || f.ParsedEnd != nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date cannot be combined with start_date or end_date",
		})
	}

	if f.ParsedStart != nil && f.ParsedEnd != nil && f.ParsedStart.After(*f.ParsedEnd) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must not be after end_date",
		})
	}

	if f.Status != "" && !validator.IsInSlice(f.Status, Statuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(Statuses, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// CacheParams flattens the filter into the parameter map used for cache keys.
func (f *ListAttendanceFilter) CacheParams() map[string]string {
	return map[string]string{
		"employee_id": f.EmployeeID,
		"date":        f.Date,
		"start_date":  f.StartDate,
		"end_date":    f.EndDate,
		"status":      f.Status,
	}
}

type AttendanceResponse struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName *string   `json:"employee_name,omitempty"`
	Date         string    `json:"date"`
	Status       string    `json:"status"`
	Notes        *string   `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func ToResponse(att Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:           att.ID,
		EmployeeID:   att.EmployeeID,
		EmployeeName: att.EmployeeName,
		Date:         att.Date.Format("2006-01-02"),
		Status:       att.Status,
		Notes:        att.Notes,
		CreatedAt:    att.CreatedAt,
	}
}
