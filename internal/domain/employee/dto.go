package employee

import (
	"strings"
	"time"

	"github.com/sutra-hrms/hrms-backend-go/internal/pkg/validator"
)

// ========================================
// EMPLOYEE DTOs
// ========================================

type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Position   string `json:"position"`
}

// Normalize uppercases the employee id, lowercases the email and trims
// free-text fields, mirroring what is stored.
func (r *CreateEmployeeRequest) Normalize() {
	r.EmployeeID = strings.ToUpper(strings.TrimSpace(r.EmployeeID))
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.FullName = strings.TrimSpace(r.FullName)
	r.Department = strings.TrimSpace(r.Department)
	r.Position = strings.TrimSpace(r.Position)
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be 3-50 uppercase alphanumeric characters or hyphens",
		})
	}

	if len(r.FullName) < 2 || len(r.FullName) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must be between 2 and 100 characters",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if !validator.IsInSlice(r.Department, Departments) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department must be one of: " + strings.Join(Departments, ", "),
		})
	}

	if len(r.Position) < 2 || len(r.Position) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position must be between 2 and 100 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	FullName   *string `json:"full_name"`
	Email      *string `json:"email"`
	Department *string `json:"department"`
	Position   *string `json:"position"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName == nil && r.Email == nil && r.Department == nil && r.Position == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "at least one field must be provided",
		})
		return errs
	}

	if r.FullName != nil {
		trimmed := strings.TrimSpace(*r.FullName)
		*r.FullName = trimmed
		if len(trimmed) < 2 || len(trimmed) > 100 {
			errs = append(errs, validator.ValidationError{
				Field:   "full_name",
				Message: "full_name must be between 2 and 100 characters",
			})
		}
	}

	if r.Email != nil {
		lowered := strings.ToLower(strings.TrimSpace(*r.Email))
		*r.Email = lowered
		if !validator.IsValidEmail(lowered) {
			errs = append(errs, validator.ValidationError{
				Field:   "email",
				Message: "invalid email format",
			})
		}
	}

	if r.Department != nil && !validator.IsInSlice(*r.Department, Departments) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department must be one of: " + strings.Join(Departments, ", "),
		})
	}

	if r.Position != nil {
		trimmed := strings.TrimSpace(*r.Position)
		*r.Position = trimmed
		if len(trimmed) < 2 || len(trimmed) > 100 {
			errs = append(errs, validator.ValidationError{
				Field:   "position",
				Message: "position must be between 2 and 100 characters",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListEmployeesFilter struct {
	Department string
	Search     string
}

type EmployeeResponse struct {
	EmployeeID string    `json:"employee_id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	Position   string    `json:"position"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func ToResponse(emp Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID: emp.EmployeeID,
		FullName:   emp.FullName,
		Email:      emp.Email,
		Department: emp.Department,
		Position:   emp.Position,
		CreatedAt:  emp.CreatedAt,
		UpdatedAt:  emp.UpdatedAt,
	}
}
