package response

import (
	"errors"
	"net/http"

	"github.com/sutra-hrms/hrms-backend-go/internal/domain/attendance"
	"github.com/sutra-hrms/hrms-backend-go/internal/domain/auth"
	"github.com/sutra-hrms/hrms-backend-go/internal/domain/employee"
	"github.com/sutra-hrms/hrms-backend-go/internal/domain/user"
	"github.com/sutra-hrms/hrms-backend-go/internal/pkg/database"
	"github.com/sutra-hrms/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrInvalidGoogleToken):
		Unauthorized(w, "Google sign-in failed")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeIDExists):
		Conflict(w, "Employee ID already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyMarked):
		Conflict(w, "Attendance already marked for this employee on this date")

	// Store availability
	case errors.Is(err, database.ErrTimeout):
		GatewayTimeout(w, "Database operation timed out")
	case errors.Is(err, database.ErrUnavailable):
		ServiceUnavailable(w, "Database is unavailable")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
