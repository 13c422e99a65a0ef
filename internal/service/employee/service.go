package employee

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/sutra-hrms/hrms-backend-go/internal/domain/employee"
	"github.com/sutra-hrms/hrms-backend-go/internal/pkg/cache"
)

const (
	storeTimeout = 5 * time.Second

	listCacheTTL = 60 * time.Second

	employeeCachePrefix   = "employees:"
	attendanceCachePrefix = "attendance:"
	dashboardCachePrefix  = "dashboard:"
)

// Transactor runs fn atomically; repository calls made with the context fn
// receives join the same transaction.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// AttendanceCascade is the slice of the attendance component the directory
// needs when removing an employee.
type AttendanceCascade interface {
	DeleteAllForEmployee(ctx context.Context, employeeID string) (int64, error)
}

type EmployeeServiceImpl struct {
	tx           Transactor
	employeeRepo employee.EmployeeRepository
	attendance   AttendanceCascade
	cache        *cache.Facade
}

func NewEmployeeService(
	tx Transactor,
	employeeRepo employee.EmployeeRepository,
	attendanceCascade AttendanceCascade,
	cacheFacade *cache.Facade,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		tx:           tx,
		employeeRepo: employeeRepo,
		attendance:   attendanceCascade,
		cache:        cacheFacade,
	}
}

// invalidateCaches drops every derived view of employee data. Attendance
// lists and dashboard aggregates both join employee names, so they go stale
// together with the directory.
func (s *EmployeeServiceImpl) invalidateCaches(ctx context.Context) {
	s.cache.Invalidate(ctx, employeeCachePrefix)
	s.cache.Invalidate(ctx, attendanceCachePrefix)
	s.cache.Invalidate(ctx, dashboardCachePrefix)
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		EmployeeID: req.EmployeeID,
		FullName:   req.FullName,
		Email:      req.Email,
		Department: req.Department,
		Position:   req.Position,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.invalidateCaches(ctx)

	slog.Info("employee created", "employee_id", created.EmployeeID, "department", created.Department)
	return employee.ToResponse(created), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.ListEmployeesFilter) ([]employee.EmployeeResponse, error) {
	filter.Department = strings.TrimSpace(filter.Department)
	filter.Search = strings.TrimSpace(filter.Search)

	key := cache.Key(employeeCachePrefix+"list", map[string]string{
		"department": filter.Department,
		"search":     filter.Search,
	})

	return cache.GetOrCompute(ctx, s.cache, key, listCacheTTL, func(ctx context.Context) ([]employee.EmployeeResponse, error) {
		ctx, cancel := context.WithTimeout(ctx, storeTimeout)
		defer cancel()

		employees, err := s.employeeRepo.List(ctx, filter)
		if err != nil {
			return nil, err
		}

		responses := make([]employee.EmployeeResponse, 0, len(employees))
		for _, emp := range employees {
			responses = append(responses, employee.ToResponse(emp))
		}
		return responses, nil
	})
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, employeeID string) (employee.EmployeeResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	emp, err := s.employeeRepo.GetByID(ctx, strings.ToUpper(strings.TrimSpace(employeeID)))
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// Update implements employee.EmployeeService. The employee_id itself is
// immutable; only profile fields can change.
func (s *EmployeeServiceImpl) Update(ctx context.Context, employeeID string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	emp, err := s.employeeRepo.GetByID(ctx, strings.ToUpper(strings.TrimSpace(employeeID)))
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.Department != nil {
		emp.Department = *req.Department
	}
	if req.Position != nil {
		emp.Position = *req.Position
	}

	updated, err := s.employeeRepo.Update(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.invalidateCaches(ctx)

	return employee.ToResponse(updated), nil
}

// Delete implements employee.EmployeeService. The employee row and all their
// attendance records are removed in one transaction: either both survive or
// neither does.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, employeeID string) error {
	employeeID = strings.ToUpper(strings.TrimSpace(employeeID))

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	var cascaded int64
	err := s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		count, err := s.attendance.DeleteAllForEmployee(txCtx, employeeID)
		if err != nil {
			return err
		}
		cascaded = count

		return s.employeeRepo.Delete(txCtx, employeeID)
	})
	if err != nil {
		return err
	}

	s.invalidateCaches(ctx)

	slog.Info("employee deleted", "employee_id", employeeID, "attendance_records_removed", cascaded)
	return nil
}
