package attendance

import (
	"context"
	"time"

	"github.com/sutra-hrms/hrms-backend-go/internal/domain/attendance"
	"github.com/sutra-hrms/hrms-backend-go/internal/domain/employee"
	"github.com/sutra-hrms/hrms-backend-go/internal/pkg/cache"
)

const (
	// storeTimeout bounds every store round-trip so a slow backend surfaces
	// as ErrTimeout instead of hanging the request.
	storeTimeout = 5 * time.Second

	listCacheTTL = 60 * time.Second

	attendanceCachePrefix = "attendance:"
	dashboardCachePrefix  = "dashboard:"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	cache          *cache.Facade
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	cacheFacade *cache.Facade,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		cache:          cacheFacade,
	}
}

// invalidateCaches drops the list and dashboard entries after a mutation so
// stale aggregates are served at most until the next read, not for a full TTL.
func (s *AttendanceServiceImpl) invalidateCaches(ctx context.Context) {
	s.cache.Invalidate(ctx, attendanceCachePrefix)
	s.cache.Invalidate(ctx, dashboardCachePrefix)
}

// Mark implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Mark(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	created, err := s.attendanceRepo.Insert(ctx, attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       req.ParsedDate,
		Status:     req.Status,
		Notes:      req.Notes,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	s.invalidateCaches(ctx)

	created.EmployeeName = &emp.FullName
	return attendance.ToResponse(created), nil
}

// List implements attendance.AttendanceService. Results are served through
// the cache facade; equivalent filter combinations share an entry.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.ListAttendanceFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	key := cache.Key(attendanceCachePrefix+"list", filter.CacheParams())

	return cache.GetOrCompute(ctx, s.cache, key, listCacheTTL, func(ctx context.Context) ([]attendance.AttendanceResponse, error) {
		ctx, cancel := context.WithTimeout(ctx, storeTimeout)
		defer cancel()

		records, err := s.attendanceRepo.FindMany(ctx, filter)
		if err != nil {
			return nil, err
		}

		responses := make([]attendance.AttendanceResponse, 0, len(records))
		for _, record := range records {
			responses = append(responses, attendance.ToResponse(record))
		}
		return responses, nil
	})
}

// Update implements attendance.AttendanceService. Only status and notes can
// change; the employee and date of a record are immutable.
func (s *AttendanceServiceImpl) Update(ctx context.Context, recordID string, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	updated, err := s.attendanceRepo.UpdateByID(ctx, recordID, attendance.UpdatePatch{
		Status: req.Status,
		Notes:  req.Notes,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	s.invalidateCaches(ctx)

	return attendance.ToResponse(updated), nil
}

// Delete implements attendance.AttendanceService. Deletion is not
// idempotent: a second delete of the same id returns ErrRecordNotFound.
func (s *AttendanceServiceImpl) Delete(ctx context.Context, recordID string) error {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	if err := s.attendanceRepo.DeleteByID(ctx, recordID); err != nil {
		return err
	}

	s.invalidateCaches(ctx)
	return nil
}

// DeleteAllForEmployee implements attendance.AttendanceService. Invoked by
// the employee directory when an employee is removed; the directory owns the
// decision, this component owns the cascade.
func (s *AttendanceServiceImpl) DeleteAllForEmployee(ctx context.Context, employeeID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	count, err := s.attendanceRepo.DeleteByEmployee(ctx, employeeID)
	if err != nil {
		return 0, err
	}

	s.invalidateCaches(ctx)
	return count, nil
}
