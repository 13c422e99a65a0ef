package dashboard

import (
	"context"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sutra-hrms/hrms-backend-go/internal/domain/attendance"
	"github.com/sutra-hrms/hrms-backend-go/internal/domain/dashboard"
	"github.com/sutra-hrms/hrms-backend-go/internal/pkg/cache"
)

const (
	storeTimeout = 5 * time.Second

	summaryCacheTTL = 30 * time.Second

	summaryCacheKey           = "dashboard:summary"
	attendanceSummaryCacheKey = "dashboard:attendance_summary"
)

type DashboardServiceImpl struct {
	repo  dashboard.DashboardRepository
	cache *cache.Facade
}

func NewDashboardService(repo dashboard.DashboardRepository, cacheFacade *cache.Facade) dashboard.DashboardService {
	return &DashboardServiceImpl{
		repo:  repo,
		cache: cacheFacade,
	}
}

// GetSummary returns the company-wide snapshot. The three aggregates are
// independent queries and run in parallel.
func (s *DashboardServiceImpl) GetSummary(ctx context.Context) (dashboard.DashboardSummary, error) {
	return cache.GetOrCompute(ctx, s.cache, summaryCacheKey, summaryCacheTTL, func(ctx context.Context) (dashboard.DashboardSummary, error) {
		ctx, cancel := context.WithTimeout(ctx, storeTimeout)
		defer cancel()

		var summary dashboard.DashboardSummary
		today := attendance.Day(time.Now())

		g, gCtx := errgroup.WithContext(ctx)

		g.Go(func() error {
			total, err := s.repo.CountEmployees(gCtx)
			if err != nil {
				return err
			}
			summary.TotalEmployees = total
			return nil
		})

		g.Go(func() error {
			present, absent, err := s.repo.TodayAttendanceCounts(gCtx, today)
			if err != nil {
				return err
			}
			summary.PresentToday = present
			summary.AbsentToday = absent
			return nil
		})

		g.Go(func() error {
			counts, err := s.repo.DepartmentCounts(gCtx)
			if err != nil {
				return err
			}
			summary.DepartmentCounts = counts
			return nil
		})

		if err := g.Wait(); err != nil {
			return dashboard.DashboardSummary{}, err
		}

		return summary, nil
	})
}

// GetAttendanceSummary returns per-employee aggregates ordered by employee
// id. Employees with no recorded days are omitted rather than reported at
// zero percent.
func (s *DashboardServiceImpl) GetAttendanceSummary(ctx context.Context) ([]dashboard.EmployeeAttendanceSummary, error) {
	return cache.GetOrCompute(ctx, s.cache, attendanceSummaryCacheKey, summaryCacheTTL, func(ctx context.Context) ([]dashboard.EmployeeAttendanceSummary, error) {
		ctx, cancel := context.WithTimeout(ctx, storeTimeout)
		defer cancel()

		stats, err := s.repo.EmployeeAttendanceStats(ctx)
		if err != nil {
			return nil, err
		}

		summaries := make([]dashboard.EmployeeAttendanceSummary, 0, len(stats))
		for _, stat := range stats {
			summaries = append(summaries, dashboard.EmployeeAttendanceSummary{
				EmployeeID:           stat.EmployeeID,
				FullName:             stat.FullName,
				PresentDays:          stat.PresentDays,
				AbsentDays:           stat.AbsentDays,
				TotalDays:            stat.TotalDays,
				AttendancePercentage: attendancePercentage(stat.PresentDays, stat.TotalDays),
			})
		}

		return summaries, nil
	})
}

// attendancePercentage is present days over all recorded days, rounded to
// one decimal place.
func attendancePercentage(present, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(present)/float64(total)*1000) / 10
}
