package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sutra-hrms/hrms-backend-go/internal/domain/dashboard"
	"github.com/sutra-hrms/hrms-backend-go/internal/pkg/cache"
)

type fakeDashboardRepo struct {
	totalEmployees   int64
	presentToday     int64
	absentToday      int64
	departmentCounts map[string]int64
	stats            []dashboard.EmployeeAttendanceStats

	err   error
	calls int
}

func (r *fakeDashboardRepo) CountEmployees(context.Context) (int64, error) {
	r.calls++
	return r.totalEmployees, r.err
}

func (r *fakeDashboardRepo) TodayAttendanceCounts(context.Context, time.Time) (int64, int64, error) {
	return r.presentToday, r.absentToday, r.err
}

func (r *fakeDashboardRepo) DepartmentCounts(context.Context) (map[string]int64, error) {
	return r.departmentCounts, r.err
}

func (r *fakeDashboardRepo) EmployeeAttendanceStats(context.Context) ([]dashboard.EmployeeAttendanceStats, error) {
	r.calls++
	return r.stats, r.err
}

type brokenStore struct{}

func (brokenStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("connection refused")
}

func (brokenStore) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("connection refused")
}

func (brokenStore) DeleteByPrefix(context.Context, string) error {
	return errors.New("connection refused")
}

func TestDashboardService_GetSummary(t *testing.T) {
	t.Parallel()
	repo := &fakeDashboardRepo{
		totalEmployees:   25,
		presentToday:     18,
		absentToday:      4,
		departmentCounts: map[string]int64{"Engineering": 12, "Sales": 8, "Finance": 5},
	}
	svc := NewDashboardService(repo, cache.NewFacade(cache.NewMemoryStore()))

	summary, err := svc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(25), summary.TotalEmployees)
	assert.Equal(t, int64(18), summary.PresentToday)
	assert.Equal(t, int64(4), summary.AbsentToday)
	assert.Equal(t, int64(12), summary.DepartmentCounts["Engineering"])
}

func TestDashboardService_GetSummary_Cached(t *testing.T) {
	t.Parallel()
	repo := &fakeDashboardRepo{totalEmployees: 10}
	svc := NewDashboardService(repo, cache.NewFacade(cache.NewMemoryStore()))
	ctx := context.Background()

	_, err := svc.GetSummary(ctx)
	require.NoError(t, err)

	repo.totalEmployees = 99
	summary, err := svc.GetSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(10), summary.TotalEmployees)
	assert.Equal(t, 1, repo.calls)
}

func TestDashboardService_GetSummary_RepoError(t *testing.T) {
	t.Parallel()
	repo := &fakeDashboardRepo{err: errors.New("boom")}
	svc := NewDashboardService(repo, cache.NewFacade(cache.NewMemoryStore()))

	_, err := svc.GetSummary(context.Background())
	assert.Error(t, err)
}

func TestDashboardService_GetSummary_CacheFailOpen(t *testing.T) {
	t.Parallel()
	repo := &fakeDashboardRepo{totalEmployees: 7}
	svc := NewDashboardService(repo, cache.NewFacade(brokenStore{}))

	summary, err := svc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), summary.TotalEmployees)
}

func TestDashboardService_GetAttendanceSummary(t *testing.T) {
	t.Parallel()
	repo := &fakeDashboardRepo{
		stats: []dashboard.EmployeeAttendanceStats{
			{EmployeeID: "EMP-001", FullName: "Rajesh Kumar", PresentDays: 15, AbsentDays: 5, TotalDays: 20},
			{EmployeeID: "EMP-002", FullName: "Priya Sharma", PresentDays: 1, AbsentDays: 0, TotalDays: 3},
		},
	}
	svc := NewDashboardService(repo, cache.NewFacade(cache.NewMemoryStore()))

	summaries, err := svc.GetAttendanceSummary(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, "EMP-001", summaries[0].EmployeeID)
	assert.Equal(t, 75.0, summaries[0].AttendancePercentage)

	// 1/3 rounds to one decimal place.
	assert.Equal(t, 33.3, summaries[1].AttendancePercentage)
}

func TestDashboardService_GetAttendanceSummary_Empty(t *testing.T) {
	t.Parallel()
	repo := &fakeDashboardRepo{}
	svc := NewDashboardService(repo, cache.NewFacade(cache.NewMemoryStore()))

	summaries, err := svc.GetAttendanceSummary(context.Background())
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestAttendancePercentage(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0.0, attendancePercentage(0, 0))
	assert.Equal(t, 100.0, attendancePercentage(5, 5))
	assert.Equal(t, 75.0, attendancePercentage(15, 20))
	assert.Equal(t, 66.7, attendancePercentage(2, 3))
	assert.Equal(t, 0.0, attendancePercentage(0, 10))
}
