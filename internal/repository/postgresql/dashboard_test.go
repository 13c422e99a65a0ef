package postgresql

import (
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardRepository_TodayAttendanceCounts(t *testing.T) {
	t.Parallel()
	ctx, mock := newMockCtx(t)
	repo := NewDashboardRepository(nil)

	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT").
		WithArgs(day).
		WillReturnRows(pgxmock.NewRows([]string{"present", "absent"}).AddRow(int64(12), int64(3)))

	present, absent, err := repo.TodayAttendanceCounts(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, int64(12), present)
	assert.Equal(t, int64(3), absent)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardRepository_DepartmentCounts(t *testing.T) {
	t.Parallel()
	ctx, mock := newMockCtx(t)
	repo := NewDashboardRepository(nil)

	rows := pgxmock.NewRows([]string{"department", "count"}).
		AddRow("Engineering", int64(10)).
		AddRow("Sales", int64(4))
	mock.ExpectQuery("SELECT department, COUNT").WillReturnRows(rows)

	counts, err := repo.DepartmentCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"Engineering": 10, "Sales": 4}, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardRepository_EmployeeAttendanceStats(t *testing.T) {
	t.Parallel()
	ctx, mock := newMockCtx(t)
	repo := NewDashboardRepository(nil)

	rows := pgxmock.NewRows([]string{"employee_id", "full_name", "present_days", "absent_days", "total_days"}).
		AddRow("EMP-001", "Rajesh Kumar", int64(18), int64(2), int64(20)).
		AddRow("EMP-003", "Priya Sharma", int64(5), int64(0), int64(6))
	mock.ExpectQuery("SELECT").WillReturnRows(rows)

	stats, err := repo.EmployeeAttendanceStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "EMP-001", stats[0].EmployeeID)
	assert.Equal(t, int64(20), stats[0].TotalDays)
	assert.Equal(t, int64(6), stats[1].TotalDays)
	assert.NoError(t, mock.ExpectationsWereMet())
}
