package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/sutra-hrms/hrms-backend-go/internal/domain/dashboard"
	"github.com/sutra-hrms/hrms-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// CountEmployees implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountEmployees(ctx context.Context) (int64, error) {
	q := database.QuerierFromContext(ctx, r.db)

	var total int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", database.MapError(err))
	}
	return total, nil
}

// TodayAttendanceCounts implements dashboard.DashboardRepository. Present and
// Absent are counted in a single pass; Half Day and Leave rows match neither
// branch and contribute to neither count.
func (r *dashboardRepositoryImpl) TodayAttendanceCounts(ctx context.Context, day time.Time) (int64, int64, error) {
	q := database.QuerierFromContext(ctx, r.db)

	query := `
		SELECT
			COALESCE(SUM(CASE WHEN status = 'Present' THEN 1 ELSE 0 END), 0) as present,
			COALESCE(SUM(CASE WHEN status = 'Absent' THEN 1 ELSE 0 END), 0) as absent
		FROM attendance
		WHERE date = $1
	`

	var present, absent int64
	err := q.QueryRow(ctx, query, day).Scan(&present, &absent)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count today's attendance: %w", database.MapError(err))
	}
	return present, absent, nil
}

// DepartmentCounts implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) DepartmentCounts(ctx context.Context) (map[string]int64, error) {
	q := database.QuerierFromContext(ctx, r.db)

	query := `
		SELECT department, COUNT(*) as count
		FROM employees
		GROUP BY department
		ORDER BY count DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count departments: %w", database.MapError(err))
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var department string
		var count int64
		if err := rows.Scan(&department, &count); err != nil {
			return nil, fmt.Errorf("failed to scan department count: %w", err)
		}
		counts[department] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read department counts: %w", database.MapError(err))
	}

	return counts, nil
}

// EmployeeAttendanceStats implements dashboard.DashboardRepository. Employees
// with zero recorded days are excluded by the INNER JOIN.
func (r *dashboardRepositoryImpl) EmployeeAttendanceStats(ctx context.Context) ([]dashboard.EmployeeAttendanceStats, error) {
	q := database.QuerierFromContext(ctx, r.db)

	query := `
		SELECT
			e.employee_id,
			e.full_name,
			COALESCE(SUM(CASE WHEN a.status = 'Present' THEN 1 ELSE 0 END), 0) as present_days,
			COALESCE(SUM(CASE WHEN a.status = 'Absent' THEN 1 ELSE 0 END), 0) as absent_days,
			COUNT(a.id) as total_days
		FROM employees e
		JOIN attendance a ON a.employee_id = e.employee_id
		GROUP BY e.employee_id, e.full_name
		ORDER BY e.employee_id ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate attendance stats: %w", database.MapError(err))
	}
	defer rows.Close()

	var stats []dashboard.EmployeeAttendanceStats
	for rows.Next() {
		var s dashboard.EmployeeAttendanceStats
		if err := rows.Scan(&s.EmployeeID, &s.FullName, &s.PresentDays, &s.AbsentDays, &s.TotalDays); err != nil {
			return nil, fmt.Errorf("failed to scan attendance stats: %w", err)
		}
		stats = append(stats, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance stats: %w", database.MapError(err))
	}

	return stats, nil
}
