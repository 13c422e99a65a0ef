package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sutra-hrms/hrms-backend-go/internal/domain/attendance"
	"github.com/sutra-hrms/hrms-backend-go/internal/domain/employee"
	"github.com/sutra-hrms/hrms-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Insert implements attendance.AttendanceRepository. The attendance table
// carries a unique index on (employee_id, date); a violation surfaces as
// ErrAlreadyMarked so concurrent duplicate marks resolve to exactly one
// success without application-level locking.
func (a *attendanceRepository) Insert(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := database.QuerierFromContext(ctx, a.db)

	att.ID = uuid.New().String()

	query := `
		INSERT INTO attendance (id, employee_id, date, status, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		att.ID,
		att.EmployeeID,
		att.Date,
		att.Status,
		att.Notes,
	).Scan(&att.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return attendance.Attendance{}, attendance.ErrAlreadyMarked
			case "23503":
				// Employee row vanished between the service's lookup and
				// this insert.
				return attendance.Attendance{}, employee.ErrEmployeeNotFound
			}
		}
		return attendance.Attendance{}, fmt.Errorf("failed to insert attendance: %w", database.MapError(err))
	}

	return att, nil
}

// FindMany implements attendance.AttendanceRepository.
func (a *attendanceRepository) FindMany(ctx context.Context, filter attendance.ListAttendanceFilter) ([]attendance.Attendance, error) {
	q := database.QuerierFromContext(ctx, a.db)

	var sb strings.Builder
	sb.WriteString(`
		SELECT a.id, a.employee_id, a.date, a.status, a.notes, a.created_at, e.full_name
		FROM attendance a
		LEFT JOIN employees e ON e.employee_id = a.employee_id
	`)

	var conditions []string
	var args []interface{}

	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("a.employee_id = $%d", len(args)))
	}
	if filter.ParsedDate != nil {
		args = append(args, *filter.ParsedDate)
		conditions = append(conditions, fmt.Sprintf("a.date = $%d", len(args)))
	}
	if filter.ParsedStart != nil {
		args = append(args, *filter.ParsedStart)
		conditions = append(conditions, fmt.Sprintf("a.date >= $%d", len(args)))
	}
	if filter.ParsedEnd != nil {
		args = append(args, *filter.ParsedEnd)
		conditions = append(conditions, fmt.Sprintf("a.date <= $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("a.status = $%d", len(args)))
	}

	if len(conditions) > 0 {
		sb.WriteString("WHERE " + strings.Join(conditions, " AND "))
	}
	sb.WriteString(" ORDER BY a.date DESC, a.employee_id ASC")

	rows, err := q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", database.MapError(err))
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.Status, &att.Notes,
			&att.CreatedAt, &att.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		records = append(records, att)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance rows: %w", database.MapError(err))
	}

	return records, nil
}

// UpdateByID implements attendance.AttendanceRepository. Only status and
// notes are mutable; employee_id and date are fixed at creation.
func (a *attendanceRepository) UpdateByID(ctx context.Context, id string, patch attendance.UpdatePatch) (attendance.Attendance, error) {
	q := database.QuerierFromContext(ctx, a.db)

	var sets []string
	var args []interface{}

	if patch.Status != nil {
		args = append(args, *patch.Status)
		sets = append(sets, fmt.Sprintf("status = $%d", len(args)))
	}
	if patch.Notes != nil {
		args = append(args, *patch.Notes)
		sets = append(sets, fmt.Sprintf("notes = $%d", len(args)))
	}

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE attendance
		SET %s
		WHERE id = $%d
		RETURNING id, employee_id, date, status, notes, created_at
	`, strings.Join(sets, ", "), len(args))

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, args...).Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.Status, &att.Notes, &att.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrRecordNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to update attendance: %w", database.MapError(err))
	}

	return att, nil
}

// DeleteByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) DeleteByID(ctx context.Context, id string) error {
	q := database.QuerierFromContext(ctx, a.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", database.MapError(err))
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

// DeleteByEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepository) DeleteByEmployee(ctx context.Context, employeeID string) (int64, error) {
	q := database.QuerierFromContext(ctx, a.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance WHERE employee_id = $1`, employeeID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete attendance for employee: %w", database.MapError(err))
	}

	return tag.RowsAffected(), nil
}
