package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/pdks-app/pdks-backend-go/internal/domain/report"
	"github.com/pdks-app/pdks-backend-go/internal/pkg/database"
)

type ReportRepository interface {
	GetDailyAttendance(ctx context.Context, p report.Params) ([]report.DailyAttendanceRow, error)
	GetEmployeeHours(ctx context.Context, p report.Params) ([]report.EmployeeHoursRow, error)
	GetDepartmentHours(ctx context.Context, p report.Params) ([]report.DepartmentHoursRow, error)
	GetPresence(ctx context.Context, p report.Params) ([]report.PresenceRow, error)
	GetLeaveSummary(ctx context.Context, p report.Params) ([]report.LeaveSummaryRow, error)
	GetRoster(ctx context.Context, p report.Params) ([]report.RosterRow, error)
}

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) ReportRepository {
	return &reportRepositoryImpl{db: db}
}

// validWorkInterval excludes records that cannot contribute a duration:
// open sessions and legacy rows stored with zeroed times.
const validWorkInterval = `
	a.checkin IS NOT NULL
	AND a.checkout IS NOT NULL
	AND a.checkin <> '00:00:00'::time
	AND a.checkout <> '00:00:00'::time`

// GetDailyAttendance retrieves raw check-in/check-out records within a date
// range, ordered by date then name.
func (r *reportRepositoryImpl) GetDailyAttendance(ctx context.Context, p report.Params) ([]report.DailyAttendanceRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			a.per_id,
			p.first_name || ' ' || p.last_name AS full_name,
			p.department,
			a.date,
			to_char(a.checkin, 'HH24:MI:SS') AS checkin,
			to_char(a.checkout, 'HH24:MI:SS') AS checkout
		FROM attendance a
		JOIN personnel p ON p.id = a.per_id
		WHERE a.date BETWEEN $1::date AND $2::date`
	args := []interface{}{p.DateFrom, p.DateTo}

	if p.Department != "" {
		args = append(args, p.Department)
		query += fmt.Sprintf(" AND p.department = $%d", len(args))
	}
	if p.PerID != "" {
		args = append(args, p.PerID)
		query += fmt.Sprintf(" AND a.per_id = $%d::bigint", len(args))
	}
	query += " ORDER BY a.date ASC, full_name ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily attendance: %w", err)
	}
	defer rows.Close()

	var result []report.DailyAttendanceRow
	for rows.Next() {
		var row report.DailyAttendanceRow
		var date time.Time

		err := rows.Scan(&row.PerID, &row.FullName, &row.Department, &date, &row.CheckIn, &row.CheckOut)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily attendance row: %w", err)
		}

		row.Date = date.Format("2006-01-02")
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return result, nil
}

// GetEmployeeHours sums worked duration per person over a date range,
// rounded to two decimals and sorted descending by hours.
func (r *reportRepositoryImpl) GetEmployeeHours(ctx context.Context, p report.Params) ([]report.EmployeeHoursRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			p.id AS per_id,
			p.first_name || ' ' || p.last_name AS full_name,
			p.department,
			ROUND(SUM(EXTRACT(EPOCH FROM (a.checkout - a.checkin)) / 60) / 60, 2) AS total_hours
		FROM attendance a
		JOIN personnel p ON p.id = a.per_id
		WHERE a.date BETWEEN $1::date AND $2::date
			AND ` + validWorkInterval
	args := []interface{}{p.DateFrom, p.DateTo}

	if p.Department != "" {
		args = append(args, p.Department)
		query += fmt.Sprintf(" AND p.department = $%d", len(args))
	}
	if p.PerID != "" {
		args = append(args, p.PerID)
		query += fmt.Sprintf(" AND a.per_id = $%d::bigint", len(args))
	}
	query += `
		GROUP BY p.id, full_name, p.department
		ORDER BY total_hours DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query employee hours: %w", err)
	}
	defer rows.Close()

	var result []report.EmployeeHoursRow
	for rows.Next() {
		var row report.EmployeeHoursRow
		if err := rows.Scan(&row.PerID, &row.FullName, &row.Department, &row.TotalHours); err != nil {
			return nil, fmt.Errorf("failed to scan employee hours row: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return result, nil
}

// GetDepartmentHours sums worked duration per department over a date range.
// The sum is unweighted across persons, matching the admin dashboard's
// department totals.
func (r *reportRepositoryImpl) GetDepartmentHours(ctx context.Context, p report.Params) ([]report.DepartmentHoursRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			p.department,
			ROUND(SUM(EXTRACT(EPOCH FROM (a.checkout - a.checkin)) / 60) / 60, 2) AS total_hours
		FROM attendance a
		JOIN personnel p ON p.id = a.per_id
		WHERE a.date BETWEEN $1::date AND $2::date
			AND ` + validWorkInterval
	args := []interface{}{p.DateFrom, p.DateTo}

	if p.Department != "" {
		args = append(args, p.Department)
		query += fmt.Sprintf(" AND p.department = $%d", len(args))
	}
	query += `
		GROUP BY p.department
		ORDER BY total_hours DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query department hours: %w", err)
	}
	defer rows.Close()

	var result []report.DepartmentHoursRow
	for rows.Next() {
		var row report.DepartmentHoursRow
		if err := rows.Scan(&row.Department, &row.TotalHours); err != nil {
			return nil, fmt.Errorf("failed to scan department hours row: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return result, nil
}

// GetPresence marks every person Present or Absent for a single date based
// on whether any attendance record exists for them on that date.
func (r *reportRepositoryImpl) GetPresence(ctx context.Context, p report.Params) ([]report.PresenceRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			p.id AS per_id,
			p.first_name || ' ' || p.last_name AS full_name,
			p.department,
			CASE WHEN a.per_id IS NULL THEN 'Absent' ELSE 'Present' END AS status
		FROM personnel p
		LEFT JOIN (
			SELECT DISTINCT per_id FROM attendance WHERE date = $1::date
		) a ON a.per_id = p.id`
	args := []interface{}{p.Date}

	if p.Department != "" {
		args = append(args, p.Department)
		query += fmt.Sprintf(" WHERE p.department = $%d", len(args))
	}
	query += " ORDER BY full_name ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query presence: %w", err)
	}
	defer rows.Close()

	var result []report.PresenceRow
	for rows.Next() {
		var row report.PresenceRow
		if err := rows.Scan(&row.PerID, &row.FullName, &row.Department, &row.Status); err != nil {
			return nil, fmt.Errorf("failed to scan presence row: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return result, nil
}

// GetLeaveSummary retrieves leave requests whose [start_date, end_date]
// interval overlaps the requested range.
func (r *reportRepositoryImpl) GetLeaveSummary(ctx context.Context, p report.Params) ([]report.LeaveSummaryRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			l.id,
			l.per_id,
			p.first_name || ' ' || p.last_name AS full_name,
			p.department,
			l.leave_type,
			l.status,
			l.start_date,
			l.end_date,
			COALESCE(l.other_reason, '') AS other_reason,
			l.created_at
		FROM leave_requests l
		JOIN personnel p ON p.id = l.per_id
		WHERE l.start_date <= $2::date AND l.end_date >= $1::date`
	args := []interface{}{p.DateFrom, p.DateTo}

	if p.LeaveStatus != "" {
		args = append(args, p.LeaveStatus)
		query += fmt.Sprintf(" AND l.status = $%d", len(args))
	}
	if p.LeaveType != "" {
		args = append(args, p.LeaveType)
		query += fmt.Sprintf(" AND l.leave_type = $%d", len(args))
	}
	if p.Department != "" {
		args = append(args, p.Department)
		query += fmt.Sprintf(" AND p.department = $%d", len(args))
	}
	if p.PerID != "" {
		args = append(args, p.PerID)
		query += fmt.Sprintf(" AND l.per_id = $%d::bigint", len(args))
	}
	query += " ORDER BY l.start_date ASC, l.id ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave summary: %w", err)
	}
	defer rows.Close()

	var result []report.LeaveSummaryRow
	for rows.Next() {
		var row report.LeaveSummaryRow
		var startDate, endDate, createdAt time.Time

		err := rows.Scan(
			&row.ID,
			&row.PerID,
			&row.FullName,
			&row.Department,
			&row.LeaveType,
			&row.Status,
			&startDate,
			&endDate,
			&row.OtherReason,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave summary row: %w", err)
		}

		row.StartDate = startDate.Format("2006-01-02")
		row.EndDate = endDate.Format("2006-01-02")
		row.SubmittedAt = createdAt.Format("2006-01-02")
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return result, nil
}

// GetRoster retrieves the personnel listing, optionally filtered by
// department.
func (r *reportRepositoryImpl) GetRoster(ctx context.Context, p report.Params) ([]report.RosterRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.first_name, p.last_name, p.department, p.role, p.status
		FROM personnel p`
	var args []interface{}

	if p.Department != "" {
		args = append(args, p.Department)
		query += fmt.Sprintf(" WHERE p.department = $%d", len(args))
	}
	query += " ORDER BY p.first_name ASC, p.last_name ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query roster: %w", err)
	}
	defer rows.Close()

	var result []report.RosterRow
	for rows.Next() {
		var row report.RosterRow
		if err := rows.Scan(&row.ID, &row.FirstName, &row.LastName, &row.Department, &row.Role, &row.Status); err != nil {
			return nil, fmt.Errorf("failed to scan roster row: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return result, nil
}
