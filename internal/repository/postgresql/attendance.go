package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/stitchline/garment-erp-go/internal/domain/attendance"
	"github.com/stitchline/garment-erp-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// UpsertDay implements attendance.AttendanceRepository.
// Re-marking an already recorded (person_type, person_id, date) overwrites
// the status; the latest write wins.
func (r *attendanceRepository) UpsertDay(ctx context.Context, records []attendance.Record) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	q := GetQuerier(ctx, r.db)

	valueRows := make([]string, 0, len(records))
	args := make([]interface{}, 0, len(records)*4)
	argIdx := 1
	for _, rec := range records {
		valueRows = append(valueRows, fmt.Sprintf("($%d, $%d, $%d, $%d)", argIdx, argIdx+1, argIdx+2, argIdx+3))
		args = append(args, rec.PersonType, rec.PersonID, rec.Date, rec.Status)
		argIdx += 4
	}

	query := `
		INSERT INTO attendance_records (person_type, person_id, date, status)
		VALUES ` + strings.Join(valueRows, ", ") + `
		ON CONFLICT (person_type, person_id, date)
		DO UPDATE SET status = EXCLUDED.status, updated_at = NOW()
	`

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert attendance records: %w", err)
	}

	return int(commandTag.RowsAffected()), nil
}

// CountByStatus implements attendance.AttendanceRepository.
func (r *attendanceRepository) CountByStatus(ctx context.Context, personType attendance.PersonType, personID string, from, to time.Time) (attendance.StatusCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'present'),
			COUNT(*) FILTER (WHERE status = 'absent'),
			COUNT(*) FILTER (WHERE status = 'leave')
		FROM attendance_records
		WHERE person_type = $1 AND person_id = $2 AND date >= $3 AND date <= $4
	`

	var counts attendance.StatusCounts
	err := q.QueryRow(ctx, query, personType, personID, from, to).
		Scan(&counts.Present, &counts.Absent, &counts.Leave)
	if err != nil {
		return attendance.StatusCounts{}, fmt.Errorf("failed to count attendance by status: %w", err)
	}

	return counts, nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.RecordFilter) ([]attendance.Record, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.PersonType != nil && *filter.PersonType != "" {
		baseWhere += fmt.Sprintf(" AND ar.person_type = $%d", argIdx)
		args = append(args, *filter.PersonType)
		argIdx++
	}
	if filter.PersonID != nil && *filter.PersonID != "" {
		baseWhere += fmt.Sprintf(" AND ar.person_id = $%d", argIdx)
		args = append(args, *filter.PersonID)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND ar.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND ar.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND ar.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM attendance_records ar WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	sortOrder := "DESC"
	if strings.ToLower(filter.SortOrder) == "asc" {
		sortOrder = "ASC"
	}

	selectQuery := fmt.Sprintf(`
		SELECT
			ar.id, ar.person_type, ar.person_id, ar.date, ar.status,
			ar.created_at, ar.updated_at,
			COALESCE(e.full_name, w.full_name)
		FROM attendance_records ar
		LEFT JOIN employees e ON ar.person_type = 'employee' AND e.id = ar.person_id
		LEFT JOIN workers w ON ar.person_type = 'worker' AND w.id = ar.person_id
		WHERE %s
		ORDER BY ar.date %s, ar.created_at %s
		LIMIT $%d OFFSET $%d
	`, baseWhere, sortOrder, sortOrder, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 50
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.PersonType, &rec.PersonID, &rec.Date, &rec.Status,
			&rec.CreatedAt, &rec.UpdatedAt, &rec.PersonName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, total, nil
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}
