package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/stitchline/garment-erp-go/internal/domain/piecework"
	"github.com/stitchline/garment-erp-go/internal/pkg/database"
)

type workerSalaryRepository struct {
	db *database.DB
}

func NewWorkerSalaryRepository(db *database.DB) piecework.WorkerSalaryRepository {
	return &workerSalaryRepository{db: db}
}

const workerSalaryJoinedColumns = `
	ws.id, ws.worker_id, ws.operation_id, ws.product_id, ws.date, ws.pieces_done,
	ws.amount_per_piece, ws.total_amount, ws.paid, ws.paid_date,
	ws.created_at, ws.updated_at,
	w.full_name, o.name, p.name`

func scanWorkerSalaryJoined(row pgx.Row) (piecework.WorkerSalary, error) {
	var ws piecework.WorkerSalary
	err := row.Scan(
		&ws.ID, &ws.WorkerID, &ws.OperationID, &ws.ProductID, &ws.Date, &ws.PiecesDone,
		&ws.AmountPerPiece, &ws.TotalAmount, &ws.Paid, &ws.PaidDate,
		&ws.CreatedAt, &ws.UpdatedAt,
		&ws.WorkerName, &ws.OperationName, &ws.ProductName,
	)
	return ws, err
}

const workerSalaryJoins = `
	FROM worker_salaries ws
	JOIN workers w ON w.id = ws.worker_id
	JOIN operations o ON o.id = ws.operation_id
	JOIN products p ON p.id = ws.product_id`

// Create implements piecework.WorkerSalaryRepository.
func (r *workerSalaryRepository) Create(ctx context.Context, ws piecework.WorkerSalary) (piecework.WorkerSalary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO worker_salaries (worker_id, operation_id, product_id, date, pieces_done, amount_per_piece, total_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		ws.WorkerID, ws.OperationID, ws.ProductID, ws.Date, ws.PiecesDone,
		ws.AmountPerPiece, ws.TotalAmount,
	).Scan(&ws.ID, &ws.CreatedAt, &ws.UpdatedAt)
	if err != nil {
		return piecework.WorkerSalary{}, fmt.Errorf("failed to create worker salary record: %w", err)
	}

	return ws, nil
}

// GetByID implements piecework.WorkerSalaryRepository.
func (r *workerSalaryRepository) GetByID(ctx context.Context, id string) (piecework.WorkerSalary, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workerSalaryJoinedColumns + workerSalaryJoins + ` WHERE ws.id = $1`

	ws, err := scanWorkerSalaryJoined(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return piecework.WorkerSalary{}, piecework.ErrWorkerSalaryNotFound
		}
		return piecework.WorkerSalary{}, fmt.Errorf("failed to get worker salary by ID: %w", err)
	}

	return ws, nil
}

// List implements piecework.WorkerSalaryRepository.
func (r *workerSalaryRepository) List(ctx context.Context, filter piecework.WorkerSalaryFilter) ([]piecework.WorkerSalary, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.WorkerID != nil && *filter.WorkerID != "" {
		baseWhere += fmt.Sprintf(" AND ws.worker_id = $%d", argIdx)
		args = append(args, *filter.WorkerID)
		argIdx++
	}
	if filter.OperationID != nil && *filter.OperationID != "" {
		baseWhere += fmt.Sprintf(" AND ws.operation_id = $%d", argIdx)
		args = append(args, *filter.OperationID)
		argIdx++
	}
	if filter.ProductID != nil && *filter.ProductID != "" {
		baseWhere += fmt.Sprintf(" AND ws.product_id = $%d", argIdx)
		args = append(args, *filter.ProductID)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND ws.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND ws.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Paid != nil {
		baseWhere += fmt.Sprintf(" AND ws.paid = $%d", argIdx)
		args = append(args, *filter.Paid)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM worker_salaries ws WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count worker salaries: %w", err)
	}

	sortOrder := "DESC"
	if strings.ToLower(filter.SortOrder) == "asc" {
		sortOrder = "ASC"
	}

	selectQuery := fmt.Sprintf(`
		SELECT %s %s
		WHERE %s
		ORDER BY ws.date %s, ws.created_at %s
		LIMIT $%d OFFSET $%d
	`, workerSalaryJoinedColumns, workerSalaryJoins, baseWhere, sortOrder, sortOrder, argIdx, argIdx+1)

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
		return nil, 0, fmt.Errorf("failed to query worker salaries: %w", err)
	}
	defer rows.Close()

	var records []piecework.WorkerSalary
	for rows.Next() {
		ws, err := scanWorkerSalaryJoined(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan worker salary: %w", err)
		}
		records = append(records, ws)
	}

	return records, total, nil
}

// ListRange implements piecework.WorkerSalaryRepository.
func (r *workerSalaryRepository) ListRange(ctx context.Context, from, to time.Time) ([]piecework.WorkerSalary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + workerSalaryJoinedColumns + workerSalaryJoins + `
		WHERE ws.date >= $1 AND ws.date <= $2
		ORDER BY ws.date ASC, ws.created_at ASC
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query worker salaries by range: %w", err)
	}
	defer rows.Close()

	var records []piecework.WorkerSalary
	for rows.Next() {
		ws, err := scanWorkerSalaryJoined(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan worker salary: %w", err)
		}
		records = append(records, ws)
	}

	return records, nil
}

// MarkPaid implements piecework.WorkerSalaryRepository.
func (r *workerSalaryRepository) MarkPaid(ctx context.Context, ids []string, paidDate time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE worker_salaries
		SET paid = TRUE, paid_date = $1, updated_at = NOW()
		WHERE id = ANY($2) AND paid = FALSE
	`

	commandTag, err := q.Exec(ctx, query, paidDate, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to mark worker salaries paid: %w", err)
	}

	return commandTag.RowsAffected(), nil
}

// Delete implements piecework.WorkerSalaryRepository.
func (r *workerSalaryRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM worker_salaries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete worker salary: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return piecework.ErrWorkerSalaryNotFound
	}

	return nil
}
