package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/stitchline/garment-erp-go/internal/domain/worker"
	"github.com/stitchline/garment-erp-go/internal/pkg/database"
)

type workerRepository struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) worker.WorkerRepository {
	return &workerRepository{db: db}
}

const workerColumns = `id, full_name, code, phone, is_active, photo_url, joined_at, created_at, updated_at`

func scanWorker(row pgx.Row) (worker.Worker, error) {
	var w worker.Worker
	err := row.Scan(
		&w.ID, &w.FullName, &w.Code, &w.Phone, &w.IsActive,
		&w.PhotoURL, &w.JoinedAt, &w.CreatedAt, &w.UpdatedAt,
	)
	return w, err
}

// Create implements worker.WorkerRepository.
func (r *workerRepository) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO workers (full_name, code, phone, is_active, photo_url, joined_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		w.FullName, w.Code, w.Phone, w.IsActive, w.PhotoURL, w.JoinedAt,
	).Scan(&w.ID, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return worker.Worker{}, worker.ErrWorkerCodeExists
		}
		return worker.Worker{}, fmt.Errorf("failed to create worker: %w", err)
	}

	return w, nil
}

// GetByID implements worker.WorkerRepository.
func (r *workerRepository) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workerColumns + ` FROM workers WHERE id = $1`

	w, err := scanWorker(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to get worker by ID: %w", err)
	}

	return w, nil
}

// GetActive implements worker.WorkerRepository.
func (r *workerRepository) GetActive(ctx context.Context) ([]worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workerColumns + ` FROM workers WHERE is_active = TRUE ORDER BY full_name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query active workers: %w", err)
	}
	defer rows.Close()

	var workers []worker.Worker
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}

	return workers, nil
}

// List implements worker.WorkerRepository.
func (r *workerRepository) List(ctx context.Context, filter worker.WorkerFilter) ([]worker.Worker, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.Search != nil && *filter.Search != "" {
		baseWhere += fmt.Sprintf(" AND (full_name ILIKE $%d OR code ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}
	if filter.IsActive != nil {
		baseWhere += fmt.Sprintf(" AND is_active = $%d", argIdx)
		args = append(args, *filter.IsActive)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM workers WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count workers: %w", err)
	}

	orderByField := "full_name"
	switch filter.SortBy {
	case "code":
		orderByField = "code"
	case "joined_at":
		orderByField = "joined_at"
	}
	sortOrder := "ASC"
	if strings.ToLower(filter.SortOrder) == "desc" {
		sortOrder = "DESC"
	}

	selectQuery := fmt.Sprintf(`
		SELECT %s FROM workers
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, workerColumns, baseWhere, orderByField, sortOrder, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query workers: %w", err)
	}
	defer rows.Close()

	var workers []worker.Worker
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}

	return workers, total, nil
}

// Update implements worker.WorkerRepository.
func (r *workerRepository) Update(ctx context.Context, w worker.Worker) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE workers
		SET full_name = $1, phone = $2, photo_url = $3, joined_at = $4, updated_at = $5
		WHERE id = $6
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		w.FullName, w.Phone, w.PhotoURL, w.JoinedAt, time.Now(), w.ID,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return worker.ErrWorkerNotFound
		}
		return fmt.Errorf("failed to update worker: %w", err)
	}

	return nil
}

// SetActive implements worker.WorkerRepository.
func (r *workerRepository) SetActive(ctx context.Context, id string, active bool) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE workers SET is_active = $1, updated_at = $2 WHERE id = $3`

	commandTag, err := q.Exec(ctx, query, active, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to set worker active flag: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}

	return nil
}
