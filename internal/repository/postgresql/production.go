package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/stitchline/garment-erp-go/internal/domain/production"
	"github.com/stitchline/garment-erp-go/internal/pkg/database"
)

type productionRepository struct {
	db *database.DB
}

func NewProductionRepository(db *database.DB) production.ProductionRepository {
	return &productionRepository{db: db}
}

const productionJoinedColumns = `
	pr.id, pr.product_id, pr.order_no, pr.total_quantity, pr.status,
	pr.start_date, pr.due_date, pr.created_at, pr.updated_at, p.name`

func scanProductionJoined(row pgx.Row) (production.Production, error) {
	var pr production.Production
	err := row.Scan(
		&pr.ID, &pr.ProductID, &pr.OrderNo, &pr.TotalQuantity, &pr.Status,
		&pr.StartDate, &pr.DueDate, &pr.CreatedAt, &pr.UpdatedAt, &pr.ProductName,
	)
	return pr, err
}

// Create implements production.ProductionRepository.
func (r *productionRepository) Create(ctx context.Context, pr production.Production) (production.Production, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO productions (product_id, order_no, total_quantity, status, start_date, due_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		pr.ProductID, pr.OrderNo, pr.TotalQuantity, pr.Status, pr.StartDate, pr.DueDate,
	).Scan(&pr.ID, &pr.CreatedAt, &pr.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return production.Production{}, production.ErrOrderNoExists
		}
		return production.Production{}, fmt.Errorf("failed to create production: %w", err)
	}

	return pr, nil
}

// GetByID implements production.ProductionRepository.
func (r *productionRepository) GetByID(ctx context.Context, id string) (production.Production, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + productionJoinedColumns + `
		FROM productions pr
		JOIN products p ON p.id = pr.product_id
		WHERE pr.id = $1
	`

	pr, err := scanProductionJoined(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return production.Production{}, production.ErrProductionNotFound
		}
		return production.Production{}, fmt.Errorf("failed to get production by ID: %w", err)
	}

	return pr, nil
}

// List implements production.ProductionRepository.
func (r *productionRepository) List(ctx context.Context, filter production.ProductionFilter) ([]production.Production, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.ProductID != nil && *filter.ProductID != "" {
		baseWhere += fmt.Sprintf(" AND pr.product_id = $%d", argIdx)
		args = append(args, *filter.ProductID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND pr.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM productions pr WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count productions: %w", err)
	}

	sortOrder := "DESC"
	if strings.ToLower(filter.SortOrder) == "asc" {
		sortOrder = "ASC"
	}

	selectQuery := fmt.Sprintf(`
		SELECT %s
		FROM productions pr
		JOIN products p ON p.id = pr.product_id
		WHERE %s
		ORDER BY pr.created_at %s
		LIMIT $%d OFFSET $%d
	`, productionJoinedColumns, baseWhere, sortOrder, argIdx, argIdx+1)

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
		return nil, 0, fmt.Errorf("failed to query productions: %w", err)
	}
	defer rows.Close()

	var productions []production.Production
	for rows.Next() {
		pr, err := scanProductionJoined(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan production: %w", err)
		}
		productions = append(productions, pr)
	}

	return productions, total, nil
}

// UpdateStatus implements production.ProductionRepository.
func (r *productionRepository) UpdateStatus(ctx context.Context, id string, status production.ProductionStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE productions SET status = $1, updated_at = $2 WHERE id = $3`

	commandTag, err := q.Exec(ctx, query, status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update production status: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return production.ErrProductionNotFound
	}

	return nil
}

// CreateOperationRow implements production.ProductionRepository.
func (r *productionRepository) CreateOperationRow(ctx context.Context, row production.ProductionOperation) (production.ProductionOperation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO production_operations (production_id, operation_id, pieces_done)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, row.ProductionID, row.OperationID, row.PiecesDone).
		Scan(&row.ID, &row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		return production.ProductionOperation{}, fmt.Errorf("failed to create production operation row: %w", err)
	}

	return row, nil
}

// ListOperationRows implements production.ProductionRepository.
func (r *productionRepository) ListOperationRows(ctx context.Context, productionID string) ([]production.ProductionOperation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT po.id, po.production_id, po.operation_id, po.pieces_done,
			po.created_at, po.updated_at, o.name, o.code
		FROM production_operations po
		JOIN operations o ON o.id = po.operation_id
		WHERE po.production_id = $1
		ORDER BY o.code ASC
	`

	rows, err := q.Query(ctx, query, productionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query production operation rows: %w", err)
	}
	defer rows.Close()

	var result []production.ProductionOperation
	for rows.Next() {
		var row production.ProductionOperation
		err := rows.Scan(
			&row.ID, &row.ProductionID, &row.OperationID, &row.PiecesDone,
			&row.CreatedAt, &row.UpdatedAt, &row.OperationName, &row.OperationCode,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan production operation row: %w", err)
		}
		result = append(result, row)
	}

	return result, nil
}

// AddPieces implements production.ProductionRepository.
// The increment is atomic; concurrent piece recordings never lose counts.
func (r *productionRepository) AddPieces(ctx context.Context, productionID, operationID string, pieces int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE production_operations
		SET pieces_done = pieces_done + $1, updated_at = NOW()
		WHERE production_id = $2 AND operation_id = $3
	`

	commandTag, err := q.Exec(ctx, query, pieces, productionID, operationID)
	if err != nil {
		return fmt.Errorf("failed to add pieces to production operation: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return production.ErrOperationRowNotFound
	}

	return nil
}
