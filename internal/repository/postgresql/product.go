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

type productRepository struct {
	db *database.DB
}

func NewProductRepository(db *database.DB) production.ProductRepository {
	return &productRepository{db: db}
}

const productColumns = `id, name, code, description, is_active, created_at, updated_at`

func scanProduct(row pgx.Row) (production.Product, error) {
	var p production.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Code, &p.Description, &p.IsActive,
		&p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// Create implements production.ProductRepository.
func (r *productRepository) Create(ctx context.Context, p production.Product) (production.Product, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO products (name, code, description, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, p.Name, p.Code, p.Description, p.IsActive).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return production.Product{}, production.ErrProductCodeExists
		}
		return production.Product{}, fmt.Errorf("failed to create product: %w", err)
	}

	return p, nil
}

// GetByID implements production.ProductRepository.
func (r *productRepository) GetByID(ctx context.Context, id string) (production.Product, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	p, err := scanProduct(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return production.Product{}, production.ErrProductNotFound
		}
		return production.Product{}, fmt.Errorf("failed to get product by ID: %w", err)
	}

	return p, nil
}

// List implements production.ProductRepository.
func (r *productRepository) List(ctx context.Context, filter production.ProductFilter) ([]production.Product, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.Search != nil && *filter.Search != "" {
		baseWhere += fmt.Sprintf(" AND (name ILIKE $%d OR code ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}
	if filter.IsActive != nil {
		baseWhere += fmt.Sprintf(" AND is_active = $%d", argIdx)
		args = append(args, *filter.IsActive)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM products WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	sortOrder := "ASC"
	if strings.ToLower(filter.SortOrder) == "desc" {
		sortOrder = "DESC"
	}

	selectQuery := fmt.Sprintf(`
		SELECT %s FROM products
		WHERE %s
		ORDER BY name %s
		LIMIT $%d OFFSET $%d
	`, productColumns, baseWhere, sortOrder, argIdx, argIdx+1)

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
		return nil, 0, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []production.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	return products, total, nil
}

// Update implements production.ProductRepository.
func (r *productRepository) Update(ctx context.Context, p production.Product) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE products
		SET name = $1, description = $2, is_active = $3, updated_at = $4
		WHERE id = $5
	`

	commandTag, err := q.Exec(ctx, query, p.Name, p.Description, p.IsActive, time.Now(), p.ID)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return production.ErrProductNotFound
	}

	return nil
}

// SetActive implements production.ProductRepository.
func (r *productRepository) SetActive(ctx context.Context, id string, active bool) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE products SET is_active = $1, updated_at = $2 WHERE id = $3`

	commandTag, err := q.Exec(ctx, query, active, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to set product active flag: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return production.ErrProductNotFound
	}

	return nil
}

type operationRepository struct {
	db *database.DB
}

func NewOperationRepository(db *database.DB) production.OperationRepository {
	return &operationRepository{db: db}
}

// Create implements production.OperationRepository.
func (r *operationRepository) Create(ctx context.Context, op production.Operation) (production.Operation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO operations (product_id, name, code, amount_per_piece, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		op.ProductID, op.Name, op.Code, op.AmountPerPiece, op.IsActive,
	).Scan(&op.ID, &op.CreatedAt, &op.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return production.Operation{}, production.ErrOperationCodeExists
		}
		return production.Operation{}, fmt.Errorf("failed to create operation: %w", err)
	}

	return op, nil
}

// GetByID implements production.OperationRepository.
func (r *operationRepository) GetByID(ctx context.Context, id string) (production.Operation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT o.id, o.product_id, o.name, o.code, o.amount_per_piece, o.is_active,
			o.created_at, o.updated_at, p.name
		FROM operations o
		JOIN products p ON p.id = o.product_id
		WHERE o.id = $1
	`

	var op production.Operation
	err := q.QueryRow(ctx, query, id).Scan(
		&op.ID, &op.ProductID, &op.Name, &op.Code, &op.AmountPerPiece, &op.IsActive,
		&op.CreatedAt, &op.UpdatedAt, &op.ProductName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return production.Operation{}, production.ErrOperationNotFound
		}
		return production.Operation{}, fmt.Errorf("failed to get operation by ID: %w", err)
	}

	return op, nil
}

// ListByProduct implements production.OperationRepository.
func (r *operationRepository) ListByProduct(ctx context.Context, productID string, activeOnly bool) ([]production.Operation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT o.id, o.product_id, o.name, o.code, o.amount_per_piece, o.is_active,
			o.created_at, o.updated_at, p.name
		FROM operations o
		JOIN products p ON p.id = o.product_id
		WHERE o.product_id = $1
	`
	if activeOnly {
		query += ` AND o.is_active = TRUE`
	}
	query += ` ORDER BY o.code ASC`

	rows, err := q.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to query operations: %w", err)
	}
	defer rows.Close()

	var operations []production.Operation
	for rows.Next() {
		var op production.Operation
		err := rows.Scan(
			&op.ID, &op.ProductID, &op.Name, &op.Code, &op.AmountPerPiece, &op.IsActive,
			&op.CreatedAt, &op.UpdatedAt, &op.ProductName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan operation: %w", err)
		}
		operations = append(operations, op)
	}

	return operations, nil
}

// Update implements production.OperationRepository.
func (r *operationRepository) Update(ctx context.Context, op production.Operation) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE operations
		SET name = $1, amount_per_piece = $2, is_active = $3, updated_at = $4
		WHERE id = $5
	`

	commandTag, err := q.Exec(ctx, query, op.Name, op.AmountPerPiece, op.IsActive, time.Now(), op.ID)
	if err != nil {
		return fmt.Errorf("failed to update operation: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return production.ErrOperationNotFound
	}

	return nil
}

// SetActive implements production.OperationRepository.
func (r *operationRepository) SetActive(ctx context.Context, id string, active bool) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE operations SET is_active = $1, updated_at = $2 WHERE id = $3`

	commandTag, err := q.Exec(ctx, query, active, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to set operation active flag: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return production.ErrOperationNotFound
	}

	return nil
}
