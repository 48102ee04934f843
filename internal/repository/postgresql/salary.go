package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/stitchline/garment-erp-go/internal/domain/salary"
	"github.com/stitchline/garment-erp-go/internal/pkg/database"
)

type salaryRepository struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) salary.SalaryRepository {
	return &salaryRepository{db: db}
}

const salaryJoinedColumns = `
	es.id, es.employee_id, es.salary_month, es.gross_salary, es.advance,
	es.net_salary, es.paid, es.paid_date, es.created_at, es.updated_at,
	e.full_name, e.code`

func scanSalaryJoined(row pgx.Row) (salary.EmployeeSalary, error) {
	var s salary.EmployeeSalary
	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.SalaryMonth, &s.GrossSalary, &s.Advance,
		&s.NetSalary, &s.Paid, &s.PaidDate, &s.CreatedAt, &s.UpdatedAt,
		&s.EmployeeName, &s.EmployeeCode,
	)
	return s, err
}

// GetByID implements salary.SalaryRepository.
func (r *salaryRepository) GetByID(ctx context.Context, id string) (salary.EmployeeSalary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + salaryJoinedColumns + `
		FROM employee_salaries es
		JOIN employees e ON e.id = es.employee_id
		WHERE es.id = $1
	`

	s, err := scanSalaryJoined(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return salary.EmployeeSalary{}, salary.ErrSalaryNotFound
		}
		return salary.EmployeeSalary{}, fmt.Errorf("failed to get salary by ID: %w", err)
	}

	return s, nil
}

// GetByEmployeeAndMonth implements salary.SalaryRepository.
func (r *salaryRepository) GetByEmployeeAndMonth(ctx context.Context, employeeID, salaryMonth string) (salary.EmployeeSalary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + salaryJoinedColumns + `
		FROM employee_salaries es
		JOIN employees e ON e.id = es.employee_id
		WHERE es.employee_id = $1 AND es.salary_month = $2
	`

	s, err := scanSalaryJoined(q.QueryRow(ctx, query, employeeID, salaryMonth))
	if err != nil {
		if err == pgx.ErrNoRows {
			return salary.EmployeeSalary{}, salary.ErrSalaryNotFound
		}
		return salary.EmployeeSalary{}, fmt.Errorf("failed to get salary by employee and month: %w", err)
	}

	return s, nil
}

// InsertIfAbsent implements salary.SalaryRepository.
// ON CONFLICT DO NOTHING makes concurrent reconcile runs race-safe: exactly
// one caller inserts, the rest see inserted=false and take the update path.
func (r *salaryRepository) InsertIfAbsent(ctx context.Context, s salary.EmployeeSalary) (salary.EmployeeSalary, bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_salaries (employee_id, salary_month, gross_salary, advance, net_salary, paid)
		VALUES ($1, $2, $3, $4, $5, FALSE)
		ON CONFLICT (employee_id, salary_month) DO NOTHING
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.EmployeeID, s.SalaryMonth, s.GrossSalary, s.Advance, s.NetSalary,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return salary.EmployeeSalary{}, false, nil
		}
		return salary.EmployeeSalary{}, false, fmt.Errorf("failed to insert salary: %w", err)
	}

	return s, true, nil
}

// UpdateAmounts implements salary.SalaryRepository.
func (r *salaryRepository) UpdateAmounts(ctx context.Context, id string, gross, advance, net decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employee_salaries
		SET gross_salary = $1, advance = $2, net_salary = $3, updated_at = $4
		WHERE id = $5
	`

	commandTag, err := q.Exec(ctx, query, gross, advance, net, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update salary amounts: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return salary.ErrSalaryNotFound
	}

	return nil
}

// ListByMonth implements salary.SalaryRepository.
func (r *salaryRepository) ListByMonth(ctx context.Context, salaryMonth string, filter salary.SalaryFilter) ([]salary.EmployeeSalary, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "es.salary_month = $1"
	args := []interface{}{salaryMonth}
	argIdx := 2

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND es.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Paid != nil {
		baseWhere += fmt.Sprintf(" AND es.paid = $%d", argIdx)
		args = append(args, *filter.Paid)
		argIdx++
	}

	countQuery := `
		SELECT COUNT(*)
		FROM employee_salaries es
		WHERE ` + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count salaries: %w", err)
	}

	orderByField := "e.full_name"
	switch filter.SortBy {
	case "net_salary":
		orderByField = "es.net_salary"
	case "gross_salary":
		orderByField = "es.gross_salary"
	case "paid":
		orderByField = "es.paid"
	}
	sortOrder := "ASC"
	if strings.ToLower(filter.SortOrder) == "desc" {
		sortOrder = "DESC"
	}

	selectQuery := fmt.Sprintf(`
		SELECT %s
		FROM employee_salaries es
		JOIN employees e ON e.id = es.employee_id
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, salaryJoinedColumns, baseWhere, orderByField, sortOrder, argIdx, argIdx+1)

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
		return nil, 0, fmt.Errorf("failed to query salaries: %w", err)
	}
	defer rows.Close()

	var salaries []salary.EmployeeSalary
	for rows.Next() {
		s, err := scanSalaryJoined(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan salary: %w", err)
		}
		salaries = append(salaries, s)
	}

	return salaries, total, nil
}

// MarkPaid implements salary.SalaryRepository.
// Already-paid rows are excluded so the paid transition stays one-way.
func (r *salaryRepository) MarkPaid(ctx context.Context, ids []string, paidDate time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employee_salaries
		SET paid = TRUE, paid_date = $1, updated_at = NOW()
		WHERE id = ANY($2) AND paid = FALSE
	`

	commandTag, err := q.Exec(ctx, query, paidDate, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to mark salaries paid: %w", err)
	}

	return commandTag.RowsAffected(), nil
}

// Delete implements salary.SalaryRepository.
func (r *salaryRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM employee_salaries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete salary: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return salary.ErrSalaryNotFound
	}

	return nil
}
