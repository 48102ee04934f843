package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stitchline/garment-erp-go/internal/domain/dashboard"
	"github.com/stitchline/garment-erp-go/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepository{db: db}
}

// GetCounts implements dashboard.DashboardRepository.
func (r *dashboardRepository) GetCounts(ctx context.Context) (dashboard.Counts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			(SELECT COUNT(*) FROM employees WHERE is_active = TRUE),
			(SELECT COUNT(*) FROM workers WHERE is_active = TRUE),
			(SELECT COUNT(*) FROM productions WHERE status = 'open')
	`

	var counts dashboard.Counts
	err := q.QueryRow(ctx, query).
		Scan(&counts.ActiveEmployees, &counts.ActiveWorkers, &counts.OpenProductions)
	if err != nil {
		return dashboard.Counts{}, fmt.Errorf("failed to get dashboard counts: %w", err)
	}

	return counts, nil
}

// GetMonthTotals implements dashboard.DashboardRepository.
func (r *dashboardRepository) GetMonthTotals(ctx context.Context, from, to time.Time) (int, decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(pieces_done), 0), COALESCE(SUM(total_amount), 0)
		FROM worker_salaries
		WHERE date >= $1 AND date <= $2
	`

	var pieces int
	var expense decimal.Decimal
	if err := q.QueryRow(ctx, query, from, to).Scan(&pieces, &expense); err != nil {
		return 0, decimal.Zero, fmt.Errorf("failed to get month totals: %w", err)
	}

	return pieces, expense, nil
}
