package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DashboardRepository defines the aggregate queries behind the dashboard.
type DashboardRepository interface {
	GetCounts(ctx context.Context) (Counts, error)

	// GetMonthTotals sums piece-rate pieces and expense over [from, to].
	GetMonthTotals(ctx context.Context, from, to time.Time) (int, decimal.Decimal, error)
}
