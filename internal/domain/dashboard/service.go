package dashboard

import (
	"context"
	"time"
)

// DashboardService defines business logic for the dashboard summary.
type DashboardService interface {
	Summarize(ctx context.Context, now time.Time) (Summary, error)
}
