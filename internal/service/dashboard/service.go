package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/stitchline/garment-erp-go/internal/domain/dashboard"
	"github.com/stitchline/garment-erp-go/internal/domain/production"
	"github.com/stitchline/garment-erp-go/internal/pkg/database"
	pieceworksvc "github.com/stitchline/garment-erp-go/internal/service/piecework"
)

type DashboardServiceImpl struct {
	db     *database.DB
	logger *slog.Logger
	dashboard.DashboardRepository
	productionRepo production.ProductionRepository
}

func NewDashboardService(
	db *database.DB,
	logger *slog.Logger,
	dashboardRepo dashboard.DashboardRepository,
	productionRepo production.ProductionRepository,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		db:                  db,
		logger:              logger,
		DashboardRepository: dashboardRepo,
		productionRepo:      productionRepo,
	}
}

// Summarize implements dashboard.DashboardService.
func (s *DashboardServiceImpl) Summarize(ctx context.Context, now time.Time) (dashboard.Summary, error) {
	counts, err := s.DashboardRepository.GetCounts(ctx)
	if err != nil {
		return dashboard.Summary{}, fmt.Errorf("failed to get dashboard counts: %w", err)
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)
	pieces, expense, err := s.DashboardRepository.GetMonthTotals(ctx, monthStart, monthEnd)
	if err != nil {
		return dashboard.Summary{}, fmt.Errorf("failed to get month totals: %w", err)
	}

	openStatus := string(production.ProductionStatusOpen)
	productions, _, err := s.productionRepo.List(ctx, production.ProductionFilter{
		Status: &openStatus,
		Limit:  100,
	})
	if err != nil {
		return dashboard.Summary{}, fmt.Errorf("failed to list open productions: %w", err)
	}

	progress := make([]dashboard.ProductionProgress, 0, len(productions))
	for _, pr := range productions {
		entry := dashboard.ProductionProgress{
			ProductionID:  pr.ID,
			OrderNo:       pr.OrderNo,
			ProductName:   pr.ProductName,
			TotalQuantity: pr.TotalQuantity,
		}

		rows, err := s.productionRepo.ListOperationRows(ctx, pr.ID)
		if err != nil {
			s.logger.Warn("failed to list production operation rows",
				"production_id", pr.ID, "error", err)
		} else {
			entry.FinishedPieces = pieceworksvc.BottleneckFinishedPieces(rows)
		}

		progress = append(progress, entry)
	}

	return dashboard.Summary{
		ActiveEmployees: counts.ActiveEmployees,
		ActiveWorkers:   counts.ActiveWorkers,
		OpenProductions: counts.OpenProductions,
		MonthPieces:     pieces,
		MonthExpense:    expense,
		Productions:     progress,
	}, nil
}
