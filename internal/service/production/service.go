package production

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/stitchline/garment-erp-go/internal/domain/production"
	"github.com/stitchline/garment-erp-go/internal/pkg/database"
	"github.com/stitchline/garment-erp-go/internal/service/piecework"
)

type ProductionServiceImpl struct {
	db     *database.DB
	logger *slog.Logger
	production.ProductionRepository
	productRepo   production.ProductRepository
	operationRepo production.OperationRepository
}

func NewProductionService(
	db *database.DB,
	logger *slog.Logger,
	productionRepo production.ProductionRepository,
	productRepo production.ProductRepository,
	operationRepo production.OperationRepository,
) production.ProductionService {
	return &ProductionServiceImpl{
		db:                   db,
		logger:               logger,
		ProductionRepository: productionRepo,
		productRepo:          productRepo,
		operationRepo:        operationRepo,
	}
}

// Create implements production.ProductionService.
// The production row and its per-operation counter rows are written without a
// transaction: a counter row failure is collected into OperationErrors and
// the production stands. Missing rows can be repaired by re-adding pieces
// later once the cause is fixed.
func (s *ProductionServiceImpl) Create(ctx context.Context, req production.CreateProductionRequest) (production.ProductionResponse, error) {
	if err := req.Validate(); err != nil {
		return production.ProductionResponse{}, err
	}

	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return production.ProductionResponse{}, err
	}

	operations, err := s.operationRepo.ListByProduct(ctx, product.ID, true)
	if err != nil {
		return production.ProductionResponse{}, fmt.Errorf("failed to list product operations: %w", err)
	}
	if len(operations) == 0 {
		return production.ProductionResponse{}, production.ErrProductHasNoOps
	}

	created, err := s.ProductionRepository.Create(ctx, production.Production{
		ProductID:     product.ID,
		OrderNo:       req.OrderNo,
		TotalQuantity: req.TotalQuantity,
		Status:        production.ProductionStatusOpen,
		StartDate:     parseDatePtr(req.StartDate),
		DueDate:       parseDatePtr(req.DueDate),
	})
	if err != nil {
		return production.ProductionResponse{}, err
	}

	var operationErrors []string
	for _, op := range operations {
		_, err := s.ProductionRepository.CreateOperationRow(ctx, production.ProductionOperation{
			ProductionID: created.ID,
			OperationID:  op.ID,
		})
		if err != nil {
			s.logger.Warn("failed to create production operation row",
				"production_id", created.ID, "operation_id", op.ID, "error", err)
			operationErrors = append(operationErrors, fmt.Sprintf("%s: %v", op.Code, err))
		}
	}

	resp, err := s.Get(ctx, created.ID)
	if err != nil {
		return production.ProductionResponse{}, err
	}
	resp.OperationErrors = operationErrors
	return resp, nil
}

// Get implements production.ProductionService.
func (s *ProductionServiceImpl) Get(ctx context.Context, id string) (production.ProductionResponse, error) {
	pr, err := s.ProductionRepository.GetByID(ctx, id)
	if err != nil {
		return production.ProductionResponse{}, err
	}

	rows, err := s.ProductionRepository.ListOperationRows(ctx, id)
	if err != nil {
		return production.ProductionResponse{}, fmt.Errorf("failed to list production operation rows: %w", err)
	}

	resp := mapProductionToResponse(pr)
	resp.FinishedPieces = piecework.BottleneckFinishedPieces(rows)
	resp.Operations = make([]production.ProductionOperationResponse, 0, len(rows))
	for _, row := range rows {
		resp.Operations = append(resp.Operations, production.ProductionOperationResponse{
			OperationID:   row.OperationID,
			OperationName: row.OperationName,
			OperationCode: row.OperationCode,
			PiecesDone:    row.PiecesDone,
		})
	}

	return resp, nil
}

// List implements production.ProductionService.
func (s *ProductionServiceImpl) List(ctx context.Context, filter production.ProductionFilter) ([]production.ProductionResponse, int64, error) {
	productions, total, err := s.ProductionRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list productions: %w", err)
	}

	responses := make([]production.ProductionResponse, 0, len(productions))
	for _, pr := range productions {
		resp := mapProductionToResponse(pr)

		rows, err := s.ProductionRepository.ListOperationRows(ctx, pr.ID)
		if err != nil {
			s.logger.Warn("failed to list production operation rows",
				"production_id", pr.ID, "error", err)
		} else {
			resp.FinishedPieces = piecework.BottleneckFinishedPieces(rows)
		}

		responses = append(responses, resp)
	}

	return responses, total, nil
}

// UpdateStatus implements production.ProductionService.
func (s *ProductionServiceImpl) UpdateStatus(ctx context.Context, id string, status string) error {
	switch production.ProductionStatus(status) {
	case production.ProductionStatusOpen, production.ProductionStatusCompleted, production.ProductionStatusCancelled:
	default:
		return production.ErrInvalidStatus
	}

	return s.ProductionRepository.UpdateStatus(ctx, id, production.ProductionStatus(status))
}

func mapProductionToResponse(pr production.Production) production.ProductionResponse {
	return production.ProductionResponse{
		ID:            pr.ID,
		ProductID:     pr.ProductID,
		ProductName:   pr.ProductName,
		OrderNo:       pr.OrderNo,
		TotalQuantity: pr.TotalQuantity,
		Status:        string(pr.Status),
		StartDate:     formatDatePtr(pr.StartDate),
		DueDate:       formatDatePtr(pr.DueDate),
	}
}

func parseDatePtr(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format("2006-01-02")
	return &formatted
}
