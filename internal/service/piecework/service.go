package piecework

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stitchline/garment-erp-go/internal/domain/piecework"
	"github.com/stitchline/garment-erp-go/internal/domain/production"
	"github.com/stitchline/garment-erp-go/internal/pkg/database"
)

type PieceworkServiceImpl struct {
	db     *database.DB
	logger *slog.Logger
	piecework.WorkerSalaryRepository
	operationRepo  production.OperationRepository
	productionRepo production.ProductionRepository
}

func NewPieceworkService(
	db *database.DB,
	logger *slog.Logger,
	workerSalaryRepo piecework.WorkerSalaryRepository,
	operationRepo production.OperationRepository,
	productionRepo production.ProductionRepository,
) piecework.PieceworkService {
	return &PieceworkServiceImpl{
		db:                     db,
		logger:                 logger,
		WorkerSalaryRepository: workerSalaryRepo,
		operationRepo:          operationRepo,
		productionRepo:         productionRepo,
	}
}

// RecordPieces implements piecework.PieceworkService.
// The piece rate and product come from the operation master. When a
// production is named, its operation counter is incremented best-effort: a
// counter failure is logged but the salary record stands.
func (s *PieceworkServiceImpl) RecordPieces(ctx context.Context, req piecework.RecordPiecesRequest) (piecework.WorkerSalaryResponse, error) {
	if err := req.Validate(); err != nil {
		return piecework.WorkerSalaryResponse{}, err
	}

	op, err := s.operationRepo.GetByID(ctx, req.OperationID)
	if err != nil {
		if errors.Is(err, production.ErrOperationNotFound) {
			return piecework.WorkerSalaryResponse{}, production.ErrOperationNotFound
		}
		return piecework.WorkerSalaryResponse{}, fmt.Errorf("failed to get operation: %w", err)
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	total := op.AmountPerPiece.Mul(decimal.NewFromInt(int64(req.PiecesDone))).Round(2)
	if req.TotalAmount != nil {
		total = req.TotalAmount.Round(2)
	}

	created, err := s.WorkerSalaryRepository.Create(ctx, piecework.WorkerSalary{
		WorkerID:       req.WorkerID,
		OperationID:    req.OperationID,
		ProductID:      op.ProductID,
		Date:           date,
		PiecesDone:     req.PiecesDone,
		AmountPerPiece: op.AmountPerPiece,
		TotalAmount:    total,
	})
	if err != nil {
		return piecework.WorkerSalaryResponse{}, fmt.Errorf("failed to create worker salary record: %w", err)
	}

	if req.ProductionID != nil && *req.ProductionID != "" {
		if err := s.productionRepo.AddPieces(ctx, *req.ProductionID, req.OperationID, req.PiecesDone); err != nil {
			s.logger.Warn("failed to add pieces to production counter",
				"production_id", *req.ProductionID, "operation_id", req.OperationID, "error", err)
		}
	}

	return s.Get(ctx, created.ID)
}

// Get implements piecework.PieceworkService.
func (s *PieceworkServiceImpl) Get(ctx context.Context, id string) (piecework.WorkerSalaryResponse, error) {
	ws, err := s.WorkerSalaryRepository.GetByID(ctx, id)
	if err != nil {
		return piecework.WorkerSalaryResponse{}, err
	}
	return mapWorkerSalaryToResponse(ws), nil
}

// List implements piecework.PieceworkService.
func (s *PieceworkServiceImpl) List(ctx context.Context, filter piecework.WorkerSalaryFilter) ([]piecework.WorkerSalaryResponse, int64, error) {
	records, total, err := s.WorkerSalaryRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list worker salaries: %w", err)
	}

	responses := make([]piecework.WorkerSalaryResponse, 0, len(records))
	for _, ws := range records {
		responses = append(responses, mapWorkerSalaryToResponse(ws))
	}

	return responses, total, nil
}

// MarkPaid implements piecework.PieceworkService.
func (s *PieceworkServiceImpl) MarkPaid(ctx context.Context, req piecework.MarkPaidRequest) (piecework.MarkPaidResult, error) {
	if err := req.Validate(); err != nil {
		return piecework.MarkPaidResult{}, err
	}

	affected, err := s.WorkerSalaryRepository.MarkPaid(ctx, req.IDs, time.Now())
	if err != nil {
		return piecework.MarkPaidResult{}, fmt.Errorf("failed to mark worker salaries paid: %w", err)
	}

	requested := int64(len(req.IDs))
	return piecework.MarkPaidResult{
		Requested: requested,
		Affected:  affected,
		Skipped:   requested - affected,
	}, nil
}

// Delete implements piecework.PieceworkService.
func (s *PieceworkServiceImpl) Delete(ctx context.Context, id string) error {
	ws, err := s.WorkerSalaryRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if ws.Paid {
		return piecework.ErrRecordAlreadyPaid
	}
	return s.WorkerSalaryRepository.Delete(ctx, id)
}

func mapWorkerSalaryToResponse(ws piecework.WorkerSalary) piecework.WorkerSalaryResponse {
	resp := piecework.WorkerSalaryResponse{
		ID:             ws.ID,
		WorkerID:       ws.WorkerID,
		WorkerName:     ws.WorkerName,
		OperationID:    ws.OperationID,
		OperationName:  ws.OperationName,
		ProductID:      ws.ProductID,
		ProductName:    ws.ProductName,
		Date:           ws.Date.Format("2006-01-02"),
		PiecesDone:     ws.PiecesDone,
		AmountPerPiece: ws.AmountPerPiece,
		TotalAmount:    ws.TotalAmount,
		Paid:           ws.Paid,
	}
	if ws.PaidDate != nil {
		formatted := ws.PaidDate.Format("2006-01-02")
		resp.PaidDate = &formatted
	}
	return resp
}
