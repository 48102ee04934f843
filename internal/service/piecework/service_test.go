package piecework

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitchline/garment-erp-go/internal/domain/piecework"
	"github.com/stitchline/garment-erp-go/internal/domain/production"
)

type fakeWorkerSalaryRepo struct {
	CreateFn    func(ctx context.Context, ws piecework.WorkerSalary) (piecework.WorkerSalary, error)
	GetByIDFn   func(ctx context.Context, id string) (piecework.WorkerSalary, error)
	ListFn      func(ctx context.Context, filter piecework.WorkerSalaryFilter) ([]piecework.WorkerSalary, int64, error)
	ListRangeFn func(ctx context.Context, from, to time.Time) ([]piecework.WorkerSalary, error)
	MarkPaidFn  func(ctx context.Context, ids []string, paidDate time.Time) (int64, error)
	DeleteFn    func(ctx context.Context, id string) error
}

func (f *fakeWorkerSalaryRepo) Create(ctx context.Context, ws piecework.WorkerSalary) (piecework.WorkerSalary, error) {
	return f.CreateFn(ctx, ws)
}

func (f *fakeWorkerSalaryRepo) GetByID(ctx context.Context, id string) (piecework.WorkerSalary, error) {
	return f.GetByIDFn(ctx, id)
}

func (f *fakeWorkerSalaryRepo) List(ctx context.Context, filter piecework.WorkerSalaryFilter) ([]piecework.WorkerSalary, int64, error) {
	return f.ListFn(ctx, filter)
}

func (f *fakeWorkerSalaryRepo) ListRange(ctx context.Context, from, to time.Time) ([]piecework.WorkerSalary, error) {
	return f.ListRangeFn(ctx, from, to)
}

func (f *fakeWorkerSalaryRepo) MarkPaid(ctx context.Context, ids []string, paidDate time.Time) (int64, error) {
	return f.MarkPaidFn(ctx, ids, paidDate)
}

func (f *fakeWorkerSalaryRepo) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

type fakeOperationRepo struct {
	GetByIDFn func(ctx context.Context, id string) (production.Operation, error)
}

func (f *fakeOperationRepo) Create(ctx context.Context, op production.Operation) (production.Operation, error) {
	panic("not implemented")
}

func (f *fakeOperationRepo) GetByID(ctx context.Context, id string) (production.Operation, error) {
	return f.GetByIDFn(ctx, id)
}

func (f *fakeOperationRepo) ListByProduct(ctx context.Context, productID string, activeOnly bool) ([]production.Operation, error) {
	panic("not implemented")
}

func (f *fakeOperationRepo) Update(ctx context.Context, op production.Operation) error {
	panic("not implemented")
}

func (f *fakeOperationRepo) SetActive(ctx context.Context, id string, active bool) error {
	panic("not implemented")
}

type fakeProductionRepo struct {
	AddPiecesFn func(ctx context.Context, productionID, operationID string, pieces int) error
}

func (f *fakeProductionRepo) Create(ctx context.Context, p production.Production) (production.Production, error) {
	panic("not implemented")
}

func (f *fakeProductionRepo) GetByID(ctx context.Context, id string) (production.Production, error) {
	panic("not implemented")
}

func (f *fakeProductionRepo) List(ctx context.Context, filter production.ProductionFilter) ([]production.Production, int64, error) {
	panic("not implemented")
}

func (f *fakeProductionRepo) UpdateStatus(ctx context.Context, id string, status production.ProductionStatus) error {
	panic("not implemented")
}

func (f *fakeProductionRepo) CreateOperationRow(ctx context.Context, row production.ProductionOperation) (production.ProductionOperation, error) {
	panic("not implemented")
}

func (f *fakeProductionRepo) ListOperationRows(ctx context.Context, productionID string) ([]production.ProductionOperation, error) {
	panic("not implemented")
}

func (f *fakeProductionRepo) AddPieces(ctx context.Context, productionID, operationID string, pieces int) error {
	return f.AddPiecesFn(ctx, productionID, operationID, pieces)
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func stitchOperation() production.Operation {
	return production.Operation{
		ID:             "op1",
		ProductID:      "p1",
		Name:           "Stitching",
		Code:           "STITCH",
		AmountPerPiece: d("5.50"),
		IsActive:       true,
	}
}

func passthroughCreate(stored *piecework.WorkerSalary) *fakeWorkerSalaryRepo {
	return &fakeWorkerSalaryRepo{
		CreateFn: func(ctx context.Context, ws piecework.WorkerSalary) (piecework.WorkerSalary, error) {
			ws.ID = "ws1"
			*stored = ws
			return ws, nil
		},
		GetByIDFn: func(ctx context.Context, id string) (piecework.WorkerSalary, error) {
			return *stored, nil
		},
	}
}

func TestRecordPieces(t *testing.T) {
	t.Run("rate and product come from the operation master", func(t *testing.T) {
		var stored piecework.WorkerSalary
		svc := NewPieceworkService(nil, testLogger(),
			passthroughCreate(&stored),
			&fakeOperationRepo{GetByIDFn: func(ctx context.Context, id string) (production.Operation, error) {
				return stitchOperation(), nil
			}},
			&fakeProductionRepo{},
		)

		resp, err := svc.RecordPieces(context.Background(), piecework.RecordPiecesRequest{
			WorkerID:    "w1",
			OperationID: "op1",
			Date:        "2025-03-10",
			PiecesDone:  40,
		})
		require.NoError(t, err)

		assert.Equal(t, "p1", stored.ProductID)
		assert.Equal(t, "5.5", stored.AmountPerPiece.String())
		// 40 * 5.50
		assert.Equal(t, "220", resp.TotalAmount.String())
	})

	t.Run("explicit total overrides the computed amount", func(t *testing.T) {
		var stored piecework.WorkerSalary
		svc := NewPieceworkService(nil, testLogger(),
			passthroughCreate(&stored),
			&fakeOperationRepo{GetByIDFn: func(ctx context.Context, id string) (production.Operation, error) {
				return stitchOperation(), nil
			}},
			&fakeProductionRepo{},
		)

		override := d("200")
		resp, err := svc.RecordPieces(context.Background(), piecework.RecordPiecesRequest{
			WorkerID:    "w1",
			OperationID: "op1",
			Date:        "2025-03-10",
			PiecesDone:  40,
			TotalAmount: &override,
		})
		require.NoError(t, err)
		assert.Equal(t, "200", resp.TotalAmount.String())
	})

	t.Run("production counter failure does not undo the record", func(t *testing.T) {
		var stored piecework.WorkerSalary
		svc := NewPieceworkService(nil, testLogger(),
			passthroughCreate(&stored),
			&fakeOperationRepo{GetByIDFn: func(ctx context.Context, id string) (production.Operation, error) {
				return stitchOperation(), nil
			}},
			&fakeProductionRepo{AddPiecesFn: func(ctx context.Context, productionID, operationID string, pieces int) error {
				return errors.New("row missing")
			}},
		)

		productionID := "prod1"
		resp, err := svc.RecordPieces(context.Background(), piecework.RecordPiecesRequest{
			WorkerID:     "w1",
			OperationID:  "op1",
			ProductionID: &productionID,
			Date:         "2025-03-10",
			PiecesDone:   40,
		})
		require.NoError(t, err)
		assert.Equal(t, "ws1", resp.ID)
	})

	t.Run("unknown operation is rejected", func(t *testing.T) {
		svc := NewPieceworkService(nil, testLogger(),
			&fakeWorkerSalaryRepo{},
			&fakeOperationRepo{GetByIDFn: func(ctx context.Context, id string) (production.Operation, error) {
				return production.Operation{}, production.ErrOperationNotFound
			}},
			&fakeProductionRepo{},
		)

		_, err := svc.RecordPieces(context.Background(), piecework.RecordPiecesRequest{
			WorkerID:    "w1",
			OperationID: "missing",
			Date:        "2025-03-10",
			PiecesDone:  40,
		})
		assert.ErrorIs(t, err, production.ErrOperationNotFound)
	})
}

func TestDeleteWorkerSalary(t *testing.T) {
	t.Run("paid record cannot be deleted", func(t *testing.T) {
		svc := NewPieceworkService(nil, testLogger(),
			&fakeWorkerSalaryRepo{
				GetByIDFn: func(ctx context.Context, id string) (piecework.WorkerSalary, error) {
					return piecework.WorkerSalary{ID: id, Paid: true}, nil
				},
			},
			&fakeOperationRepo{},
			&fakeProductionRepo{},
		)

		err := svc.Delete(context.Background(), "ws1")
		assert.ErrorIs(t, err, piecework.ErrRecordAlreadyPaid)
	})
}

func TestMarkPaidWorkerSalaries(t *testing.T) {
	t.Run("reports affected versus skipped", func(t *testing.T) {
		svc := NewPieceworkService(nil, testLogger(),
			&fakeWorkerSalaryRepo{
				MarkPaidFn: func(ctx context.Context, ids []string, paidDate time.Time) (int64, error) {
					return 1, nil
				},
			},
			&fakeOperationRepo{},
			&fakeProductionRepo{},
		)

		result, err := svc.MarkPaid(context.Background(), piecework.MarkPaidRequest{
			IDs: []string{
				"0195a9be-7dea-7bc0-a29c-0d77cde3e67a",
				"0195a9be-7dea-7bc0-a29c-0d77cde3e67b",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), result.Affected)
		assert.Equal(t, int64(1), result.Skipped)
	})
}
