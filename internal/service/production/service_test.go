package production

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitchline/garment-erp-go/internal/domain/production"
)

type fakeProductionRepo struct {
	CreateFn             func(ctx context.Context, p production.Production) (production.Production, error)
	GetByIDFn            func(ctx context.Context, id string) (production.Production, error)
	ListFn               func(ctx context.Context, filter production.ProductionFilter) ([]production.Production, int64, error)
	UpdateStatusFn       func(ctx context.Context, id string, status production.ProductionStatus) error
	CreateOperationRowFn func(ctx context.Context, row production.ProductionOperation) (production.ProductionOperation, error)
	ListOperationRowsFn  func(ctx context.Context, productionID string) ([]production.ProductionOperation, error)
	AddPiecesFn          func(ctx context.Context, productionID, operationID string, pieces int) error
}

func (f *fakeProductionRepo) Create(ctx context.Context, p production.Production) (production.Production, error) {
	return f.CreateFn(ctx, p)
}

func (f *fakeProductionRepo) GetByID(ctx context.Context, id string) (production.Production, error) {
	return f.GetByIDFn(ctx, id)
}

func (f *fakeProductionRepo) List(ctx context.Context, filter production.ProductionFilter) ([]production.Production, int64, error) {
	return f.ListFn(ctx, filter)
}

func (f *fakeProductionRepo) UpdateStatus(ctx context.Context, id string, status production.ProductionStatus) error {
	return f.UpdateStatusFn(ctx, id, status)
}

func (f *fakeProductionRepo) CreateOperationRow(ctx context.Context, row production.ProductionOperation) (production.ProductionOperation, error) {
	return f.CreateOperationRowFn(ctx, row)
}

func (f *fakeProductionRepo) ListOperationRows(ctx context.Context, productionID string) ([]production.ProductionOperation, error) {
	return f.ListOperationRowsFn(ctx, productionID)
}

func (f *fakeProductionRepo) AddPieces(ctx context.Context, productionID, operationID string, pieces int) error {
	return f.AddPiecesFn(ctx, productionID, operationID, pieces)
}

type fakeProductRepo struct {
	GetByIDFn func(ctx context.Context, id string) (production.Product, error)
}

func (f *fakeProductRepo) Create(ctx context.Context, p production.Product) (production.Product, error) {
	panic("not implemented")
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id string) (production.Product, error) {
	return f.GetByIDFn(ctx, id)
}

func (f *fakeProductRepo) List(ctx context.Context, filter production.ProductFilter) ([]production.Product, int64, error) {
	panic("not implemented")
}

func (f *fakeProductRepo) Update(ctx context.Context, p production.Product) error {
	panic("not implemented")
}

func (f *fakeProductRepo) SetActive(ctx context.Context, id string, active bool) error {
	panic("not implemented")
}

type fakeOperationRepo struct {
	ListByProductFn func(ctx context.Context, productID string, activeOnly bool) ([]production.Operation, error)
}

func (f *fakeOperationRepo) Create(ctx context.Context, op production.Operation) (production.Operation, error) {
	panic("not implemented")
}

func (f *fakeOperationRepo) GetByID(ctx context.Context, id string) (production.Operation, error) {
	panic("not implemented")
}

func (f *fakeOperationRepo) ListByProduct(ctx context.Context, productID string, activeOnly bool) ([]production.Operation, error) {
	return f.ListByProductFn(ctx, productID, activeOnly)
}

func (f *fakeOperationRepo) Update(ctx context.Context, op production.Operation) error {
	panic("not implemented")
}

func (f *fakeOperationRepo) SetActive(ctx context.Context, id string, active bool) error {
	panic("not implemented")
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestCreateProduction(t *testing.T) {
	shirt := production.Product{ID: "p1", Name: "Shirt", Code: "SHIRT", IsActive: true}
	shirtOps := []production.Operation{
		{ID: "op1", ProductID: "p1", Code: "CUT", IsActive: true},
		{ID: "op2", ProductID: "p1", Code: "STITCH", IsActive: true},
	}

	t.Run("creates one counter row per active operation", func(t *testing.T) {
		var counterRows []production.ProductionOperation
		repo := &fakeProductionRepo{
			CreateFn: func(ctx context.Context, p production.Production) (production.Production, error) {
				p.ID = "prod1"
				return p, nil
			},
			CreateOperationRowFn: func(ctx context.Context, row production.ProductionOperation) (production.ProductionOperation, error) {
				counterRows = append(counterRows, row)
				return row, nil
			},
			GetByIDFn: func(ctx context.Context, id string) (production.Production, error) {
				return production.Production{ID: id, ProductID: "p1", OrderNo: "ORD-1", Status: production.ProductionStatusOpen}, nil
			},
			ListOperationRowsFn: func(ctx context.Context, productionID string) ([]production.ProductionOperation, error) {
				return []production.ProductionOperation{
					{OperationID: "op1"}, {OperationID: "op2"},
				}, nil
			},
		}
		svc := NewProductionService(nil, testLogger(), repo,
			&fakeProductRepo{GetByIDFn: func(ctx context.Context, id string) (production.Product, error) { return shirt, nil }},
			&fakeOperationRepo{ListByProductFn: func(ctx context.Context, productID string, activeOnly bool) ([]production.Operation, error) {
				assert.True(t, activeOnly)
				return shirtOps, nil
			}},
		)

		resp, err := svc.Create(context.Background(), production.CreateProductionRequest{
			ProductID:     "p1",
			OrderNo:       "ORD-1",
			TotalQuantity: 500,
		})
		require.NoError(t, err)

		assert.Len(t, counterRows, 2)
		assert.Empty(t, resp.OperationErrors)
		assert.Equal(t, 0, resp.FinishedPieces)
	})

	t.Run("counter row failure is collected, not rolled back", func(t *testing.T) {
		repo := &fakeProductionRepo{
			CreateFn: func(ctx context.Context, p production.Production) (production.Production, error) {
				p.ID = "prod1"
				return p, nil
			},
			CreateOperationRowFn: func(ctx context.Context, row production.ProductionOperation) (production.ProductionOperation, error) {
				if row.OperationID == "op2" {
					return production.ProductionOperation{}, errors.New("disk full")
				}
				return row, nil
			},
			GetByIDFn: func(ctx context.Context, id string) (production.Production, error) {
				return production.Production{ID: id, ProductID: "p1", OrderNo: "ORD-1", Status: production.ProductionStatusOpen}, nil
			},
			ListOperationRowsFn: func(ctx context.Context, productionID string) ([]production.ProductionOperation, error) {
				return []production.ProductionOperation{{OperationID: "op1"}}, nil
			},
		}
		svc := NewProductionService(nil, testLogger(), repo,
			&fakeProductRepo{GetByIDFn: func(ctx context.Context, id string) (production.Product, error) { return shirt, nil }},
			&fakeOperationRepo{ListByProductFn: func(ctx context.Context, productID string, activeOnly bool) ([]production.Operation, error) {
				return shirtOps, nil
			}},
		)

		resp, err := svc.Create(context.Background(), production.CreateProductionRequest{
			ProductID:     "p1",
			OrderNo:       "ORD-1",
			TotalQuantity: 500,
		})
		require.NoError(t, err)
		require.Len(t, resp.OperationErrors, 1)
		assert.Contains(t, resp.OperationErrors[0], "STITCH")
	})

	t.Run("product without active operations is rejected", func(t *testing.T) {
		svc := NewProductionService(nil, testLogger(), &fakeProductionRepo{},
			&fakeProductRepo{GetByIDFn: func(ctx context.Context, id string) (production.Product, error) { return shirt, nil }},
			&fakeOperationRepo{ListByProductFn: func(ctx context.Context, productID string, activeOnly bool) ([]production.Operation, error) {
				return nil, nil
			}},
		)

		_, err := svc.Create(context.Background(), production.CreateProductionRequest{
			ProductID:     "p1",
			OrderNo:       "ORD-1",
			TotalQuantity: 500,
		})
		assert.ErrorIs(t, err, production.ErrProductHasNoOps)
	})
}

func TestGetProduction(t *testing.T) {
	t.Run("finished pieces is the bottleneck across operations", func(t *testing.T) {
		repo := &fakeProductionRepo{
			GetByIDFn: func(ctx context.Context, id string) (production.Production, error) {
				return production.Production{ID: id, Status: production.ProductionStatusOpen}, nil
			},
			ListOperationRowsFn: func(ctx context.Context, productionID string) ([]production.ProductionOperation, error) {
				return []production.ProductionOperation{
					{OperationID: "op1", PiecesDone: 120},
					{OperationID: "op2", PiecesDone: 95},
					{OperationID: "op3", PiecesDone: 130},
				}, nil
			},
		}
		svc := NewProductionService(nil, testLogger(), repo, &fakeProductRepo{}, &fakeOperationRepo{})

		resp, err := svc.Get(context.Background(), "prod1")
		require.NoError(t, err)
		assert.Equal(t, 95, resp.FinishedPieces)
		assert.Len(t, resp.Operations, 3)
	})
}

func TestUpdateProductionStatus(t *testing.T) {
	t.Run("rejects unknown status", func(t *testing.T) {
		svc := NewProductionService(nil, testLogger(), &fakeProductionRepo{}, &fakeProductRepo{}, &fakeOperationRepo{})

		err := svc.UpdateStatus(context.Background(), "prod1", "archived")
		assert.ErrorIs(t, err, production.ErrInvalidStatus)
	})

	t.Run("accepts known status", func(t *testing.T) {
		var got production.ProductionStatus
		repo := &fakeProductionRepo{
			UpdateStatusFn: func(ctx context.Context, id string, status production.ProductionStatus) error {
				got = status
				return nil
			},
		}
		svc := NewProductionService(nil, testLogger(), repo, &fakeProductRepo{}, &fakeOperationRepo{})

		require.NoError(t, svc.UpdateStatus(context.Background(), "prod1", "completed"))
		assert.Equal(t, production.ProductionStatusCompleted, got)
	})
}
