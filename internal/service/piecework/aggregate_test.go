package piecework

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitchline/garment-erp-go/internal/domain/piecework"
	"github.com/stitchline/garment-erp-go/internal/domain/production"
)

func d(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

func strPtr(s string) *string { return &s }

func TestAggregateByWorker(t *testing.T) {
	t.Run("sums pieces and earnings per worker", func(t *testing.T) {
		records := []piecework.WorkerSalary{
			{WorkerID: "w1", WorkerName: strPtr("Devi"), PiecesDone: 50, TotalAmount: d("250"), Paid: true},
			{WorkerID: "w2", WorkerName: strPtr("Esha"), PiecesDone: 30, TotalAmount: d("180"), Paid: true},
			{WorkerID: "w1", WorkerName: strPtr("Devi"), PiecesDone: 40, TotalAmount: d("200"), Paid: true},
		}

		aggregates := AggregateByWorker(records)
		require.Len(t, aggregates, 2)

		assert.Equal(t, "w1", aggregates[0].WorkerID)
		assert.Equal(t, 90, aggregates[0].TotalPieces)
		assert.Equal(t, "450", aggregates[0].TotalAmount.String())
		assert.Equal(t, "Devi", aggregates[0].WorkerName)

		assert.Equal(t, "w2", aggregates[1].WorkerID)
		assert.Equal(t, 30, aggregates[1].TotalPieces)
	})

	t.Run("paid only when every record is paid", func(t *testing.T) {
		records := []piecework.WorkerSalary{
			{WorkerID: "w1", PiecesDone: 50, TotalAmount: d("250"), Paid: true},
			{WorkerID: "w1", PiecesDone: 20, TotalAmount: d("100"), Paid: false},
			{WorkerID: "w2", PiecesDone: 10, TotalAmount: d("60"), Paid: true},
		}

		aggregates := AggregateByWorker(records)
		require.Len(t, aggregates, 2)

		assert.False(t, aggregates[0].Paid)
		assert.True(t, aggregates[1].Paid)
	})

	t.Run("empty input yields empty slice", func(t *testing.T) {
		assert.Empty(t, AggregateByWorker(nil))
	})
}

func TestBottleneckFinishedPieces(t *testing.T) {
	t.Run("minimum summed pieces across operations", func(t *testing.T) {
		rows := []production.ProductionOperation{
			{OperationID: "cut", PiecesDone: 120},
			{OperationID: "stitch", PiecesDone: 95},
			{OperationID: "pack", PiecesDone: 130},
		}
		assert.Equal(t, 95, BottleneckFinishedPieces(rows))
	})

	t.Run("sums rows of the same operation before taking the minimum", func(t *testing.T) {
		rows := []production.ProductionOperation{
			{OperationID: "cut", PiecesDone: 60},
			{OperationID: "cut", PiecesDone: 60},
			{OperationID: "stitch", PiecesDone: 100},
		}
		assert.Equal(t, 100, BottleneckFinishedPieces(rows))
	})

	t.Run("an operation with zero pieces bounds the total at zero", func(t *testing.T) {
		rows := []production.ProductionOperation{
			{OperationID: "cut", PiecesDone: 120},
			{OperationID: "stitch", PiecesDone: 0},
		}
		assert.Equal(t, 0, BottleneckFinishedPieces(rows))
	})

	t.Run("empty input returns zero", func(t *testing.T) {
		assert.Equal(t, 0, BottleneckFinishedPieces(nil))
	})
}

func TestOperationExpenseBreakdown(t *testing.T) {
	t.Run("groups by operation display name", func(t *testing.T) {
		records := []piecework.WorkerSalary{
			{OperationName: strPtr("Cutting"), PiecesDone: 50, TotalAmount: d("250")},
			{OperationName: strPtr("Stitching"), PiecesDone: 30, TotalAmount: d("300")},
			{OperationName: strPtr("Cutting"), PiecesDone: 25, TotalAmount: d("125")},
		}

		breakdown := OperationExpenseBreakdown(records)
		require.Len(t, breakdown, 2)

		assert.Equal(t, 75, breakdown["Cutting"].Pieces)
		assert.Equal(t, "375", breakdown["Cutting"].Cost.String())
		assert.Equal(t, 30, breakdown["Stitching"].Pieces)
	})

	t.Run("missing operation name falls under unknown", func(t *testing.T) {
		records := []piecework.WorkerSalary{
			{OperationName: nil, PiecesDone: 10, TotalAmount: d("50")},
		}

		breakdown := OperationExpenseBreakdown(records)
		assert.Equal(t, 10, breakdown["unknown"].Pieces)
	})
}
