package piecework

import (
	"github.com/shopspring/decimal"

	"github.com/stitchline/garment-erp-go/internal/domain/piecework"
	"github.com/stitchline/garment-erp-go/internal/domain/production"
)

// AggregateByWorker groups records by worker, summing pieces and earnings.
// The aggregate is paid only when every contributing record is paid. Workers
// appear in first-seen order.
func AggregateByWorker(records []piecework.WorkerSalary) []piecework.WorkerAggregate {
	index := make(map[string]int)
	aggregates := make([]piecework.WorkerAggregate, 0)

	for _, rec := range records {
		i, ok := index[rec.WorkerID]
		if !ok {
			agg := piecework.WorkerAggregate{
				WorkerID:    rec.WorkerID,
				TotalAmount: decimal.Zero,
				Paid:        true,
			}
			if rec.WorkerName != nil {
				agg.WorkerName = *rec.WorkerName
			}
			aggregates = append(aggregates, agg)
			i = len(aggregates) - 1
			index[rec.WorkerID] = i
		}
		aggregates[i].TotalPieces += rec.PiecesDone
		aggregates[i].TotalAmount = aggregates[i].TotalAmount.Add(rec.TotalAmount)
		aggregates[i].Paid = aggregates[i].Paid && rec.Paid
	}

	return aggregates
}

// BottleneckFinishedPieces sums pieces per operation and returns the minimum
// sum. A piece counts as finished only once every operation has processed it,
// so the slowest operation bounds the total. Empty input yields 0.
func BottleneckFinishedPieces(rows []production.ProductionOperation) int {
	sums := make(map[string]int)
	for _, row := range rows {
		sums[row.OperationID] += row.PiecesDone
	}

	if len(sums) == 0 {
		return 0
	}

	first := true
	minPieces := 0
	for _, sum := range sums {
		if first || sum < minPieces {
			minPieces = sum
			first = false
		}
	}
	return minPieces
}

// OperationExpenseBreakdown groups records by operation display name, summing
// cost and pieces. Records without a joined operation name fall under "unknown".
func OperationExpenseBreakdown(records []piecework.WorkerSalary) map[string]piecework.OperationExpense {
	breakdown := make(map[string]piecework.OperationExpense)
	for _, rec := range records {
		name := "unknown"
		if rec.OperationName != nil && *rec.OperationName != "" {
			name = *rec.OperationName
		}
		entry := breakdown[name]
		entry.Cost = entry.Cost.Add(rec.TotalAmount)
		entry.Pieces += rec.PiecesDone
		breakdown[name] = entry
	}
	return breakdown
}
