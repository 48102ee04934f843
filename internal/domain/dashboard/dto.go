package dashboard

import (
	"github.com/shopspring/decimal"
)

// ProductionProgress is one production with its bottleneck finished-pieces
// metric: the minimum summed pieces across the production's operations.
type ProductionProgress struct {
	ProductionID   string  `json:"production_id"`
	OrderNo        string  `json:"order_no"`
	ProductName    *string `json:"product_name,omitempty"`
	TotalQuantity  int     `json:"total_quantity"`
	FinishedPieces int     `json:"finished_pieces"`
}

type Summary struct {
	ActiveEmployees int64                `json:"active_employees"`
	ActiveWorkers   int64                `json:"active_workers"`
	OpenProductions int64                `json:"open_productions"`
	MonthPieces     int                  `json:"month_pieces"`
	MonthExpense    decimal.Decimal      `json:"month_expense"`
	Productions     []ProductionProgress `json:"productions"`
}
