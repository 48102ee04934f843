package piecework

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stitchline/garment-erp-go/internal/pkg/validator"
)

// RecordPiecesRequest is the piece-entry action: a supervisor records pieces
// completed by a worker for an operation on a date. The piece rate comes from
// the operation master; TotalAmount may override the computed value.
type RecordPiecesRequest struct {
	WorkerID     string           `json:"worker_id"`
	OperationID  string           `json:"operation_id"`
	ProductionID *string          `json:"production_id,omitempty"`
	Date         string           `json:"date"` // "2006-01-02"
	PiecesDone   int              `json:"pieces_done"`
	TotalAmount  *decimal.Decimal `json:"total_amount,omitempty"`
}

func (r *RecordPiecesRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{Field: "worker_id", Message: "is required"})
	}
	if validator.IsEmpty(r.OperationID) {
		errs = append(errs, validator.ValidationError{Field: "operation_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if r.PiecesDone <= 0 {
		errs = append(errs, validator.ValidationError{Field: "pieces_done", Message: "must be positive"})
	}
	if r.TotalAmount != nil && r.TotalAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "total_amount", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MarkPaidRequest flips worker salary records to paid. Every id is
// UUID-validated before any write.
type MarkPaidRequest struct {
	IDs []string `json:"ids"`
}

func (r *MarkPaidRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.IDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "ids", Message: "at least one id is required"})
	}
	for i, id := range r.IDs {
		if _, err := uuid.Parse(id); err != nil {
			errs = append(errs, validator.ValidationError{Field: "ids[" + validator.Itoa(i) + "]", Message: "is not a valid UUID"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MarkPaidResult struct {
	Requested int64 `json:"requested"`
	Affected  int64 `json:"affected"`
	Skipped   int64 `json:"skipped"`
}

type WorkerSalaryResponse struct {
	ID             string          `json:"id"`
	WorkerID       string          `json:"worker_id"`
	WorkerName     *string         `json:"worker_name,omitempty"`
	OperationID    string          `json:"operation_id"`
	OperationName  *string         `json:"operation_name,omitempty"`
	ProductID      string          `json:"product_id"`
	ProductName    *string         `json:"product_name,omitempty"`
	Date           string          `json:"date"`
	PiecesDone     int             `json:"pieces_done"`
	AmountPerPiece decimal.Decimal `json:"amount_per_piece"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	Paid           bool            `json:"paid"`
	PaidDate       *string         `json:"paid_date,omitempty"`
}

type WorkerSalaryFilter struct {
	WorkerID    *string
	OperationID *string
	ProductID   *string
	StartDate   *string
	EndDate     *string
	Paid        *bool
	Page        int
	Limit       int
	SortOrder   string
}
