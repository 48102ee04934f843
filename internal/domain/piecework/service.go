package piecework

import "context"

// PieceworkService defines business logic for piece-rate earnings.
type PieceworkService interface {
	// RecordPieces books pieces done by a worker and prices them from the
	// operation's rate unless the request overrides the amount.
	RecordPieces(ctx context.Context, req RecordPiecesRequest) (WorkerSalaryResponse, error)

	Get(ctx context.Context, id string) (WorkerSalaryResponse, error)

	List(ctx context.Context, filter WorkerSalaryFilter) ([]WorkerSalaryResponse, int64, error)

	MarkPaid(ctx context.Context, req MarkPaidRequest) (MarkPaidResult, error)

	Delete(ctx context.Context, id string) error
}
