package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for attendance operations.
type AttendanceService interface {
	// MarkDay records attendance for a batch of people on one date.
	MarkDay(ctx context.Context, req MarkDayRequest) (MarkDayResult, error)

	// Summarize returns nil only on a query-level failure; a month without
	// records yields a zero-count summary.
	Summarize(ctx context.Context, personType PersonType, personID string, month time.Month, year int) (*MonthSummary, error)

	List(ctx context.Context, filter RecordFilter) ([]RecordResponse, int64, error)

	Delete(ctx context.Context, id string) error
}
