package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for daily attendance records.
type AttendanceRepository interface {
	// UpsertDay writes records on the (person_type, person_id, date) key and
	// returns how many rows were written.
	UpsertDay(ctx context.Context, records []Record) (int, error)

	CountByStatus(ctx context.Context, personType PersonType, personID string, from, to time.Time) (StatusCounts, error)

	List(ctx context.Context, filter RecordFilter) ([]Record, int64, error)

	Delete(ctx context.Context, id string) error
}
