package attendance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitchline/garment-erp-go/internal/domain/attendance"
)

type fakeAttendanceRepo struct {
	UpsertDayFn     func(ctx context.Context, records []attendance.Record) (int, error)
	CountByStatusFn func(ctx context.Context, personType attendance.PersonType, personID string, from, to time.Time) (attendance.StatusCounts, error)
	ListFn          func(ctx context.Context, filter attendance.RecordFilter) ([]attendance.Record, int64, error)
	DeleteFn        func(ctx context.Context, id string) error
}

func (f *fakeAttendanceRepo) UpsertDay(ctx context.Context, records []attendance.Record) (int, error) {
	return f.UpsertDayFn(ctx, records)
}

func (f *fakeAttendanceRepo) CountByStatus(ctx context.Context, personType attendance.PersonType, personID string, from, to time.Time) (attendance.StatusCounts, error) {
	return f.CountByStatusFn(ctx, personType, personID, from, to)
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.RecordFilter) ([]attendance.Record, int64, error) {
	return f.ListFn(ctx, filter)
}

func (f *fakeAttendanceRepo) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

func TestMarkDay(t *testing.T) {
	t.Run("upserts one record per entry", func(t *testing.T) {
		var got []attendance.Record
		repo := &fakeAttendanceRepo{
			UpsertDayFn: func(ctx context.Context, records []attendance.Record) (int, error) {
				got = records
				return len(records), nil
			},
		}
		svc := NewAttendanceService(nil, repo)

		result, err := svc.MarkDay(context.Background(), attendance.MarkDayRequest{
			Date:       "2025-03-10",
			PersonType: "worker",
			Entries: []attendance.MarkEntry{
				{PersonID: "w1", Status: "present"},
				{PersonID: "w2", Status: "absent"},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, 2, result.Affected)
		assert.Equal(t, "2025-03-10", result.Date)
		require.Len(t, got, 2)
		assert.Equal(t, attendance.PersonTypeWorker, got[0].PersonType)
		assert.Equal(t, attendance.StatusAbsent, got[1].Status)
		assert.Equal(t, "2025-03-10", got[0].Date.Format("2006-01-02"))
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		svc := NewAttendanceService(nil, &fakeAttendanceRepo{})

		_, err := svc.MarkDay(context.Background(), attendance.MarkDayRequest{
			Date:       "2025-03-10",
			PersonType: "worker",
			Entries:    []attendance.MarkEntry{{PersonID: "w1", Status: "holiday"}},
		})
		assert.Error(t, err)
	})

	t.Run("rejects empty entries", func(t *testing.T) {
		svc := NewAttendanceService(nil, &fakeAttendanceRepo{})

		_, err := svc.MarkDay(context.Background(), attendance.MarkDayRequest{
			Date:       "2025-03-10",
			PersonType: "employee",
		})
		assert.Error(t, err)
	})
}

func TestSummarize(t *testing.T) {
	t.Run("month without records yields zero summary, not nil", func(t *testing.T) {
		repo := &fakeAttendanceRepo{
			CountByStatusFn: func(ctx context.Context, pt attendance.PersonType, pid string, from, to time.Time) (attendance.StatusCounts, error) {
				return attendance.StatusCounts{}, nil
			},
		}
		svc := NewAttendanceService(nil, repo)

		summary, err := svc.Summarize(context.Background(), attendance.PersonTypeEmployee, "e1", time.February, 2025)
		require.NoError(t, err)
		require.NotNil(t, summary)

		assert.Equal(t, 28, summary.TotalDays)
		assert.Equal(t, 0, summary.Present)
		assert.Equal(t, 0, summary.Absent)
		assert.Equal(t, 0, summary.Leave)
		assert.Equal(t, 0.0, summary.Percentage)
	})

	t.Run("percentage is present over calendar days", func(t *testing.T) {
		repo := &fakeAttendanceRepo{
			CountByStatusFn: func(ctx context.Context, pt attendance.PersonType, pid string, from, to time.Time) (attendance.StatusCounts, error) {
				return attendance.StatusCounts{Present: 20, Absent: 3, Leave: 2}, nil
			},
		}
		svc := NewAttendanceService(nil, repo)

		summary, err := svc.Summarize(context.Background(), attendance.PersonTypeEmployee, "e1", time.April, 2025)
		require.NoError(t, err)

		assert.Equal(t, 30, summary.TotalDays)
		assert.Equal(t, 20, summary.Present)
		// 20/30 = 66.67 after rounding to two decimals
		assert.InDelta(t, 66.67, summary.Percentage, 0.001)
	})

	t.Run("queries the full calendar month", func(t *testing.T) {
		var gotFrom, gotTo time.Time
		repo := &fakeAttendanceRepo{
			CountByStatusFn: func(ctx context.Context, pt attendance.PersonType, pid string, from, to time.Time) (attendance.StatusCounts, error) {
				gotFrom, gotTo = from, to
				return attendance.StatusCounts{}, nil
			},
		}
		svc := NewAttendanceService(nil, repo)

		_, err := svc.Summarize(context.Background(), attendance.PersonTypeWorker, "w1", time.December, 2024)
		require.NoError(t, err)

		assert.Equal(t, "2024-12-01", gotFrom.Format("2006-01-02"))
		assert.Equal(t, "2024-12-31", gotTo.Format("2006-01-02"))
	})

	t.Run("propagates query failure as nil summary", func(t *testing.T) {
		repo := &fakeAttendanceRepo{
			CountByStatusFn: func(ctx context.Context, pt attendance.PersonType, pid string, from, to time.Time) (attendance.StatusCounts, error) {
				return attendance.StatusCounts{}, errors.New("connection refused")
			},
		}
		svc := NewAttendanceService(nil, repo)

		summary, err := svc.Summarize(context.Background(), attendance.PersonTypeEmployee, "e1", time.March, 2025)
		assert.Error(t, err)
		assert.Nil(t, summary)
	})
}

func TestBuildMonthSummary(t *testing.T) {
	t.Run("leap February counts 29 days", func(t *testing.T) {
		summary := BuildMonthSummary(attendance.StatusCounts{Present: 29}, 29)
		assert.Equal(t, 29, summary.TotalDays)
		assert.Equal(t, 100.0, summary.Percentage)
	})

	t.Run("zero total days does not divide by zero", func(t *testing.T) {
		summary := BuildMonthSummary(attendance.StatusCounts{}, 0)
		assert.Equal(t, 0.0, summary.Percentage)
	})
}
