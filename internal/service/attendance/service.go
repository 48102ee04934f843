package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/stitchline/garment-erp-go/internal/domain/attendance"
	"github.com/stitchline/garment-erp-go/internal/pkg/database"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
	}
}

// MarkDay implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) MarkDay(ctx context.Context, req attendance.MarkDayRequest) (attendance.MarkDayResult, error) {
	if err := req.Validate(); err != nil {
		return attendance.MarkDayResult{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	records := make([]attendance.Record, 0, len(req.Entries))
	for _, e := range req.Entries {
		records = append(records, attendance.Record{
			PersonType: attendance.PersonType(req.PersonType),
			PersonID:   e.PersonID,
			Date:       date,
			Status:     attendance.Status(e.Status),
		})
	}

	affected, err := a.AttendanceRepository.UpsertDay(ctx, records)
	if err != nil {
		return attendance.MarkDayResult{}, fmt.Errorf("failed to mark attendance: %w", err)
	}

	return attendance.MarkDayResult{Date: req.Date, Affected: affected}, nil
}

// Summarize implements attendance.AttendanceService.
// A month with no recorded days yields a zero-count summary with 0%
// attendance, never a nil result.
func (a *AttendanceServiceImpl) Summarize(ctx context.Context, personType attendance.PersonType, personID string, month time.Month, year int) (*attendance.MonthSummary, error) {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)
	totalDays := monthEnd.Day()

	counts, err := a.AttendanceRepository.CountByStatus(ctx, personType, personID, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize attendance: %w", err)
	}

	return BuildMonthSummary(counts, totalDays), nil
}

// BuildMonthSummary turns raw status counts into a month summary. The
// percentage is present days over calendar days on a 0-100 scale, rounded
// to two decimals.
func BuildMonthSummary(counts attendance.StatusCounts, totalDays int) *attendance.MonthSummary {
	percentage := 0.0
	if totalDays > 0 {
		percentage = math.Round(float64(counts.Present)/float64(totalDays)*100*100) / 100
	}

	return &attendance.MonthSummary{
		TotalDays:  totalDays,
		Present:    counts.Present,
		Absent:     counts.Absent,
		Leave:      counts.Leave,
		Percentage: percentage,
	}
}

// List implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) List(ctx context.Context, filter attendance.RecordFilter) ([]attendance.RecordResponse, int64, error) {
	records, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.RecordResponse{
			ID:         rec.ID,
			PersonType: string(rec.PersonType),
			PersonID:   rec.PersonID,
			PersonName: rec.PersonName,
			Date:       rec.Date.Format("2006-01-02"),
			Status:     string(rec.Status),
		})
	}

	return responses, total, nil
}

// Delete implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	return a.AttendanceRepository.Delete(ctx, id)
}
