package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/stitchline/garment-erp-go/internal/domain/report"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestInPeriodDaily(t *testing.T) {
	ref := day(2024, time.March, 20)

	assert.True(t, InPeriod(day(2024, time.March, 20), report.PeriodDaily, ref))
	assert.False(t, InPeriod(day(2024, time.March, 19), report.PeriodDaily, ref))
	assert.False(t, InPeriod(day(2023, time.March, 20), report.PeriodDaily, ref))
}

func TestInPeriodMonthly(t *testing.T) {
	rec := day(2024, time.March, 15)

	assert.True(t, InPeriod(rec, report.PeriodMonthly, day(2024, time.March, 20)))
	assert.False(t, InPeriod(rec, report.PeriodMonthly, day(2024, time.April, 1)))
	assert.False(t, InPeriod(rec, report.PeriodMonthly, day(2023, time.March, 20)))
}

func TestInPeriodYearly(t *testing.T) {
	rec := day(2024, time.June, 1)

	assert.True(t, InPeriod(rec, report.PeriodYearly, day(2024, time.December, 31)))
	assert.False(t, InPeriod(rec, report.PeriodYearly, day(2025, time.January, 1)))
}

func TestInPeriodWeekly(t *testing.T) {
	// 2024 begins on a Monday, so weekday(Jan 1) = 1 and
	// week = ceil((dayOfYear + 1) / 7). Weeks break after each Saturday.
	t.Run("same bucket within a week", func(t *testing.T) {
		// Jan 2 (day 2 -> week 1) and Jan 6 (day 6 -> week 1).
		assert.True(t, InPeriod(day(2024, time.January, 2), report.PeriodWeekly, day(2024, time.January, 6)))
	})

	t.Run("bucket rolls over after Saturday", func(t *testing.T) {
		// Jan 6 (day 6 -> ceil(7/7) = 1) vs Jan 7 (day 7 -> ceil(8/7) = 2).
		assert.False(t, InPeriod(day(2024, time.January, 6), report.PeriodWeekly, day(2024, time.January, 7)))
	})

	t.Run("seven days apart always differ", func(t *testing.T) {
		// The formula advances exactly one bucket per seven days, so dates a
		// week apart never share a bucket even mid-month.
		assert.False(t, InPeriod(day(2024, time.March, 12), report.PeriodWeekly, day(2024, time.March, 19)))
	})

	t.Run("different years never match", func(t *testing.T) {
		assert.False(t, InPeriod(day(2023, time.December, 31), report.PeriodWeekly, day(2024, time.January, 1)))
	})
}

func TestInPeriodZeroDate(t *testing.T) {
	assert.False(t, InPeriod(time.Time{}, report.PeriodYearly, day(1, time.January, 1)))
}

func TestWeekOf(t *testing.T) {
	// 2022 begins on a Saturday: weekday(Jan 1) = 6.
	// Jan 1: ceil((1+6)/7) = 1. Jan 2: ceil((2+6)/7) = 2.
	assert.Equal(t, 1, weekOf(day(2022, time.January, 1)))
	assert.Equal(t, 2, weekOf(day(2022, time.January, 2)))

	// 2024 begins on a Monday: weekday(Jan 1) = 1.
	assert.Equal(t, 1, weekOf(day(2024, time.January, 1)))
	assert.Equal(t, 1, weekOf(day(2024, time.January, 6)))
	assert.Equal(t, 2, weekOf(day(2024, time.January, 7)))
}

func TestEfficiency(t *testing.T) {
	tests := []struct {
		name        string
		sumPieces   int
		recordCount int
		want        int
	}{
		{"on target", 100, 10, 100},
		{"half target", 50, 10, 50},
		{"above target uncapped", 250, 10, 250},
		{"zero records guards the divisor", 0, 0, 0},
		{"pieces with zero records", 5, 0, 500},
		{"rounds to nearest", 47, 9, 52},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Efficiency(tt.sumPieces, tt.recordCount))
		})
	}
}
