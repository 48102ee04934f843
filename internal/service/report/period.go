package report

import (
	"math"
	"time"

	"github.com/stitchline/garment-erp-go/internal/domain/report"
)

// weekOf buckets a date into a week number within its year. The formula is
// ceil((dayOfYear + weekday of Jan 1) / 7) with Sunday as weekday 0. This is
// deliberately not ISO-8601: week 1 starts on Jan 1 and weeks break on
// Sunday, so two dates seven days apart can land in different buckets.
func weekOf(t time.Time) int {
	jan1 := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	return (t.YearDay() + int(jan1.Weekday()) + 6) / 7
}

// InPeriod reports whether recordDate falls in the same daily, weekly,
// monthly or yearly bucket as referenceDate. A zero recordDate never matches.
func InPeriod(recordDate time.Time, period report.Period, referenceDate time.Time) bool {
	if recordDate.IsZero() {
		return false
	}

	switch period {
	case report.PeriodDaily:
		return recordDate.Year() == referenceDate.Year() &&
			recordDate.YearDay() == referenceDate.YearDay()
	case report.PeriodWeekly:
		return recordDate.Year() == referenceDate.Year() &&
			weekOf(recordDate) == weekOf(referenceDate)
	case report.PeriodMonthly:
		return recordDate.Year() == referenceDate.Year() &&
			recordDate.Month() == referenceDate.Month()
	case report.PeriodYearly:
		return recordDate.Year() == referenceDate.Year()
	}
	return false
}

// piecesPerRecordTarget is the assumed output per piece-entry record used by
// the efficiency metric. The value 10 is a fixed operating assumption.
const piecesPerRecordTarget = 10

// Efficiency scores a set of piece-entry records against the fixed
// per-record target, as a rounded percentage. 100 means the records averaged
// exactly the target; the score is uncapped.
func Efficiency(sumPieces, recordCount int) int {
	target := recordCount * piecesPerRecordTarget
	if target < 1 {
		target = 1
	}
	return int(math.Round(float64(sumPieces) / float64(target) * 100))
}
