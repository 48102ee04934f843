package salary

import (
	"github.com/shopspring/decimal"
)

// DailySalary is the base monthly salary spread over the calendar days of the
// month (28-31), not over the number of recorded attendance days.
func DailySalary(baseSalary decimal.Decimal, calendarDays int) decimal.Decimal {
	if calendarDays <= 0 {
		return decimal.Zero
	}
	return baseSalary.Div(decimal.NewFromInt(int64(calendarDays)))
}

// GrossSalary pays present and leave days at the daily rate; absent days
// contribute zero. Rounded to 2 decimals.
func GrossSalary(baseSalary decimal.Decimal, calendarDays, presentDays, leaveDays int) decimal.Decimal {
	daily := DailySalary(baseSalary, calendarDays)
	paidDays := decimal.NewFromInt(int64(presentDays + leaveDays))
	return daily.Mul(paidDays).Round(2)
}

// NetSalary holds the invariant net = gross - advance.
func NetSalary(gross, advance decimal.Decimal) decimal.Decimal {
	return gross.Sub(advance).Round(2)
}
