package attendance

import (
	"time"
)

type PersonType string

const (
	PersonTypeEmployee PersonType = "employee"
	PersonTypeWorker   PersonType = "worker"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLeave   Status = "leave"
)

// Record is one person's attendance for one calendar day.
// (person_type, person_id, date) is the natural key; the latest write wins.
type Record struct {
	ID         string
	PersonType PersonType
	PersonID   string
	Date       time.Time
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	PersonName *string
}

// StatusCounts are per-status record counts over a date range.
type StatusCounts struct {
	Present int
	Absent  int
	Leave   int
}

func (c StatusCounts) Recorded() int {
	return c.Present + c.Absent + c.Leave
}

// MonthSummary is the attendance summary for one person and one calendar month.
type MonthSummary struct {
	TotalDays  int     `json:"total_days"`
	Present    int     `json:"present"`
	Absent     int     `json:"absent"`
	Leave      int     `json:"leave"`
	Percentage float64 `json:"percentage"`
}
