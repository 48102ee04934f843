package attendance

import (
	"github.com/stitchline/garment-erp-go/internal/pkg/validator"
)

type MarkEntry struct {
	PersonID string `json:"person_id"`
	Status   string `json:"status"`
}

// MarkDayRequest records attendance for one date across many people at once.
type MarkDayRequest struct {
	Date       string      `json:"date"` // "2006-01-02"
	PersonType string      `json:"person_type"`
	Entries    []MarkEntry `json:"entries"`
}

var validStatuses = []string{string(StatusPresent), string(StatusAbsent), string(StatusLeave)}

func (r *MarkDayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if r.PersonType != string(PersonTypeEmployee) && r.PersonType != string(PersonTypeWorker) {
		errs = append(errs, validator.ValidationError{Field: "person_type", Message: "must be 'employee' or 'worker'"})
	}
	if len(r.Entries) == 0 {
		errs = append(errs, validator.ValidationError{Field: "entries", Message: "at least one entry is required"})
	}
	for i, e := range r.Entries {
		if validator.IsEmpty(e.PersonID) {
			errs = append(errs, validator.ValidationError{Field: "entries[" + validator.Itoa(i) + "].person_id", Message: "is required"})
		}
		if !validator.IsInSlice(e.Status, validStatuses) {
			errs = append(errs, validator.ValidationError{Field: "entries[" + validator.Itoa(i) + "].status", Message: "must be 'present', 'absent' or 'leave'"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MarkDayResult reports how many rows the bulk upsert touched.
type MarkDayResult struct {
	Date     string `json:"date"`
	Affected int    `json:"affected"`
}

type RecordResponse struct {
	ID         string  `json:"id"`
	PersonType string  `json:"person_type"`
	PersonID   string  `json:"person_id"`
	PersonName *string `json:"person_name,omitempty"`
	Date       string  `json:"date"`
	Status     string  `json:"status"`
}

type RecordFilter struct {
	PersonType *string
	PersonID   *string
	StartDate  *string
	EndDate    *string
	Status     *string
	Page       int
	Limit      int
	SortOrder  string
}
