package piecework

import "errors"

var (
	ErrWorkerSalaryNotFound = errors.New("worker salary record not found")
	ErrRecordAlreadyPaid    = errors.New("worker salary record already paid, cannot modify")
)
