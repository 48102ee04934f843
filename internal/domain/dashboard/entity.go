package dashboard

// Counts are the headline numbers on the dashboard.
type Counts struct {
	ActiveEmployees int64
	ActiveWorkers   int64
	OpenProductions int64
}
