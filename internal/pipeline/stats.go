package pipeline

// RunStats tracks aggregate counters across a batch run. Dry-run renames
// count as renamed so a dry run previews the real summary.
type RunStats struct {
	Total   int
	Current int
	Renamed int
	Skipped int
	Exists  int
	Failed  int
}

// count folds one per-file status into the counters. Every status variant
// lands in exactly one bucket.
func (s *RunStats) count(status string) {
	switch status {
	case statusRenamed, statusRenamedDry:
		s.Renamed++
	case statusExists:
		s.Exists++
	case statusFailed:
		s.Failed++
	default:
		s.Skipped++
	}
}
