package entity

// RunSummary accumulates counters over a single run. A batch whose
// check could not be completed (retries exhausted, unexpected status,
// malformed response) is counted in IncompleteBatches so it stays
// distinguishable from a genuine clean scan.
type RunSummary struct {
	TotalChecked      int
	Batches           int
	Matches           int
	IncompleteBatches int
	Skipped           int
}
