package bench

import (
	"sort"
	"time"
)

// Report is the aggregated outcome of a benchmark sweep. Records are held in
// rank order once rank has been applied.
type Report struct {
	Budget       time.Duration `json:"budgetNs"`
	StartedAt    time.Time     `json:"startedAt"`
	TotalElapsed time.Duration `json:"totalElapsedNs"`
	Records      []RunRecord   `json:"records"`
}

// rank orders the records by benchmark performance. The ordering is total:
// failed runs sort after successful ones, then higher step counts win, then
// higher reached indices, and finally registration order breaks remaining
// ties so equal inputs always produce the same ranking.
func (r *Report) rank() {
	sort.SliceStable(r.Records, func(i, j int) bool {
		a, b := r.Records[i], r.Records[j]
		if a.Failed() != b.Failed() {
			return !a.Failed()
		}
		if a.Steps != b.Steps {
			return a.Steps > b.Steps
		}
		if a.MaxIndex != b.MaxIndex {
			return a.MaxIndex > b.MaxIndex
		}
		return a.position < b.position
	})
}

// Aggregate builds a ranked report from a set of finished records. It is the
// entry point for callers that collected records outside a Runner sweep.
func Aggregate(budget time.Duration, records []RunRecord) *Report {
	report := &Report{
		Budget:  budget,
		Records: append([]RunRecord(nil), records...),
	}
	report.rank()
	return report
}

// Winner returns the top-ranked successful record, or false when every run
// failed or the report is empty.
func (r *Report) Winner() (RunRecord, bool) {
	if len(r.Records) == 0 || r.Records[0].Failed() {
		return RunRecord{}, false
	}
	return r.Records[0], true
}

// FailureCount returns how many runs ended in Errored or ValidationFailed.
func (r *Report) FailureCount() int {
	n := 0
	for _, rec := range r.Records {
		if rec.Failed() {
			n++
		}
	}
	return n
}

// HasStatus reports whether any record ended with the given status.
func (r *Report) HasStatus(s Status) bool {
	for _, rec := range r.Records {
		if rec.Status == s {
			return true
		}
	}
	return false
}
