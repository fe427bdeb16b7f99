package report

import (
	"sort"
	"time"

	"url-checker/internal/domain"
)

// Entry is one element of the persisted document. Status and Error are
// mutually exclusive: Status is set only when the probe received an HTTP
// status line, Error only on transport failure.
type Entry struct {
	URL       string    `json:"url"`
	Status    *int      `json:"status,omitempty"`
	Error     string    `json:"error,omitempty"`
	TimeMS    int64     `json:"time_ms"`
	Timestamp time.Time `json:"timestamp"`
}

// Aggregator owns the run's Results once the pool hands them over. The
// live progress stream is completion-ordered; the aggregated collection is
// re-sorted by input order so the persisted document is deterministic.
type Aggregator struct {
	results []domain.Result
}

func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Collect takes ownership of results, in any order.
func (a *Aggregator) Collect(results []domain.Result) {
	a.results = append(a.results, results...)
	sort.SliceStable(a.results, func(i, j int) bool {
		return a.results[i].Index < a.results[j].Index
	})
}

// Results returns the collected Results sorted by input order.
func (a *Aggregator) Results() []domain.Result {
	return append([]domain.Result(nil), a.results...)
}

// Document converts the collection into its persistable form.
func (a *Aggregator) Document() []Entry {
	entries := make([]Entry, 0, len(a.results))
	for _, r := range a.results {
		entry := Entry{
			URL:       r.URL,
			TimeMS:    r.Duration.Milliseconds(),
			Timestamp: r.Timestamp,
		}
		if r.OK() {
			status := r.StatusCode
			entry.Status = &status
		} else {
			entry.Error = r.Error
		}
		entries = append(entries, entry)
	}
	return entries
}
