package domain

import (
	"time"
)

// Task is one URL to check, tagged with its position in the input list.
// The index survives into the Result so the final report can be ordered
// by input order regardless of completion order.
type Task struct {
	Index int
	URL   string
}

// Outcome is the raw result of a single probe attempt. Exactly one of
// StatusCode and Error is meaningful: a received HTTP status line is a
// success whatever the code, Error is reserved for transport failures.
type Outcome struct {
	StatusCode int
	Error      string
	Elapsed    time.Duration
}

func (o Outcome) OK() bool {
	return o.Error == ""
}

// Result is the final record for one URL after the retry budget is spent.
// Duration is the elapsed time of the attempt that produced the outcome,
// not the sum across retries.
type Result struct {
	Index      int
	URL        string
	StatusCode int
	Error      string
	Duration   time.Duration
	Timestamp  time.Time
}

func (r Result) OK() bool {
	return r.Error == ""
}
