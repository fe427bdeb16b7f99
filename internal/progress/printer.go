package progress

import (
	"fmt"
	"io"
	"sync"
	"time"

	"url-checker/internal/domain"
)

// Printer streams one line per completed URL, in true completion order.
// Writes are serialized so lines from different workers never interleave.
type Printer struct {
	mu  sync.Mutex
	out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

func (p *Printer) Completed(r domain.Result) {
	p.mu.Lock()
	defer p.mu.Unlock()

	ts := r.Timestamp.Format(time.RFC3339)
	if r.OK() {
		fmt.Fprintf(p.out, "[%s] %s => %d (%dms)\n", ts, r.URL, r.StatusCode, r.Duration.Milliseconds())
	} else {
		fmt.Fprintf(p.out, "[%s] %s => ERROR: %s\n", ts, r.URL, r.Error)
	}
}
