package probe

import (
	"context"
	"time"

	"go.uber.org/zap"
	"url-checker/internal/domain"
)

const defaultRetryDelay = 100 * time.Millisecond

// RetryProber wraps a Prober with a fixed-delay retry budget: one initial
// attempt plus up to maxRetries more on failure. It returns the LAST
// attempt's outcome and elapsed time only; earlier timings are discarded.
// It is strictly sequential and never spawns goroutines, so a retry delay
// blocks only the calling worker's lane.
type RetryProber struct {
	inner      Prober
	maxRetries int
	delay      time.Duration
	metrics    domain.MetricsCollector
	logger     *zap.Logger
}

func NewRetryProber(
	inner Prober,
	maxRetries int,
	metrics domain.MetricsCollector,
	logger *zap.Logger,
) *RetryProber {
	return &RetryProber{
		inner:      inner,
		maxRetries: maxRetries,
		delay:      defaultRetryDelay,
		metrics:    metrics,
		logger:     logger,
	}
}

func (r *RetryProber) Probe(ctx context.Context, url string) domain.Outcome {
	var last domain.Outcome

	for attempt := 0; attempt <= r.maxRetries; attempt++ {
		if attempt > 0 {
			r.metrics.RecordRetry(url)
			r.logger.Debug("retrying probe",
				zap.String("url", url),
				zap.Int("attempt", attempt+1))

			select {
			case <-ctx.Done():
				return last
			case <-time.After(r.delay):
			}
		}

		last = r.inner.Probe(ctx, url)
		if last.OK() {
			return last
		}
	}

	return last
}
