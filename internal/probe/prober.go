package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
	"url-checker/internal/domain"
)

// Response bodies are drained up to this limit so connections can be
// reused; the probe itself only needs the status line.
const maxDrainBytes = 64 << 10

// Prober performs a single reachability check against one URL.
// Implementations must not retry; retry is RetryProber's responsibility.
type Prober interface {
	Probe(ctx context.Context, url string) domain.Outcome
}

type httpProber struct {
	client  *http.Client
	timeout time.Duration
	logger  *zap.Logger
}

// NewHTTPProber creates a Prober issuing one GET per invocation with the
// given per-request timeout. The timeout is enforced via context so a
// stalled response header terminates the attempt.
func NewHTTPProber(timeout time.Duration, logger *zap.Logger) Prober {
	return &httpProber{
		client: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 4,
				IdleConnTimeout:     60 * time.Second,
			},
		},
		timeout: timeout,
		logger:  logger.With(zap.String("component", "prober")),
	}
}

func (p *httpProber) Probe(ctx context.Context, rawURL string) domain.Outcome {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return domain.Outcome{
			Error:   fmt.Sprintf("invalid URL: %v", err),
			Elapsed: time.Since(start),
		}
	}

	resp, err := p.client.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		p.logger.Debug("probe failed",
			zap.String("url", rawURL),
			zap.Error(err))
		return domain.Outcome{
			Error:   describeError(err, p.timeout),
			Elapsed: elapsed,
		}
	}
	defer resp.Body.Close()

	// Any status line counts as reachable; 4xx/5xx are recorded verbatim.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))

	return domain.Outcome{
		StatusCode: resp.StatusCode,
		Elapsed:    elapsed,
	}
}
