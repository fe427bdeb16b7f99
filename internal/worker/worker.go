package worker

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"
	"url-checker/internal/domain"
	"url-checker/internal/probe"
)

// worker pulls tasks from the shared jobs channel one at a time, in FIFO
// pull order, until the channel is drained or the context is cancelled.
type worker struct {
	id       int
	jobs     <-chan domain.Task
	results  chan<- domain.Result
	prober   probe.Prober
	observer domain.ProgressObserver
	metrics  domain.MetricsCollector
	logger   *zap.Logger
}

func newWorker(
	id int,
	jobs <-chan domain.Task,
	results chan<- domain.Result,
	prober probe.Prober,
	observer domain.ProgressObserver,
	metrics domain.MetricsCollector,
	logger *zap.Logger,
) *worker {
	return &worker{
		id:       id,
		jobs:     jobs,
		results:  results,
		prober:   prober,
		observer: observer,
		metrics:  metrics,
		logger:   logger.With(zap.Int("worker_id", id)),
	}
}

func (w *worker) run(ctx context.Context) {
	w.logger.Debug("worker started")
	w.metrics.RecordWorkerStart(strconv.Itoa(w.id))
	defer func() {
		w.metrics.RecordWorkerStop(strconv.Itoa(w.id))
		w.logger.Debug("worker stopped")
	}()

	for {
		select {
		case task, ok := <-w.jobs:
			if !ok {
				return
			}
			w.process(ctx, task)
		case <-ctx.Done():
			w.logger.Debug("context cancelled", zap.Error(ctx.Err()))
			return
		}
	}
}

// process runs the retrying probe for one task and hands the Result to the
// shared sink. A failed probe terminates in a Result, never an error: one
// URL's failure must not affect any other URL's processing.
func (w *worker) process(ctx context.Context, task domain.Task) {
	outcome := w.prober.Probe(ctx, task.URL)

	result := domain.Result{
		Index:      task.Index,
		URL:        task.URL,
		StatusCode: outcome.StatusCode,
		Error:      outcome.Error,
		Duration:   outcome.Elapsed,
		Timestamp:  time.Now(),
	}

	if result.OK() {
		w.logger.Debug("check completed",
			zap.String("url", task.URL),
			zap.Int("status", result.StatusCode),
			zap.Duration("elapsed", result.Duration))
	} else {
		w.logger.Debug("check failed",
			zap.String("url", task.URL),
			zap.String("error", result.Error),
			zap.Duration("elapsed", result.Duration))
	}

	w.metrics.RecordCheck(result)
	if w.observer != nil {
		w.observer.Completed(result)
	}
	w.results <- result
}
