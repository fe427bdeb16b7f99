package worker

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"url-checker/internal/config"
	"url-checker/internal/domain"
	"url-checker/internal/probe"
)

// Pool fans a task list out across a fixed number of workers pulling from
// a shared channel. Slow URLs on one worker never starve the others: each
// worker picks up the next available task as soon as it finishes.
type Pool struct {
	prober   probe.Prober
	observer domain.ProgressObserver
	metrics  domain.MetricsCollector
	logger   *zap.Logger
	count    int
}

func NewPool(
	cfg *config.Config,
	prober probe.Prober,
	observer domain.ProgressObserver,
	metrics domain.MetricsCollector,
	logger *zap.Logger,
) *Pool {
	count := cfg.Workers.Count
	if count < 1 {
		count = 1
	}

	return &Pool{
		prober:   prober,
		observer: observer,
		metrics:  metrics,
		logger:   logger,
		count:    count,
	}
}

// Run blocks until every task has a Result and returns them in completion
// order. Workers with no work left exit immediately, so a pool larger than
// the task list degrades gracefully. If ctx is cancelled mid-run the
// remaining tasks are abandoned and the Results collected so far are
// returned.
func (p *Pool) Run(ctx context.Context, tasks []domain.Task) []domain.Result {
	jobs := make(chan domain.Task, len(tasks))
	results := make(chan domain.Result, len(tasks))

	for _, task := range tasks {
		jobs <- task
		p.metrics.RecordEnqueued(task.URL)
	}
	close(jobs)

	p.logger.Info("worker pool started",
		zap.Int("worker_count", p.count),
		zap.Int("url_count", len(tasks)))

	var wg sync.WaitGroup
	for i := 0; i < p.count; i++ {
		w := newWorker(i, jobs, results, p.prober, p.observer, p.metrics, p.logger)
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.run(ctx)
		}()
	}

	wg.Wait()
	close(results)

	collected := make([]domain.Result, 0, len(tasks))
	for result := range results {
		collected = append(collected, result)
	}

	p.logger.Debug("worker pool drained",
		zap.Int("results", len(collected)))

	return collected
}
