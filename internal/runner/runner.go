package runner

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"url-checker/internal/config"
	"url-checker/internal/domain"
	"url-checker/internal/report"
	"url-checker/internal/worker"
)

// Runner drives one check run end to end: fan the URL list out through the
// pool, aggregate, persist, then ask fx to shut the process down.
type Runner struct {
	pool       *worker.Pool
	aggregator *report.Aggregator
	writer     *report.Writer
	cfg        *config.Config
	logger     *zap.Logger
	shutdowner fx.Shutdowner
	cancel     context.CancelFunc
	done       chan struct{}
}

func New(
	pool *worker.Pool,
	aggregator *report.Aggregator,
	writer *report.Writer,
	cfg *config.Config,
	logger *zap.Logger,
	shutdowner fx.Shutdowner,
) *Runner {
	return &Runner{
		pool:       pool,
		aggregator: aggregator,
		writer:     writer,
		cfg:        cfg,
		logger:     logger,
		shutdowner: shutdowner,
		done:       make(chan struct{}),
	}
}

// Start launches the run in the background; the startup context is only
// for fx's own start deadline.
func (r *Runner) Start(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel

	go r.run(runCtx)
	return nil
}

func (r *Runner) run(ctx context.Context) {
	defer close(r.done)

	tasks := make([]domain.Task, len(r.cfg.URLs))
	for i, u := range r.cfg.URLs {
		tasks[i] = domain.Task{Index: i, URL: u}
	}

	start := time.Now()
	results := r.pool.Run(ctx, tasks)
	r.aggregator.Collect(results)

	if err := r.writer.Write(r.aggregator.Document()); err != nil {
		r.logger.Error("failed to write report", zap.Error(err))
	}

	r.logger.Info("run completed",
		zap.Int("urls", len(tasks)),
		zap.Int("results", len(results)),
		zap.Duration("elapsed", time.Since(start)))

	if err := r.shutdowner.Shutdown(); err != nil {
		r.logger.Error("failed to request shutdown", zap.Error(err))
	}
}

// Stop cancels an in-flight run and waits for it to wind down.
func (r *Runner) Stop(ctx context.Context) error {
	if r.cancel != nil {
		r.cancel()
	}

	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("timed out waiting for run to finish: %w", ctx.Err())
	}
}
