package app

import (
	"context"
	"os"
	"time"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"url-checker/internal/common"
	"url-checker/internal/config"
	"url-checker/internal/domain"
	"url-checker/internal/metrics"
	"url-checker/internal/probe"
	"url-checker/internal/progress"
	"url-checker/internal/report"
	"url-checker/internal/runner"
	"url-checker/internal/worker"
)

type Application struct {
	app    *fx.App
	logger *zap.Logger
}

func NewApplication(opts ...common.Option) *Application {
	options := &common.ServiceOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Ensure required options are set
	if options.Logger == nil {
		options.Logger = zap.NewNop()
	}

	app := &Application{
		logger: options.Logger,
	}

	modules := []fx.Option{
		// Core modules
		metrics.Module,
		probe.Module,
		worker.Module,
		report.Module,
		runner.Module,

		// Provide base dependencies
		fx.Provide(
			func() *zap.Logger { return options.Logger },
			func() *config.Config { return options.Config },
			func() string { return options.Env },
		),

		// Configure fx
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),

		// Set timeouts
		fx.StopTimeout(30 * time.Second),
		fx.StartTimeout(30 * time.Second),

		// Register lifecycle hooks
		fx.Invoke(app.registerHooks),
	}

	// The default observer streams progress to stdout; tests swap it out.
	if options.Observer != nil {
		modules = append(modules, fx.Provide(func() domain.ProgressObserver { return options.Observer }))
	} else {
		modules = append(modules, progress.Module)
	}

	app.app = fx.New(modules...)

	return app
}

func (a *Application) Start(ctx context.Context) error {
	return a.app.Start(ctx)
}

func (a *Application) Stop(ctx context.Context) error {
	return a.app.Stop(ctx)
}

// Done signals when the run has completed (via the Shutdowner) or the
// process received SIGINT/SIGTERM.
func (a *Application) Done() <-chan os.Signal {
	return a.app.Done()
}

func (a *Application) registerHooks(lc fx.Lifecycle) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			a.logger.Info("starting application")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			a.logger.Info("stopping application")
			return nil
		},
	})
}
