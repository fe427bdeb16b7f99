package worker

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"url-checker/internal/config"
	"url-checker/internal/domain"
	"url-checker/internal/probe"
)

var Module = fx.Options(
	fx.Provide(func(
		cfg *config.Config,
		prober *probe.RetryProber,
		observer domain.ProgressObserver,
		metrics domain.MetricsCollector,
		logger *zap.Logger,
	) *Pool {
		return NewPool(cfg, prober, observer, metrics, logger)
	}),
)
