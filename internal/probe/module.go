package probe

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"url-checker/internal/config"
	"url-checker/internal/domain"
)

// Module exports the probe components
var Module = fx.Options(
	fx.Provide(func(cfg *config.Config, logger *zap.Logger) Prober {
		return NewHTTPProber(cfg.Workers.Timeout, logger)
	}),
	fx.Provide(func(p Prober, cfg *config.Config, metrics domain.MetricsCollector, logger *zap.Logger) *RetryProber {
		return NewRetryProber(p, cfg.Workers.MaxRetries, metrics, logger)
	}),
)
