package common

import (
	"go.uber.org/zap"
	"url-checker/internal/config"
	"url-checker/internal/domain"
)

// ServiceOptions defines common options for service constructors
type ServiceOptions struct {
	Logger   *zap.Logger
	Config   *config.Config
	Observer domain.ProgressObserver
	Env      string
}

// Option defines a service option modifier
type Option func(*ServiceOptions)

func WithLogger(logger *zap.Logger) Option {
	return func(o *ServiceOptions) {
		o.Logger = logger
	}
}

func WithConfig(cfg *config.Config) Option {
	return func(o *ServiceOptions) {
		o.Config = cfg
	}
}

func WithObserver(observer domain.ProgressObserver) Option {
	return func(o *ServiceOptions) {
		o.Observer = observer
	}
}

func WithEnv(env string) Option {
	return func(o *ServiceOptions) {
		o.Env = env
	}
}
