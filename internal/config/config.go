package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

const DefaultOutputPath = "status.json"

// Config is the run configuration shared read-only by all workers.
type Config struct {
	URLs          []string `validate:"required,min=1,dive,required"`
	Workers       Workers  `validate:"required"`
	OutputPath    string   `validate:"required"`
	MetricsListen string
}

type Workers struct {
	Count      int           `validate:"gte=1"`
	Timeout    time.Duration `validate:"gt=0"`
	MaxRetries int           `validate:"gte=0"`
}

// Options carries the raw values collected by the CLI before validation.
type Options struct {
	URLs          []string
	WorkerCount   int
	Timeout       time.Duration
	MaxRetries    int
	OutputPath    string
	MetricsListen string
}

// New builds and validates a Config. Validation failures are fatal to the
// run and surface before any worker starts.
func New(opts Options) (*Config, error) {
	cfg := &Config{
		URLs: opts.URLs,
		Workers: Workers{
			Count:      opts.WorkerCount,
			Timeout:    opts.Timeout,
			MaxRetries: opts.MaxRetries,
		},
		OutputPath:    opts.OutputPath,
		MetricsListen: opts.MetricsListen,
	}

	if cfg.OutputPath == "" {
		cfg.OutputPath = DefaultOutputPath
	}

	if err := validate.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return nil, formatValidationErrors(validationErrors)
		}
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// formatValidationErrors formats validation errors into a user-friendly error message
func formatValidationErrors(errors validator.ValidationErrors) error {
	var errMsgs []string
	for _, err := range errors {
		errMsgs = append(errMsgs, fmt.Sprintf(
			"field '%s' failed validation: %s",
			err.Field(),
			err.Tag(),
		))
	}
	return fmt.Errorf("validation errors: %v", errMsgs)
}
