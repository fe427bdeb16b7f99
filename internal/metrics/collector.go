package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"url-checker/internal/domain"
)

// Module provides the metrics collector and its registry
var Module = fx.Options(
	fx.Provide(prometheus.NewRegistry),
	fx.Provide(func(r *prometheus.Registry) prometheus.Registerer { return r }),
	fx.Provide(NewCollector),
	fx.Provide(func(c *Collector) domain.MetricsCollector { return c }),
	fx.Invoke(registerServerHooks),
)

type Collector struct {
	logger        *zap.Logger
	checksTotal   *prometheus.CounterVec
	checkDuration prometheus.Histogram
	checkRetries  *prometheus.CounterVec
	urlsEnqueued  prometheus.Counter
	workerStarts  *prometheus.CounterVec
	workerStops   *prometheus.CounterVec
	activeWorkers prometheus.Gauge
}

func NewCollector(reg prometheus.Registerer, logger *zap.Logger) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		logger: logger,
		checksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "urlcheck_checks_total",
				Help: "Total number of URL checks performed",
			},
			[]string{"outcome"},
		),
		checkDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "urlcheck_check_duration_seconds",
				Help:    "Duration of URL checks",
				Buckets: prometheus.DefBuckets,
			},
		),
		checkRetries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "urlcheck_check_retries_total",
				Help: "Total number of probe retries",
			},
			[]string{"url"},
		),
		urlsEnqueued: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "urlcheck_urls_enqueued_total",
				Help: "Total number of URLs enqueued for checking",
			},
		),
		workerStarts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "urlcheck_worker_starts_total",
				Help: "Total number of worker starts",
			},
			[]string{"worker_id"},
		),
		workerStops: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "urlcheck_worker_stops_total",
				Help: "Total number of worker stops",
			},
			[]string{"worker_id"},
		),
		activeWorkers: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "urlcheck_active_workers",
				Help: "Number of currently active workers",
			},
		),
	}
}

func (c *Collector) RecordCheck(result domain.Result) {
	outcome := "success"
	if !result.OK() {
		outcome = "error"
	}
	c.checksTotal.WithLabelValues(outcome).Inc()
	c.checkDuration.Observe(result.Duration.Seconds())
}

func (c *Collector) RecordRetry(url string) {
	c.checkRetries.WithLabelValues(url).Inc()
}

func (c *Collector) RecordEnqueued(url string) {
	c.urlsEnqueued.Inc()
}

func (c *Collector) RecordWorkerStart(workerID string) {
	c.workerStarts.WithLabelValues(workerID).Inc()
	c.activeWorkers.Inc()
}

func (c *Collector) RecordWorkerStop(workerID string) {
	c.workerStops.WithLabelValues(workerID).Inc()
	c.activeWorkers.Dec()
}
