package metrics

import (
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// SweepMetrics tracks the daily payment-due sweep.
type SweepMetrics struct {
	sweepDuration prometheus.Histogram
	dueBacklog    prometheus.Gauge
	dueOldest     prometheus.Gauge
	notifiedTotal *prometheus.CounterVec
}

var (
	sweepMetricsOnce sync.Once
	sweepMetrics     *SweepMetrics
)

func Sweep() *SweepMetrics {
	return SweepWithConfig(Config{})
}

func SweepWithConfig(cfg Config) *SweepMetrics {
	sweepMetricsOnce.Do(func() {
		sweepMetrics = newSweepMetrics(prometheus.DefaultRegisterer, cfg)
	})
	return sweepMetrics
}

func ResetSweepMetricsForTest() {
	sweepMetricsOnce = sync.Once{}
	sweepMetrics = nil
}

func newSweepMetrics(registerer prometheus.Registerer, cfg Config) *SweepMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	serviceName := strings.TrimSpace(cfg.ServiceName)
	if serviceName == "" {
		serviceName = "leasebill"
	}
	environment := strings.TrimSpace(cfg.Environment)
	if environment == "" {
		environment = "unknown"
	}

	constLabels := prometheus.Labels{
		"service": serviceName,
		"env":     environment,
	}

	sweepDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:        "leasebill_payment_sweep_duration_seconds",
			Help:        "Wall time of a single payment-due sweep run.",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		},
	)

	dueBacklog := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name:        "leasebill_payment_due_backlog_total",
			Help:        "Number of rent payments due but not yet notified.",
			ConstLabels: constLabels,
		},
	)

	dueOldest := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name:        "leasebill_payment_due_oldest_seconds",
			Help:        "Age of the oldest unnotified due rent payment.",
			ConstLabels: constLabels,
		},
	)

	notifiedTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "leasebill_payment_due_notified_total",
			Help:        "Total rent payments marked due-notified.",
			ConstLabels: constLabels,
		},
		[]string{"result"}, // success | failed
	)

	registerer.MustRegister(
		sweepDuration,
		dueBacklog,
		dueOldest,
		notifiedTotal,
	)

	return &SweepMetrics{
		sweepDuration: sweepDuration,
		dueBacklog:    dueBacklog,
		dueOldest:     dueOldest,
		notifiedTotal: notifiedTotal,
	}
}

func (m *SweepMetrics) ObserveSweepDuration(d time.Duration) {
	if m == nil {
		return
	}
	m.sweepDuration.Observe(d.Seconds())
}

func (m *SweepMetrics) SetDueBacklog(value int) {
	if m == nil {
		return
	}
	m.dueBacklog.Set(float64(value))
}

func (m *SweepMetrics) SetDueOldest(age time.Duration) {
	if m == nil {
		return
	}
	seconds := age.Seconds()
	if seconds < 0 {
		seconds = 0
	}
	m.dueOldest.Set(seconds)
}

func (m *SweepMetrics) IncNotified(result string) {
	if m == nil {
		return
	}
	m.notifiedTotal.WithLabelValues(result).Inc()
}
