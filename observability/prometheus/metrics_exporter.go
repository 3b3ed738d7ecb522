// Package prometheus adapts core.Metrics to Prometheus collectors.
package prometheus

import (
	"errors"
	"fmt"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/parkyh/go-runnable/core"
)

// ExporterOptions controls collector configuration.
type ExporterOptions struct {
	DurationBuckets []float64
}

// MetricsExporter implements core.Metrics on top of Prometheus collectors.
type MetricsExporter struct {
	workDurationSeconds *prom.HistogramVec
	workErrorTotal      *prom.CounterVec
	taskSubmittedTotal  *prom.CounterVec
	taskAbandonedTotal  *prom.CounterVec
	queueDepth          *prom.GaugeVec
}

var _ core.Metrics = (*MetricsExporter)(nil)

// NewMetricsExporter creates and registers Prometheus collectors for core.Metrics.
func NewMetricsExporter(namespace string, reg prom.Registerer, opts ExporterOptions) (*MetricsExporter, error) {
	if namespace == "" {
		namespace = "runnable"
	}
	if reg == nil {
		reg = prom.DefaultRegisterer
	}
	buckets := opts.DurationBuckets
	if len(buckets) == 0 {
		buckets = prom.DefBuckets
	}

	durationVec := prom.NewHistogramVec(prom.HistogramOpts{
		Namespace: namespace,
		Name:      "work_duration_seconds",
		Help:      "Work step execution duration in seconds.",
		Buckets:   buckets,
	}, []string{"worker"})
	errorVec := prom.NewCounterVec(prom.CounterOpts{
		Namespace: namespace,
		Name:      "work_error_total",
		Help:      "Total number of work steps that returned an error.",
	}, []string{"worker"})
	submittedVec := prom.NewCounterVec(prom.CounterOpts{
		Namespace: namespace,
		Name:      "task_submitted_total",
		Help:      "Total number of tasks accepted into a worker queue.",
	}, []string{"worker"})
	abandonedVec := prom.NewCounterVec(prom.CounterOpts{
		Namespace: namespace,
		Name:      "task_abandoned_total",
		Help:      "Total number of tasks discarded without dispatch.",
	}, []string{"worker"})
	queueDepthVec := prom.NewGaugeVec(prom.GaugeOpts{
		Namespace: namespace,
		Name:      "queue_depth",
		Help:      "Current queue depth.",
	}, []string{"worker"})

	var err error
	if durationVec, err = registerCollector(reg, durationVec); err != nil {
		return nil, err
	}
	if errorVec, err = registerCollector(reg, errorVec); err != nil {
		return nil, err
	}
	if submittedVec, err = registerCollector(reg, submittedVec); err != nil {
		return nil, err
	}
	if abandonedVec, err = registerCollector(reg, abandonedVec); err != nil {
		return nil, err
	}
	if queueDepthVec, err = registerCollector(reg, queueDepthVec); err != nil {
		return nil, err
	}

	return &MetricsExporter{
		workDurationSeconds: durationVec,
		workErrorTotal:      errorVec,
		taskSubmittedTotal:  submittedVec,
		taskAbandonedTotal:  abandonedVec,
		queueDepth:          queueDepthVec,
	}, nil
}

// RecordWorkDuration records one work step's execution duration.
func (m *MetricsExporter) RecordWorkDuration(worker string, duration time.Duration) {
	if m == nil {
		return
	}
	m.workDurationSeconds.WithLabelValues(normalizeLabel(worker, "unknown")).Observe(duration.Seconds())
}

// RecordWorkError records a work step returning an error.
func (m *MetricsExporter) RecordWorkError(worker string) {
	if m == nil {
		return
	}
	m.workErrorTotal.WithLabelValues(normalizeLabel(worker, "unknown")).Inc()
}

// RecordTaskSubmitted records a task accepted into a worker queue.
func (m *MetricsExporter) RecordTaskSubmitted(worker string) {
	if m == nil {
		return
	}
	m.taskSubmittedTotal.WithLabelValues(normalizeLabel(worker, "unknown")).Inc()
}

// RecordTaskAbandoned records tasks discarded without dispatch.
func (m *MetricsExporter) RecordTaskAbandoned(worker string, count int) {
	if m == nil || count <= 0 {
		return
	}
	m.taskAbandonedTotal.WithLabelValues(normalizeLabel(worker, "unknown")).Add(float64(count))
}

// RecordQueueDepth records queue depth.
func (m *MetricsExporter) RecordQueueDepth(worker string, depth int) {
	if m == nil {
		return
	}
	m.queueDepth.WithLabelValues(normalizeLabel(worker, "unknown")).Set(float64(depth))
}

func normalizeLabel(v string, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func registerCollector[T prom.Collector](reg prom.Registerer, collector T) (T, error) {
	err := reg.Register(collector)
	if err == nil {
		return collector, nil
	}

	var alreadyRegisteredErr prom.AlreadyRegisteredError
	if errors.As(err, &alreadyRegisteredErr) {
		existing, ok := alreadyRegisteredErr.ExistingCollector.(T)
		if !ok {
			return collector, fmt.Errorf("collector type mismatch for %T", collector)
		}
		return existing, nil
	}

	return collector, err
}
