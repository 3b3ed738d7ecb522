package prometheus

import (
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func TestMetricsExporter_RecordMethods(t *testing.T) {
	reg := prom.NewRegistry()
	exporter, err := NewMetricsExporter("runnable", reg, ExporterOptions{})
	if err != nil {
		t.Fatalf("NewMetricsExporter failed: %v", err)
	}

	exporter.RecordWorkDuration("worker-a", 250*time.Millisecond)
	exporter.RecordWorkError("worker-a")
	exporter.RecordTaskSubmitted("worker-a")
	exporter.RecordTaskSubmitted("worker-a")
	exporter.RecordTaskAbandoned("worker-a", 3)
	exporter.RecordQueueDepth("worker-a", 7)

	if got := testutil.ToFloat64(exporter.workErrorTotal.WithLabelValues("worker-a")); got != 1 {
		t.Fatalf("work error total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(exporter.taskSubmittedTotal.WithLabelValues("worker-a")); got != 2 {
		t.Fatalf("submitted total = %v, want 2", got)
	}
	if got := testutil.ToFloat64(exporter.taskAbandonedTotal.WithLabelValues("worker-a")); got != 3 {
		t.Fatalf("abandoned total = %v, want 3", got)
	}
	if got := testutil.ToFloat64(exporter.queueDepth.WithLabelValues("worker-a")); got != 7 {
		t.Fatalf("queue depth = %v, want 7", got)
	}

	histCount, err := histogramSampleCount(exporter.workDurationSeconds.WithLabelValues("worker-a"))
	if err != nil {
		t.Fatalf("histogramSampleCount failed: %v", err)
	}
	if histCount != 1 {
		t.Fatalf("duration sample count = %d, want 1", histCount)
	}
}

func TestMetricsExporter_EmptyWorkerNameFallsBack(t *testing.T) {
	reg := prom.NewRegistry()
	exporter, err := NewMetricsExporter("runnable", reg, ExporterOptions{})
	if err != nil {
		t.Fatalf("NewMetricsExporter failed: %v", err)
	}

	exporter.RecordTaskSubmitted("")

	if got := testutil.ToFloat64(exporter.taskSubmittedTotal.WithLabelValues("unknown")); got != 1 {
		t.Fatalf("submitted total for fallback label = %v, want 1", got)
	}
}

func TestMetricsExporter_AlreadyRegisteredReuse(t *testing.T) {
	reg := prom.NewRegistry()
	first, err := NewMetricsExporter("runnable", reg, ExporterOptions{})
	if err != nil {
		t.Fatalf("first NewMetricsExporter failed: %v", err)
	}
	second, err := NewMetricsExporter("runnable", reg, ExporterOptions{})
	if err != nil {
		t.Fatalf("second NewMetricsExporter failed: %v", err)
	}

	first.RecordWorkError("worker-a")
	second.RecordWorkError("worker-a")

	got := testutil.ToFloat64(first.workErrorTotal.WithLabelValues("worker-a"))
	if got != 2 {
		t.Fatalf("shared error counter = %v, want 2", got)
	}
}

func histogramSampleCount(observer prom.Observer) (uint64, error) {
	collector, ok := observer.(prom.Collector)
	if !ok {
		return 0, nil
	}

	metricCh := make(chan prom.Metric, 1)
	collector.Collect(metricCh)
	close(metricCh)
	for metric := range metricCh {
		msg := &dto.Metric{}
		if err := metric.Write(msg); err != nil {
			return 0, err
		}
		if msg.Histogram != nil {
			return msg.Histogram.GetSampleCount(), nil
		}
	}
	return 0, nil
}
