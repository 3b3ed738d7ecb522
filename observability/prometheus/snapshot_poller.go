package prometheus

import (
	"context"
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/parkyh/go-runnable/core"
)

// WorkerSnapshotProvider provides current worker stats snapshots.
// Both ActiveRunner and Stats-capable wrappers satisfy it.
type WorkerSnapshotProvider interface {
	Stats() core.WorkerStats
}

// SnapshotPoller periodically exports worker Stats() snapshots into
// Prometheus gauges. It complements MetricsExporter: the exporter records
// events as they happen, the poller samples queue state at an interval.
type SnapshotPoller struct {
	interval time.Duration

	workersMu sync.RWMutex
	workers   map[string]WorkerSnapshotProvider

	workerPending *prom.GaugeVec
	workerRunning *prom.GaugeVec

	stateMu sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewSnapshotPoller creates a snapshot poller and registers its collectors.
func NewSnapshotPoller(reg prom.Registerer, interval time.Duration) (*SnapshotPoller, error) {
	if reg == nil {
		reg = prom.DefaultRegisterer
	}
	if interval <= 0 {
		interval = time.Second
	}

	workerPending := prom.NewGaugeVec(prom.GaugeOpts{
		Namespace: "runnable",
		Name:      "worker_pending",
		Help:      "Number of queued, not yet dispatched tasks per worker.",
	}, []string{"worker"})
	workerRunning := prom.NewGaugeVec(prom.GaugeOpts{
		Namespace: "runnable",
		Name:      "worker_running",
		Help:      "Worker running flag (1=running, 0=stopped).",
	}, []string{"worker"})

	var err error
	if workerPending, err = registerCollector(reg, workerPending); err != nil {
		return nil, err
	}
	if workerRunning, err = registerCollector(reg, workerRunning); err != nil {
		return nil, err
	}

	return &SnapshotPoller{
		interval:      interval,
		workers:       make(map[string]WorkerSnapshotProvider),
		workerPending: workerPending,
		workerRunning: workerRunning,
	}, nil
}

// AddWorker adds or replaces a worker snapshot provider by name.
func (p *SnapshotPoller) AddWorker(name string, provider WorkerSnapshotProvider) {
	if p == nil || provider == nil {
		return
	}
	name = normalizeLabel(name, "worker")
	p.workersMu.Lock()
	p.workers[name] = provider
	p.workersMu.Unlock()
}

// Start begins periodic polling; repeated calls are no-ops.
func (p *SnapshotPoller) Start(ctx context.Context) {
	if p == nil {
		return
	}

	p.stateMu.Lock()
	if p.running {
		p.stateMu.Unlock()
		return
	}
	pollCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})
	p.running = true
	p.stateMu.Unlock()

	go p.loop(pollCtx)
}

// Stop stops periodic polling; repeated calls are safe.
func (p *SnapshotPoller) Stop() {
	if p == nil {
		return
	}

	p.stateMu.Lock()
	if !p.running {
		p.stateMu.Unlock()
		return
	}
	cancel := p.cancel
	done := p.done
	p.stateMu.Unlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}

	p.stateMu.Lock()
	p.running = false
	p.cancel = nil
	p.done = nil
	p.stateMu.Unlock()
}

func (p *SnapshotPoller) loop(ctx context.Context) {
	defer close(p.done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.collectOnce()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.collectOnce()
		}
	}
}

func (p *SnapshotPoller) collectOnce() {
	p.workersMu.RLock()
	defer p.workersMu.RUnlock()

	for name, provider := range p.workers {
		stats := provider.Stats()
		p.workerPending.WithLabelValues(name).Set(float64(stats.Pending))
		if stats.Running {
			p.workerRunning.WithLabelValues(name).Set(1)
		} else {
			p.workerRunning.WithLabelValues(name).Set(0)
		}
	}
}
