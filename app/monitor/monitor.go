package monitor

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/lysyi3m/event-scout/app/event"
	"github.com/lysyi3m/event-scout/app/metrics"
)

// HealthProber is the probe surface the monitor depends on.
// *event.Searcher satisfies it.
type HealthProber interface {
	HealthStatus(ctx context.Context) event.Health
}

var _ HealthProber = (*event.Searcher)(nil)

// Monitor periodically probes provider health, logging status transitions
// and keeping the provider_up gauge current. It derives liveness purely by
// polling; there are no push notifications.
type Monitor struct {
	prober     HealthProber
	interval   time.Duration
	lastStatus string
	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup
}

func NewMonitor(prober HealthProber, interval time.Duration) *Monitor {
	ctx, cancel := context.WithCancel(context.Background())

	return &Monitor{
		prober:   prober,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (m *Monitor) Start() {
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()

		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		m.probe()

		for {
			select {
			case <-m.ctx.Done():
				return
			case <-ticker.C:
				m.probe()
			}
		}
	}()
}

// Stop cancels the loop and waits for any in-flight probe to finish.
func (m *Monitor) Stop() {
	m.cancel()
	m.wg.Wait()
}

func (m *Monitor) probe() {
	probeCtx, cancel := context.WithTimeout(m.ctx, 15*time.Second)
	defer cancel()

	health := m.prober.HealthStatus(probeCtx)
	metrics.SetProviderUp(health.Status == event.StatusHealthy)

	if health.Status != m.lastStatus {
		if health.Status == event.StatusHealthy {
			slog.Info("Provider health changed", "status", health.Status, "message", health.Message)
		} else {
			slog.Warn("Provider health changed", "status", health.Status, "message", health.Message)
		}
		m.lastStatus = health.Status
		return
	}

	slog.Debug("Provider health probe", "status", health.Status)
}
