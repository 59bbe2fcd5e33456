package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	searchesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "event_scout",
		Name:      "searches_total",
		Help:      "Number of event searches by category and outcome",
	}, []string{"category", "status"})

	searchDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "event_scout",
		Name:      "search_duration_seconds",
		Help:      "End-to-end duration of event searches",
		Buckets:   prometheus.DefBuckets,
	}, []string{"category"})

	eventsExtracted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "event_scout",
		Name:      "events_extracted_total",
		Help:      "Number of normalized events produced",
	})

	providerRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "event_scout",
		Name:      "provider_requests_total",
		Help:      "Number of search provider requests by status",
	}, []string{"status"})

	providerUp = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "event_scout",
		Name:      "provider_up",
		Help:      "1 when the last provider health probe succeeded",
	})
)

func init() {
	prometheus.MustRegister(
		searchesTotal, searchDuration, eventsExtracted,
		providerRequests, providerUp,
	)
}

// ObserveSearch records the outcome of one pipeline invocation.
func ObserveSearch(category string, success bool, d time.Duration, events int) {
	status := "ok"
	if !success {
		status = "error"
	}
	searchesTotal.WithLabelValues(category, status).Inc()
	searchDuration.WithLabelValues(category).Observe(d.Seconds())
	if events > 0 {
		eventsExtracted.Add(float64(events))
	}
}

// IncProviderRequest counts one outbound provider call by status.
func IncProviderRequest(status string) {
	providerRequests.WithLabelValues(status).Inc()
}

// SetProviderUp records the latest health probe result.
func SetProviderUp(up bool) {
	if up {
		providerUp.Set(1)
	} else {
		providerUp.Set(0)
	}
}
