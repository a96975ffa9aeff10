package obs

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Store-level metrics: command throughput, derived history volume and the
// size of each collection in the committed tree.
var (
	commandsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_commands_total",
			Help: "Total number of dispatched store commands.",
		},
		[]string{"kind", "outcome"},
	)

	commandDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inventory_command_duration_seconds",
			Help:    "Store command dispatch latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind"},
	)

	historyEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_history_events_total",
			Help: "History events appended by the store, by event type.",
		},
		[]string{"type"},
	)

	entityCount = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "inventory_entities",
			Help: "Entities currently held per collection.",
		},
		[]string{"collection"},
	)
)

// Outcomes for inventory_commands_total.
const (
	OutcomeApplied = "applied"
	OutcomeNoop    = "noop"
)

// Init registers the metrics in the default registry.
func Init() {
	prometheus.MustRegister(commandsTotal, commandDuration, historyEventsTotal, entityCount)
}

// Handler exposes the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveCommand records one dispatched command.
func ObserveCommand(kind, outcome string, elapsed time.Duration) {
	commandsTotal.WithLabelValues(kind, outcome).Inc()
	commandDuration.WithLabelValues(kind).Observe(elapsed.Seconds())
}

// CountHistoryEvent records one appended history event.
func CountHistoryEvent(eventType string) {
	historyEventsTotal.WithLabelValues(eventType).Inc()
}

// SetEntityCount publishes the current size of a collection.
func SetEntityCount(collection string, n int) {
	entityCount.WithLabelValues(collection).Set(float64(n))
}
