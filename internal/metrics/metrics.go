// Package metrics holds the Prometheus instruments of go-wallet-admin.
//
// Every instrument is registered on a private registry so that tests and
// multiple instances never collide on the global default registerer.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "wallet_admin"

// Metrics provides observability for the dashboard and the console.
type Metrics struct {
	registry *prometheus.Registry

	UpstreamRequests    *prometheus.CounterVec
	ClientsDeleted      prometheus.Counter
	BTCRateFailures     prometheus.Counter
	HTTPRequestDuration *prometheus.HistogramVec
}

// New creates a Metrics instance with all instruments registered on a fresh
// registry, together with the Go runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		UpstreamRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Total number of requests made to the upstream APIs",
		}, []string{"op", "outcome"}),
		ClientsDeleted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "clients_deleted_total",
			Help:      "Total number of clients deleted by operators",
		}),
		BTCRateFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "btc_rate_failures_total",
			Help:      "Total number of failed BTC rate fetches",
		}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of dashboard HTTP requests",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method", "status"}),
	}
}

// ObserveUpstream records one upstream call. It satisfies
// adapter.RequestObserver.
func (m *Metrics) ObserveUpstream(op, outcome string) {
	m.UpstreamRequests.WithLabelValues(op, outcome).Inc()
}

// IncrementClientsDeleted records a successful client deletion.
func (m *Metrics) IncrementClientsDeleted() {
	m.ClientsDeleted.Inc()
}

// IncrementBTCRateFailures records a rate fetch that ended with an error.
func (m *Metrics) IncrementBTCRateFailures() {
	m.BTCRateFailures.Inc()
}

// ObserveHTTPRequest records the duration of a served request.
// Call with time.Now() taken at the start of the request.
func (m *Metrics) ObserveHTTPRequest(method string, status int, start time.Time) {
	m.HTTPRequestDuration.WithLabelValues(method, strconv.Itoa(status)).Observe(time.Since(start).Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the private registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
