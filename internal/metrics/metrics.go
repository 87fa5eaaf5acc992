// Package metrics holds the Prometheus collectors of the backup-vault server.
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

const namespace = "backup_vault"

// Login outcomes recorded by [Metrics.RecordLogin].
const (
	LoginSuccess            = "success"
	LoginUserNotFound       = "user_not_found"
	LoginInvalidCredentials = "invalid_credentials"
	LoginRejected           = "rejected"
	LoginError              = "error"
)

// Metrics holds all collectors of the server.
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec   // backup_vault_http_requests_total{route,method,status}
	RequestDuration *prometheus.HistogramVec // backup_vault_http_request_duration_seconds{route}

	UploadedBytes prometheus.Counter     // backup_vault_uploaded_bytes_total
	Uploads       *prometheus.CounterVec // backup_vault_uploads_total{result}

	Logins      *prometheus.CounterVec // backup_vault_logins_total{result}
	WipeToggles *prometheus.CounterVec // backup_vault_wipe_toggles_total{status}
}

// New registers every collector on a fresh registry. Go runtime and process
// collectors are included.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status code",
		}, []string{"route", "method", "status"}),

		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),

		UploadedBytes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "uploaded_bytes_total",
			Help:      "Bytes of backup blobs persisted",
		}),

		Uploads: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "uploads_total",
			Help:      "Upload attempts by result",
		}, []string{"result"}),

		Logins: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logins_total",
			Help:      "Login attempts by result",
		}, []string{"result"}),

		WipeToggles: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "wipe_toggles_total",
			Help:      "Successful wipe flag changes by new status",
		}, []string{"status"}),
	}
}

// RecordRequest records one served request. route is the matched route
// pattern, never the raw path, to keep label cardinality bounded.
func (m *Metrics) RecordRequest(route, method string, status int, d time.Duration) {
	m.RequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(route).Observe(d.Seconds())
}

// RecordUpload records an upload attempt and, on success, its size.
func (m *Metrics) RecordUpload(ok bool, size int64) {
	if !ok {
		m.Uploads.WithLabelValues("failure").Inc()
		return
	}

	m.Uploads.WithLabelValues("success").Inc()
	m.UploadedBytes.Add(float64(size))
}

// RecordLogin records a login attempt with one of the Login* outcomes.
func (m *Metrics) RecordLogin(result string) {
	m.Logins.WithLabelValues(result).Inc()
}

// RecordWipeToggle records a persisted wipe flag change.
func (m *Metrics) RecordWipeToggle(status bool) {
	m.WipeToggles.WithLabelValues(strconv.FormatBool(status)).Inc()
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
