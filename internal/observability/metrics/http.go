package metrics

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/estateops/triage/internal/core/domain"
)

// HTTPServerMetrics holds the api process registry: request-level metrics
// plus triage outcome counters for the synchronous endpoint.
type HTTPServerMetrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	triageTotal       *prometheus.CounterVec
	triageDuration    *prometheus.HistogramVec
	complianceTotal   *prometheus.CounterVec
	classifierMatches *prometheus.HistogramVec
}

func NewHTTPServerMetrics(service string) *HTTPServerMetrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "edt",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		},
		[]string{"service", "method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "edt",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)
	requestInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "edt",
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Number of in-flight HTTP requests.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	triageTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "edt",
			Subsystem: "triage",
			Name:      "documents_total",
			Help:      "Total triaged documents by category and status.",
		},
		[]string{"service", "category", "status"},
	)
	triageDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "edt",
			Subsystem: "triage",
			Name:      "duration_seconds",
			Help:      "End-to-end triage duration in seconds.",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
		},
		[]string{"service"},
	)
	complianceTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "edt",
			Subsystem: "triage",
			Name:      "compliance_verdicts_total",
			Help:      "Total compliance verdicts by category and verdict.",
		},
		[]string{"service", "category", "verdict"},
	)
	classifierMatches := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "edt",
			Subsystem: "triage",
			Name:      "matched_keywords",
			Help:      "Distribution of matched keywords per classified document.",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 13},
		},
		[]string{"service"},
	)

	registry.MustRegister(
		requestTotal,
		requestDuration,
		requestInFlight,
		triageTotal,
		triageDuration,
		complianceTotal,
		classifierMatches,
	)

	return &HTTPServerMetrics{
		registry:          registry,
		requestTotal:      requestTotal,
		requestDuration:   requestDuration,
		requestInFlight:   requestInFlight,
		triageTotal:       triageTotal,
		triageDuration:    triageDuration,
		complianceTotal:   complianceTotal,
		classifierMatches: classifierMatches,
	}
}

func (m *HTTPServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordTriage observes one completed synchronous triage call.
func (m *HTTPServerMetrics) RecordTriage(service string, result domain.ProcessingResult) {
	category := "none"
	if result.Classification != nil {
		category = string(result.Classification.Category)
		m.classifierMatches.WithLabelValues(service).Observe(float64(len(result.Classification.MatchedKeywords)))
	}
	m.triageTotal.WithLabelValues(service, category, string(result.Status)).Inc()
	m.triageDuration.WithLabelValues(service).Observe(result.ProcessingTimeMS / 1000.0)

	if result.Compliance != nil {
		verdict := "compliant"
		if !result.Compliance.Compliant {
			verdict = "violations"
		}
		m.complianceTotal.WithLabelValues(service, category, verdict).Inc()
	}
}

func (m *HTTPServerMetrics) Middleware(service string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		path := normalizePath(r.URL.Path)
		recorder := &statusRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		m.requestInFlight.Inc()
		defer m.requestInFlight.Dec()

		next.ServeHTTP(recorder, r)

		m.requestTotal.WithLabelValues(
			service,
			r.Method,
			path,
			strconv.Itoa(recorder.statusCode),
		).Inc()
		m.requestDuration.WithLabelValues(service, r.Method, path).Observe(time.Since(start).Seconds())
	})
}

func normalizePath(path string) string {
	switch {
	case strings.HasPrefix(path, "/v1/documents/"):
		return "/v1/documents/{document_id}"
	default:
		return path
	}
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int
}

func (w *statusRecorder) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *statusRecorder) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.bytesWritten += n
	return n, err
}

func (w *statusRecorder) Flush() {
	flusher, ok := w.ResponseWriter.(http.Flusher)
	if ok {
		flusher.Flush()
	}
}

func (w *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer does not implement http.Hijacker")
	}
	return hijacker.Hijack()
}

func (w *statusRecorder) Push(target string, opts *http.PushOptions) error {
	pusher, ok := w.ResponseWriter.(http.Pusher)
	if !ok {
		return http.ErrNotSupported
	}
	return pusher.Push(target, opts)
}
