package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Result labels
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Metrics holds all Prometheus metrics. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Credential metrics
	AuthEventsTotal   *prometheus.CounterVec
	APIKeyAuthTotal   *prometheus.CounterVec
	OTPEventsTotal    *prometheus.CounterVec
	OTPCollisionTotal prometheus.Counter

	// Message log metrics
	MessagesLoggedTotal *prometheus.CounterVec
	MessagesPurgedTotal prometheus.Counter
}

// NewMetrics creates and registers all Prometheus metrics
func NewMetrics(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: registry,
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "smsmock_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "smsmock_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		AuthEventsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "smsmock_auth_events_total",
				Help: "Session lifecycle events by outcome",
			},
			[]string{"event", "result"},
		),
		APIKeyAuthTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "smsmock_api_key_auth_total",
				Help: "API key authentication attempts by outcome",
			},
			[]string{"result"},
		),
		OTPEventsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "smsmock_otp_events_total",
				Help: "OTP send and verify operations by outcome",
			},
			[]string{"event", "result"},
		),
		OTPCollisionTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "smsmock_otp_code_collisions_total",
				Help: "Generated OTP codes that collided with an outstanding code",
			},
		),
		MessagesLoggedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "smsmock_messages_logged_total",
				Help: "Messages written to the log",
			},
			[]string{"direction", "kind"},
		),
		MessagesPurgedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "smsmock_messages_purged_total",
				Help: "Messages removed by the retention job",
			},
		),
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.AuthEventsTotal,
		m.APIKeyAuthTotal,
		m.OTPEventsTotal,
		m.OTPCollisionTotal,
		m.MessagesLoggedTotal,
		m.MessagesPurgedTotal,
	)

	return m
}

func result(err error) string {
	if err != nil {
		return ResultFailure
	}
	return ResultSuccess
}

// RecordAuth counts a register, login, refresh or logout outcome
func (m *Metrics) RecordAuth(event string, err error) {
	if m == nil {
		return
	}
	m.AuthEventsTotal.WithLabelValues(event, result(err)).Inc()
}

// RecordAPIKeyAuth counts an API key authentication outcome
func (m *Metrics) RecordAPIKeyAuth(err error) {
	if m == nil {
		return
	}
	m.APIKeyAuthTotal.WithLabelValues(result(err)).Inc()
}

// RecordOTP counts an OTP send or verify outcome
func (m *Metrics) RecordOTP(event string, err error) {
	if m == nil {
		return
	}
	m.OTPEventsTotal.WithLabelValues(event, result(err)).Inc()
}

// RecordOTPCollision counts a regenerated OTP code
func (m *Metrics) RecordOTPCollision() {
	if m == nil {
		return
	}
	m.OTPCollisionTotal.Inc()
}

// RecordMessageLogged counts a stored message
func (m *Metrics) RecordMessageLogged(direction string, isOTP bool) {
	if m == nil {
		return
	}
	kind := "sms"
	if isOTP {
		kind = "otp"
	}
	m.MessagesLoggedTotal.WithLabelValues(direction, kind).Inc()
}

// RecordMessagesPurged counts messages removed by retention
func (m *Metrics) RecordMessagesPurged(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.MessagesPurgedTotal.Add(float64(n))
}

// Middleware instruments echo requests by route template
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if m == nil {
				return next(c)
			}

			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method

			m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// Handler exposes the registry in the Prometheus text format
func (m *Metrics) Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
