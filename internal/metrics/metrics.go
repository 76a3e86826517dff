// Package metrics exposes prometheus collectors for pages, fallbacks, admin writes and mail.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "guesthouse"

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace, Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	Fallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "fallback_total", Help: "Resolutions served from built-in defaults."},
		[]string{"resolver", "reason"}, // reason: error|empty|unsupported
	)
	AdminWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "admin_writes_total", Help: "Admin store writes."},
		[]string{"entity", "op", "result"},
	)
	MailSends = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "mail_sends_total", Help: "Contact form deliveries."},
		[]string{"transport", "result"},
	)
)

// InitRegistry returns a registry holding every collector of this package.
func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, Fallbacks, AdminWrites, MailSends)
	return reg
}

func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveFallback(resolver, reason string) {
	Fallbacks.WithLabelValues(resolver, reason).Inc()
}

func ObserveAdminWrite(entity, op string, err error) {
	AdminWrites.WithLabelValues(entity, op, result(err)).Inc()
}

func ObserveMail(transport string, err error) {
	MailSends.WithLabelValues(transport, result(err)).Inc()
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// Middleware records every request under its route pattern.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		route := c.Route().Path
		if route == "" {
			route = c.Path()
		}
		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
		ObserveHTTP(route, c.Method(), status, time.Since(start))
		return err
	}
}
