// Package metrics provides Prometheus metrics collection for the packing service.
package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, route, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// PackOperationsTotal counts pack operations by outcome.
	PackOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pack_operations_total",
			Help: "Total number of pack operations",
		},
		[]string{"operation", "result"},
	)

	// BoxNumberConflictsTotal counts lost box number races during box creation.
	BoxNumberConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "box_number_conflicts_total",
			Help: "Total number of box number allocation conflicts",
		},
	)
)

// Recorder adapts the package-level vectors to the interfaces command
// handlers depend on.
type Recorder struct{}

func NewRecorder() Recorder {
	return Recorder{}
}

func (Recorder) RecordBoxNumberConflict() {
	BoxNumberConflictsTotal.Inc()
}

// RecordPackOperation records the result of a pack operation ("ok" or an error kind).
func RecordPackOperation(operation, result string) {
	PackOperationsTotal.WithLabelValues(operation, result).Inc()
}

// EchoMiddleware observes request duration per registered route.
func EchoMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				// Run the error handler now so the recorded status is the final one.
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}
			HTTPRequestDuration.
				WithLabelValues(c.Request().Method, path, strconv.Itoa(c.Response().Status)).
				Observe(time.Since(start).Seconds())
			return nil
		}
	}
}
