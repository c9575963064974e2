package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	reqTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tubekids",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Requests handled, by route, method and status.",
		},
		[]string{"route", "method", "status"},
	)
	reqDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "tubekids",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Time spent handling a request.",
			// small CRUD payloads; anything slower than 2.5s hits the
			// timeout middleware first
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"route", "method"},
	)
	reqInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "tubekids",
		Subsystem: "http",
		Name:      "in_flight_requests",
		Help:      "Requests currently being handled.",
	})
)

func init() { prometheus.MustRegister(reqTotal, reqDuration, reqInFlight) }

// Metrics records per-route counters and latency. Unmatched paths collapse
// into a single "unmatched" series so scanners cannot blow up the label
// cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqInFlight.Inc()
		c.Next()
		reqInFlight.Dec()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		reqTotal.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		reqDuration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}
