package metrics

import (
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	initOnce sync.Once

	requestsTotal *prometheus.CounterVec

	// UploadsCompleted counts simulated transfers that reached completion.
	UploadsCompleted prometheus.Counter
	// UploadsRejected counts uploads refused by the quota admission check.
	UploadsRejected prometheus.Counter
)

// InitMetrics registers the application collectors. Safe to call more
// than once.
func InitMetrics() {
	initOnce.Do(func() {
		requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "mycloud_http_requests_total",
			Help: "HTTP requests processed, by method, path and status.",
		}, []string{"method", "path", "status"})

		UploadsCompleted = promauto.NewCounter(prometheus.CounterOpts{
			Name: "mycloud_uploads_completed_total",
			Help: "Simulated uploads that completed and were recorded.",
		})

		UploadsRejected = promauto.NewCounter(prometheus.CounterOpts{
			Name: "mycloud_uploads_rejected_total",
			Help: "Uploads rejected by the storage quota admission check.",
		})
	})
}

// Middleware counts each request against the requests counter.
func Middleware() gin.HandlerFunc {
	InitMetrics()
	return func(c *gin.Context) {
		c.Next()
		requestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}

// Register attaches the Prometheus metrics endpoint to the router.
func Register(router *gin.Engine, path string) {
	InitMetrics()
	router.GET(path, gin.WrapH(promhttp.Handler()))
}
