package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "intervu"

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests received",
	}, []string{"method", "path", "status"})

	httpLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path"})

	evaluations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feedback_evaluations_total",
		Help:      "Transcript evaluations by outcome",
	}, []string{"outcome"})

	evaluationLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "feedback_evaluation_duration_seconds",
		Help:      "Time spent waiting on the evaluator",
		Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 40},
	})

	feedbackWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feedback_writes_total",
		Help:      "Feedback records written, by path (create or update) and result",
	}, []string{"path", "result"})
)

// ObserveEvaluation records one evaluator call.
func ObserveEvaluation(outcome string, elapsed time.Duration) {
	evaluations.WithLabelValues(outcome).Inc()
	evaluationLatency.Observe(elapsed.Seconds())
}

func ObserveFeedbackWrite(path string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	feedbackWrites.WithLabelValues(path, result).Inc()
}

// GinMiddleware counts requests per matched route.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		httpRequests.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		httpLatency.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
