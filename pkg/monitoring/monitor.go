package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	SurveySubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "survey_submissions_total",
			Help: "Survey submissions by outcome",
		},
		[]string{"outcome"},
	)

	SurveyInsertDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "survey_insert_duration_seconds",
			Help:    "Duration of survey response inserts",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
	)

	SurveyOpenForms = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "survey_open_forms",
			Help: "Number of survey forms currently held in memory",
		},
	)
)

var registerOnce sync.Once

func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(SurveySubmissions)
		prometheus.MustRegister(SurveyInsertDuration)
		prometheus.MustRegister(SurveyOpenForms)
	})
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

// ObserveSubmission 记录一次问卷提交的结果和写库耗时
func ObserveSubmission(outcome string, d time.Duration) {
	SurveySubmissions.WithLabelValues(outcome).Inc()
	SurveyInsertDuration.Observe(d.Seconds())
}

func SetOpenForms(n int) {
	SurveyOpenForms.Set(float64(n))
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
