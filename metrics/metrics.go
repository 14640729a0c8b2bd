// Package metrics HTTP 请求与计算次数的 Prometheus 指标。
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "temline_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"route", "method", "code"},
	)

	httpDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "temline_http_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	evaluationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "temline_evaluations_total",
			Help: "Total number of line evaluations by outcome.",
		},
		[]string{"outcome"},
	)

	evaluationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "temline_evaluation_seconds",
			Help:    "Time spent solving a single line evaluation.",
			Buckets: prometheus.ExponentialBuckets(1e-5, 4, 8),
		},
	)
)

// 计算结果分类
const (
	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

func init() {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpDurationSeconds)
	prometheus.MustRegister(evaluationsTotal)
	prometheus.MustRegister(evaluationSeconds)
}

// Handler Prometheus 指标输出
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveEvaluation 记录一次计算
func ObserveEvaluation(outcome string, d time.Duration) {
	evaluationsTotal.WithLabelValues(outcome).Inc()
	if outcome == OutcomeOK {
		evaluationSeconds.Observe(d.Seconds())
	}
}

// responseWriter 记录响应状态码
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware 按路由记录请求数和耗时。
// route 取注册时的路由模式，避免标签随路径无限增长。
func Middleware(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		code := strconv.Itoa(rw.statusCode)
		httpRequestsTotal.WithLabelValues(route, r.Method, code).Inc()
		httpDurationSeconds.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}
