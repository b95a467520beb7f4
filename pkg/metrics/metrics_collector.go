package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsCollector 指标收集器
type MetricsCollector struct {
	// HTTP 指标
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// 缓存指标
	cacheHitsTotal   *prometheus.CounterVec
	cacheMissesTotal *prometheus.CounterVec

	// 业务指标
	analyticsEventsTotal *prometheus.CounterVec
	extractionTotal      *prometheus.CounterVec
	revalidationTotal    *prometheus.CounterVec
}

var (
	defaultCollector *MetricsCollector
	once             sync.Once
)

// Default 获取全局指标收集器（promauto 注册不可重复，使用单例）
func Default() *MetricsCollector {
	once.Do(func() {
		defaultCollector = newMetricsCollector()
	})
	return defaultCollector
}

func newMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		httpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		httpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		cacheHitsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_hits_total",
				Help: "Total number of cache hits",
			},
			[]string{"cache"},
		),
		cacheMissesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_misses_total",
				Help: "Total number of cache misses",
			},
			[]string{"cache"},
		),
		analyticsEventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "deal_analytics_events_total",
				Help: "Total number of tracked deal events",
			},
			[]string{"event"},
		),
		extractionTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "product_extraction_total",
				Help: "Total number of product extraction attempts",
			},
			[]string{"path", "result"},
		),
		revalidationTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "revalidation_requests_total",
				Help: "Total number of revalidation webhook calls",
			},
			[]string{"result"},
		),
	}
}

// RecordHTTPRequest 记录 HTTP 请求
func (mc *MetricsCollector) RecordHTTPRequest(method, endpoint, status string, duration time.Duration) {
	mc.httpRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	mc.httpRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordCacheHit 记录缓存命中
func (mc *MetricsCollector) RecordCacheHit(cache string) {
	mc.cacheHitsTotal.WithLabelValues(cache).Inc()
}

// RecordCacheMiss 记录缓存未命中
func (mc *MetricsCollector) RecordCacheMiss(cache string) {
	mc.cacheMissesTotal.WithLabelValues(cache).Inc()
}

// RecordAnalyticsEvent 记录统计事件
func (mc *MetricsCollector) RecordAnalyticsEvent(event string) {
	mc.analyticsEventsTotal.WithLabelValues(event).Inc()
}

// RecordExtraction 记录抓取结果 (path: api/html, result: success/failure)
func (mc *MetricsCollector) RecordExtraction(path, result string) {
	mc.extractionTotal.WithLabelValues(path, result).Inc()
}

// RecordRevalidation 记录页面刷新调用结果
func (mc *MetricsCollector) RecordRevalidation(result string) {
	mc.revalidationTotal.WithLabelValues(result).Inc()
}
