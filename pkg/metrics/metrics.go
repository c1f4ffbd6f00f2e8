// Package metrics 提供基于Prometheus的指标收集
//
// # 指标类型
//
//   - Counter：只增不减，如请求总数、图书创建数
//   - Gauge：可增可减，如处理中的请求数、熔断器状态
//   - Histogram：观测值分布，如请求耗时
//
// # 命名规范
//
//   - Counter以 _total 结尾
//   - Histogram以单位结尾（_seconds）
//   - 标签只用低基数维度（method、route、status），不要用用户名或图书ID
//
// 所有指标在包初始化时注册到默认Registry，由 /metrics 端点暴露。
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bookstore"

// =========================================
// HTTP指标
// =========================================

var (
	// HTTPRequestsTotal HTTP请求总数
	// 标签：method、route（gin路由模板，如/api/book/:id）、status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP请求总数",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration HTTP请求耗时
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP请求耗时（秒）",
			Buckets:   []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"method", "route"},
	)

	// HTTPRequestsInProgress 正在处理的HTTP请求数
	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_progress",
			Help:      "正在处理的HTTP请求数",
		},
	)
)

// =========================================
// 业务指标
// =========================================

var (
	// BooksCreatedTotal 新增图书总数
	BooksCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "books_created_total",
		Help:      "新增图书总数",
	})

	// BooksDeletedTotal 删除图书总数
	BooksDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "books_deleted_total",
		Help:      "删除图书总数",
	})

	// ReviewsCreatedTotal 新增书评总数
	ReviewsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reviews_created_total",
		Help:      "新增书评总数",
	})

	// WishlistMovesTotal 从心愿单移入购物车的次数
	WishlistMovesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "wishlist_moves_total",
		Help:      "心愿单移入购物车次数",
	})

	// AdminLoginsTotal 管理员登录次数
	// 标签：result（success/failure）
	AdminLoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "admin_logins_total",
			Help:      "管理员登录次数",
		},
		[]string{"result"},
	)
)

// =========================================
// 基础设施指标
// =========================================

var (
	// CircuitBreakerState 熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "circuit_breaker_state",
			Help:      "熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）",
		},
		[]string{"name"},
	)

	// EventsPublishedTotal 领域事件发布次数
	// 标签：routing_key、result（success/failure/rejected）
	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_published_total",
			Help:      "领域事件发布次数",
		},
		[]string{"routing_key", "result"},
	)
)

// IncCounter 递增Counter
func IncCounter(counter prometheus.Counter) {
	counter.Inc()
}

// IncCounterVec 递增CounterVec（带标签）
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	counter.With(labels).Inc()
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	gauge.Inc()
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	gauge.Dec()
}

// SetGaugeVec 设置GaugeVec值（带标签）
func SetGaugeVec(gauge *prometheus.GaugeVec, labels map[string]string, value float64) {
	gauge.With(labels).Set(value)
}

// ObserveHistogramVec 记录HistogramVec观测值（带标签）
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	histogram.With(labels).Observe(value)
}
