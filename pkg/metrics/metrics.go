package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus-метрик сервиса
// Все методы безопасны для nil-получателя: при выключенных метриках ничего не делают
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueriesTotal   *prometheus.CounterVec
	DBQueryDuration  *prometheus.HistogramVec
	DBOpenConns      *prometheus.GaugeVec
	DBInUseConns     *prometheus.GaugeVec
	DBIdleConns      *prometheus.GaugeVec
	DBWaitCountTotal *prometheus.GaugeVec

	BookingsTotal        *prometheus.CounterVec
	BookingLockWait      *prometheus.HistogramVec
	AvailabilityRequests *prometheus.CounterVec
	EventsPublished      *prometheus.CounterVec
}

// New регистрирует метрики в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry регистрирует метрики в указанном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of database queries",
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),
		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		DBOpenConns: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of open connections",
			ConstLabels: constLabels,
		}, []string{}),
		DBInUseConns: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections in use",
			ConstLabels: constLabels,
		}, []string{}),
		DBIdleConns: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}, []string{}),
		DBWaitCountTotal: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_wait_count_total",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}, []string{}),

		BookingsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_total",
			Help:        "Booking attempts by result and meeting mode",
			ConstLabels: constLabels,
		}, []string{"result", "mode"}),
		BookingLockWait: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "booking_lock_wait_seconds",
			Help:        "Time spent waiting for per-staff booking locks",
			ConstLabels: constLabels,
			Buckets:     []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 5},
		}, []string{"result"}),
		AvailabilityRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_requests_total",
			Help:        "Availability queries by output form",
			ConstLabels: constLabels,
		}, []string{"form"}),
		EventsPublished: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_events_published_total",
			Help:        "Booking events sent to the broker",
			ConstLabels: constLabels,
		}, []string{"type", "status"}),
	}
}

// RecordHTTPRequest фиксирует HTTP запрос
func (m *Metrics) RecordHTTPRequest(method, route, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordDBQuery фиксирует запрос к БД
func (m *Metrics) RecordDBQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.DBQueriesTotal.WithLabelValues(operation, status).Inc()
	m.DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordDBPool фиксирует состояние пула соединений
func (m *Metrics) RecordDBPool(open, inUse, idle int, waitCount int64) {
	if m == nil {
		return
	}
	m.DBOpenConns.WithLabelValues().Set(float64(open))
	m.DBInUseConns.WithLabelValues().Set(float64(inUse))
	m.DBIdleConns.WithLabelValues().Set(float64(idle))
	m.DBWaitCountTotal.WithLabelValues().Set(float64(waitCount))
}

// RecordBooking фиксирует результат попытки бронирования
func (m *Metrics) RecordBooking(result, mode string) {
	if m == nil {
		return
	}
	m.BookingsTotal.WithLabelValues(result, mode).Inc()
}

// RecordLockWait фиксирует время ожидания блокировки сотрудника
func (m *Metrics) RecordLockWait(result string, duration time.Duration) {
	if m == nil {
		return
	}
	m.BookingLockWait.WithLabelValues(result).Observe(duration.Seconds())
}

// RecordAvailabilityRequest фиксирует запрос доступности
func (m *Metrics) RecordAvailabilityRequest(form string) {
	if m == nil {
		return
	}
	m.AvailabilityRequests.WithLabelValues(form).Inc()
}

// RecordEventPublished фиксирует отправку события в брокер
func (m *Metrics) RecordEventPublished(eventType string, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.EventsPublished.WithLabelValues(eventType, status).Inc()
}
