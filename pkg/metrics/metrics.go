package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Результаты бронирования для метрики bookings_total
const (
	OutcomeBooked   = "booked"
	OutcomeSlotFull = "slot_full"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Metrics набор метрик приложения со своим реестром.
// Все методы безопасны для nil-получателя: без метрик вызовы ничего не делают.
type Metrics struct {
	registry    *prometheus.Registry
	serviceName string

	DBQueryDuration *prometheus.HistogramVec
	DBQueryErrors   *prometheus.CounterVec
	DBConnections   *prometheus.GaugeVec

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	BookingsTotal    *prometheus.CounterVec
	TransitionsTotal *prometheus.CounterVec
	ReceiptsTotal    *prometheus.CounterVec
}

// New создает и регистрирует метрики для сервиса serviceName
func New(serviceName string) *Metrics {
	m := &Metrics{
		registry:    prometheus.NewRegistry(),
		serviceName: serviceName,

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Duration of database queries",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "operation"}),

		DBQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "db_query_errors_total",
			Help: "Number of failed database queries",
		}, []string{"service", "operation"}),

		DBConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections",
			Help: "Database pool connections by state",
		}, []string{"service", "state"}),

		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by route and status code",
		}, []string{"service", "method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "route"}),

		BookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "salon_bookings_total",
			Help: "Booking attempts by outcome",
		}, []string{"service", "outcome"}),

		TransitionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "salon_appointment_transitions_total",
			Help: "Appointment status transitions by target status",
		}, []string{"service", "status"}),

		ReceiptsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "salon_receipts_total",
			Help: "Generated receipts by result",
		}, []string{"service", "result"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.DBQueryDuration,
		m.DBQueryErrors,
		m.DBConnections,
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.BookingsTotal,
		m.TransitionsTotal,
		m.ReceiptsTotal,
	)

	return m
}

// Registry реестр для отдачи через promhttp
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveQuery(operation string, started time.Time, err error) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(m.serviceName, operation).Observe(time.Since(started).Seconds())
	if err != nil {
		m.DBQueryErrors.WithLabelValues(m.serviceName, operation).Inc()
	}
}

func (m *Metrics) SetConnections(state string, value int) {
	if m == nil {
		return
	}
	m.DBConnections.WithLabelValues(m.serviceName, state).Set(float64(value))
}

func (m *Metrics) ObserveRequest(method, route string, status int, started time.Time) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(m.serviceName, method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(m.serviceName, method, route).Observe(time.Since(started).Seconds())
}

func (m *Metrics) ObserveBooking(outcome string) {
	if m == nil {
		return
	}
	m.BookingsTotal.WithLabelValues(m.serviceName, outcome).Inc()
}

func (m *Metrics) ObserveTransition(status string) {
	if m == nil {
		return
	}
	m.TransitionsTotal.WithLabelValues(m.serviceName, status).Inc()
}

func (m *Metrics) ObserveReceipt(ok bool) {
	if m == nil {
		return
	}
	result := "ok"
	if !ok {
		result = "error"
	}
	m.ReceiptsTotal.WithLabelValues(m.serviceName, result).Inc()
}
