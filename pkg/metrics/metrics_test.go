package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New("salon")

	m.ObserveBooking(OutcomeBooked)
	m.ObserveBooking(OutcomeBooked)
	m.ObserveBooking(OutcomeSlotFull)
	m.ObserveTransition("confirmado")
	m.ObserveReceipt(false)
	m.ObserveQuery("SELECT", time.Now(), errors.New("boom"))
	m.ObserveRequest("GET", "/health", 200, time.Now())

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingsTotal.WithLabelValues("salon", OutcomeBooked)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingsTotal.WithLabelValues("salon", OutcomeSlotFull)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TransitionsTotal.WithLabelValues("salon", "confirmado")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReceiptsTotal.WithLabelValues("salon", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("salon", "SELECT")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("salon", "GET", "/health", "200")))
}

func TestMetrics_NilReceiverIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveBooking(OutcomeBooked)
		m.ObserveTransition("cancelado")
		m.ObserveReceipt(true)
		m.ObserveQuery("INSERT", time.Now(), nil)
		m.SetConnections("idle", 2)
		m.ObserveRequest("GET", "/metrics", 200, time.Now())
	})
}

func TestNew_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New("a")
		New("b")
	})
}
