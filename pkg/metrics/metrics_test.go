package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_RecordBooking(t *testing.T) {
	m := NewWithRegistry("test", prometheus.NewRegistry())

	m.RecordBooking("created", "physique")
	m.RecordBooking("created", "physique")
	m.RecordBooking("conflict", "visio")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingsTotal.WithLabelValues("created", "physique")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingsTotal.WithLabelValues("conflict", "visio")))
}

func TestMetrics_NilReceiverIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordBooking("created", "visio")
		m.RecordHTTPRequest("GET", "/x", "200", time.Millisecond)
		m.RecordDBQuery("SELECT", time.Millisecond, nil)
		m.RecordDBPool(1, 1, 0, 0)
		m.RecordLockWait("acquired", time.Millisecond)
		m.RecordAvailabilityRequest("merged")
		m.RecordEventPublished("booking.created", nil)
	})
}
