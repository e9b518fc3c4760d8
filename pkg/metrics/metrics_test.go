package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveValidation(KindBooking, OutcomeValid, time.Now())
	m.ObserveValidation(KindBooking, OutcomeInvalid, time.Now())
	m.ObserveValidation(KindBooking, OutcomeInvalid, time.Now())
	m.IncrementConflictCheck(KindDeliverySlot, true)
	m.IncrementConflictCheck(KindDeliverySlot, false)
	m.IncrementSlotStatus("full")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Validations.WithLabelValues(KindBooking, OutcomeValid)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Validations.WithLabelValues(KindBooking, OutcomeInvalid)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ConflictChecks.WithLabelValues(KindDeliverySlot, ConflictFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ConflictChecks.WithLabelValues(KindDeliverySlot, ConflictClear)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SlotStatuses.WithLabelValues("full")))

	count, err := testutil.GatherAndCount(reg, "slotkeeper_validation_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNew_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
}
