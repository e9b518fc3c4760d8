package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	KindBooking      = "booking"
	KindDeliverySlot = "delivery_slot"
	KindPayment      = "payment"

	OutcomeValid   = "valid"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"

	ConflictFound = "conflict"
	ConflictClear = "clear"
)

// Metrics tracks validation outcomes and conflict checks per record kind.
type Metrics struct {
	Validations        *prometheus.CounterVec
	ValidationDuration *prometheus.HistogramVec
	ConflictChecks     *prometheus.CounterVec
	SlotStatuses       *prometheus.CounterVec
}

// New registers every collector with reg. The binary passes
// prometheus.DefaultRegisterer; tests pass a fresh registry.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Validations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "slotkeeper_validations_total",
			Help: "Total number of draft validations by record kind and outcome",
		}, []string{"kind", "outcome"}),
		ValidationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "slotkeeper_validation_duration_seconds",
			Help:    "Duration of draft validations by record kind",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}, []string{"kind"}),
		ConflictChecks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "slotkeeper_conflict_checks_total",
			Help: "Total number of conflict checks by record kind and result",
		}, []string{"kind", "result"}),
		SlotStatuses: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "slotkeeper_slot_status_total",
			Help: "Delivery slot status lookups by derived status",
		}, []string{"status"}),
	}
}

// ObserveValidation records one validation call.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveValidation(kind, outcome string, start time.Time) {
	m.Validations.WithLabelValues(kind, outcome).Inc()
	m.ValidationDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}

func (m *Metrics) IncrementConflictCheck(kind string, hasConflict bool) {
	result := ConflictClear
	if hasConflict {
		result = ConflictFound
	}
	m.ConflictChecks.WithLabelValues(kind, result).Inc()
}

func (m *Metrics) IncrementSlotStatus(status string) {
	m.SlotStatuses.WithLabelValues(status).Inc()
}
