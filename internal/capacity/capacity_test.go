package capacity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"slotkeeper/internal/interval"
	"slotkeeper/internal/timezone"
	"slotkeeper/pkg/model"
)

func TestRemaining(t *testing.T) {
	tests := []struct {
		max, current, want int
	}{
		{max: 10, current: 10, want: 0},
		{max: 10, current: 3, want: 7},
		{max: 10, current: 12, want: 0},
		{max: 1, current: 0, want: 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Remaining(tt.max, tt.current), "Remaining(%d, %d)", tt.max, tt.current)
	}
}

func TestStatusOf(t *testing.T) {
	start := time.Date(2026, time.July, 10, 4, 30, 0, 0, time.UTC)
	r := interval.TimeRange{Start: start, End: start.Add(2 * time.Hour)}

	tests := []struct {
		name      string
		remaining int
		now       time.Time
		want      Status
	}{
		{name: "full wins over upcoming", remaining: 0, now: start.Add(-time.Hour), want: Full},
		{name: "full wins over in progress", remaining: 0, now: start.Add(time.Minute), want: Full},
		{name: "full wins over expired", remaining: 0, now: start.Add(5 * time.Hour), want: Full},
		{name: "upcoming", remaining: 3, now: start.Add(-time.Nanosecond), want: Upcoming},
		{name: "in progress at start", remaining: 3, now: start, want: InProgress},
		{name: "expired at end", remaining: 3, now: r.End, want: Expired},
		{name: "expired later", remaining: 3, now: r.End.Add(time.Hour), want: Expired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusOf(r, tt.remaining, tt.now))
		})
	}
}

func TestStatusOf_FullyBookedFutureSlot(t *testing.T) {
	start := time.Date(2026, time.July, 10, 4, 30, 0, 0, time.UTC)
	r := interval.TimeRange{Start: start, End: start.Add(time.Hour)}

	remaining := Remaining(10, 10)
	assert.Zero(t, remaining)
	assert.Equal(t, Full, StatusOf(r, remaining, start.Add(-24*time.Hour)))
}

func TestOccupancyRate(t *testing.T) {
	assert.InDelta(t, 0.0, OccupancyRate(0, 0), 1e-9)
	assert.InDelta(t, 25.0, OccupancyRate(4, 3), 1e-9)
	assert.InDelta(t, 100.0, OccupancyRate(4, 0), 1e-9)
}

func TestDescribe(t *testing.T) {
	tz := timezone.Default()
	slot := &model.DeliverySlotDraft{
		StartTime:     time.Date(2026, time.July, 10, 4, 30, 0, 0, time.UTC),
		EndTime:       time.Date(2026, time.July, 10, 6, 30, 0, 0, time.UTC),
		MaxOrders:     20,
		CurrentOrders: 5,
		IsActive:      true,
	}

	snap := Describe(tz, slot, slot.StartTime.Add(30*time.Minute))

	assert.Equal(t, "10:00 AM - 12:00 PM IST", snap.Label)
	assert.Equal(t, 15, snap.Remaining)
	assert.Equal(t, InProgress, snap.Status)
	assert.InDelta(t, 25.0, snap.OccupancyRate, 1e-9)
	assert.True(t, snap.Range.Start.Equal(slot.StartTime))
}
