package interval

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotkeeper/internal/timezone"
)

var day = time.Date(2026, time.May, 4, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func rng(sh, sm, eh, em int) TimeRange {
	return TimeRange{Start: at(sh, sm), End: at(eh, em)}
}

func TestNew(t *testing.T) {
	r, err := New(at(9, 0), at(10, 0))
	require.NoError(t, err)
	assert.True(t, r.Valid())

	_, err = New(at(10, 0), at(10, 0))
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = New(at(11, 0), at(10, 0))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestDurationMinutes(t *testing.T) {
	tests := []struct {
		name string
		r    TimeRange
		want int64
	}{
		{name: "one hour", r: rng(9, 0, 10, 0), want: 60},
		{name: "partial minute truncated", r: TimeRange{Start: at(9, 0), End: at(9, 1).Add(59 * time.Second)}, want: 1},
		{name: "empty", r: rng(9, 0, 9, 0), want: 0},
		{name: "swapped endpoints clamp to zero", r: rng(10, 0, 9, 0), want: 0},
		{name: "twelve hours", r: rng(6, 0, 18, 0), want: 720},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DurationMinutes(tt.r))
		})
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b TimeRange
		want bool
	}{
		{name: "touching endpoints", a: rng(9, 0, 10, 0), b: rng(10, 0, 11, 0), want: false},
		{name: "partial overlap", a: rng(9, 0, 10, 30), b: rng(10, 0, 11, 0), want: true},
		{name: "containment", a: rng(9, 0, 12, 0), b: rng(10, 0, 11, 0), want: true},
		{name: "identical", a: rng(9, 0, 10, 0), b: rng(9, 0, 10, 0), want: true},
		{name: "disjoint", a: rng(9, 0, 10, 0), b: rng(11, 0, 12, 0), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
			assert.Equal(t, tt.want, Overlaps(tt.b, tt.a), "overlap must be symmetric")
		})
	}
}

func TestContains(t *testing.T) {
	r := rng(9, 0, 10, 0)
	assert.True(t, r.Contains(at(9, 0)))
	assert.True(t, r.Contains(at(9, 59)))
	assert.False(t, r.Contains(at(10, 0)))
	assert.False(t, r.Contains(at(8, 59)))
}

func TestIsAtOrAfterReferenceMidnight(t *testing.T) {
	tz := timezone.Default()
	// 2026-05-04 15:00 IST
	now := time.Date(2026, time.May, 4, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		instant time.Time
		want    bool
	}{
		{name: "earlier the same reference day", instant: time.Date(2026, time.May, 3, 18, 30, 0, 0, time.UTC), want: true},
		{name: "just before reference midnight", instant: time.Date(2026, time.May, 3, 18, 29, 0, 0, time.UTC), want: false},
		{name: "tomorrow", instant: now.Add(24 * time.Hour), want: true},
		{name: "yesterday", instant: now.Add(-24 * time.Hour), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAtOrAfterReferenceMidnight(tz, tt.instant, now))
		})
	}
}
