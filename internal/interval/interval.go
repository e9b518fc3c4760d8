package interval

import (
	"errors"
	"time"

	"slotkeeper/internal/timezone"
)

var ErrInvalidRange = errors.New("end must be after start")

// TimeRange is a half-open interval [Start, End).
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// New returns a range, rejecting End <= Start.
func New(start, end time.Time) (TimeRange, error) {
	if !end.After(start) {
		return TimeRange{}, ErrInvalidRange
	}
	return TimeRange{Start: start, End: end}, nil
}

// Valid reports whether End is strictly after Start.
func (r TimeRange) Valid() bool {
	return r.End.After(r.Start)
}

// Contains reports start <= t < end.
func (r TimeRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// DurationMinutes is the whole minutes between Start and End. Swapped endpoints
// yield 0 rather than a negative value; rejecting them is the validator's job.
func DurationMinutes(r TimeRange) int64 {
	d := max(0, r.End.Sub(r.Start))
	return int64(d / time.Minute)
}

// Overlaps reports whether two ranges share any instant. Ranges that only touch
// at an endpoint do not overlap.
func Overlaps(a, b TimeRange) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// IsAtOrAfterReferenceMidnight reports whether instant falls on or after the start
// of now's day, with both projected into the reference zone.
func IsAtOrAfterReferenceMidnight(tz *timezone.Normalizer, instant, now time.Time) bool {
	return !tz.ToReferenceZone(instant).Before(tz.StartOfDay(now))
}
