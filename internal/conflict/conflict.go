// Package conflict finds collisions between a candidate and a caller-supplied
// snapshot of existing delivery slots or bookings. It performs no I/O; how fresh
// the snapshot is remains the caller's concern.
package conflict

import (
	"time"

	"slotkeeper/internal/interval"
	"slotkeeper/internal/timezone"
	"slotkeeper/pkg/model"
)

// Result lists every existing item the candidate collides with, in input order.
type Result[T any] struct {
	HasConflict      bool `json:"hasConflict"`
	ConflictingItems []T  `json:"conflictingItems"`
}

func newResult[T any](items []T) Result[T] {
	if items == nil {
		items = []T{}
	}
	return Result[T]{HasConflict: len(items) > 0, ConflictingItems: items}
}

// FindOverlaps returns every range in existing that overlaps candidate.
func FindOverlaps(candidate interval.TimeRange, existing []interval.TimeRange) Result[interval.TimeRange] {
	var hits []interval.TimeRange
	for _, item := range existing {
		if interval.Overlaps(candidate, item) {
			hits = append(hits, item)
		}
	}
	return newResult(hits)
}

// BookingSlot identifies the discrete slot a booking occupies. Ref is opaque to
// this package and only carried through to the result.
type BookingSlot struct {
	Ref        string             `json:"ref,omitempty"`
	ResourceID string             `json:"resourceId"`
	Date       model.CalendarDate `json:"date"`
	TimeOfDay  string             `json:"timeOfDay"`
}

type slotKey struct {
	resourceID string
	year       int
	month      time.Month
	day        int
	minutes    int
}

func keyOf(tz *timezone.Normalizer, s BookingSlot) (slotKey, error) {
	switch {
	case s.Date.Invalid():
		return slotKey{}, &timezone.ParseError{Input: s.Date.Raw(), Reason: "date must look like 2026-05-10", Err: timezone.ErrInvalidDate}
	case s.Date.IsZero():
		return slotKey{}, &timezone.ParseError{Input: "", Reason: "date is required", Err: timezone.ErrMissingDate}
	}
	minutes, err := timezone.ParseTimeOfDay(s.TimeOfDay)
	if err != nil {
		return slotKey{}, err
	}
	y, m, d := s.Date.Midnight(tz.Location()).Date()
	return slotKey{resourceID: s.ResourceID, year: y, month: m, day: d, minutes: minutes}, nil
}

// FindBookingConflicts matches bookings on resource, reference-zone day and
// parsed time of day, so "9:00 AM" and "09:00 AM" name the same slot. A
// candidate whose date or label does not parse is an error; existing entries
// that do not parse can never match and are skipped.
func FindBookingConflicts(tz *timezone.Normalizer, candidate BookingSlot, existing []BookingSlot) (Result[BookingSlot], error) {
	want, err := keyOf(tz, candidate)
	if err != nil {
		return Result[BookingSlot]{}, err
	}

	var hits []BookingSlot
	for _, item := range existing {
		got, err := keyOf(tz, item)
		if err != nil {
			continue
		}
		if got == want {
			hits = append(hits, item)
		}
	}
	return newResult(hits), nil
}
