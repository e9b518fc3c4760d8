package validator

import (
	"fmt"
	"time"

	"slotkeeper/internal/interval"
	"slotkeeper/pkg/locale"
	"slotkeeper/pkg/model"
	"slotkeeper/pkg/sanitizer"
)

var bookingRules = []Rule[model.BookingDraft]{
	{
		Field:   "date",
		Message: "date must look like 2026-05-10",
		Violated: func(d *model.BookingDraft, _ Env) bool {
			return d.Date.Invalid()
		},
	},
	{
		Field:   "time",
		Message: "time must look like 9:30 AM or 4:15 PM",
		Violated: func(d *model.BookingDraft, env Env) bool {
			day, ok := bookingDay(d, env)
			if !ok || d.Time == "" {
				return false
			}
			_, err := env.TZ.Combine(day, d.Time)
			return err != nil
		},
	},
	{
		Field:   "date",
		Message: "date cannot be in the past",
		Violated: func(d *model.BookingDraft, env Env) bool {
			day, ok := bookingDay(d, env)
			if !ok {
				return false
			}
			return !interval.IsAtOrAfterReferenceMidnight(env.TZ, day, env.Now)
		},
	},
	{
		Field:   "time",
		Message: "time has already passed for today",
		Violated: func(d *model.BookingDraft, env Env) bool {
			at, ok := bookingInstant(d, env)
			if !ok {
				return false
			}
			return interval.IsAtOrAfterReferenceMidnight(env.TZ, at, env.Now) && at.Before(env.Now)
		},
	},
	{
		Field:   "groupSize",
		Message: "groupSize is required for group bookings",
		Violated: func(d *model.BookingDraft, _ Env) bool {
			return d.IsGroupBooking && d.GroupSize == nil
		},
	},
	{
		Field: "address.pincode",
		Messagef: func(d *model.BookingDraft, _ Env) string {
			return fmt.Sprintf("pincode must be %s for %s", locale.PostalCodeHint(d.Address.Country), sanitizer.TrimAndNormalize(d.Address.Country))
		},
		Violated: func(d *model.BookingDraft, _ Env) bool {
			if d.Address.Pincode == "" {
				return false
			}
			return !locale.ValidPostalCode(d.Address.Country, d.Address.Pincode)
		},
	},
}

// bookingDay is reference-zone midnight of the booking's day.
func bookingDay(d *model.BookingDraft, env Env) (time.Time, bool) {
	if d.Date.IsZero() || d.Date.Invalid() {
		return time.Time{}, false
	}
	return d.Date.Midnight(env.TZ.Location()), true
}

func bookingInstant(d *model.BookingDraft, env Env) (time.Time, bool) {
	day, ok := bookingDay(d, env)
	if !ok || d.Time == "" {
		return time.Time{}, false
	}
	at, err := env.TZ.Combine(day, d.Time)
	if err != nil {
		return time.Time{}, false
	}
	return at, true
}

// NormalizeBooking clears the group fields of a non-group booking, whatever the
// caller put there.
func NormalizeBooking(d *model.BookingDraft) {
	if d == nil || d.IsGroupBooking {
		return
	}
	d.GroupSize = nil
	d.GroupOfferID = nil
}

// ValidateBooking normalizes d in place, then checks it against now. It returns
// nil or a non-empty ValidationErrors.
func (e *Engine) ValidateBooking(d *model.BookingDraft, now time.Time) error {
	NormalizeBooking(d)
	return run(e, d, bookingRules, now)
}
