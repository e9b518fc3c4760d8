package validator

import (
	"fmt"
	"time"

	"slotkeeper/internal/interval"
	"slotkeeper/pkg/model"
)

var deliverySlotRules = []Rule[model.DeliverySlotDraft]{
	{
		Field:   "endTime",
		Message: "endTime must be after startTime",
		Violated: func(d *model.DeliverySlotDraft, _ Env) bool {
			if d.StartTime.IsZero() || d.EndTime.IsZero() {
				return false
			}
			return !slotRange(d).Valid()
		},
	},
	{
		Field:   "currentOrders",
		Message: "currentOrders cannot exceed maxOrders",
		Violated: func(d *model.DeliverySlotDraft, _ Env) bool {
			return d.CurrentOrders > d.MaxOrders
		},
	},
	{
		Field: "endTime",
		Messagef: func(_ *model.DeliverySlotDraft, env Env) string {
			return fmt.Sprintf("slot cannot be longer than %s (%d minutes)", describeMinutes(env.MaxSlotMinutes), env.MaxSlotMinutes)
		},
		Violated: func(d *model.DeliverySlotDraft, env Env) bool {
			r := slotRange(d)
			if d.StartTime.IsZero() || d.EndTime.IsZero() || !r.Valid() {
				return false
			}
			return interval.DurationMinutes(r) > env.MaxSlotMinutes
		},
	},
}

func slotRange(d *model.DeliverySlotDraft) interval.TimeRange {
	return interval.TimeRange{Start: d.StartTime, End: d.EndTime}
}

func describeMinutes(minutes int64) string {
	if minutes%60 == 0 {
		hours := minutes / 60
		if hours == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", hours)
	}
	return fmt.Sprintf("%d minutes", minutes)
}

// ValidateDeliverySlot returns nil or a non-empty ValidationErrors.
func (e *Engine) ValidateDeliverySlot(d *model.DeliverySlotDraft, now time.Time) error {
	return run(e, d, deliverySlotRules, now)
}
