package capacity

import (
	"time"

	"slotkeeper/internal/interval"
	"slotkeeper/internal/timezone"
	"slotkeeper/pkg/model"
)

type Status string

const (
	Upcoming   Status = "upcoming"
	InProgress Status = "in_progress"
	Full       Status = "full"
	Expired    Status = "expired"
)

// Remaining is the unused capacity, never negative.
func Remaining(maxOrders, currentOrders int) int {
	return max(0, maxOrders-currentOrders)
}

// StatusOf classifies a slot. A full slot reports Full regardless of where now
// falls, so a fully booked future slot is Full rather than Upcoming.
func StatusOf(r interval.TimeRange, remaining int, now time.Time) Status {
	switch {
	case remaining == 0:
		return Full
	case now.Before(r.Start):
		return Upcoming
	case r.Contains(now):
		return InProgress
	default:
		return Expired
	}
}

// OccupancyRate returns the booked share of capacity as a percentage (0-100).
func OccupancyRate(maxOrders, remaining int) float64 {
	if maxOrders <= 0 {
		return 0
	}
	occupied := maxOrders - remaining
	return float64(occupied) / float64(maxOrders) * 100
}

// Snapshot is the derived, display-ready view of a delivery slot at a given now.
type Snapshot struct {
	Range         interval.TimeRange `json:"range"`
	Label         string             `json:"label"`
	Remaining     int                `json:"remaining"`
	Status        Status             `json:"status"`
	OccupancyRate float64            `json:"occupancyRate"`
}

// Describe computes remaining capacity, the formatted range and status for slot.
func Describe(tz *timezone.Normalizer, slot *model.DeliverySlotDraft, now time.Time) Snapshot {
	r := interval.TimeRange{Start: slot.StartTime, End: slot.EndTime}
	remaining := Remaining(slot.MaxOrders, slot.CurrentOrders)

	return Snapshot{
		Range:         r,
		Label:         tz.FormatRange(r.Start, r.End),
		Remaining:     remaining,
		Status:        StatusOf(r, remaining, now),
		OccupancyRate: OccupancyRate(slot.MaxOrders, remaining),
	}
}
