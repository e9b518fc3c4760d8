package validator

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"slotkeeper/pkg/model"
)

var slotStart = time.Date(2026, time.May, 10, 4, 30, 0, 0, time.UTC)

func validSlot() *model.DeliverySlotDraft {
	return &model.DeliverySlotDraft{
		StartTime:     slotStart,
		EndTime:       slotStart.Add(2 * time.Hour),
		MaxOrders:     10,
		CurrentOrders: 3,
		IsActive:      true,
		Description:   "Morning prasad delivery",
	}
}

func TestValidateDeliverySlot(t *testing.T) {
	engine := newTestEngine()

	tests := []struct {
		name       string
		mutate     func(s *model.DeliverySlotDraft)
		wantFields []string
	}{
		{
			name:   "valid slot",
			mutate: func(s *model.DeliverySlotDraft) {},
		},
		{
			name:   "exactly twelve hours",
			mutate: func(s *model.DeliverySlotDraft) { s.EndTime = s.StartTime.Add(12 * time.Hour) },
		},
		{
			name:       "thirteen hours",
			mutate:     func(s *model.DeliverySlotDraft) { s.EndTime = s.StartTime.Add(13 * time.Hour) },
			wantFields: []string{"endTime"},
		},
		{
			name:       "end equals start",
			mutate:     func(s *model.DeliverySlotDraft) { s.EndTime = s.StartTime },
			wantFields: []string{"endTime"},
		},
		{
			name:       "end before start",
			mutate:     func(s *model.DeliverySlotDraft) { s.EndTime = s.StartTime.Add(-time.Hour) },
			wantFields: []string{"endTime"},
		},
		{
			name:   "full slot is valid",
			mutate: func(s *model.DeliverySlotDraft) { s.CurrentOrders = s.MaxOrders },
		},
		{
			name:       "over capacity",
			mutate:     func(s *model.DeliverySlotDraft) { s.CurrentOrders = 11 },
			wantFields: []string{"currentOrders"},
		},
		{
			name:       "negative current orders",
			mutate:     func(s *model.DeliverySlotDraft) { s.CurrentOrders = -1 },
			wantFields: []string{"currentOrders"},
		},
		{
			name:       "zero max orders",
			mutate:     func(s *model.DeliverySlotDraft) { s.MaxOrders = 0 },
			wantFields: []string{"maxOrders", "currentOrders"},
		},
		{
			name:       "missing start time",
			mutate:     func(s *model.DeliverySlotDraft) { s.StartTime = time.Time{} },
			wantFields: []string{"startTime"},
		},
		{
			name: "every rule reported together",
			mutate: func(s *model.DeliverySlotDraft) {
				s.Description = strings.Repeat("x", 501)
				s.EndTime = s.StartTime.Add(-time.Minute)
				s.CurrentOrders = 50
			},
			wantFields: []string{"description", "endTime", "currentOrders"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSlot()
			tt.mutate(s)

			err := engine.ValidateDeliverySlot(s, referenceNow)
			if tt.wantFields == nil {
				if err != nil {
					t.Fatalf("ValidateDeliverySlot() unexpected error: %v", err)
				}
				return
			}

			verrs := asValidationErrors(t, err)
			if got := verrs.Fields(); !reflect.DeepEqual(got, tt.wantFields) {
				t.Errorf("fields = %v, want %v (%v)", got, tt.wantFields, verrs)
			}
		})
	}
}

func TestValidateDeliverySlot_TwelveHourMessage(t *testing.T) {
	engine := newTestEngine()
	s := validSlot()
	s.EndTime = s.StartTime.Add(13 * time.Hour)

	verrs := asValidationErrors(t, engine.ValidateDeliverySlot(s, referenceNow))
	msgs := verrs.For("endTime")
	if len(msgs) != 1 || !strings.Contains(msgs[0], "12 hours") {
		t.Errorf("unexpected endTime messages: %v", msgs)
	}
}

func TestValidateDeliverySlot_CustomLimit(t *testing.T) {
	engine := newTestEngine(WithMaxSlotMinutes(90))
	s := validSlot()

	verrs := asValidationErrors(t, engine.ValidateDeliverySlot(s, referenceNow))
	msgs := verrs.For("endTime")
	if len(msgs) != 1 || !strings.Contains(msgs[0], "90 minutes") {
		t.Errorf("unexpected endTime messages: %v", msgs)
	}

	s.EndTime = s.StartTime.Add(90 * time.Minute)
	if err := engine.ValidateDeliverySlot(s, referenceNow); err != nil {
		t.Errorf("a slot at the limit should pass, got %v", err)
	}
}

func TestDescribeMinutes(t *testing.T) {
	tests := map[int64]string{
		60:  "1 hour",
		720: "12 hours",
		90:  "90 minutes",
	}
	for in, want := range tests {
		if got := describeMinutes(in); got != want {
			t.Errorf("describeMinutes(%d) = %q, want %q", in, got, want)
		}
	}
}
