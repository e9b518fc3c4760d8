package model

import (
	"github.com/shopspring/decimal"
)

// BookingDraft is the caller's form state for a purohit booking. It carries no
// identifier; one is assigned by whatever stores the validated draft.
type BookingDraft struct {
	PurohitID      string            `json:"purohitId" validate:"required,max=64"`
	EventID        string            `json:"eventId" validate:"required,max=64"`
	Date           CalendarDate      `json:"date" validate:"required"`
	Time           string            `json:"time" validate:"required"`
	Amount         decimal.Decimal   `json:"amount" validate:"gte=0"`
	IsGroupBooking bool              `json:"isGroupBooking"`
	GroupSize      *int              `json:"groupSize,omitempty" validate:"omitempty,min=2,max=10000"`
	GroupOfferID   *string           `json:"groupOfferId,omitempty" validate:"omitempty,max=64"`
	Address        Address           `json:"address"`
	Notes          map[string]string `json:"notes,omitempty" validate:"omitempty,max=20,dive,max=1000"`
}

type Address struct {
	AddressLine1 string `json:"addressLine1" validate:"required,max=200"`
	AddressLine2 string `json:"addressLine2,omitempty" validate:"omitempty,max=200"`
	City         string `json:"city" validate:"required,max=100"`
	State        string `json:"state" validate:"required,max=100"`
	Pincode      string `json:"pincode" validate:"required,max=20"`
	Country      string `json:"country" validate:"required,max=100"`
	IsDefault    bool   `json:"isDefault"`
}

// Units is the number of people the booking amount is shared across.
func (b *BookingDraft) Units() int {
	if b.IsGroupBooking && b.GroupSize != nil {
		return *b.GroupSize
	}
	return 1
}
