package model

import "time"

type DeliverySlotDraft struct {
	StartTime     time.Time `json:"startTime" validate:"required"`
	EndTime       time.Time `json:"endTime" validate:"required"`
	MaxOrders     int       `json:"maxOrders" validate:"min=1"`
	CurrentOrders int       `json:"currentOrders" validate:"min=0"`
	IsActive      bool      `json:"isActive"`
	Description   string    `json:"description,omitempty" validate:"omitempty,max=500"`
}
