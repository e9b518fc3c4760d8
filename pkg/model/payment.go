package model

import "github.com/shopspring/decimal"

type RelationKind string

const (
	RelatedToOrder        RelationKind = "order"
	RelatedToBooking      RelationKind = "booking"
	RelatedToSubscription RelationKind = "subscription"
	RelatedToRefund       RelationKind = "refund"
	RelatedToOther        RelationKind = "other"
)

const (
	ProviderStripe   = "stripe"
	ProviderRazorpay = "razorpay"

	MethodUPI = "UPI"
	MethodCOD = "COD"
)

type PaymentDraft struct {
	RelatedTo       RelationKind    `json:"relatedTo" validate:"required,oneof=order booking subscription refund other"`
	ReferenceID     string          `json:"referenceId" validate:"required,max=64"`
	Amount          decimal.Decimal `json:"amount" validate:"gte=0"`
	Currency        string          `json:"currency" validate:"required,currency_code"`
	Provider        string          `json:"provider" validate:"required,max=50"`
	Method          string          `json:"method" validate:"required,max=50"`
	TransactionID   string          `json:"transactionId,omitempty" validate:"omitempty,max=128"`
	PaymentIntentID string          `json:"paymentIntentId,omitempty" validate:"omitempty,max=128"`
	Note            string          `json:"note,omitempty" validate:"omitempty,max=500"`
}
