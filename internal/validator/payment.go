package validator

import (
	"time"

	"slotkeeper/pkg/model"
	"slotkeeper/pkg/sanitizer"
)

var paymentRules = []Rule[model.PaymentDraft]{
	{
		Field:   "paymentIntentId",
		Message: "paymentIntentId is required for stripe payments",
		Violated: func(d *model.PaymentDraft, _ Env) bool {
			return sanitizer.SameKey(d.Provider, model.ProviderStripe) && sanitizer.Blank(d.PaymentIntentID)
		},
	},
	{
		Field:   "transactionId",
		Message: "transactionId is required for razorpay UPI payments",
		Violated: func(d *model.PaymentDraft, _ Env) bool {
			return sanitizer.SameKey(d.Provider, model.ProviderRazorpay) &&
				sanitizer.Code(d.Method) == model.MethodUPI &&
				sanitizer.Blank(d.TransactionID)
		},
	},
	{
		Field:   "amount",
		Message: "amount must be greater than zero unless method is COD",
		Violated: func(d *model.PaymentDraft, _ Env) bool {
			return d.Amount.IsZero() && sanitizer.Code(d.Method) != model.MethodCOD
		},
	},
}

// ValidatePayment returns nil or a non-empty ValidationErrors. now is accepted
// for symmetry with the other kinds; no payment rule reads the clock.
func (e *Engine) ValidatePayment(d *model.PaymentDraft, now time.Time) error {
	return run(e, d, paymentRules, now)
}
