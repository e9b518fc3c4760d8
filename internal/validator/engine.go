package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"slotkeeper/internal/timezone"
	"slotkeeper/pkg/logger"
	"slotkeeper/pkg/model"
)

// DefaultMaxSlotMinutes caps a delivery slot at 12 hours.
const DefaultMaxSlotMinutes int64 = 12 * 60

var currencyCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// Env is everything a relational rule may read besides the draft itself.
type Env struct {
	Now            time.Time
	TZ             *timezone.Normalizer
	MaxSlotMinutes int64
}

// Rule is one relational check. Violated reads the whole draft and reports
// whether Field should get Message. Messagef, when set, builds the message from
// the draft instead.
type Rule[T any] struct {
	Field    string
	Message  string
	Messagef func(d *T, env Env) string
	Violated func(d *T, env Env) bool
}

func (r Rule[T]) message(d *T, env Env) string {
	if r.Messagef != nil {
		return r.Messagef(d, env)
	}
	return r.Message
}

// evaluate runs every rule in declaration order and never stops early.
func evaluate[T any](rules []Rule[T], d *T, env Env) ValidationErrors {
	var errs ValidationErrors
	for _, rule := range rules {
		if rule.Violated(d, env) {
			errs = append(errs, ValidationError{Field: rule.Field, Message: rule.message(d, env)})
		}
	}
	return errs
}

type Option func(*Engine)

// WithMaxSlotMinutes overrides the delivery slot length limit.
func WithMaxSlotMinutes(minutes int64) Option {
	return func(e *Engine) {
		if minutes > 0 {
			e.maxSlotMinutes = minutes
		}
	}
}

// Engine validates booking, delivery slot and payment drafts in two phases:
// struct tags first, then the relational rule table for the record kind. It holds
// no per-call state and is safe for concurrent use.
type Engine struct {
	validate       *validator.Validate
	tz             *timezone.Normalizer
	maxSlotMinutes int64
	logger         *logger.Logger
}

func NewEngine(log *logger.Logger, tz *timezone.Normalizer, opts ...Option) *Engine {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(jsonFieldName)
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	v.RegisterCustomTypeFunc(calendarDateValue, model.CalendarDate{})

	if err := v.RegisterValidation("currency_code", validateCurrencyCode); err != nil {
		log.Fatal("Failed to register 'currency_code' validator", "error", err)
	}

	e := &Engine{
		validate:       v,
		tz:             tz,
		maxSlotMinutes: DefaultMaxSlotMinutes,
		logger:         log,
	}
	for _, opt := range opts {
		opt(e)
	}

	log.Info("Validation engine initialized successfully",
		"reference_zone", tz.Location().String(),
		"max_slot_minutes", e.maxSlotMinutes,
	)

	return e
}

func (e *Engine) env(now time.Time) Env {
	return Env{Now: now, TZ: e.tz, MaxSlotMinutes: e.maxSlotMinutes}
}

// run is the shared two-phase pipeline: structural errors first, relational
// errors after, in one list.
func run[T any](e *Engine, d *T, rules []Rule[T], now time.Time) error {
	if d == nil {
		return ErrNilDraft
	}

	errs, err := e.structural(d)
	if err != nil {
		return err
	}
	errs = append(errs, evaluate(rules, d, e.env(now))...)
	return errs.result()
}

func (e *Engine) structural(s any) (ValidationErrors, error) {
	err := e.validate.Struct(s)
	if err == nil {
		return nil, nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return e.translateValidationErrors(validationErrs), nil
	}
	return nil, err
}

func (e *Engine) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		field := fieldPath(err.Namespace())
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "min":
			message = fmt.Sprintf("%s must be at least %s%s", err.Field(), err.Param(), unitFor(err.Kind()))
		case "max":
			message = fmt.Sprintf("%s must be at most %s%s", err.Field(), err.Param(), unitFor(err.Kind()))
		case "gte":
			message = fmt.Sprintf("%s must not be less than %s", err.Field(), err.Param())
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", err.Field(), err.Param())
		case "currency_code":
			message = fmt.Sprintf("%s must be a 3-letter ISO 4217 code (e.g., INR)", err.Field())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   field,
			Message: message,
		})
	}

	return validationErrors
}

func unitFor(kind reflect.Kind) string {
	switch kind {
	case reflect.String:
		return " characters"
	case reflect.Map, reflect.Slice, reflect.Array:
		return " items"
	default:
		return ""
	}
}

// fieldPath drops the root struct name: "BookingDraft.address.pincode" becomes
// "address.pincode".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	default:
		return name
	}
}

// decimalValue exposes only the sign of an amount to tags, so "gte=0" and
// "gt=0" hold exactly for values too small for a float64.
func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return float64(d.Sign())
	}
	return nil
}

// calendarDateValue makes "required" fail only for an absent date. Unreadable
// input is reported by the booking rules instead.
func calendarDateValue(field reflect.Value) any {
	if c, ok := field.Interface().(model.CalendarDate); ok {
		return c.String()
	}
	return nil
}

func validateCurrencyCode(fl validator.FieldLevel) bool {
	return currencyCodeRegex.MatchString(fl.Field().String())
}
