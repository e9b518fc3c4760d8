package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"slotkeeper/internal/capacity"
	"slotkeeper/internal/conflict"
	"slotkeeper/internal/interval"
	"slotkeeper/internal/proration"
	"slotkeeper/internal/timezone"
	"slotkeeper/internal/validator"
	apperrors "slotkeeper/pkg/errors"
	"slotkeeper/pkg/logger"
	"slotkeeper/pkg/metrics"
	"slotkeeper/pkg/model"
)

type SchedulingService interface {
	ValidateBooking(ctx context.Context, draft *model.BookingDraft) error
	BookingConflicts(ctx context.Context, candidate conflict.BookingSlot, existing []conflict.BookingSlot) (conflict.Result[conflict.BookingSlot], error)
	ProrateBooking(ctx context.Context, total decimal.Decimal, units int) (*Proration, error)
	ValidateDeliverySlot(ctx context.Context, draft *model.DeliverySlotDraft) error
	DeliverySlotConflicts(ctx context.Context, candidate interval.TimeRange, existing []interval.TimeRange) (conflict.Result[interval.TimeRange], error)
	DeliverySlotStatus(ctx context.Context, draft *model.DeliverySlotDraft) (*capacity.Snapshot, error)
	ValidatePayment(ctx context.Context, draft *model.PaymentDraft) error
}

// Proration is the per-participant share of a group booking amount.
type Proration struct {
	Total   decimal.Decimal `json:"total"`
	Units   int             `json:"units"`
	PerUnit decimal.Decimal `json:"perUnit"`
	Preview string          `json:"preview"`
}

type schedulingService struct {
	engine  *validator.Engine
	tz      *timezone.Normalizer
	metrics *metrics.Metrics
	log     *logger.Logger
	now     func() time.Time
}

type Option func(*schedulingService)

// WithClock replaces the wall clock the service reads "now" from.
func WithClock(now func() time.Time) Option {
	return func(s *schedulingService) {
		s.now = now
	}
}

func NewSchedulingService(
	engine *validator.Engine,
	tz *timezone.Normalizer,
	m *metrics.Metrics,
	log *logger.Logger,
	opts ...Option,
) SchedulingService {
	s := &schedulingService{
		engine:  engine,
		tz:      tz,
		metrics: m,
		log:     log,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *schedulingService) ValidateBooking(ctx context.Context, draft *model.BookingDraft) error {
	if err := ctx.Err(); err != nil {
		return apperrors.Timeout("Request cancelled before validation")
	}

	start := time.Now()
	err := s.engine.ValidateBooking(draft, s.now())
	return s.validationResult(metrics.KindBooking, "Booking", err, start)
}

func (s *schedulingService) ValidateDeliverySlot(ctx context.Context, draft *model.DeliverySlotDraft) error {
	if err := ctx.Err(); err != nil {
		return apperrors.Timeout("Request cancelled before validation")
	}

	start := time.Now()
	err := s.engine.ValidateDeliverySlot(draft, s.now())
	return s.validationResult(metrics.KindDeliverySlot, "Delivery slot", err, start)
}

func (s *schedulingService) ValidatePayment(ctx context.Context, draft *model.PaymentDraft) error {
	if err := ctx.Err(); err != nil {
		return apperrors.Timeout("Request cancelled before validation")
	}

	start := time.Now()
	err := s.engine.ValidatePayment(draft, s.now())
	return s.validationResult(metrics.KindPayment, "Payment", err, start)
}

func (s *schedulingService) validationResult(kind, label string, err error, start time.Time) error {
	if err == nil {
		s.metrics.ObserveValidation(kind, metrics.OutcomeValid, start)
		return nil
	}

	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		s.metrics.ObserveValidation(kind, metrics.OutcomeInvalid, start)
		s.log.Warn("Draft failed validation",
			"kind", kind,
			"error_count", len(verrs),
			"fields", verrs.Fields(),
		)
		return apperrors.Validation(
			fmt.Sprintf("%s validation failed", label),
			err,
			map[string]any{apperrors.DetailErrors: []validator.ValidationError(verrs)},
		)
	case errors.Is(err, validator.ErrNilDraft):
		s.metrics.ObserveValidation(kind, metrics.OutcomeError, start)
		return apperrors.InvalidInputWrap(fmt.Sprintf("%s draft is required", label), err)
	default:
		s.metrics.ObserveValidation(kind, metrics.OutcomeError, start)
		s.log.Error("Validation engine failed", "kind", kind, "error", err)
		return apperrors.Internal("Failed to validate draft", err)
	}
}

func (s *schedulingService) BookingConflicts(ctx context.Context, candidate conflict.BookingSlot, existing []conflict.BookingSlot) (conflict.Result[conflict.BookingSlot], error) {
	if err := ctx.Err(); err != nil {
		return conflict.Result[conflict.BookingSlot]{}, apperrors.Timeout("Request cancelled before conflict check")
	}

	result, err := conflict.FindBookingConflicts(s.tz, candidate, existing)
	if err != nil {
		var parseErr *timezone.ParseError
		if errors.As(err, &parseErr) {
			field, message := "candidate.timeOfDay", fmt.Sprintf("candidate time %q is not a valid time of day", parseErr.Input)
			if errors.Is(err, timezone.ErrMissingDate) || errors.Is(err, timezone.ErrInvalidDate) {
				field, message = "candidate.date", fmt.Sprintf("candidate date %q is not a valid date", parseErr.Input)
			}
			return result, apperrors.InvalidInputWrap(message, err).
				WithDetails(map[string]any{apperrors.DetailErrors: []validator.ValidationError{
					{Field: field, Message: parseErr.Reason},
				}})
		}
		return result, apperrors.Internal("Failed to check booking conflicts", err)
	}

	s.metrics.IncrementConflictCheck(metrics.KindBooking, result.HasConflict)
	if result.HasConflict {
		s.log.Info("Booking slot already taken",
			"resource_id", candidate.ResourceID,
			"time", candidate.TimeOfDay,
			"conflicts", len(result.ConflictingItems),
		)
	}
	return result, nil
}

func (s *schedulingService) DeliverySlotConflicts(ctx context.Context, candidate interval.TimeRange, existing []interval.TimeRange) (conflict.Result[interval.TimeRange], error) {
	if err := ctx.Err(); err != nil {
		return conflict.Result[interval.TimeRange]{}, apperrors.Timeout("Request cancelled before conflict check")
	}

	if _, err := interval.New(candidate.Start, candidate.End); err != nil {
		return conflict.Result[interval.TimeRange]{}, apperrors.InvalidInputWrap("candidate end must be after start", err).
			WithDetails(map[string]any{apperrors.DetailErrors: []validator.ValidationError{
				{Field: "candidate.end", Message: "end must be after start"},
			}})
	}

	result := conflict.FindOverlaps(candidate, existing)
	s.metrics.IncrementConflictCheck(metrics.KindDeliverySlot, result.HasConflict)
	if result.HasConflict {
		s.log.Info("Delivery slot overlaps existing slots",
			"range", s.tz.FormatRange(candidate.Start, candidate.End),
			"conflicts", len(result.ConflictingItems),
		)
	}
	return result, nil
}

func (s *schedulingService) DeliverySlotStatus(ctx context.Context, draft *model.DeliverySlotDraft) (*capacity.Snapshot, error) {
	if err := s.ValidateDeliverySlot(ctx, draft); err != nil {
		return nil, err
	}

	snapshot := capacity.Describe(s.tz, draft, s.now())
	s.metrics.IncrementSlotStatus(string(snapshot.Status))
	return &snapshot, nil
}

func (s *schedulingService) ProrateBooking(ctx context.Context, total decimal.Decimal, units int) (*Proration, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.Timeout("Request cancelled before proration")
	}

	var fieldErrs []validator.ValidationError
	if total.IsNegative() {
		fieldErrs = append(fieldErrs, validator.ValidationError{Field: "total", Message: "total must not be negative"})
	}
	if units < 1 {
		fieldErrs = append(fieldErrs, validator.ValidationError{Field: "units", Message: "units must be at least 1"})
	}
	if len(fieldErrs) > 0 {
		return nil, apperrors.InvalidInput("Invalid proration request").
			WithDetails(map[string]any{apperrors.DetailErrors: fieldErrs})
	}

	return &Proration{
		Total:   total,
		Units:   units,
		PerUnit: proration.PerUnitAmount(total, units),
		Preview: proration.PreviewPerUnit(total, units),
	}, nil
}
