package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/shopspring/decimal"

	"slotkeeper/internal/conflict"
	"slotkeeper/internal/interval"
	"slotkeeper/internal/scheduling/service"
	httputil "slotkeeper/pkg/http"
	"slotkeeper/pkg/logger"
	"slotkeeper/pkg/middleware"
	"slotkeeper/pkg/model"
)

type SchedulingHandler struct {
	service service.SchedulingService
	log     *logger.Logger
}

func NewSchedulingHandler(service service.SchedulingService, log *logger.Logger) *SchedulingHandler {
	return &SchedulingHandler{
		service: service,
		log:     log,
	}
}

type bookingConflictsRequest struct {
	Candidate conflict.BookingSlot   `json:"candidate"`
	Existing  []conflict.BookingSlot `json:"existing"`
}

type slotConflictsRequest struct {
	Candidate interval.TimeRange   `json:"candidate"`
	Existing  []interval.TimeRange `json:"existing"`
}

type prorationRequest struct {
	Total decimal.Decimal `json:"total"`
	Units int             `json:"units"`
}

func (h *SchedulingHandler) ValidateBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var draft model.BookingDraft
	if err := httputil.DecodeJSON(r, &draft); err != nil {
		h.writeError(w, r, "ValidateBooking", err)
		return
	}

	if err := h.service.ValidateBooking(r.Context(), &draft); err != nil {
		h.writeError(w, r, "ValidateBooking", err)
		return
	}

	h.writeSuccess(w, r, "ValidateBooking", draft)
}

func (h *SchedulingHandler) BookingConflicts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req bookingConflictsRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(w, r, "BookingConflicts", err)
		return
	}

	result, err := h.service.BookingConflicts(r.Context(), req.Candidate, req.Existing)
	if err != nil {
		h.writeError(w, r, "BookingConflicts", err)
		return
	}

	h.writeSuccess(w, r, "BookingConflicts", result)
}

func (h *SchedulingHandler) ProrateBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req prorationRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(w, r, "ProrateBooking", err)
		return
	}

	result, err := h.service.ProrateBooking(r.Context(), req.Total, req.Units)
	if err != nil {
		h.writeError(w, r, "ProrateBooking", err)
		return
	}

	h.writeSuccess(w, r, "ProrateBooking", result)
}

func (h *SchedulingHandler) ValidateDeliverySlot(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var draft model.DeliverySlotDraft
	if err := httputil.DecodeJSON(r, &draft); err != nil {
		h.writeError(w, r, "ValidateDeliverySlot", err)
		return
	}

	if err := h.service.ValidateDeliverySlot(r.Context(), &draft); err != nil {
		h.writeError(w, r, "ValidateDeliverySlot", err)
		return
	}

	h.writeSuccess(w, r, "ValidateDeliverySlot", draft)
}

func (h *SchedulingHandler) DeliverySlotConflicts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req slotConflictsRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(w, r, "DeliverySlotConflicts", err)
		return
	}

	result, err := h.service.DeliverySlotConflicts(r.Context(), req.Candidate, req.Existing)
	if err != nil {
		h.writeError(w, r, "DeliverySlotConflicts", err)
		return
	}

	h.writeSuccess(w, r, "DeliverySlotConflicts", result)
}

func (h *SchedulingHandler) DeliverySlotStatus(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var draft model.DeliverySlotDraft
	if err := httputil.DecodeJSON(r, &draft); err != nil {
		h.writeError(w, r, "DeliverySlotStatus", err)
		return
	}

	snapshot, err := h.service.DeliverySlotStatus(r.Context(), &draft)
	if err != nil {
		h.writeError(w, r, "DeliverySlotStatus", err)
		return
	}

	h.writeSuccess(w, r, "DeliverySlotStatus", snapshot)
}

func (h *SchedulingHandler) ValidatePayment(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var draft model.PaymentDraft
	if err := httputil.DecodeJSON(r, &draft); err != nil {
		h.writeError(w, r, "ValidatePayment", err)
		return
	}

	if err := h.service.ValidatePayment(r.Context(), &draft); err != nil {
		h.writeError(w, r, "ValidatePayment", err)
		return
	}

	h.writeSuccess(w, r, "ValidatePayment", draft)
}

func (h *SchedulingHandler) writeError(w http.ResponseWriter, r *http.Request, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response",
			"handler", handler,
			"operation", "WriteError",
			"request_id", middleware.RequestIDFrom(r.Context()),
			"error", writeErr,
		)
	}
}

func (h *SchedulingHandler) writeSuccess(w http.ResponseWriter, r *http.Request, handler string, data any) {
	if err := httputil.WriteSuccess(w, data); err != nil {
		h.log.Error("failed to write success response",
			"handler", handler,
			"operation", "WriteSuccess",
			"request_id", middleware.RequestIDFrom(r.Context()),
			"error", err,
		)
	}
}

func (h *SchedulingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/bookings/validate", h.ValidateBooking)
	router.POST("/api/v1/bookings/conflicts", h.BookingConflicts)
	router.POST("/api/v1/bookings/proration", h.ProrateBooking)
	router.POST("/api/v1/delivery-slots/validate", h.ValidateDeliverySlot)
	router.POST("/api/v1/delivery-slots/conflicts", h.DeliverySlotConflicts)
	router.POST("/api/v1/delivery-slots/status", h.DeliverySlotStatus)
	router.POST("/api/v1/payments/validate", h.ValidatePayment)
}
