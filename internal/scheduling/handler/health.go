package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"slotkeeper/internal/timezone"
	httputil "slotkeeper/pkg/http"
	"slotkeeper/pkg/logger"
)

type HealthResponse struct {
	Status        string `json:"status"`
	ReferenceZone string `json:"referenceZone,omitempty"`
}

type HealthHandler struct {
	tz  *timezone.Normalizer
	log *logger.Logger
}

func NewHealthHandler(tz *timezone.Normalizer, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		tz:  tz,
		log: log,
	}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Health", "operation", "WriteJSON", "error", err)
	}
}

// Ready reports the reference zone the process resolved at startup. The core
// has no external dependencies, so a running process is always ready.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteJSON(w, http.StatusOK, HealthResponse{
		Status:        "ready",
		ReferenceZone: h.tz.Location().String(),
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Ready", "operation", "WriteJSON", "error", err)
	}
}

func (h *HealthHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
}
