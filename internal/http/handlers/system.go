package handlers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"scholarstream/internal/http/response"
	"scholarstream/internal/observability"
)

const healthTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

type SystemHandler struct {
	store Pinger
}

// NewSystemHandler takes the store pinger used by the health check; nil reports healthy.
func NewSystemHandler(store Pinger) *SystemHandler {
	return &SystemHandler{store: store}
}

func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	response.Text(w, http.StatusOK, "Server is Available")
}

type healthBody struct {
	Status string `json:"status"`
}

func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	if h.store != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()
		if err := h.store.Ping(ctx); err != nil {
			observability.LoggerFromContext(r.Context()).Warn("store ping failed", zap.Error(err))
			response.JSON(w, http.StatusServiceUnavailable, healthBody{Status: "unavailable"})
			return
		}
	}
	response.JSON(w, http.StatusOK, healthBody{Status: "ok"})
}
