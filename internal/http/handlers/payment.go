package handlers

import (
	"net/http"

	"scholarstream/internal/app"
	"scholarstream/internal/http/response"
)

type PaymentHandler struct {
	payments *app.PaymentService
}

func NewPaymentHandler(payments *app.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// Amount is kept as decoded; PaymentService decides what it can charge.
type paymentIntentRequest struct {
	Amount any `json:"amount"`
}

type paymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req paymentIntentRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, r, err)
		return
	}
	secret, err := h.payments.CreateIntent(r.Context(), req.Amount)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, paymentIntentResponse{ClientSecret: secret})
}
