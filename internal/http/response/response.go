package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"scholarstream/internal/common"
	"scholarstream/internal/observability"
)

type errorBody struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type upstreamErrorBody struct {
	Error string `json:"error"`
}

type MessageBody struct {
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func Message(w http.ResponseWriter, status int, message string) {
	JSON(w, status, MessageBody{Message: message})
}

func Text(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// Error writes err using the status its code maps to. Causes of 5xx responses are logged
// and, except for gateway failures, not exposed to the client.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *common.Error
	code := common.CodeOf(err)
	message := "internal server error"
	var fields map[string]string
	if errors.As(err, &appErr) {
		message = appErr.Message
		fields = appErr.Fields
	}

	switch code {
	case common.CodeValidation:
		JSON(w, http.StatusBadRequest, errorBody{Message: message, Fields: fields})
	case common.CodeNotFound:
		JSON(w, http.StatusNotFound, errorBody{Message: message})
	case common.CodeConflict:
		JSON(w, http.StatusConflict, errorBody{Message: message})
	case common.CodeRateLimited:
		JSON(w, http.StatusTooManyRequests, errorBody{Message: message})
	case common.CodeUpstream:
		observability.LoggerFromContext(r.Context()).Error("payment gateway error", zap.Error(err))
		JSON(w, http.StatusInternalServerError, upstreamErrorBody{Error: message})
	default:
		observability.LoggerFromContext(r.Context()).Error("request failed", zap.Error(err))
		JSON(w, http.StatusInternalServerError, errorBody{Message: "internal server error"})
	}
}
