// Package api - HTTP handlers for pricing
// Handlers wrap the engine - they contain NO pricing logic.
package api

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/crazynala/axis-sub002/core/display"
	"github.com/crazynala/axis-sub002/core/pricing"
	"github.com/crazynala/axis-sub002/core/types"
	"github.com/crazynala/axis-sub002/internal/logging"
)

// Handler handles pricing requests
type Handler struct{}

// NewHandler creates a new handler
func NewHandler() *Handler {
	return &Handler{}
}

// ErrorResponse is the error envelope
type ErrorResponse struct {
	RequestID string    `json:"request_id"`
	Error     ErrorBody `json:"error"`
}

// ErrorBody carries the error code and message
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HandlePrice handles POST /price with a strict engine input
func (h *Handler) HandlePrice(w http.ResponseWriter, r *http.Request) {
	requestID := generateRequestID()

	var in types.PriceInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.writeError(w, requestID, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		return
	}

	out := pricing.CalcPrice(in)

	logging.Debug("priced request",
		zap.String("request_id", requestID),
		zap.String("mode", string(out.Meta.Mode)),
		zap.Float64("unit_sell_price", out.UnitSellPrice),
	)

	h.writeJSON(w, out, http.StatusOK)
}

// HandleDisplayPrice handles POST /display-price with the loose
// display adapter input (nullable numbers, string coercion, debug
// trace flag)
func (h *Handler) HandleDisplayPrice(w http.ResponseWriter, r *http.Request) {
	requestID := generateRequestID()

	var in display.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.writeError(w, requestID, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		return
	}

	h.writeJSON(w, display.GetProductDisplayPrice(in), http.StatusOK)
}

func (h *Handler) writeJSON(w http.ResponseWriter, v interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("failed to encode response", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, requestID, code, message string, status int) {
	h.writeJSON(w, ErrorResponse{
		RequestID: requestID,
		Error:     ErrorBody{Code: code, Message: message},
	}, status)
}

func generateRequestID() string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%d", time.Now().UnixNano())))
	return hex.EncodeToString(sum[:])[:16]
}
