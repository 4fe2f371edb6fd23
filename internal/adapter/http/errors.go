package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"crowd-escrow/internal/core/domain"
)

type errorResp struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorMapping struct {
	target error
	status int
	code   string
}

// errorMappings is checked in order; the first match wins.
var errorMappings = []errorMapping{
	{domain.ErrDonationAlreadyExists, http.StatusConflict, "donation_already_exists"},
	{domain.ErrAlreadyExists, http.StatusConflict, "already_exists"},
	{domain.ErrNotFound, http.StatusNotFound, "not_found"},
	{domain.ErrCampaignInactive, http.StatusConflict, "campaign_inactive"},
	{domain.ErrCampaignEnded, http.StatusConflict, "campaign_ended"},
	{domain.ErrCampaignNotEnded, http.StatusConflict, "campaign_not_ended"},
	{domain.ErrCampaignStillActive, http.StatusConflict, "campaign_still_active"},
	{domain.ErrCampaignSuccessful, http.StatusConflict, "campaign_successful"},
	{domain.ErrCampaignAlreadyFinalized, http.StatusConflict, "campaign_already_finalized"},
	{domain.ErrAlreadyRefunded, http.StatusConflict, "already_refunded"},
	{domain.ErrInvalidDonor, http.StatusForbidden, "invalid_donor"},
	{domain.ErrDonationMismatch, http.StatusForbidden, "donation_mismatch"},
	{domain.ErrInsufficientFunds, http.StatusUnprocessableEntity, "insufficient_funds"},
	{domain.ErrTransferFailed, http.StatusUnprocessableEntity, "transfer_failed"},
	{domain.ErrArithmeticOverflow, http.StatusUnprocessableEntity, "arithmetic_overflow"},
	{domain.ErrNoViableNonce, http.StatusUnprocessableEntity, "address_unavailable"},
}

// writeError maps err onto a status and error code. Unknown errors are
// logged and reported as a generic 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			writeErrorCode(w, m.status, m.code, err.Error())
			return
		}
	}
	h.logger.ErrorContext(r.Context(), op+" error",
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.Any("error", err),
	)
	writeErrorCode(w, http.StatusInternalServerError, "internal", "internal error")
}

func writeErrorCode(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorResp{Code: code, Message: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// encoding should rarely fail and the status is already sent
	_ = json.NewEncoder(w).Encode(v)
}
