package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"crowd-escrow/internal/core/port"
)

// handleDonate moves the requested amount from the caller into the
// campaign escrow.
func (h *Handler) handleDonate(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	var req donateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorCode(w, http.StatusBadRequest, "invalid_json", "invalid JSON")
		return
	}
	view, err := h.svc.Donate(r.Context(), callerFrom(r.Context()), id, req.Amount)
	if err != nil {
		h.writeError(w, r, "donate", err)
		return
	}
	writeJSON(w, http.StatusCreated, newDonationResp(*view))
}

// handleRefund returns the caller's own donation. There is no body.
func (h *Handler) handleRefund(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	view, err := h.svc.Refund(r.Context(), callerFrom(r.Context()), id)
	if err != nil {
		h.writeError(w, r, "refund", err)
		return
	}
	writeJSON(w, http.StatusOK, newDonationResp(*view))
}

func (h *Handler) handleGetDonation(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	donor, ok := addressParam(w, r, "donor")
	if !ok {
		return
	}
	view, err := h.svc.GetDonation(r.Context(), id, donor)
	if err != nil {
		h.writeError(w, r, "get donation", err)
		return
	}
	writeJSON(w, http.StatusOK, newDonationResp(*view))
}

func (h *Handler) handleListDonations(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	views, err := h.svc.ListDonations(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "list donations", err)
		return
	}
	writeJSON(w, http.StatusOK, lo.Map(views, func(v port.DonationView, _ int) donationResp {
		return newDonationResp(v)
	}))
}

func addressParam(w http.ResponseWriter, r *http.Request, name string) (common.Address, bool) {
	raw := chi.URLParam(r, name)
	if !common.IsHexAddress(raw) {
		writeErrorCode(w, http.StatusBadRequest, "invalid_address", name+" must be a hex address")
		return common.Address{}, false
	}
	return common.HexToAddress(raw), true
}
