package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
)

func (h *Handler) handleBalance(w http.ResponseWriter, r *http.Request) {
	owner, ok := addressParam(w, r, "owner")
	if !ok {
		return
	}
	bal, err := h.svc.Balance(r.Context(), owner)
	if err != nil {
		h.writeError(w, r, "balance", err)
		return
	}
	writeJSON(w, http.StatusOK, balanceResp{Owner: owner.Hex(), Balance: bal})
}

// handleTransfers lists journal entries for the owner, newest first. An
// optional limit query parameter caps the result.
func (h *Handler) handleTransfers(w http.ResponseWriter, r *http.Request) {
	owner, ok := addressParam(w, r, "owner")
	if !ok {
		return
	}
	var limit int
	if s := r.URL.Query().Get("limit"); s != "" {
		var err error
		if limit, err = strconv.Atoi(s); err != nil || limit < 0 {
			writeErrorCode(w, http.StatusBadRequest, "invalid_limit", "invalid 'limit'")
			return
		}
	}
	recs, err := h.svc.Transfers(r.Context(), owner, limit)
	if err != nil {
		h.writeError(w, r, "transfers", err)
		return
	}
	writeJSON(w, http.StatusOK, newTransferResps(recs))
}

// handleFaucet mints tokens to any owner. Registered only when the faucet
// is enabled.
func (h *Handler) handleFaucet(w http.ResponseWriter, r *http.Request) {
	var req faucetReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorCode(w, http.StatusBadRequest, "invalid_json", "invalid JSON")
		return
	}
	if !common.IsHexAddress(req.Owner) {
		writeErrorCode(w, http.StatusBadRequest, "invalid_owner", "owner must be a hex address")
		return
	}
	owner := common.HexToAddress(req.Owner)
	bal, err := h.svc.Mint(r.Context(), owner, req.Amount)
	if err != nil {
		h.writeError(w, r, "faucet", err)
		return
	}
	writeJSON(w, http.StatusOK, balanceResp{Owner: owner.Hex(), Balance: bal})
}
