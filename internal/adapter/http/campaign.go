package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"crowd-escrow/internal/core/domain"
	"crowd-escrow/internal/core/port"
)

// handleInitializeCampaign opens a campaign owned by the caller. It returns
// HTTP 201 with the new campaign, 409 when the id is taken.
func (h *Handler) handleInitializeCampaign(w http.ResponseWriter, r *http.Request) {
	var req initializeCampaignReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorCode(w, http.StatusBadRequest, "invalid_json", "invalid JSON")
		return
	}
	view, err := h.svc.InitializeCampaign(r.Context(), callerFrom(r.Context()), port.InitializeCampaignReq{
		CampaignID: req.CampaignID,
		GoalAmount: req.GoalAmount,
		Duration:   req.Duration,
		Profile: domain.CampaignProfile{
			Title:       req.Title,
			Description: req.Description,
			ImageURL:    req.ImageURL,
		},
	})
	if err != nil {
		h.writeError(w, r, "initialize campaign", err)
		return
	}
	writeJSON(w, http.StatusCreated, newCampaignResp(*view))
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	view, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "get campaign", err)
		return
	}
	writeJSON(w, http.StatusOK, newCampaignResp(*view))
}

// handleListCampaigns accepts optional limit and offset query parameters.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	var (
		q    = r.URL.Query()
		page port.Page
		err  error
	)
	if s := q.Get("limit"); s != "" {
		if page.Limit, err = strconv.Atoi(s); err != nil || page.Limit < 0 {
			writeErrorCode(w, http.StatusBadRequest, "invalid_limit", "invalid 'limit'")
			return
		}
	}
	if s := q.Get("offset"); s != "" {
		if page.Offset, err = strconv.Atoi(s); err != nil || page.Offset < 0 {
			writeErrorCode(w, http.StatusBadRequest, "invalid_offset", "invalid 'offset'")
			return
		}
	}

	views, err := h.svc.ListCampaigns(r.Context(), page)
	if err != nil {
		h.writeError(w, r, "list campaigns", err)
		return
	}
	writeJSON(w, http.StatusOK, lo.Map(views, func(v port.CampaignView, _ int) campaignResp {
		return newCampaignResp(v)
	}))
}

// handleFinalizeCampaign may be called by anyone once the deadline passed.
func (h *Handler) handleFinalizeCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	resp, err := h.svc.FinalizeCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "finalize campaign", err)
		return
	}
	writeJSON(w, http.StatusOK, finalizeResp{
		Campaign: newCampaignResp(resp.Campaign),
		Payout:   resp.Payout,
	})
}

func campaignID(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeErrorCode(w, http.StatusBadRequest, "invalid_campaign_id", "campaign id must be an unsigned integer")
		return 0, false
	}
	return id, true
}
