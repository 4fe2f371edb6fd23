package httpadapter

import (
	"time"

	"github.com/samber/lo"

	"crowd-escrow/internal/core/domain"
	"crowd-escrow/internal/core/port"
)

// Token amounts and campaign ids are u64 and travel as decimal strings so
// JavaScript clients do not lose precision.

type initializeCampaignReq struct {
	CampaignID  uint64 `json:"campaign_id,string"`
	GoalAmount  uint64 `json:"goal_amount,string"`
	Duration    int64  `json:"duration"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type donateReq struct {
	Amount uint64 `json:"amount,string"`
}

type faucetReq struct {
	Owner  string `json:"owner"`
	Amount uint64 `json:"amount,string"`
}

type campaignResp struct {
	Address       string `json:"address"`
	ID            uint64 `json:"id,string"`
	Creator       string `json:"creator"`
	GoalAmount    uint64 `json:"goal_amount,string"`
	EndTime       int64  `json:"end_time"`
	TotalFunded   uint64 `json:"total_funded,string"`
	IsActive      bool   `json:"is_active"`
	Status        string `json:"status"`
	EscrowBalance uint64 `json:"escrow_balance,string"`
	Title         string `json:"title,omitempty"`
	Description   string `json:"description,omitempty"`
	ImageURL      string `json:"image_url,omitempty"`
}

func newCampaignResp(v port.CampaignView) campaignResp {
	return campaignResp{
		Address:       v.Address.Hex(),
		ID:            v.Campaign.ID,
		Creator:       v.Campaign.Creator.Hex(),
		GoalAmount:    v.Campaign.GoalAmount,
		EndTime:       v.Campaign.EndTime,
		TotalFunded:   v.Campaign.TotalFunded,
		IsActive:      v.Campaign.IsActive,
		Status:        string(v.Status),
		EscrowBalance: v.EscrowBalance,
		Title:         v.Profile.Title,
		Description:   v.Profile.Description,
		ImageURL:      v.Profile.ImageURL,
	}
}

type finalizeResp struct {
	Campaign campaignResp `json:"campaign"`
	Payout   uint64       `json:"payout,string"`
}

type donationResp struct {
	Address  string `json:"address"`
	Campaign string `json:"campaign"`
	Donor    string `json:"donor"`
	Amount   uint64 `json:"amount,string"`
	Refunded bool   `json:"refunded"`
}

func newDonationResp(v port.DonationView) donationResp {
	return donationResp{
		Address:  v.Address.Hex(),
		Campaign: v.Donation.Campaign.Hex(),
		Donor:    v.Donation.Donor.Hex(),
		Amount:   v.Donation.Amount,
		Refunded: v.Donation.Refunded,
	}
}

type balanceResp struct {
	Owner   string `json:"owner"`
	Balance uint64 `json:"balance,string"`
}

type transferResp struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Amount    uint64    `json:"amount,string"`
	CreatedAt time.Time `json:"created_at"`
}

func newTransferResps(recs []domain.TransferRecord) []transferResp {
	return lo.Map(recs, func(rec domain.TransferRecord, _ int) transferResp {
		return transferResp{
			ID:        rec.ID.String(),
			Kind:      string(rec.Kind),
			From:      rec.From.Hex(),
			To:        rec.To.Hex(),
			Amount:    rec.Amount,
			CreatedAt: rec.CreatedAt,
		}
	})
}
