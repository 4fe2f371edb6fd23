package port

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"crowd-escrow/internal/core/domain"
)

// EscrowUseCase defines the operations exposed by the escrow service. This
// interface is the primary port into the application domain; the HTTP
// adapter depends on it and tests use the generated mock.
type EscrowUseCase interface {
	// InitializeCampaign opens a campaign owned by creator. It fails with
	// domain.ErrAlreadyExists when the campaign id is taken.
	InitializeCampaign(ctx context.Context, creator common.Address, req InitializeCampaignReq) (*CampaignView, error)

	// Donate moves amount from donor into the campaign escrow and records
	// the donation. A donor can donate to a campaign only once.
	Donate(ctx context.Context, donor common.Address, campaignID, amount uint64) (*DonationView, error)

	// FinalizeCampaign closes a campaign after its deadline and pays the
	// creator if the goal was met.
	FinalizeCampaign(ctx context.Context, campaignID uint64) (*FinalizeResp, error)

	// Refund returns the caller's donation to a failed campaign.
	Refund(ctx context.Context, donor common.Address, campaignID uint64) (*DonationView, error)

	// GetCampaign returns a campaign by id.
	GetCampaign(ctx context.Context, campaignID uint64) (*CampaignView, error)
	// ListCampaigns returns campaigns ordered by id.
	ListCampaigns(ctx context.Context, page Page) ([]CampaignView, error)
	// GetDonation returns donor's donation to a campaign.
	GetDonation(ctx context.Context, campaignID uint64, donor common.Address) (*DonationView, error)
	// ListDonations returns every donation made to a campaign.
	ListDonations(ctx context.Context, campaignID uint64) ([]DonationView, error)

	// Balance returns the token balance held by owner.
	Balance(ctx context.Context, owner common.Address) (uint64, error)
	// Transfers returns the most recent journal entries touching owner.
	Transfers(ctx context.Context, owner common.Address, limit int) ([]domain.TransferRecord, error)
	// Mint credits owner with freshly issued tokens and returns the new
	// balance. It backs the development faucet and seeding only.
	Mint(ctx context.Context, owner common.Address, amount uint64) (uint64, error)
}

// InitializeCampaignReq carries the parameters of a new campaign. Duration
// is in seconds and is added to the current time.
type InitializeCampaignReq struct {
	CampaignID uint64
	GoalAmount uint64
	Duration   int64
	Profile    domain.CampaignProfile
}

// CampaignView is a campaign as returned to clients. EscrowBalance is the
// live token balance of the campaign's escrow holding.
type CampaignView struct {
	domain.CampaignRecord
	Status        domain.CampaignStatus
	EscrowBalance uint64
}

// DonationView is a donation as returned to clients.
type DonationView struct {
	domain.DonationRecord
}

// FinalizeResp describes the outcome of FinalizeCampaign. Payout is the
// amount transferred to the creator, zero when the goal was missed.
type FinalizeResp struct {
	Campaign CampaignView
	Payout   uint64
}

// Page bounds list queries.
type Page struct {
	Limit  int
	Offset int
}
