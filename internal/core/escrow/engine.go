// Package escrow implements the crowdfunding escrow transitions. Every method
// is a pure function of the current records, the validated request and the
// caller's clock: it returns the records to write and the transfer to execute,
// and never touches storage itself.
package escrow

import (
	"math"

	"github.com/ethereum/go-ethereum/common"

	"crowd-escrow/internal/core/domain"
)

// Engine holds the derivation scope and the finalize policy.
type Engine struct {
	deriver        domain.Deriver
	legacyFinalize bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLegacyFinalize lets FinalizeCampaign run again on an already finalized
// campaign, re-issuing the payout decision every time.
func WithLegacyFinalize(enabled bool) Option {
	return func(e *Engine) { e.legacyFinalize = enabled }
}

// New returns an Engine deriving addresses with d.
func New(d domain.Deriver, opts ...Option) *Engine {
	e := &Engine{deriver: d}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Deriver returns the derivation scope of the engine.
func (e *Engine) Deriver() domain.Deriver {
	return e.deriver
}

// CampaignAddress derives the record address of campaign id.
func (e *Engine) CampaignAddress(id uint64) (common.Address, error) {
	addr, _, err := e.deriver.CampaignAddress(id)
	return addr, err
}

// DonationAddress derives the record address of donor's donation to campaign.
func (e *Engine) DonationAddress(campaign, donor common.Address) (common.Address, error) {
	addr, _, err := e.deriver.DonationAddress(campaign, donor)
	return addr, err
}

// InitializeCampaign builds a new active campaign ending duration seconds
// after now. Zero goals and negative durations are accepted.
func (e *Engine) InitializeCampaign(creator common.Address, id, goal uint64, duration, now int64) (domain.CampaignRecord, error) {
	addr, nonce, err := e.deriver.CampaignAddress(id)
	if err != nil {
		return domain.CampaignRecord{}, err
	}
	endTime, ok := addInt64(now, duration)
	if !ok {
		return domain.CampaignRecord{}, domain.ErrArithmeticOverflow
	}
	return domain.CampaignRecord{
		Address: addr,
		Campaign: domain.Campaign{
			Creator:        creator,
			ID:             id,
			GoalAmount:     goal,
			EndTime:        endTime,
			TotalFunded:    0,
			IsActive:       true,
			AuthorityNonce: nonce,
		},
	}, nil
}

// DonateResult is the outcome of an accepted donation.
type DonateResult struct {
	Campaign domain.Campaign
	Donation domain.DonationRecord
	Transfer domain.Transfer
}

// Donate accepts amount from donor into the campaign escrow. The donor signs
// the transfer directly. Creating the donation record is left to the caller,
// whose store rejects a second record for the same pair.
func (e *Engine) Donate(campaign domain.CampaignRecord, donor common.Address, amount uint64, now int64) (DonateResult, error) {
	c := campaign.Campaign
	if !c.IsActive {
		return DonateResult{}, domain.ErrCampaignInactive
	}
	if now >= c.EndTime {
		return DonateResult{}, domain.ErrCampaignEnded
	}
	total, ok := addUint64(c.TotalFunded, amount)
	if !ok {
		return DonateResult{}, domain.ErrArithmeticOverflow
	}
	addr, nonce, err := e.deriver.DonationAddress(campaign.Address, donor)
	if err != nil {
		return DonateResult{}, err
	}

	c.TotalFunded = total
	return DonateResult{
		Campaign: c,
		Donation: domain.DonationRecord{
			Address: addr,
			Donation: domain.Donation{
				Donor:        donor,
				Campaign:     campaign.Address,
				Amount:       amount,
				Refunded:     false,
				AddressNonce: nonce,
			},
		},
		Transfer: domain.Transfer{
			From:   donor,
			To:     campaign.Address,
			Amount: amount,
			Auth:   domain.SignerAuthorization(donor),
		},
	}, nil
}

// FinalizeResult is the outcome of closing a campaign. Transfer is nil when
// the goal was missed and donors have to claim refunds.
type FinalizeResult struct {
	Campaign domain.Campaign
	Transfer *domain.Transfer
}

// FinalizeCampaign closes the campaign once its deadline has passed and, if
// the goal was met, pays the whole funded total to the creator under the
// campaign's derived authority.
func (e *Engine) FinalizeCampaign(campaign domain.CampaignRecord, now int64) (FinalizeResult, error) {
	c := campaign.Campaign
	if now < c.EndTime {
		return FinalizeResult{}, domain.ErrCampaignNotEnded
	}
	if !c.IsActive && !e.legacyFinalize {
		return FinalizeResult{}, domain.ErrCampaignAlreadyFinalized
	}

	c.IsActive = false
	res := FinalizeResult{Campaign: c}
	if c.GoalReached() {
		res.Transfer = &domain.Transfer{
			From:   campaign.Address,
			To:     c.Creator,
			Amount: c.TotalFunded,
			Auth:   e.authority(c),
		}
	}
	return res, nil
}

// RefundResult is the outcome of an accepted refund.
type RefundResult struct {
	Donation domain.Donation
	Transfer domain.Transfer
}

// Refund returns a donation to its donor after a failed campaign. Each
// donation is refundable once; the flag on the record enforces it.
func (e *Engine) Refund(campaign domain.CampaignRecord, donation domain.Donation, caller common.Address) (RefundResult, error) {
	c := campaign.Campaign
	if c.IsActive {
		return RefundResult{}, domain.ErrCampaignStillActive
	}
	if c.GoalReached() {
		return RefundResult{}, domain.ErrCampaignSuccessful
	}
	if donation.Donor != caller {
		return RefundResult{}, domain.ErrInvalidDonor
	}
	if donation.Campaign != campaign.Address {
		return RefundResult{}, domain.ErrDonationMismatch
	}
	if donation.Refunded {
		return RefundResult{}, domain.ErrAlreadyRefunded
	}

	donation.Refunded = true
	return RefundResult{
		Donation: donation,
		Transfer: domain.Transfer{
			From:   campaign.Address,
			To:     donation.Donor,
			Amount: donation.Amount,
			Auth:   e.authority(c),
		},
	}, nil
}

func (e *Engine) authority(c domain.Campaign) domain.Authorization {
	return domain.DerivedAuthorization(domain.CampaignSeeds(c.ID), c.AuthorityNonce)
}

func addUint64(a, b uint64) (uint64, bool) {
	if a > math.MaxUint64-b {
		return 0, false
	}
	return a + b, true
}

func addInt64(a, b int64) (int64, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}
