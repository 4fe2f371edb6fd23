package domain

import "github.com/ethereum/go-ethereum/common"

// Campaign is the escrow record of a fundraising campaign. Amounts are stored
// in token base units.
type Campaign struct {
	Creator        common.Address
	ID             uint64
	GoalAmount     uint64
	EndTime        int64 // unix seconds
	TotalFunded    uint64
	IsActive       bool
	AuthorityNonce uint8
}

// GoalReached reports whether the funded total meets the goal. The result is
// computed from the TotalFunded snapshot, never from donation records.
func (c Campaign) GoalReached() bool {
	return c.TotalFunded >= c.GoalAmount
}

// Status derives the public status of the campaign.
func (c Campaign) Status() CampaignStatus {
	switch {
	case c.IsActive:
		return CampaignStatusActive
	case c.GoalReached():
		return CampaignStatusSuccessful
	default:
		return CampaignStatusFailed
	}
}

// CampaignStatus is a read-side view of the campaign lifecycle.
type CampaignStatus string

const (
	CampaignStatusActive     CampaignStatus = "active"
	CampaignStatusSuccessful CampaignStatus = "successful"
	CampaignStatusFailed     CampaignStatus = "failed"
)

// CampaignProfile holds presentation data stored next to a campaign. The
// escrow engine never reads or writes it.
type CampaignProfile struct {
	Title       string
	Description string
	ImageURL    string
}

// CampaignRecord pairs a campaign with its derived address and profile.
type CampaignRecord struct {
	Address  common.Address
	Campaign Campaign
	Profile  CampaignProfile
}
