package domain

import "github.com/ethereum/go-ethereum/common"

// Donation records one donor's contribution to one campaign.
type Donation struct {
	Donor        common.Address
	Campaign     common.Address
	Amount       uint64
	Refunded     bool
	AddressNonce uint8
}

// DonationRecord pairs a donation with its derived address.
type DonationRecord struct {
	Address  common.Address
	Donation Donation
}
