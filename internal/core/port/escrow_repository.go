package port

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"crowd-escrow/internal/core/domain"
)

// RecordStore is the keyed record store used inside a transaction. Records
// are addressed by their derived address. Reads lock the record for the
// rest of the transaction where the backend supports it.
type RecordStore interface {
	// CreateCampaign fails with domain.ErrAlreadyExists if addr is taken.
	CreateCampaign(ctx context.Context, addr common.Address, c domain.Campaign) error
	// GetCampaign fails with domain.ErrNotFound if addr holds no campaign.
	GetCampaign(ctx context.Context, addr common.Address) (domain.Campaign, error)
	// UpdateCampaign persists TotalFunded and IsActive. The other fields
	// are fixed at creation and ignored.
	UpdateCampaign(ctx context.Context, addr common.Address, c domain.Campaign) error
	PutProfile(ctx context.Context, addr common.Address, p domain.CampaignProfile) error

	// CreateDonation fails with domain.ErrAlreadyExists if addr is taken.
	CreateDonation(ctx context.Context, addr common.Address, d domain.Donation) error
	// GetDonation fails with domain.ErrNotFound if addr holds no donation.
	GetDonation(ctx context.Context, addr common.Address) (domain.Donation, error)
	// UpdateDonation persists Refunded only.
	UpdateDonation(ctx context.Context, addr common.Address, d domain.Donation) error
}

// TokenLedger moves balances between holdings. Holdings are keyed by owner
// address and spring into existence on first credit.
type TokenLedger interface {
	// Transfer checks the authorization against the debited holding's
	// owner, fails with domain.ErrInvalidAuthority or
	// domain.ErrInsufficientFunds, and journals the movement.
	Transfer(ctx context.Context, t domain.Transfer) error
	// Mint credits owner without a debit.
	Mint(ctx context.Context, owner common.Address, amount uint64) error
	Balance(ctx context.Context, owner common.Address) (uint64, error)
}

// EscrowTx is the unit of work handed to Atomically: records and balances
// change together or not at all.
type EscrowTx interface {
	RecordStore
	TokenLedger
}

// EscrowReader serves queries outside of the write path.
type EscrowReader interface {
	GetCampaign(ctx context.Context, addr common.Address) (domain.CampaignRecord, error)
	ListCampaigns(ctx context.Context, page Page) ([]domain.CampaignRecord, error)
	GetDonation(ctx context.Context, addr common.Address) (domain.Donation, error)
	ListDonations(ctx context.Context, campaign common.Address) ([]domain.DonationRecord, error)
	Balance(ctx context.Context, owner common.Address) (uint64, error)
	Transfers(ctx context.Context, owner common.Address, limit int) ([]domain.TransferRecord, error)
}

// EscrowRepository is the persistence port of the escrow service. It is an
// outbound port in hexagonal architecture. Implementations must run fn
// atomically and serialize conflicting transactions: a transaction sees only
// committed state and a returned error discards all of its writes.
type EscrowRepository interface {
	EscrowReader
	Atomically(ctx context.Context, fn func(ctx context.Context, tx EscrowTx) error) error
}
