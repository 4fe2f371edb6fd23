package domain

import "errors"

// Record store errors.
var (
	ErrAlreadyExists = errors.New("already exists")
	ErrNotFound      = errors.New("not found")
)

// Escrow rule violations. None of them is retryable as is: the caller has to
// change the request or wait for the deadline.
var (
	ErrCampaignInactive         = errors.New("campaign is not active")
	ErrCampaignEnded            = errors.New("campaign has ended")
	ErrCampaignNotEnded         = errors.New("campaign has not ended yet")
	ErrCampaignStillActive      = errors.New("campaign is still active")
	ErrCampaignSuccessful       = errors.New("campaign reached its goal")
	ErrCampaignAlreadyFinalized = errors.New("campaign already finalized")
	ErrInvalidDonor             = errors.New("caller is not the donor")
	ErrDonationMismatch         = errors.New("donation belongs to another campaign")
	ErrAlreadyRefunded          = errors.New("donation already refunded")
	ErrDonationAlreadyExists    = errors.New("donation already exists")
	ErrArithmeticOverflow       = errors.New("arithmetic overflow")
)

// Token ledger errors. The use case reports them wrapped in ErrTransferFailed.
var (
	ErrTransferFailed    = errors.New("transfer failed")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAuthority  = errors.New("invalid transfer authority")
)

// Derivation errors.
var (
	ErrInvalidSeeds   = errors.New("invalid seeds")
	ErrNoViableNonce  = errors.New("no viable nonce")
	errAddressOnCurve = errors.New("derived address is on curve")
)
