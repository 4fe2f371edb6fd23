package domain

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

// AuthorizationKind tells the token ledger how a debit is authorized.
type AuthorizationKind uint8

const (
	// AuthorizationSigner is a direct signature by the owner of the debited holding.
	AuthorizationSigner AuthorizationKind = iota + 1
	// AuthorizationDerived is a seeds+nonce proof for a derived owner address.
	AuthorizationDerived
)

// Authorization accompanies every transfer.
type Authorization struct {
	Kind   AuthorizationKind
	Signer common.Address
	Seeds  [][]byte
	Nonce  uint8
}

// SignerAuthorization authorizes a debit signed by signer.
func SignerAuthorization(signer common.Address) Authorization {
	return Authorization{Kind: AuthorizationSigner, Signer: signer}
}

// DerivedAuthorization authorizes a debit of the holding owned by the address
// derived from seeds and nonce.
func DerivedAuthorization(seeds [][]byte, nonce uint8) Authorization {
	return Authorization{Kind: AuthorizationDerived, Seeds: seeds, Nonce: nonce}
}

// Authorize checks that auth may debit the holding owned by owner.
func (d Deriver) Authorize(auth Authorization, owner common.Address) error {
	switch auth.Kind {
	case AuthorizationSigner:
		if auth.Signer != owner {
			return ErrInvalidAuthority
		}
		return nil
	case AuthorizationDerived:
		addr, err := d.CreateAddress(auth.Seeds, auth.Nonce)
		if err != nil || addr != owner {
			return ErrInvalidAuthority
		}
		return nil
	default:
		return ErrInvalidAuthority
	}
}

// Transfer is an instruction for the token ledger.
type Transfer struct {
	From   common.Address
	To     common.Address
	Amount uint64
	Auth   Authorization
}

// TransferKind labels journal entries.
type TransferKind string

const (
	TransferKindMint     TransferKind = "mint"
	TransferKindTransfer TransferKind = "transfer"
)

// TransferRecord is a journal entry written by the token ledger for every
// balance movement. From is the zero address for mints.
type TransferRecord struct {
	ID        uuid.UUID
	Kind      TransferKind
	From      common.Address
	To        common.Address
	Amount    uint64
	CreatedAt time.Time
}
