package domain

import (
	"encoding/binary"
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

const (
	CampaignSeed = "campaign"
	DonationSeed = "donation"

	maxSeeds         = 16
	maxSeedLen       = 32
	derivationMarker = "ProgramDerivedAddress"
)

// Deriver computes deterministic record addresses scoped to one program id.
//
// A derived address is the last 20 bytes of
// keccak256(seed_1 || ... || seed_n || nonce || program_id || marker). Only
// hashes that are not a valid secp256k1 x-coordinate are accepted, so no key
// pair can ever sign for a derived address: the only way to move funds held by
// one is to present its seeds and nonce.
type Deriver struct {
	ProgramID common.Address
}

// NewDeriver returns a Deriver whose program id is keccak256(name).
func NewDeriver(name string) Deriver {
	return Deriver{ProgramID: common.BytesToAddress(crypto.Keccak256([]byte(name)))}
}

// CreateAddress derives the address for seeds and a fixed nonce.
func (d Deriver) CreateAddress(seeds [][]byte, nonce uint8) (common.Address, error) {
	if len(seeds) > maxSeeds {
		return common.Address{}, ErrInvalidSeeds
	}
	buf := make([]byte, 0, maxSeeds*maxSeedLen+1+common.AddressLength+len(derivationMarker))
	for _, seed := range seeds {
		if len(seed) > maxSeedLen {
			return common.Address{}, ErrInvalidSeeds
		}
		buf = append(buf, seed...)
	}
	buf = append(buf, nonce)
	buf = append(buf, d.ProgramID.Bytes()...)
	buf = append(buf, derivationMarker...)

	hash := crypto.Keccak256(buf)
	if onCurve(hash) {
		return common.Address{}, errAddressOnCurve
	}
	return common.BytesToAddress(hash[12:]), nil
}

// FindAddress searches nonces from 255 down and returns the first one that
// yields a valid derived address. The result is deterministic for the seeds.
func (d Deriver) FindAddress(seeds [][]byte) (common.Address, uint8, error) {
	for nonce := 255; nonce >= 0; nonce-- {
		addr, err := d.CreateAddress(seeds, uint8(nonce))
		if err == nil {
			return addr, uint8(nonce), nil
		}
		if !errors.Is(err, errAddressOnCurve) {
			return common.Address{}, 0, err
		}
	}
	return common.Address{}, 0, ErrNoViableNonce
}

// CampaignAddress derives the address of the campaign with the given id. The
// same address owns the campaign's escrow holding.
func (d Deriver) CampaignAddress(id uint64) (common.Address, uint8, error) {
	return d.FindAddress(CampaignSeeds(id))
}

// DonationAddress derives the address of a donor's donation to a campaign.
func (d Deriver) DonationAddress(campaign, donor common.Address) (common.Address, uint8, error) {
	return d.FindAddress(DonationSeeds(campaign, donor))
}

// CampaignSeeds returns ("campaign", little-endian id).
func CampaignSeeds(id uint64) [][]byte {
	raw := make([]byte, 8)
	binary.LittleEndian.PutUint64(raw, id)
	return [][]byte{[]byte(CampaignSeed), raw}
}

// DonationSeeds returns ("donation", campaign, donor).
func DonationSeeds(campaign, donor common.Address) [][]byte {
	return [][]byte{[]byte(DonationSeed), campaign.Bytes(), donor.Bytes()}
}

func onCurve(hash []byte) bool {
	compressed := make([]byte, 0, 33)
	compressed = append(compressed, 0x02)
	compressed = append(compressed, hash...)
	_, err := crypto.DecompressPubkey(compressed)
	return err == nil
}
