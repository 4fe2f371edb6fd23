// Package storetest holds the behaviour every port.EscrowRepository
// implementation must share. Adapter packages call Run from their tests.
package storetest

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowd-escrow/internal/core/domain"
	"crowd-escrow/internal/core/port"
)

// Deriver is the derivation scope repositories under test must be built with.
var Deriver = domain.NewDeriver("storetest")

var (
	alice = common.HexToAddress("0xa11ce00000000000000000000000000000000001")
	bob   = common.HexToAddress("0xb0b0000000000000000000000000000000000002")
)

var errAbort = errors.New("abort")

// Run executes the contract suite. newRepo must return an empty repository
// built with Deriver.
func Run(t *testing.T, newRepo func(t *testing.T) port.EscrowRepository) {
	t.Run("campaign records", func(t *testing.T) { testCampaignRecords(t, newRepo(t)) })
	t.Run("list campaigns", func(t *testing.T) { testListCampaigns(t, newRepo(t)) })
	t.Run("donation records", func(t *testing.T) { testDonationRecords(t, newRepo(t)) })
	t.Run("rollback", func(t *testing.T) { testRollback(t, newRepo(t)) })
	t.Run("ledger", func(t *testing.T) { testLedger(t, newRepo(t)) })
	t.Run("serialized increments", func(t *testing.T) { testSerializedIncrements(t, newRepo(t)) })
}

func campaignAt(t *testing.T, id uint64) (common.Address, domain.Campaign) {
	t.Helper()
	addr, nonce, err := Deriver.CampaignAddress(id)
	require.NoError(t, err)
	return addr, domain.Campaign{
		Creator:        alice,
		ID:             id,
		GoalAmount:     1000,
		EndTime:        1_700_000_000,
		IsActive:       true,
		AuthorityNonce: nonce,
	}
}

func create(t *testing.T, repo port.EscrowRepository, addr common.Address, c domain.Campaign, p domain.CampaignProfile) {
	t.Helper()
	err := repo.Atomically(context.Background(), func(ctx context.Context, tx port.EscrowTx) error {
		if err := tx.CreateCampaign(ctx, addr, c); err != nil {
			return err
		}
		return tx.PutProfile(ctx, addr, p)
	})
	require.NoError(t, err)
}

func testCampaignRecords(t *testing.T, repo port.EscrowRepository) {
	ctx := context.Background()
	addr, c := campaignAt(t, math.MaxUint64)
	c.GoalAmount = math.MaxUint64
	c.TotalFunded = math.MaxUint64 - 1
	c.EndTime = math.MinInt64 + 1
	profile := domain.CampaignProfile{Title: "Well", Description: "Clean water", ImageURL: "https://img.example/well.png"}

	_, err := repo.GetCampaign(ctx, addr)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	create(t, repo, addr, c, profile)

	got, err := repo.GetCampaign(ctx, addr)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignRecord{Address: addr, Campaign: c, Profile: profile}, got)

	err = repo.Atomically(ctx, func(ctx context.Context, tx port.EscrowTx) error {
		return tx.CreateCampaign(ctx, addr, c)
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)

	err = repo.Atomically(ctx, func(ctx context.Context, tx port.EscrowTx) error {
		cur, err := tx.GetCampaign(ctx, addr)
		if err != nil {
			return err
		}
		cur.IsActive = false
		return tx.UpdateCampaign(ctx, addr, cur)
	})
	require.NoError(t, err)

	got, err = repo.GetCampaign(ctx, addr)
	require.NoError(t, err)
	assert.False(t, got.Campaign.IsActive)
	assert.Equal(t, c.TotalFunded, got.Campaign.TotalFunded)

	missing, _ := campaignAt(t, 1)
	err = repo.Atomically(ctx, func(ctx context.Context, tx port.EscrowTx) error {
		_, err := tx.GetCampaign(ctx, missing)
		return err
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func testListCampaigns(t *testing.T, repo port.EscrowRepository) {
	ctx := context.Background()
	for _, id := range []uint64{30, 10, math.MaxUint64, 20} {
		addr, c := campaignAt(t, id)
		create(t, repo, addr, c, domain.CampaignProfile{})
	}

	all, err := repo.ListCampaigns(ctx, port.Page{Limit: 10})
	require.NoError(t, err)
	ids := make([]uint64, 0, len(all))
	for _, rec := range all {
		ids = append(ids, rec.Campaign.ID)
	}
	assert.Equal(t, []uint64{10, 20, 30, math.MaxUint64}, ids)

	page, err := repo.ListCampaigns(ctx, port.Page{Limit: 2, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, uint64(20), page[0].Campaign.ID)
	assert.Equal(t, uint64(30), page[1].Campaign.ID)

	empty, err := repo.ListCampaigns(ctx, port.Page{Limit: 10, Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func testDonationRecords(t *testing.T, repo port.EscrowRepository) {
	ctx := context.Background()
	campaign, c := campaignAt(t, 5)
	create(t, repo, campaign, c, domain.CampaignProfile{})

	donate := func(donor common.Address, amount uint64) (common.Address, error) {
		addr, nonce, err := Deriver.DonationAddress(campaign, donor)
		require.NoError(t, err)
		return addr, repo.Atomically(ctx, func(ctx context.Context, tx port.EscrowTx) error {
			return tx.CreateDonation(ctx, addr, domain.Donation{
				Donor:        donor,
				Campaign:     campaign,
				Amount:       amount,
				AddressNonce: nonce,
			})
		})
	}

	aliceAddr, err := donate(alice, math.MaxUint64)
	require.NoError(t, err)
	_, err = donate(bob, 7)
	require.NoError(t, err)
	_, err = donate(alice, 1)
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)

	got, err := repo.GetDonation(ctx, aliceAddr)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), got.Amount)
	assert.False(t, got.Refunded)

	err = repo.Atomically(ctx, func(ctx context.Context, tx port.EscrowTx) error {
		d, err := tx.GetDonation(ctx, aliceAddr)
		if err != nil {
			return err
		}
		d.Refunded = true
		return tx.UpdateDonation(ctx, aliceAddr, d)
	})
	require.NoError(t, err)

	list, err := repo.ListDonations(ctx, campaign)
	require.NoError(t, err)
	require.Len(t, list, 2)
	byDonor := map[common.Address]domain.Donation{}
	for _, rec := range list {
		byDonor[rec.Donation.Donor] = rec.Donation
	}
	assert.True(t, byDonor[alice].Refunded)
	assert.Equal(t, uint64(7), byDonor[bob].Amount)

	other, _ := campaignAt(t, 6)
	none, err := repo.ListDonations(ctx, other)
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = repo.GetDonation(ctx, other)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func testRollback(t *testing.T, repo port.EscrowRepository) {
	ctx := context.Background()
	addr, c := campaignAt(t, 77)

	err := repo.Atomically(ctx, func(ctx context.Context, tx port.EscrowTx) error {
		if err := tx.CreateCampaign(ctx, addr, c); err != nil {
			return err
		}
		if err := tx.Mint(ctx, alice, 500); err != nil {
			return err
		}
		return errAbort
	})
	assert.ErrorIs(t, err, errAbort)

	_, err = repo.GetCampaign(ctx, addr)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	bal, err := repo.Balance(ctx, alice)
	require.NoError(t, err)
	assert.Zero(t, bal)
}

func testLedger(t *testing.T, repo port.EscrowRepository) {
	ctx := context.Background()
	escrow, c := campaignAt(t, 9)
	derived := domain.DerivedAuthorization(domain.CampaignSeeds(c.ID), c.AuthorityNonce)

	run := func(fn func(ctx context.Context, tx port.EscrowTx) error) error {
		return repo.Atomically(ctx, fn)
	}

	require.NoError(t, run(func(ctx context.Context, tx port.EscrowTx) error {
		return tx.Mint(ctx, alice, 1000)
	}))

	err := run(func(ctx context.Context, tx port.EscrowTx) error {
		return tx.Transfer(ctx, domain.Transfer{From: alice, To: escrow, Amount: 600, Auth: domain.SignerAuthorization(bob)})
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAuthority)

	err = run(func(ctx context.Context, tx port.EscrowTx) error {
		return tx.Transfer(ctx, domain.Transfer{From: alice, To: escrow, Amount: 1001, Auth: domain.SignerAuthorization(alice)})
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	require.NoError(t, run(func(ctx context.Context, tx port.EscrowTx) error {
		return tx.Transfer(ctx, domain.Transfer{From: alice, To: escrow, Amount: 600, Auth: domain.SignerAuthorization(alice)})
	}))

	err = run(func(ctx context.Context, tx port.EscrowTx) error {
		return tx.Transfer(ctx, domain.Transfer{From: escrow, To: bob, Amount: 100, Auth: domain.SignerAuthorization(alice)})
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAuthority)

	other, _ := campaignAt(t, 10)
	err = run(func(ctx context.Context, tx port.EscrowTx) error {
		return tx.Transfer(ctx, domain.Transfer{From: other, To: bob, Amount: 0, Auth: derived})
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAuthority, "authority is scoped to one campaign")

	require.NoError(t, run(func(ctx context.Context, tx port.EscrowTx) error {
		return tx.Transfer(ctx, domain.Transfer{From: escrow, To: bob, Amount: 250, Auth: derived})
	}))

	for owner, want := range map[common.Address]uint64{alice: 400, escrow: 350, bob: 250} {
		got, err := repo.Balance(ctx, owner)
		require.NoError(t, err)
		assert.Equal(t, want, got, owner.Hex())
	}

	unknown, err := repo.Balance(ctx, common.HexToAddress("0xdead"))
	require.NoError(t, err)
	assert.Zero(t, unknown)

	journal, err := repo.Transfers(ctx, alice, 10)
	require.NoError(t, err)
	require.Len(t, journal, 2)
	assert.Equal(t, domain.TransferKindTransfer, journal[0].Kind)
	assert.Equal(t, uint64(600), journal[0].Amount)
	assert.Equal(t, domain.TransferKindMint, journal[1].Kind)
	assert.Equal(t, common.Address{}, journal[1].From)

	limited, err := repo.Transfers(ctx, escrow, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, bob, limited[0].To)
}

func testSerializedIncrements(t *testing.T, repo port.EscrowRepository) {
	ctx := context.Background()
	addr, c := campaignAt(t, 11)
	create(t, repo, addr, c, domain.CampaignProfile{})

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- repo.Atomically(ctx, func(ctx context.Context, tx port.EscrowTx) error {
				cur, err := tx.GetCampaign(ctx, addr)
				if err != nil {
					return err
				}
				cur.TotalFunded++
				return tx.UpdateCampaign(ctx, addr, cur)
			})
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	got, err := repo.GetCampaign(ctx, addr)
	require.NoError(t, err)
	assert.Equal(t, uint64(workers), got.Campaign.TotalFunded)
}
