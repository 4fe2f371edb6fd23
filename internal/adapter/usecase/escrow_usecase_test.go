package usecase

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crowd-escrow/internal/adapter/memory"
	"crowd-escrow/internal/core/domain"
	"crowd-escrow/internal/core/escrow"
	"crowd-escrow/internal/core/port"
	"crowd-escrow/internal/core/port/mocks"
)

var (
	creator = common.HexToAddress("0xc000000000000000000000000000000000000001")
	donorA  = common.HexToAddress("0xa000000000000000000000000000000000000001")
	donorB  = common.HexToAddress("0xb000000000000000000000000000000000000002")
)

var deriver = domain.NewDeriver("usecase-test")

// clock is a settable unix-seconds clock.
type clock struct {
	mu  sync.Mutex
	now int64
}

func (c *clock) set(now int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

func (c *clock) time() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return time.Unix(c.now, 0)
}

type fixture struct {
	uc    *EscrowUseCase
	store *memory.Store
	clock *clock
}

func newFixture(t *testing.T, engineOpts ...escrow.Option) *fixture {
	t.Helper()
	clk := &clock{}
	store := memory.NewStore(deriver)
	uc := NewEscrowUseCase(store, escrow.New(deriver, engineOpts...), WithClock(clk.time))
	return &fixture{uc: uc, store: store, clock: clk}
}

func (f *fixture) mint(t *testing.T, owner common.Address, amount uint64) {
	t.Helper()
	_, err := f.uc.Mint(context.Background(), owner, amount)
	require.NoError(t, err)
}

func (f *fixture) open(t *testing.T, id, goal uint64, duration int64) *port.CampaignView {
	t.Helper()
	view, err := f.uc.InitializeCampaign(context.Background(), creator, port.InitializeCampaignReq{
		CampaignID: id,
		GoalAmount: goal,
		Duration:   duration,
	})
	require.NoError(t, err)
	return view
}

func (f *fixture) balance(t *testing.T, owner common.Address) uint64 {
	t.Helper()
	bal, err := f.uc.Balance(context.Background(), owner)
	require.NoError(t, err)
	return bal
}

func TestSuccessfulCampaignPaysCreator(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.mint(t, donorA, 400)
	f.mint(t, donorB, 700)
	camp := f.open(t, 1, 1000, 100)

	f.clock.set(10)
	_, err := f.uc.Donate(ctx, donorA, 1, 400)
	require.NoError(t, err)

	f.clock.set(20)
	_, err = f.uc.Donate(ctx, donorB, 1, 700)
	require.NoError(t, err)

	view, err := f.uc.GetCampaign(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1100), view.Campaign.TotalFunded)
	assert.Equal(t, uint64(1100), view.EscrowBalance)

	f.clock.set(150)
	resp, err := f.uc.FinalizeCampaign(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1100), resp.Payout)
	assert.False(t, resp.Campaign.Campaign.IsActive)
	assert.Equal(t, domain.CampaignStatusSuccessful, resp.Campaign.Status)
	assert.Equal(t, uint64(1100), f.balance(t, creator))
	assert.Zero(t, f.balance(t, camp.Address))

	_, err = f.uc.Refund(ctx, donorA, 1)
	assert.ErrorIs(t, err, domain.ErrCampaignSuccessful)
	assert.Zero(t, f.balance(t, donorA))
}

func TestFailedCampaignRefundsDonor(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.mint(t, donorA, 500)
	camp := f.open(t, 1, 1000, 100)

	f.clock.set(10)
	_, err := f.uc.Donate(ctx, donorA, 1, 300)
	require.NoError(t, err)
	assert.Equal(t, uint64(200), f.balance(t, donorA))

	f.clock.set(150)
	resp, err := f.uc.FinalizeCampaign(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, resp.Payout)
	assert.Equal(t, domain.CampaignStatusFailed, resp.Campaign.Status)
	assert.Zero(t, f.balance(t, creator))
	assert.Equal(t, uint64(300), f.balance(t, camp.Address))

	f.clock.set(151)
	refund, err := f.uc.Refund(ctx, donorA, 1)
	require.NoError(t, err)
	assert.True(t, refund.Donation.Refunded)
	assert.Equal(t, uint64(500), f.balance(t, donorA))
	assert.Zero(t, f.balance(t, camp.Address))

	stored, err := f.uc.GetDonation(ctx, 1, donorA)
	require.NoError(t, err)
	assert.True(t, stored.Donation.Refunded)
	assert.Equal(t, uint64(300), stored.Donation.Amount)

	_, err = f.uc.Refund(ctx, donorA, 1)
	assert.ErrorIs(t, err, domain.ErrAlreadyRefunded)
	assert.Equal(t, uint64(500), f.balance(t, donorA))

	_, err = f.uc.Refund(ctx, donorB, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDonateAfterDeadline(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.mint(t, donorA, 100)
	f.open(t, 1, 1000, 100)

	for _, at := range []int64{100, 101} {
		f.clock.set(at)
		_, err := f.uc.Donate(ctx, donorA, 1, 10)
		assert.ErrorIs(t, err, domain.ErrCampaignEnded, "t=%d", at)
	}

	view, err := f.uc.GetCampaign(ctx, 1)
	require.NoError(t, err)
	assert.True(t, view.Campaign.IsActive)
	assert.Zero(t, view.Campaign.TotalFunded)
	assert.Equal(t, uint64(100), f.balance(t, donorA))
}

func TestDonateAfterFinalize(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.mint(t, donorA, 100)
	f.open(t, 1, 1000, 100)

	f.clock.set(100)
	_, err := f.uc.FinalizeCampaign(ctx, 1)
	require.NoError(t, err)

	_, err = f.uc.Donate(ctx, donorA, 1, 10)
	assert.ErrorIs(t, err, domain.ErrCampaignInactive)
}

func TestDuplicateDonationMovesNoFunds(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.mint(t, donorA, 1000)
	camp := f.open(t, 1, 1000, 100)

	_, err := f.uc.Donate(ctx, donorA, 1, 100)
	require.NoError(t, err)

	_, err = f.uc.Donate(ctx, donorA, 1, 250)
	assert.ErrorIs(t, err, domain.ErrDonationAlreadyExists)

	assert.Equal(t, uint64(900), f.balance(t, donorA))
	assert.Equal(t, uint64(100), f.balance(t, camp.Address))
	d, err := f.uc.GetDonation(ctx, 1, donorA)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), d.Donation.Amount)
}

func TestDonateWithoutFundsLeavesNoRecord(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.mint(t, donorA, 50)
	f.open(t, 1, 1000, 100)

	_, err := f.uc.Donate(ctx, donorA, 1, 51)
	assert.ErrorIs(t, err, domain.ErrTransferFailed)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	_, err = f.uc.GetDonation(ctx, 1, donorA)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	view, err := f.uc.GetCampaign(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, view.Campaign.TotalFunded)
	assert.Equal(t, uint64(50), f.balance(t, donorA))
}

func TestPreconditions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.mint(t, donorA, 100)
	f.open(t, 1, 1000, 100)

	_, err := f.uc.InitializeCampaign(ctx, donorB, port.InitializeCampaignReq{CampaignID: 1, GoalAmount: 5, Duration: 10})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)

	_, err = f.uc.Donate(ctx, donorA, 2, 10)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	f.clock.set(10)
	_, err = f.uc.Donate(ctx, donorA, 1, 10)
	require.NoError(t, err)

	_, err = f.uc.FinalizeCampaign(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrCampaignNotEnded)

	_, err = f.uc.Refund(ctx, donorA, 1)
	assert.ErrorIs(t, err, domain.ErrCampaignStillActive)

	_, err = f.uc.ListDonations(ctx, 2)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFinalizeTwice(t *testing.T) {
	ctx := context.Background()

	t.Run("rejected by default", func(t *testing.T) {
		f := newFixture(t)
		f.open(t, 1, 0, 100)
		f.clock.set(200)

		_, err := f.uc.FinalizeCampaign(ctx, 1)
		require.NoError(t, err)
		_, err = f.uc.FinalizeCampaign(ctx, 1)
		assert.ErrorIs(t, err, domain.ErrCampaignAlreadyFinalized)
	})

	t.Run("legacy reruns the payout", func(t *testing.T) {
		f := newFixture(t, escrow.WithLegacyFinalize(true))
		f.mint(t, donorA, 1000)
		f.open(t, 1, 1000, 100)
		f.clock.set(10)
		_, err := f.uc.Donate(ctx, donorA, 1, 1000)
		require.NoError(t, err)

		f.clock.set(200)
		_, err = f.uc.FinalizeCampaign(ctx, 1)
		require.NoError(t, err)

		_, err = f.uc.FinalizeCampaign(ctx, 1)
		assert.ErrorIs(t, err, domain.ErrTransferFailed)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		assert.Equal(t, uint64(1000), f.balance(t, creator))
	})

	t.Run("legacy failed campaign is a no-op", func(t *testing.T) {
		f := newFixture(t, escrow.WithLegacyFinalize(true))
		f.open(t, 1, 1000, 100)
		f.clock.set(200)

		_, err := f.uc.FinalizeCampaign(ctx, 1)
		require.NoError(t, err)
		resp, err := f.uc.FinalizeCampaign(ctx, 1)
		require.NoError(t, err)
		assert.Zero(t, resp.Payout)
	})
}

func TestConcurrentDonationsSumToTotal(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	camp := f.open(t, 1, 1_000_000, 100)

	donors := make([]common.Address, 16)
	for i := range donors {
		donors[i] = common.BigToAddress(common.Big1)
		donors[i][0] = byte(i + 1)
		f.mint(t, donors[i], uint64(i+1)*10)
	}

	var wg sync.WaitGroup
	for i, d := range donors {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.uc.Donate(ctx, d, 1, uint64(i+1)*10)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	list, err := f.uc.ListDonations(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, len(donors))
	var sum uint64
	for _, d := range list {
		sum += d.Donation.Amount
	}

	view, err := f.uc.GetCampaign(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, sum, view.Campaign.TotalFunded)
	assert.Equal(t, sum, f.balance(t, camp.Address))
}

func TestProfileAndListing(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.uc.InitializeCampaign(ctx, creator, port.InitializeCampaignReq{
		CampaignID: 2,
		GoalAmount: 10,
		Duration:   10,
		Profile:    domain.CampaignProfile{Title: "Well", ImageURL: "https://example.com/well.png"},
	})
	require.NoError(t, err)
	f.open(t, 1, 10, 10)

	views, err := f.uc.ListCampaigns(ctx, port.Page{})
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, uint64(1), views[0].Campaign.ID)
	assert.Equal(t, "Well", views[1].Profile.Title)
	assert.Equal(t, domain.CampaignStatusActive, views[1].Status)
}

func TestMintJournal(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.mint(t, donorA, 100)
	f.open(t, 1, 10, 10)
	_, err := f.uc.Donate(ctx, donorA, 1, 40)
	require.NoError(t, err)

	recs, err := f.uc.Transfers(ctx, donorA, 0)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, domain.TransferKindTransfer, recs[0].Kind)
	assert.Equal(t, uint64(40), recs[0].Amount)
	assert.Equal(t, domain.TransferKindMint, recs[1].Kind)
}

func TestRejectionsLogAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	uc := NewEscrowUseCase(memory.NewStore(deriver), escrow.New(deriver), WithLogger(logger))

	_, err := uc.FinalizeCampaign(context.Background(), 42)
	require.ErrorIs(t, err, domain.ErrNotFound)

	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "transition rejected")
	assert.Contains(t, buf.String(), "campaign_id=42")
}

// atomicallyWith makes the mocked repository run fn against tx.
func atomicallyWith(repo *mocks.MockEscrowRepository, tx port.EscrowTx) {
	repo.EXPECT().
		Atomically(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context, port.EscrowTx) error) error {
			return fn(ctx, tx)
		})
}

func TestFailedTransferSkipsWrites(t *testing.T) {
	engine := escrow.New(deriver)
	camp, err := engine.InitializeCampaign(creator, 1, 1000, 100, 0)
	require.NoError(t, err)
	donationAddr, err := engine.DonationAddress(camp.Address, donorA)
	require.NoError(t, err)

	repo := mocks.NewMockEscrowRepository(t)
	tx := mocks.NewMockEscrowTx(t)
	atomicallyWith(repo, tx)
	tx.EXPECT().GetCampaign(mock.Anything, camp.Address).Return(camp.Campaign, nil)
	tx.EXPECT().GetDonation(mock.Anything, donationAddr).Return(domain.Donation{}, domain.ErrNotFound)
	tx.EXPECT().
		Transfer(mock.Anything, mock.MatchedBy(func(tr domain.Transfer) bool {
			return tr.From == donorA && tr.To == camp.Address && tr.Amount == 10
		})).
		Return(domain.ErrInvalidAuthority)

	uc := NewEscrowUseCase(repo, engine, WithClock(func() time.Time { return time.Unix(5, 0) }))
	_, err = uc.Donate(context.Background(), donorA, 1, 10)

	assert.ErrorIs(t, err, domain.ErrTransferFailed)
	assert.ErrorIs(t, err, domain.ErrInvalidAuthority)
}

func TestLedgerOutageIsNotATransferFailure(t *testing.T) {
	engine := escrow.New(deriver)
	camp, err := engine.InitializeCampaign(creator, 1, 1000, 100, 0)
	require.NoError(t, err)
	donationAddr, err := engine.DonationAddress(camp.Address, donorA)
	require.NoError(t, err)
	outage := errors.New("conn reset by peer")

	repo := mocks.NewMockEscrowRepository(t)
	tx := mocks.NewMockEscrowTx(t)
	atomicallyWith(repo, tx)
	tx.EXPECT().GetCampaign(mock.Anything, camp.Address).Return(camp.Campaign, nil)
	tx.EXPECT().GetDonation(mock.Anything, donationAddr).Return(domain.Donation{}, domain.ErrNotFound)
	tx.EXPECT().Transfer(mock.Anything, mock.Anything).Return(outage)

	uc := NewEscrowUseCase(repo, engine, WithClock(func() time.Time { return time.Unix(5, 0) }))
	_, err = uc.Donate(context.Background(), donorA, 1, 10)

	assert.ErrorIs(t, err, outage)
	assert.NotErrorIs(t, err, domain.ErrTransferFailed)
	assert.False(t, IsRuleViolation(err))
}

func TestFinalizeSurvivesFailedReadBack(t *testing.T) {
	engine := escrow.New(deriver)
	camp, err := engine.InitializeCampaign(creator, 1, 1000, 100, 0)
	require.NoError(t, err)
	camp.Campaign.TotalFunded = 1000

	repo := mocks.NewMockEscrowRepository(t)
	tx := mocks.NewMockEscrowTx(t)
	atomicallyWith(repo, tx)
	tx.EXPECT().GetCampaign(mock.Anything, camp.Address).Return(camp.Campaign, nil)
	tx.EXPECT().
		Transfer(mock.Anything, mock.MatchedBy(func(tr domain.Transfer) bool {
			return tr.From == camp.Address && tr.To == creator && tr.Amount == 1000
		})).
		Return(nil)
	tx.EXPECT().
		UpdateCampaign(mock.Anything, camp.Address, mock.MatchedBy(func(c domain.Campaign) bool {
			return !c.IsActive
		})).
		Return(nil)
	repo.EXPECT().GetCampaign(mock.Anything, camp.Address).Return(domain.CampaignRecord{}, errors.New("conn reset by peer"))

	uc := NewEscrowUseCase(repo, engine, WithClock(func() time.Time { return time.Unix(200, 0) }))
	resp, err := uc.FinalizeCampaign(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, uint64(1000), resp.Payout)
	assert.Equal(t, domain.CampaignStatusSuccessful, resp.Campaign.Status)
	assert.Equal(t, camp.Address, resp.Campaign.Address)
	assert.False(t, resp.Campaign.Campaign.IsActive)
}

func TestStoreFailureIsNotARuleViolation(t *testing.T) {
	engine := escrow.New(deriver)
	camp, err := engine.InitializeCampaign(creator, 1, 1000, 100, 0)
	require.NoError(t, err)
	camp.Campaign.IsActive = false
	donationAddr, err := engine.DonationAddress(camp.Address, donorA)
	require.NoError(t, err)
	donation := domain.Donation{Donor: donorA, Campaign: camp.Address, Amount: 10}
	broken := errors.New("disk full")

	repo := mocks.NewMockEscrowRepository(t)
	tx := mocks.NewMockEscrowTx(t)
	atomicallyWith(repo, tx)
	tx.EXPECT().GetCampaign(mock.Anything, camp.Address).Return(camp.Campaign, nil)
	tx.EXPECT().GetDonation(mock.Anything, donationAddr).Return(donation, nil)
	tx.EXPECT().Transfer(mock.Anything, mock.Anything).Return(nil)
	tx.EXPECT().UpdateDonation(mock.Anything, donationAddr, mock.Anything).Return(broken)

	uc := NewEscrowUseCase(repo, engine)
	_, err = uc.Refund(context.Background(), donorA, 1)

	assert.ErrorIs(t, err, broken)
	assert.False(t, IsRuleViolation(err))
}

func TestIsRuleViolation(t *testing.T) {
	assert.True(t, IsRuleViolation(domain.ErrCampaignEnded))
	assert.True(t, IsRuleViolation(transferFailed(domain.ErrInsufficientFunds)))
	assert.False(t, IsRuleViolation(context.Canceled))
}
