package db

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crowd-escrow/internal/adapter/memory"
	"crowd-escrow/internal/adapter/usecase"
	"crowd-escrow/internal/core/domain"
	"crowd-escrow/internal/core/escrow"
	"crowd-escrow/internal/core/port/mocks"
)

func TestSeedIsRepeatable(t *testing.T) {
	svc := mocks.NewMockEscrowUseCase(t)
	svc.EXPECT().Mint(mock.Anything, mock.Anything, uint64(seedDonorBalance)).Return(seedDonorBalance, nil).Times(seedDonors)
	svc.EXPECT().
		InitializeCampaign(mock.Anything, DemoAddress("creator"), mock.AnythingOfType("port.InitializeCampaignReq")).
		Return(nil, domain.ErrAlreadyExists).
		Times(seedCampaigns)
	svc.EXPECT().Donate(mock.Anything, mock.Anything, uint64(1), mock.Anything).
		Return(nil, domain.ErrDonationAlreadyExists).
		Times(seedDonors)

	err := Seed(context.Background(), svc, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
}

func TestSeedToleratesClosedCampaign(t *testing.T) {
	for _, closed := range []error{domain.ErrCampaignEnded, domain.ErrCampaignInactive} {
		t.Run(closed.Error(), func(t *testing.T) {
			svc := mocks.NewMockEscrowUseCase(t)
			svc.EXPECT().Mint(mock.Anything, mock.Anything, mock.Anything).Return(seedDonorBalance, nil).Times(seedDonors)
			svc.EXPECT().
				InitializeCampaign(mock.Anything, mock.Anything, mock.Anything).
				Return(nil, domain.ErrAlreadyExists).
				Times(seedCampaigns)
			svc.EXPECT().Donate(mock.Anything, mock.Anything, uint64(1), mock.Anything).
				Return(nil, closed).
				Times(seedDonors)

			err := Seed(context.Background(), svc, slog.New(slog.DiscardHandler))
			require.NoError(t, err)
		})
	}
}

func TestSeedRerunAfterDeadline(t *testing.T) {
	ctx := context.Background()
	now := time.Unix(1_700_000_000, 0)
	d := domain.NewDeriver("seed-test")
	store := memory.NewStore(d)
	svc := usecase.NewEscrowUseCase(store, escrow.New(d), usecase.WithClock(func() time.Time { return now }))
	logger := slog.New(slog.DiscardHandler)

	require.NoError(t, Seed(ctx, svc, logger))

	now = now.Add(8 * 24 * time.Hour)
	require.NoError(t, Seed(ctx, svc, logger))

	_, err := svc.FinalizeCampaign(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, Seed(ctx, svc, logger))

	balance, err := svc.Balance(ctx, DemoAddress("donor-1"))
	require.NoError(t, err)
	assert.Equal(t, uint64(3*seedDonorBalance-100), balance)
}

func TestSeedStopsOnFailure(t *testing.T) {
	svc := mocks.NewMockEscrowUseCase(t)
	svc.EXPECT().Mint(mock.Anything, mock.Anything, mock.Anything).Return(seedDonorBalance, nil).Times(seedDonors)
	svc.EXPECT().
		InitializeCampaign(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.ErrArithmeticOverflow).
		Once()

	err := Seed(context.Background(), svc, slog.New(slog.DiscardHandler))
	assert.ErrorIs(t, err, domain.ErrArithmeticOverflow)
}

func TestDemoAddressIsStable(t *testing.T) {
	assert.Equal(t, DemoAddress("creator"), DemoAddress("creator"))
	assert.NotEqual(t, DemoAddress("creator"), DemoAddress("donor-1"))
}
