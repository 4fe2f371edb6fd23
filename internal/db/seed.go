package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"crowd-escrow/internal/core/domain"
	"crowd-escrow/internal/core/port"
)

const (
	seedDonors       = 5
	seedDonorBalance = 10_000
	seedCampaigns    = 3
)

// DemoAddress returns the well known address seeded under name.
func DemoAddress(name string) common.Address {
	return common.BytesToAddress(crypto.Keccak256([]byte("crowd-escrow/demo/" + name)))
}

// Seed fills a fresh deployment with demo data through the use case: funded
// donor holdings, a few open campaigns and one donation per donor to the
// first campaign. Running it again only mints more tokens, including after
// the first campaign has ended or been finalized.
func Seed(ctx context.Context, svc port.EscrowUseCase, logger *slog.Logger) error {
	creator := DemoAddress("creator")

	donors := make([]common.Address, seedDonors)
	for i := range donors {
		donors[i] = DemoAddress(fmt.Sprintf("donor-%d", i+1))
		if _, err := svc.Mint(ctx, donors[i], seedDonorBalance); err != nil {
			return err
		}
	}

	for i := 1; i <= seedCampaigns; i++ {
		_, err := svc.InitializeCampaign(ctx, creator, port.InitializeCampaignReq{
			CampaignID: uint64(i),
			GoalAmount: uint64(i) * 5_000,
			Duration:   int64(i) * 7 * 24 * 3600,
			Profile: domain.CampaignProfile{
				Title:       fmt.Sprintf("Campaign %d", i),
				Description: fmt.Sprintf("Demo campaign %d", i),
				ImageURL:    fmt.Sprintf("https://example.com/campaign/%d.png", i),
			},
		})
		if err != nil && !errors.Is(err, domain.ErrAlreadyExists) {
			return err
		}
	}

	for i, donor := range donors {
		_, err := svc.Donate(ctx, donor, 1, uint64(i+1)*100)
		if err != nil && !donationSettled(err) {
			return err
		}
	}

	logger.Info("demo data seeded",
		slog.String("creator", creator.Hex()),
		slog.Int("donors", len(donors)),
		slog.Int("campaigns", seedCampaigns),
	)
	return nil
}

func donationSettled(err error) bool {
	return errors.Is(err, domain.ErrDonationAlreadyExists) ||
		errors.Is(err, domain.ErrCampaignEnded) ||
		errors.Is(err, domain.ErrCampaignInactive)
}
