package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"crowd-escrow/internal/core/domain"
	"crowd-escrow/internal/core/escrow"
	"crowd-escrow/internal/core/port"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 200
)

// EscrowUseCase orchestrates the escrow engine against the repository. Each
// write operation runs as one repository transaction: read the records,
// let the engine decide, execute the transfer, then write the new records.
// Any failure inside the transaction discards every write of that call.
type EscrowUseCase struct {
	repo   port.EscrowRepository
	engine *escrow.Engine
	logger *slog.Logger

	// nowFn supplies the wall clock used for deadline checks. It is read
	// once per transaction attempt.
	nowFn func() time.Time
}

// Option configures an EscrowUseCase.
type Option func(*EscrowUseCase)

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) Option {
	return func(u *EscrowUseCase) { u.nowFn = now }
}

// WithLogger sets the logger used for transition logs.
func WithLogger(logger *slog.Logger) Option {
	return func(u *EscrowUseCase) { u.logger = logger }
}

// NewEscrowUseCase creates a new usecase over repo and engine.
func NewEscrowUseCase(repo port.EscrowRepository, engine *escrow.Engine, opts ...Option) *EscrowUseCase {
	u := &EscrowUseCase{
		repo:   repo,
		engine: engine,
		logger: slog.New(slog.DiscardHandler),
		nowFn:  time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// InitializeCampaign opens a campaign at the address derived from its id.
func (u *EscrowUseCase) InitializeCampaign(ctx context.Context, creator common.Address, req port.InitializeCampaignReq) (*port.CampaignView, error) {
	var rec domain.CampaignRecord
	err := u.repo.Atomically(ctx, func(ctx context.Context, tx port.EscrowTx) error {
		var err error
		rec, err = u.engine.InitializeCampaign(creator, req.CampaignID, req.GoalAmount, req.Duration, u.now())
		if err != nil {
			return err
		}
		rec.Profile = req.Profile
		if err = tx.CreateCampaign(ctx, rec.Address, rec.Campaign); err != nil {
			return err
		}
		return tx.PutProfile(ctx, rec.Address, rec.Profile)
	})
	if err != nil {
		u.rejected(ctx, "initialize campaign", err, slog.Uint64("campaign_id", req.CampaignID))
		return nil, fmt.Errorf("initialize campaign %d: %w", req.CampaignID, err)
	}

	u.logger.InfoContext(ctx, "campaign initialized",
		slog.Uint64("campaign_id", rec.Campaign.ID),
		slog.String("address", rec.Address.Hex()),
		slog.String("creator", creator.Hex()),
		slog.Uint64("goal_amount", rec.Campaign.GoalAmount),
		slog.Int64("end_time", rec.Campaign.EndTime),
	)
	return &port.CampaignView{CampaignRecord: rec, Status: rec.Campaign.Status()}, nil
}

// Donate transfers amount from donor into the campaign escrow. The
// duplicate-donation check runs before the transfer, and the record insert
// repeats it, so a second donation from the same donor never moves funds.
func (u *EscrowUseCase) Donate(ctx context.Context, donor common.Address, campaignID, amount uint64) (*port.DonationView, error) {
	addr, err := u.engine.CampaignAddress(campaignID)
	if err != nil {
		return nil, err
	}

	var res escrow.DonateResult
	err = u.repo.Atomically(ctx, func(ctx context.Context, tx port.EscrowTx) error {
		campaign, err := tx.GetCampaign(ctx, addr)
		if err != nil {
			return err
		}
		res, err = u.engine.Donate(domain.CampaignRecord{Address: addr, Campaign: campaign}, donor, amount, u.now())
		if err != nil {
			return err
		}

		_, err = tx.GetDonation(ctx, res.Donation.Address)
		switch {
		case err == nil:
			return domain.ErrDonationAlreadyExists
		case !errors.Is(err, domain.ErrNotFound):
			return err
		}

		if err = tx.Transfer(ctx, res.Transfer); err != nil {
			return transferFailed(err)
		}
		if err = tx.CreateDonation(ctx, res.Donation.Address, res.Donation.Donation); err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return domain.ErrDonationAlreadyExists
			}
			return err
		}
		return tx.UpdateCampaign(ctx, addr, res.Campaign)
	})
	if err != nil {
		u.rejected(ctx, "donate", err,
			slog.Uint64("campaign_id", campaignID),
			slog.String("donor", donor.Hex()),
			slog.Uint64("amount", amount),
		)
		return nil, fmt.Errorf("donate to campaign %d: %w", campaignID, err)
	}

	u.logger.InfoContext(ctx, "donation accepted",
		slog.Uint64("campaign_id", campaignID),
		slog.String("donor", donor.Hex()),
		slog.Uint64("amount", amount),
		slog.Uint64("total_funded", res.Campaign.TotalFunded),
	)
	return &port.DonationView{DonationRecord: res.Donation}, nil
}

// FinalizeCampaign closes the campaign and pays the creator when the goal
// was reached. A missed goal leaves the escrow in place for refunds.
func (u *EscrowUseCase) FinalizeCampaign(ctx context.Context, campaignID uint64) (*port.FinalizeResp, error) {
	addr, err := u.engine.CampaignAddress(campaignID)
	if err != nil {
		return nil, err
	}

	var res escrow.FinalizeResult
	err = u.repo.Atomically(ctx, func(ctx context.Context, tx port.EscrowTx) error {
		campaign, err := tx.GetCampaign(ctx, addr)
		if err != nil {
			return err
		}
		res, err = u.engine.FinalizeCampaign(domain.CampaignRecord{Address: addr, Campaign: campaign}, u.now())
		if err != nil {
			return err
		}
		if res.Transfer != nil {
			if err = tx.Transfer(ctx, *res.Transfer); err != nil {
				return transferFailed(err)
			}
		}
		return tx.UpdateCampaign(ctx, addr, res.Campaign)
	})
	if err != nil {
		u.rejected(ctx, "finalize campaign", err, slog.Uint64("campaign_id", campaignID))
		return nil, fmt.Errorf("finalize campaign %d: %w", campaignID, err)
	}

	var payout uint64
	if res.Transfer != nil {
		payout = res.Transfer.Amount
	}
	u.logger.InfoContext(ctx, "campaign finalized",
		slog.Uint64("campaign_id", campaignID),
		slog.String("status", string(res.Campaign.Status())),
		slog.Uint64("total_funded", res.Campaign.TotalFunded),
		slog.Uint64("payout", payout),
	)

	// The transition is committed; a failed read only costs the profile and
	// the live balance in the response.
	view, err := u.GetCampaign(ctx, campaignID)
	if err != nil {
		u.logger.WarnContext(ctx, "read finalized campaign",
			slog.Uint64("campaign_id", campaignID),
			slog.Any("error", err),
		)
		view = &port.CampaignView{
			CampaignRecord: domain.CampaignRecord{Address: addr, Campaign: res.Campaign},
			Status:         res.Campaign.Status(),
		}
	}
	return &port.FinalizeResp{Campaign: *view, Payout: payout}, nil
}

// Refund pays the donor's donation back out of a failed campaign's escrow.
func (u *EscrowUseCase) Refund(ctx context.Context, donor common.Address, campaignID uint64) (*port.DonationView, error) {
	addr, err := u.engine.CampaignAddress(campaignID)
	if err != nil {
		return nil, err
	}
	donationAddr, err := u.engine.DonationAddress(addr, donor)
	if err != nil {
		return nil, err
	}

	var res escrow.RefundResult
	err = u.repo.Atomically(ctx, func(ctx context.Context, tx port.EscrowTx) error {
		campaign, err := tx.GetCampaign(ctx, addr)
		if err != nil {
			return err
		}
		donation, err := tx.GetDonation(ctx, donationAddr)
		if err != nil {
			return err
		}
		res, err = u.engine.Refund(domain.CampaignRecord{Address: addr, Campaign: campaign}, donation, donor)
		if err != nil {
			return err
		}
		if err = tx.Transfer(ctx, res.Transfer); err != nil {
			return transferFailed(err)
		}
		return tx.UpdateDonation(ctx, donationAddr, res.Donation)
	})
	if err != nil {
		u.rejected(ctx, "refund", err,
			slog.Uint64("campaign_id", campaignID),
			slog.String("donor", donor.Hex()),
		)
		return nil, fmt.Errorf("refund from campaign %d: %w", campaignID, err)
	}

	u.logger.InfoContext(ctx, "donation refunded",
		slog.Uint64("campaign_id", campaignID),
		slog.String("donor", donor.Hex()),
		slog.Uint64("amount", res.Donation.Amount),
	)
	return &port.DonationView{DonationRecord: domain.DonationRecord{Address: donationAddr, Donation: res.Donation}}, nil
}

// GetCampaign returns the campaign with its live escrow balance.
func (u *EscrowUseCase) GetCampaign(ctx context.Context, campaignID uint64) (*port.CampaignView, error) {
	addr, err := u.engine.CampaignAddress(campaignID)
	if err != nil {
		return nil, err
	}
	rec, err := u.repo.GetCampaign(ctx, addr)
	if err != nil {
		return nil, fmt.Errorf("campaign %d: %w", campaignID, err)
	}
	view, err := u.view(ctx, rec)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// ListCampaigns returns a page of campaigns ordered by id.
func (u *EscrowUseCase) ListCampaigns(ctx context.Context, page port.Page) ([]port.CampaignView, error) {
	recs, err := u.repo.ListCampaigns(ctx, normalizePage(page))
	if err != nil {
		return nil, err
	}
	views := make([]port.CampaignView, 0, len(recs))
	for _, rec := range recs {
		view, err := u.view(ctx, rec)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// GetDonation returns the donation of donor to the campaign.
func (u *EscrowUseCase) GetDonation(ctx context.Context, campaignID uint64, donor common.Address) (*port.DonationView, error) {
	addr, err := u.engine.CampaignAddress(campaignID)
	if err != nil {
		return nil, err
	}
	donationAddr, err := u.engine.DonationAddress(addr, donor)
	if err != nil {
		return nil, err
	}
	d, err := u.repo.GetDonation(ctx, donationAddr)
	if err != nil {
		return nil, fmt.Errorf("donation of %s to campaign %d: %w", donor.Hex(), campaignID, err)
	}
	return &port.DonationView{DonationRecord: domain.DonationRecord{Address: donationAddr, Donation: d}}, nil
}

// ListDonations returns all donations of an existing campaign.
func (u *EscrowUseCase) ListDonations(ctx context.Context, campaignID uint64) ([]port.DonationView, error) {
	addr, err := u.engine.CampaignAddress(campaignID)
	if err != nil {
		return nil, err
	}
	if _, err = u.repo.GetCampaign(ctx, addr); err != nil {
		return nil, fmt.Errorf("campaign %d: %w", campaignID, err)
	}
	recs, err := u.repo.ListDonations(ctx, addr)
	if err != nil {
		return nil, err
	}
	views := make([]port.DonationView, 0, len(recs))
	for _, rec := range recs {
		views = append(views, port.DonationView{DonationRecord: rec})
	}
	return views, nil
}

// Balance returns the token balance of owner.
func (u *EscrowUseCase) Balance(ctx context.Context, owner common.Address) (uint64, error) {
	return u.repo.Balance(ctx, owner)
}

// Transfers returns recent journal entries involving owner.
func (u *EscrowUseCase) Transfers(ctx context.Context, owner common.Address, limit int) ([]domain.TransferRecord, error) {
	return u.repo.Transfers(ctx, owner, normalizePage(port.Page{Limit: limit}).Limit)
}

// Mint credits owner and returns the resulting balance.
func (u *EscrowUseCase) Mint(ctx context.Context, owner common.Address, amount uint64) (uint64, error) {
	var balance uint64
	err := u.repo.Atomically(ctx, func(ctx context.Context, tx port.EscrowTx) error {
		if err := tx.Mint(ctx, owner, amount); err != nil {
			return err
		}
		var err error
		balance, err = tx.Balance(ctx, owner)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("mint to %s: %w", owner.Hex(), err)
	}
	u.logger.InfoContext(ctx, "tokens minted",
		slog.String("owner", owner.Hex()),
		slog.Uint64("amount", amount),
		slog.Uint64("balance", balance),
	)
	return balance, nil
}

func (u *EscrowUseCase) view(ctx context.Context, rec domain.CampaignRecord) (port.CampaignView, error) {
	balance, err := u.repo.Balance(ctx, rec.Address)
	if err != nil {
		return port.CampaignView{}, err
	}
	return port.CampaignView{
		CampaignRecord: rec,
		Status:         rec.Campaign.Status(),
		EscrowBalance:  balance,
	}, nil
}

func (u *EscrowUseCase) now() int64 {
	return u.nowFn().Unix()
}

// rejected logs a failed transition. Rule violations are expected traffic
// and go to debug; anything else is a warning.
func (u *EscrowUseCase) rejected(ctx context.Context, op string, err error, attrs ...slog.Attr) {
	level := slog.LevelWarn
	if IsRuleViolation(err) {
		level = slog.LevelDebug
	}
	attrs = append(attrs, slog.String("op", op), slog.Any("error", err))
	u.logger.LogAttrs(ctx, level, "transition rejected", attrs...)
}

// IsRuleViolation reports whether err is one of the escrow's business-rule
// errors rather than an infrastructure failure.
func IsRuleViolation(err error) bool {
	for _, target := range ruleViolations {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

var ruleViolations = []error{
	domain.ErrAlreadyExists,
	domain.ErrNotFound,
	domain.ErrCampaignInactive,
	domain.ErrCampaignEnded,
	domain.ErrCampaignNotEnded,
	domain.ErrCampaignStillActive,
	domain.ErrCampaignSuccessful,
	domain.ErrCampaignAlreadyFinalized,
	domain.ErrInvalidDonor,
	domain.ErrDonationMismatch,
	domain.ErrAlreadyRefunded,
	domain.ErrDonationAlreadyExists,
	domain.ErrArithmeticOverflow,
	domain.ErrTransferFailed,
}

// transferFailed wraps ledger rejections in ErrTransferFailed. Any other
// error from the ledger is an infrastructure failure and passes through.
func transferFailed(err error) error {
	for _, target := range ledgerRejections {
		if errors.Is(err, target) {
			return fmt.Errorf("%w: %w", domain.ErrTransferFailed, err)
		}
	}
	return err
}

var ledgerRejections = []error{
	domain.ErrInsufficientFunds,
	domain.ErrInvalidAuthority,
	domain.ErrArithmeticOverflow,
}

func normalizePage(p port.Page) port.Page {
	if p.Limit <= 0 {
		p.Limit = defaultPageLimit
	}
	if p.Limit > maxPageLimit {
		p.Limit = maxPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

var _ port.EscrowUseCase = (*EscrowUseCase)(nil)
