package postgres

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"crowd-escrow/internal/core/domain"
	"crowd-escrow/internal/core/port"
)

// defaultAttempts bounds how often a transaction is re-run after a
// serialization failure.
const defaultAttempts = 10

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// EscrowRepository implements port.EscrowRepository using pgxpool for
// PostgreSQL. Transactions run at Serializable isolation and lock the rows
// they read, so concurrent transitions on the same campaign queue up
// instead of losing updates.
type EscrowRepository struct {
	pool     *pgxpool.Pool
	deriver  domain.Deriver
	attempts int
}

// NewEscrowRepository returns a new repository instance.
func NewEscrowRepository(pool *pgxpool.Pool, deriver domain.Deriver) *EscrowRepository {
	return &EscrowRepository{pool: pool, deriver: deriver, attempts: defaultAttempts}
}

// Atomically runs fn in a Serializable transaction, re-running it when
// PostgreSQL reports a serialization failure or deadlock.
func (r *EscrowRepository) Atomically(ctx context.Context, fn func(ctx context.Context, tx port.EscrowTx) error) error {
	var err error
	for attempt := 1; attempt <= r.attempts; attempt++ {
		err = r.runTx(ctx, fn)
		if !isRetryable(err) {
			return err
		}
	}
	return err
}

func (r *EscrowRepository) runTx(ctx context.Context, fn func(ctx context.Context, tx port.EscrowTx) error) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()
	return fn(ctx, &escrowTx{q: tx, deriver: r.deriver})
}

// GetCampaign returns a campaign with its profile.
func (r *EscrowRepository) GetCampaign(ctx context.Context, addr common.Address) (domain.CampaignRecord, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+campaignColumns+`,
            COALESCE(p.title, ''), COALESCE(p.description, ''), COALESCE(p.image_url, '')
        FROM campaigns c
        LEFT JOIN campaign_profiles p ON p.campaign_address = c.address
        WHERE c.address = $1`, addr.Bytes())
	var (
		raw rawCampaign
		rec domain.CampaignRecord
	)
	err := row.Scan(append(raw.dest(), &rec.Profile.Title, &rec.Profile.Description, &rec.Profile.ImageURL)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.CampaignRecord{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.CampaignRecord{}, err
	}
	rec.Address, rec.Campaign, err = raw.decode()
	return rec, err
}

// ListCampaigns returns campaigns ordered by id.
func (r *EscrowRepository) ListCampaigns(ctx context.Context, page port.Page) ([]domain.CampaignRecord, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+`,
            COALESCE(p.title, ''), COALESCE(p.description, ''), COALESCE(p.image_url, '')
        FROM campaigns c
        LEFT JOIN campaign_profiles p ON p.campaign_address = c.address
        ORDER BY c.id
        LIMIT $1 OFFSET $2`, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CampaignRecord, error) {
		var (
			raw rawCampaign
			rec domain.CampaignRecord
		)
		if err := row.Scan(append(raw.dest(), &rec.Profile.Title, &rec.Profile.Description, &rec.Profile.ImageURL)...); err != nil {
			return rec, err
		}
		var err error
		rec.Address, rec.Campaign, err = raw.decode()
		return rec, err
	})
}

// GetDonation returns a donation by address.
func (r *EscrowRepository) GetDonation(ctx context.Context, addr common.Address) (domain.Donation, error) {
	return getDonation(ctx, r.pool, addr, false)
}

// ListDonations returns the donations of a campaign ordered by donor.
func (r *EscrowRepository) ListDonations(ctx context.Context, campaign common.Address) ([]domain.DonationRecord, error) {
	rows, err := r.pool.Query(ctx, `SELECT address, `+donationColumns+`
        FROM donations
        WHERE campaign_address = $1
        ORDER BY donor`, campaign.Bytes())
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DonationRecord, error) {
		var (
			addr []byte
			raw  rawDonation
		)
		if err := row.Scan(append([]any{&addr}, raw.dest()...)...); err != nil {
			return domain.DonationRecord{}, err
		}
		d, err := raw.decode()
		return domain.DonationRecord{Address: common.BytesToAddress(addr), Donation: d}, err
	})
}

// Balance returns the balance of owner, zero for unknown holdings.
func (r *EscrowRepository) Balance(ctx context.Context, owner common.Address) (uint64, error) {
	return balance(ctx, r.pool, owner, false)
}

// Transfers returns the newest journal entries touching owner first.
func (r *EscrowRepository) Transfers(ctx context.Context, owner common.Address, limit int) ([]domain.TransferRecord, error) {
	rows, err := r.pool.Query(ctx, `SELECT id::text, kind, from_owner, to_owner, amount::text, created_at
        FROM token_transfers
        WHERE from_owner = $1 OR to_owner = $1
        ORDER BY seq DESC
        LIMIT $2`, owner.Bytes(), limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.TransferRecord, error) {
		var (
			rec            domain.TransferRecord
			id, kind, amt  string
			fromRaw, toRaw []byte
		)
		if err := row.Scan(&id, &kind, &fromRaw, &toRaw, &amt, &rec.CreatedAt); err != nil {
			return rec, err
		}
		var err error
		if rec.ID, err = uuid.Parse(id); err != nil {
			return rec, err
		}
		if rec.Amount, err = parseNumeric(amt); err != nil {
			return rec, err
		}
		rec.Kind = domain.TransferKind(kind)
		rec.From = common.BytesToAddress(fromRaw)
		rec.To = common.BytesToAddress(toRaw)
		return rec, nil
	})
}

// escrowTx implements port.EscrowTx on top of a pgx transaction.
type escrowTx struct {
	q       querier
	deriver domain.Deriver
}

func (t *escrowTx) CreateCampaign(ctx context.Context, addr common.Address, c domain.Campaign) error {
	_, err := t.q.Exec(ctx, `INSERT INTO campaigns
    (address, id, creator, goal_amount, end_time, total_funded, is_active, authority_nonce)
VALUES ($1, $2::text::numeric, $3, $4::text::numeric, $5, $6::text::numeric, $7, $8)`,
		addr.Bytes(), numeric(c.ID), c.Creator.Bytes(), numeric(c.GoalAmount), c.EndTime,
		numeric(c.TotalFunded), c.IsActive, int16(c.AuthorityNonce))
	return translate(err)
}

// GetCampaign locks the campaign row until the transaction ends.
func (t *escrowTx) GetCampaign(ctx context.Context, addr common.Address) (domain.Campaign, error) {
	var raw rawCampaign
	err := t.q.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns c WHERE c.address = $1 FOR UPDATE`, addr.Bytes()).
		Scan(raw.dest()...)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Campaign{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Campaign{}, err
	}
	_, c, err := raw.decode()
	return c, err
}

// UpdateCampaign writes the mutable campaign fields. Creator, id, goal,
// end time and nonce are fixed at creation.
func (t *escrowTx) UpdateCampaign(ctx context.Context, addr common.Address, c domain.Campaign) error {
	tag, err := t.q.Exec(ctx, `UPDATE campaigns
SET total_funded = $2::text::numeric, is_active = $3, updated_at = now()
WHERE address = $1`, addr.Bytes(), numeric(c.TotalFunded), c.IsActive)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (t *escrowTx) PutProfile(ctx context.Context, addr common.Address, p domain.CampaignProfile) error {
	_, err := t.q.Exec(ctx, `INSERT INTO campaign_profiles (campaign_address, title, description, image_url)
VALUES ($1, $2, $3, $4)
ON CONFLICT (campaign_address) DO UPDATE
SET title = EXCLUDED.title, description = EXCLUDED.description, image_url = EXCLUDED.image_url`,
		addr.Bytes(), p.Title, p.Description, p.ImageURL)
	return translate(err)
}

func (t *escrowTx) CreateDonation(ctx context.Context, addr common.Address, d domain.Donation) error {
	_, err := t.q.Exec(ctx, `INSERT INTO donations
    (address, campaign_address, donor, amount, refunded, address_nonce)
VALUES ($1, $2, $3, $4::text::numeric, $5, $6)`,
		addr.Bytes(), d.Campaign.Bytes(), d.Donor.Bytes(), numeric(d.Amount), d.Refunded, int16(d.AddressNonce))
	return translate(err)
}

// GetDonation locks the donation row until the transaction ends.
func (t *escrowTx) GetDonation(ctx context.Context, addr common.Address) (domain.Donation, error) {
	return getDonation(ctx, t.q, addr, true)
}

// UpdateDonation writes the refunded flag, the only mutable field.
func (t *escrowTx) UpdateDonation(ctx context.Context, addr common.Address, d domain.Donation) error {
	tag, err := t.q.Exec(ctx, `UPDATE donations SET refunded = $2, updated_at = now() WHERE address = $1`,
		addr.Bytes(), d.Refunded)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (t *escrowTx) Transfer(ctx context.Context, tr domain.Transfer) error {
	if err := t.deriver.Authorize(tr.Auth, tr.From); err != nil {
		return err
	}
	from, err := balance(ctx, t.q, tr.From, true)
	if err != nil {
		return err
	}
	if from < tr.Amount {
		return domain.ErrInsufficientFunds
	}
	if err = t.setBalance(ctx, tr.From, from-tr.Amount); err != nil {
		return err
	}
	to, err := balance(ctx, t.q, tr.To, true)
	if err != nil {
		return err
	}
	if to > math.MaxUint64-tr.Amount {
		return domain.ErrArithmeticOverflow
	}
	if err = t.setBalance(ctx, tr.To, to+tr.Amount); err != nil {
		return err
	}
	return t.journal(ctx, domain.TransferKindTransfer, tr.From, tr.To, tr.Amount)
}

func (t *escrowTx) Mint(ctx context.Context, owner common.Address, amount uint64) error {
	bal, err := balance(ctx, t.q, owner, true)
	if err != nil {
		return err
	}
	if bal > math.MaxUint64-amount {
		return domain.ErrArithmeticOverflow
	}
	if err = t.setBalance(ctx, owner, bal+amount); err != nil {
		return err
	}
	return t.journal(ctx, domain.TransferKindMint, common.Address{}, owner, amount)
}

func (t *escrowTx) Balance(ctx context.Context, owner common.Address) (uint64, error) {
	return balance(ctx, t.q, owner, false)
}

func (t *escrowTx) setBalance(ctx context.Context, owner common.Address, amount uint64) error {
	_, err := t.q.Exec(ctx, `INSERT INTO token_holdings (owner, balance)
VALUES ($1, $2::text::numeric)
ON CONFLICT (owner) DO UPDATE SET balance = EXCLUDED.balance, updated_at = now()`,
		owner.Bytes(), numeric(amount))
	return translate(err)
}

func (t *escrowTx) journal(ctx context.Context, kind domain.TransferKind, from, to common.Address, amount uint64) error {
	_, err := t.q.Exec(ctx, `INSERT INTO token_transfers (id, kind, from_owner, to_owner, amount, created_at)
VALUES ($1::text::uuid, $2, $3, $4, $5::text::numeric, now())`,
		uuid.NewString(), string(kind), from.Bytes(), to.Bytes(), numeric(amount))
	return translate(err)
}

const campaignColumns = `c.address, c.id::text, c.creator, c.goal_amount::text, c.end_time,
            c.total_funded::text, c.is_active, c.authority_nonce`

type rawCampaign struct {
	address, creator []byte
	id, goal, funded string
	endTime          int64
	isActive         bool
	authorityNonce   int16
}

func (r *rawCampaign) dest() []any {
	return []any{&r.address, &r.id, &r.creator, &r.goal, &r.endTime, &r.funded, &r.isActive, &r.authorityNonce}
}

func (r *rawCampaign) decode() (common.Address, domain.Campaign, error) {
	id, err := parseNumeric(r.id)
	if err != nil {
		return common.Address{}, domain.Campaign{}, err
	}
	goal, err := parseNumeric(r.goal)
	if err != nil {
		return common.Address{}, domain.Campaign{}, err
	}
	funded, err := parseNumeric(r.funded)
	if err != nil {
		return common.Address{}, domain.Campaign{}, err
	}
	return common.BytesToAddress(r.address), domain.Campaign{
		Creator:        common.BytesToAddress(r.creator),
		ID:             id,
		GoalAmount:     goal,
		EndTime:        r.endTime,
		TotalFunded:    funded,
		IsActive:       r.isActive,
		AuthorityNonce: uint8(r.authorityNonce),
	}, nil
}

const donationColumns = `donor, campaign_address, amount::text, refunded, address_nonce`

type rawDonation struct {
	donor, campaign []byte
	amount          string
	refunded        bool
	nonce           int16
}

func (r *rawDonation) dest() []any {
	return []any{&r.donor, &r.campaign, &r.amount, &r.refunded, &r.nonce}
}

func (r *rawDonation) decode() (domain.Donation, error) {
	amount, err := parseNumeric(r.amount)
	if err != nil {
		return domain.Donation{}, err
	}
	return domain.Donation{
		Donor:        common.BytesToAddress(r.donor),
		Campaign:     common.BytesToAddress(r.campaign),
		Amount:       amount,
		Refunded:     r.refunded,
		AddressNonce: uint8(r.nonce),
	}, nil
}

func getDonation(ctx context.Context, q querier, addr common.Address, lock bool) (domain.Donation, error) {
	query := `SELECT ` + donationColumns + ` FROM donations WHERE address = $1`
	if lock {
		query += ` FOR UPDATE`
	}
	var raw rawDonation
	err := q.QueryRow(ctx, query, addr.Bytes()).Scan(raw.dest()...)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Donation{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Donation{}, err
	}
	return raw.decode()
}

func balance(ctx context.Context, q querier, owner common.Address, lock bool) (uint64, error) {
	query := `SELECT balance::text FROM token_holdings WHERE owner = $1`
	if lock {
		query += ` FOR UPDATE`
	}
	var raw string
	err := q.QueryRow(ctx, query, owner.Bytes()).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return parseNumeric(raw)
}

func numeric(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func parseNumeric(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("decode numeric %q: %w", s, err)
	}
	return v, nil
}

// PostgreSQL error codes the repository translates.
const (
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

func translate(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case codeUniqueViolation:
		return fmt.Errorf("%w: %s", domain.ErrAlreadyExists, pgErr.ConstraintName)
	case codeForeignKeyViolation:
		return fmt.Errorf("%w: %s", domain.ErrNotFound, pgErr.ConstraintName)
	default:
		return err
	}
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == codeSerializationFailure || pgErr.Code == codeDeadlockDetected
}

var _ port.EscrowRepository = (*EscrowRepository)(nil)
