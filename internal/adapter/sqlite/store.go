// Package sqlite provides a SQLite-backed escrow repository for single node
// deployments.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"crowd-escrow/internal/core/domain"
	"crowd-escrow/internal/core/port"
	"crowd-escrow/internal/db"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store persists escrow state in SQLite. A single connection serializes
// every transaction.
type Store struct {
	sqlDB   *sql.DB
	deriver domain.Deriver
}

// Open opens a SQLite store at path and applies embedded migrations.
func Open(path string, deriver domain.Deriver) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := "file:" + filepath.Clean(path) +
		"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := db.MigrateSQLite(sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, deriver: deriver}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Atomically runs fn inside one SQLite transaction.
func (s *Store) Atomically(ctx context.Context, fn func(ctx context.Context, tx port.EscrowTx) error) (err error) {
	if err = ctx.Err(); err != nil {
		return err
	}
	sqlTx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = sqlTx.Rollback()
		} else {
			err = sqlTx.Commit()
		}
	}()
	return fn(ctx, &escrowTx{q: sqlTx, deriver: s.deriver})
}

// GetCampaign returns a campaign with its profile.
func (s *Store) GetCampaign(ctx context.Context, addr common.Address) (domain.CampaignRecord, error) {
	row := s.sqlDB.QueryRowContext(ctx, `SELECT `+campaignColumns+`,
		   COALESCE(p.title, ''), COALESCE(p.description, ''), COALESCE(p.image_url, '')
		 FROM campaigns c
		 LEFT JOIN campaign_profiles p ON p.campaign_address = c.address
		 WHERE c.address = ?`, addr.Bytes())
	rec, err := scanCampaignRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.CampaignRecord{}, domain.ErrNotFound
	}
	return rec, err
}

// ListCampaigns returns campaigns ordered by id.
func (s *Store) ListCampaigns(ctx context.Context, page port.Page) ([]domain.CampaignRecord, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT `+campaignColumns+`,
		   COALESCE(p.title, ''), COALESCE(p.description, ''), COALESCE(p.image_url, '')
		 FROM campaigns c
		 LEFT JOIN campaign_profiles p ON p.campaign_address = c.address
		 ORDER BY c.id
		 LIMIT ? OFFSET ?`, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	defer rows.Close()

	var recs []domain.CampaignRecord
	for rows.Next() {
		rec, err := scanCampaignRecord(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// GetDonation returns a donation by address.
func (s *Store) GetDonation(ctx context.Context, addr common.Address) (domain.Donation, error) {
	return getDonation(ctx, s.sqlDB, addr)
}

// ListDonations returns the donations of a campaign ordered by donor.
func (s *Store) ListDonations(ctx context.Context, campaign common.Address) ([]domain.DonationRecord, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT address, `+donationColumns+`
		 FROM donations
		 WHERE campaign_address = ?
		 ORDER BY donor`, campaign.Bytes())
	if err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}
	defer rows.Close()

	var recs []domain.DonationRecord
	for rows.Next() {
		var (
			addr []byte
			raw  rawDonation
		)
		if err := rows.Scan(append([]any{&addr}, raw.dest()...)...); err != nil {
			return nil, err
		}
		d, err := raw.decode()
		if err != nil {
			return nil, err
		}
		recs = append(recs, domain.DonationRecord{Address: common.BytesToAddress(addr), Donation: d})
	}
	return recs, rows.Err()
}

// Balance returns the balance of owner, zero for unknown holdings.
func (s *Store) Balance(ctx context.Context, owner common.Address) (uint64, error) {
	return balance(ctx, s.sqlDB, owner)
}

// Transfers returns the newest journal entries touching owner first.
func (s *Store) Transfers(ctx context.Context, owner common.Address, limit int) ([]domain.TransferRecord, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT id, kind, from_owner, to_owner, amount, created_at
		 FROM token_transfers
		 WHERE from_owner = ? OR to_owner = ?
		 ORDER BY seq DESC
		 LIMIT ?`, owner.Bytes(), owner.Bytes(), limit)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()

	var recs []domain.TransferRecord
	for rows.Next() {
		var (
			id, kind, amount string
			from, to         []byte
			createdAt        int64
		)
		if err := rows.Scan(&id, &kind, &from, &to, &amount, &createdAt); err != nil {
			return nil, err
		}
		rec := domain.TransferRecord{
			Kind:      domain.TransferKind(kind),
			From:      common.BytesToAddress(from),
			To:        common.BytesToAddress(to),
			CreatedAt: fromMillis(createdAt),
		}
		if rec.ID, err = uuid.Parse(id); err != nil {
			return nil, err
		}
		if rec.Amount, err = parseAmount(amount); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

type escrowTx struct {
	q       querier
	deriver domain.Deriver
}

func (t *escrowTx) CreateCampaign(ctx context.Context, addr common.Address, c domain.Campaign) error {
	now := toMillis(time.Now())
	_, err := t.q.ExecContext(ctx, `INSERT INTO campaigns (
		   address, id, creator, goal_amount, end_time, total_funded,
		   is_active, authority_nonce, created_at, updated_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		addr.Bytes(), formatAmount(c.ID), c.Creator.Bytes(), formatAmount(c.GoalAmount), c.EndTime,
		formatAmount(c.TotalFunded), c.IsActive, int64(c.AuthorityNonce), now, now)
	return translate("create campaign", err)
}

func (t *escrowTx) GetCampaign(ctx context.Context, addr common.Address) (domain.Campaign, error) {
	var raw rawCampaign
	err := t.q.QueryRowContext(ctx, `SELECT `+campaignColumns+` FROM campaigns c WHERE c.address = ?`, addr.Bytes()).
		Scan(raw.dest()...)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Campaign{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("get campaign: %w", err)
	}
	_, c, err := raw.decode()
	return c, err
}

func (t *escrowTx) UpdateCampaign(ctx context.Context, addr common.Address, c domain.Campaign) error {
	res, err := t.q.ExecContext(ctx, `UPDATE campaigns
		 SET total_funded = ?, is_active = ?, updated_at = ?
		 WHERE address = ?`,
		formatAmount(c.TotalFunded), c.IsActive, toMillis(time.Now()), addr.Bytes())
	if err != nil {
		return translate("update campaign", err)
	}
	return requireRow(res)
}

func (t *escrowTx) PutProfile(ctx context.Context, addr common.Address, p domain.CampaignProfile) error {
	_, err := t.q.ExecContext(ctx, `INSERT INTO campaign_profiles (campaign_address, title, description, image_url)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (campaign_address) DO UPDATE
		 SET title = excluded.title, description = excluded.description, image_url = excluded.image_url`,
		addr.Bytes(), p.Title, p.Description, p.ImageURL)
	return translate("put profile", err)
}

func (t *escrowTx) CreateDonation(ctx context.Context, addr common.Address, d domain.Donation) error {
	now := toMillis(time.Now())
	_, err := t.q.ExecContext(ctx, `INSERT INTO donations (
		   address, campaign_address, donor, amount, refunded, address_nonce, created_at, updated_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		addr.Bytes(), d.Campaign.Bytes(), d.Donor.Bytes(), formatAmount(d.Amount), d.Refunded,
		int64(d.AddressNonce), now, now)
	return translate("create donation", err)
}

func (t *escrowTx) GetDonation(ctx context.Context, addr common.Address) (domain.Donation, error) {
	return getDonation(ctx, t.q, addr)
}

func (t *escrowTx) UpdateDonation(ctx context.Context, addr common.Address, d domain.Donation) error {
	res, err := t.q.ExecContext(ctx, `UPDATE donations SET refunded = ?, updated_at = ? WHERE address = ?`,
		d.Refunded, toMillis(time.Now()), addr.Bytes())
	if err != nil {
		return translate("update donation", err)
	}
	return requireRow(res)
}

func (t *escrowTx) Transfer(ctx context.Context, tr domain.Transfer) error {
	if err := t.deriver.Authorize(tr.Auth, tr.From); err != nil {
		return err
	}
	from, err := balance(ctx, t.q, tr.From)
	if err != nil {
		return err
	}
	if from < tr.Amount {
		return domain.ErrInsufficientFunds
	}
	if err = t.setBalance(ctx, tr.From, from-tr.Amount); err != nil {
		return err
	}
	to, err := balance(ctx, t.q, tr.To)
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
	bal, err := balance(ctx, t.q, owner)
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
	return balance(ctx, t.q, owner)
}

func (t *escrowTx) setBalance(ctx context.Context, owner common.Address, amount uint64) error {
	_, err := t.q.ExecContext(ctx, `INSERT INTO token_holdings (owner, balance, updated_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT (owner) DO UPDATE SET balance = excluded.balance, updated_at = excluded.updated_at`,
		owner.Bytes(), formatAmount(amount), toMillis(time.Now()))
	return translate("set balance", err)
}

func (t *escrowTx) journal(ctx context.Context, kind domain.TransferKind, from, to common.Address, amount uint64) error {
	_, err := t.q.ExecContext(ctx, `INSERT INTO token_transfers (id, kind, from_owner, to_owner, amount, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), string(kind), from.Bytes(), to.Bytes(), formatAmount(amount), toMillis(time.Now()))
	return translate("append transfer", err)
}

const campaignColumns = `c.address, c.id, c.creator, c.goal_amount, c.end_time,
		   c.total_funded, c.is_active, c.authority_nonce`

type rawCampaign struct {
	address, creator []byte
	id, goal, funded string
	endTime          int64
	isActive         bool
	authorityNonce   int64
}

func (r *rawCampaign) dest() []any {
	return []any{&r.address, &r.id, &r.creator, &r.goal, &r.endTime, &r.funded, &r.isActive, &r.authorityNonce}
}

func (r *rawCampaign) decode() (common.Address, domain.Campaign, error) {
	id, err := parseAmount(r.id)
	if err != nil {
		return common.Address{}, domain.Campaign{}, err
	}
	goal, err := parseAmount(r.goal)
	if err != nil {
		return common.Address{}, domain.Campaign{}, err
	}
	funded, err := parseAmount(r.funded)
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCampaignRecord(row rowScanner) (domain.CampaignRecord, error) {
	var (
		raw rawCampaign
		rec domain.CampaignRecord
	)
	if err := row.Scan(append(raw.dest(), &rec.Profile.Title, &rec.Profile.Description, &rec.Profile.ImageURL)...); err != nil {
		return domain.CampaignRecord{}, err
	}
	var err error
	rec.Address, rec.Campaign, err = raw.decode()
	return rec, err
}

const donationColumns = `donor, campaign_address, amount, refunded, address_nonce`

type rawDonation struct {
	donor, campaign []byte
	amount          string
	refunded        bool
	nonce           int64
}

func (r *rawDonation) dest() []any {
	return []any{&r.donor, &r.campaign, &r.amount, &r.refunded, &r.nonce}
}

func (r *rawDonation) decode() (domain.Donation, error) {
	amount, err := parseAmount(r.amount)
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

func getDonation(ctx context.Context, q querier, addr common.Address) (domain.Donation, error) {
	var raw rawDonation
	err := q.QueryRowContext(ctx, `SELECT `+donationColumns+` FROM donations WHERE address = ?`, addr.Bytes()).
		Scan(raw.dest()...)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Donation{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Donation{}, fmt.Errorf("get donation: %w", err)
	}
	return raw.decode()
}

func balance(ctx context.Context, q querier, owner common.Address) (uint64, error) {
	var raw string
	err := q.QueryRowContext(ctx, `SELECT balance FROM token_holdings WHERE owner = ?`, owner.Bytes()).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get balance: %w", err)
	}
	return parseAmount(raw)
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// formatAmount pads to 20 digits so text ordering matches numeric ordering.
func formatAmount(v uint64) string {
	return fmt.Sprintf("%020d", v)
}

func parseAmount(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("decode amount %q: %w", s, err)
	}
	return v, nil
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

func translate(op string, err error) error {
	if err == nil {
		return nil
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return fmt.Errorf("%s: %w", op, domain.ErrAlreadyExists)
		case sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY:
			return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

var _ port.EscrowRepository = (*Store)(nil)
