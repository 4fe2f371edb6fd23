// Package memory provides an in-process escrow repository. Transactions
// run one at a time against a private copy of the state that replaces the
// committed state only when the transaction function succeeds.
package memory

import (
	"bytes"
	"context"
	"math"
	"slices"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"

	"crowd-escrow/internal/core/domain"
	"crowd-escrow/internal/core/port"
)

// Store implements port.EscrowRepository in memory.
type Store struct {
	mu      sync.Mutex
	deriver domain.Deriver
	state   *state
	nowFn   func() time.Time
}

// NewStore returns an empty store. The deriver validates derived transfer
// authorizations.
func NewStore(deriver domain.Deriver) *Store {
	return &Store{deriver: deriver, state: newState(), nowFn: time.Now}
}

type state struct {
	campaigns map[common.Address]domain.Campaign
	profiles  map[common.Address]domain.CampaignProfile
	donations map[common.Address]domain.Donation
	balances  map[common.Address]uint64
	journal   []domain.TransferRecord
}

func newState() *state {
	return &state{
		campaigns: map[common.Address]domain.Campaign{},
		profiles:  map[common.Address]domain.CampaignProfile{},
		donations: map[common.Address]domain.Donation{},
		balances:  map[common.Address]uint64{},
	}
}

func (s *state) clone() *state {
	return &state{
		campaigns: cloneMap(s.campaigns),
		profiles:  cloneMap(s.profiles),
		donations: cloneMap(s.donations),
		balances:  cloneMap(s.balances),
		journal:   slices.Clone(s.journal),
	}
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Atomically runs fn against a copy of the state and commits the copy if fn
// returns nil.
func (s *Store) Atomically(ctx context.Context, fn func(ctx context.Context, tx port.EscrowTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	work := s.state.clone()
	if err := fn(ctx, &tx{state: work, deriver: s.deriver, nowFn: s.nowFn}); err != nil {
		return err
	}
	s.state = work
	return nil
}

// GetCampaign returns the committed campaign at addr.
func (s *Store) GetCampaign(_ context.Context, addr common.Address) (domain.CampaignRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.state.campaigns[addr]
	if !ok {
		return domain.CampaignRecord{}, domain.ErrNotFound
	}
	return domain.CampaignRecord{Address: addr, Campaign: c, Profile: s.state.profiles[addr]}, nil
}

// ListCampaigns returns campaigns ordered by id.
func (s *Store) ListCampaigns(_ context.Context, page port.Page) ([]domain.CampaignRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CampaignRecord, 0, len(s.state.campaigns))
	for addr, c := range s.state.campaigns {
		out = append(out, domain.CampaignRecord{Address: addr, Campaign: c, Profile: s.state.profiles[addr]})
	}
	slices.SortFunc(out, func(a, b domain.CampaignRecord) int {
		switch {
		case a.Campaign.ID < b.Campaign.ID:
			return -1
		case a.Campaign.ID > b.Campaign.ID:
			return 1
		default:
			return 0
		}
	})
	if page.Offset >= len(out) {
		return []domain.CampaignRecord{}, nil
	}
	out = out[page.Offset:]
	if page.Limit > 0 && page.Limit < len(out) {
		out = out[:page.Limit]
	}
	return out, nil
}

// GetDonation returns the committed donation at addr.
func (s *Store) GetDonation(_ context.Context, addr common.Address) (domain.Donation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.state.donations[addr]
	if !ok {
		return domain.Donation{}, domain.ErrNotFound
	}
	return d, nil
}

// ListDonations returns the donations of a campaign ordered by donor.
func (s *Store) ListDonations(_ context.Context, campaign common.Address) ([]domain.DonationRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.DonationRecord, 0)
	for addr, d := range s.state.donations {
		if d.Campaign == campaign {
			out = append(out, domain.DonationRecord{Address: addr, Donation: d})
		}
	}
	slices.SortFunc(out, func(a, b domain.DonationRecord) int {
		return bytes.Compare(a.Donation.Donor.Bytes(), b.Donation.Donor.Bytes())
	})
	return out, nil
}

// Balance returns the committed balance of owner.
func (s *Store) Balance(_ context.Context, owner common.Address) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.balances[owner], nil
}

// Transfers returns the newest journal entries touching owner first.
func (s *Store) Transfers(_ context.Context, owner common.Address, limit int) ([]domain.TransferRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.TransferRecord, 0)
	for i := len(s.state.journal) - 1; i >= 0; i-- {
		rec := s.state.journal[i]
		if rec.From != owner && rec.To != owner {
			continue
		}
		out = append(out, rec)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

type tx struct {
	state   *state
	deriver domain.Deriver
	nowFn   func() time.Time
}

func (t *tx) CreateCampaign(_ context.Context, addr common.Address, c domain.Campaign) error {
	if _, ok := t.state.campaigns[addr]; ok {
		return domain.ErrAlreadyExists
	}
	t.state.campaigns[addr] = c
	return nil
}

func (t *tx) GetCampaign(_ context.Context, addr common.Address) (domain.Campaign, error) {
	c, ok := t.state.campaigns[addr]
	if !ok {
		return domain.Campaign{}, domain.ErrNotFound
	}
	return c, nil
}

// UpdateCampaign writes the mutable fields only, like the SQL stores.
func (t *tx) UpdateCampaign(_ context.Context, addr common.Address, c domain.Campaign) error {
	cur, ok := t.state.campaigns[addr]
	if !ok {
		return domain.ErrNotFound
	}
	cur.TotalFunded = c.TotalFunded
	cur.IsActive = c.IsActive
	t.state.campaigns[addr] = cur
	return nil
}

func (t *tx) PutProfile(_ context.Context, addr common.Address, p domain.CampaignProfile) error {
	if _, ok := t.state.campaigns[addr]; !ok {
		return domain.ErrNotFound
	}
	t.state.profiles[addr] = p
	return nil
}

func (t *tx) CreateDonation(_ context.Context, addr common.Address, d domain.Donation) error {
	if _, ok := t.state.donations[addr]; ok {
		return domain.ErrAlreadyExists
	}
	t.state.donations[addr] = d
	return nil
}

func (t *tx) GetDonation(_ context.Context, addr common.Address) (domain.Donation, error) {
	d, ok := t.state.donations[addr]
	if !ok {
		return domain.Donation{}, domain.ErrNotFound
	}
	return d, nil
}

func (t *tx) UpdateDonation(_ context.Context, addr common.Address, d domain.Donation) error {
	cur, ok := t.state.donations[addr]
	if !ok {
		return domain.ErrNotFound
	}
	cur.Refunded = d.Refunded
	t.state.donations[addr] = cur
	return nil
}

func (t *tx) Transfer(_ context.Context, tr domain.Transfer) error {
	if err := t.deriver.Authorize(tr.Auth, tr.From); err != nil {
		return err
	}
	from := t.state.balances[tr.From]
	if from < tr.Amount {
		return domain.ErrInsufficientFunds
	}
	t.state.balances[tr.From] = from - tr.Amount
	to := t.state.balances[tr.To]
	if to > math.MaxUint64-tr.Amount {
		return domain.ErrArithmeticOverflow
	}
	t.state.balances[tr.To] = to + tr.Amount
	t.journal(domain.TransferKindTransfer, tr.From, tr.To, tr.Amount)
	return nil
}

func (t *tx) Mint(_ context.Context, owner common.Address, amount uint64) error {
	bal := t.state.balances[owner]
	if bal > math.MaxUint64-amount {
		return domain.ErrArithmeticOverflow
	}
	t.state.balances[owner] = bal + amount
	t.journal(domain.TransferKindMint, common.Address{}, owner, amount)
	return nil
}

func (t *tx) Balance(_ context.Context, owner common.Address) (uint64, error) {
	return t.state.balances[owner], nil
}

func (t *tx) journal(kind domain.TransferKind, from, to common.Address, amount uint64) {
	t.state.journal = append(t.state.journal, domain.TransferRecord{
		ID:        uuid.New(),
		Kind:      kind,
		From:      from,
		To:        to,
		Amount:    amount,
		CreatedAt: t.nowFn().UTC(),
	})
}

var _ port.EscrowRepository = (*Store)(nil)
