package httpadapter

import (
	"bytes"
	"context"
	"crypto/ecdsa"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crowd-escrow/internal/core/domain"
	"crowd-escrow/internal/core/port"
	"crowd-escrow/internal/core/port/mocks"
)

var (
	creator = common.HexToAddress("0xc0ffee0000000000000000000000000000000001")
	donor   = common.HexToAddress("0xd0d0000000000000000000000000000000000002")
	fixedAt = time.Unix(1_700_000_000, 0)
)

func newTestHandler(t *testing.T, svc port.EscrowUseCase, opts ...Option) http.Handler {
	t.Helper()
	opts = append([]Option{WithSignatures(false, 0), WithClock(func() time.Time { return fixedAt })}, opts...)
	return NewHandler(svc, slog.New(slog.DiscardHandler), opts...).Router()
}

func do(t *testing.T, h http.Handler, method, path string, body any, signer *common.Address) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if signer != nil {
		req.Header.Set(HeaderSigner, signer.Hex())
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorResp {
	t.Helper()
	var resp errorResp
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func sampleCampaign(id uint64) port.CampaignView {
	return port.CampaignView{
		CampaignRecord: domain.CampaignRecord{
			Address: common.BigToAddress(common.Big1),
			Campaign: domain.Campaign{
				Creator:    creator,
				ID:         id,
				GoalAmount: 1000,
				EndTime:    fixedAt.Unix() + 100,
				IsActive:   true,
			},
			Profile: domain.CampaignProfile{Title: "Solar roof"},
		},
		Status: domain.CampaignStatusActive,
	}
}

func TestInitializeCampaign(t *testing.T) {
	svc := mocks.NewMockEscrowUseCase(t)
	view := sampleCampaign(7)
	svc.EXPECT().
		InitializeCampaign(mock.Anything, creator, port.InitializeCampaignReq{
			CampaignID: 7,
			GoalAmount: 1000,
			Duration:   100,
			Profile:    domain.CampaignProfile{Title: "Solar roof"},
		}).
		Return(&view, nil)

	rec := do(t, newTestHandler(t, svc), http.MethodPost, "/api/v1/campaigns", map[string]any{
		"campaign_id": "7",
		"goal_amount": "1000",
		"duration":    100,
		"title":       "Solar roof",
	}, &creator)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp campaignResp
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, uint64(7), resp.ID)
	assert.Equal(t, creator.Hex(), resp.Creator)
	assert.Equal(t, "active", resp.Status)
	assert.Equal(t, "Solar roof", resp.Title)
}

func TestInitializeCampaignRequiresSigner(t *testing.T) {
	svc := mocks.NewMockEscrowUseCase(t)

	rec := do(t, newTestHandler(t, svc), http.MethodPost, "/api/v1/campaigns", map[string]any{"campaign_id": "1"}, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "missing_signer", decodeError(t, rec).Code)
}

func TestAmountsAreDecimalStrings(t *testing.T) {
	svc := mocks.NewMockEscrowUseCase(t)
	svc.EXPECT().Balance(mock.Anything, donor).Return(^uint64(0), nil)

	rec := do(t, newTestHandler(t, svc), http.MethodGet, "/api/v1/holdings/"+donor.Hex(), nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"balance":"18446744073709551615"`)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", fmt.Errorf("campaign 7: %w", domain.ErrNotFound), http.StatusNotFound, "not_found"},
		{"ended", domain.ErrCampaignEnded, http.StatusConflict, "campaign_ended"},
		{"inactive", domain.ErrCampaignInactive, http.StatusConflict, "campaign_inactive"},
		{"duplicate", domain.ErrDonationAlreadyExists, http.StatusConflict, "donation_already_exists"},
		{
			"insufficient funds",
			fmt.Errorf("%w: %w", domain.ErrTransferFailed, domain.ErrInsufficientFunds),
			http.StatusUnprocessableEntity, "insufficient_funds",
		},
		{
			"bad authority",
			fmt.Errorf("%w: %w", domain.ErrTransferFailed, domain.ErrInvalidAuthority),
			http.StatusUnprocessableEntity, "transfer_failed",
		},
		{"infrastructure", context.DeadlineExceeded, http.StatusInternalServerError, "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockEscrowUseCase(t)
			svc.EXPECT().Donate(mock.Anything, donor, uint64(7), uint64(50)).Return(nil, tt.err)

			rec := do(t, newTestHandler(t, svc), http.MethodPost, "/api/v1/campaigns/7/donations",
				map[string]any{"amount": "50"}, &donor)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, decodeError(t, rec).Code)
		})
	}
}

func TestRefundUsesCaller(t *testing.T) {
	svc := mocks.NewMockEscrowUseCase(t)
	svc.EXPECT().Refund(mock.Anything, donor, uint64(3)).Return(&port.DonationView{
		DonationRecord: domain.DonationRecord{
			Donation: domain.Donation{Donor: donor, Amount: 40, Refunded: true},
		},
	}, nil)

	rec := do(t, newTestHandler(t, svc), http.MethodPost, "/api/v1/campaigns/3/refund", nil, &donor)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp donationResp
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Refunded)
	assert.Equal(t, uint64(40), resp.Amount)
}

func TestFinalizeCampaign(t *testing.T) {
	svc := mocks.NewMockEscrowUseCase(t)
	view := sampleCampaign(9)
	view.Campaign.IsActive = false
	view.Campaign.TotalFunded = 1200
	view.Status = domain.CampaignStatusSuccessful
	svc.EXPECT().FinalizeCampaign(mock.Anything, uint64(9)).Return(&port.FinalizeResp{Campaign: view, Payout: 1200}, nil)

	rec := do(t, newTestHandler(t, svc), http.MethodPost, "/api/v1/campaigns/9/finalize", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp finalizeResp
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, uint64(1200), resp.Payout)
	assert.Equal(t, "successful", resp.Campaign.Status)
}

func TestListCampaignsPaging(t *testing.T) {
	svc := mocks.NewMockEscrowUseCase(t)
	svc.EXPECT().ListCampaigns(mock.Anything, port.Page{Limit: 2, Offset: 4}).
		Return([]port.CampaignView{sampleCampaign(5), sampleCampaign(6)}, nil)
	h := newTestHandler(t, svc)

	rec := do(t, h, http.MethodGet, "/api/v1/campaigns?limit=2&offset=4", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp []campaignResp
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 2)
	assert.Equal(t, uint64(6), resp[1].ID)

	rec = do(t, h, http.MethodGet, "/api/v1/campaigns?limit=many", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInvalidPathParams(t *testing.T) {
	svc := mocks.NewMockEscrowUseCase(t)
	h := newTestHandler(t, svc)

	rec := do(t, h, http.MethodGet, "/api/v1/campaigns/-1", nil, nil)
	assert.Equal(t, "invalid_campaign_id", decodeError(t, rec).Code)

	rec = do(t, h, http.MethodGet, "/api/v1/campaigns/1/donations/nobody", nil, nil)
	assert.Equal(t, "invalid_address", decodeError(t, rec).Code)
}

func TestTransfers(t *testing.T) {
	svc := mocks.NewMockEscrowUseCase(t)
	svc.EXPECT().Transfers(mock.Anything, donor, 10).Return([]domain.TransferRecord{
		{Kind: domain.TransferKindMint, To: donor, Amount: 500, CreatedAt: fixedAt},
	}, nil)

	rec := do(t, newTestHandler(t, svc), http.MethodGet, "/api/v1/holdings/"+donor.Hex()+"/transfers?limit=10", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp []transferResp
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "mint", resp[0].Kind)
	assert.Equal(t, uint64(500), resp[0].Amount)
}

func TestFaucetOnlyWhenEnabled(t *testing.T) {
	body := map[string]any{"owner": donor.Hex(), "amount": "500"}

	svc := mocks.NewMockEscrowUseCase(t)
	rec := do(t, newTestHandler(t, svc), http.MethodPost, "/api/v1/faucet", body, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	svc = mocks.NewMockEscrowUseCase(t)
	svc.EXPECT().Mint(mock.Anything, donor, uint64(500)).Return(500, nil)
	rec = do(t, newTestHandler(t, svc, WithFaucet(true)), http.MethodPost, "/api/v1/faucet", body, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestHandler(t, mocks.NewMockEscrowUseCase(t)), http.MethodGet, "/healthz", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func signedRequest(t *testing.T, method, path string, body []byte, ts int64, sign func([]byte) []byte, signer common.Address) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set(HeaderSigner, signer.Hex())
	req.Header.Set(HeaderTimestamp, strconv.FormatInt(ts, 10))
	req.Header.Set(HeaderSignature, hexutil.Encode(sign(SigningHash(method, path, ts, body))))
	return req
}

func TestSignedRequests(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	signer := crypto.PubkeyToAddress(key.PublicKey)
	other, err := crypto.GenerateKey()
	require.NoError(t, err)

	signWith := func(k *ecdsa.PrivateKey) func([]byte) []byte {
		return func(digest []byte) []byte {
			sig, err := crypto.Sign(digest, k)
			require.NoError(t, err)
			return sig
		}
	}
	walletStyle := func(digest []byte) []byte {
		sig := signWith(key)(digest)
		sig[crypto.RecoveryIDOffset] += 27
		return sig
	}

	path := "/api/v1/campaigns/7/donations"
	body := []byte(`{"amount":"50"}`)

	tests := []struct {
		name   string
		ts     int64
		sign   func([]byte) []byte
		status int
		code   string
	}{
		{"valid", fixedAt.Unix(), signWith(key), http.StatusCreated, ""},
		{"wallet recovery id", fixedAt.Unix() - 30, walletStyle, http.StatusCreated, ""},
		{"other key", fixedAt.Unix(), signWith(other), http.StatusUnauthorized, "invalid_signature"},
		{"stale", fixedAt.Unix() - 3600, signWith(key), http.StatusUnauthorized, "stale_timestamp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockEscrowUseCase(t)
			if tt.status == http.StatusCreated {
				svc.EXPECT().Donate(mock.Anything, signer, uint64(7), uint64(50)).
					Return(&port.DonationView{DonationRecord: domain.DonationRecord{
						Donation: domain.Donation{Donor: signer, Amount: 50},
					}}, nil)
			}
			h := NewHandler(svc, slog.New(slog.DiscardHandler),
				WithSignatures(true, time.Minute),
				WithClock(func() time.Time { return fixedAt }),
			).Router()

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, signedRequest(t, http.MethodPost, path, body, tt.ts, tt.sign, signer))

			assert.Equal(t, tt.status, rec.Code)
			if tt.code != "" {
				assert.Equal(t, tt.code, decodeError(t, rec).Code)
			}
		})
	}
}

func TestSignedBodyOverLimit(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	signer := crypto.PubkeyToAddress(key.PublicKey)
	svc := mocks.NewMockEscrowUseCase(t)
	h := NewHandler(svc, slog.New(slog.DiscardHandler), WithClock(func() time.Time { return fixedAt })).Router()

	path := "/api/v1/campaigns/7/donations"
	body := bytes.Repeat([]byte(" "), maxBodyBytes+1)
	req := signedRequest(t, http.MethodPost, path, body, fixedAt.Unix(), func(digest []byte) []byte {
		sig, err := crypto.Sign(digest, key)
		require.NoError(t, err)
		return sig
	}, signer)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "body_too_large", decodeError(t, rec).Code)
}

func TestSignatureCoversBody(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	signer := crypto.PubkeyToAddress(key.PublicKey)
	svc := mocks.NewMockEscrowUseCase(t)
	h := NewHandler(svc, slog.New(slog.DiscardHandler), WithClock(func() time.Time { return fixedAt })).Router()

	path := "/api/v1/campaigns/7/donations"
	signed := SigningHash(http.MethodPost, path, fixedAt.Unix(), []byte(`{"amount":"1"}`))
	sig, err := crypto.Sign(signed, key)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader([]byte(`{"amount":"1000"}`)))
	req.Header.Set(HeaderSigner, signer.Hex())
	req.Header.Set(HeaderTimestamp, strconv.FormatInt(fixedAt.Unix(), 10))
	req.Header.Set(HeaderSignature, hexutil.Encode(sig))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
