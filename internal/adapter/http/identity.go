package httpadapter

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// Identity headers.
const (
	HeaderSigner    = "X-Signer"
	HeaderSignature = "X-Signature"
	HeaderTimestamp = "X-Timestamp"
)

const maxBodyBytes = 1 << 20

type callerKey struct{}

// SigningHash is the digest a caller signs: keccak256 over the method, the
// request path, the decimal unix timestamp and the raw body.
func SigningHash(method, path string, timestamp int64, body []byte) []byte {
	return crypto.Keccak256(
		[]byte(method),
		[]byte(path),
		[]byte(strconv.FormatInt(timestamp, 10)),
		body,
	)
}

// identify resolves the caller from X-Signer. With verification enabled the
// request must also carry X-Timestamp within the allowed skew and an
// X-Signature recovering to the same address.
func (h *Handler) identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderSigner)
		if !common.IsHexAddress(raw) {
			writeErrorCode(w, http.StatusUnauthorized, "missing_signer", "X-Signer must be a hex address")
			return
		}
		signer := common.HexToAddress(raw)

		if h.verify {
			body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
			if err != nil {
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) {
					writeErrorCode(w, http.StatusRequestEntityTooLarge, "body_too_large", "request body too large")
					return
				}
				writeErrorCode(w, http.StatusBadRequest, "invalid_body", "unable to read body")
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			if code, msg := h.verifySignature(r, signer, body); code != "" {
				writeErrorCode(w, http.StatusUnauthorized, code, msg)
				return
			}
		}

		ctx := context.WithValue(r.Context(), callerKey{}, signer)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) verifySignature(r *http.Request, signer common.Address, body []byte) (string, string) {
	ts, err := strconv.ParseInt(r.Header.Get(HeaderTimestamp), 10, 64)
	if err != nil {
		return "invalid_timestamp", "X-Timestamp must be unix seconds"
	}
	skew := h.nowFn().Unix() - ts
	if skew < 0 {
		skew = -skew
	}
	if skew > int64(h.maxSkew.Seconds()) {
		return "stale_timestamp", "X-Timestamp is outside the accepted window"
	}

	sig, err := hexutil.Decode(r.Header.Get(HeaderSignature))
	if err != nil || len(sig) != crypto.SignatureLength {
		return "invalid_signature", "X-Signature must be a 65 byte hex signature"
	}
	// Wallets emit v as 27 or 28.
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}

	pub, err := crypto.SigToPub(SigningHash(r.Method, r.URL.Path, ts, body), sig)
	if err != nil || crypto.PubkeyToAddress(*pub) != signer {
		return "invalid_signature", "signature does not match X-Signer"
	}
	return "", ""
}

func callerFrom(ctx context.Context) common.Address {
	addr, _ := ctx.Value(callerKey{}).(common.Address)
	return addr
}
