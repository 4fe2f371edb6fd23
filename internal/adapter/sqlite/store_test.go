package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowd-escrow/internal/adapter/storetest"
	"crowd-escrow/internal/core/port"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "escrow.db"), storetest.Deriver)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStoreContract(t *testing.T) {
	storetest.Run(t, func(t *testing.T) port.EscrowRepository {
		return openTestStore(t)
	})
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("  ", storetest.Deriver)
	assert.Error(t, err)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "escrow.db")

	first, err := Open(path, storetest.Deriver)
	require.NoError(t, err)
	require.NoError(t, first.Atomically(context.Background(), func(ctx context.Context, tx port.EscrowTx) error {
		return tx.Mint(ctx, storetest.Deriver.ProgramID, 5)
	}))
	require.NoError(t, first.Close())

	second, err := Open(path, storetest.Deriver)
	require.NoError(t, err)
	defer second.Close()

	bal, err := second.Balance(context.Background(), storetest.Deriver.ProgramID)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), bal)
}

func TestAmountEncodingSortsNumerically(t *testing.T) {
	assert.Less(t, formatAmount(9), formatAmount(10))
	assert.Len(t, formatAmount(^uint64(0)), 20)

	v, err := parseAmount(formatAmount(^uint64(0)))
	require.NoError(t, err)
	assert.Equal(t, ^uint64(0), v)
}
