package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"crowd-escrow/internal/adapter/storetest"
	"crowd-escrow/internal/core/port"
)

func TestStoreContract(t *testing.T) {
	storetest.Run(t, func(t *testing.T) port.EscrowRepository {
		return NewStore(storetest.Deriver)
	})
}

func TestAtomicallyHonoursCancelledContext(t *testing.T) {
	store := NewStore(storetest.Deriver)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := store.Atomically(ctx, func(context.Context, port.EscrowTx) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
