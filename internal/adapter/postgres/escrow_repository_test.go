package postgres

import (
	"context"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"crowd-escrow/internal/adapter/storetest"
	"crowd-escrow/internal/config/configs"
	"crowd-escrow/internal/core/port"
	"crowd-escrow/internal/db"
)

// TestRepositoryContract needs a disposable database. Point
// PSQL_TEST_ADDRESS at it to run; every subtest truncates all tables.
func TestRepositoryContract(t *testing.T) {
	addr := os.Getenv("PSQL_TEST_ADDRESS")
	if addr == "" {
		t.Skip("PSQL_TEST_ADDRESS not set")
	}
	u, err := url.Parse(addr)
	require.NoError(t, err)

	require.NoError(t, db.Migrate(addr))

	ctx := context.Background()
	pool, err := db.NewPostgresPool(ctx, configs.Postgres{Addr: *u, PingTimeout: 5 * time.Second})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	storetest.Run(t, func(t *testing.T) port.EscrowRepository {
		_, err := pool.Exec(ctx, `TRUNCATE token_transfers, token_holdings, donations, campaign_profiles, campaigns`)
		require.NoError(t, err)
		return NewEscrowRepository(pool, storetest.Deriver)
	})
}
