package balance_repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	_, found, err := r.GetBalance(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, r.UpdateBalance(ctx, "p1", 250))
	b, found, err := r.GetBalance(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 250, b)
}

func TestUpsertBalanceQuery(t *testing.T) {
	sqlStr, args, err := upsertBalanceQuery("p1", 42).ToSql()
	require.NoError(t, err)
	assert.Equal(t,
		"INSERT INTO players (id,balance) VALUES ($1,$2) ON CONFLICT (id) DO UPDATE SET balance = EXCLUDED.balance",
		sqlStr)
	assert.Equal(t, []interface{}{"p1", int64(42)}, args)
}

func TestBalanceKey(t *testing.T) {
	assert.Equal(t, "balance:p1", balanceKey("p1"))
}
