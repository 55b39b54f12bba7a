package vault

import (
	"context"
	"royal_casino/internal/model"
	"royal_casino/internal/repository/balance_repo"
	"royal_casino/internal/repository/ledger_repo"
	"royal_casino/internal/repository/vault_repo"
	"royal_casino/internal/service"
	"royal_casino/internal/service/settlement"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVault(balance int) (service.VaultService, service.SettlementService) {
	st := settlement.NewSettlementService(
		balance_repo.NewMemoryRepository(),
		ledger_repo.NewMemoryRepository(model.LedgerCap),
		nil, nil, balance,
	)
	return NewVaultService(st, vault_repo.NewMemoryRepository()), st
}

func TestItems_MedalAlwaysOwned(t *testing.T) {
	v, _ := newVault(1000)
	items, err := v.Items(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, items, len(Catalogue))

	for _, it := range items {
		assert.Equal(t, it.ID == "medal", it.Owned, it.ID)
	}
}

func TestPurchase(t *testing.T) {
	ctx := context.Background()
	v, st := newVault(200_000)

	item, err := v.Purchase(ctx, "p1", "watch")
	require.NoError(t, err)
	assert.True(t, item.Owned)

	balance, err := st.Balance(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 50_000, balance)

	ledger, err := st.Ledger(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, ledger, 1)
	assert.Equal(t, model.System, ledger[0].Game)
	assert.Equal(t, model.LedgerLoss, ledger[0].Result)

	_, err = v.Purchase(ctx, "p1", "watch")
	assert.ErrorIs(t, err, model.ErrAlreadyOwned)
}

func TestPurchaseFailures(t *testing.T) {
	ctx := context.Background()
	v, st := newVault(1000)

	_, err := v.Purchase(ctx, "p1", "yacht")
	assert.ErrorIs(t, err, model.ErrInsufficientFunds)
	_, err = v.Purchase(ctx, "p1", "jet")
	assert.ErrorIs(t, err, model.ErrUnknownItem)
	_, err = v.Purchase(ctx, "p1", "medal")
	assert.ErrorIs(t, err, model.ErrAlreadyOwned)

	balance, _ := st.Balance(ctx, "p1")
	assert.Equal(t, 1000, balance)
}
