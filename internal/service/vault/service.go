package vault

import (
	"context"
	"fmt"
	"royal_casino/internal/model"
	"royal_casino/internal/repository"
	"royal_casino/internal/service"

	log "github.com/sirupsen/logrus"
)

// Catalogue is the fixed list of vault items. Free items are owned by
// every player.
var Catalogue = []model.VaultItem{
	{ID: "watch", Name: "Patek Philippe Nautilus", Price: 150_000},
	{ID: "yacht", Name: "Riva Aquarama Yacht", Price: 850_000},
	{ID: "wine", Name: "1945 Romanée-Conti", Price: 25_000},
	{ID: "villa", Name: "Lake Como Villa", Price: 5_000_000},
	{ID: "medal", Name: "Grand Architect Medal", Price: 0},
}

type serv struct {
	settlement service.SettlementService
	vaultRepo  repository.VaultRepository
}

func NewVaultService(settlement service.SettlementService, vaultRepo repository.VaultRepository) service.VaultService {
	return &serv{
		settlement: settlement,
		vaultRepo:  vaultRepo,
	}
}

func (s *serv) Items(ctx context.Context, playerID string) ([]model.VaultItem, error) {
	owned, err := s.vaultRepo.Owned(ctx, playerID)
	if err != nil {
		return nil, err
	}

	items := make([]model.VaultItem, len(Catalogue))
	for i, item := range Catalogue {
		item.Owned = item.Price == 0 || owned[item.ID]
		items[i] = item
	}
	return items, nil
}

// Purchase debits the item price as a System ledger entry and marks the
// item owned.
func (s *serv) Purchase(ctx context.Context, playerID, itemID string) (model.VaultItem, error) {
	items, err := s.Items(ctx, playerID)
	if err != nil {
		return model.VaultItem{}, err
	}

	var item *model.VaultItem
	for i := range items {
		if items[i].ID == itemID {
			item = &items[i]
			break
		}
	}
	if item == nil {
		return model.VaultItem{}, fmt.Errorf("vault item %q: %w", itemID, model.ErrUnknownItem)
	}
	if item.Owned {
		return model.VaultItem{}, model.ErrAlreadyOwned
	}

	if _, err := s.settlement.Debit(ctx, playerID, model.System, item.Price); err != nil {
		return model.VaultItem{}, err
	}
	if err := s.vaultRepo.AddOwned(ctx, playerID, item.ID); err != nil {
		if _, rerr := s.settlement.Credit(ctx, playerID, model.System, item.Price); rerr != nil {
			log.WithFields(log.Fields{"player": playerID, "item": item.ID, "error": rerr}).Error("vault refund failed")
		}
		return model.VaultItem{}, err
	}

	log.WithFields(log.Fields{"player": playerID, "item": item.ID, "price": item.Price}).Info("vault purchase")
	item.Owned = true
	return *item, nil
}
