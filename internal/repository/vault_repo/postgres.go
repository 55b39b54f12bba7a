package vault_repo

import (
	"context"
	"royal_casino/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table       = "vault_items"
	colPlayerID = "player_id"
	colItemID   = "item_id"
)

type pgRepo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewPostgresRepository(dbc *pgxpool.Pool) repository.VaultRepository {
	return &pgRepo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

func (r *pgRepo) Owned(ctx context.Context, playerID string) (map[string]bool, error) {
	sqlStr, args, err := ownedQuery(playerID).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out[id] = true
	}
	return out, rows.Err()
}

// AddOwned - idempotent insert
func (r *pgRepo) AddOwned(ctx context.Context, playerID, itemID string) error {
	sqlStr, args, err := addOwnedQuery(playerID, itemID).ToSql()
	if err != nil {
		return err
	}
	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

func ownedQuery(playerID string) sq.SelectBuilder {
	return sq.Select(colItemID).
		From(table).
		Where(sq.Eq{colPlayerID: playerID}).
		PlaceholderFormat(sq.Dollar)
}

func addOwnedQuery(playerID, itemID string) sq.InsertBuilder {
	return sq.Insert(table).
		Columns(colPlayerID, colItemID).
		Values(playerID, itemID).
		Suffix("ON CONFLICT (" + colPlayerID + ", " + colItemID + ") DO NOTHING").
		PlaceholderFormat(sq.Dollar)
}
