package balance_repo

import (
	"context"
	"errors"
	"royal_casino/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table      = "players"
	colID      = "id"
	colBalance = "balance"
)

type pgRepo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewPostgresRepository(dbc *pgxpool.Pool) repository.BalanceRepository {
	return &pgRepo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// GetBalance - balance of the player, found=false if there is no row yet
func (r *pgRepo) GetBalance(ctx context.Context, playerID string) (int, bool, error) {
	query := sq.Select(colBalance).
		From(table).
		Where(sq.Eq{colID: playerID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, false, err
	}

	var balance int64
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, err
	}

	return int(balance), true, nil
}

// UpdateBalance - upserts the player's balance
func (r *pgRepo) UpdateBalance(ctx context.Context, playerID string, balance int) error {
	sqlStr, args, err := upsertBalanceQuery(playerID, balance).ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

func upsertBalanceQuery(playerID string, balance int) sq.InsertBuilder {
	return sq.Insert(table).
		Columns(colID, colBalance).
		Values(playerID, int64(balance)).
		Suffix("ON CONFLICT (" + colID + ") DO UPDATE SET " + colBalance + " = EXCLUDED." + colBalance).
		PlaceholderFormat(sq.Dollar)
}
