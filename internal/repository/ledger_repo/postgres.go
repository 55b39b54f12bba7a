package ledger_repo

import (
	"context"
	"royal_casino/internal/model"
	"royal_casino/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table        = "ledger"
	colID        = "id"
	colPlayerID  = "player_id"
	colGame      = "game"
	colAmount    = "amount"
	colResult    = "result"
	colCreatedAt = "created_at"
	colSeq       = "seq"
)

type pgRepo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
	cap    int
}

func NewPostgresRepository(dbc *pgxpool.Pool, capacity int) repository.LedgerRepository {
	if capacity <= 0 {
		capacity = model.LedgerCap
	}
	return &pgRepo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
		cap:    capacity,
	}
}

// Append - inserts the entry and trims the player's history to the cap
func (r *pgRepo) Append(ctx context.Context, entry model.LedgerEntry) error {
	tr := r.getter.DefaultTrOrDB(ctx, r.dbc)

	sqlStr, args, err := insertEntryQuery(entry).ToSql()
	if err != nil {
		return err
	}
	if _, err = tr.Exec(ctx, sqlStr, args...); err != nil {
		return err
	}

	sqlStr, args, err = trimQuery(entry.PlayerID, r.cap).ToSql()
	if err != nil {
		return err
	}
	if _, err = tr.Exec(ctx, sqlStr, args...); err != nil {
		return err
	}

	return nil
}

// Recent - newest entries first
func (r *pgRepo) Recent(ctx context.Context, playerID string, limit int) ([]model.LedgerEntry, error) {
	if limit <= 0 || limit > r.cap {
		limit = r.cap
	}

	sqlStr, args, err := recentQuery(playerID, limit).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]model.LedgerEntry, 0, limit)
	for rows.Next() {
		var (
			e      model.LedgerEntry
			game   string
			result string
			amount int64
		)
		if err := rows.Scan(&e.ID, &e.PlayerID, &game, &amount, &result, &e.Timestamp); err != nil {
			return nil, err
		}
		e.Game = model.GameKind(game)
		e.Result = model.LedgerResult(result)
		e.Amount = int(amount)
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func insertEntryQuery(e model.LedgerEntry) sq.InsertBuilder {
	return sq.Insert(table).
		Columns(colID, colPlayerID, colGame, colAmount, colResult, colCreatedAt).
		Values(e.ID, e.PlayerID, string(e.Game), int64(e.Amount), string(e.Result), e.Timestamp).
		PlaceholderFormat(sq.Dollar)
}

func recentQuery(playerID string, limit int) sq.SelectBuilder {
	return sq.Select(colID, colPlayerID, colGame, colAmount, colResult, colCreatedAt).
		From(table).
		Where(sq.Eq{colPlayerID: playerID}).
		OrderBy(colCreatedAt+" DESC", colSeq+" DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)
}

func trimQuery(playerID string, keep int) sq.DeleteBuilder {
	newest := sq.Select(colID).
		From(table).
		Where(sq.Eq{colPlayerID: playerID}).
		OrderBy(colCreatedAt+" DESC", colSeq+" DESC").
		Limit(uint64(keep))

	return sq.Delete(table).
		Where(sq.Eq{colPlayerID: playerID}).
		Where(sq.Expr(colID+" NOT IN (?)", newest)).
		PlaceholderFormat(sq.Dollar)
}
