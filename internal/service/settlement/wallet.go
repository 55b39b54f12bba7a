package settlement

import (
	"context"
	"royal_casino/internal/model"
)

type wallet struct {
	s        *serv
	playerID string
}

func (w *wallet) PlayerID() string {
	return w.playerID
}

func (w *wallet) Balance(ctx context.Context) (int, error) {
	return w.s.Balance(ctx, w.playerID)
}

func (w *wallet) Debit(ctx context.Context, game model.GameKind, amount int) (int, error) {
	return w.s.Debit(ctx, w.playerID, game, amount)
}

func (w *wallet) Credit(ctx context.Context, game model.GameKind, amount int) (int, error) {
	return w.s.Credit(ctx, w.playerID, game, amount)
}

func (w *wallet) Apply(ctx context.Context, game model.GameKind, delta int) (int, error) {
	return w.s.Apply(ctx, w.playerID, game, delta)
}
