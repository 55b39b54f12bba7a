package session

import (
	"context"
	"fmt"
	"royal_casino/internal/model"
	"royal_casino/internal/repository"
	"royal_casino/internal/service"
	"sort"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// table is one player's set of engines. rounds remembers the last settled
// round count seen per game.
type table struct {
	mu      sync.Mutex
	engines map[model.GameKind]service.GameEngine
	rounds  map[model.GameKind]int
}

type serv struct {
	settlement service.SettlementService
	vault      service.VaultService
	jackpot    service.JackpotService
	notifier   service.NotificationService
	statsRepo  repository.StatsRepository
	factories  map[model.GameKind]service.EngineFactory
	tick       time.Duration

	mu     sync.Mutex
	tables map[string]*table

	stop chan struct{}
	done chan struct{}
}

func NewSessionService(
	settlement service.SettlementService,
	vault service.VaultService,
	jackpot service.JackpotService,
	notifier service.NotificationService,
	statsRepo repository.StatsRepository,
	factories map[model.GameKind]service.EngineFactory,
	tick time.Duration,
) service.SessionService {
	return &serv{
		settlement: settlement,
		vault:      vault,
		jackpot:    jackpot,
		notifier:   notifier,
		statsRepo:  statsRepo,
		factories:  factories,
		tick:       tick,
		tables:     make(map[string]*table),
	}
}

func (s *serv) table(playerID string) *table {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tables[playerID]
	if !ok {
		t = &table{
			engines: make(map[model.GameKind]service.GameEngine),
			rounds:  make(map[model.GameKind]int),
		}
		s.tables[playerID] = t
	}
	return t
}

// engine returns the player's engine for game, building it on first use.
// Caller holds t.mu.
func (s *serv) engine(t *table, playerID string, game model.GameKind) (service.GameEngine, error) {
	if e, ok := t.engines[game]; ok {
		return e, nil
	}
	factory, ok := s.factories[game]
	if !ok {
		return nil, fmt.Errorf("game %q: %w", game, model.ErrUnknownGame)
	}
	e := factory(s.settlement.Wallet(playerID))
	t.engines[game] = e
	return e, nil
}

func (s *serv) PlaceBet(ctx context.Context, playerID string, game model.GameKind, amount int, selection string) (model.Snapshot, error) {
	t := s.table(playerID)
	t.mu.Lock()
	defer t.mu.Unlock()

	e, err := s.engine(t, playerID, game)
	if err != nil {
		return model.Snapshot{}, err
	}
	for kind, other := range t.engines {
		if kind != game && other.Snapshot().InRound() {
			return model.Snapshot{}, fmt.Errorf("%s round open: %w", kind, model.ErrRoundInProgress)
		}
	}

	if err := e.PlaceBet(ctx, amount, selection); err != nil {
		s.fail(playerID, game, err)
		return e.Snapshot(), err
	}
	s.notifier.Notify(model.Notification{
		Kind:     model.NotifySelect,
		PlayerID: playerID,
		Game:     game,
		Text:     fmt.Sprintf("bet %d", amount),
	})
	return s.observe(playerID, game, t, e), nil
}

func (s *serv) Act(ctx context.Context, playerID string, game model.GameKind, action model.Action) (model.Snapshot, error) {
	if action.Name == "resolve" {
		return s.Resolve(ctx, playerID, game)
	}

	t := s.table(playerID)
	t.mu.Lock()
	defer t.mu.Unlock()

	e, err := s.engine(t, playerID, game)
	if err != nil {
		return model.Snapshot{}, err
	}
	if err := e.Act(ctx, action); err != nil {
		s.fail(playerID, game, err)
		return s.observe(playerID, game, t, e), err
	}
	return s.observe(playerID, game, t, e), nil
}

func (s *serv) Resolve(ctx context.Context, playerID string, game model.GameKind) (model.Snapshot, error) {
	t := s.table(playerID)
	t.mu.Lock()
	defer t.mu.Unlock()

	e, err := s.engine(t, playerID, game)
	if err != nil {
		return model.Snapshot{}, err
	}
	if _, err := e.Resolve(ctx); err != nil {
		s.fail(playerID, game, err)
		return s.observe(playerID, game, t, e), err
	}
	return s.observe(playerID, game, t, e), nil
}

func (s *serv) Snapshot(_ context.Context, playerID string, game model.GameKind) (model.Snapshot, error) {
	t := s.table(playerID)
	t.mu.Lock()
	defer t.mu.Unlock()

	e, err := s.engine(t, playerID, game)
	if err != nil {
		return model.Snapshot{}, err
	}
	return s.observe(playerID, game, t, e), nil
}

// observe records stats and notifies for every round settled since the
// last look. Caller holds t.mu.
func (s *serv) observe(playerID string, game model.GameKind, t *table, e service.GameEngine) model.Snapshot {
	snap := e.Snapshot()
	if snap.Rounds <= t.rounds[game] {
		return snap
	}
	t.rounds[game] = snap.Rounds

	res := snap.Result
	if res == nil {
		return snap
	}
	s.statsRepo.Record(game, float64(res.Stake), float64(res.Payout))

	n := model.Notification{PlayerID: playerID, Game: game}
	switch res.Outcome {
	case model.OutcomeWin:
		n.Kind = model.NotifySuccess
		n.Text = fmt.Sprintf("%s: won %d", res.Label, res.Payout)
	case model.OutcomePush:
		n.Kind = model.NotifySelect
		n.Text = fmt.Sprintf("%s: stake returned", res.Label)
	default:
		n.Kind = model.NotifyWarning
		n.Text = fmt.Sprintf("%s: lost %d", res.Label, res.Stake)
	}
	s.notifier.Notify(n)
	return snap
}

func (s *serv) fail(playerID string, game model.GameKind, err error) {
	s.notifier.Notify(model.Notification{
		Kind:     model.NotifyError,
		PlayerID: playerID,
		Game:     game,
		Text:     err.Error(),
	})
}

func (s *serv) Overview(ctx context.Context, playerID string) (model.SessionView, error) {
	balance, err := s.settlement.Balance(ctx, playerID)
	if err != nil {
		return model.SessionView{}, err
	}
	items, err := s.vault.Items(ctx, playerID)
	if err != nil {
		return model.SessionView{}, err
	}

	view := model.SessionView{
		PlayerID: playerID,
		Balance:  balance,
		Rank:     model.RankFor(balance),
		Jackpot:  s.jackpot.Value(),
		Vault:    items,
	}

	t := s.table(playerID)
	t.mu.Lock()
	defer t.mu.Unlock()
	for kind, e := range t.engines {
		if e.Snapshot().InRound() {
			view.ActiveGame = kind
			break
		}
	}
	return view, nil
}

func (s *serv) Players() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0, len(s.tables))
	for id := range s.tables {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Sweep advances timed engines and picks up rounds settled in the
// background.
func (s *serv) Sweep(ctx context.Context) {
	for _, playerID := range s.Players() {
		t := s.table(playerID)
		t.mu.Lock()
		for game, e := range t.engines {
			if tk, ok := e.(service.Ticker); ok {
				if err := tk.Tick(ctx); err != nil {
					log.WithFields(log.Fields{"player": playerID, "game": game, "error": err}).Error("engine tick failed")
				}
			}
			s.observe(playerID, game, t, e)
		}
		t.mu.Unlock()
	}
}

func (s *serv) Start(ctx context.Context) {
	s.mu.Lock()
	if s.stop != nil || s.tick <= 0 {
		s.mu.Unlock()
		return
	}
	stop, done := make(chan struct{}), make(chan struct{})
	s.stop, s.done = stop, done
	s.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(s.tick)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-stop:
				return
			case <-ticker.C:
				s.Sweep(ctx)
			}
		}
	}()
}

func (s *serv) Stop() {
	s.mu.Lock()
	stop, done := s.stop, s.done
	s.stop, s.done = nil, nil
	s.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}
