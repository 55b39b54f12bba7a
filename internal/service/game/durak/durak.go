package durak

import (
	"context"
	"fmt"
	"royal_casino/internal/cards"
	"royal_casino/internal/clock"
	"royal_casino/internal/config"
	"royal_casino/internal/model"
	"royal_casino/internal/service"
	"royal_casino/internal/service/game"
	"royal_casino/pkg/rng"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

var opponents = []string{
	"Alex_Vip", "CryptoKing", "LuckySerge", "OlegBet", "Winner777", "Baron_X", "Madame_K",
}

type View struct {
	Opponent      string       `json:"opponent,omitempty"`
	Hand          []model.Card `json:"hand"`
	OpponentCards int          `json:"opponent_cards"`
	Table         []Pair       `json:"table"`
	Trump         *model.Card  `json:"trump,omitempty"`
	DeckSize      int          `json:"deck_size"`
	Attacking     bool         `json:"attacking"`
	YourMove      bool         `json:"your_move"`
}

type serv struct {
	mu            sync.Mutex
	wallet        service.Wallet
	src           rng.Source
	sched         clock.Scheduler
	table         config.DurakTable
	matchDelay    time.Duration
	opponentDelay time.Duration

	round    game.Round
	opponent string
	deck     cards.Deck
	trump    model.Card
	player   []model.Card
	bot      []model.Card
	felt     []Pair
	// attacking is true while the player leads the current turn.
	attacking bool
	yourMove  bool

	// gen invalidates callbacks scheduled for an earlier state.
	gen    int
	cancel func() bool
}

func NewDurakService(
	w service.Wallet,
	src rng.Source,
	sched clock.Scheduler,
	table config.DurakTable,
	matchDelay, opponentDelay time.Duration,
) service.GameEngine {
	return &serv{
		wallet:        w,
		src:           src,
		sched:         sched,
		table:         table,
		matchDelay:    matchDelay,
		opponentDelay: opponentDelay,
		round:         game.NewRound(model.Durak),
	}
}

func (s *serv) Kind() model.GameKind {
	return model.Durak
}

// PlaceBet starts matchmaking. The stake is debited once an opponent is
// found.
func (s *serv) PlaceBet(ctx context.Context, amount int, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.round.Active() || s.round.Phase == model.PhaseSearching {
		return model.ErrRoundInProgress
	}
	if amount <= 0 {
		return fmt.Errorf("bet %d: %w", amount, model.ErrInvalidSelection)
	}
	balance, err := s.wallet.Balance(ctx)
	if err != nil {
		return err
	}
	if amount > balance {
		return model.ErrInsufficientFunds
	}

	s.round.Reset()
	s.clearHands()
	s.round.Phase = model.PhaseSearching
	s.round.Bet = model.BetState{Amount: amount}
	s.round.Message = "Searching for opponent..."
	s.schedule(s.matchDelay, s.matchFound)
	return nil
}

func (s *serv) clearHands() {
	s.opponent = ""
	s.deck, s.player, s.bot, s.felt = nil, nil, nil, nil
	s.trump = model.Card{}
}

// schedule runs fn after d unless the state moves on first.
func (s *serv) schedule(d time.Duration, fn func(ctx context.Context)) {
	s.stopTimer()
	s.gen++
	gen := s.gen
	s.cancel = s.sched.After(d, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.gen {
			return
		}
		s.cancel = nil
		fn(context.Background())
	})
}

func (s *serv) stopTimer() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.gen++
}

func (s *serv) matchFound(ctx context.Context) {
	if err := s.startMatch(ctx); err != nil {
		log.WithFields(log.Fields{"player": s.wallet.PlayerID(), "error": err}).Warn("durak match aborted")
		s.round.Reset()
		s.round.Message = err.Error()
	}
}

func (s *serv) startMatch(ctx context.Context) error {
	if s.round.Phase != model.PhaseSearching {
		return model.ErrNoActiveRound
	}
	amount := s.round.Bet.Amount
	s.round.Phase = model.PhaseBetting
	if err := s.round.Stake(ctx, s.wallet, amount, ""); err != nil {
		return err
	}

	s.opponent = opponents[s.src.Intn(len(opponents))]
	s.deck = cards.NewDurak(s.src)
	s.trump, _ = s.deck.Bottom()

	var err error
	if s.player, err = s.deck.Draw(s.table.HandSize); err != nil {
		return err
	}
	if s.bot, err = s.deck.Draw(s.table.HandSize); err != nil {
		return err
	}

	s.attacking = s.src.Intn(2) == 0
	s.startTurn()
	return nil
}

func (s *serv) startTurn() {
	s.felt = nil
	if s.attacking {
		s.yourMove = true
		s.round.Message = "Your turn to attack"
		return
	}
	s.yourMove = false
	s.round.Message = s.opponent + " is attacking"
	s.schedule(s.opponentDelay, s.opponentMove)
}

func (s *serv) Act(ctx context.Context, action model.Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch action.Name {
	case "cancel":
		return s.cancelSearch()
	case "match":
		if s.round.Phase != model.PhaseSearching {
			return model.ErrNoActiveRound
		}
		s.stopTimer()
		if err := s.startMatch(ctx); err != nil {
			s.round.Reset()
			return err
		}
		return nil
	case "attack", "defend", "take", "pass":
	default:
		return game.UnknownAction(model.Durak, action.Name)
	}

	if !s.round.Active() {
		return model.ErrNoActiveRound
	}
	if !s.yourMove {
		return fmt.Errorf("waiting for %s: %w", s.opponent, model.ErrInvalidSelection)
	}

	switch action.Name {
	case "attack":
		return s.attack(action.Index)
	case "defend":
		return s.defend(action.Index)
	case "take":
		return s.take(ctx)
	default:
		return s.pass(ctx)
	}
}

func (s *serv) cancelSearch() error {
	if s.round.Phase != model.PhaseSearching {
		return model.ErrNoActiveRound
	}
	s.stopTimer()
	s.round.Reset()
	s.round.Message = "Search cancelled"
	return nil
}

func (s *serv) card(i int) (model.Card, error) {
	if i < 0 || i >= len(s.player) {
		return model.Card{}, fmt.Errorf("card %d: %w", i, model.ErrInvalidSelection)
	}
	return s.player[i], nil
}

func (s *serv) attack(i int) error {
	if !s.attacking || !allDefended(s.felt) {
		return fmt.Errorf("cannot attack now: %w", model.ErrInvalidSelection)
	}
	c, err := s.card(i)
	if err != nil {
		return err
	}
	if !cards.CanAttack(c, tableCards(s.felt)) {
		return fmt.Errorf("%s does not match the table: %w", c, model.ErrInvalidSelection)
	}
	if len(s.bot) == 0 {
		return fmt.Errorf("%s has no cards to cover: %w", s.opponent, model.ErrInvalidSelection)
	}

	s.player = remove(s.player, i)
	s.felt = append(s.felt, Pair{Attack: c})
	s.yourMove = false
	s.round.Message = "Waiting for defense..."
	s.schedule(s.opponentDelay, s.opponentMove)
	return nil
}

func (s *serv) defend(i int) error {
	if s.attacking || len(s.felt) == 0 || s.felt[len(s.felt)-1].Defense != nil {
		return fmt.Errorf("nothing to defend: %w", model.ErrInvalidSelection)
	}
	c, err := s.card(i)
	if err != nil {
		return err
	}
	if !cards.Beats(c, s.felt[len(s.felt)-1].Attack, s.trump.Suit) {
		return fmt.Errorf("%s is too weak: %w", c, model.ErrInvalidSelection)
	}

	s.player = remove(s.player, i)
	s.felt[len(s.felt)-1].Defense = &c
	s.yourMove = false
	s.round.Message = "Waiting for " + s.opponent
	s.schedule(s.opponentDelay, s.opponentMove)
	return nil
}

// take picks up the table; the opponent leads again.
func (s *serv) take(ctx context.Context) error {
	if s.attacking || len(s.felt) == 0 {
		return fmt.Errorf("nothing to take: %w", model.ErrInvalidSelection)
	}
	s.player = append(s.player, tableCards(s.felt)...)
	return s.endTurn(ctx, false)
}

// pass ends the player's attack once everything is covered.
func (s *serv) pass(ctx context.Context) error {
	if !s.attacking || len(s.felt) == 0 || !allDefended(s.felt) {
		return fmt.Errorf("cannot pass now: %w", model.ErrInvalidSelection)
	}
	return s.endTurn(ctx, false)
}

func (s *serv) opponentMove(ctx context.Context) {
	if !s.round.Active() {
		return
	}
	role := RoleDefend
	if !s.attacking {
		role = RoleAttack
	}

	m := Decide(s.bot, s.felt, s.trump.Suit, role)
	var err error
	switch m.Kind {
	case MoveAttack:
		if len(s.felt) > 0 && len(s.player) == 0 {
			err = s.endTurn(ctx, true)
			break
		}
		c := s.bot[m.Index]
		s.bot = remove(s.bot, m.Index)
		s.felt = append(s.felt, Pair{Attack: c})
		s.yourMove = true
		s.round.Message = fmt.Sprintf("%s attacks with %s", s.opponent, c)
	case MoveDefend:
		c := s.bot[m.Index]
		s.bot = remove(s.bot, m.Index)
		s.felt[len(s.felt)-1].Defense = &c
		s.yourMove = true
		s.round.Message = s.opponent + " defends"
	case MoveTake:
		s.bot = append(s.bot, tableCards(s.felt)...)
		s.round.Message = s.opponent + " takes"
		err = s.endTurn(ctx, true)
	case MovePass:
		s.round.Message = s.opponent + " passes"
		err = s.endTurn(ctx, true)
	}
	if err != nil {
		log.WithFields(log.Fields{"player": s.wallet.PlayerID(), "error": err}).Error("durak opponent move failed")
	}
}

// endTurn clears the table, refills both hands attacker first and checks
// for the end of the game. playerLeads says who attacks next.
func (s *serv) endTurn(ctx context.Context, playerLeads bool) error {
	s.felt = nil

	first, second := &s.bot, &s.player
	if s.attacking {
		first, second = &s.player, &s.bot
	}
	s.refill(first)
	s.refill(second)

	if s.deck.Len() == 0 {
		stake := s.round.Bet.Amount
		switch {
		case len(s.player) == 0:
			s.stopTimer()
			_, err := s.round.Settle(ctx, s.wallet, stake, stake*s.table.WinMultiplier, "VICTORY", "beat "+s.opponent)
			return err
		case len(s.bot) == 0:
			s.stopTimer()
			_, err := s.round.Settle(ctx, s.wallet, stake, 0, "DURAK", s.opponent+" went out first")
			return err
		}
	}

	s.attacking = playerLeads
	s.startTurn()
	return nil
}

func (s *serv) refill(hand *[]model.Card) {
	for len(*hand) < s.table.HandSize && s.deck.Len() > 0 {
		c, _ := s.deck.DrawOne()
		*hand = append(*hand, c)
	}
}

// Resolve forfeits a running match or abandons the search.
func (s *serv) Resolve(ctx context.Context) (*model.RoundResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.round.Phase == model.PhaseSearching:
		return nil, s.cancelSearch()
	case !s.round.Active():
		return nil, model.ErrNoActiveRound
	}
	s.stopTimer()
	return s.round.Settle(ctx, s.wallet, s.round.Bet.Amount, 0, "FORFEIT", "left the table")
}

func (s *serv) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		Opponent:      s.opponent,
		Hand:          append([]model.Card(nil), s.player...),
		OpponentCards: len(s.bot),
		Table:         append([]Pair(nil), s.felt...),
		DeckSize:      s.deck.Len(),
		Attacking:     s.attacking,
		YourMove:      s.yourMove && s.round.Active(),
	}
	if s.trump.Rank != 0 {
		t := s.trump
		v.Trump = &t
	}
	return s.round.Snapshot(v)
}

func remove(hand []model.Card, i int) []model.Card {
	out := make([]model.Card, 0, len(hand)-1)
	out = append(out, hand[:i]...)
	return append(out, hand[i+1:]...)
}
