package dividend

import (
	"context"
	"royal_casino/internal/service"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

const (
	minDividend  = 10
	taxThreshold = 1_000_000
)

var (
	dividendRate = decimal.RequireFromString("0.001")
	taxRate      = decimal.RequireFromString("0.0005")
)

// Delta is the periodic wealth adjustment for a balance: a dividend of
// max(10, 0.1%) less a 0.05% tax above one million.
func Delta(balance int) int {
	b := decimal.NewFromInt(int64(balance))
	delta := int(b.Mul(dividendRate).Floor().IntPart())
	if delta < minDividend {
		delta = minDividend
	}
	if balance > taxThreshold {
		delta -= int(b.Mul(taxRate).Floor().IntPart())
	}
	return delta
}

// Players lists who receives dividends.
type Players interface {
	Players() []string
}

type serv struct {
	settlement service.SettlementService
	players    Players
	interval   time.Duration

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

func NewDividendService(settlement service.SettlementService, players Players, interval time.Duration) service.DividendService {
	return &serv{
		settlement: settlement,
		players:    players,
		interval:   interval,
	}
}

// Pay adjusts every known player's balance by one dividend and returns
// how many were paid. Dividends stay out of the ledger.
func (s *serv) Pay(ctx context.Context) int {
	paid := 0
	for _, id := range s.players.Players() {
		if _, err := s.settlement.Adjust(ctx, id, Delta); err != nil {
			log.WithFields(log.Fields{"player": id, "error": err}).Error("dividend settlement failed")
			continue
		}
		paid++
	}
	return paid
}

func (s *serv) Start(ctx context.Context) {
	s.mu.Lock()
	if s.stop != nil || s.interval <= 0 {
		s.mu.Unlock()
		return
	}
	stop, done := make(chan struct{}), make(chan struct{})
	s.stop, s.done = stop, done
	s.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-stop:
				return
			case <-ticker.C:
				if n := s.Pay(ctx); n > 0 {
					log.WithField("players", n).Debug("dividends paid")
				}
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
