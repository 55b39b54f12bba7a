package jackpot

import (
	"context"
	"royal_casino/internal/config"
	"royal_casino/internal/service"
	"royal_casino/pkg/rng"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

type serv struct {
	mu       sync.Mutex
	src      rng.Source
	table    config.JackpotTable
	interval time.Duration
	value    int

	stop chan struct{}
	done chan struct{}
}

func NewJackpotService(src rng.Source, table config.JackpotTable, interval time.Duration) service.JackpotService {
	return &serv{
		src:      src,
		table:    table,
		interval: interval,
		value:    table.Start,
	}
}

func (s *serv) Value() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Tick grows the pot by a random amount in [MinIncrement, MaxIncrement].
func (s *serv) Tick() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	inc := s.table.MinIncrement
	if span := s.table.MaxIncrement - s.table.MinIncrement + 1; span > 1 {
		inc += s.src.Intn(span)
	}
	s.value += inc
	return s.value
}

func (s *serv) Award() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	won := s.value
	s.value = s.table.Floor
	log.WithFields(log.Fields{"amount": won, "reset_to": s.table.Floor}).Info("jackpot awarded")
	return won
}

// Restore keeps increments accrued since the award.
func (s *serv) Restore(amount int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.value += amount - s.table.Floor
	log.WithField("amount", amount).Warn("jackpot award restored")
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
				s.Tick()
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
