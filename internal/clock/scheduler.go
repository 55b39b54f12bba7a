package clock

import (
	"sync"
	"time"
)

// Scheduler runs fn once after d. The returned func cancels it and reports
// whether the call was stopped before firing.
type Scheduler interface {
	After(d time.Duration, fn func()) (cancel func() bool)
}

type RealScheduler struct{}

func (RealScheduler) After(d time.Duration, fn func()) func() bool {
	t := time.AfterFunc(d, fn)
	return t.Stop
}

type pending struct {
	id    int
	delay time.Duration
	fn    func()
}

// ManualScheduler queues callbacks until the test runs them.
type ManualScheduler struct {
	mu     sync.Mutex
	nextID int
	queue  []pending
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) After(d time.Duration, fn func()) func() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.queue = append(s.queue, pending{id: id, delay: d, fn: fn})

	return func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, p := range s.queue {
			if p.id == id {
				s.queue = append(s.queue[:i], s.queue[i+1:]...)
				return true
			}
		}
		return false
	}
}

func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// RunNext fires the oldest queued callback. False when the queue is empty.
func (s *ManualScheduler) RunNext() bool {
	s.mu.Lock()
	if len(s.queue) == 0 {
		s.mu.Unlock()
		return false
	}
	p := s.queue[0]
	s.queue = s.queue[1:]
	s.mu.Unlock()

	p.fn()
	return true
}

// RunAll drains the queue, including callbacks scheduled while draining,
// up to limit calls.
func (s *ManualScheduler) RunAll(limit int) int {
	n := 0
	for n < limit && s.RunNext() {
		n++
	}
	return n
}
