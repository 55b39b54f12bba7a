package rng

import (
	"math/rand"
	"sync"
	"time"
)

// Source is the uniform entropy every game draws from.
// Float64 returns a value in [0,1), Intn a value in [0,n).
type Source interface {
	Float64() float64
	Intn(n int) int
}

type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// New returns a goroutine-safe source. seed == 0 seeds from the wall clock.
func New(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedSource{r: rand.New(rand.NewSource(seed))}
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Intn(n)
}

// Shuffle permutes items in place (Fisher–Yates).
func Shuffle[T any](src Source, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// Weighted is an outcome paired with its probability.
type Weighted[T any] struct {
	Value       T
	Probability float64
}

// WeightedPick draws u once and returns the first entry whose cumulative
// probability reaches u. Falls back to the last entry when rounding leaves
// u unmatched.
func WeightedPick[T any](src Source, table []Weighted[T]) T {
	var zero T
	if len(table) == 0 {
		return zero
	}

	u := src.Float64()
	cumulative := 0.0
	for _, w := range table {
		cumulative += w.Probability
		if u <= cumulative {
			return w.Value
		}
	}

	return table[len(table)-1].Value
}

// Sample returns k distinct indexes from [0,n) in draw order.
func Sample(src Source, n, k int) []int {
	if k > n {
		k = n
	}
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + src.Intn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
