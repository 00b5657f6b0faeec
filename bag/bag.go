// Package bag supplies pieces in shuffled batches of seven. Every batch holds
// each kind exactly once; the lookahead queue never drops below one batch.
package bag

import (
	"math/rand/v2"

	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/shape"
)

// Size is the number of kinds in one bag.
const Size = shape.Count

// GenerateBag draws kinds uniformly at random, keeping each draw only if it
// has not been seen yet in this bag, until all seven are placed.
func GenerateBag(rng *rand.Rand) [Size]shape.Kind {
	var out [Size]shape.Kind
	seen := intmap.New[shape.Kind, struct{}](Size)

	for i := 0; i < Size; {
		k := shape.Kind(rng.IntN(shape.Count))
		if _, ok := seen.Get(k); ok {
			continue
		}
		seen.Put(k, struct{}{})
		out[i] = k
		i++
	}
	return out
}

// Supply is the lookahead queue of upcoming kinds.
type Supply struct {
	rng   *rand.Rand
	queue []shape.Kind
	bags  int
}

// New returns a supply seeded with one bag.
func New(rng *rand.Rand) *Supply {
	s := &Supply{
		rng:   rng,
		queue: make([]shape.Kind, 0, 2*Size),
	}
	s.refill()
	return s
}

func (s *Supply) refill() {
	bag := GenerateBag(s.rng)
	s.queue = append(s.queue, bag[:]...)
	s.bags++
}

// Next removes and returns the front of the queue, appending a fresh bag when
// fewer than Size kinds remain.
func (s *Supply) Next() shape.Kind {
	k := s.queue[0]
	copy(s.queue, s.queue[1:])
	s.queue = s.queue[:len(s.queue)-1]

	if len(s.queue) < Size {
		s.refill()
	}
	return k
}

// Peek returns a copy of the first n queued kinds without consuming them. n is
// clamped to the queue length.
func (s *Supply) Peek(n int) []shape.Kind {
	n = max(0, min(n, len(s.queue)))
	out := make([]shape.Kind, n)
	copy(out, s.queue)
	return out
}

// Len returns the number of queued kinds.
func (s *Supply) Len() int {
	return len(s.queue)
}

// Bags returns how many bags have been generated since creation.
func (s *Supply) Bags() int {
	return s.bags
}
