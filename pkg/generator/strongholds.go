package generator

import (
	"fmt"
	"iter"
	"sync"

	"github.com/OCharnyshevich/cubiomes-go/pkg/engine"
	"github.com/OCharnyshevich/cubiomes-go/pkg/mc"
)

// StrongholdSequence yields the stronghold chain of the seed its Generator
// had when the sequence was created. It is forward-only; start a new
// sequence to enumerate again. The generator stays borrowed until the
// sequence is exhausted or closed.
type StrongholdSequence struct {
	mu        sync.Mutex
	g         *Generator
	cur       engine.StrongholdCursor
	pos       Position
	remaining int
	released  bool
}

// Strongholds starts the stronghold chain for the generator's version and
// seed. The generator must be seeded for the overworld.
func (g *Generator) Strongholds() (*StrongholdSequence, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.ready(); err != nil {
		return nil, err
	}
	if g.dim != mc.Overworld {
		return nil, fmt.Errorf("strongholds in %v: %w", g.dim, ErrInvalidInput)
	}

	cur := g.eng.FirstStronghold(g.version, uint64(g.seed))
	// The first advance computes the first position and tells how many follow.
	left := cur.Next(g.st)
	if left < 0 {
		return nil, &ContractError{Op: "next_stronghold", Raw: left}
	}
	g.borrow()
	return &StrongholdSequence{
		g:         g,
		cur:       cur,
		pos:       fromEngine(cur.Pos()),
		remaining: int(left) + 1,
	}, nil
}

// Remaining is the number of positions Next will still yield.
func (s *StrongholdSequence) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remaining
}

// Next returns the next stronghold position. Once the chain is exhausted it
// returns false on every call.
func (s *StrongholdSequence) Next() (Position, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.remaining == 0 {
		s.releaseLocked()
		return Position{}, false
	}
	pos := s.pos
	s.remaining--
	if s.remaining == 0 {
		s.releaseLocked()
		return pos, true
	}

	s.g.mu.RLock()
	s.cur.Next(s.g.st)
	s.g.mu.RUnlock()
	s.pos = fromEngine(s.cur.Pos())
	return pos, true
}

// All yields the remaining positions in order.
func (s *StrongholdSequence) All() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for {
			pos, ok := s.Next()
			if !ok || !yield(pos) {
				return
			}
		}
	}
}

// Close abandons the rest of the chain and releases the generator.
func (s *StrongholdSequence) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remaining = 0
	s.releaseLocked()
	return nil
}

func (s *StrongholdSequence) releaseLocked() {
	if !s.released {
		s.released = true
		s.g.release()
	}
}
