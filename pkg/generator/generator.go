// Package generator is the coordination layer over a world generation engine.
//
// A Generator owns one engine allocation. It is seeded with ApplySeed, which
// reinitialises the allocation in place, and answers single-point biome
// queries. Caches materialise whole ranges in one engine call; structure
// regions compute and verify placement attempts; a StrongholdSequence walks
// the stronghold chain of the current seed.
//
// Caches and stronghold sequences borrow their Generator. While any borrow
// is outstanding, ApplySeed and Close fail with ErrBorrowed.
package generator

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/OCharnyshevich/cubiomes-go/pkg/engine"
	"github.com/OCharnyshevich/cubiomes-go/pkg/mc"
)

// Generator is one seeded generation context. Queries may run concurrently
// with each other; ApplySeed and structure verification take exclusive access.
type Generator struct {
	eng     engine.Engine
	version mc.Version
	flags   engine.Flags

	mu      sync.RWMutex
	st      engine.State
	dim     mc.Dimension
	seed    int64
	seeded  bool
	closed  bool
	cleanup runtime.Cleanup

	borrows atomic.Int32
}

// New allocates engine state for version and applies seed in dim.
func New(eng engine.Engine, version mc.Version, seed int64, dim mc.Dimension, flags engine.Flags) (*Generator, error) {
	if !dim.Valid() {
		return nil, fmt.Errorf("dimension %d: %w", int(dim), ErrInvalidInput)
	}
	g, err := NewUninitialized(eng, version, flags)
	if err != nil {
		return nil, err
	}
	if err := g.ApplySeed(dim, seed); err != nil {
		g.Close()
		return nil, err
	}
	return g, nil
}

// NewUninitialized allocates engine state without seeding it. Every query
// fails with ErrEngineNotReady until ApplySeed is called.
func NewUninitialized(eng engine.Engine, version mc.Version, flags engine.Flags) (*Generator, error) {
	if eng == nil {
		return nil, fmt.Errorf("nil engine: %w", ErrInvalidInput)
	}
	if !version.Valid() {
		return nil, fmt.Errorf("version %d: %w", int32(version), ErrInvalidInput)
	}

	st := eng.Setup(version, flags)
	g := &Generator{
		eng:     eng,
		version: version,
		flags:   flags,
		st:      st,
	}
	// Release the allocation if the generator is dropped without Close.
	g.cleanup = runtime.AddCleanup(g, func(st engine.State) { st.Free() }, st)
	return g, nil
}

// ApplySeed reinitialises the engine state for dim and seed. It never
// reallocates, so one Generator can be reseeded across millions of trials.
func (g *Generator) ApplySeed(dim mc.Dimension, seed int64) error {
	if !dim.Valid() {
		return fmt.Errorf("dimension %d: %w", int(dim), ErrInvalidInput)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return ErrClosed
	}
	if n := g.borrows.Load(); n > 0 {
		return fmt.Errorf("apply seed with %d outstanding borrows: %w", n, ErrBorrowed)
	}

	g.st.ApplySeed(dim, uint64(seed))
	g.dim = dim
	g.seed = seed
	g.seeded = true
	return nil
}

// Close frees the engine state. It fails while the generator is borrowed and
// is a no-op once closed.
func (g *Generator) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return nil
	}
	if n := g.borrows.Load(); n > 0 {
		return fmt.Errorf("close with %d outstanding borrows: %w", n, ErrBorrowed)
	}
	g.cleanup.Stop()
	g.st.Free()
	g.st = nil
	g.closed = true
	return nil
}

// Engine is the backend the generator was created with.
func (g *Generator) Engine() engine.Engine { return g.eng }

// Version is the game version the engine state was set up for.
func (g *Generator) Version() mc.Version { return g.version }

// Flags are the generator flags passed at creation.
func (g *Generator) Flags() engine.Flags { return g.flags }

// Seed returns the seed last applied.
func (g *Generator) Seed() int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.seed
}

// Dimension returns the dimension last applied.
func (g *Generator) Dimension() mc.Dimension {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.dim
}

// ready must be called with g.mu held.
func (g *Generator) ready() error {
	if g.closed {
		return ErrClosed
	}
	if !g.seeded {
		return ErrEngineNotReady
	}
	return nil
}

// BiomeAt returns the biome at block (x, y, z).
func (g *Generator) BiomeAt(x, y, z int32) (mc.Biome, error) {
	return g.BiomeAtScale(Block, x, y, z)
}

// BiomeAtScale returns the biome at (x, y, z) in scale units. The engine
// answers single points at Block and Quad scale only.
func (g *Generator) BiomeAtScale(scale Scale, x, y, z int32) (mc.Biome, error) {
	if scale != Block && scale != Quad {
		return mc.BiomeNone, fmt.Errorf("point query at scale %v: %w", scale, ErrInvalidInput)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.ready(); err != nil {
		return mc.BiomeNone, err
	}
	raw := g.st.BiomeAt(int32(scale), x, y, z)
	if raw == -1 {
		return mc.BiomeNone, ErrEngineNotReady
	}
	return checkBiome("biome_at", raw)
}

func checkBiome(op string, raw int32) (mc.Biome, error) {
	b := mc.Biome(raw)
	if !b.Valid() {
		return mc.BiomeNone, &ContractError{Op: op, Raw: raw}
	}
	return b, nil
}

// MinimumRequiredSize is the number of elements Fill needs for r. It can be
// larger than r.Cells() because the engine uses the buffer as scratch space.
func (g *Generator) MinimumRequiredSize(r Range) (int, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.closed {
		return 0, ErrClosed
	}
	return g.minSize(r), nil
}

func (g *Generator) minSize(r Range) int {
	return g.st.MinCacheSize(int32(r.Scale), int32(r.SizeX), int32(r.Planes()), int32(r.SizeZ))
}

// Fill computes the biomes of r into buf, indexed y*SizeX*SizeZ + z*SizeX + x.
// buf must hold MinimumRequiredSize(r) elements. On error the contents of buf
// are undefined.
func (g *Generator) Fill(r Range, buf []int32) error {
	if err := r.Validate(); err != nil {
		return err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.ready(); err != nil {
		return err
	}
	if need := g.minSize(r); len(buf) < need {
		return fmt.Errorf("fill buffer holds %d of %d elements: %w", len(buf), need, ErrInvalidInput)
	}
	if code := g.st.GenBiomes(buf, r.engineRange()); code != 0 {
		return &FillError{Code: code}
	}
	return nil
}

func (g *Generator) borrow() {
	g.borrows.Add(1)
}

func (g *Generator) release() {
	g.borrows.Add(-1)
}
