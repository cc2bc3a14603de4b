package generator

import (
	"fmt"

	"github.com/OCharnyshevich/cubiomes-go/pkg/engine"
	"github.com/OCharnyshevich/cubiomes-go/pkg/mc"
)

// StructureRegion is one cell of a structure's placement grid. The region
// size is resolved once from the structure and version; X and Z may be
// changed freely to walk the grid with a single value.
type StructureRegion struct {
	X, Z int32

	eng       engine.Engine
	size      int32 // chunks
	version   mc.Version
	structure mc.Structure
}

// NewStructureRegion returns region (rx, rz) of s in version. It fails with
// ErrLookupMiss if s does not generate in version.
func NewStructureRegion(eng engine.Engine, rx, rz int32, version mc.Version, s mc.Structure) (StructureRegion, error) {
	if eng == nil {
		return StructureRegion{}, fmt.Errorf("nil engine: %w", ErrInvalidInput)
	}
	cfg, ok := eng.StructureConfig(s, version)
	if !ok {
		return StructureRegion{}, fmt.Errorf("%v in %v: %w", s, version, ErrLookupMiss)
	}
	if cfg.RegionSize <= 0 {
		return StructureRegion{}, &ContractError{Op: "structure_config", Raw: int32(cfg.RegionSize)}
	}
	return StructureRegion{
		X:         rx,
		Z:         rz,
		eng:       eng,
		size:      int32(cfg.RegionSize),
		version:   version,
		structure: s,
	}, nil
}

// StructureRegionFromPosition returns the region of s containing block pos.
func StructureRegionFromPosition(eng engine.Engine, pos Position, version mc.Version, s mc.Structure) (StructureRegion, error) {
	r, err := NewStructureRegion(eng, 0, 0, version, s)
	if err != nil {
		return StructureRegion{}, err
	}
	r.SetPosition(pos)
	return r, nil
}

// SetPosition moves r to the region containing block pos. Negative
// coordinates round down, so block -1 lies in region -1.
func (r *StructureRegion) SetPosition(pos Position) {
	p := pos.FloorDiv(r.RegionSizeBlocks())
	r.X, r.Z = p.X, p.Z
}

// RegionSizeChunks is the side of the placement grid cell in chunks.
func (r StructureRegion) RegionSizeChunks() int32 { return r.size }

// RegionSizeBlocks is the side of the placement grid cell in blocks.
func (r StructureRegion) RegionSizeBlocks() int32 { return r.size * 16 }

// Version is the game version the region size was resolved for.
func (r StructureRegion) Version() mc.Version { return r.version }

// Structure is the structure type the region places.
func (r StructureRegion) Structure() mc.Structure { return r.structure }

// Engine is the backend that computes the region's attempts.
func (r StructureRegion) Engine() engine.Engine { return r.eng }

// Origin is the block position of the region's minimum corner.
func (r StructureRegion) Origin() Position {
	n := r.RegionSizeBlocks()
	return Position{X: r.X * n, Z: r.Z * n}
}

// Contains reports whether block pos lies in the region.
func (r StructureRegion) Contains(pos Position) bool {
	n := r.RegionSizeBlocks()
	return floorDiv(pos.X, n) == r.X && floorDiv(pos.Z, n) == r.Z
}

// GenerationAttempt returns the candidate position of the structure in this
// region for seed. The result is false when the region has no attempt. Only
// the low 48 bits of seed matter.
func (r StructureRegion) GenerationAttempt(seed int64) (Position, bool) {
	p, ok := r.eng.StructurePos(r.structure, r.version, uint64(seed), r.X, r.Z)
	if !ok {
		return Position{}, false
	}
	return fromEngine(p), true
}

// VerifyGenerationAttempt reports whether the biomes at pos support s under
// the generator's current seed.
func (g *Generator) VerifyGenerationAttempt(pos Position, s mc.Structure) (bool, error) {
	return g.VerifyGenerationAttemptFlags(pos, s, 0)
}

// VerifyGenerationAttemptFlags is VerifyGenerationAttempt with engine
// structure flags, passed through unchanged.
func (g *Generator) VerifyGenerationAttemptFlags(pos Position, s mc.Structure, flags uint32) (bool, error) {
	// The engine may touch generator state while checking viability.
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.ready(); err != nil {
		return false, err
	}
	return g.viableLocked(pos, s, flags)
}

// viableLocked must be called with g.mu held for writing.
func (g *Generator) viableLocked(pos Position, s mc.Structure, flags uint32) (bool, error) {
	switch v := g.st.IsViableStructurePos(s, pos.X, pos.Z, flags); v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, &ContractError{Op: "is_viable_structure_pos", Raw: v}
	}
}

// TryGenerateInRegion returns the position of the structure in region under
// the generator's seed, if the region has an attempt and it is viable. The
// attempt and its verification see the same seed even when ApplySeed runs
// concurrently.
func (g *Generator) TryGenerateInRegion(region StructureRegion) (Position, bool, error) {
	if region.version != g.version {
		return Position{}, false, fmt.Errorf("region for %v on a %v generator: %w", region.version, g.version, ErrInvalidInput)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.ready(); err != nil {
		return Position{}, false, err
	}
	pos, ok := region.GenerationAttempt(g.seed)
	if !ok {
		return Position{}, false, nil
	}
	viable, err := g.viableLocked(pos, region.structure, 0)
	if err != nil || !viable {
		return Position{}, false, err
	}
	return pos, true, nil
}
