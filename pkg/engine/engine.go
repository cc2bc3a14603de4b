// Package engine describes the contract of a seed-driven world generation
// engine. The engine computes biome classifications and structure placements
// from a 64-bit seed, a version and a dimension; how it does so is opaque to
// the rest of this module.
//
// Seeds cross this boundary as uint64. Callers holding a signed seed convert
// it with uint64(seed), which preserves the bit pattern.
package engine

import "github.com/OCharnyshevich/cubiomes-go/pkg/mc"

// Flags alter generator setup. Unknown bits are passed through untouched.
type Flags uint32

const (
	LargeBiomes        Flags = 0x1
	NoBetaOcean        Flags = 0x2
	ForceOceanVariants Flags = 0x4
)

// Range is the engine's view of a cuboid request. Sizes are already validated:
// SX and SZ are positive, SY is zero or positive (zero meaning a single plane).
type Range struct {
	Scale  int32
	X, Z   int32
	SX, SZ int32
	Y, SY  int32
}

// Pos is a block position on the horizontal plane.
type Pos struct {
	X, Z int32
}

// StructureConfig is the placement configuration of a structure type in a version.
type StructureConfig struct {
	Salt       int32
	RegionSize int8 // in chunks
	ChunkRange int8
	Structure  mc.Structure
	Dimension  mc.Dimension
	Rarity     float32
}

// Engine is the stateless half of the contract: setup and pure placement math.
type Engine interface {
	// Name identifies the backend, e.g. "cubiomes" or "synthetic".
	Name() string

	// Setup allocates generator state for v. The state is unseeded.
	Setup(v mc.Version, flags Flags) State

	// StructureConfig reports the placement configuration for s in v, or false
	// if the structure does not exist in that version.
	StructureConfig(s mc.Structure, v mc.Version) (StructureConfig, bool)

	// StructurePos returns the generation attempt of s in region (regX, regZ).
	// It depends on the low 48 bits of seed only. False means the region has no
	// attempt for this seed.
	StructurePos(s mc.Structure, v mc.Version, seed uint64, regX, regZ int32) (Pos, bool)

	// FirstStronghold prepares a stronghold cursor for v and seed. The cursor
	// holds no position until its first Next.
	FirstStronghold(v mc.Version, seed uint64) StrongholdCursor
}

// State is one generator allocation. It is reseeded in place and must be
// released with Free exactly once.
type State interface {
	ApplySeed(dim mc.Dimension, seed uint64)

	// BiomeAt returns the raw biome id at (x, y, z) in scale units, or -1 on failure.
	BiomeAt(scale, x, y, z int32) int32

	// MinCacheSize is the number of elements GenBiomes needs for a request of
	// this scale and size. It may exceed sx*sy*sz.
	MinCacheSize(scale, sx, sy, sz int32) int

	// GenBiomes fills buf for r and returns 0 on success.
	GenBiomes(buf []int32, r Range) int32

	// IsViableStructurePos returns 1 if the biomes around (x, z) support s,
	// 0 if they do not. Any other value is a failure.
	IsViableStructurePos(s mc.Structure, x, z int32, flags uint32) int32

	Free()
}

// StrongholdCursor walks the stronghold chain of one seed.
type StrongholdCursor interface {
	// Next computes the next stronghold using st and returns how many
	// strongholds follow it.
	Next(st State) int32

	// Pos is the position computed by the last Next.
	Pos() Pos
}
