// Package synth is a pure-Go generation engine. It reproduces the placement
// arithmetic of region-grid structures (a 48-bit LCG keyed by region and
// salt) and the ring layout of strongholds, and classifies biomes from seeded
// simplex noise. Its biome maps are plausible but do not match vanilla worlds;
// link the native engine for that.
package synth

import (
	"github.com/OCharnyshevich/cubiomes-go/pkg/engine"
	"github.com/OCharnyshevich/cubiomes-go/pkg/mc"
)

// Name is the registry name of this backend.
const Name = "synthetic"

func init() {
	engine.Register(Name, func() engine.Engine { return New() })
}

// Engine implements engine.Engine without native code.
type Engine struct{}

// New returns the synthetic engine.
func New() *Engine {
	return &Engine{}
}

// Name is the registry name, "synthetic".
func (e *Engine) Name() string {
	return Name
}

func (e *Engine) Setup(v mc.Version, flags engine.Flags) engine.State {
	return &state{version: v, flags: flags}
}

// state is one generator. Noise tables are embedded so reseeding never allocates.
type state struct {
	version mc.Version
	flags   engine.Flags

	seeded bool
	freed  bool
	dim    mc.Dimension
	seed   uint64

	temperature simplex
	humidity    simplex
	continental simplex
	erosion     simplex
	river       simplex
}

func (s *state) ApplySeed(dim mc.Dimension, seed uint64) {
	s.dim = dim
	s.seed = seed
	base := int64(seed)
	s.temperature.reseed(base + 100)
	s.humidity.reseed(base + 200)
	s.continental.reseed(base)
	s.erosion.reseed(base + 300)
	s.river.reseed(base + 400)
	s.seeded = true
}

func (s *state) BiomeAt(scale, x, y, z int32) int32 {
	if !s.seeded || s.freed || (scale != 1 && scale != 4) {
		return -1
	}
	return int32(s.classify(x*scale, y*scale, z*scale))
}

func (s *state) MinCacheSize(scale, sx, sy, sz int32) int {
	if sy < 1 {
		sy = 1
	}
	return int(sx) * int(sy) * int(sz)
}

// GenBiomes status codes.
const (
	genOK int32 = iota
	genNotSeeded
	genBadScale
	genShortBuffer
)

func (s *state) GenBiomes(buf []int32, r engine.Range) int32 {
	if !s.seeded || s.freed {
		return genNotSeeded
	}
	switch r.Scale {
	case 1, 4, 16, 64, 256:
	default:
		return genBadScale
	}
	if len(buf) < s.MinCacheSize(r.Scale, r.SX, r.SY, r.SZ) {
		return genShortBuffer
	}

	sy := max(r.SY, 1)
	// Vertical coordinates are in blocks at scale 1 and in quarter blocks otherwise.
	yScale := int32(4)
	if r.Scale == 1 {
		yScale = 1
	}
	i := 0
	for k := int32(0); k < sy; k++ {
		by := (r.Y + k) * yScale
		for j := int32(0); j < r.SZ; j++ {
			bz := (r.Z + j) * r.Scale
			for l := int32(0); l < r.SX; l++ {
				buf[i] = int32(s.classify((r.X+l)*r.Scale, by, bz))
				i++
			}
		}
	}
	return genOK
}

func (s *state) IsViableStructurePos(st mc.Structure, x, z int32, flags uint32) int32 {
	if !s.seeded || s.freed {
		return -1
	}
	p, ok := lookupPlacement(st, s.version)
	if !ok || p.dim != s.dim {
		return 0
	}
	accepted, listed := viable[st]
	if !listed {
		return 0
	}
	b := s.classify(x, viabilityY(st), z)
	if accepted == nil {
		if st == mc.TrialChambers && b == mc.DeepDark {
			return 0
		}
		return 1
	}
	for _, a := range accepted {
		if a == b {
			return 1
		}
	}
	return 0
}

func (s *state) Free() {
	s.freed = true
}
