// Package hunt searches for seeds that place a structure in a chosen area.
//
// The search has two phases. A generation attempt depends only on the low
// 48 bits of a seed, so phase one walks those bits with plain arithmetic
// until the attempt lands in the area. Phase two fixes them and walks the
// upper 16 bits, reseeding one Generator and verifying the biome each time.
package hunt

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/OCharnyshevich/cubiomes-go/pkg/engine"
	"github.com/OCharnyshevich/cubiomes-go/pkg/generator"
	"github.com/OCharnyshevich/cubiomes-go/pkg/mc"
)

// ErrNotFound is returned when the trial budget runs out without a witness.
var ErrNotFound = errors.New("no seed found")

const (
	lower48Mask = 1<<48 - 1
	upperSeeds  = 1 << 16

	// checkEvery is how many phase one trials run between context checks.
	checkEvery = 1 << 12
)

// Area is the block rectangle [MinX, MaxX) x [MinZ, MaxZ).
type Area struct {
	MinX, MinZ int32
	MaxX, MaxZ int32
}

// Contains reports whether block p lies in a.
func (a Area) Contains(p generator.Position) bool {
	return p.X >= a.MinX && p.X < a.MaxX && p.Z >= a.MinZ && p.Z < a.MaxZ
}

// Validate rejects empty areas with ErrInvalidInput.
func (a Area) Validate() error {
	if a.MaxX <= a.MinX || a.MaxZ <= a.MinZ {
		return fmt.Errorf("empty area [%d,%d)x[%d,%d): %w", a.MinX, a.MaxX, a.MinZ, a.MaxZ, generator.ErrInvalidInput)
	}
	return nil
}

// Witness is a seed that generates the structure inside the area.
type Witness struct {
	Seed      int64
	Lower48   int64
	Upper16   int64
	Position  generator.Position
	RegionX   int32
	RegionZ   int32
	Trials    int64 // phase one trials spent
	Verified  int64 // phase two verifications spent
	Structure mc.Structure
	Version   mc.Version
}

// Searcher runs two-phase searches for one structure in one version.
type Searcher struct {
	Engine    engine.Engine
	Version   mc.Version
	Structure mc.Structure
	Flags     engine.Flags

	// MaxTrials bounds phase one. Zero means the whole 48-bit space.
	MaxTrials int64

	Log *slog.Logger
}

func (s *Searcher) logger() *slog.Logger {
	if s.Log == nil {
		return slog.Default()
	}
	return s.Log
}

// FindAttempt walks low seeds upward from start until the region's
// generation attempt lies in area. It returns the seed and the attempt.
func (s *Searcher) FindAttempt(ctx context.Context, region generator.StructureRegion, area Area, start int64) (int64, generator.Position, error) {
	limit := int64(lower48Mask) + 1
	if s.MaxTrials > 0 && start+s.MaxTrials < limit {
		limit = start + s.MaxTrials
	}

	for low := start; low < limit; low++ {
		if (low-start)%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return 0, generator.Position{}, err
			}
		}
		pos, ok := region.GenerationAttempt(low)
		if ok && area.Contains(pos) {
			return low, pos, nil
		}
	}
	return 0, generator.Position{}, fmt.Errorf("attempt in area after %d trials: %w", limit-start, ErrNotFound)
}

// FindUpper completes low with upper 16 bits under which the structure is
// viable at pos. g is reseeded in place for every candidate; it must not be
// borrowed. The result is false when no upper bits work.
func (s *Searcher) FindUpper(ctx context.Context, g *generator.Generator, dim mc.Dimension, low int64, pos generator.Position) (int64, bool, error) {
	low &= lower48Mask
	for upper := int64(0); upper < upperSeeds; upper++ {
		if upper%256 == 0 {
			if err := ctx.Err(); err != nil {
				return 0, false, err
			}
		}
		seed := int64(uint64(low) | uint64(upper)<<48)
		if err := g.ApplySeed(dim, seed); err != nil {
			return 0, false, fmt.Errorf("apply seed %d: %w", seed, err)
		}
		ok, err := g.VerifyGenerationAttempt(pos, s.Structure)
		if err != nil {
			return 0, false, fmt.Errorf("verify %v at %v: %w", s.Structure, pos, err)
		}
		if ok {
			return seed, true, nil
		}
	}
	return 0, false, nil
}

// Hunt finds a seed with the structure inside area. The area must lie in a
// single placement region. Phase one resumes past every low seed whose
// upper bits all fail verification.
func (s *Searcher) Hunt(ctx context.Context, area Area) (Witness, error) {
	if err := area.Validate(); err != nil {
		return Witness{}, err
	}
	region, err := generator.StructureRegionFromPosition(s.Engine, generator.NewPosition(area.MinX, area.MinZ), s.Version, s.Structure)
	if err != nil {
		return Witness{}, fmt.Errorf("resolve region: %w", err)
	}
	last := generator.NewPosition(area.MaxX-1, area.MaxZ-1)
	if !region.Contains(last) {
		return Witness{}, fmt.Errorf("area spans more than one %d-block region: %w", region.RegionSizeBlocks(), generator.ErrInvalidInput)
	}
	cfg, _ := s.Engine.StructureConfig(s.Structure, s.Version)

	g, err := generator.NewUninitialized(s.Engine, s.Version, s.Flags)
	if err != nil {
		return Witness{}, fmt.Errorf("create generator: %w", err)
	}
	defer g.Close()

	log := s.logger().With("structure", s.Structure, "version", s.Version, "region_x", region.X, "region_z", region.Z)
	log.Info("hunt started", "area", area, "max_trials", s.MaxTrials)

	w := Witness{RegionX: region.X, RegionZ: region.Z, Structure: s.Structure, Version: s.Version}
	start := int64(0)
	budget := s.MaxTrials
	for {
		sub := *s
		sub.MaxTrials = budget
		low, pos, err := sub.FindAttempt(ctx, region, area, start)
		if err != nil {
			return Witness{}, err
		}
		w.Trials += low - start + 1
		log.Debug("attempt in area", "lower48", low, "x", pos.X, "z", pos.Z, "trials", w.Trials)

		seed, ok, err := s.FindUpper(ctx, g, cfg.Dimension, low, pos)
		if err != nil {
			return Witness{}, err
		}
		if ok {
			w.Seed = seed
			w.Lower48 = low
			w.Upper16 = int64(uint64(seed) >> 48)
			w.Position = pos
			w.Verified += w.Upper16 + 1
			log.Info("hunt found seed", "seed", seed, "x", pos.X, "z", pos.Z, "trials", w.Trials)
			return w, nil
		}
		w.Verified += upperSeeds
		log.Debug("no viable upper bits", "lower48", low)

		start = low + 1
		if s.MaxTrials > 0 {
			budget = s.MaxTrials - w.Trials
			if budget <= 0 {
				return Witness{}, fmt.Errorf("witness after %d trials: %w", w.Trials, ErrNotFound)
			}
		}
	}
}

// StructuresInArea returns the verified positions of s in the region
// rectangle [rx0, rx1] x [rz0, rz1] under g's seed. One region value is
// moved across the grid.
func StructuresInArea(g *generator.Generator, s mc.Structure, rx0, rz0, rx1, rz1 int32) ([]generator.Position, error) {
	region, err := generator.NewStructureRegion(g.Engine(), rx0, rz0, g.Version(), s)
	if err != nil {
		return nil, err
	}

	var found []generator.Position
	// int64 counters so a bound of math.MaxInt32 still terminates.
	for rz := int64(rz0); rz <= int64(rz1); rz++ {
		for rx := int64(rx0); rx <= int64(rx1); rx++ {
			region.X, region.Z = int32(rx), int32(rz)
			pos, ok, err := g.TryGenerateInRegion(region)
			if err != nil {
				return nil, fmt.Errorf("region (%d, %d): %w", rx, rz, err)
			}
			if ok {
				found = append(found, pos)
			}
		}
	}
	return found, nil
}
