package generator

import (
	"github.com/OCharnyshevich/cubiomes-go/pkg/engine"
	"github.com/OCharnyshevich/cubiomes-go/pkg/engine/synth"
	"github.com/OCharnyshevich/cubiomes-go/pkg/mc"
)

// faultyEngine wraps the synthetic engine and overrides the results of the
// state calls whose field is non-nil.
type faultyEngine struct {
	*synth.Engine
	biome  *int32
	fill   *int32
	viable *int32
	frees  int

	// onAttempt runs inside StructurePos. attemptSeed and viableSeed record
	// the seeds seen by the last attempt and the last viability check.
	onAttempt   func()
	attemptSeed uint64
	viableSeed  uint64
}

func (f *faultyEngine) StructurePos(s mc.Structure, v mc.Version, seed uint64, regX, regZ int32) (engine.Pos, bool) {
	f.attemptSeed = seed
	if f.onAttempt != nil {
		f.onAttempt()
	}
	return f.Engine.StructurePos(s, v, seed, regX, regZ)
}

func (f *faultyEngine) Setup(v mc.Version, flags engine.Flags) engine.State {
	return &faultyState{State: f.Engine.Setup(v, flags), e: f}
}

type faultyState struct {
	engine.State
	e    *faultyEngine
	seed uint64
}

func (s *faultyState) ApplySeed(dim mc.Dimension, seed uint64) {
	s.seed = seed
	s.State.ApplySeed(dim, seed)
}

func (s *faultyState) BiomeAt(scale, x, y, z int32) int32 {
	if s.e.biome != nil {
		return *s.e.biome
	}
	return s.State.BiomeAt(scale, x, y, z)
}

func (s *faultyState) GenBiomes(buf []int32, r engine.Range) int32 {
	if s.e.fill != nil {
		return *s.e.fill
	}
	return s.State.GenBiomes(buf, r)
}

func (s *faultyState) IsViableStructurePos(st mc.Structure, x, z int32, flags uint32) int32 {
	s.e.viableSeed = s.seed
	if s.e.viable != nil {
		return *s.e.viable
	}
	return s.State.IsViableStructurePos(st, x, z, flags)
}

func (s *faultyState) Free() {
	s.e.frees++
	s.State.Free()
}

func ptr(v int32) *int32 { return &v }

func newSynth() engine.Engine { return synth.New() }
