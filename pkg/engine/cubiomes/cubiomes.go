//go:build cgo && cubiomes

package cubiomes

/*
#cgo CFLAGS: -I${SRCDIR}/../../../third_party/cubiomes -O2
#cgo LDFLAGS: -L${SRCDIR}/../../../third_party/cubiomes -lcubiomes -lm
#include <stdlib.h>
#include "generator.h"
#include "finders.h"
#include "util.h"
*/
import "C"

import (
	"unsafe"

	"github.com/OCharnyshevich/cubiomes-go/pkg/engine"
	"github.com/OCharnyshevich/cubiomes-go/pkg/mc"
)

// Name is the registry name of this backend.
const Name = "cubiomes"

func init() {
	engine.Register(Name, func() engine.Engine { return New() })
}

var versions = map[mc.Version]C.int{
	mc.VB1_7:    C.MC_B1_7,
	mc.VB1_8:    C.MC_B1_8,
	mc.V1_0:     C.MC_1_0,
	mc.V1_1:     C.MC_1_1,
	mc.V1_2:     C.MC_1_2,
	mc.V1_3:     C.MC_1_3,
	mc.V1_4:     C.MC_1_4,
	mc.V1_5:     C.MC_1_5,
	mc.V1_6:     C.MC_1_6,
	mc.V1_7:     C.MC_1_7,
	mc.V1_8:     C.MC_1_8,
	mc.V1_9:     C.MC_1_9,
	mc.V1_10:    C.MC_1_10,
	mc.V1_11:    C.MC_1_11,
	mc.V1_12:    C.MC_1_12,
	mc.V1_13:    C.MC_1_13,
	mc.V1_14:    C.MC_1_14,
	mc.V1_15:    C.MC_1_15,
	mc.V1_16_1:  C.MC_1_16_1,
	mc.V1_16:    C.MC_1_16,
	mc.V1_17:    C.MC_1_17,
	mc.V1_18:    C.MC_1_18,
	mc.V1_19_2:  C.MC_1_19_2,
	mc.V1_19:    C.MC_1_19,
	mc.V1_20:    C.MC_1_20,
	mc.V1_21_1:  C.MC_1_21_1,
	mc.V1_21_3:  C.MC_1_21_3,
	mc.V1_21_WD: C.MC_1_21_WD,
}

var structures = map[mc.Structure]C.int{
	mc.Feature:            C.Feature,
	mc.DesertPyramid:      C.Desert_Pyramid,
	mc.JungleTemple:       C.Jungle_Temple,
	mc.SwampHut:           C.Swamp_Hut,
	mc.Igloo:              C.Igloo,
	mc.Village:            C.Village,
	mc.OceanRuin:          C.Ocean_Ruin,
	mc.Shipwreck:          C.Shipwreck,
	mc.Monument:           C.Monument,
	mc.Mansion:            C.Mansion,
	mc.Outpost:            C.Outpost,
	mc.RuinedPortal:       C.Ruined_Portal,
	mc.RuinedPortalNether: C.Ruined_Portal_N,
	mc.AncientCity:        C.Ancient_City,
	mc.Treasure:           C.Treasure,
	mc.Mineshaft:          C.Mineshaft,
	mc.DesertWell:         C.Desert_Well,
	mc.Geode:              C.Geode,
	mc.Fortress:           C.Fortress,
	mc.Bastion:            C.Bastion,
	mc.EndCity:            C.End_City,
	mc.EndGateway:         C.End_Gateway,
	mc.EndIsland:          C.End_Island,
	mc.TrailRuins:         C.Trail_Ruins,
	mc.TrialChambers:      C.Trial_Chambers,
}

var dimensions = map[mc.Dimension]C.int{
	mc.Nether:    C.DIM_NETHER,
	mc.Overworld: C.DIM_OVERWORLD,
	mc.End:       C.DIM_END,
}

// Engine implements engine.Engine over the native library.
type Engine struct{}

// New returns the native engine. It holds no state of its own.
func New() *Engine {
	return &Engine{}
}

// Name is the registry name, "cubiomes".
func (e *Engine) Name() string {
	return Name
}

// Setup allocates a native generator for v outside the Go heap.
func (e *Engine) Setup(v mc.Version, flags engine.Flags) engine.State {
	g := (*C.Generator)(C.malloc(C.sizeof_Generator))
	C.setupGenerator(g, versions[v], C.uint32_t(flags))
	return &state{g: g}
}

func (e *Engine) StructureConfig(s mc.Structure, v mc.Version) (engine.StructureConfig, bool) {
	st, okS := structures[s]
	mcv, okV := versions[v]
	if !okS || !okV {
		return engine.StructureConfig{}, false
	}
	var sc C.StructureConfig
	if C.getStructureConfig(st, mcv, &sc) == 0 {
		return engine.StructureConfig{}, false
	}
	return engine.StructureConfig{
		Salt:       int32(sc.salt),
		RegionSize: int8(sc.regionSize),
		ChunkRange: int8(sc.chunkRange),
		Structure:  s,
		Dimension:  mc.Dimension(sc.dim),
		Rarity:     float32(sc.rarity),
	}, true
}

func (e *Engine) StructurePos(s mc.Structure, v mc.Version, seed uint64, regX, regZ int32) (engine.Pos, bool) {
	st, okS := structures[s]
	mcv, okV := versions[v]
	if !okS || !okV {
		return engine.Pos{}, false
	}
	var p C.Pos
	if C.getStructurePos(st, mcv, C.uint64_t(seed), C.int(regX), C.int(regZ), &p) == 0 {
		return engine.Pos{}, false
	}
	return engine.Pos{X: int32(p.x), Z: int32(p.z)}, true
}

func (e *Engine) FirstStronghold(v mc.Version, seed uint64) engine.StrongholdCursor {
	c := &strongholdCursor{}
	C.initFirstStronghold(&c.it, versions[v], C.uint64_t(seed))
	return c
}

// state owns a C-allocated Generator.
type state struct {
	g *C.Generator
}

func (s *state) ApplySeed(dim mc.Dimension, seed uint64) {
	C.applySeed(s.g, dimensions[dim], C.uint64_t(seed))
}

func (s *state) BiomeAt(scale, x, y, z int32) int32 {
	return int32(C.getBiomeAt(s.g, C.int(scale), C.int(x), C.int(y), C.int(z)))
}

func (s *state) MinCacheSize(scale, sx, sy, sz int32) int {
	return int(C.getMinCacheSize(s.g, C.int(scale), C.int(sx), C.int(sy), C.int(sz)))
}

func (s *state) GenBiomes(buf []int32, r engine.Range) int32 {
	if len(buf) == 0 {
		return -1
	}
	cr := C.Range{
		scale: C.int(r.Scale),
		x:     C.int(r.X),
		z:     C.int(r.Z),
		sx:    C.int(r.SX),
		sz:    C.int(r.SZ),
		y:     C.int(r.Y),
		sy:    C.int(r.SY),
	}
	return int32(C.genBiomes(s.g, (*C.int)(unsafe.Pointer(&buf[0])), cr))
}

func (s *state) IsViableStructurePos(st mc.Structure, x, z int32, flags uint32) int32 {
	cs, ok := structures[st]
	if !ok {
		return 0
	}
	return int32(C.isViableStructurePos(cs, s.g, C.int(x), C.int(z), C.uint32_t(flags)))
}

func (s *state) Free() {
	C.free(unsafe.Pointer(s.g))
	s.g = nil
}

type strongholdCursor struct {
	it C.StrongholdIter
}

// Next advances the iterator. nextStronghold counts the stronghold it just
// computed among those left, so one is taken off.
func (c *strongholdCursor) Next(st engine.State) int32 {
	return int32(C.nextStronghold(&c.it, st.(*state).g)) - 1
}

func (c *strongholdCursor) Pos() engine.Pos {
	return engine.Pos{X: int32(c.it.pos.x), Z: int32(c.it.pos.z)}
}

// BiomeName is the library's name for biome id in version v.
func BiomeName(v mc.Version, id mc.Biome) string {
	p := C.biome2str(versions[v], C.int(id))
	if p == nil {
		return ""
	}
	return C.GoString(p)
}

// StructureName is the library's name for s.
func StructureName(s mc.Structure) string {
	cs, ok := structures[s]
	if !ok {
		return ""
	}
	p := C.struct2str(cs)
	if p == nil {
		return ""
	}
	return C.GoString(p)
}

// VersionName is the library's name for v.
func VersionName(v mc.Version) string {
	p := C.mc2str(versions[v])
	if p == nil {
		return ""
	}
	return C.GoString(p)
}
