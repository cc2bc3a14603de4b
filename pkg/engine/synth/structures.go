package synth

import (
	"github.com/OCharnyshevich/cubiomes-go/pkg/engine"
	"github.com/OCharnyshevich/cubiomes-go/pkg/mc"
)

// placement is one row of the structure table: the configuration in effect
// from version since onwards, until a later row for the same structure.
type placement struct {
	since      mc.Version
	salt       int32
	regionSize int8
	chunkRange int8
	triangular bool
	dim        mc.Dimension
}

var placements = map[mc.Structure][]placement{
	mc.DesertPyramid: {{since: mc.V1_3, salt: 14357617, regionSize: 32, chunkRange: 24}},
	mc.JungleTemple:  {{since: mc.V1_3, salt: 14357619, regionSize: 32, chunkRange: 24}},
	mc.SwampHut:      {{since: mc.V1_4, salt: 14357620, regionSize: 32, chunkRange: 24}},
	mc.Igloo:         {{since: mc.V1_9, salt: 14357618, regionSize: 32, chunkRange: 24}},
	mc.Village: {
		{since: mc.VB1_8, salt: 10387312, regionSize: 32, chunkRange: 24},
		{since: mc.V1_18, salt: 10387312, regionSize: 34, chunkRange: 26},
	},
	mc.OceanRuin: {
		{since: mc.V1_13, salt: 14357621, regionSize: 16, chunkRange: 8},
		{since: mc.V1_16_1, salt: 14357621, regionSize: 20, chunkRange: 12},
	},
	mc.Shipwreck: {
		{since: mc.V1_13, salt: 165745295, regionSize: 15, chunkRange: 7},
		{since: mc.V1_16_1, salt: 165745295, regionSize: 24, chunkRange: 20},
	},
	mc.Monument:           {{since: mc.V1_8, salt: 10387313, regionSize: 32, chunkRange: 27, triangular: true}},
	mc.Mansion:            {{since: mc.V1_11, salt: 10387319, regionSize: 80, chunkRange: 60, triangular: true}},
	mc.Outpost:            {{since: mc.V1_14, salt: 165745296, regionSize: 32, chunkRange: 24}},
	mc.RuinedPortal:       {{since: mc.V1_16_1, salt: 34222645, regionSize: 40, chunkRange: 25}},
	mc.RuinedPortalNether: {{since: mc.V1_16_1, salt: 34222645, regionSize: 25, chunkRange: 10, dim: mc.Nether}},
	mc.AncientCity:        {{since: mc.V1_19_2, salt: 20083232, regionSize: 24, chunkRange: 16}},
	mc.TrailRuins:         {{since: mc.V1_20, salt: 83469867, regionSize: 34, chunkRange: 26}},
	mc.TrialChambers:      {{since: mc.V1_21_1, salt: 94251327, regionSize: 34, chunkRange: 22}},
	mc.EndCity:            {{since: mc.V1_9, salt: 10387313, regionSize: 20, chunkRange: 9, triangular: true, dim: mc.End}},
	mc.Fortress:           {{since: mc.V1_16_1, salt: 30084232, regionSize: 27, chunkRange: 23, dim: mc.Nether}},
	mc.Bastion:            {{since: mc.V1_16_1, salt: 30084232, regionSize: 27, chunkRange: 23, dim: mc.Nether}},
}

func lookupPlacement(s mc.Structure, v mc.Version) (placement, bool) {
	var found placement
	ok := false
	for _, p := range placements[s] {
		if v >= p.since {
			found, ok = p, true
		}
	}
	return found, ok
}

func (e *Engine) StructureConfig(s mc.Structure, v mc.Version) (engine.StructureConfig, bool) {
	p, ok := lookupPlacement(s, v)
	if !ok || !v.Valid() {
		return engine.StructureConfig{}, false
	}
	return engine.StructureConfig{
		Salt:       p.salt,
		RegionSize: p.regionSize,
		ChunkRange: p.chunkRange,
		Structure:  s,
		Dimension:  p.dim,
	}, true
}

func (e *Engine) StructurePos(s mc.Structure, v mc.Version, seed uint64, regX, regZ int32) (engine.Pos, bool) {
	p, ok := lookupPlacement(s, v)
	if !ok || !v.Valid() {
		return engine.Pos{}, false
	}

	rnd := regionRandom(p, seed, regX, regZ)
	var cx, cz int32
	r := int32(p.chunkRange)
	if p.triangular {
		cx = (rnd.nextInt(r) + rnd.nextInt(r)) / 2
		cz = (rnd.nextInt(r) + rnd.nextInt(r)) / 2
	} else {
		cx = rnd.nextInt(r)
		cz = rnd.nextInt(r)
	}

	pos := engine.Pos{
		X: int32((int64(regX)*int64(p.regionSize) + int64(cx)) << 4),
		Z: int32((int64(regZ)*int64(p.regionSize) + int64(cz)) << 4),
	}

	switch s {
	case mc.Outpost:
		// Only one in five outpost attempts is ever tried.
		return pos, attemptRandom(seed, pos).nextInt(5) == 0
	case mc.Fortress:
		return pos, rnd.nextInt(5) < 2
	case mc.Bastion:
		return pos, rnd.nextInt(5) >= 2
	}
	return pos, true
}

// regionRandom seeds the placement generator of one region. Only the low 48
// bits of seed survive setSeed, which is what makes attempt positions
// independent of the upper 16 bits.
func regionRandom(p placement, seed uint64, regX, regZ int32) *javaRandom {
	s := seed + uint64(int64(regX))*341873128712 + uint64(int64(regZ))*132897987541 + uint64(int64(p.salt))
	return newJavaRandom(s)
}

func attemptRandom(seed uint64, pos engine.Pos) *javaRandom {
	cx, cz := pos.X>>4, pos.Z>>4
	s := uint64(int64((cx>>4)^((cz>>4)<<4))) ^ seed
	r := newJavaRandom(s)
	r.next(32)
	return r
}

// viable lists the biomes each structure accepts. A nil entry accepts any
// biome of the structure's dimension.
var viable = map[mc.Structure][]mc.Biome{
	mc.DesertPyramid: {mc.Desert, mc.DesertHills},
	mc.JungleTemple:  {mc.Jungle, mc.JungleHills, mc.BambooJungle},
	mc.SwampHut:      {mc.Swamp},
	mc.Igloo:         {mc.SnowyTundra, mc.SnowyTaiga, mc.SnowySlopes},
	mc.Village:       {mc.Plains, mc.Desert, mc.Savanna, mc.Taiga, mc.SnowyTundra, mc.Meadow},
	mc.OceanRuin: {
		mc.Ocean, mc.DeepOcean, mc.FrozenOcean, mc.DeepFrozenOcean, mc.ColdOcean,
		mc.DeepColdOcean, mc.LukewarmOcean, mc.DeepLukewarmOcean, mc.WarmOcean,
	},
	mc.Shipwreck: {
		mc.Ocean, mc.DeepOcean, mc.FrozenOcean, mc.DeepFrozenOcean, mc.ColdOcean,
		mc.DeepColdOcean, mc.LukewarmOcean, mc.DeepLukewarmOcean, mc.WarmOcean,
		mc.Beach, mc.SnowyBeach,
	},
	mc.Monument: {mc.DeepOcean, mc.DeepFrozenOcean, mc.DeepColdOcean, mc.DeepLukewarmOcean, mc.DeepWarmOcean},
	mc.Mansion:  {mc.DarkForest, mc.DarkForestHills},
	mc.Outpost: {
		mc.Plains, mc.Desert, mc.Savanna, mc.Taiga, mc.SnowyTundra, mc.Meadow,
		mc.Grove, mc.SnowySlopes, mc.JaggedPeaks, mc.FrozenPeaks, mc.CherryGrove,
	},
	mc.AncientCity:   {mc.DeepDark},
	mc.TrailRuins:    {mc.Taiga, mc.SnowyTaiga, mc.GiantTreeTaiga, mc.GiantSpruceTaiga, mc.BirchForest, mc.Jungle},
	mc.EndCity:       {mc.EndHighlands, mc.EndMidlands},
	mc.Bastion:       {mc.NetherWastes, mc.SoulSandValley, mc.CrimsonForest, mc.WarpedForest},
	mc.RuinedPortal:  nil,
	mc.TrialChambers: nil,
	mc.Fortress:      nil,

	mc.RuinedPortalNether: nil,
}

// viabilityY is the block height sampled for a structure's biome check.
func viabilityY(s mc.Structure) int32 {
	if s == mc.AncientCity {
		return -51
	}
	return 64
}
