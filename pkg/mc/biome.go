package mc

import "fmt"

// Biome is a terrain classification id as produced by the generation engine.
// Ids are stable across versions; a few biomes were renamed in 1.18 and keep
// their id under both names.
type Biome int32

// BiomeNone is the engine's "no biome" marker.
const BiomeNone Biome = -1

const (
	Ocean                         Biome = 0
	Plains                        Biome = 1
	Desert                        Biome = 2
	Mountains                     Biome = 3
	Forest                        Biome = 4
	Taiga                         Biome = 5
	Swamp                         Biome = 6
	River                         Biome = 7
	NetherWastes                  Biome = 8
	TheEnd                        Biome = 9
	FrozenOcean                   Biome = 10
	FrozenRiver                   Biome = 11
	SnowyTundra                   Biome = 12
	SnowyMountains                Biome = 13
	MushroomFields                Biome = 14
	MushroomFieldShore            Biome = 15
	Beach                         Biome = 16
	DesertHills                   Biome = 17
	WoodedHills                   Biome = 18
	TaigaHills                    Biome = 19
	MountainEdge                  Biome = 20
	Jungle                        Biome = 21
	JungleHills                   Biome = 22
	JungleEdge                    Biome = 23
	DeepOcean                     Biome = 24
	StoneShore                    Biome = 25
	SnowyBeach                    Biome = 26
	BirchForest                   Biome = 27
	BirchForestHills              Biome = 28
	DarkForest                    Biome = 29
	SnowyTaiga                    Biome = 30
	SnowyTaigaHills               Biome = 31
	GiantTreeTaiga                Biome = 32
	GiantTreeTaigaHills           Biome = 33
	WoodedMountains               Biome = 34
	Savanna                       Biome = 35
	SavannaPlateau                Biome = 36
	Badlands                      Biome = 37
	WoodedBadlandsPlateau         Biome = 38
	BadlandsPlateau               Biome = 39
	SmallEndIslands               Biome = 40
	EndMidlands                   Biome = 41
	EndHighlands                  Biome = 42
	EndBarrens                    Biome = 43
	WarmOcean                     Biome = 44
	LukewarmOcean                 Biome = 45
	ColdOcean                     Biome = 46
	DeepWarmOcean                 Biome = 47
	DeepLukewarmOcean             Biome = 48
	DeepColdOcean                 Biome = 49
	DeepFrozenOcean               Biome = 50
	SeasonalForest                Biome = 51
	Rainforest                    Biome = 52
	Shrubland                     Biome = 53
	TheVoid                       Biome = 127
	SunflowerPlains               Biome = 129
	DesertLakes                   Biome = 130
	GravellyMountains             Biome = 131
	FlowerForest                  Biome = 132
	TaigaMountains                Biome = 133
	SwampHills                    Biome = 134
	IceSpikes                     Biome = 140
	ModifiedJungle                Biome = 149
	ModifiedJungleEdge            Biome = 151
	TallBirchForest               Biome = 155
	TallBirchHills                Biome = 156
	DarkForestHills               Biome = 157
	SnowyTaigaMountains           Biome = 158
	GiantSpruceTaiga              Biome = 160
	GiantSpruceTaigaHills         Biome = 161
	ModifiedGravellyMountains     Biome = 162
	ShatteredSavanna              Biome = 163
	ShatteredSavannaPlateau       Biome = 164
	ErodedBadlands                Biome = 165
	ModifiedWoodedBadlandsPlateau Biome = 166
	ModifiedBadlandsPlateau       Biome = 167
	BambooJungle                  Biome = 168
	BambooJungleHills             Biome = 169
	SoulSandValley                Biome = 170
	CrimsonForest                 Biome = 171
	WarpedForest                  Biome = 172
	BasaltDeltas                  Biome = 173
	DripstoneCaves                Biome = 174
	LushCaves                     Biome = 175
	Meadow                        Biome = 177
	Grove                         Biome = 178
	SnowySlopes                   Biome = 179
	JaggedPeaks                   Biome = 180
	FrozenPeaks                   Biome = 181
	StonyPeaks                    Biome = 182
	DeepDark                      Biome = 183
	MangroveSwamp                 Biome = 184
	CherryGrove                   Biome = 185
	PaleGarden                    Biome = 186

	// Names introduced by the 1.18 rename.
	WindsweptHills         = Mountains
	SnowyPlains            = SnowyTundra
	SparseJungle           = JungleEdge
	StonyShore             = StoneShore
	OldGrowthPineTaiga     = GiantTreeTaiga
	WindsweptForest        = WoodedMountains
	WoodedBadlands         = WoodedBadlandsPlateau
	WindsweptGravellyHills = GravellyMountains
	OldGrowthBirchForest   = TallBirchForest
	OldGrowthSpruceTaiga   = GiantSpruceTaiga
	WindsweptSavanna       = ShatteredSavanna

	// Historical spellings.
	MushroomIsland      = MushroomFields
	MushroomIslandShore = MushroomFieldShore
	ExtremeHills        = Mountains
	IcePlains           = SnowyTundra
	Mesa                = Badlands
)

type biomeInfo struct {
	legacy string
	modern string
}

var biomeNames = map[Biome]biomeInfo{
	Ocean:                         {"ocean", "ocean"},
	Plains:                        {"plains", "plains"},
	Desert:                        {"desert", "desert"},
	Mountains:                     {"mountains", "windswept_hills"},
	Forest:                        {"forest", "forest"},
	Taiga:                         {"taiga", "taiga"},
	Swamp:                         {"swamp", "swamp"},
	River:                         {"river", "river"},
	NetherWastes:                  {"nether_wastes", "nether_wastes"},
	TheEnd:                        {"the_end", "the_end"},
	FrozenOcean:                   {"frozen_ocean", "frozen_ocean"},
	FrozenRiver:                   {"frozen_river", "frozen_river"},
	SnowyTundra:                   {"snowy_tundra", "snowy_plains"},
	SnowyMountains:                {"snowy_mountains", "snowy_mountains"},
	MushroomFields:                {"mushroom_fields", "mushroom_fields"},
	MushroomFieldShore:            {"mushroom_field_shore", "mushroom_field_shore"},
	Beach:                         {"beach", "beach"},
	DesertHills:                   {"desert_hills", "desert_hills"},
	WoodedHills:                   {"wooded_hills", "wooded_hills"},
	TaigaHills:                    {"taiga_hills", "taiga_hills"},
	MountainEdge:                  {"mountain_edge", "mountain_edge"},
	Jungle:                        {"jungle", "jungle"},
	JungleHills:                   {"jungle_hills", "jungle_hills"},
	JungleEdge:                    {"jungle_edge", "sparse_jungle"},
	DeepOcean:                     {"deep_ocean", "deep_ocean"},
	StoneShore:                    {"stone_shore", "stony_shore"},
	SnowyBeach:                    {"snowy_beach", "snowy_beach"},
	BirchForest:                   {"birch_forest", "birch_forest"},
	BirchForestHills:              {"birch_forest_hills", "birch_forest_hills"},
	DarkForest:                    {"dark_forest", "dark_forest"},
	SnowyTaiga:                    {"snowy_taiga", "snowy_taiga"},
	SnowyTaigaHills:               {"snowy_taiga_hills", "snowy_taiga_hills"},
	GiantTreeTaiga:                {"giant_tree_taiga", "old_growth_pine_taiga"},
	GiantTreeTaigaHills:           {"giant_tree_taiga_hills", "giant_tree_taiga_hills"},
	WoodedMountains:               {"wooded_mountains", "windswept_forest"},
	Savanna:                       {"savanna", "savanna"},
	SavannaPlateau:                {"savanna_plateau", "savanna_plateau"},
	Badlands:                      {"badlands", "badlands"},
	WoodedBadlandsPlateau:         {"wooded_badlands_plateau", "wooded_badlands"},
	BadlandsPlateau:               {"badlands_plateau", "badlands_plateau"},
	SmallEndIslands:               {"small_end_islands", "small_end_islands"},
	EndMidlands:                   {"end_midlands", "end_midlands"},
	EndHighlands:                  {"end_highlands", "end_highlands"},
	EndBarrens:                    {"end_barrens", "end_barrens"},
	WarmOcean:                     {"warm_ocean", "warm_ocean"},
	LukewarmOcean:                 {"lukewarm_ocean", "lukewarm_ocean"},
	ColdOcean:                     {"cold_ocean", "cold_ocean"},
	DeepWarmOcean:                 {"deep_warm_ocean", "deep_warm_ocean"},
	DeepLukewarmOcean:             {"deep_lukewarm_ocean", "deep_lukewarm_ocean"},
	DeepColdOcean:                 {"deep_cold_ocean", "deep_cold_ocean"},
	DeepFrozenOcean:               {"deep_frozen_ocean", "deep_frozen_ocean"},
	SeasonalForest:                {"seasonal_forest", "seasonal_forest"},
	Rainforest:                    {"rainforest", "rainforest"},
	Shrubland:                     {"shrubland", "shrubland"},
	TheVoid:                       {"the_void", "the_void"},
	SunflowerPlains:               {"sunflower_plains", "sunflower_plains"},
	DesertLakes:                   {"desert_lakes", "desert_lakes"},
	GravellyMountains:             {"gravelly_mountains", "windswept_gravelly_hills"},
	FlowerForest:                  {"flower_forest", "flower_forest"},
	TaigaMountains:                {"taiga_mountains", "taiga_mountains"},
	SwampHills:                    {"swamp_hills", "swamp_hills"},
	IceSpikes:                     {"ice_spikes", "ice_spikes"},
	ModifiedJungle:                {"modified_jungle", "modified_jungle"},
	ModifiedJungleEdge:            {"modified_jungle_edge", "modified_jungle_edge"},
	TallBirchForest:               {"tall_birch_forest", "old_growth_birch_forest"},
	TallBirchHills:                {"tall_birch_hills", "tall_birch_hills"},
	DarkForestHills:               {"dark_forest_hills", "dark_forest_hills"},
	SnowyTaigaMountains:           {"snowy_taiga_mountains", "snowy_taiga_mountains"},
	GiantSpruceTaiga:              {"giant_spruce_taiga", "old_growth_spruce_taiga"},
	GiantSpruceTaigaHills:         {"giant_spruce_taiga_hills", "giant_spruce_taiga_hills"},
	ModifiedGravellyMountains:     {"modified_gravelly_mountains", "modified_gravelly_mountains"},
	ShatteredSavanna:              {"shattered_savanna", "windswept_savanna"},
	ShatteredSavannaPlateau:       {"shattered_savanna_plateau", "shattered_savanna_plateau"},
	ErodedBadlands:                {"eroded_badlands", "eroded_badlands"},
	ModifiedWoodedBadlandsPlateau: {"modified_wooded_badlands_plateau", "modified_wooded_badlands_plateau"},
	ModifiedBadlandsPlateau:       {"modified_badlands_plateau", "modified_badlands_plateau"},
	BambooJungle:                  {"bamboo_jungle", "bamboo_jungle"},
	BambooJungleHills:             {"bamboo_jungle_hills", "bamboo_jungle_hills"},
	SoulSandValley:                {"soul_sand_valley", "soul_sand_valley"},
	CrimsonForest:                 {"crimson_forest", "crimson_forest"},
	WarpedForest:                  {"warped_forest", "warped_forest"},
	BasaltDeltas:                  {"basalt_deltas", "basalt_deltas"},
	DripstoneCaves:                {"dripstone_caves", "dripstone_caves"},
	LushCaves:                     {"lush_caves", "lush_caves"},
	Meadow:                        {"meadow", "meadow"},
	Grove:                         {"grove", "grove"},
	SnowySlopes:                   {"snowy_slopes", "snowy_slopes"},
	JaggedPeaks:                   {"jagged_peaks", "jagged_peaks"},
	FrozenPeaks:                   {"frozen_peaks", "frozen_peaks"},
	StonyPeaks:                    {"stony_peaks", "stony_peaks"},
	DeepDark:                      {"deep_dark", "deep_dark"},
	MangroveSwamp:                 {"mangrove_swamp", "mangrove_swamp"},
	CherryGrove:                   {"cherry_grove", "cherry_grove"},
	PaleGarden:                    {"pale_garden", "pale_garden"},
}

var biomesByName = func() map[string]Biome {
	m := make(map[string]Biome, len(biomeNames)*2)
	for b, info := range biomeNames {
		m[info.legacy] = b
		m[info.modern] = b
	}
	return m
}()

// Valid reports whether b is a known classification id.
func (b Biome) Valid() bool {
	_, ok := biomeNames[b]
	return ok
}

// Name returns the biome's resource name as used by the given version.
// Renamed biomes report their pre-1.18 name for older versions.
func (b Biome) Name(v Version) string {
	info, ok := biomeNames[b]
	if !ok {
		return ""
	}
	if v >= V1_18 {
		return info.modern
	}
	return info.legacy
}

// String returns the modern resource name.
func (b Biome) String() string {
	if info, ok := biomeNames[b]; ok {
		return info.modern
	}
	return fmt.Sprintf("Biome(%d)", int32(b))
}

// ParseBiome resolves a resource name in either its legacy or modern spelling.
func ParseBiome(name string) (Biome, error) {
	if b, ok := biomesByName[name]; ok {
		return b, nil
	}
	return BiomeNone, fmt.Errorf("unknown biome %q", name)
}

// Biomes returns every known biome id in ascending order.
func Biomes() []Biome {
	out := make([]Biome, 0, len(biomeNames))
	for id := Biome(0); id < 256; id++ {
		if id.Valid() {
			out = append(out, id)
		}
	}
	return out
}
