package mc

import (
	"fmt"
	"strings"
)

// Structure identifies a structure type known to the engine.
type Structure int32

const (
	Feature Structure = iota
	DesertPyramid
	JungleTemple
	SwampHut
	Igloo
	Village
	OceanRuin
	Shipwreck
	Monument
	Mansion
	Outpost
	RuinedPortal
	RuinedPortalNether
	AncientCity
	Treasure
	Mineshaft
	DesertWell
	Geode
	Fortress
	Bastion
	EndCity
	EndGateway
	EndIsland
	TrailRuins
	TrialChambers
)

var structureNames = [...]string{
	Feature:            "feature",
	DesertPyramid:      "desert_pyramid",
	JungleTemple:       "jungle_pyramid",
	SwampHut:           "swamp_hut",
	Igloo:              "igloo",
	Village:            "village",
	OceanRuin:          "ocean_ruin",
	Shipwreck:          "shipwreck",
	Monument:           "monument",
	Mansion:            "mansion",
	Outpost:            "pillager_outpost",
	RuinedPortal:       "ruined_portal",
	RuinedPortalNether: "ruined_portal_nether",
	AncientCity:        "ancient_city",
	Treasure:           "buried_treasure",
	Mineshaft:          "mineshaft",
	DesertWell:         "desert_well",
	Geode:              "amethyst_geode",
	Fortress:           "fortress",
	Bastion:            "bastion_remnant",
	EndCity:            "end_city",
	EndGateway:         "end_gateway",
	EndIsland:          "end_island",
	TrailRuins:         "trail_ruins",
	TrialChambers:      "trial_chambers",
}

// structureAliases are the short spellings accepted on the command line.
var structureAliases = map[string]Structure{
	"jungle_temple": JungleTemple,
	"outpost":       Outpost,
	"treasure":      Treasure,
	"geode":         Geode,
	"bastion":       Bastion,
	"witch_hut":     SwampHut,
}

// String returns the engine's resource name for s, e.g. "bastion_remnant".
func (s Structure) String() string {
	if s.Valid() {
		return structureNames[s]
	}
	return fmt.Sprintf("Structure(%d)", int32(s))
}

// Valid reports whether s is a known structure type.
func (s Structure) Valid() bool {
	return s >= 0 && int(s) < len(structureNames)
}

// ParseStructure resolves a structure resource name. Matching ignores case, so
// "Igloo" and "igloo" are equivalent.
func ParseStructure(name string) (Structure, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range structureNames {
		if n == key {
			return Structure(i), nil
		}
	}
	if s, ok := structureAliases[key]; ok {
		return s, nil
	}
	return 0, fmt.Errorf("unknown structure %q", name)
}
