package synth

import (
	"github.com/OCharnyshevich/cubiomes-go/pkg/engine"
	"github.com/OCharnyshevich/cubiomes-go/pkg/mc"
)

// Noise field scales in blocks. Temperature and humidity vary slowly;
// continentalness decides land versus ocean; erosion decides mountains.
const (
	climateScale     = 1024.0
	continentScale   = 2048.0
	erosionScale     = 768.0
	riverScale       = 512.0
	endIslandRadius  = 1024
	deepDarkMaxY     = -32
	netherBiomeScale = 256.0
)

// classify returns the biome at block coordinates for the state's seed and dimension.
func (s *state) classify(x, y, z int32) mc.Biome {
	switch s.dim {
	case mc.Nether:
		return s.classifyNether(x, z)
	case mc.End:
		return s.classifyEnd(x, z)
	}
	return s.classifyOverworld(x, y, z)
}

func (s *state) classifyOverworld(x, y, z int32) mc.Biome {
	fx, fz := float64(x), float64(z)
	if s.flags&engine.LargeBiomes != 0 {
		fx, fz = fx/4, fz/4
	}

	temp := s.temperature.octave2D(fx/climateScale, fz/climateScale, 4, 0.5)*0.8 + 0.75
	rain := s.humidity.octave2D(fx/climateScale+100, fz/climateScale+100, 4, 0.5)*0.5 + 0.5
	cont := s.continental.octave2D(fx/continentScale, fz/continentScale, 5, 0.5)
	eros := s.erosion.octave2D(fx/erosionScale, fz/erosionScale, 4, 0.5)

	switch {
	case cont < -0.62:
		if cont < -0.7 && rain > 0.85 {
			return mc.MushroomFields
		}
		return s.ocean(temp, true)
	case cont < -0.3:
		return s.ocean(temp, false)
	case cont < -0.25:
		if temp < 0.3 {
			return mc.SnowyBeach
		}
		if eros < -0.4 {
			return mc.StoneShore
		}
		return mc.Beach
	}

	river := s.river.octave2D(fx/riverScale, fz/riverScale, 2, 0.5)
	if river > -0.025 && river < 0.025 && eros > -0.3 {
		if temp < 0.3 {
			return mc.FrozenRiver
		}
		return mc.River
	}

	if s.version >= mc.V1_19 && y <= deepDarkMaxY && eros > 0.2 {
		return mc.DeepDark
	}

	switch {
	case eros < -0.5:
		return s.peaks(temp)
	case eros < -0.3:
		return s.slopes(temp, rain)
	}
	return s.lowland(temp, rain)
}

func (s *state) ocean(temp float64, deep bool) mc.Biome {
	if s.version < mc.V1_13 {
		if deep {
			return mc.DeepOcean
		}
		if temp < 0.2 {
			return mc.FrozenOcean
		}
		return mc.Ocean
	}
	switch {
	case temp < 0.2:
		if deep {
			return mc.DeepFrozenOcean
		}
		return mc.FrozenOcean
	case temp < 0.5:
		if deep {
			return mc.DeepColdOcean
		}
		return mc.ColdOcean
	case temp < 0.9:
		if deep {
			return mc.DeepOcean
		}
		return mc.Ocean
	case temp < 1.2:
		if deep {
			return mc.DeepLukewarmOcean
		}
		return mc.LukewarmOcean
	}
	if deep && s.flags&engine.ForceOceanVariants != 0 {
		return mc.DeepWarmOcean
	}
	return mc.WarmOcean
}

func (s *state) peaks(temp float64) mc.Biome {
	if s.version < mc.V1_18 {
		if temp < 0.3 {
			return mc.SnowyMountains
		}
		return mc.Mountains
	}
	switch {
	case temp < 0.3:
		return mc.FrozenPeaks
	case temp < 0.7:
		return mc.JaggedPeaks
	}
	return mc.StonyPeaks
}

func (s *state) slopes(temp, rain float64) mc.Biome {
	if s.version < mc.V1_18 {
		if temp < 0.3 {
			return mc.SnowyMountains
		}
		return mc.WoodedMountains
	}
	switch {
	case temp < 0.3 && rain < 0.5:
		return mc.SnowySlopes
	case temp < 0.3:
		return mc.Grove
	case s.version >= mc.V1_20 && rain > 0.7:
		return mc.CherryGrove
	}
	return mc.Meadow
}

// lowland maps temperature and rainfall to a biome.
//
//	Temp\Rain     | Dry (<0.3)    | Medium (0.3-0.6) | Wet (>0.6)
//	Cold <0.3     | Snowy plains  | Snowy taiga      | Taiga
//	Mild 0.3-0.7  | Plains        | Forest           | Dark forest
//	Warm 0.7-1.2  | Savanna       | Plains/birch     | Jungle/swamp
//	Hot >1.2      | Desert        | Badlands         | Jungle
func (s *state) lowland(temp, rain float64) mc.Biome {
	switch {
	case temp < 0.3:
		switch {
		case rain < 0.3:
			return mc.SnowyTundra
		case rain < 0.6:
			return mc.SnowyTaiga
		default:
			return mc.Taiga
		}
	case temp < 0.7:
		switch {
		case rain < 0.3:
			return mc.Plains
		case rain < 0.6:
			return mc.Forest
		default:
			return mc.DarkForest
		}
	case temp < 1.2:
		switch {
		case rain < 0.3:
			return mc.Savanna
		case rain < 0.45:
			return mc.Plains
		case rain < 0.6:
			return mc.BirchForest
		case rain > 0.85:
			if s.version >= mc.V1_19 {
				return mc.MangroveSwamp
			}
			return mc.Swamp
		default:
			return mc.Jungle
		}
	default:
		switch {
		case rain < 0.3:
			return mc.Desert
		case rain < 0.6:
			return mc.Badlands
		default:
			if s.version >= mc.V1_14 && rain > 0.8 {
				return mc.BambooJungle
			}
			return mc.Jungle
		}
	}
}

func (s *state) classifyNether(x, z int32) mc.Biome {
	if s.version < mc.V1_16_1 {
		return mc.NetherWastes
	}
	v := s.temperature.octave2D(float64(x)/netherBiomeScale, float64(z)/netherBiomeScale, 3, 0.5)
	switch {
	case v < -0.4:
		return mc.SoulSandValley
	case v < -0.1:
		return mc.CrimsonForest
	case v < 0.2:
		return mc.NetherWastes
	case v < 0.45:
		return mc.WarpedForest
	}
	return mc.BasaltDeltas
}

func (s *state) classifyEnd(x, z int32) mc.Biome {
	if s.version < mc.V1_9 {
		return mc.TheEnd
	}
	if int64(x)*int64(x)+int64(z)*int64(z) <= endIslandRadius*endIslandRadius {
		return mc.TheEnd
	}
	v := s.continental.octave2D(float64(x)/climateScale, float64(z)/climateScale, 3, 0.5)
	switch {
	case v < -0.3:
		return mc.SmallEndIslands
	case v < 0:
		return mc.EndBarrens
	case v < 0.3:
		return mc.EndMidlands
	}
	return mc.EndHighlands
}
