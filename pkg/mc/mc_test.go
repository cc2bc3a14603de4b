package mc

import "testing"

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in   string
		want Version
	}{
		{"Beta 1.7", VB1_7},
		{"1.15.2", V1_15},
		{"1.15", V1_15},
		{"1.10.2", V1_10},
		{"1.21", V1_21_WD},
		{"1.21 WD", V1_21_WD},
		{"1.16.1", V1_16_1},
		{"1.16.5", V1_16},
	}
	for _, tt := range tests {
		got, err := ParseVersion(tt.in)
		if err != nil {
			t.Errorf("ParseVersion(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseVersion(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseVersion("2.0"); err == nil {
		t.Error("ParseVersion(\"2.0\") should fail")
	}
}

func TestVersionString(t *testing.T) {
	if got := V1_15.String(); got != "1.15" {
		t.Errorf("V1_15.String() = %q, want %q", got, "1.15")
	}
	for _, v := range Versions() {
		back, err := ParseVersion(v.String())
		if err != nil || back != v {
			t.Errorf("ParseVersion(%q) = %v, %v; want %v", v.String(), back, err, v)
		}
	}
	if VersionUndef.Valid() {
		t.Error("VersionUndef should not be valid")
	}
}

func TestBiomeNames(t *testing.T) {
	tests := []struct {
		biome   Biome
		version Version
		want    string
	}{
		{Badlands, V1_6, "badlands"},
		{StonyShore, V1_18, "stony_shore"},
		{StoneShore, V1_6, "stone_shore"},
		{MushroomIsland, Newest, "mushroom_fields"},
		{Meadow, Newest, "meadow"},
		{SnowySlopes, Newest, "snowy_slopes"},
	}
	for _, tt := range tests {
		if got := tt.biome.Name(tt.version); got != tt.want {
			t.Errorf("%d.Name(%v) = %q, want %q", tt.biome, tt.version, got, tt.want)
		}
	}
}

func TestBiomesCount(t *testing.T) {
	if got := len(Biomes()); got != 94 {
		t.Errorf("len(Biomes()) = %d, want 94", got)
	}
	if Biome(54).Valid() {
		t.Error("Biome(54) should not be valid")
	}
	if BiomeNone.Valid() {
		t.Error("BiomeNone should not be valid")
	}
}

func TestParseBiome(t *testing.T) {
	for _, name := range []string{"stone_shore", "stony_shore"} {
		b, err := ParseBiome(name)
		if err != nil {
			t.Fatalf("ParseBiome(%q): %v", name, err)
		}
		if b != StoneShore {
			t.Errorf("ParseBiome(%q) = %d, want %d", name, b, StoneShore)
		}
	}
}

func TestStructureNames(t *testing.T) {
	tests := []struct {
		s    Structure
		want string
	}{
		{Bastion, "bastion_remnant"},
		{Shipwreck, "shipwreck"},
		{EndCity, "end_city"},
		{Igloo, "igloo"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("Structure(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
		back, err := ParseStructure(tt.want)
		if err != nil || back != tt.s {
			t.Errorf("ParseStructure(%q) = %v, %v; want %v", tt.want, back, err, tt.s)
		}
	}
	if s, err := ParseStructure("Igloo"); err != nil || s != Igloo {
		t.Errorf("ParseStructure(\"Igloo\") = %v, %v", s, err)
	}
	if Structure(99).Valid() {
		t.Error("Structure(99) should not be valid")
	}
}

func TestParseDimension(t *testing.T) {
	for in, want := range map[string]Dimension{"overworld": Overworld, "Nether": Nether, "the_end": End} {
		got, err := ParseDimension(in)
		if err != nil || got != want {
			t.Errorf("ParseDimension(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseDimension("aether"); err == nil {
		t.Error("ParseDimension(\"aether\") should fail")
	}
}
