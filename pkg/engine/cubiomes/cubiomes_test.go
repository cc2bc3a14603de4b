//go:build cgo && cubiomes

package cubiomes

import (
	"testing"

	"github.com/OCharnyshevich/cubiomes-go/pkg/generator"
	"github.com/OCharnyshevich/cubiomes-go/pkg/mc"
)

func mustVersion(t *testing.T, name string) mc.Version {
	t.Helper()
	v, err := mc.ParseVersion(name)
	if err != nil {
		t.Fatalf("ParseVersion(%q): %v", name, err)
	}
	return v
}

func TestMushroomIsland(t *testing.T) {
	g, err := generator.New(New(), mustVersion(t, "1.21"), -4804349703814383506, mc.Overworld, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer g.Close()

	b, err := g.BiomeAt(700, 256, -2300)
	if err != nil {
		t.Fatalf("BiomeAt: %v", err)
	}
	if b != mc.MushroomFields {
		t.Errorf("BiomeAt(700, 256, -2300) = %v, want mushroom_fields", b)
	}
}

func TestCacheMeadowAndSlopes(t *testing.T) {
	g, err := generator.New(New(), mustVersion(t, "1.21"), -1693727681172482083, mc.Overworld, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer g.Close()

	r, err := generator.NewRange(generator.Block, -128, -128, 16, 16, 64, 0)
	if err != nil {
		t.Fatalf("NewRange: %v", err)
	}
	c, err := g.NewCache(r)
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}
	defer c.Close()
	if err := c.Fill(); err != nil {
		t.Fatalf("Fill: %v", err)
	}

	tests := []struct {
		x, z uint32
		want mc.Biome
	}{
		{5, 6, mc.Meadow},
		{15, 15, mc.SnowySlopes},
	}
	for _, tt := range tests {
		got, err := c.BiomeAt(tt.x, 0, tt.z)
		if err != nil {
			t.Fatalf("BiomeAt(%d, 0, %d): %v", tt.x, tt.z, err)
		}
		if got != tt.want {
			t.Errorf("BiomeAt(%d, 0, %d) = %v, want %v", tt.x, tt.z, got, tt.want)
		}
	}

	// Every cell agrees with a point query.
	for z := r.Z; z < r.Z+int32(r.SizeZ); z++ {
		for x := r.X; x < r.X+int32(r.SizeX); x++ {
			lx, lz, _ := r.GlobalToLocal(x, z)
			cached, _ := c.BiomeAt(lx, 0, lz)
			point, err := g.BiomeAt(x, r.Y, z)
			if err != nil {
				t.Fatalf("BiomeAt: %v", err)
			}
			if cached != point {
				t.Fatalf("(%d, %d): cache %v, point %v", x, z, cached, point)
			}
		}
	}
}

func TestIglooAttemptInFirstChunk(t *testing.T) {
	r, err := generator.NewStructureRegion(New(), 0, 0, mustVersion(t, "1.21"), mc.Igloo)
	if err != nil {
		t.Fatalf("NewStructureRegion: %v", err)
	}
	const maxTrials = 1_000_000
	for low := int64(0); low < maxTrials; low++ {
		pos, ok := r.GenerationAttempt(low)
		if ok && pos.X >= 0 && pos.X < 16 && pos.Z >= 0 && pos.Z < 16 {
			return
		}
	}
	t.Fatalf("no igloo attempt in chunk (0, 0) within %d trials", maxTrials)
}

func TestStrongholdCount(t *testing.T) {
	g, err := generator.New(New(), mc.Newest, 1, mc.Overworld, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer g.Close()

	seq, err := g.Strongholds()
	if err != nil {
		t.Fatalf("Strongholds: %v", err)
	}
	n := seq.Remaining()
	count := 0
	for range seq.All() {
		count++
	}
	if n != 128 || count != n {
		t.Errorf("Remaining() = %d, yielded %d; want 128", n, count)
	}
}

func TestStrongholdCursorCountsFollowing(t *testing.T) {
	tests := []struct {
		version string
		total   int32
	}{
		{"1.21", 128},
		{"1.8", 3},
	}
	for _, tt := range tests {
		v := mustVersion(t, tt.version)
		e := New()
		st := e.Setup(v, 0)
		st.ApplySeed(mc.Overworld, 1)

		cur := e.FirstStronghold(v, 1)
		for i := int32(1); i <= tt.total; i++ {
			if got, want := cur.Next(st), tt.total-i; got != want {
				t.Errorf("%s: Next() #%d = %d, want %d", tt.version, i, got, want)
				break
			}
		}
		st.Free()
	}
}

func TestStrongholdCountLegacy(t *testing.T) {
	g, err := generator.New(New(), mustVersion(t, "1.8"), 1, mc.Overworld, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer g.Close()

	seq, err := g.Strongholds()
	if err != nil {
		t.Fatalf("Strongholds: %v", err)
	}
	count := 0
	for range seq.All() {
		count++
	}
	if count != 3 {
		t.Errorf("yielded %d strongholds, want 3", count)
	}
}

func TestNamesMatchLibrary(t *testing.T) {
	for _, b := range mc.Biomes() {
		if want := BiomeName(mc.Newest, b); want != "" && b.Name(mc.Newest) != want {
			t.Errorf("biome %d: Name = %q, library %q", int32(b), b.Name(mc.Newest), want)
		}
	}
	for s := mc.Feature; s <= mc.TrialChambers; s++ {
		if want := StructureName(s); want != "" && s.String() != want {
			t.Errorf("structure %d: String = %q, library %q", int(s), s.String(), want)
		}
	}
}
