package generator

import (
	"errors"
	"testing"

	"github.com/OCharnyshevich/cubiomes-go/pkg/engine/synth"
	"github.com/OCharnyshevich/cubiomes-go/pkg/mc"
)

func newTestGenerator(t *testing.T, seed int64) *Generator {
	t.Helper()
	g, err := New(synth.New(), mc.Newest, seed, mc.Overworld, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { g.Close() })
	return g
}

func TestNewRejectsBadInput(t *testing.T) {
	if _, err := New(synth.New(), mc.VersionUndef, 1, mc.Overworld, 0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("undefined version: err = %v, want ErrInvalidInput", err)
	}
	if _, err := New(synth.New(), mc.Newest, 1, mc.Dimension(7), 0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("bad dimension: err = %v, want ErrInvalidInput", err)
	}
	if _, err := New(nil, mc.Newest, 1, mc.Overworld, 0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("nil engine: err = %v, want ErrInvalidInput", err)
	}
}

func TestGeneratorAccessors(t *testing.T) {
	g, err := New(synth.New(), mc.V1_16, -42, mc.Nether, 0x1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer g.Close()

	if g.Version() != mc.V1_16 || g.Seed() != -42 || g.Dimension() != mc.Nether || g.Flags() != 0x1 {
		t.Errorf("accessors = %v %d %v %d", g.Version(), g.Seed(), g.Dimension(), g.Flags())
	}
	if g.Engine().Name() != synth.Name {
		t.Errorf("Engine().Name() = %q, want %q", g.Engine().Name(), synth.Name)
	}
}

func TestBiomeAtDeterministic(t *testing.T) {
	a := newTestGenerator(t, -4804349703814383506)
	b := newTestGenerator(t, -4804349703814383506)

	for i := int32(0); i < 50; i++ {
		x, z := i*173-4000, i*-211+2500
		ba, err := a.BiomeAt(x, 64, z)
		if err != nil {
			t.Fatalf("BiomeAt: %v", err)
		}
		again, _ := a.BiomeAt(x, 64, z)
		bb, _ := b.BiomeAt(x, 64, z)
		if ba != again || ba != bb {
			t.Fatalf("BiomeAt(%d, 64, %d) = %v, %v, %v; want identical", x, z, ba, again, bb)
		}
	}
}

func TestUninitializedNotReady(t *testing.T) {
	g, err := NewUninitialized(synth.New(), mc.Newest, 0)
	if err != nil {
		t.Fatalf("NewUninitialized: %v", err)
	}
	defer g.Close()

	if _, err := g.BiomeAt(0, 64, 0); !errors.Is(err, ErrEngineNotReady) {
		t.Errorf("BiomeAt before seed: err = %v, want ErrEngineNotReady", err)
	}
	r := Range{Scale: Block, SizeX: 4, SizeZ: 4}
	if err := g.Fill(r, make([]int32, 16)); !errors.Is(err, ErrEngineNotReady) {
		t.Errorf("Fill before seed: err = %v, want ErrEngineNotReady", err)
	}
	if _, err := g.Strongholds(); !errors.Is(err, ErrEngineNotReady) {
		t.Errorf("Strongholds before seed: err = %v, want ErrEngineNotReady", err)
	}

	if err := g.ApplySeed(mc.Overworld, 99); err != nil {
		t.Fatalf("ApplySeed: %v", err)
	}
	if _, err := g.BiomeAt(0, 64, 0); err != nil {
		t.Errorf("BiomeAt after seed: %v", err)
	}
}

func TestApplySeedMatchesFreshGenerator(t *testing.T) {
	reused := newTestGenerator(t, 1)
	for _, seed := range []int64{2, -3, 1 << 60} {
		if err := reused.ApplySeed(mc.Overworld, seed); err != nil {
			t.Fatalf("ApplySeed(%d): %v", seed, err)
		}
		fresh := newTestGenerator(t, seed)
		for i := int32(0); i < 20; i++ {
			x, z := i*401, -i*353
			a, _ := reused.BiomeAt(x, 64, z)
			b, _ := fresh.BiomeAt(x, 64, z)
			if a != b {
				t.Fatalf("seed %d at (%d, %d): reused %v, fresh %v", seed, x, z, a, b)
			}
		}
	}
}

func TestBiomeAtScale(t *testing.T) {
	g := newTestGenerator(t, 7)
	if _, err := g.BiomeAtScale(Quad, 10, 16, 10); err != nil {
		t.Errorf("BiomeAtScale(Quad): %v", err)
	}
	if _, err := g.BiomeAtScale(Chunk, 10, 16, 10); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("BiomeAtScale(Chunk): err = %v, want ErrInvalidInput", err)
	}
}

func TestBiomeAtContractViolation(t *testing.T) {
	eng := &faultyEngine{Engine: synth.New(), biome: ptr(9999)}
	g, err := New(eng, mc.Newest, 1, mc.Overworld, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer g.Close()

	_, err = g.BiomeAt(0, 64, 0)
	var ce *ContractError
	if !errors.As(err, &ce) || ce.Raw != 9999 {
		t.Fatalf("BiomeAt err = %v, want ContractError with raw 9999", err)
	}
	if !errors.Is(err, ErrContractViolation) {
		t.Error("ContractError should match ErrContractViolation")
	}

	eng.biome = ptr(-1)
	if _, err := g.BiomeAt(0, 64, 0); !errors.Is(err, ErrEngineNotReady) {
		t.Errorf("engine -1: err = %v, want ErrEngineNotReady", err)
	}
}

func TestFillFailure(t *testing.T) {
	eng := &faultyEngine{Engine: synth.New(), fill: ptr(3)}
	g, err := New(eng, mc.Newest, 1, mc.Overworld, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer g.Close()

	r := Range{Scale: Block, SizeX: 4, SizeZ: 4}
	err = g.Fill(r, make([]int32, 16))
	var fe *FillError
	if !errors.As(err, &fe) || fe.Code != 3 {
		t.Fatalf("Fill err = %v, want FillError code 3", err)
	}
	if !errors.Is(err, ErrEngineFailure) {
		t.Error("FillError should match ErrEngineFailure")
	}
}

func TestFillShortBuffer(t *testing.T) {
	g := newTestGenerator(t, 1)
	r := Range{Scale: Block, SizeX: 4, SizeZ: 4}
	n, err := g.MinimumRequiredSize(r)
	if err != nil {
		t.Fatalf("MinimumRequiredSize: %v", err)
	}
	if n < 16 {
		t.Fatalf("MinimumRequiredSize = %d, want at least 16", n)
	}
	if err := g.Fill(r, make([]int32, n-1)); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Fill short buffer: err = %v, want ErrInvalidInput", err)
	}
}

func TestCloseFreesOnce(t *testing.T) {
	eng := &faultyEngine{Engine: synth.New()}
	g, err := New(eng, mc.Newest, 1, mc.Overworld, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := g.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := g.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if eng.frees != 1 {
		t.Errorf("Free called %d times, want 1", eng.frees)
	}

	if _, err := g.BiomeAt(0, 0, 0); !errors.Is(err, ErrClosed) {
		t.Errorf("BiomeAt after Close: err = %v, want ErrClosed", err)
	}
	if err := g.ApplySeed(mc.Overworld, 2); !errors.Is(err, ErrClosed) {
		t.Errorf("ApplySeed after Close: err = %v, want ErrClosed", err)
	}
	if _, err := g.NewCache(Range{Scale: Block, SizeX: 1, SizeZ: 1}); !errors.Is(err, ErrClosed) {
		t.Errorf("NewCache after Close: err = %v, want ErrClosed", err)
	}
}

func TestBorrowGuard(t *testing.T) {
	g := newTestGenerator(t, 5)

	c, err := g.NewCache(Range{Scale: Block, SizeX: 2, SizeZ: 2})
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}
	if err := g.ApplySeed(mc.Overworld, 6); !errors.Is(err, ErrBorrowed) {
		t.Errorf("ApplySeed with cache: err = %v, want ErrBorrowed", err)
	}
	if err := g.Close(); !errors.Is(err, ErrBorrowed) {
		t.Errorf("Close with cache: err = %v, want ErrBorrowed", err)
	}
	if g.Seed() != 5 {
		t.Errorf("Seed() = %d after refused ApplySeed, want 5", g.Seed())
	}

	c.Close()
	c.Close()
	if err := g.ApplySeed(mc.Overworld, 6); err != nil {
		t.Errorf("ApplySeed after cache Close: %v", err)
	}
}
