package generator

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/OCharnyshevich/cubiomes-go/pkg/engine/synth"
	"github.com/OCharnyshevich/cubiomes-go/pkg/mc"
)

func TestStructureRegionLookupMiss(t *testing.T) {
	_, err := NewStructureRegion(synth.New(), 0, 0, mc.V1_12, mc.AncientCity)
	if !errors.Is(err, ErrLookupMiss) {
		t.Errorf("ancient city in 1.12: err = %v, want ErrLookupMiss", err)
	}
}

func TestStructureRegionSize(t *testing.T) {
	tests := []struct {
		s    mc.Structure
		v    mc.Version
		want int32
	}{
		{mc.Igloo, mc.Newest, 32},
		{mc.Village, mc.V1_17, 32},
		{mc.Village, mc.V1_18, 34},
		{mc.Mansion, mc.Newest, 80},
	}
	for _, tt := range tests {
		r, err := NewStructureRegion(synth.New(), 0, 0, tt.v, tt.s)
		if err != nil {
			t.Fatalf("NewStructureRegion(%v, %v): %v", tt.s, tt.v, err)
		}
		if r.RegionSizeChunks() != tt.want || r.RegionSizeBlocks() != tt.want*16 {
			t.Errorf("%v %v: size = %d chunks, want %d", tt.s, tt.v, r.RegionSizeChunks(), tt.want)
		}
	}
}

func TestStructureRegionFromPositionFloors(t *testing.T) {
	tests := []struct {
		pos    Position
		rx, rz int32
	}{
		{Position{0, 0}, 0, 0},
		{Position{511, 511}, 0, 0},
		{Position{512, -1}, 1, -1},
		{Position{-512, -513}, -1, -2},
	}
	for _, tt := range tests {
		r, err := StructureRegionFromPosition(synth.New(), tt.pos, mc.Newest, mc.Igloo)
		if err != nil {
			t.Fatalf("StructureRegionFromPosition: %v", err)
		}
		if r.X != tt.rx || r.Z != tt.rz {
			t.Errorf("region of %v = (%d, %d), want (%d, %d)", tt.pos, r.X, r.Z, tt.rx, tt.rz)
		}
		if !r.Contains(tt.pos) {
			t.Errorf("region (%d, %d) should contain %v", r.X, r.Z, tt.pos)
		}
	}
}

func TestGenerationAttemptDeterministic(t *testing.T) {
	r, err := NewStructureRegion(synth.New(), -3, 7, mc.Newest, mc.Village)
	if err != nil {
		t.Fatalf("NewStructureRegion: %v", err)
	}
	a, okA := r.GenerationAttempt(123456789)
	b, okB := r.GenerationAttempt(123456789)
	if a != b || okA != okB {
		t.Fatalf("attempts differ: %v/%v, %v/%v", a, okA, b, okB)
	}
	if okA && !r.Contains(a) {
		t.Errorf("attempt %v outside region (-3, 7)", a)
	}

	// The upper 16 bits of the seed do not move the attempt.
	c, okC := r.GenerationAttempt(123456789 | 0x7abc<<48)
	if c != a || okC != okA {
		t.Errorf("attempt with upper bits = %v/%v, want %v/%v", c, okC, a, okA)
	}
}

func TestVerifyDeterministic(t *testing.T) {
	g := newTestGenerator(t, 31337)
	r, err := NewStructureRegion(g.Engine(), 1, 1, g.Version(), mc.Village)
	if err != nil {
		t.Fatalf("NewStructureRegion: %v", err)
	}
	pos, ok := r.GenerationAttempt(g.Seed())
	if !ok {
		t.Fatal("village region has no attempt")
	}
	first, err := g.VerifyGenerationAttempt(pos, mc.Village)
	if err != nil {
		t.Fatalf("VerifyGenerationAttempt: %v", err)
	}
	for range 5 {
		if v, _ := g.VerifyGenerationAttempt(pos, mc.Village); v != first {
			t.Fatalf("VerifyGenerationAttempt changed from %v to %v", first, v)
		}
	}

	got, found, err := g.TryGenerateInRegion(r)
	if err != nil {
		t.Fatalf("TryGenerateInRegion: %v", err)
	}
	if found != first || (found && got != pos) {
		t.Errorf("TryGenerateInRegion = %v, %v; want %v, %v", got, found, pos, first)
	}
}

func TestVerifyContractViolation(t *testing.T) {
	eng := &faultyEngine{Engine: synth.New(), viable: ptr(2)}
	g, err := New(eng, mc.Newest, 1, mc.Overworld, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer g.Close()

	_, err = g.VerifyGenerationAttempt(Position{}, mc.Village)
	var ce *ContractError
	if !errors.As(err, &ce) || ce.Raw != 2 {
		t.Fatalf("Verify err = %v, want ContractError with raw 2", err)
	}

	r, err := NewStructureRegion(eng, 0, 0, mc.Newest, mc.Village)
	if err != nil {
		t.Fatalf("NewStructureRegion: %v", err)
	}
	if _, _, err := g.TryGenerateInRegion(r); !errors.Is(err, ErrContractViolation) {
		t.Errorf("TryGenerateInRegion err = %v, want ErrContractViolation", err)
	}
}

func TestTryGenerateSeesOneSeed(t *testing.T) {
	eng := &faultyEngine{Engine: synth.New()}
	g, err := New(eng, mc.Newest, 1111, mc.Overworld, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer g.Close()

	r, err := NewStructureRegion(eng, 0, 0, mc.Newest, mc.Village)
	if err != nil {
		t.Fatalf("NewStructureRegion: %v", err)
	}

	var wg sync.WaitGroup
	eng.onAttempt = func() {
		eng.onAttempt = nil
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := g.ApplySeed(mc.Overworld, 2222); err != nil {
				t.Errorf("ApplySeed: %v", err)
			}
		}()
		// Give the reseed a chance to slip in before verification.
		time.Sleep(20 * time.Millisecond)
	}
	if _, _, err := g.TryGenerateInRegion(r); err != nil {
		t.Fatalf("TryGenerateInRegion: %v", err)
	}
	wg.Wait()

	if eng.attemptSeed != 1111 || eng.viableSeed != 1111 {
		t.Errorf("attempt used seed %d, verification seed %d; want both 1111", eng.attemptSeed, eng.viableSeed)
	}
	if g.Seed() != 2222 {
		t.Errorf("Seed() = %d after the concurrent reseed, want 2222", g.Seed())
	}
}

func TestTryGenerateVersionMismatch(t *testing.T) {
	g := newTestGenerator(t, 1)
	r, err := NewStructureRegion(g.Engine(), 0, 0, mc.V1_16, mc.Village)
	if err != nil {
		t.Fatalf("NewStructureRegion: %v", err)
	}
	if _, _, err := g.TryGenerateInRegion(r); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

// The first phase of a seed search only needs the low 48 bits, and an igloo
// in region (0, 0) lands in the first chunk often enough to be found quickly.
func TestIglooAttemptSearchTerminates(t *testing.T) {
	r, err := NewStructureRegion(synth.New(), 0, 0, mc.Newest, mc.Igloo)
	if err != nil {
		t.Fatalf("NewStructureRegion: %v", err)
	}
	const maxTrials = 100000
	for low := int64(0); low < maxTrials; low++ {
		pos, ok := r.GenerationAttempt(low)
		if ok && pos.X >= 0 && pos.X < 16 && pos.Z >= 0 && pos.Z < 16 {
			return
		}
	}
	t.Fatalf("no igloo attempt in chunk (0, 0) within %d trials", maxTrials)
}
