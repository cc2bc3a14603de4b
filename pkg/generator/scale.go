package generator

import (
	"fmt"
	"math"

	"github.com/OCharnyshevich/cubiomes-go/pkg/engine"
)

// Scale is the number of blocks one coordinate unit spans.
type Scale int32

const (
	Block      Scale = 1
	Quad       Scale = 4
	Chunk      Scale = 16
	QuadChunk  Scale = 64
	HalfRegion Scale = 256
)

// Scales lists every supported scale from finest to coarsest.
func Scales() []Scale {
	return []Scale{Block, Quad, Chunk, QuadChunk, HalfRegion}
}

// Valid reports whether s is one of the supported scales.
func (s Scale) Valid() bool {
	switch s {
	case Block, Quad, Chunk, QuadChunk, HalfRegion:
		return true
	}
	return false
}

func (s Scale) String() string {
	return fmt.Sprintf("1:%d", int32(s))
}

// ParseScale converts a block factor such as 4 into a Scale.
func ParseScale(n int) (Scale, error) {
	s := Scale(n)
	if !s.Valid() {
		return 0, fmt.Errorf("scale %d: %w", n, ErrInvalidInput)
	}
	return s, nil
}

// ScaleCoord converts a block coordinate to s. Division truncates toward
// zero, which is how the engine scales coordinates.
func (s Scale) ScaleCoord(n int32) int32 {
	return n / int32(s)
}

// UnscaleCoord converts a coordinate in s back to blocks. It inverts
// ScaleCoord only for coordinates already aligned to s.
func (s Scale) UnscaleCoord(n int32) int32 {
	return n * int32(s)
}

// MaxRangeCells bounds the number of cells of one Range, which the engine
// counts in a signed 32-bit integer.
const MaxRangeCells = math.MaxInt32

// Range is a cuboid of cells at one scale. X, Z and Y are the origin in
// scale units; the extent on each axis is half-open. SizeY of zero means a
// single plane.
type Range struct {
	Scale        Scale
	X, Z         int32
	SizeX, SizeZ uint32
	Y            int32
	SizeY        uint32
}

// NewRange returns a validated Range.
func NewRange(scale Scale, x, z int32, sizeX, sizeZ uint32, y int32, sizeY uint32) (Range, error) {
	r := Range{Scale: scale, X: x, Z: z, SizeX: sizeX, SizeZ: sizeZ, Y: y, SizeY: sizeY}
	if err := r.Validate(); err != nil {
		return Range{}, err
	}
	return r, nil
}

// Validate reports why r cannot be handed to the engine, or nil.
func (r Range) Validate() error {
	if !r.Scale.Valid() {
		return fmt.Errorf("range scale %d: %w", int32(r.Scale), ErrInvalidInput)
	}
	if r.SizeX == 0 {
		return &RangeError{Axis: AxisX, Size: 0}
	}
	if r.SizeZ == 0 {
		return &RangeError{Axis: AxisZ, Size: 0}
	}
	if r.SizeX > math.MaxInt32 {
		return &RangeError{Axis: AxisX, Size: uint64(r.SizeX)}
	}
	if r.SizeZ > math.MaxInt32 {
		return &RangeError{Axis: AxisZ, Size: uint64(r.SizeZ)}
	}
	if r.SizeY > math.MaxInt32 {
		return &RangeError{Axis: AxisY, Size: uint64(r.SizeY)}
	}
	if cells := r.Cells(); cells > MaxRangeCells {
		return &RangeError{Axis: AxisVolume, Size: cells}
	}
	return nil
}

// Planes is the number of horizontal planes, with SizeY of zero counting as one.
func (r Range) Planes() uint32 {
	return max(r.SizeY, 1)
}

// Cells is the number of readable cells: SizeX*SizeZ*max(SizeY,1).
func (r Range) Cells() uint64 {
	return uint64(r.SizeX) * uint64(r.SizeZ) * uint64(r.Planes())
}

// IsInside reports whether the scaled coordinate (x, z) lies in
// [X, X+SizeX) x [Z, Z+SizeZ).
func (r Range) IsInside(x, z int32) bool {
	dx := int64(x) - int64(r.X)
	dz := int64(z) - int64(r.Z)
	return dx >= 0 && dx < int64(r.SizeX) && dz >= 0 && dz < int64(r.SizeZ)
}

// GlobalToLocal translates a scaled coordinate into cache-local offsets.
// The result is false when (x, z) is outside the range.
func (r Range) GlobalToLocal(x, z int32) (lx, lz uint32, ok bool) {
	if !r.IsInside(x, z) {
		return 0, 0, false
	}
	return uint32(int64(x) - int64(r.X)), uint32(int64(z) - int64(r.Z)), true
}

func (r Range) engineRange() engine.Range {
	return engine.Range{
		Scale: int32(r.Scale),
		X:     r.X,
		Z:     r.Z,
		SX:    int32(r.SizeX),
		SZ:    int32(r.SizeZ),
		Y:     r.Y,
		SY:    int32(r.SizeY),
	}
}

// Position is a block position on the horizontal plane.
type Position struct {
	X, Z int32
}

// NewPosition returns the block position (x, z).
func NewPosition(x, z int32) Position {
	return Position{X: x, Z: z}
}

// FromScaled returns the block position of the scaled coordinate (x, z).
func FromScaled(x, z int32, s Scale) Position {
	return Position{X: s.UnscaleCoord(x), Z: s.UnscaleCoord(z)}
}

// Scaled returns p in s, truncating like ScaleCoord.
func (p Position) Scaled(s Scale) (x, z int32) {
	return s.ScaleCoord(p.X), s.ScaleCoord(p.Z)
}

// FloorDiv divides both coordinates by n rounding toward negative infinity.
// n must be positive.
func (p Position) FloorDiv(n int32) Position {
	return Position{X: floorDiv(p.X, n), Z: floorDiv(p.Z, n)}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Z)
}

func floorDiv(a, n int32) int32 {
	q := a / n
	if a%n != 0 && (a < 0) != (n < 0) {
		q--
	}
	return q
}

func fromEngine(p engine.Pos) Position {
	return Position{X: p.X, Z: p.Z}
}
