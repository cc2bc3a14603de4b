package generator

import (
	"fmt"
	"strings"
	"sync"

	"github.com/OCharnyshevich/cubiomes-go/pkg/mc"
)

// Cache materialises the biomes of a Range with one engine call. It borrows
// its Generator until Close. A Cache is not safe for concurrent use.
type Cache struct {
	g   *Generator
	r   Range
	buf []int32

	// filled is the readable prefix of buf; zero until a successful Fill.
	filled int

	closed      bool
	releaseOnce sync.Once
}

// NewCache validates r and allocates a buffer for it. SizeY of zero becomes one.
func NewCache(g *Generator, r Range) (*Cache, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	r.SizeY = r.Planes()

	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.closed {
		return nil, ErrClosed
	}
	c := &Cache{
		g:   g,
		r:   r,
		buf: make([]int32, g.minSize(r)),
	}
	g.borrow()
	return c, nil
}

// NewCache is shorthand for NewCache(g, r).
func (g *Generator) NewCache(r Range) (*Cache, error) {
	return NewCache(g, r)
}

// Range returns the range the cache currently covers.
func (c *Cache) Range() Range {
	return c.r
}

// Fill computes the range with the generator's current seed and dimension.
// After a failure nothing can be read until the next successful Fill.
func (c *Cache) Fill() error {
	if c.closed {
		return ErrClosed
	}
	c.filled = 0
	if err := c.g.Fill(c.r, c.buf); err != nil {
		return err
	}
	c.filled = int(c.r.Cells())
	return nil
}

// BiomeAt returns the biome at the local offset (x, y, z) of the last fill.
func (c *Cache) BiomeAt(x, y, z uint32) (mc.Biome, error) {
	if c.closed {
		return mc.BiomeNone, ErrClosed
	}
	if x >= c.r.SizeX || y >= c.r.SizeY || z >= c.r.SizeZ {
		return mc.BiomeNone, fmt.Errorf("cache offset (%d, %d, %d) outside %dx%dx%d: %w",
			x, y, z, c.r.SizeX, c.r.SizeY, c.r.SizeZ, ErrIndexOutOfBounds)
	}
	i := uint64(y)*uint64(c.r.SizeX)*uint64(c.r.SizeZ) + uint64(z)*uint64(c.r.SizeX) + uint64(x)
	if i >= uint64(c.filled) {
		return mc.BiomeNone, fmt.Errorf("cache index %d of %d filled: %w", i, c.filled, ErrIndexOutOfBounds)
	}
	return checkBiome("gen_biomes", c.buf[i])
}

// Move repositions the origin of the range without reallocating. The cache
// must be filled again before it can be read.
func (c *Cache) Move(x, y, z int32) {
	c.r.X, c.r.Y, c.r.Z = x, y, z
	c.filled = 0
}

// Biomes returns a copy of the filled cells in index order, or nil before a fill.
func (c *Cache) Biomes() []mc.Biome {
	if c.filled == 0 {
		return nil
	}
	out := make([]mc.Biome, c.filled)
	for i, id := range c.buf[:c.filled] {
		out[i] = mc.Biome(id)
	}
	return out
}

// Raw returns the filled prefix of the buffer. The slice aliases the cache and
// is overwritten by the next Fill.
func (c *Cache) Raw() []int32 {
	return c.buf[:c.filled]
}

// String renders the filled cells as biome ids, one line per z row with a
// blank line between planes.
func (c *Cache) String() string {
	if c.filled == 0 {
		return fmt.Sprintf("cache %v at (%d, %d, %d): not filled", c.r.Scale, c.r.X, c.r.Y, c.r.Z)
	}
	var sb strings.Builder
	sx, sz := int(c.r.SizeX), int(c.r.SizeZ)
	for y := 0; y < int(c.r.SizeY); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for z := 0; z < sz; z++ {
			row := c.buf[y*sx*sz+z*sx : y*sx*sz+(z+1)*sx]
			for x, id := range row {
				if x > 0 {
					sb.WriteByte(' ')
				}
				fmt.Fprintf(&sb, "%3d", id)
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Close releases the buffer and the borrow on the generator. It is idempotent.
func (c *Cache) Close() error {
	c.releaseOnce.Do(func() {
		c.closed = true
		c.buf = nil
		c.filled = 0
		c.g.release()
	})
	return nil
}
