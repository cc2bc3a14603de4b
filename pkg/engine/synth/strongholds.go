package synth

import (
	"math"

	"github.com/OCharnyshevich/cubiomes-go/pkg/engine"
	"github.com/OCharnyshevich/cubiomes-go/pkg/mc"
)

const (
	ringStrongholds   = 128
	legacyStrongholds = 3
	ringDistance      = 32.0 // chunks
)

// strongholdCursor walks the ring layout: strongholds are spread over
// concentric rings, each ring holding more than the last, with the angle and
// distance of every placement drawn from one seeded generator.
type strongholdCursor struct {
	version mc.Version
	rnd     javaRandom

	pos       engine.Pos
	index     int32
	ring      int32
	ringCount int32
	ringIdx   int32
	angle     float64
}

func (e *Engine) FirstStronghold(v mc.Version, seed uint64) engine.StrongholdCursor {
	c := &strongholdCursor{version: v, ringCount: 3}
	c.rnd.setSeed(seed)
	c.angle = c.rnd.nextDouble() * math.Pi * 2
	return c
}

func (c *strongholdCursor) total() int32 {
	if c.version < mc.V1_9 {
		return legacyStrongholds
	}
	return ringStrongholds
}

func (c *strongholdCursor) Next(engine.State) int32 {
	total := c.total()
	if c.index >= total {
		return 0
	}

	var dist float64
	if c.version < mc.V1_9 {
		dist = (1.25 + c.rnd.nextDouble()) * ringDistance
	} else {
		dist = 4*ringDistance + ringDistance*float64(c.ring)*6 + (c.rnd.nextDouble()-0.5)*ringDistance*2.5
	}

	cx := int32(math.Round(math.Cos(c.angle) * dist))
	cz := int32(math.Round(math.Sin(c.angle) * dist))
	c.pos = engine.Pos{X: cx<<4 + 4, Z: cz<<4 + 4}
	c.index++

	c.angle += 2 * math.Pi / float64(c.ringCount)
	c.ringIdx++
	if c.version >= mc.V1_9 && c.ringIdx == c.ringCount {
		c.ring++
		c.ringIdx = 0
		c.ringCount += 2 * c.ringCount / (c.ring + 1)
		c.ringCount = min(c.ringCount, total-c.index)
		c.angle += c.rnd.nextDouble() * math.Pi * 2
	}

	return total - c.index
}

func (c *strongholdCursor) Pos() engine.Pos {
	return c.pos
}
