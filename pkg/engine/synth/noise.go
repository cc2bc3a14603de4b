package synth

import "math"

// 2D simplex noise in [-1, 1]. The lattice hash is a permutation of 0..255
// shuffled by the same Java LCG the structure placement uses, so one seed
// drives every layer of a state.

const (
	skew2   = 0.36602540378443864676 // (sqrt(3) - 1) / 2
	unskew2 = 0.21132486540518711775 // (3 - sqrt(3)) / 6
)

// gradients2 are the eight lattice directions; a hash picks one with h&7.
var gradients2 = [8][2]float64{
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
}

type simplex struct {
	perm [512]uint8
}

// reseed shuffles the permutation table for seed in place.
func (n *simplex) reseed(seed int64) {
	for i := range 256 {
		n.perm[i] = uint8(i)
	}
	var r javaRandom
	r.setSeed(uint64(seed))
	for i := int32(255); i > 0; i-- {
		j := r.nextInt(i + 1)
		n.perm[i], n.perm[j] = n.perm[j], n.perm[i]
	}
	copy(n.perm[256:], n.perm[:256])
}

func (n *simplex) hash(i, j int) int {
	return int(n.perm[(i&255)+int(n.perm[j&255])])
}

// corner is the contribution of lattice point (i, j) at offset (dx, dz).
func (n *simplex) corner(i, j int, dx, dz float64) float64 {
	f := 0.5 - dx*dx - dz*dz
	if f <= 0 {
		return 0
	}
	g := gradients2[n.hash(i, j)&7]
	f *= f
	return f * f * (g[0]*dx + g[1]*dz)
}

func (n *simplex) noise2D(x, z float64) float64 {
	k := (x + z) * skew2
	i := int(math.Floor(x + k))
	j := int(math.Floor(z + k))

	u := float64(i+j) * unskew2
	dx := x - float64(i) + u
	dz := z - float64(j) + u

	// The middle corner is one step along whichever axis is larger.
	si, sj := 0, 1
	if dx > dz {
		si, sj = 1, 0
	}

	sum := n.corner(i, j, dx, dz)
	sum += n.corner(i+si, j+sj, dx-float64(si)+unskew2, dz-float64(sj)+unskew2)
	sum += n.corner(i+1, j+1, dx-1+2*unskew2, dz-1+2*unskew2)
	return 70 * sum
}

// octave2D sums octaves of noise2D, doubling frequency each time, and
// normalises by the total amplitude.
func (n *simplex) octave2D(x, z float64, octaves int, persistence float64) float64 {
	var sum, norm float64
	amp, freq := 1.0, 1.0
	for range octaves {
		sum += amp * n.noise2D(x*freq, z*freq)
		norm += amp
		amp *= persistence
		freq *= 2
	}
	return sum / norm
}
