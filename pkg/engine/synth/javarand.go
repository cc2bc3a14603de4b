package synth

// javaRandom is the 48-bit linear congruential generator used by
// java.util.Random, which structure placement is defined in terms of.
type javaRandom struct {
	seed uint64
}

const (
	lcgMultiplier = 0x5DEECE66D
	lcgAddend     = 0xB
	lcgMask       = (1 << 48) - 1
)

func newJavaRandom(seed uint64) *javaRandom {
	r := &javaRandom{}
	r.setSeed(seed)
	return r
}

func (r *javaRandom) setSeed(seed uint64) {
	r.seed = (seed ^ lcgMultiplier) & lcgMask
}

func (r *javaRandom) next(bits uint) int32 {
	r.seed = (r.seed*lcgMultiplier + lcgAddend) & lcgMask
	return int32(int64(r.seed) >> (48 - bits))
}

// nextInt returns a value in [0, n). n must be positive.
func (r *javaRandom) nextInt(n int32) int32 {
	if n&(-n) == n {
		return int32((int64(n) * int64(r.next(31))) >> 31)
	}
	for {
		bits := r.next(31)
		val := bits % n
		if bits-val+(n-1) >= 0 {
			return val
		}
	}
}

func (r *javaRandom) nextDouble() float64 {
	hi := int64(r.next(26))
	lo := int64(r.next(27))
	return float64(hi<<27+lo) * (1.0 / float64(int64(1)<<53))
}
