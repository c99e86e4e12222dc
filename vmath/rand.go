package vmath

// Random is the injectable random source used by the simulation
// Float64 returns a value in [0, 1)
type Random interface {
	Float64() float64
}

// FastRand is a xorshift64 generator, deterministic for a given seed
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns 53 random bits scaled into [0, 1)
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a uniform value in [lo, hi)
func Range(r Random, lo, hi float64) float64 {
	return r.Float64()*(hi-lo) + lo
}

// Shuffle performs a Fisher-Yates shuffle driven by r
func Shuffle(r Random, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := int(r.Float64() * float64(i+1))
		if j > i {
			j = i
		}
		swap(i, j)
	}
}
