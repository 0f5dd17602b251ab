package vmath

import "math"

// RandSource is the randomness consumed by serve and launch sampling
// Injected so simulations can be replayed from a seed
type RandSource interface {
	Float64() float64
	Intn(n int) int
}

// FastRand is a xorshift64 generator, not safe for concurrent use
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

// Float64 returns a value in [0, 1) built from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Uniform samples [lo, hi) from rng
func Uniform(rng RandSource, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}

// RandomSign returns -1 or 1 with equal probability
func RandomSign(rng RandSource) float64 {
	if rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

// Polar splits speed along angle (radians from the +X axis) with the X component flipped by dir
func Polar(speed, angle, dir float64) (vx, vy float64) {
	return dir * speed * math.Cos(angle), speed * math.Sin(angle)
}
