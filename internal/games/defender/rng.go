package defender

// rng is a deterministic xorshift64 generator.
type rng struct {
	state uint64
}

func newRNG(seed uint64) *rng {
	if seed == 0 {
		seed = 88172645463325252
	}
	return &rng{state: seed}
}

func (r *rng) next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

// float returns a value in [0, 1).
func (r *rng) float() float64 {
	return float64(r.next()>>11) / float64(1<<53)
}

// between returns a value in [lo, hi).
func (r *rng) between(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.float()*(hi-lo)
}
