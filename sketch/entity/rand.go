package entity

import "math/rand/v2"

// Rand yields uniform integers over an inclusive range.
type Rand interface {
	Between(lo, hi int) int
}

type pcgRand struct {
	r *rand.Rand
}

// NewRand returns a seeded source. Equal seeds give equal sequences.
func NewRand(seed uint64) Rand {
	return &pcgRand{r: rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))}
}

func (p *pcgRand) Between(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + p.r.IntN(hi-lo+1)
}
