// internal/rand/rand.go
// Copyright(c) 2024-2026 daidalus-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package rand provides a small, seedable, serializable PRNG used only by
// the property-based fuzz tests over encounter geometry (§8 of the
// spec): the detection and bands core is otherwise fully deterministic
// and never consults this package.
package rand

import "sync"

///////////////////////////////////////////////////////////////////////////
// PCG32

const (
	pcg32State      = 0x853c49e6748fea9b
	pcg32Increment  = 0xda3e39cb94b95bdb
	pcg32Multiplier = 0x5851f42d4c957f2d
)

type PCG32 struct {
	State     uint64
	Increment uint64
}

func NewPCG32() PCG32 {
	return PCG32{pcg32State, pcg32Increment}
}

func (p *PCG32) Seed(state, sequence uint64) {
	p.Increment = (sequence << 1) | 1
	p.State = (state+p.Increment)*pcg32Multiplier + p.Increment
}

func (p *PCG32) Random() uint32 {
	oldState := p.State
	p.State = oldState*pcg32Multiplier + p.Increment

	xorShifted := uint32(((oldState >> 18) ^ oldState) >> 27)
	rot := uint32(oldState >> 59)
	return (xorShifted >> rot) | (xorShifted << ((-rot) & 31))
}

func (p *PCG32) Bounded(bound uint32) uint32 {
	if bound == 0 {
		return 0
	}
	threshold := -bound % bound
	for {
		r := p.Random()
		if r >= threshold {
			return r % bound
		}
	}
}

///////////////////////////////////////////////////////////////////////////

type Rand struct {
	PCG32
}

func New() Rand {
	return Rand{PCG32: NewPCG32()}
}

func (r *Rand) Seed(s uint64) {
	r.PCG32.Seed(s, pcg32Increment)
}

func (r *Rand) Intn(n int) int {
	return int(r.Bounded(uint32(n)))
}

func (r *Rand) Float64() float64 {
	return float64(r.Random()) / (1<<32 - 1)
}

// Float64Range returns a uniform value in [lo,hi).
func (r *Rand) Float64Range(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

var (
	r  Rand
	mu sync.Mutex
)

func init() {
	r = New()
}

func Seed(s int64) {
	mu.Lock()
	defer mu.Unlock()
	r.PCG32.Seed(uint64(s), pcg32Increment)
}

func Intn(n int) int {
	mu.Lock()
	defer mu.Unlock()
	return int(r.Bounded(uint32(n)))
}

func Float64() float64 {
	mu.Lock()
	defer mu.Unlock()
	return float64(r.Random()) / (1<<32 - 1)
}

func Float64Range(lo, hi float64) float64 {
	return lo + Float64()*(hi-lo)
}
