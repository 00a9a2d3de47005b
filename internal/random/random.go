// Package random builds input arrays from an explicitly seeded generator.
package random

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Default value range of generated arrays.
const (
	DefaultMin int64 = -10000
	DefaultMax int64 = 10000
)

// Generator produces uniformly distributed integers in the closed range [min, max].
// A Generator is not safe for concurrent use.
type Generator struct {
	seed uint64
	min  int64
	max  int64
	rng  *rand.Rand
}

// New returns a generator for [lo, hi]. A zero seed picks one from the clock;
// the chosen seed is available from Seed so the run can be reproduced.
func New(seed uint64, lo, hi int64) (*Generator, error) {
	if lo > hi {
		return nil, fmt.Errorf("invalid range [%d, %d]", lo, hi)
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Generator{
		seed: seed,
		min:  lo,
		max:  hi,
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}, nil
}

// Seed returns the seed the generator was built from.
func (g *Generator) Seed() uint64 {
	return g.seed
}

// Range returns the closed value range.
func (g *Generator) Range() (int64, int64) {
	return g.min, g.max
}

// Int returns one value in [min, max].
func (g *Generator) Int() int64 {
	span := uint64(g.max-g.min) + 1
	if span == 0 {
		// [MinInt64, MaxInt64]: every 64-bit pattern is in range
		return int64(g.rng.Uint64())
	}
	return g.min + int64(g.rng.Uint64N(span))
}

// Fill overwrites every element of arr.
func (g *Generator) Fill(arr []int64) {
	for i := range arr {
		arr[i] = g.Int()
	}
}

// Array returns a freshly filled array of length n.
func (g *Generator) Array(n int) []int64 {
	arr := make([]int64, n)
	g.Fill(arr)
	return arr
}
