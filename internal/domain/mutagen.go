// Package domain contains the core fuzzing workflow and logic.
package domain

import (
	"math/rand/v2"

	"github.com/mouse-blink/stdinfuzz/internal/domain/mutagens"
	m "github.com/mouse-blink/stdinfuzz/internal/model"
)

// DefaultPoolSpecs is the fixed mutation policy: one candidate each of
// length 1, 1, 1, 5 and 250, in this order.
var DefaultPoolSpecs = []m.PoolSpec{
	{Charset: mutagens.Alphabetic, Count: 1, Length: 1},
	{Charset: mutagens.Numeric, Count: 1, Length: 1},
	{Charset: mutagens.Symbol, Count: 1, Length: 1},
	{Charset: mutagens.Mixed, Count: 1, Length: 5},
	{Charset: mutagens.Mixed, Count: 1, Length: 250},
}

// Mutagen defines the interface for mutation generation.
type Mutagen interface {
	BuildPools(rng *rand.Rand, specs ...m.PoolSpec) []m.Pool
	Expand(seed string, pools []m.Pool) []m.Mutation
	Estimate(seed string, pools []m.Pool) m.Estimation
}

// mutagen handles pure mutation generation logic.
type mutagen struct{}

// NewMutagen creates a new Mutagen instance.
func NewMutagen() Mutagen {
	return &mutagen{}
}

// BuildPools draws every pool from rng, in spec order. With no specs the
// DefaultPoolSpecs are used. rng is not touched after BuildPools returns.
func (mg *mutagen) BuildPools(rng *rand.Rand, specs ...m.PoolSpec) []m.Pool {
	if len(specs) == 0 {
		specs = DefaultPoolSpecs
	}

	pools := make([]m.Pool, 0, len(specs))
	for _, spec := range specs {
		pools = append(pools, m.Pool{
			Spec:       spec,
			Candidates: mutagens.Generate(rng, spec.Charset, spec.Count, spec.Length),
		})
	}

	return pools
}

// Expand replaces every byte of seed with every candidate of every pool.
// The order is position-major, then pool, then candidate.
func (mg *mutagen) Expand(seed string, pools []m.Pool) []m.Mutation {
	mutations := make([]m.Mutation, 0, len(seed)*totalCandidates(pools))

	for pos := range len(seed) {
		prefix, suffix := seed[:pos], seed[pos+1:]

		for poolIndex, pool := range pools {
			for _, candidate := range pool.Candidates {
				mutations = append(mutations, m.Mutation{
					ID:        len(mutations) + 1,
					Position:  pos,
					PoolIndex: poolIndex,
					Category:  pool.Spec.Charset.Category,
					Candidate: candidate,
					Input:     prefix + candidate + suffix,
				})
			}
		}
	}

	return mutations
}

// Estimate counts the mutations Expand would produce without building them.
func (mg *mutagen) Estimate(seed string, pools []m.Pool) m.Estimation {
	est := m.Estimation{
		Seed:    seed,
		Pools:   pools,
		PerPool: make([]int, 0, len(pools)),
	}

	for _, pool := range pools {
		n := len(seed) * len(pool.Candidates)
		est.PerPool = append(est.PerPool, n)
		est.Total += n
	}

	return est
}

func totalCandidates(pools []m.Pool) int {
	total := 0
	for _, pool := range pools {
		total += len(pool.Candidates)
	}

	return total
}
