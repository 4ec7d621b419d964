/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package guesser

import (
	"hash/fnv"
	"math/rand/v2"
)

const jitterAmplitude = 0.001

// JitterSource supplies the tiny offset that separates entities whose scores
// would otherwise tie exactly. step is the number of answers recorded.
type JitterSource interface {
	Jitter(entityID string, step int) float64
}

// SeededJitter draws from a PCG stream keyed on the seed, the entity and the
// step, so the same belief always ranks the same way.
type SeededJitter struct {
	seed uint64
}

func NewSeededJitter(seed uint64) SeededJitter {
	return SeededJitter{seed: seed}
}

func (j SeededJitter) Jitter(entityID string, step int) float64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(entityID))

	r := rand.New(rand.NewPCG(j.seed, h.Sum64()^uint64(step)))

	return (r.Float64() - 0.5) * 2 * jitterAmplitude
}

// NoJitter disables tie jitter.
type NoJitter struct{}

func (NoJitter) Jitter(string, int) float64 { return 0 }
