/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package guesser

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntropy(t *testing.T) {
	tests := []struct {
		name string
		xs   []float64
		want float64
	}{
		{name: "empty", xs: nil, want: 0},
		{name: "single", xs: []float64{0.7}, want: 0},
		{name: "one point mass", xs: []float64{0.9, 0, 0}, want: 0},
		{name: "all zero", xs: []float64{0, 0}, want: 0},
		{name: "two equal", xs: []float64{0.5, 0.5}, want: 1},
		{name: "four equal", xs: []float64{0.2, 0.2, 0.2, 0.2}, want: 2},
		{name: "unnormalised", xs: []float64{3, 1}, want: -(0.75*math.Log2(0.75) + 0.25*math.Log2(0.25))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Entropy(tt.xs), 1e-12)
		})
	}
}

func TestEntropyIsNonNegativeAndZeroOnlyForPointMass(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 500; i++ {
		xs := make([]float64, r.IntN(8))
		nonZero := 0
		for j := range xs {
			if r.IntN(3) > 0 {
				xs[j] = r.Float64()
			}
			if xs[j] > 0 {
				nonZero++
			}
		}

		h := Entropy(xs)
		assert.GreaterOrEqual(t, h, 0.0)
		if nonZero <= 1 {
			assert.Zero(t, h, "xs=%v", xs)
		} else {
			assert.Greater(t, h, 0.0, "xs=%v", xs)
		}
	}
}
