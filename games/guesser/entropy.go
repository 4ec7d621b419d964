/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package guesser

import "math"

// Entropy is the Shannon entropy, in bits, of xs renormalised into a
// probability distribution. Zero entries are skipped; an empty or zero-mass
// list has no entropy.
func Entropy(xs []float64) float64 {
	total := sum(xs)
	if len(xs) == 0 || total <= 0 {
		return 0
	}

	var h float64
	for _, x := range xs {
		if x <= 0 {
			continue
		}
		p := x / total
		h -= p * math.Log2(p)
	}

	// rounding can leave a one-point mass a hair below zero
	return math.Max(0, h)
}

func sum(xs []float64) float64 {
	var total float64
	for _, x := range xs {
		total += x
	}

	return total
}
