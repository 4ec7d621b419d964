/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package guesser

import (
	"math"
	"strings"
)

const (
	iconicBonus   = 0.3
	rareTypeBonus = 0.2
	highStatBonus = 0.25
	lowStatBonus  = 0.15

	highStat = 120
	lowStat  = 30
)

// TieBreaker reorders near-equal final candidates so the most distinctive
// one comes first.
type TieBreaker struct {
	epsilon   float64
	iconic    map[string]bool
	rareTypes map[string]bool
}

func NewTieBreaker(epsilon float64, iconic, rareTypes []string) *TieBreaker {
	return &TieBreaker{
		epsilon:   epsilon,
		iconic:    lowerSet(iconic),
		rareTypes: lowerSet(rareTypes),
	}
}

// Distinctiveness scores how memorable an entity is: fame, rare types, and
// extreme stats.
func (t *TieBreaker) Distinctiveness(e *Entity) float64 {
	var d float64

	if t.iconic[strings.ToLower(e.ID)] {
		d += iconicBonus
	}

	for _, typ := range e.Types {
		if t.rareTypes[strings.ToLower(typ)] {
			d += rareTypeBonus
		}
	}

	if lo, hi, ok := e.statRange(); ok {
		if hi > highStat {
			d += highStatBonus
		}
		if lo < lowStat {
			d += lowStatBonus
		}
	}

	return d
}

// ResolveCloseTies groups consecutive candidates within epsilon of the
// group's first member and moves the most distinctive member of each group to
// its front. Everything else keeps its order.
func (t *TieBreaker) ResolveCloseTies(candidates []Candidate) []Candidate {
	out := make([]Candidate, 0, len(candidates))

	for i := 0; i < len(candidates); {
		j := i + 1
		for j < len(candidates) && math.Abs(candidates[j].Confidence-candidates[i].Confidence) < t.epsilon {
			j++
		}

		group := candidates[i:j]
		if len(group) == 1 {
			out = append(out, group[0])
			i = j
			continue
		}

		winner, best := 0, math.Inf(-1)
		for k := range group {
			if d := t.Distinctiveness(group[k].Entity); d > best {
				winner, best = k, d
			}
		}

		out = append(out, group[winner])
		for k := range group {
			if k != winner {
				out = append(out, group[k])
			}
		}

		i = j
	}

	return out
}

func lowerSet(xs []string) map[string]bool {
	m := make(map[string]bool, len(xs))
	for _, x := range xs {
		m[strings.ToLower(x)] = true
	}

	return m
}
