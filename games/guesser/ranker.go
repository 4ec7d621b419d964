/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package guesser

import (
	"cmp"
	"math"
	"slices"
)

const (
	// priorConfidence is reported when there is no usable evidence yet.
	priorConfidence = 0.1

	// uniformConfidence is what every entity starts at before any answer.
	uniformConfidence = 0.5

	minConfidence = 0.05
	maxConfidence = 0.95

	hedgeLow   = 0.4
	hedgeHigh  = 0.6
	hedgeBoost = 1.25

	calibrationFloor = 0.15
	calibrationSpan  = 0.7
)

// Candidate pairs an entity with the engine's belief that it is the target.
type Candidate struct {
	Entity     *Entity
	Confidence float64
}

// Ranker scores entities against a belief.
type Ranker struct {
	entities []Entity
	matrix   *Matrix
	catalog  *Catalog
	cfg      Config
	jitter   JitterSource
}

func NewRanker(entities []Entity, matrix *Matrix, catalog *Catalog, cfg Config, jitter JitterSource) *Ranker {
	if jitter == nil {
		jitter = NoJitter{}
	}

	return &Ranker{
		entities: entities,
		matrix:   matrix,
		catalog:  catalog,
		cfg:      cfg,
		jitter:   jitter,
	}
}

// ConfidenceOf blends every answer into a calibrated belief in [0.05, 0.95]
// that e is the target.
func (r *Ranker) ConfidenceOf(b *Belief, e *Entity) float64 {
	if b.Len() == 0 {
		return priorConfidence
	}

	var weighted, weights float64
	for _, a := range b.Answers() {
		score := 1 - a.Confidence
		if r.matrix.Has(a.Trait, e.ID) {
			score = a.Confidence
		}

		// a hedged answer must not cancel out; it counts as weak evidence
		// either way
		if a.Confidence >= hedgeLow && a.Confidence <= hedgeHigh {
			score *= hedgeBoost
		}

		w := r.catalog.Reliability(a.Trait)
		weighted += score * w
		weights += w
	}

	if weights <= 0 {
		return priorConfidence
	}

	calibrated := calibrationFloor + calibrationSpan*(weighted/weights)
	calibrated += r.jitter.Jitter(e.ID, b.Len())

	return clamp(calibrated, minConfidence, maxConfidence)
}

// RankedCandidates is the progressively narrowed candidate view used while
// questions are still being asked. Before any answer every entity is a
// candidate at 0.5.
func (r *Ranker) RankedCandidates(b *Belief) []Candidate {
	if b.Len() == 0 {
		out := make([]Candidate, len(r.entities))
		for i := range r.entities {
			out[i] = Candidate{Entity: &r.entities[i], Confidence: uniformConfidence}
		}

		return out
	}

	progress := r.progress(b)
	threshold := math.Max(0.1, 0.4-0.3*progress)
	limit := max(5, int(math.Floor(50-30*progress)))

	out := make([]Candidate, 0, len(r.entities))
	for i := range r.entities {
		e := &r.entities[i]
		if c := r.ConfidenceOf(b, e); c >= threshold {
			out = append(out, Candidate{Entity: e, Confidence: c})
		}
	}
	sortCandidates(out)

	if len(out) > limit {
		out = out[:limit]
	}

	return out
}

// ScoreAll ranks the whole entity set with no threshold or cap.
func (r *Ranker) ScoreAll(b *Belief) []Candidate {
	out := make([]Candidate, len(r.entities))
	for i := range r.entities {
		e := &r.entities[i]
		out[i] = Candidate{Entity: e, Confidence: r.ConfidenceOf(b, e)}
	}
	sortCandidates(out)

	return out
}

func (r *Ranker) progress(b *Belief) float64 {
	return float64(b.Len()) / float64(r.cfg.MaxQuestions)
}

// sortCandidates orders by descending confidence; equal scores keep catalog
// order.
func sortCandidates(cs []Candidate) {
	slices.SortStableFunc(cs, func(a, b Candidate) int {
		return cmp.Compare(b.Confidence, a.Confidence)
	})
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
