/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package guesser

import (
	"fmt"
	"math"
)

// Answer is one recorded (trait, confidence) pair.
type Answer struct {
	Trait      string  `json:"trait"`
	Confidence float64 `json:"confidence"`
}

// Belief is the per-session record of everything the player has told us.
// It is owned by exactly one session and is not safe for concurrent use.
type Belief struct {
	catalog *Catalog
	quotas  map[Category]int

	order   []string
	answers map[string]float64
	asked   map[string]struct{}
	counts  map[Category]int
}

func NewBelief(catalog *Catalog, quotas map[Category]int) *Belief {
	q := make(map[Category]int, len(quotas))
	for c, n := range quotas {
		q[c] = n
	}

	b := &Belief{
		catalog: catalog,
		quotas:  q,
	}
	b.Reset()

	return b
}

// Reset empties the belief so it can back a new game.
func (b *Belief) Reset() {
	b.order = nil
	b.answers = make(map[string]float64)
	b.asked = make(map[string]struct{})
	b.counts = make(map[Category]int, len(QuotaCategories))
}

// RecordAnswer stores the player's confidence that trait applies. It fails
// with ErrInvalidInput, leaving the belief untouched, when confidence is not
// in [0,1], when trait was already answered, or when the trait's category
// has used up its quota.
func (b *Belief) RecordAnswer(trait string, confidence float64) error {
	if math.IsNaN(confidence) || confidence < 0 || confidence > 1 {
		return fmt.Errorf("%w: confidence %v for %q is outside [0,1]", ErrInvalidInput, confidence, trait)
	}
	if b.Asked(trait) {
		return fmt.Errorf("%w: trait %q was already answered", ErrInvalidInput, trait)
	}

	category := b.catalog.Category(trait)
	if b.IsCategoryExhausted(category) {
		return fmt.Errorf("%w: category %q is at its quota", ErrInvalidInput, category)
	}

	b.order = append(b.order, trait)
	b.answers[trait] = confidence
	b.asked[trait] = struct{}{}
	if _, ok := b.quotas[category]; ok && category.Quotable() {
		b.counts[category]++
	}

	return nil
}

// IsCategoryExhausted reports whether category has reached its quota.
// Categories without a quota are never exhausted.
func (b *Belief) IsCategoryExhausted(category Category) bool {
	if !category.Quotable() {
		return false
	}
	quota, ok := b.quotas[category]
	if !ok {
		return false
	}

	return b.counts[category] >= quota
}

func (b *Belief) Asked(trait string) bool {
	_, ok := b.asked[trait]

	return ok
}

// Len is the number of answers recorded so far.
func (b *Belief) Len() int {
	return len(b.order)
}

func (b *Belief) Count(category Category) int {
	return b.counts[category]
}

// Quota returns the limit for category and false when it is unbounded.
func (b *Belief) Quota(category Category) (int, bool) {
	if !category.Quotable() {
		return 0, false
	}
	q, ok := b.quotas[category]

	return q, ok
}

// Answers returns the recorded answers in the order they were given.
func (b *Belief) Answers() []Answer {
	out := make([]Answer, 0, len(b.order))
	for _, trait := range b.order {
		out = append(out, Answer{Trait: trait, Confidence: b.answers[trait]})
	}

	return out
}

// Confidence returns the recorded answer for trait.
func (b *Belief) Confidence(trait string) (float64, bool) {
	v, ok := b.answers[trait]

	return v, ok
}
