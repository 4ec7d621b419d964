/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package guesser

import (
	"math"

	"go.uber.org/zap"
)

const (
	// exhaustedScore keeps a quota-exhausted trait orderable in diagnostics
	// while making sure it never wins.
	exhaustedScore = 0.001

	openingQuestions = 5
	openingPriority  = 8.0
	openingBonus     = 1.3
	earlyBonus       = 1.25
	lateBonus        = 1.15
)

// StopReason says why no further question was selected.
type StopReason string

const (
	StopNone               StopReason = ""
	StopFewCandidates      StopReason = "few_candidates"
	StopNoInformativeTrait StopReason = "no_informative_trait"
	StopMaxQuestions       StopReason = "max_questions"
)

// Selection is the outcome of one selection round: either a trait to ask or
// a reason to stop asking.
type Selection struct {
	Trait      Trait
	Gain       float64
	Diversity  float64
	Score      float64
	Candidates int
	Stop       StopReason
}

func (s Selection) Done() bool {
	return s.Stop != StopNone
}

// Selector picks the most informative unasked trait.
type Selector struct {
	catalog *Catalog
	matrix  *Matrix
	ranker  *Ranker
	cfg     Config
	logger  *zap.Logger
}

func NewSelector(catalog *Catalog, matrix *Matrix, ranker *Ranker, cfg Config, logger *zap.Logger) *Selector {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Selector{
		catalog: catalog,
		matrix:  matrix,
		ranker:  ranker,
		cfg:     cfg,
		logger:  logger,
	}
}

// InformationGain is the drop in entropy of the candidate confidences from
// splitting them on trait. A trait that does not split the set gains nothing.
func (s *Selector) InformationGain(trait string, candidates []Candidate) float64 {
	if len(candidates) < 2 {
		return 0
	}

	all := make([]float64, 0, len(candidates))
	var pos, neg []float64
	for _, c := range candidates {
		all = append(all, c.Confidence)
		if s.matrix.Has(trait, c.Entity.ID) {
			pos = append(pos, c.Confidence)
		} else {
			neg = append(neg, c.Confidence)
		}
	}

	if len(pos) == 0 || len(neg) == 0 {
		return 0
	}

	total := sum(all)
	if total <= 0 {
		return 0
	}

	after := sum(pos)/total*Entropy(pos) + sum(neg)/total*Entropy(neg)

	return math.Max(0, Entropy(all)-after)
}

// DiversityScore adjusts a trait's priority for how often its category has
// already been asked and for the stage of the game. The result is not
// renormalised and may exceed the base priority.
func (s *Selector) DiversityScore(b *Belief, t Trait) float64 {
	if b.IsCategoryExhausted(t.Category) {
		return exhaustedScore
	}

	score := t.Priority

	if quota, ok := b.Quota(t.Category); ok && quota > 0 {
		if used := b.Count(t.Category); used > 0 {
			ratio := float64(used) / float64(quota)
			score *= math.Min(math.Exp(-3*ratio), math.Pow(0.2, 4*ratio))
		}
	}

	asked := b.Len()
	if asked < openingQuestions && t.Priority >= openingPriority {
		score *= openingBonus
	}

	progress := float64(asked) / float64(s.cfg.MaxQuestions)
	switch {
	case progress < s.cfg.EarlyGameFraction:
		if t.Category == CategoryType || t.Broad {
			score *= earlyBonus
		}
	case progress > s.cfg.LateGameFraction:
		if t.Category == CategoryStat || t.Category == CategoryPhysical {
			score *= lateBonus
		}
	}

	return score
}

// SelectNext returns the unasked, non-exhausted trait with the strictly
// highest gain × diversity score, earlier catalog entries winning ties.
func (s *Selector) SelectNext(b *Belief) Selection {
	candidates := s.ranker.RankedCandidates(b)
	if len(candidates) <= 1 {
		s.logger.Debug("too few candidates to keep asking",
			zap.Int("candidates", len(candidates)),
		)

		return Selection{Candidates: len(candidates), Stop: StopFewCandidates}
	}

	best := Selection{Candidates: len(candidates), Stop: StopNoInformativeTrait}
	for _, t := range s.catalog.traits {
		if b.Asked(t.Key) {
			continue
		}
		if b.IsCategoryExhausted(t.Category) {
			s.logger.Debug("skipping trait, category at quota",
				zap.String("trait", t.Key),
				zap.String("category", string(t.Category)),
			)
			continue
		}

		gain := s.InformationGain(t.Key, candidates)
		if gain <= 0 {
			continue
		}
		diversity := s.DiversityScore(b, t)

		if score := gain * diversity; score > best.Score {
			best = Selection{
				Trait:      t,
				Gain:       gain,
				Diversity:  diversity,
				Score:      score,
				Candidates: len(candidates),
			}
		}
	}

	if best.Done() {
		s.logger.Debug("no informative trait remaining",
			zap.Int("candidates", len(candidates)),
		)
	} else {
		s.logger.Debug("selected trait",
			zap.String("trait", best.Trait.Key),
			zap.Float64("gain", best.Gain),
			zap.Float64("diversity", best.Diversity),
			zap.Float64("score", best.Score),
			zap.Int("candidates", len(candidates)),
		)
	}

	return best
}

// TraitScore is a diagnostic view of one trait's standing.
type TraitScore struct {
	Key       string   `json:"key"`
	Category  Category `json:"category"`
	Priority  float64  `json:"priority"`
	Diversity float64  `json:"diversity"`
}
